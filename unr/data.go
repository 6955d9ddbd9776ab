// Package unr reads the parts of an Unreal Engine 2 package that are needed to
// resolve object references: the name, import and export tables.
package unr

import (
	"l2lo/unr/uexport"
	"l2lo/unr/uheader"
	"l2lo/unr/uimport"
	"l2lo/unr/uname"
)

type (
	Package struct {
		FileName string          `json:"file_name"`
		Header   uheader.Header  `json:"header"`
		Names    []uname.Entry   `json:"names"`
		Imports  []uimport.Entry `json:"imports"`
		Exports  []uexport.Entry `json:"exports"`
		data     []byte
	}
	EntryKind int
	// Entry points into the export or import table of a Package. The zero value
	// is NoneEntry, the "no object" reference.
	Entry struct {
		Kind  EntryKind `json:"kind"`
		Index int       `json:"index"`
	}
)

const (
	EntryKindNone = EntryKind(iota)
	EntryKindExport
	EntryKindImport
)

const (
	NoneName       = "None"
	ClassFullName  = "Core.Class"
	LevelName      = "myLevel"
	LevelClassName = "Engine.Level"
)

var NoneEntry = Entry{Kind: EntryKindNone}

// Reference is the signed object reference that points at e.
func (e Entry) Reference() int32 {
	switch e.Kind {
	case EntryKindExport:
		return int32(e.Index + 1)
	case EntryKindImport:
		return -int32(e.Index + 1)
	default:
		return 0
	}
}

func (e Entry) IsNone() bool {
	return e.Kind == EntryKindNone
}

func (k EntryKind) String() string {
	switch k {
	case EntryKindExport:
		return "export"
	case EntryKindImport:
		return "import"
	default:
		return "none"
	}
}
