package unr

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"l2lo/ds"
	"l2lo/unr/uexport"
	"l2lo/unr/uimport"
)

// ObjectReference maps a signed reference to a table entry: positive values
// index the export table, negative values the import table, zero is NoneEntry.
func (p *Package) ObjectReference(ref int32) (Entry, error) {
	switch {
	case ref > 0 && int(ref) <= len(p.Exports):
		return Entry{Kind: EntryKindExport, Index: int(ref) - 1}, nil
	case ref < 0 && int(-int64(ref)) <= len(p.Imports):
		return Entry{Kind: EntryKindImport, Index: int(-int64(ref)) - 1}, nil
	case ref == 0:
		return NoneEntry, nil
	default:
		return NoneEntry, ErrUnresolvableReference{Caller: "Package.ObjectReference", Reference: ref}
	}
}

func (p *Package) ObjectName(e Entry) string {
	switch e.Kind {
	case EntryKindExport:
		return p.Names[p.Exports[e.Index].ObjectName].Name
	case EntryKindImport:
		return p.Names[p.Imports[e.Index].ObjectName].Name
	default:
		return NoneName
	}
}

func (p *Package) outer(e Entry) Entry {
	ref := int32(0)
	switch e.Kind {
	case EntryKindExport:
		ref = p.Exports[e.Index].Package
	case EntryKindImport:
		ref = p.Imports[e.Index].Package
	}
	// references were checked in validate
	outer, _ := p.ObjectReference(ref)
	return outer
}

// ObjectFullName joins the names of e and its enclosing packages with dots,
// outermost first.
func (p *Package) ObjectFullName(e Entry) string {
	if e.IsNone() {
		return NoneName
	}
	names := ds.NewStack[string]()
	// a malformed package chain may loop; no chain is longer than both tables
	limit := len(p.Exports) + len(p.Imports)
	for current := e; !current.IsNone() && names.Len() < limit; current = p.outer(current) {
		names.Push(p.ObjectName(current))
	}
	return strings.Join(names.Drain(), ".")
}

// FullClassName returns the qualified class of e. The second value is false
// for NoneEntry, which has no class.
func (p *Package) FullClassName(e Entry) (string, bool) {
	switch e.Kind {
	case EntryKindExport:
		class, _ := p.ObjectReference(p.Exports[e.Index].Class)
		if class.IsNone() {
			return ClassFullName, true
		}
		return p.ObjectFullName(class), true
	case EntryKindImport:
		entry := p.Imports[e.Index]
		return p.Names[entry.ClassPackage].Name + "." + p.Names[entry.ClassName].Name, true
	default:
		return "", false
	}
}

// Display renders e as "Full.Name[Class.Name]", or "None".
func (p *Package) Display(e Entry) string {
	className, ok := p.FullClassName(e)
	if !ok {
		return NoneName
	}
	return p.ObjectFullName(e) + "[" + className + "]"
}

func (p *Package) ExportEntries() []Entry {
	return lo.Map(
		p.Exports,
		func(_ uexport.Entry, i int) Entry { return Entry{Kind: EntryKindExport, Index: i} },
	)
}

func (p *Package) ImportEntries() []Entry {
	return lo.Map(
		p.Imports,
		func(_ uimport.Entry, i int) Entry { return Entry{Kind: EntryKindImport, Index: i} },
	)
}

// FindExport looks up an export by object name and full class name, both
// compared case-insensitively.
func (p *Package) FindExport(name string, fullClassName string) (Entry, error) {
	entry, found := lo.Find(
		p.ExportEntries(),
		func(e Entry) bool {
			className, _ := p.FullClassName(e)
			return strings.EqualFold(p.ObjectName(e), name) &&
				strings.EqualFold(className, fullClassName)
		},
	)
	if !found {
		return NoneEntry, ErrRequiredObjectNotFound{
			Caller:     "Package.FindExport",
			ObjectName: name,
			ClassName:  fullClassName,
		}
	}
	return entry, nil
}

// RawData returns a copy of the serialised body of an export.
func (p *Package) RawData(e Entry) ([]byte, error) {
	if e.Kind != EntryKindExport {
		return nil, errors.Errorf("Package.RawData error: %s entry has no serialised body", e.Kind)
	}
	entry := p.Exports[e.Index]
	return ds.Clone(p.data[entry.SerialOffset:entry.SerialOffset+entry.SerialSize], 0), nil
}
