package uimport

import (
	"l2lo/unr/ubytes"
)

func EncodeEntry(entry Entry) []byte {
	bs := make([]byte, 0, 16)
	bs = append(bs, ubytes.EncodeCompactInt(entry.ClassPackage)...)
	bs = append(bs, ubytes.EncodeCompactInt(entry.ClassName)...)
	bs = append(bs, ubytes.EncodeValueInt(entry.Package)...)
	bs = append(bs, ubytes.EncodeCompactInt(entry.ObjectName)...)
	return bs
}

func EncodeBlock(entries []Entry) []byte {
	bs := make([]byte, 0, 16*len(entries))
	for _, entry := range entries {
		bs = append(bs, EncodeEntry(entry)...)
	}
	return bs
}
