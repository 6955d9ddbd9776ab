package uexport

import (
	"l2lo/unr/ubytes"
)

func EncodeEntry(entry Entry) []byte {
	bs := make([]byte, 0, 24)
	bs = append(bs, ubytes.EncodeCompactInt(entry.Class)...)
	bs = append(bs, ubytes.EncodeCompactInt(entry.Super)...)
	bs = append(bs, ubytes.EncodeValueInt(entry.Package)...)
	bs = append(bs, ubytes.EncodeCompactInt(entry.ObjectName)...)
	bs = append(bs, ubytes.EncodeValueInt(entry.ObjectFlags)...)
	bs = append(bs, ubytes.EncodeCompactInt(entry.SerialSize)...)
	if entry.SerialSize > 0 {
		bs = append(bs, ubytes.EncodeCompactInt(entry.SerialOffset)...)
	}
	return bs
}

func EncodeBlock(entries []Entry) []byte {
	bs := make([]byte, 0, 24*len(entries))
	for _, entry := range entries {
		bs = append(bs, EncodeEntry(entry)...)
	}
	return bs
}
