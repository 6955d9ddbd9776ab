package uname

import (
	"l2lo/unr/ubytes"
)

func EncodeEntry(entry Entry) []byte {
	bs := ubytes.EncodeString(entry.Name)
	bs = append(bs, ubytes.EncodeValueInt(entry.Flags)...)
	return bs
}

func EncodeBlock(entries []Entry) []byte {
	bs := make([]byte, 0)
	for _, entry := range entries {
		bs = append(bs, EncodeEntry(entry)...)
	}
	return bs
}
