package level

import (
	"l2lo/unr/ubytes"
)

// EncodeObjectList is the inverse of DecodeObjectList. Reserved fields are
// written as zero.
func EncodeObjectList(tag int32, first []int32, second []int32) []byte {
	bs := ubytes.EncodeCompactInt(tag)
	bs = append(bs, encodeReferences(first)...)
	bs = append(bs, encodeReferences(second)...)
	return bs
}

func encodeReferences(refs []int32) []byte {
	bs := ubytes.EncodeValueInt(len(refs))
	bs = append(bs, ubytes.CreateZeroBytes(4)...)
	for _, ref := range refs {
		bs = append(bs, ubytes.EncodeCompactInt(ref)...)
	}
	return bs
}
