package ubytes

import (
	"bytes"
)

type (
	Reader struct {
		bytes.Reader
	}
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)
)

const (
	// MaxCompactIntSize is the longest encoding of a compact integer: 6 value bits
	// in the first byte and 7 in each of the following four.
	MaxCompactIntSize = 5
)
