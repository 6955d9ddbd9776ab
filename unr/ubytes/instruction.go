package ubytes

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// ExecuteInstructions runs the read functions in order and fills a T from
// the values through a JSON document, matching each instruction key to a json
// tag of T. A key without a matching tag is an error.
func ExecuteInstructions[T any](instructions []Instruction) (*T, error) {
	values := make(map[string]any, len(instructions))
	for _, instruction := range instructions {
		value, err := instruction.ReadFunction()
		if err != nil {
			return nil, errors.Wrapf(err, `ExecuteInstructions error: read "%s"`, instruction.Key)
		}
		values[instruction.Key] = value
	}
	document, err := json.Marshal(values)
	if err != nil {
		return nil, errors.Wrapf(err, "ExecuteInstructions error: marshal %v", values)
	}

	var t T
	decoder := json.NewDecoder(bytes.NewReader(document))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&t); err != nil {
		return nil, errors.Wrapf(err, `ExecuteInstructions error: fill %T from "%s"`, t, document)
	}
	return &t, nil
}

func CreateNBytesReadFunction(reader *Reader, n int) ReadFunction {
	return func() (any, error) {
		return reader.ReadBytes(n)
	}
}

func CreateIntReadFunction(reader *Reader) ReadFunction {
	return func() (any, error) {
		return reader.ReadInt()
	}
}

func CreateUInt32ReadFunction(reader *Reader) ReadFunction {
	return func() (any, error) {
		return reader.ReadUInt32()
	}
}

func CreateUInt16ReadFunction(reader *Reader) ReadFunction {
	return func() (any, error) {
		return reader.ReadUInt16()
	}
}

func CreateCompactIntReadFunction(reader *Reader) ReadFunction {
	return func() (any, error) {
		return reader.ReadCompactInt()
	}
}

func CreateStringReadFunction(reader *Reader) ReadFunction {
	return func() (any, error) {
		return reader.ReadString()
	}
}
