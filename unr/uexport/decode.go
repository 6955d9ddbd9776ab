package uexport

import (
	"github.com/pkg/errors"
	"l2lo/unr/ubytes"
)

func DecodeEntry(reader *ubytes.Reader) (*Entry, error) {
	readCompactInt := ubytes.CreateCompactIntReadFunction(reader)
	readInt := ubytes.CreateIntReadFunction(reader)
	readUInt32 := ubytes.CreateUInt32ReadFunction(reader)

	instructions := []ubytes.Instruction{
		{Key: "class", ReadFunction: readCompactInt},
		{Key: "super", ReadFunction: readCompactInt},
		{Key: "package", ReadFunction: readInt},
		{Key: "object_name", ReadFunction: readCompactInt},
		{Key: "object_flags", ReadFunction: readUInt32},
		{Key: "serial_size", ReadFunction: readCompactInt},
	}
	entry, err := ubytes.ExecuteInstructions[Entry](instructions)
	if err != nil {
		err := errors.Wrap(err, "uexport.DecodeEntry error")
		return nil, err
	}

	// the offset is only written for objects that have a body
	if entry.SerialSize > 0 {
		entry.SerialOffset, err = reader.ReadCompactInt()
		if err != nil {
			err := errors.Wrap(err, "uexport.DecodeEntry error: read serial_offset")
			return nil, err
		}
	}

	return entry, nil
}

func DecodeBlock(reader *ubytes.Reader, numEntries int) ([]Entry, error) {
	if numEntries < 0 {
		return nil, errors.Errorf("uexport.DecodeBlock error: negative count %d", numEntries)
	}
	// entries take at least one byte each
	entries := make([]Entry, 0, min(numEntries, reader.Len()))
	for i := 0; i < numEntries; i++ {
		entry, err := DecodeEntry(reader)
		if err != nil {
			err := errors.Wrapf(err, "uexport.DecodeBlock error: entry %d", i)
			return nil, err
		}
		entries = append(entries, *entry)
	}

	return entries, nil
}
