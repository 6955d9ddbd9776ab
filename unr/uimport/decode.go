package uimport

import (
	"github.com/pkg/errors"
	"l2lo/unr/ubytes"
)

func DecodeEntry(reader *ubytes.Reader) (*Entry, error) {
	readCompactInt := ubytes.CreateCompactIntReadFunction(reader)
	readInt := ubytes.CreateIntReadFunction(reader)

	instructions := []ubytes.Instruction{
		{Key: "class_package", ReadFunction: readCompactInt},
		{Key: "class_name", ReadFunction: readCompactInt},
		{Key: "package", ReadFunction: readInt},
		{Key: "object_name", ReadFunction: readCompactInt},
	}
	entry, err := ubytes.ExecuteInstructions[Entry](instructions)
	if err != nil {
		err := errors.Wrap(err, "uimport.DecodeEntry error")
		return nil, err
	}

	return entry, nil
}

func DecodeBlock(reader *ubytes.Reader, numEntries int) ([]Entry, error) {
	if numEntries < 0 {
		return nil, errors.Errorf("uimport.DecodeBlock error: negative count %d", numEntries)
	}
	// entries take at least one byte each
	entries := make([]Entry, 0, min(numEntries, reader.Len()))
	for i := 0; i < numEntries; i++ {
		entry, err := DecodeEntry(reader)
		if err != nil {
			err := errors.Wrapf(err, "uimport.DecodeBlock error: entry %d", i)
			return nil, err
		}
		entries = append(entries, *entry)
	}

	return entries, nil
}
