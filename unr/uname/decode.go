package uname

import (
	"github.com/pkg/errors"
	"l2lo/unr/ubytes"
)

func DecodeEntry(reader *ubytes.Reader) (*Entry, error) {
	readString := ubytes.CreateStringReadFunction(reader)
	readInt := ubytes.CreateIntReadFunction(reader)

	nameInstructions := []ubytes.Instruction{
		{Key: "name", ReadFunction: readString},
		{Key: "flags", ReadFunction: readInt},
	}
	entry, err := ubytes.ExecuteInstructions[Entry](nameInstructions)
	if err != nil {
		err := errors.Wrap(err, "uname.DecodeEntry error")
		return nil, err
	}

	return entry, nil
}

func DecodeBlock(reader *ubytes.Reader, numEntries int) ([]Entry, error) {
	if numEntries < 0 {
		return nil, errors.Errorf("uname.DecodeBlock error: negative count %d", numEntries)
	}
	// entries take at least one byte each
	entries := make([]Entry, 0, min(numEntries, reader.Len()))
	for i := 0; i < numEntries; i++ {
		entry, err := DecodeEntry(reader)
		if err != nil {
			err := errors.Wrapf(err, "uname.DecodeBlock error: entry %d", i)
			return nil, err
		}
		entries = append(entries, *entry)
	}

	return entries, nil
}
