package uheader

import (
	"fmt"

	"github.com/pkg/errors"
	"l2lo/unr/ubytes"
)

type (
	ErrInvalidTag struct {
		Caller string
		Actual uint32
	}
)

func (r ErrInvalidTag) Error() string {
	return fmt.Sprintf(`%s: invalid package tag: expected "%#x", got "%#x"`, r.Caller, Tag, r.Actual)
}

func IsValidTag(bs []byte) bool {
	if len(bs) < 4 {
		return false
	}
	tag, err := ubytes.NewBytesReader(bs[:4]).ReadUInt32()
	return err == nil && tag == Tag
}

func createTagReadFunction(reader *ubytes.Reader) ubytes.ReadFunction {
	return func() (any, error) {
		tag, err := reader.ReadUInt32()
		if err != nil {
			return nil, err
		}
		if tag != Tag {
			return nil, ErrInvalidTag{Caller: "uheader.Decode", Actual: tag}
		}
		return tag, nil
	}
}

func Decode(reader *ubytes.Reader) (*Header, error) {
	readTag := createTagReadFunction(reader)
	readUInt16 := ubytes.CreateUInt16ReadFunction(reader)
	readUInt32 := ubytes.CreateUInt32ReadFunction(reader)
	readInt := ubytes.CreateIntReadFunction(reader)

	headerInstructions := []ubytes.Instruction{
		{Key: "tag", ReadFunction: readTag},
		{Key: "file_version", ReadFunction: readUInt16},
		{Key: "licensee_version", ReadFunction: readUInt16},
		{Key: "package_flags", ReadFunction: readUInt32},
		{Key: "name_count", ReadFunction: readInt},
		{Key: "name_offset", ReadFunction: readInt},
		{Key: "export_count", ReadFunction: readInt},
		{Key: "export_offset", ReadFunction: readInt},
		{Key: "import_count", ReadFunction: readInt},
		{Key: "import_offset", ReadFunction: readInt},
	}

	header, err := ubytes.ExecuteInstructions[Header](headerInstructions)
	if err != nil {
		return nil, errors.Wrap(err, "uheader.Decode error")
	}

	if header.FileVersion < VersionGUID {
		if header.HeritageCount, err = reader.ReadInt(); err != nil {
			return nil, errors.Wrap(err, "uheader.Decode error: read heritage_count")
		}
		if header.HeritageOffset, err = reader.ReadInt(); err != nil {
			return nil, errors.Wrap(err, "uheader.Decode error: read heritage_offset")
		}
		return header, nil
	}

	guidInstructions := []ubytes.Instruction{
		{Key: "guid", ReadFunction: ubytes.CreateNBytesReadFunction(reader, GUIDSize)},
		{Key: "generation_count", ReadFunction: readInt},
	}
	guid, err := ubytes.ExecuteInstructions[guidBlock](guidInstructions)
	if err != nil {
		return nil, errors.Wrap(err, "uheader.Decode error")
	}
	header.GUID = guid.GUID
	generationCount := guid.GenerationCount
	if generationCount < 0 {
		return nil, errors.Errorf("uheader.Decode error: negative generation count %d", generationCount)
	}
	header.Generations = make([]Generation, 0, min(int(generationCount), reader.Len()/GenerationSize))
	for i := int32(0); i < generationCount; i++ {
		generation, err := ubytes.ExecuteInstructions[Generation](
			[]ubytes.Instruction{
				{Key: "export_count", ReadFunction: readInt},
				{Key: "name_count", ReadFunction: readInt},
			},
		)
		if err != nil {
			return nil, errors.Wrapf(err, "uheader.Decode error: read generation %d", i)
		}
		header.Generations = append(header.Generations, *generation)
	}

	return header, nil
}
