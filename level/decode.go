package level

import (
	"github.com/pkg/errors"
	"l2lo/unr"
	"l2lo/unr/ubytes"
)

// DecodeObjectList reads both reference arrays and returns their entries, the
// first array followed by the second, in read order. A zero reference in the
// first array becomes unr.NoneEntry without consulting the resolver; the second
// array hands every reference to the resolver.
//
// Any failure aborts the decode and no entries are returned.
func DecodeObjectList(reader *ubytes.Reader, resolver Resolver) ([]unr.Entry, error) {
	const caller = "level.DecodeObjectList"

	position := reader.Position()
	if _, err := reader.ReadCompactInt(); err != nil {
		return nil, ErrMalformedPayload{Caller: caller, Field: "tag", Position: position, Cause: err}
	}

	first, err := decodeReferences(reader, resolver, true)
	if err != nil {
		return nil, errors.Wrap(err, "level.DecodeObjectList error: first array")
	}
	second, err := decodeReferences(reader, resolver, false)
	if err != nil {
		return nil, errors.Wrap(err, "level.DecodeObjectList error: second array")
	}

	return append(first, second...), nil
}

func decodeReferences(reader *ubytes.Reader, resolver Resolver, zeroIsNone bool) ([]unr.Entry, error) {
	const caller = "level.decodeReferences"

	position := reader.Position()
	count, err := reader.ReadInt()
	if err != nil {
		return nil, ErrMalformedPayload{Caller: caller, Field: "count", Position: position, Cause: err}
	}
	if count < 0 {
		return nil, ErrMalformedPayload{
			Caller:   caller,
			Field:    "count",
			Position: position,
			Cause:    errors.Errorf("negative count %d", count),
		}
	}
	position = reader.Position()
	if _, err := reader.ReadInt(); err != nil {
		return nil, ErrMalformedPayload{Caller: caller, Field: "reserved", Position: position, Cause: err}
	}

	// every reference takes at least one byte
	entries := make([]unr.Entry, 0, min(int(count), reader.Len()))
	for i := 0; i < int(count); i++ {
		position = reader.Position()
		ref, err := reader.ReadCompactInt()
		if err != nil {
			return nil, ErrMalformedPayload{Caller: caller, Field: "reference", Position: position, Cause: err}
		}
		if zeroIsNone && ref == 0 {
			entries = append(entries, unr.NoneEntry)
			continue
		}
		entry, err := resolver.ObjectReference(ref)
		if err != nil {
			return nil, unr.ErrUnresolvableReference{Caller: caller, Reference: ref, Cause: err}
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// LoadObjectList finds myLevel[Engine.Level] in pkg and decodes its list.
func LoadObjectList(pkg *unr.Package) ([]unr.Entry, error) {
	levelEntry, err := pkg.FindExport(unr.LevelName, unr.LevelClassName)
	if err != nil {
		return nil, errors.Wrap(err, "level.LoadObjectList error")
	}
	data, err := pkg.RawData(levelEntry)
	if err != nil {
		return nil, errors.Wrap(err, "level.LoadObjectList error")
	}
	entries, err := DecodeObjectList(ubytes.NewBytesReader(data), pkg)
	if err != nil {
		return nil, errors.Wrapf(err, `level.LoadObjectList error: "%s"`, pkg.FileName)
	}
	return entries, nil
}
