package unr

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"l2lo/unr/ubytes"
	"l2lo/unr/ucrypt"
	"l2lo/unr/uexport"
	"l2lo/unr/uheader"
	"l2lo/unr/uimport"
	"l2lo/unr/uname"
)

func Open(path string) (*Package, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, `unr.Open error: read "%s"`, path)
	}
	return FromBytes(filepath.Base(path), bs)
}

// FromBytes decrypts bs if needed and decodes its tables. fileName takes part
// in key derivation for some encrypted versions.
func FromBytes(fileName string, bs []byte) (*Package, error) {
	version, encrypted := ucrypt.ParseVersion(bs)
	data, err := ucrypt.Decrypt(fileName, bs)
	if err != nil {
		return nil, errors.Wrapf(err, `unr.FromBytes error: decrypt "%s"`, fileName)
	}
	if encrypted {
		Logger().Debug("decrypted package", zap.String("file", fileName), zap.Int("version", version))
	}

	if !uheader.IsValidTag(data) {
		return nil, ErrNotPackage{Caller: "unr.FromBytes", FileName: fileName}
	}

	reader := ubytes.NewBytesReader(data)
	pkg := Package{FileName: fileName, data: data}

	header, err := uheader.Decode(reader)
	if err != nil {
		return nil, errors.Wrapf(err, `unr.FromBytes error: "%s"`, fileName)
	}
	pkg.Header = *header

	if err := seek(reader, header.NameOffset, header.NameCount); err != nil {
		return nil, errors.Wrap(err, "unr.FromBytes error: name table")
	}
	if pkg.Names, err = uname.DecodeBlock(reader, int(header.NameCount)); err != nil {
		return nil, errors.Wrap(err, "unr.FromBytes error")
	}

	if err := seek(reader, header.ImportOffset, header.ImportCount); err != nil {
		return nil, errors.Wrap(err, "unr.FromBytes error: import table")
	}
	if pkg.Imports, err = uimport.DecodeBlock(reader, int(header.ImportCount)); err != nil {
		return nil, errors.Wrap(err, "unr.FromBytes error")
	}

	if err := seek(reader, header.ExportOffset, header.ExportCount); err != nil {
		return nil, errors.Wrap(err, "unr.FromBytes error: export table")
	}
	if pkg.Exports, err = uexport.DecodeBlock(reader, int(header.ExportCount)); err != nil {
		return nil, errors.Wrap(err, "unr.FromBytes error")
	}

	if err := pkg.validate(); err != nil {
		return nil, errors.Wrapf(err, `unr.FromBytes error: "%s"`, fileName)
	}

	Logger().Debug(
		"opened package",
		zap.String("file", fileName),
		zap.Any("header", pkg.Header),
		zap.Int("names", len(pkg.Names)),
		zap.Int("imports", len(pkg.Imports)),
		zap.Int("exports", len(pkg.Exports)),
	)
	return &pkg, nil
}

func seek(reader *ubytes.Reader, offset int32, count int32) error {
	if count < 0 {
		return errors.Errorf("seek error: negative count %d", count)
	}
	if offset < 0 || int64(offset) > reader.Size() {
		return errors.Errorf("seek error: offset %d outside of %d bytes", offset, reader.Size())
	}
	_, err := reader.Seek(int64(offset), io.SeekStart)
	return err
}

// validate checks every name index and object reference once, so that the
// accessors in resolve.go can index the tables directly.
func (p *Package) validate() error {
	checkName := func(caller string, index int32) error {
		if index < 0 || int(index) >= len(p.Names) {
			return ErrInvalidIndex{Caller: caller, Table: "name", Index: index, Size: len(p.Names)}
		}
		return nil
	}
	checkReference := func(caller string, ref int32) error {
		if _, err := p.ObjectReference(ref); err != nil {
			return errors.Wrap(err, caller)
		}
		return nil
	}

	for i, entry := range p.Imports {
		caller := "import " + strconv.Itoa(i)
		for _, index := range []int32{entry.ClassPackage, entry.ClassName, entry.ObjectName} {
			if err := checkName(caller, index); err != nil {
				return err
			}
		}
		if err := checkReference(caller, entry.Package); err != nil {
			return err
		}
	}
	for i, entry := range p.Exports {
		caller := "export " + strconv.Itoa(i)
		if err := checkName(caller, entry.ObjectName); err != nil {
			return err
		}
		for _, ref := range []int32{entry.Class, entry.Super, entry.Package} {
			if err := checkReference(caller, ref); err != nil {
				return err
			}
		}
		if entry.SerialSize < 0 || entry.SerialOffset < 0 ||
			int64(entry.SerialOffset)+int64(entry.SerialSize) > int64(len(p.data)) {
			return errors.Errorf(
				"%s: serial data [%d, +%d) outside of %d bytes",
				caller, entry.SerialOffset, entry.SerialSize, len(p.data),
			)
		}
	}
	return nil
}
