package unr

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"l2lo/unr/ucrypt"
	"l2lo/unr/uexport"
	"l2lo/unr/uheader"
	"l2lo/unr/uimport"
	"l2lo/unr/uname"
)

var (
	testNames = []uname.Entry{
		{Name: "None"}, {Name: "Core"}, {Name: "Class"}, {Name: "Engine"},
		{Name: "Level"}, {Name: "myLevel"}, {Name: "StaticMesh"}, {Name: "Package"},
		{Name: "Rock01"}, {Name: "L2Meshes"}, {Name: "Tree02"},
	}
	testImports = []uimport.Entry{
		{ClassPackage: 1, ClassName: 7, Package: 0, ObjectName: 3},  // -1 Engine
		{ClassPackage: 1, ClassName: 2, Package: -1, ObjectName: 4}, // -2 Engine.Level
		{ClassPackage: 1, ClassName: 2, Package: -1, ObjectName: 6}, // -3 Engine.StaticMesh
		{ClassPackage: 1, ClassName: 7, Package: 0, ObjectName: 9},  // -4 L2Meshes
		{ClassPackage: 3, ClassName: 6, Package: -4, ObjectName: 8}, // -5 L2Meshes.Rock01
	}
	testExports = []uexport.Entry{
		{Class: -2, Package: 0, ObjectName: 5},  // 1 myLevel
		{Class: -3, Package: 0, ObjectName: 10}, // 2 Tree02
		{Class: 0, Package: 0, ObjectName: 6},   // 3 StaticMesh class
	}
	testPayloads = [][]byte{{0x00, 0x01, 0x02, 0x03}, {0xAA}}
)

type PackageTestSuite struct {
	Package *Package
	suite.Suite
}

func (suite *PackageTestSuite) SetupSuite() {
	bs := EncodePackage(123, testNames, testImports, testExports, testPayloads)
	pkg, err := FromBytes("20_21.unr", bs)
	suite.Require().NoError(err)
	suite.Package = pkg
}

func (suite *PackageTestSuite) TestTables() {
	suite.Equal(testNames, suite.Package.Names)
	suite.Equal(testImports, suite.Package.Imports)
	suite.Len(suite.Package.Exports, len(testExports))
	suite.Equal(int32(4), suite.Package.Exports[0].SerialSize)
	suite.Equal(int32(0), suite.Package.Exports[2].SerialSize)
}

func (suite *PackageTestSuite) TestObjectReference() {
	entry, err := suite.Package.ObjectReference(1)
	suite.NoError(err)
	suite.Equal(Entry{Kind: EntryKindExport, Index: 0}, entry)
	suite.Equal(int32(1), entry.Reference())

	entry, err = suite.Package.ObjectReference(-5)
	suite.NoError(err)
	suite.Equal(Entry{Kind: EntryKindImport, Index: 4}, entry)
	suite.Equal(int32(-5), entry.Reference())

	entry, err = suite.Package.ObjectReference(0)
	suite.NoError(err)
	suite.True(entry.IsNone())

	for _, ref := range []int32{4, -6} {
		_, err = suite.Package.ObjectReference(ref)
		var errUnresolvable ErrUnresolvableReference
		suite.Require().True(errors.As(err, &errUnresolvable))
		suite.Equal(ref, errUnresolvable.Reference)
	}
}

func (suite *PackageTestSuite) TestNames() {
	rock, _ := suite.Package.ObjectReference(-5)
	suite.Equal("Rock01", suite.Package.ObjectName(rock))
	suite.Equal("L2Meshes.Rock01", suite.Package.ObjectFullName(rock))
	className, ok := suite.Package.FullClassName(rock)
	suite.True(ok)
	suite.Equal("Engine.StaticMesh", className)
	suite.Equal("L2Meshes.Rock01[Engine.StaticMesh]", suite.Package.Display(rock))

	level, _ := suite.Package.ObjectReference(1)
	suite.Equal("myLevel[Engine.Level]", suite.Package.Display(level))

	class, _ := suite.Package.ObjectReference(3)
	className, _ = suite.Package.FullClassName(class)
	suite.Equal(ClassFullName, className)

	_, ok = suite.Package.FullClassName(NoneEntry)
	suite.False(ok)
	suite.Equal(NoneName, suite.Package.Display(NoneEntry))
}

func (suite *PackageTestSuite) TestFindExport() {
	entry, err := suite.Package.FindExport("MYLEVEL", "engine.level")
	suite.NoError(err)
	suite.Equal(int32(1), entry.Reference())

	_, err = suite.Package.FindExport("myLevel", "Engine.StaticMesh")
	var errNotFound ErrRequiredObjectNotFound
	suite.Require().True(errors.As(err, &errNotFound))
	suite.Equal("Engine.StaticMesh", errNotFound.ClassName)
	suite.Contains(err.Error(), "myLevel[Engine.StaticMesh] not found")
}

func (suite *PackageTestSuite) TestRawData() {
	level, _ := suite.Package.ObjectReference(1)
	data, err := suite.Package.RawData(level)
	suite.NoError(err)
	suite.Equal(testPayloads[0], data)

	// the copy must not alias the package buffer
	data[0] = 0xFF
	data, _ = suite.Package.RawData(level)
	suite.Equal(byte(0x00), data[0])

	_, err = suite.Package.RawData(NoneEntry)
	suite.Error(err)
}

func TestPackage(t *testing.T) {
	suite.Run(t, new(PackageTestSuite))
}

func TestOpen_Encrypted(t *testing.T) {
	plain := EncodePackage(123, testNames, testImports, testExports, testPayloads)
	bs := ucrypt.EncodeHeader(ucrypt.Version111)
	for _, b := range plain {
		bs = append(bs, b^ucrypt.XORKey111)
	}
	path := filepath.Join(t.TempDir(), "20_21.unr")
	require.NoError(t, os.WriteFile(path, bs, 0644))

	pkg, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "20_21.unr", pkg.FileName)
	assert.Equal(t, testNames, pkg.Names)
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.unr"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromBytes_InvalidTables(t *testing.T) {
	badImports := []uimport.Entry{{ClassPackage: 1, ClassName: 99, ObjectName: 3}}
	_, err := FromBytes("bad.unr", EncodePackage(123, testNames, badImports, nil, nil))
	var errInvalidIndex ErrInvalidIndex
	require.True(t, errors.As(err, &errInvalidIndex))
	assert.Equal(t, int32(99), errInvalidIndex.Index)

	badExports := []uexport.Entry{{Class: -9, ObjectName: 5}}
	_, err = FromBytes("bad.unr", EncodePackage(123, testNames, testImports, badExports, nil))
	var errUnresolvable ErrUnresolvableReference
	require.True(t, errors.As(err, &errUnresolvable))
	assert.Equal(t, int32(-9), errUnresolvable.Reference)

	bs := EncodePackage(123, testNames, testImports, testExports, testPayloads)
	_, err = FromBytes("short.unr", bs[:len(bs)-3])
	assert.Error(t, err)
}

func TestFromBytes_NotPackage(t *testing.T) {
	_, err := FromBytes("readme.txt", []byte("not a map"))
	var errNotPackage ErrNotPackage
	require.True(t, errors.As(err, &errNotPackage))
	assert.Equal(t, "readme.txt", errNotPackage.FileName)
}

func TestFromBytes_HugeCounts(t *testing.T) {
	encode := func(header uheader.Header) []byte {
		bs := uheader.Encode(header)
		return append(bs, uname.EncodeEntry(uname.Entry{Name: "None"})...)
	}
	base := uheader.Header{Tag: uheader.Tag, FileVersion: 123}
	tableOffset := int32(uheader.CalculateSize(base))

	tests := []struct {
		name   string
		header uheader.Header
	}{
		{"names", uheader.Header{Tag: uheader.Tag, FileVersion: 123, NameCount: 0x7FFFFFFF, NameOffset: tableOffset}},
		{"imports", uheader.Header{Tag: uheader.Tag, FileVersion: 123, ImportCount: 0x7FFFFFFF, ImportOffset: tableOffset}},
		{"exports", uheader.Header{Tag: uheader.Tag, FileVersion: 123, ExportCount: 0x7FFFFFFF, ExportOffset: tableOffset}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := FromBytes("corrupt.unr", encode(test.header))
			assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
		})
	}

	// a generation count past the end of the file
	bs := uheader.Encode(base)
	bs = append(bs[:len(bs)-4], 0xFF, 0xFF, 0xFF, 0x7F)
	_, err := FromBytes("corrupt.unr", bs)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
