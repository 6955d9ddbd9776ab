package ubytes

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

// Position returns the number of bytes consumed so far.
func (b *Reader) Position() int {
	return int(b.Size()) - b.Len()
}

func (b *Reader) ReadInt() (int32, error) {
	bs, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	result := binary.LittleEndian.Uint32(bs)
	return int32(result), nil
}

func (b *Reader) ReadUInt32() (uint32, error) {
	bs, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}

func (b *Reader) ReadUInt16() (uint16, error) {
	bs, err := b.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(bs), nil
}

func (b *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.Errorf("ReadBytes error: negative length %d", n)
	}
	if n > b.Len() {
		return nil, io.ErrUnexpectedEOF
	}
	bs := make([]byte, n)
	// add return early to avoid EOF error
	// when reader's pointer reach end of file
	// while the number of next bytes to read is 0
	if n == 0 {
		return bs, nil
	}
	// a short read is always a truncated buffer here, never a clean end of input
	if _, err := io.ReadFull(b, bs); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return bs, nil
}

func (b *Reader) readByte() (byte, error) {
	c, err := b.ReadByte()
	if err == io.EOF {
		return 0, io.ErrUnexpectedEOF
	}
	return c, err
}

// ReadCompactInt reads an Unreal compact index.
//
//	first byte:  S C VVVVVV   (sign, continue, 6 value bits)
//	next bytes:  C VVVVVVV    (continue, 7 value bits)
func (b *Reader) ReadCompactInt() (int32, error) {
	first, err := b.readByte()
	if err != nil {
		return 0, err
	}
	negative := first&0x80 != 0
	value := int32(first & 0x3F)
	if first&0x40 != 0 {
		shift := 6
		for i := 1; i < MaxCompactIntSize; i++ {
			next, err := b.readByte()
			if err != nil {
				return 0, err
			}
			value |= int32(next&0x7F) << shift
			shift += 7
			if next&0x80 == 0 {
				break
			}
		}
	}
	if negative {
		value = -value
	}
	return value, nil
}

// ReadString reads a compact-length prefixed string. A positive length counts
// Windows-1252 bytes, a negative one UTF-16LE code units; both include the
// terminating NUL.
func (b *Reader) ReadString() (string, error) {
	length, err := b.ReadCompactInt()
	if err != nil {
		return "", errors.Wrap(err, "ReadString error: read length")
	}
	switch {
	case length == 0:
		return "", nil
	case length > 0:
		bs, err := b.ReadBytes(int(length))
		if err != nil {
			return "", errors.Wrap(err, "ReadString error: read bytes")
		}
		s, err := charmap.Windows1252.NewDecoder().Bytes(bs[:len(bs)-1])
		if err != nil {
			return "", errors.Wrap(err, "ReadString error: decode Windows-1252")
		}
		return string(s), nil
	default:
		bs, err := b.ReadBytes(-2 * int(length))
		if err != nil {
			return "", errors.Wrap(err, "ReadString error: read bytes")
		}
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
		s, err := decoder.Bytes(bs[:len(bs)-2])
		if err != nil {
			return "", errors.Wrap(err, "ReadString error: decode UTF-16")
		}
		return string(s), nil
	}
}
