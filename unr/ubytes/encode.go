package ubytes

import (
	"encoding/binary"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func EncodeValueInt(value any) []byte {
	valueUInt32 := uint32(0)
	switch v := value.(type) {
	case int:
		valueUInt32 = uint32(v)
	case int32:
		valueUInt32 = uint32(v)
	case uint32:
		valueUInt32 = v
	case uint16:
		valueUInt32 = uint32(v)
	}
	bs := make([]byte, 4)
	binary.LittleEndian.PutUint32(bs, valueUInt32)
	return bs
}

func EncodeValueUInt16(value uint16) []byte {
	bs := make([]byte, 2)
	binary.LittleEndian.PutUint16(bs, value)
	return bs
}

func EncodeCompactInt(value int32) []byte {
	bs := make([]byte, 0, MaxCompactIntSize)
	// widen first so that the magnitude of math.MinInt32 does not overflow
	abs := int64(value)
	first := byte(0)
	if abs < 0 {
		abs = -abs
		first |= 0x80
	}
	first |= byte(abs & 0x3F)
	abs >>= 6
	if abs > 0 {
		first |= 0x40
	}
	bs = append(bs, first)
	for abs > 0 {
		next := byte(abs & 0x7F)
		abs >>= 7
		if abs > 0 {
			next |= 0x80
		}
		bs = append(bs, next)
	}
	return bs
}

// EncodeString writes s the way ReadString expects it: Windows-1252 when every
// rune fits the code page, UTF-16LE otherwise.
func EncodeString(s string) []byte {
	if s == "" {
		return EncodeCompactInt(0)
	}
	if ansi, err := charmap.Windows1252.NewEncoder().Bytes([]byte(s)); err == nil {
		bs := EncodeCompactInt(int32(len(ansi) + 1))
		bs = append(bs, ansi...)
		return append(bs, 0)
	}
	utf16, _ := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	bs := EncodeCompactInt(-int32(len(utf16)/2 + 1))
	bs = append(bs, utf16...)
	return append(bs, 0, 0)
}

func CreateZeroBytes(n int) []byte {
	return make([]byte, n)
}
