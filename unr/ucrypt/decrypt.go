package ucrypt

import (
	"bytes"
	"encoding/binary"
	"io"
	"math/big"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zlib"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
)

// ParseVersion returns the version number in a "Lineage2Ver###" header, or
// false when bs does not start with one.
func ParseVersion(bs []byte) (int, bool) {
	if len(bs) < HeaderSize {
		return 0, false
	}
	decoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	header, err := decoder.Bytes(bs[:HeaderSize])
	if err != nil || !strings.HasPrefix(string(header), HeaderPrefix) {
		return 0, false
	}
	version, err := strconv.Atoi(strings.TrimPrefix(string(header), HeaderPrefix))
	if err != nil {
		return 0, false
	}
	return version, true
}

func EncodeHeader(version int) []byte {
	encoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	bs, _ := encoder.Bytes([]byte(HeaderPrefix + strconv.Itoa(version)))
	return bs
}

// Decrypt returns the plain package bytes of a file. fileName is needed for
// Lineage2Ver121, whose key is derived from the lower-cased base name.
func Decrypt(fileName string, bs []byte) ([]byte, error) {
	version, ok := ParseVersion(bs)
	if !ok {
		return bs, nil
	}
	body := bs[HeaderSize:]
	switch version {
	case Version111:
		return xor(body, XORKey111), nil
	case Version121:
		return xor(body, XORKey121(fileName)), nil
	case Version411, Version412, Version413, Version414:
		key, ok := lookupRSAKey(version)
		if !ok {
			return nil, ErrUnsupportedVersion{Caller: "ucrypt.Decrypt", Version: version, MissingKey: true}
		}
		data, err := decryptRSA(body, key)
		if err != nil {
			return nil, errors.Wrapf(err, "ucrypt.Decrypt error: Lineage2Ver%d", version)
		}
		return data, nil
	default:
		return nil, ErrUnsupportedVersion{Caller: "ucrypt.Decrypt", Version: version}
	}
}

func XORKey121(fileName string) byte {
	sum := 0
	for _, r := range strings.ToLower(filepath.Base(fileName)) {
		sum += int(r)
	}
	return byte(sum & 0xFF)
}

// xor does not strip the footer: package offsets are absolute, so trailing
// bytes are never reached by the parser.
func xor(bs []byte, key byte) []byte {
	result := make([]byte, len(bs))
	for i, b := range bs {
		result[i] = b ^ key
	}
	return result
}

// decryptRSA turns 128-byte RSA blocks into a size-prefixed zlib stream and
// inflates it.
func decryptRSA(bs []byte, key RSAKey) ([]byte, error) {
	numBlocks := len(bs) / RSABlockSize
	if numBlocks == 0 {
		return nil, errors.New("decryptRSA error: no complete block")
	}
	compressed := make([]byte, 0, numBlocks*(RSABlockSize-4))
	for i := 0; i < numBlocks; i++ {
		block := bs[i*RSABlockSize : (i+1)*RSABlockSize]
		plain := new(big.Int).Exp(new(big.Int).SetBytes(block), key.Exponent, key.Modulus)
		decrypted := plain.FillBytes(make([]byte, RSABlockSize))
		size := int(decrypted[3])
		if size > RSABlockSize-4 {
			return nil, errors.Errorf("decryptRSA error: block %d declares size %d", i, size)
		}
		start := RSABlockSize - size - ((RSABlockSize - 4 - size) % 4)
		compressed = append(compressed, decrypted[start:start+size]...)
	}

	if len(compressed) < 4 {
		return nil, errors.New("decryptRSA error: missing uncompressed size")
	}
	uncompressedSize := int(binary.LittleEndian.Uint32(compressed[:4]))
	zReader, err := zlib.NewReader(bytes.NewReader(compressed[4:]))
	if err != nil {
		return nil, errors.Wrap(err, "decryptRSA error: open zlib stream")
	}
	defer zReader.Close()

	// the declared size is untrusted, so the buffer grows with the stream
	var data bytes.Buffer
	n, err := io.Copy(&data, io.LimitReader(zReader, int64(uncompressedSize)))
	if err != nil {
		return nil, errors.Wrap(err, "decryptRSA error: inflate")
	}
	if n != int64(uncompressedSize) {
		return nil, errors.Wrapf(
			io.ErrUnexpectedEOF,
			"decryptRSA error: inflated %d of %d declared bytes", n, uncompressedSize,
		)
	}
	return data.Bytes(), nil
}
