package ucrypt

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"encoding/binary"
	"io"
	"math/big"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encryptXOR(version int, key byte, plain []byte) []byte {
	bs := EncodeHeader(version)
	bs = append(bs, xor(plain, key)...)
	return append(bs, make([]byte, FooterSize)...)
}

func TestParseVersion(t *testing.T) {
	version, ok := ParseVersion(EncodeHeader(Version121))
	assert.True(t, ok)
	assert.Equal(t, Version121, version)

	_, ok = ParseVersion([]byte{0xC1, 0x83, 0x2A, 0x9E})
	assert.False(t, ok)

	_, ok = ParseVersion(make([]byte, HeaderSize))
	assert.False(t, ok)
}

func TestDecrypt_Plain(t *testing.T) {
	plain := []byte{0xC1, 0x83, 0x2A, 0x9E, 1, 2, 3}
	result, err := Decrypt("Anything.unr", plain)
	require.NoError(t, err)
	assert.Equal(t, plain, result)
}

func TestDecrypt_111(t *testing.T) {
	plain := []byte("package body")
	result, err := Decrypt("20_21.unr", encryptXOR(Version111, XORKey111, plain))
	require.NoError(t, err)
	assert.Equal(t, plain, result[:len(plain)])
}

func TestDecrypt_121(t *testing.T) {
	plain := []byte("package body")
	key := XORKey121("20_21.unr")
	assert.Equal(t, XORKey121("/games/L2/MAPS/20_21.UNR"), key)

	result, err := Decrypt("/games/L2/maps/20_21.unr", encryptXOR(Version121, key, plain))
	require.NoError(t, err)
	assert.Equal(t, plain, result[:len(plain)])
}

func TestXORKey121(t *testing.T) {
	// '2'+'0'+'_'+'2'+'1'+'.'+'u'+'n'+'r' = 50+48+95+50+49+46+117+110+114
	assert.Equal(t, byte(679&0xFF), XORKey121("20_21.unr"))
}

func TestDecrypt_Unsupported(t *testing.T) {
	_, err := Decrypt("20_21.unr", EncodeHeader(120))
	var errUnsupported ErrUnsupportedVersion
	require.True(t, errors.As(err, &errUnsupported))
	assert.Equal(t, 120, errUnsupported.Version)
	assert.False(t, errUnsupported.MissingKey)

	_, err = Decrypt("20_21.unr", append(EncodeHeader(Version412), make([]byte, RSABlockSize)...))
	require.True(t, errors.As(err, &errUnsupported))
	assert.Equal(t, Version412, errUnsupported.Version)
	assert.True(t, errUnsupported.MissingKey)
	assert.EqualError(t, err, "ucrypt.Decrypt: unsupported Lineage2Ver412 encryption: no RSA key registered")
}

func encryptRSA(t *testing.T, private *rsa.PrivateKey, plain []byte, declaredSize uint32) []byte {
	var compressed bytes.Buffer
	size := make([]byte, 4)
	binary.LittleEndian.PutUint32(size, declaredSize)
	compressed.Write(size)
	zWriter := zlib.NewWriter(&compressed)
	_, err := zWriter.Write(plain)
	require.NoError(t, err)
	require.NoError(t, zWriter.Close())

	stream := compressed.Bytes()
	bs := make([]byte, 0)
	for len(stream) > 0 {
		n := min(len(stream), RSABlockSize-4)
		block := make([]byte, RSABlockSize)
		block[3] = byte(n)
		start := RSABlockSize - n - ((RSABlockSize - 4 - n) % 4)
		copy(block[start:], stream[:n])
		stream = stream[n:]

		cipher := new(big.Int).Exp(new(big.Int).SetBytes(block), private.D, private.N)
		bs = append(bs, cipher.FillBytes(make([]byte, RSABlockSize))...)
	}
	return bs
}

func TestDecrypt_413(t *testing.T) {
	private, err := rsa.GenerateKey(rand.Reader, 1024)
	require.NoError(t, err)
	RegisterRSAKey(Version413, RSAKey{
		Modulus:  private.N,
		Exponent: big.NewInt(int64(private.E)),
	})
	t.Cleanup(func() {
		rsaKeysMu.Lock()
		delete(rsaKeys, Version413)
		rsaKeysMu.Unlock()
	})

	plain := bytes.Repeat([]byte("myLevel Engine.Level StaticMesh "), 40)
	bs := EncodeHeader(Version413)
	bs = append(bs, encryptRSA(t, private, plain, uint32(len(plain)))...)
	bs = append(bs, make([]byte, FooterSize)...)

	result, err := Decrypt("20_21.unr", bs)
	require.NoError(t, err)
	assert.Equal(t, plain, result)
}

func TestDecryptRSA_DeclaredSizeTooLarge(t *testing.T) {
	private, err := rsa.GenerateKey(rand.Reader, 1024)
	require.NoError(t, err)
	key := RSAKey{Modulus: private.N, Exponent: big.NewInt(int64(private.E))}

	plain := []byte("myLevel")
	_, err = decryptRSA(encryptRSA(t, private, plain, 0xFFFFFFFF), key)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	result, err := decryptRSA(encryptRSA(t, private, plain, 3), key)
	require.NoError(t, err)
	assert.Equal(t, []byte("myL"), result)
}

func TestParseRSAKey(t *testing.T) {
	key, err := ParseRSAKey("0x97df", "35")
	require.NoError(t, err)
	assert.Equal(t, int64(0x97df), key.Modulus.Int64())
	assert.Equal(t, int64(0x35), key.Exponent.Int64())

	_, err = ParseRSAKey("zz", "35")
	assert.Error(t, err)
}
