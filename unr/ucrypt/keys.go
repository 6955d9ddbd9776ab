package ucrypt

import (
	"math/big"
	"sync"

	"github.com/pkg/errors"
)

var (
	rsaKeys   = map[int]RSAKey{}
	rsaKeysMu sync.RWMutex
)

// RegisterRSAKey sets the public key used to decrypt Lineage2Ver<version> files.
func RegisterRSAKey(version int, key RSAKey) {
	rsaKeysMu.Lock()
	defer rsaKeysMu.Unlock()
	rsaKeys[version] = key
}

func lookupRSAKey(version int) (RSAKey, bool) {
	rsaKeysMu.RLock()
	defer rsaKeysMu.RUnlock()
	key, ok := rsaKeys[version]
	return key, ok
}

// ParseRSAKey builds a key from hexadecimal modulus and exponent strings.
func ParseRSAKey(modulusHex string, exponentHex string) (RSAKey, error) {
	modulus, ok := new(big.Int).SetString(trimHexPrefix(modulusHex), 16)
	if !ok {
		return RSAKey{}, errors.Errorf(`ParseRSAKey error: invalid modulus "%s"`, modulusHex)
	}
	exponent, ok := new(big.Int).SetString(trimHexPrefix(exponentHex), 16)
	if !ok {
		return RSAKey{}, errors.Errorf(`ParseRSAKey error: invalid exponent "%s"`, exponentHex)
	}
	return RSAKey{Modulus: modulus, Exponent: exponent}, nil
}

func trimHexPrefix(s string) string {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
