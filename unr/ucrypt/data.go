// Package ucrypt strips the Lineage 2 client encryption from package files.
package ucrypt

import (
	"math/big"
)

type (
	RSAKey struct {
		Modulus  *big.Int
		Exponent *big.Int
	}
	ErrUnsupportedVersion struct {
		Caller     string
		Version    int
		MissingKey bool
	}
)

const (
	HeaderPrefix = "Lineage2Ver"
	// HeaderSize is the UTF-16LE encoding of "Lineage2Ver" and three digits.
	HeaderSize = 28
	// FooterSize is the trailer appended to encrypted files. It carries no
	// payload and is dropped before decryption.
	FooterSize = 20

	Version111 = 111
	Version121 = 121
	Version411 = 411
	Version412 = 412
	Version413 = 413
	Version414 = 414

	XORKey111    = byte(0xAC)
	RSABlockSize = 128
)
