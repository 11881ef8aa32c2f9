// Package keys parses secp256k1 private keys and derives their uncompressed
// public keys. Curve arithmetic is delegated to an external primitive; this
// package only validates, encodes, and orchestrates.
package keys

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"
)

// PrivateKeyLength is the byte length of a secp256k1 private key.
const PrivateKeyLength = 32

// curveOrder is the secp256k1 group order n. A valid private key k satisfies
// 0 < k < n.
var curveOrder = crypto.S256().Params().N

// PrivateKey is a validated 32-byte big-endian secp256k1 scalar. The zero
// value is not usable; construct one with FromHex or FromBytes.
type PrivateKey struct {
	d [PrivateKeyLength]byte
}

// FromHex parses a private key from a 64-character hex string. A leading
// "0x" or "0X" prefix is tolerated and stripped, and hex digits may be in
// either case.
func FromHex(s string) (PrivateKey, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if len(s) != 2*PrivateKeyLength {
		return PrivateKey{}, MakeError(ErrInvalidLength,
			fmt.Sprintf("private key must be %d hex characters, got %d", 2*PrivateKeyLength, len(s)))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return PrivateKey{}, MakeError(ErrInvalidHexEncoding,
			"private key contains non-hexadecimal characters")
	}
	return FromBytes(b)
}

// FromBytes parses a private key from a byte slice, which must be exactly
// 32 bytes long.
func FromBytes(b []byte) (PrivateKey, error) {
	if len(b) != PrivateKeyLength {
		return PrivateKey{}, MakeError(ErrInvalidLength,
			fmt.Sprintf("private key must be %d bytes, got %d", PrivateKeyLength, len(b)))
	}
	k := new(big.Int).SetBytes(b)
	if k.Sign() == 0 || k.Cmp(curveOrder) >= 0 {
		return PrivateKey{}, MakeError(ErrInvalidPrivateKey,
			"private key must be in the range (0, n) for the secp256k1 group order n")
	}
	var priv PrivateKey
	copy(priv.d[:], b)
	return priv, nil
}

// Bytes returns the 32-byte big-endian scalar.
func (k PrivateKey) Bytes() [PrivateKeyLength]byte {
	return k.d
}
