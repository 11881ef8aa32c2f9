// Package address derives EIP-55 checksummed Ethereum addresses from
// secp256k1 public keys.
package address

import (
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/Kuly14/ethereum-private-key-to-address/keys"
)

// Length is the byte length of an Ethereum address.
const Length = 20

// Address is a 20-byte Ethereum account address.
type Address [Length]byte

// FromPublicKey derives the address of a public key: the last 20 bytes of
// the Keccak-256 digest of its prefix-free uncompressed encoding.
func FromPublicKey(pub keys.PublicKey) Address {
	return FromPointBytes(pub.PointBytes())
}

// FromPointBytes derives the address from a 64-byte prefix-free public key
// encoding x || y.
func FromPointBytes(pub [keys.PointLength]byte) Address {
	digest := crypto.Keccak256(pub[:])
	var addr Address
	copy(addr[:], digest[32-Length:])
	return addr
}

// FromUncompressed derives the address from a prefix-free public key slice,
// which must be exactly 64 bytes long.
func FromUncompressed(pub []byte) (Address, error) {
	if len(pub) != keys.PointLength {
		return Address{}, keys.MakeError(keys.ErrInvalidLength,
			fmt.Sprintf("prefix-free public key must be %d bytes, got %d", keys.PointLength, len(pub)))
	}
	var point [keys.PointLength]byte
	copy(point[:], pub)
	return FromPointBytes(point), nil
}

// Bytes returns the raw 20-byte address.
func (a Address) Bytes() [Length]byte {
	return a
}

// Hex returns the EIP-55 mixed-case checksummed representation, prefixed
// with "0x".
func (a Address) Hex() string {
	buf := make([]byte, 2*Length)
	hex.Encode(buf, a[:])
	return "0x" + string(checksum(buf))
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return a.Hex()
}

// Checksum applies the EIP-55 mixed-case transform to a 40-character hex
// address string. A leading "0x" or "0X" prefix is tolerated, and the input
// may be in any mix of cases; the result always carries the "0x" prefix.
func Checksum(s string) (string, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if len(s) != 2*Length {
		return "", keys.MakeError(keys.ErrInvalidLength,
			fmt.Sprintf("address must be %d hex characters, got %d", 2*Length, len(s)))
	}
	if _, err := hex.DecodeString(s); err != nil {
		return "", keys.MakeError(keys.ErrInvalidHexEncoding,
			"address contains non-hexadecimal characters")
	}
	buf := []byte(s)
	for i, c := range buf {
		if c >= 'A' && c <= 'F' {
			buf[i] = c + ('a' - 'A')
		}
	}
	return "0x" + string(checksum(buf)), nil
}

// checksum uppercases, in place, every hex letter of the lowercase address
// whose corresponding nibble in the Keccak-256 digest of the address string
// is >= 8, per EIP-55. Digits are never changed. The input must be 40
// lowercase hex characters.
func checksum(lower []byte) []byte {
	digest := crypto.Keccak256(lower)
	for i, c := range lower {
		if c < 'a' {
			continue
		}
		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if nibble&0x0f >= 8 {
			lower[i] = c - ('a' - 'A')
		}
	}
	return lower
}
