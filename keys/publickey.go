package keys

import "encoding/hex"

const (
	// UncompressedPrefix marks the uncompressed public key encoding
	// (prefix || x || y).
	UncompressedPrefix = byte(0x04)

	// CoordinateLength is the byte length of one affine coordinate.
	CoordinateLength = 32

	// PointLength is the byte length of the prefix-free encoding (x || y).
	PointLength = 2 * CoordinateLength

	// UncompressedLength is the byte length of the full uncompressed
	// encoding (0x04 || x || y).
	UncompressedLength = 1 + PointLength
)

// PublicKey is a secp256k1 curve point in affine coordinates. It is obtained
// from PrivateKey.PublicKey and is always a valid, non-identity point.
type PublicKey struct {
	x [CoordinateLength]byte
	y [CoordinateLength]byte
}

// Bytes returns the 65-byte uncompressed encoding 0x04 || x || y.
func (p PublicKey) Bytes() [UncompressedLength]byte {
	var out [UncompressedLength]byte
	out[0] = UncompressedPrefix
	copy(out[1:1+CoordinateLength], p.x[:])
	copy(out[1+CoordinateLength:], p.y[:])
	return out
}

// PointBytes returns the 64-byte prefix-free encoding x || y. This is the
// form the Ethereum address derivation hashes.
func (p PublicKey) PointBytes() [PointLength]byte {
	var out [PointLength]byte
	copy(out[:CoordinateLength], p.x[:])
	copy(out[CoordinateLength:], p.y[:])
	return out
}

// X returns the 32-byte big-endian x coordinate.
func (p PublicKey) X() [CoordinateLength]byte {
	return p.x
}

// Y returns the 32-byte big-endian y coordinate.
func (p PublicKey) Y() [CoordinateLength]byte {
	return p.y
}

// FullHex returns the 65-byte uncompressed encoding as lowercase hex,
// including the 0x04 prefix byte and without a "0x" marker.
func (p PublicKey) FullHex() string {
	b := p.Bytes()
	return hex.EncodeToString(b[:])
}

// Hex returns the 64-byte prefix-free encoding as lowercase hex.
func (p PublicKey) Hex() string {
	b := p.PointBytes()
	return hex.EncodeToString(b[:])
}

// XHex returns the x coordinate as lowercase hex.
func (p PublicKey) XHex() string {
	return hex.EncodeToString(p.x[:])
}

// YHex returns the y coordinate as lowercase hex.
func (p PublicKey) YHex() string {
	return hex.EncodeToString(p.y[:])
}
