package keys

import (
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"
)

// Curve is the narrow view of a secp256k1 implementation this package
// consumes: base-point scalar multiplication plus a membership check used as
// a defensive guard. It is satisfied by crypto.S256() from go-ethereum as
// well as the btcec and dcrec curve implementations, so the primitive can be
// swapped without touching the derivation logic.
type Curve interface {
	ScalarBaseMult(k []byte) (x, y *big.Int)
	IsOnCurve(x, y *big.Int) bool
}

// PublicKey derives the uncompressed public key Q = k*G on the default
// secp256k1 implementation from go-ethereum.
func (k PrivateKey) PublicKey() (PublicKey, error) {
	return k.PublicKeyOnCurve(crypto.S256())
}

// PublicKeyOnCurve derives Q = k*G using the supplied curve primitive. The
// scalar was range-checked at construction, so any failure here indicates a
// faulty primitive rather than bad input.
func (k PrivateKey) PublicKeyOnCurve(curve Curve) (PublicKey, error) {
	x, y := curve.ScalarBaseMult(k.d[:])
	if x == nil || y == nil || (x.Sign() == 0 && y.Sign() == 0) {
		return PublicKey{}, MakeError(ErrCurveOperationFailed,
			"curve primitive returned the point at infinity for a nonzero scalar")
	}
	if !curve.IsOnCurve(x, y) {
		return PublicKey{}, MakeError(ErrCurveOperationFailed,
			"curve primitive returned a point not on the secp256k1 curve")
	}
	var pub PublicKey
	x.FillBytes(pub.x[:])
	y.FillBytes(pub.y[:])
	return pub, nil
}
