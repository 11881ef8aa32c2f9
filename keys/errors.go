package keys

// ErrorKind identifies a kind of error. It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidLength is returned when a private key is not exactly 32
	// bytes (64 hex characters), or when a prefix-free public key handed
	// to the address deriver is not exactly 64 bytes.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")

	// ErrInvalidHexEncoding is returned when a string input contains
	// characters outside [0-9a-fA-F] after the optional "0x" prefix has
	// been stripped.
	ErrInvalidHexEncoding = ErrorKind("ErrInvalidHexEncoding")

	// ErrInvalidPrivateKey is returned when the decoded scalar is zero or
	// not less than the secp256k1 group order.
	ErrInvalidPrivateKey = ErrorKind("ErrInvalidPrivateKey")

	// ErrCurveOperationFailed is returned when the curve primitive produces
	// a nil, identity, or off-curve point for a validated nonzero scalar.
	// This is a defensive guard and is unreachable with a correct primitive.
	ErrCurveOperationFailed = ErrorKind("ErrCurveOperationFailed")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a key parsing or derivation error. It has full support
// for errors.Is and errors.As, so the caller can ascertain the specific
// reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// MakeError creates an Error given a set of arguments. It is exported so
// sibling packages sharing this error taxonomy can construct errors of the
// same shape.
func MakeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
