package domain

import "errors"

var (
	// ErrInvalidPublicKey is returned when key bytes do not decode to a
	// valid point on the expected curve.
	ErrInvalidPublicKey = errors.New("invalid public key")
	// ErrInvalidPrivateKey is returned when private key bytes are the wrong
	// length or out of the scalar range [1, n-1].
	ErrInvalidPrivateKey = errors.New("invalid private key")
	// ErrMalformedBlob is returned when a ciphertext blob is shorter than
	// its fixed-length header plus tag.
	ErrMalformedBlob = errors.New("malformed ciphertext blob")
	// ErrAuthentication is returned when the authentication tag does not
	// verify on decrypt.
	ErrAuthentication = errors.New("ciphertext authentication failed")
)
