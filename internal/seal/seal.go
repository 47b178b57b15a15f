package seal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdh"
	"crypto/rand"
	"fmt"

	"tipjar/internal/domain"
)

const (
	// EphemeralKeySize is the length of the uncompressed ephemeral public
	// key at the start of a blob.
	EphemeralKeySize = 65
	// NonceSize is the length of the GCM nonce following the ephemeral key.
	NonceSize = 12
	// TagSize is the length of the GCM authentication tag at the end.
	TagSize = 16
	// Overhead is the total size a blob adds over its plaintext; it is
	// also the minimum valid blob length.
	Overhead = EphemeralKeySize + NonceSize + TagSize
)

// Encrypt seals plaintext to the holder of recipientPub, a 65-byte
// uncompressed P-256 public key. Each call draws a fresh ephemeral key
// pair and nonce, so encrypting the same plaintext twice yields distinct
// blobs. The ephemeral private key never leaves this function.
func Encrypt(recipientPub, plaintext []byte) ([]byte, error) {
	pub, err := ecdh.P256().NewPublicKey(recipientPub)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPublicKey, err)
	}

	eph, err := ecdh.P256().GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}

	secret, err := eph.ECDH(pub)
	if err != nil {
		return nil, err
	}

	aead, err := newGCM(secret)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	blob := make([]byte, 0, Overhead+len(plaintext))
	blob = append(blob, eph.PublicKey().Bytes()...)
	blob = append(blob, nonce...)
	return aead.Seal(blob, nonce, plaintext, nil), nil
}

// Decrypt opens a blob produced by Encrypt using the recipient's 32-byte
// private key. A failed tag check returns domain.ErrAuthentication and no
// plaintext; a truncated blob returns domain.ErrMalformedBlob.
func Decrypt(recipientPriv, blob []byte) ([]byte, error) {
	if len(blob) < Overhead {
		return nil, fmt.Errorf("%w: got %d bytes, want at least %d",
			domain.ErrMalformedBlob, len(blob), Overhead)
	}

	priv, err := ecdh.P256().NewPrivateKey(recipientPriv)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPrivateKey, err)
	}

	ephPub, err := ecdh.P256().NewPublicKey(blob[:EphemeralKeySize])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPublicKey, err)
	}

	secret, err := priv.ECDH(ephPub)
	if err != nil {
		return nil, err
	}

	aead, err := newGCM(secret)
	if err != nil {
		return nil, err
	}

	nonce := blob[EphemeralKeySize : EphemeralKeySize+NonceSize]
	plaintext, err := aead.Open(nil, nonce, blob[EphemeralKeySize+NonceSize:], nil)
	if err != nil {
		return nil, domain.ErrAuthentication
	}
	return plaintext, nil
}

// GenerateRecipient returns a fresh P-256 key pair as raw bytes: a
// 32-byte private key and its 65-byte uncompressed public key.
func GenerateRecipient() (priv, pub []byte, err error) {
	k, err := ecdh.P256().GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, err
	}
	return k.Bytes(), k.PublicKey().Bytes(), nil
}

// newGCM builds the AEAD from the raw ECDH output. The 32-byte secret
// selects AES-256.
func newGCM(secret []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(secret)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
