// Package seal implements one-shot hybrid encryption to a fixed P-256
// public key: a fresh ephemeral ECDH key pair per message, with the raw
// 32-byte shared secret used as an AES-256-GCM key.
//
// Blob layout (all offsets fixed):
//
//	[0, 65)   uncompressed ephemeral public key
//	[65, 77)  12-byte GCM nonce
//	[77, ...) ciphertext followed by the 16-byte tag
//
// The shared secret is used as the AEAD key without an intermediate KDF.
// Inserting one (for example HKDF) would be the stronger construction but
// changes the wire format; any such change needs a blob version bump, since
// existing blobs would no longer decrypt.
package seal
