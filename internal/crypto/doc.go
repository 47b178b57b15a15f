// Package crypto exposes the minimal primitives used by tipjar.
//
// Contents
//
//   - Keccak-256 hashing for identifier scalars and account addresses
//     (Keccak256)
//   - Hex encoding and decoding for boundary values (Hex, FromHex)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// All boundary values (keys, blobs, addresses) cross into and out of the
// core as hex strings. Callers should treat private key material as
// sensitive and rely on Wipe when practical to reduce lifetime in memory.
package crypto
