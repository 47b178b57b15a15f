package crypto

import "golang.org/x/crypto/sha3"

// Keccak256 returns the legacy (pre-NIST) Keccak-256 digest of the
// concatenation of data. This is the hash used by the target chain for
// addresses, so it is also the hash identifiers are reduced through.
func Keccak256(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}
