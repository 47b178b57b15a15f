package crypto

import (
	"encoding/hex"
	"strings"
)

// Hex returns lowercase hex encoding without a prefix.
func Hex(b []byte) string { return hex.EncodeToString(b) }

// FromHex decodes a hex string, accepting an optional 0x prefix.
func FromHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}
