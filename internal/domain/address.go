package domain

import (
	"encoding"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// AddressLength is the length of an account address in bytes.
const AddressLength = 20

// Address is the low-order 20 bytes of the Keccak-256 hash of an account's
// uncompressed public key.
type Address [AddressLength]byte

// Slice returns the address as a []byte.
func (a Address) Slice() []byte { return a[:] }

// Hex returns the address as a 0x-prefixed, mixed-case checksummed string
// per EIP-55: each hex letter is uppercased when the corresponding nibble
// of the Keccak-256 hash of the lowercase hex address is >= 8.
func (a Address) Hex() string {
	buf := make([]byte, AddressLength*2)
	hex.Encode(buf, a[:])

	d := sha3.NewLegacyKeccak256()
	d.Write(buf)
	sum := d.Sum(nil)

	for i, c := range buf {
		if c < 'a' || c > 'f' {
			continue
		}
		nib := sum[i/2]
		if i%2 == 0 {
			nib >>= 4
		} else {
			nib &= 0x0f
		}
		if nib >= 8 {
			buf[i] = c - ('a' - 'A')
		}
	}
	return "0x" + string(buf)
}

// String implements fmt.Stringer, returning the checksummed hex form.
func (a Address) String() string { return a.Hex() }

// ParseAddress decodes a hex address, with or without the 0x prefix.
// Letter case is not checked; Hex re-derives the checksum casing.
func ParseAddress(s string) (Address, error) {
	var a Address
	s = strings.TrimPrefix(s, "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return a, fmt.Errorf("invalid address: %w", err)
	}
	if len(raw) != AddressLength {
		return a, fmt.Errorf("invalid address: got %d bytes, want %d", len(raw), AddressLength)
	}
	copy(a[:], raw)
	return a, nil
}

// MarshalText encodes the address in checksummed hex form.
func (a Address) MarshalText() (text []byte, err error) {
	return []byte(a.Hex()), nil
}

// UnmarshalText decodes the result of MarshalText.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

var (
	_ encoding.TextMarshaler   = Address{}
	_ encoding.TextUnmarshaler = &Address{}
	_ fmt.Stringer             = Address{}
)
