package derive_test

import (
	"bytes"
	"errors"
	"testing"

	"tipjar/internal/derive"
	"tipjar/internal/domain"
)

// testRootPriv is the fixed root key used for cross-implementation
// conformance checks around the "feat-001" identifier.
var testRootPriv = []byte{
	0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10,
	0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18,
	0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f, 0x20,
}

func newTestOwner(t *testing.T) *derive.Owner {
	t.Helper()
	owner, err := derive.NewOwner(testRootPriv)
	if err != nil {
		t.Fatalf("NewOwner: %v", err)
	}
	return owner
}

func newTestDeriver(t *testing.T, owner *derive.Owner) *derive.Deriver {
	t.Helper()
	d, err := derive.NewDeriver(owner.Root().SerializeCompressed())
	if err != nil {
		t.Fatalf("NewDeriver: %v", err)
	}
	return d
}

func TestAddressDeterministic(t *testing.T) {
	owner := newTestOwner(t)
	d := newTestDeriver(t, owner)

	first := d.Address("feat-001")
	second := d.Address("feat-001")
	if first != second {
		t.Fatalf("address not deterministic: %s != %s", first, second)
	}
	if got := owner.Address("feat-001"); got != first {
		t.Fatalf("owner derives different address: %s != %s", got, first)
	}
}

func TestAddressComposition(t *testing.T) {
	owner := newTestOwner(t)
	d := newTestDeriver(t, owner)

	for _, id := range []string{"feat-001", "feat-002", "", "ünïcode-id"} {
		composed := derive.AddressFromPublicKey(d.PublicKey(id))
		if got := d.Address(id); got != composed {
			t.Fatalf("Address(%q) = %s, want %s", id, got, composed)
		}
	}
}

func TestPublicPrivateConsistency(t *testing.T) {
	owner := newTestOwner(t)
	d := newTestDeriver(t, owner)

	for _, id := range []string{"feat-001", "updates", "", "a much longer identifier with spaces"} {
		child := owner.PrivateKey(id)
		fromPriv := child.PubKey().SerializeCompressed()
		fromPub := d.PublicKey(id).SerializeCompressed()
		if !bytes.Equal(fromPriv, fromPub) {
			t.Fatalf("derivations disagree for %q:\n priv path %x\n pub path  %x", id, fromPriv, fromPub)
		}
	}
}

func TestUncompressedRootMatchesCompressed(t *testing.T) {
	owner := newTestOwner(t)

	compressed := newTestDeriver(t, owner)
	uncompressed, err := derive.NewDeriver(owner.Root().SerializeUncompressed())
	if err != nil {
		t.Fatalf("NewDeriver(uncompressed): %v", err)
	}
	if a, b := compressed.Address("feat-001"), uncompressed.Address("feat-001"); a != b {
		t.Fatalf("root encodings derive different addresses: %s != %s", a, b)
	}
}

func TestScalarNonDegenerate(t *testing.T) {
	for _, id := range []string{"", "feat-001", "0", "\x00"} {
		if derive.ScalarFromIdentifier(id).IsZero() {
			t.Fatalf("ScalarFromIdentifier(%q) is zero", id)
		}
	}
}

func TestScalarDeterministic(t *testing.T) {
	a := derive.ScalarFromIdentifier("feat-001").Bytes()
	b := derive.ScalarFromIdentifier("feat-001").Bytes()
	if a != b {
		t.Fatalf("scalar not deterministic: %x != %x", a, b)
	}
}

func TestDistinctIdentifiersDistinctAddresses(t *testing.T) {
	owner := newTestOwner(t)
	d := newTestDeriver(t, owner)

	ids := []string{"feat-001", "feat-002", "feat-003", "", "feat-0011"}
	seen := make(map[domain.Address]string, len(ids))
	for _, id := range ids {
		addr := d.Address(id)
		if prev, dup := seen[addr]; dup {
			t.Fatalf("identifiers %q and %q derive the same address %s", prev, id, addr)
		}
		seen[addr] = id
	}
}

func TestNewDeriverRejectsInvalidKey(t *testing.T) {
	cases := map[string][]byte{
		"empty":        nil,
		"short":        {0x02, 0x01},
		"bad prefix":   append([]byte{0xff}, bytes.Repeat([]byte{0x11}, 32)...),
		"not on curve": append([]byte{0x04}, bytes.Repeat([]byte{0x11}, 64)...),
	}
	for name, raw := range cases {
		if _, err := derive.NewDeriver(raw); !errors.Is(err, domain.ErrInvalidPublicKey) {
			t.Fatalf("%s: NewDeriver err = %v, want ErrInvalidPublicKey", name, err)
		}
	}
}

func TestNewOwnerRejectsInvalidKey(t *testing.T) {
	cases := map[string][]byte{
		"short":    bytes.Repeat([]byte{0x01}, 31),
		"zero":     make([]byte, 32),
		"overflow": bytes.Repeat([]byte{0xff}, 32),
	}
	for name, raw := range cases {
		if _, err := derive.NewOwner(raw); !errors.Is(err, domain.ErrInvalidPrivateKey) {
			t.Fatalf("%s: NewOwner err = %v, want ErrInvalidPrivateKey", name, err)
		}
	}
}

func TestGenerateOwnerConsistent(t *testing.T) {
	owner, err := derive.GenerateOwner()
	if err != nil {
		t.Fatalf("GenerateOwner: %v", err)
	}
	d, err := derive.NewDeriver(owner.Root().SerializeCompressed())
	if err != nil {
		t.Fatalf("NewDeriver: %v", err)
	}

	child := owner.PrivateKey("feat-001")
	if got, want := derive.AddressFromPublicKey(child.PubKey()), d.Address("feat-001"); got != want {
		t.Fatalf("fresh root inconsistent: %s != %s", got, want)
	}
}
