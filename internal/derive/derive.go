package derive

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"tipjar/internal/crypto"
	"tipjar/internal/domain"
)

// PrivateKeyLength is the length of a serialized root or child private key.
const PrivateKeyLength = 32

// ScalarFromIdentifier hashes the UTF-8 bytes of id with Keccak-256 and
// reduces the digest mod the secp256k1 group order n. A zero result is
// remapped to 1: a zero scalar would derive the point at infinity, which
// has no address. Identical identifiers always produce the same scalar;
// the empty string is accepted and hashes to a valid nonzero scalar.
func ScalarFromIdentifier(id string) *secp256k1.ModNScalar {
	digest := crypto.Keccak256([]byte(id))

	var k secp256k1.ModNScalar
	k.SetByteSlice(digest)
	if k.IsZero() {
		k.SetInt(1)
	}
	return &k
}

// Deriver computes child public keys and addresses under a fixed root
// public key. It holds no secret material and is safe for concurrent use.
type Deriver struct {
	root *secp256k1.PublicKey
}

// NewDeriver parses a serialized root public key (compressed or
// uncompressed) and returns a Deriver for it.
func NewDeriver(rootPub []byte) (*Deriver, error) {
	pub, err := secp256k1.ParsePubKey(rootPub)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPublicKey, err)
	}
	return &Deriver{root: pub}, nil
}

// Root returns the root public key the Deriver was built with.
func (d *Deriver) Root() *secp256k1.PublicKey { return d.root }

// PublicKey derives the child public key for id: rootPub * scalar(id).
// The scalar is nonzero and n is prime, so the result is never the point
// at infinity.
func (d *Deriver) PublicKey(id string) *secp256k1.PublicKey {
	k := ScalarFromIdentifier(id)

	var point, child secp256k1.JacobianPoint
	d.root.AsJacobian(&point)
	secp256k1.ScalarMultNonConst(k, &point, &child)
	child.ToAffine()

	return secp256k1.NewPublicKey(&child.X, &child.Y)
}

// Address derives the account address for id.
func (d *Deriver) Address(id string) domain.Address {
	return AddressFromPublicKey(d.PublicKey(id))
}

// AddressFromPublicKey hashes the uncompressed point encoding with the
// 0x04 format byte stripped and takes the low 20 bytes of the digest.
func AddressFromPublicKey(pub *secp256k1.PublicKey) domain.Address {
	digest := crypto.Keccak256(pub.SerializeUncompressed()[1:])

	var a domain.Address
	copy(a[:], digest[len(digest)-domain.AddressLength:])
	return a
}

// Owner is a Deriver that additionally holds the root private key and can
// derive child private keys. It is the owner-side counterpart of the
// public address derivation; the two stay consistent by construction.
type Owner struct {
	Deriver
	priv *secp256k1.PrivateKey
}

// NewOwner builds an Owner from a 32-byte root private key.
func NewOwner(rootPriv []byte) (*Owner, error) {
	if len(rootPriv) != PrivateKeyLength {
		return nil, fmt.Errorf("%w: got %d bytes, want %d",
			domain.ErrInvalidPrivateKey, len(rootPriv), PrivateKeyLength)
	}

	var k secp256k1.ModNScalar
	if overflow := k.SetByteSlice(rootPriv); overflow || k.IsZero() {
		return nil, fmt.Errorf("%w: out of range [1, n-1]", domain.ErrInvalidPrivateKey)
	}

	priv := secp256k1.NewPrivateKey(&k)
	return &Owner{
		Deriver: Deriver{root: priv.PubKey()},
		priv:    priv,
	}, nil
}

// GenerateOwner returns an Owner with a fresh, uniformly random root key.
func GenerateOwner() (*Owner, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	return &Owner{
		Deriver: Deriver{root: priv.PubKey()},
		priv:    priv,
	}, nil
}

// RootPrivateKey returns the root private key.
func (o *Owner) RootPrivateKey() *secp256k1.PrivateKey { return o.priv }

// PrivateKey derives the child private key for id:
// rootPriv * scalar(id) mod n, with a zero product remapped to 1. The
// derived key matches Deriver.PublicKey: g * childPriv == rootPub * k.
func (o *Owner) PrivateKey(id string) *secp256k1.PrivateKey {
	k := ScalarFromIdentifier(id)
	k.Mul(&o.priv.Key)
	if k.IsZero() {
		k.SetInt(1)
	}
	return secp256k1.NewPrivateKey(k)
}
