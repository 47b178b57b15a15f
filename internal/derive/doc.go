// Package derive maps arbitrary identifier strings to deterministic
// secp256k1 child keys and account addresses under a single root key.
//
// The scheme is a flat, single-level derivation: the identifier is hashed
// to a scalar k and the child public key is rootPub * k. Anyone holding
// the root public key can compute the address for an identifier, while
// only the holder of the root private key can compute the matching child
// private key (rootPriv * k mod n). There is no chain code and no
// hierarchy; identifiers form one namespace under one root.
package derive
