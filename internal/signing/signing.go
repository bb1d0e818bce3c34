// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 arcwallet Authors

// Package signing produces and verifies detached ed25519 signatures over
// arcv transaction hashes.
//
// Signing keys arrive in one of two shapes: the bare 32-byte signing seed,
// or the full 64-byte record (signing seed followed by public key). Both
// are normalized to the 32-byte seed internally, so the two shapes always
// produce identical signatures.
package signing

import (
	"crypto/ed25519"
	"errors"

	icrypto "github.com/arcv-chain/arcwallet/internal/crypto"
)

// SignatureSize is the length of a detached signature in bytes.
const SignatureSize = ed25519.SignatureSize

// ErrInvalidKeyLength is returned when a signing key is neither a 32-byte
// seed nor a 64-byte secret key record.
var ErrInvalidKeyLength = errors.New("invalid key length: expected 32 or 64 bytes")

// Sign produces a 64-byte detached signature over hash. key is either the
// 32-byte signing seed or the 64-byte secret key record; in the record case
// only the left 32 bytes are used.
func Sign(hash, key []byte) ([]byte, error) {
	priv, err := privateKey(key)
	if err != nil {
		return nil, err
	}
	sig := ed25519.Sign(priv, hash)
	icrypto.ZeroBytes(priv)
	return sig, nil
}

// Verify reports whether sig is a valid signature over hash by the holder
// of pub. Malformed inputs return false; Verify never panics.
func Verify(sig, hash, pub []byte) bool {
	if len(sig) != ed25519.SignatureSize || len(pub) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub), hash, sig)
}

// DerivePublicKey returns the 32-byte public key for a bare 32-byte signing
// seed, for callers that hold a seed without the full record.
func DerivePublicKey(seed []byte) ([]byte, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, ErrInvalidKeyLength
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub := make([]byte, ed25519.PublicKeySize)
	copy(pub, priv[ed25519.SeedSize:])
	icrypto.ZeroBytes(priv)
	return pub, nil
}

// privateKey normalizes a 32- or 64-byte key to a full ed25519 private key.
// The returned key is a fresh allocation the caller must zero.
func privateKey(key []byte) (ed25519.PrivateKey, error) {
	switch len(key) {
	case ed25519.SeedSize:
		return ed25519.NewKeyFromSeed(key), nil
	case ed25519.PrivateKeySize:
		// Re-expand from the seed half rather than trusting the embedded
		// public key: a record with a mismatched right half would otherwise
		// produce signatures that verify against the wrong identity.
		return ed25519.NewKeyFromSeed(key[:ed25519.SeedSize]), nil
	default:
		return nil, ErrInvalidKeyLength
	}
}
