// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 arcwallet Authors

// Package derivation turns a 64-byte wallet seed into the ed25519 signing
// key used for arcv transactions.
//
// The derivation is a single keyed-HMAC stretching step and is frozen: the
// same seed must regenerate the same key (and therefore the same address)
// forever. Changing the HMAC key or adding derivation steps would silently
// move every existing wallet to a new address, breaking mnemonic-only
// recovery. Any future change must ship as a new, versioned scheme alongside
// this one.
package derivation

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha512"
	"errors"

	icrypto "github.com/arcv-chain/arcwallet/internal/crypto"
)

// Path is the hierarchical derivation path that identifies this scheme.
// It is fixed for every arcv keypair and exported for display purposes only;
// the wallet does not expose user-selectable paths.
const Path = "m/734'/0'/0'/0/0"

// seedDomain keys the HMAC stretching step, binding derived keys to the
// arcv scheme.
const seedDomain = "arcv ed25519 seed"

// SeedSize is the required input seed length in bytes.
const SeedSize = 64

// SecretKeySize is the length of a full secret key record:
// 32-byte signing seed followed by the 32-byte public key. The layout is
// identical to crypto/ed25519.PrivateKey.
const SecretKeySize = 64

// SigningSeedSize is the length of the bare signing seed.
const SigningSeedSize = 32

// ErrInvalidSeedLength is returned when the input seed is not 64 bytes.
var ErrInvalidSeedLength = errors.New("invalid seed length: expected 64 bytes")

// Derive deterministically derives the 64-byte secret key record from a
// 64-byte wallet seed: HMAC-SHA512 keyed with the arcv domain string is
// applied to the seed, the left 32 bytes become the ed25519 signing seed,
// and the public key is computed from it.
//
// Intermediate key material is zeroed before returning; the caller owns
// (and should eventually zero) the returned record.
func Derive(seed []byte) ([]byte, error) {
	if len(seed) != SeedSize {
		return nil, ErrInvalidSeedLength
	}

	mac := hmac.New(sha512.New, []byte(seedDomain))
	mac.Write(seed)
	stretched := mac.Sum(nil)
	defer icrypto.ZeroBytes(stretched)

	signingSeed := stretched[:SigningSeedSize]
	priv := ed25519.NewKeyFromSeed(signingSeed)

	record := make([]byte, SecretKeySize)
	copy(record, priv)
	icrypto.ZeroBytes(priv)
	return record, nil
}

// PublicKey returns the 32-byte public key embedded in a secret key record.
func PublicKey(record []byte) []byte {
	pub := make([]byte, ed25519.PublicKeySize)
	copy(pub, record[SigningSeedSize:])
	return pub
}
