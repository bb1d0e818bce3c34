// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 arcwallet Authors

package tx

import (
	"bytes"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/arcv-chain/arcwallet/internal/signing"
)

// ErrKeyRecordMismatch is returned when a 64-byte secret key record embeds
// a public key that does not match its signing seed. Such a record would
// sign as one identity while claiming another.
var ErrKeyRecordMismatch = errors.New("secret key record public key does not match signing seed")

// ErrInvalidKeyEncoding is returned when key text is not valid hex.
var ErrInvalidKeyEncoding = errors.New("invalid key encoding")

// SignResult carries the three outputs of signing a body: the detached
// signature, the signer's public key, and the domain-tagged hash that was
// signed.
type SignResult struct {
	Signature []byte
	PublicKey []byte
	Hash      [HashSize]byte
}

// SignedTransaction is the terminal wire record handed to the transport
// layer.
//
// Wire encoding is fixed here and nowhere else: pubkey and sig are standard
// base64, hash is lowercase hex. The encoding history of this record
// included a hex variant for pubkey/sig; mixing the two decodes a 64-byte
// signature as 96 bytes on the verifier side, so both fields go through the
// single base64 helper below and must never diverge.
type SignedTransaction struct {
	Tx        Body   `json:"tx"`
	PublicKey string `json:"pubkey"`
	Signature string `json:"sig"`
	Hash      string `json:"hash"`
}

// Sign canonicalizes and hashes body, then signs the hash. key is either a
// 32-byte signing seed or a 64-byte secret key record; both shapes yield
// identical results for the same seed. A record whose embedded public key
// does not match its seed is rejected.
func Sign(body Body, key []byte) (SignResult, error) {
	pub, err := signerIdentity(key)
	if err != nil {
		return SignResult{}, err
	}

	canonical, err := Canonicalize(body)
	if err != nil {
		return SignResult{}, err
	}
	hash := Hash(canonical)

	sig, err := signing.Sign(hash[:], key)
	if err != nil {
		return SignResult{}, err
	}
	return SignResult{Signature: sig, PublicKey: pub, Hash: hash}, nil
}

// CreateSigned signs body and wraps the result, together with the body
// itself, into the terminal wire record.
func CreateSigned(body Body, key []byte) (SignedTransaction, error) {
	res, err := Sign(body, key)
	if err != nil {
		return SignedTransaction{}, err
	}
	return SignedTransaction{
		Tx:        body,
		PublicKey: wireEncode(res.PublicKey),
		Signature: wireEncode(res.Signature),
		Hash:      hex.EncodeToString(res.Hash[:]),
	}, nil
}

// ParseKey decodes a raw signing key from its hex text form and checks its
// length, so callers holding a bare key can sign without ever constructing
// a mnemonic or derived record.
func ParseKey(hexKey string) ([]byte, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}
	if len(key) != ed25519.SeedSize && len(key) != ed25519.PrivateKeySize {
		return nil, signing.ErrInvalidKeyLength
	}
	return key, nil
}

// wireEncode is the single encoder for pubkey and signature wire text.
func wireEncode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// signerIdentity resolves the public key a signing key will sign as,
// recomputing from the seed half and rejecting inconsistent records.
func signerIdentity(key []byte) ([]byte, error) {
	switch len(key) {
	case ed25519.SeedSize:
		return signing.DerivePublicKey(key)
	case ed25519.PrivateKeySize:
		pub, err := signing.DerivePublicKey(key[:ed25519.SeedSize])
		if err != nil {
			return nil, err
		}
		if !bytes.Equal(pub, key[ed25519.SeedSize:]) {
			return nil, ErrKeyRecordMismatch
		}
		return pub, nil
	default:
		return nil, signing.ErrInvalidKeyLength
	}
}
