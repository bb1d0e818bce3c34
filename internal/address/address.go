// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 arcwallet Authors

// Package address encodes ed25519 public keys as human-readable arcv
// addresses and decodes/validates them.
//
// An address is the bech32 encoding, with prefix "arcv", of the 20-byte
// BLAKE2b digest of the public key. The digest (not the key) is what an
// address commits to, so decoding recovers the digest only.
package address

import (
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/blake2b"
)

// Prefix is the bech32 human-readable part of every arcv address.
const Prefix = "arcv"

// DigestSize is the length of the public-key digest an address encodes.
const DigestSize = 20

// PublicKeySize is the required public key length in bytes.
const PublicKeySize = 32

var (
	// ErrInvalidPublicKeyLength is returned by Encode when the public key
	// is not 32 bytes.
	ErrInvalidPublicKeyLength = errors.New("invalid public key length: expected 32 bytes")

	// ErrInvalidPublicKey is returned by Encode when the 32 bytes do not
	// decode to an edwards25519 curve point and therefore cannot be an
	// ed25519 public key.
	ErrInvalidPublicKey = errors.New("invalid public key: not a curve point")

	// ErrInvalidPrefix is returned by Decode when the address carries a
	// human-readable part other than "arcv".
	ErrInvalidPrefix = errors.New("invalid address prefix")

	// ErrInvalidLength is returned by Decode when the decoded payload is
	// not exactly 20 bytes.
	ErrInvalidLength = errors.New("invalid address length: expected 20-byte payload")

	// ErrInvalidChecksum is returned by Decode when the bech32 checksum
	// does not verify.
	ErrInvalidChecksum = errors.New("invalid address checksum")

	// ErrInvalidEncoding is returned by Decode for any other malformed
	// bech32 input (bad charset, mixed case, bad padding).
	ErrInvalidEncoding = errors.New("invalid address encoding")
)

// Encode maps a 32-byte ed25519 public key to its arcv address:
// blake2b-160 digest of the key, regrouped into 5-bit words, bech32-encoded
// with the arcv prefix.
func Encode(pub []byte) (string, error) {
	if len(pub) != PublicKeySize {
		return "", ErrInvalidPublicKeyLength
	}
	if _, err := new(edwards25519.Point).SetBytes(pub); err != nil {
		return "", ErrInvalidPublicKey
	}

	h, err := blake2b.New(DigestSize, nil)
	if err != nil {
		return "", fmt.Errorf("failed to init digest: %w", err)
	}
	h.Write(pub)
	return EncodeDigest(h.Sum(nil))
}

// EncodeDigest bech32-encodes an already-computed 20-byte public-key digest.
func EncodeDigest(digest []byte) (string, error) {
	if len(digest) != DigestSize {
		return "", ErrInvalidLength
	}
	grouped, err := bech32.ConvertBits(digest, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	addr, err := bech32.Encode(Prefix, grouped)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return addr, nil
}

// Decode validates an address string and returns the 20-byte public-key
// digest it encodes. Failures are distinguished: wrong prefix, wrong
// payload length, checksum mismatch, and any other malformed encoding each
// surface their own error kind.
func Decode(addr string) ([]byte, error) {
	hrp, grouped, err := bech32.Decode(addr)
	if err != nil {
		var chk bech32.ErrInvalidChecksum
		if errors.As(err, &chk) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidChecksum, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if hrp != Prefix {
		return nil, fmt.Errorf("%w: got %q, want %q", ErrInvalidPrefix, hrp, Prefix)
	}
	digest, err := bech32.ConvertBits(grouped, 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if len(digest) != DigestSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidLength, len(digest))
	}
	return digest, nil
}

// IsValid reports whether addr decodes as a well-formed arcv address.
func IsValid(addr string) bool {
	_, err := Decode(addr)
	return err == nil
}
