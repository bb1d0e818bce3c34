// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 arcwallet Authors

package signing

import (
	"bytes"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"
)

// RFC 8032 test vector 1: seed, public key, signature over the empty
// message. Anchors the signature scheme itself, independent of the
// transaction pipeline.
const (
	rfcSeedHex = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	rfcPubHex  = "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"
	rfcSigHex  = "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b"
)

// TestSignRFC8032Vector pins the scheme to the standard test vector
func TestSignRFC8032Vector(t *testing.T) {
	seed, _ := hex.DecodeString(rfcSeedHex)
	sig, err := Sign(nil, seed)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if got := hex.EncodeToString(sig); got != rfcSigHex {
		t.Errorf("Signature mismatch:\n got %s\nwant %s", got, rfcSigHex)
	}
	pub, err := DerivePublicKey(seed)
	if err != nil {
		t.Fatalf("DerivePublicKey failed: %v", err)
	}
	if got := hex.EncodeToString(pub); got != rfcPubHex {
		t.Errorf("Public key mismatch:\n got %s\nwant %s", got, rfcPubHex)
	}
}

// TestSignKeyShapes verifies the 32-byte seed and 64-byte record produce
// identical signatures
func TestSignKeyShapes(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, 32)
	record := ed25519.NewKeyFromSeed(seed)
	hash := sha256.Sum256([]byte("payload"))

	sigSeed, err := Sign(hash[:], seed)
	if err != nil {
		t.Fatalf("Sign(seed) failed: %v", err)
	}
	sigRecord, err := Sign(hash[:], record)
	if err != nil {
		t.Fatalf("Sign(record) failed: %v", err)
	}
	if !bytes.Equal(sigSeed, sigRecord) {
		t.Error("Seed and record shapes produced different signatures")
	}
	if len(sigSeed) != SignatureSize {
		t.Errorf("Expected %d-byte signature, got %d", SignatureSize, len(sigSeed))
	}
}

// TestSignKeyLength verifies the key length contract
func TestSignKeyLength(t *testing.T) {
	hash := sha256.Sum256([]byte("payload"))
	for _, n := range []int{0, 16, 31, 33, 63, 65} {
		if _, err := Sign(hash[:], make([]byte, n)); !errors.Is(err, ErrInvalidKeyLength) {
			t.Errorf("Sign with %d-byte key: expected ErrInvalidKeyLength, got %v", n, err)
		}
	}
	if _, err := DerivePublicKey(make([]byte, 64)); !errors.Is(err, ErrInvalidKeyLength) {
		t.Errorf("DerivePublicKey(64 bytes): expected ErrInvalidKeyLength, got %v", err)
	}
}

// TestVerifyBitFlips verifies that flipping any single bit of signature,
// hash, or public key makes verification fail
func TestVerifyBitFlips(t *testing.T) {
	seed := bytes.Repeat([]byte{0x07}, 32)
	hash := sha256.Sum256([]byte("transfer"))
	sig, err := Sign(hash[:], seed)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	pub, err := DerivePublicKey(seed)
	if err != nil {
		t.Fatalf("DerivePublicKey failed: %v", err)
	}

	if !Verify(sig, hash[:], pub) {
		t.Fatal("Valid signature failed to verify")
	}

	flip := func(b []byte, bit int) []byte {
		out := make([]byte, len(b))
		copy(out, b)
		out[bit/8] ^= 1 << (bit % 8)
		return out
	}
	for bit := 0; bit < len(sig)*8; bit += 37 {
		if Verify(flip(sig, bit), hash[:], pub) {
			t.Fatalf("Verify accepted signature with bit %d flipped", bit)
		}
	}
	for bit := 0; bit < len(hash)*8; bit += 29 {
		if Verify(sig, flip(hash[:], bit), pub) {
			t.Fatalf("Verify accepted hash with bit %d flipped", bit)
		}
	}
	for bit := 0; bit < len(pub)*8; bit += 31 {
		if Verify(sig, hash[:], flip(pub, bit)) {
			t.Fatalf("Verify accepted public key with bit %d flipped", bit)
		}
	}
}

// TestVerifyMalformed verifies Verify returns false, never panics, on
// malformed inputs
func TestVerifyMalformed(t *testing.T) {
	hash := sha256.Sum256([]byte("x"))
	tests := []struct {
		name string
		sig  []byte
		pub  []byte
	}{
		{"nil sig", nil, make([]byte, 32)},
		{"short sig", make([]byte, 63), make([]byte, 32)},
		{"nil pub", make([]byte, 64), nil},
		{"short pub", make([]byte, 64), make([]byte, 31)},
		{"all zero", make([]byte, 64), make([]byte, 32)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Verify(tt.sig, hash[:], tt.pub) {
				t.Error("Verify accepted malformed input")
			}
		})
	}
}

// TestRecordMismatchedPublicKey verifies signing ignores a corrupted
// embedded public key and still signs under the seed's true identity
func TestRecordMismatchedPublicKey(t *testing.T) {
	seed := bytes.Repeat([]byte{0x11}, 32)
	record := make([]byte, 64)
	copy(record, ed25519.NewKeyFromSeed(seed))
	record[40] ^= 0xff // corrupt the embedded public key

	hash := sha256.Sum256([]byte("payload"))
	sig, err := Sign(hash[:], record)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	truePub, _ := DerivePublicKey(seed)
	if !Verify(sig, hash[:], truePub) {
		t.Error("Signature does not verify under the seed's true public key")
	}
}
