// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 arcwallet Authors

package tx

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// DomainTag is the ASCII domain-separation tag prepended to canonical bytes
// before hashing. It binds a hash to this transaction-body version; a future
// body shape must use a new tag so its signatures cannot collide with v1.
const DomainTag = "arcv/tx/v1"

// HashSize is the transaction hash length in bytes.
const HashSize = sha256.Size

// Canonicalize returns the unique deterministic byte encoding of a body:
// a flat JSON object with keys in lexicographic order, string-literal
// values, no whitespace, and the memo key omitted when the memo is absent.
// Two bodies that differ in any field produce different output.
func Canonicalize(body Body) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		return nil, fmt.Errorf("failed to canonicalize transaction: %w", err)
	}
	// Encoder appends a newline; canonical bytes carry no whitespace.
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// EstimateSize returns the canonical byte length of a body. Callers use it
// for fee estimation; nothing in the pipeline depends on it.
func EstimateSize(body Body) (int, error) {
	canonical, err := Canonicalize(body)
	if err != nil {
		return 0, err
	}
	return len(canonical), nil
}

// Hash computes the 32-byte transaction hash: SHA-256 over the domain tag
// concatenated with the canonical bytes. Pure and deterministic.
func Hash(canonical []byte) [HashSize]byte {
	h := sha256.New()
	h.Write([]byte(DomainTag))
	h.Write(canonical)
	var out [HashSize]byte
	copy(out[:], h.Sum(nil))
	return out
}
