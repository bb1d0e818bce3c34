// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 arcwallet Authors

// Package tx builds, canonicalizes, hashes and signs arcv value transfers.
//
// The pipeline is strict about bytes: a transaction body has exactly one
// canonical encoding, the hash commits to that encoding under a versioned
// domain tag, and the signature covers the hash. Any change to field order,
// formatting or the domain tag is a consensus change.
package tx

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/arcv-chain/arcwallet/internal/address"
)

// TypeTransfer is the only transaction type the wallet produces.
const TypeTransfer = "transfer"

// MemoMaxBytes is the memo size limit, measured in UTF-8 bytes, not runes.
const MemoMaxBytes = 256

// ErrMemoTooLong is returned when a memo exceeds MemoMaxBytes. Memos are
// rejected, never truncated.
var ErrMemoTooLong = errors.New("memo too long: limit is 256 bytes")

// Body is a transfer transaction body. Field declaration order matches the
// canonical (lexicographic) key order; Canonicalize depends on it.
//
// Amount, Fee and Nonce are unsigned 64-bit values carried as decimal string
// literals end to end. No numeric JSON values, and no floating point, appear
// anywhere in the pipeline.
type Body struct {
	Amount string `json:"amount"`
	Fee    string `json:"fee"`
	From   string `json:"from"`
	Memo   string `json:"memo,omitempty"`
	Nonce  string `json:"nonce"`
	To     string `json:"to"`
	Type   string `json:"type"`
}

// BuildTransfer validates the inputs and returns a transfer body. memo may
// be empty, in which case the canonical encoding omits the field entirely.
func BuildTransfer(from, to string, amount, fee, nonce uint64, memo string) (Body, error) {
	if _, err := address.Decode(from); err != nil {
		return Body{}, fmt.Errorf("from address: %w", err)
	}
	if _, err := address.Decode(to); err != nil {
		return Body{}, fmt.Errorf("to address: %w", err)
	}
	if len(memo) > MemoMaxBytes {
		return Body{}, fmt.Errorf("%w: got %d bytes", ErrMemoTooLong, len(memo))
	}
	return Body{
		Amount: strconv.FormatUint(amount, 10),
		Fee:    strconv.FormatUint(fee, 10),
		From:   from,
		Memo:   memo,
		Nonce:  strconv.FormatUint(nonce, 10),
		To:     to,
		Type:   TypeTransfer,
	}, nil
}
