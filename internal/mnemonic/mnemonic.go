// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 arcwallet Authors

// Package mnemonic implements the 24-word BIP-39 secret phrase used to
// generate and recover arcv wallets.
//
// A phrase encodes 256 bits of entropy plus an 8-bit checksum. The phrase is
// the only durable form of the wallet secret: the 64-byte seed expanded from
// it exists in memory for the duration of a derivation call and is never
// persisted.
package mnemonic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// WordCount is the fixed phrase length. arcv uses 24-word phrases only;
// shorter BIP-39 lengths are rejected even when their checksum is valid.
const WordCount = 24

// EntropyBits is the entropy size behind a 24-word phrase.
const EntropyBits = 256

// SeedSize is the length in bytes of the seed expanded from a phrase.
const SeedSize = 64

// ErrInvalidMnemonic is returned when a phrase fails the word count,
// word-list membership, or checksum check.
var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// Generate returns a new 24-word phrase from fresh CSPRNG entropy.
// Successive calls are uncorrelated.
func Generate() (string, error) {
	entropy, err := bip39.NewEntropy(EntropyBits)
	if err != nil {
		return "", fmt.Errorf("failed to generate entropy: %w", err)
	}
	words, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to generate mnemonic from entropy: %w", err)
	}
	return words, nil
}

// Validate reports whether words is a well-formed 24-word phrase:
// correct word count, all words on the BIP-39 list, checksum valid.
func Validate(words string) bool {
	if len(strings.Fields(words)) != WordCount {
		return false
	}
	return bip39.IsMnemonicValid(words)
}

// ToSeed expands a validated phrase (plus optional passphrase) into the
// 64-byte wallet seed via PBKDF2-SHA512 per BIP-39. The same
// (phrase, passphrase) pair always yields the same seed; different
// passphrases yield unrelated seeds.
//
// Returns ErrInvalidMnemonic if the phrase does not validate.
func ToSeed(words, passphrase string) ([]byte, error) {
	if !Validate(words) {
		return nil, ErrInvalidMnemonic
	}
	seed, err := bip39.NewSeedWithErrorChecking(words, passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	return seed, nil
}
