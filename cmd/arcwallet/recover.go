// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 arcwallet Authors

package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/arcv-chain/arcwallet/internal/address"
	icrypto "github.com/arcv-chain/arcwallet/internal/crypto"
	"github.com/arcv-chain/arcwallet/internal/derivation"
	"github.com/arcv-chain/arcwallet/internal/mnemonic"
	"github.com/arcv-chain/arcwallet/internal/util"
)

// cmdRecover reads a 24-word phrase and prints the wallet address.
// With -show-key it also prints the 64-byte secret key record in hex, for
// feeding into 'sign -key'.
func cmdRecover(args []string) error {
	fs := flag.NewFlagSet("recover", flag.ExitOnError)
	withPassphrase := fs.Bool("p", false, "prompt for the wallet passphrase")
	showKey := fs.Bool("show-key", false, "print the secret key record (hex) to stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Fprint(os.Stderr, "Mnemonic: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && strings.TrimSpace(line) == "" {
		return fmt.Errorf("failed to read mnemonic: %w", err)
	}
	words := strings.Join(strings.Fields(line), " ")

	if !mnemonic.Validate(words) {
		return mnemonic.ErrInvalidMnemonic
	}

	passphrase := ""
	if *withPassphrase {
		passphrase, err = util.ReadPassphrase("Passphrase: ")
		if err != nil {
			return err
		}
	}

	seed, err := mnemonic.ToSeed(words, passphrase)
	if err != nil {
		return err
	}
	defer icrypto.ZeroBytes(seed)

	addr, record, err := deriveAddress(seed)
	if err != nil {
		return err
	}
	defer icrypto.ZeroBytes(record)

	fmt.Printf("Address: %s\n", addr)
	if *showKey {
		fmt.Printf("Secret key: %s\n", hex.EncodeToString(record))
	}
	return nil
}

// deriveAddress derives the key record from a seed and encodes its address.
// The caller owns the returned record and must zero it.
func deriveAddress(seed []byte) (string, []byte, error) {
	record, err := derivation.Derive(seed)
	if err != nil {
		return "", nil, err
	}
	addr, err := address.Encode(derivation.PublicKey(record))
	if err != nil {
		icrypto.ZeroBytes(record)
		return "", nil, err
	}
	return addr, record, nil
}
