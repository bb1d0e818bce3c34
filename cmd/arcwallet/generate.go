// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 arcwallet Authors

package main

import (
	"flag"
	"fmt"

	icrypto "github.com/arcv-chain/arcwallet/internal/crypto"
	"github.com/arcv-chain/arcwallet/internal/mnemonic"
	"github.com/arcv-chain/arcwallet/internal/util"
)

// cmdGenerate creates a fresh 24-word wallet and prints the phrase and
// address. The phrase is printed exactly once and never logged; there is no
// way to recover it afterwards.
func cmdGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	withPassphrase := fs.Bool("p", false, "protect the wallet with an additional passphrase")
	if err := fs.Parse(args); err != nil {
		return err
	}

	words, err := mnemonic.Generate()
	if err != nil {
		return err
	}

	passphrase := ""
	if *withPassphrase {
		passphrase, err = util.ReadPassphrase("Passphrase: ")
		if err != nil {
			return err
		}
	}

	addr, err := addressFromMnemonic(words, passphrase)
	if err != nil {
		return err
	}

	fmt.Println("Write down these 24 words in order and keep them offline.")
	fmt.Println("Anyone holding them (and the passphrase, if set) controls the wallet.")
	fmt.Println()
	fmt.Println(words)
	fmt.Println()
	fmt.Printf("Address: %s\n", addr)
	return nil
}

// addressFromMnemonic runs the full derivation pipeline and zeros the
// intermediate seed and key record before returning.
func addressFromMnemonic(words, passphrase string) (string, error) {
	seed, err := mnemonic.ToSeed(words, passphrase)
	if err != nil {
		return "", err
	}
	defer icrypto.ZeroBytes(seed)

	addr, record, err := deriveAddress(seed)
	if err != nil {
		return "", err
	}
	icrypto.ZeroBytes(record)
	return addr, nil
}
