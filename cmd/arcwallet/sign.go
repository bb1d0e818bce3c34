// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 arcwallet Authors

package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	icrypto "github.com/arcv-chain/arcwallet/internal/crypto"
	"github.com/arcv-chain/arcwallet/internal/tx"
	"github.com/arcv-chain/arcwallet/internal/util"
)

// cmdSign builds a transfer body from flags, signs it with a raw key, and
// prints the signed-transaction wire record as JSON on stdout.
func cmdSign(args []string) error {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)
	keyArg := fs.String("key", "", "signing key: 32- or 64-byte hex, or '-' to read from stdin")
	from := fs.String("from", "", "sender address")
	to := fs.String("to", "", "recipient address")
	amount := fs.Uint64("amount", 0, "transfer amount")
	fee := fs.Uint64("fee", 0, "transaction fee")
	nonce := fs.Uint64("nonce", 0, "sender's next unused nonce")
	memo := fs.String("memo", "", "optional memo (max 256 UTF-8 bytes)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	key, err := readKey(*keyArg)
	if err != nil {
		return err
	}
	defer icrypto.ZeroBytes(key)

	body, err := tx.BuildTransfer(*from, *to, *amount, *fee, *nonce, *memo)
	if err != nil {
		return err
	}

	signed, err := tx.CreateSigned(body, key)
	if err != nil {
		return err
	}
	return printSigned(signed)
}

// readKey parses a raw signing key from a flag value, or from one stdin
// line when the value is "-" so the key stays out of shell history.
func readKey(arg string) ([]byte, error) {
	if arg == "" {
		return nil, fmt.Errorf("-key is required")
	}
	if arg == "-" {
		util.Debug("reading signing key from stdin")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && strings.TrimSpace(line) == "" {
			return nil, fmt.Errorf("failed to read key from stdin: %w", err)
		}
		arg = strings.TrimSpace(line)
	}
	return tx.ParseKey(arg)
}

// printSigned writes the wire record as indented JSON without HTML
// escaping, matching the canonical encoder's treatment of string values.
func printSigned(signed tx.SignedTransaction) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(signed); err != nil {
		return fmt.Errorf("failed to encode signed transaction: %w", err)
	}
	_, err := os.Stdout.Write(buf.Bytes())
	return err
}
