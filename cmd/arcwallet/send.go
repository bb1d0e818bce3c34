// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 arcwallet Authors

package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/arcv-chain/arcwallet/internal/address"
	"github.com/arcv-chain/arcwallet/internal/client"
	icrypto "github.com/arcv-chain/arcwallet/internal/crypto"
	"github.com/arcv-chain/arcwallet/internal/derivation"
	"github.com/arcv-chain/arcwallet/internal/signing"
	"github.com/arcv-chain/arcwallet/internal/tx"
	"github.com/arcv-chain/arcwallet/internal/util"
)

// cmdSend signs a transfer and submits it to the configured node. The
// sender address is derived from the key, and the nonce is fetched from the
// node when not given explicitly.
func cmdSend(args []string) error {
	fs := flag.NewFlagSet("send", flag.ExitOnError)
	configPath := fs.String("c", "", "config file (or set ARCWALLET_CONFIG)")
	keyArg := fs.String("key", "", "signing key: 32- or 64-byte hex, or '-' to read from stdin")
	to := fs.String("to", "", "recipient address")
	amount := fs.Uint64("amount", 0, "transfer amount")
	fee := fs.Uint64("fee", 0, "transaction fee")
	nonceArg := fs.String("nonce", "", "sender's next unused nonce (fetched from the node when omitted)")
	memo := fs.String("memo", "", "optional memo (max 256 UTF-8 bytes)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := util.LoadClientConfig(*configPath)
	if err != nil {
		return err
	}
	timeout, err := time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("invalid request_timeout %q: %w", cfg.RequestTimeout, err)
	}
	rpc := client.New(cfg.RPCURL, timeout)

	key, err := readKey(*keyArg)
	if err != nil {
		return err
	}
	defer icrypto.ZeroBytes(key)

	// Sender identity comes from the key, not a flag: the node would
	// reject a from address that does not match the signature anyway.
	pub, err := publicKeyOf(key)
	if err != nil {
		return err
	}
	from, err := address.Encode(pub)
	if err != nil {
		return err
	}

	ctx := context.Background()

	var nonce uint64
	if *nonceArg != "" {
		nonce, err = strconv.ParseUint(*nonceArg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid nonce %q: %w", *nonceArg, err)
		}
	} else {
		acct, err := rpc.AccountInfo(ctx, from)
		if err != nil {
			return err
		}
		nonce, err = strconv.ParseUint(acct.Nonce, 10, 64)
		if err != nil {
			return fmt.Errorf("node returned malformed nonce %q: %w", acct.Nonce, err)
		}
	}

	body, err := tx.BuildTransfer(from, *to, *amount, *fee, nonce, *memo)
	if err != nil {
		return err
	}
	signed, err := tx.CreateSigned(body, key)
	if err != nil {
		return err
	}

	hash, err := rpc.Submit(ctx, signed)
	if err != nil {
		return err
	}
	fmt.Printf("Submitted: %s\n", hash)
	return nil
}

// publicKeyOf resolves the public key for a 32- or 64-byte signing key.
func publicKeyOf(key []byte) ([]byte, error) {
	if len(key) == derivation.SecretKeySize {
		return signing.DerivePublicKey(key[:derivation.SigningSeedSize])
	}
	return signing.DerivePublicKey(key)
}
