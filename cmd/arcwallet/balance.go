// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 arcwallet Authors

package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/arcv-chain/arcwallet/internal/address"
	"github.com/arcv-chain/arcwallet/internal/client"
	"github.com/arcv-chain/arcwallet/internal/util"
)

// cmdBalance shows balance and next nonce for an address.
func cmdBalance(args []string) error {
	fs := flag.NewFlagSet("balance", flag.ExitOnError)
	configPath := fs.String("c", "", "config file (or set ARCWALLET_CONFIG)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: arcwallet balance [-c config] <address>")
	}
	addr := fs.Arg(0)
	if _, err := address.Decode(addr); err != nil {
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

	acct, err := client.New(cfg.RPCURL, timeout).AccountInfo(context.Background(), addr)
	if err != nil {
		return err
	}
	fmt.Printf("Address: %s\n", acct.Address)
	fmt.Printf("Balance: %s\n", acct.Balance)
	fmt.Printf("Nonce:   %s\n", acct.Nonce)
	return nil
}
