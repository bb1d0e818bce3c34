// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 arcwallet Authors

package main

import (
	"encoding/hex"
	"flag"
	"fmt"

	"github.com/arcv-chain/arcwallet/internal/address"
)

// cmdAddress derives an address from a public key, or validates an
// existing address string with a precise failure reason.
func cmdAddress(args []string) error {
	fs := flag.NewFlagSet("address", flag.ExitOnError)
	pubHex := fs.String("pub", "", "32-byte ed25519 public key (hex)")
	check := fs.String("check", "", "address string to validate")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *pubHex != "" && *check != "":
		return fmt.Errorf("use either -pub or -check, not both")
	case *pubHex != "":
		pub, err := hex.DecodeString(*pubHex)
		if err != nil {
			return fmt.Errorf("invalid public key hex: %w", err)
		}
		addr, err := address.Encode(pub)
		if err != nil {
			return err
		}
		fmt.Println(addr)
		return nil
	case *check != "":
		digest, err := address.Decode(*check)
		if err != nil {
			return err
		}
		fmt.Printf("valid (key digest %s)\n", hex.EncodeToString(digest))
		return nil
	default:
		return fmt.Errorf("one of -pub or -check is required")
	}
}
