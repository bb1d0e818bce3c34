// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 arcwallet Authors

// arcwallet is a stateless wallet CLI for the arcv chain: it generates and
// recovers mnemonic wallets, derives addresses, and builds, signs and
// submits transfer transactions.
//
// Usage:
//
//	arcwallet generate [-p]
//	arcwallet recover [-p] [-show-key]
//	arcwallet address -pub <hex> | -check <address>
//	arcwallet sign -key <hex|-> -from <addr> -to <addr> -amount <n> -fee <n> -nonce <n> [-memo <s>]
//	arcwallet send -key <hex|-> -to <addr> -amount <n> -fee <n> [-nonce <n>] [-memo <s>]
//	arcwallet balance <address>
//	arcwallet --version
//
// The wallet keeps nothing on disk: keys live for the duration of one
// invocation and are printed or used, never stored.
package main

import (
	"fmt"
	"os"

	"github.com/arcv-chain/arcwallet/internal/util"
	"github.com/arcv-chain/arcwallet/internal/version"
)

func main() {
	// Handle --version before subcommand dispatch
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-version" {
			fmt.Printf("arcwallet %s\n", version.String())
			os.Exit(0)
		}
	}

	util.InitLogger()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "generate":
		err = cmdGenerate(os.Args[2:])
	case "recover":
		err = cmdRecover(os.Args[2:])
	case "address":
		err = cmdAddress(os.Args[2:])
	case "sign":
		err = cmdSign(os.Args[2:])
	case "send":
		err = cmdSend(os.Args[2:])
	case "balance":
		err = cmdBalance(os.Args[2:])
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "arcwallet — stateless wallet for the arcv chain\n\n")
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  arcwallet generate [-p]                 Create a new 24-word wallet\n")
	fmt.Fprintf(os.Stderr, "  arcwallet recover [-p] [-show-key]      Recover address from a mnemonic\n")
	fmt.Fprintf(os.Stderr, "  arcwallet address -pub <hex>            Derive address from a public key\n")
	fmt.Fprintf(os.Stderr, "  arcwallet address -check <address>      Validate an address string\n")
	fmt.Fprintf(os.Stderr, "  arcwallet sign ...                      Build and sign a transfer\n")
	fmt.Fprintf(os.Stderr, "  arcwallet send ...                      Sign and submit a transfer\n")
	fmt.Fprintf(os.Stderr, "  arcwallet balance <address>             Show balance and next nonce\n")
	fmt.Fprintf(os.Stderr, "  arcwallet --version                     Show version\n")
	fmt.Fprintf(os.Stderr, "\nRun 'arcwallet <command> -h' for command flags.\n")
}
