// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 arcwallet Authors

package util

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ReadPassphrase prompts on stderr and reads a passphrase from the terminal
// with echo disabled. When stdin is not a terminal (piped input), it falls
// back to reading one line, so scripted use still works.
func ReadPassphrase(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	if term.IsTerminal(int(os.Stdin.Fd())) {
		pass, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read passphrase: %w", err)
		}
		return string(pass), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read passphrase: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
