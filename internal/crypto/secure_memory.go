// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 arcwallet Authors

// Package crypto provides secure-memory helpers for secret byte buffers.
//
// Seeds and signing keys pass through this package on their way out of
// scope: every derivation and signing call zeros its local copies before
// returning. Nothing here protects against the caller retaining its own
// references.
package crypto

import (
	"crypto/subtle"
	"runtime"
)

// ZeroBytes securely overwrites a byte slice with zeros.
// Uses constant-time copy to prevent the compiler from eliding the write.
func ZeroBytes(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
	runtime.KeepAlive(b)
}
