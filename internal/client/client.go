// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 arcwallet Authors

// Package client is a thin request/response wrapper around an arcv node's
// JSON RPC. It fetches account state (balance and next nonce) and submits
// signed transactions. No retries, no backoff, no connection state: policy
// belongs to the caller.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/arcv-chain/arcwallet/internal/tx"
	"github.com/arcv-chain/arcwallet/internal/util"
)

// Account is the node's view of an account: balance and the next unused
// nonce, both decimal strings like everywhere else in the wire format.
type Account struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
	Nonce   string `json:"nonce"`
}

// Client talks to a single arcv node.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the node at baseURL with the given per-request
// timeout.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// AccountInfo fetches balance and next nonce for an address.
func (c *Client) AccountInfo(ctx context.Context, addr string) (Account, error) {
	var acct Account
	url := c.baseURL + "/v1/accounts/" + addr
	util.Debug("rpc request", "method", "GET", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return acct, fmt.Errorf("failed to build account request: %w", err)
	}
	if err := c.do(req, &acct); err != nil {
		return acct, fmt.Errorf("failed to fetch account %s: %w", addr, err)
	}
	return acct, nil
}

// Submit sends a signed transaction to the node and returns the transaction
// hash the node acknowledged.
func (c *Client) Submit(ctx context.Context, signed tx.SignedTransaction) (string, error) {
	body, err := json.Marshal(signed)
	if err != nil {
		return "", fmt.Errorf("failed to encode signed transaction: %w", err)
	}
	url := c.baseURL + "/v1/transactions"
	util.Debug("rpc request", "method", "POST", "url", url, "bytes", len(body))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp struct {
		Hash string `json:"hash"`
	}
	if err := c.do(req, &resp); err != nil {
		return "", fmt.Errorf("failed to submit transaction: %w", err)
	}
	return resp.Hash, nil
}

// do executes a request and decodes a JSON response body into out.
// Non-2xx responses become errors carrying the node's rejection reason.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("node returned %s: %s", resp.Status, cleanNodeError(data))
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// cleanNodeError extracts a readable rejection reason from a node error
// body. Nodes echo the full submitted record in their error payload,
// producing enormous output; this keeps just the message field when one
// exists.
func cleanNodeError(body []byte) string {
	var e struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err == nil {
		if e.Message != "" {
			return e.Message
		}
		if e.Error != "" {
			return e.Error
		}
	}
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
