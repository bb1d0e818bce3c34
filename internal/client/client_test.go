// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 arcwallet Authors

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/arcv-chain/arcwallet/internal/tx"
	"github.com/arcv-chain/arcwallet/internal/util"
)

func init() {
	util.InitLogger()
}

const testAddr = "arcv17zjef55h3k5gq0mfvvj75z422pzu7t55emhkn8"

// TestAccountInfo verifies the account endpoint and response decoding
func TestAccountInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		if want := "/v1/accounts/" + testAddr; r.URL.Path != want {
			t.Errorf("Expected path %s, got %s", want, r.URL.Path)
		}
		json.NewEncoder(w).Encode(Account{Address: testAddr, Balance: "5000", Nonce: "7"})
	}))
	defer srv.Close()

	acct, err := New(srv.URL, 5*time.Second).AccountInfo(context.Background(), testAddr)
	if err != nil {
		t.Fatalf("AccountInfo failed: %v", err)
	}
	if acct.Balance != "5000" || acct.Nonce != "7" {
		t.Errorf("Unexpected account: %+v", acct)
	}
}

// TestSubmit verifies the signed transaction is posted as JSON and the
// acknowledged hash is returned
func TestSubmit(t *testing.T) {
	signed := tx.SignedTransaction{
		Tx:        tx.Body{Amount: "1", Fee: "1", From: testAddr, Nonce: "0", To: testAddr, Type: "transfer"},
		PublicKey: "cHVi",
		Signature: "c2ln",
		Hash:      "00ff",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected JSON content type, got %q", ct)
		}
		var got tx.SignedTransaction
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("Failed to decode request body: %v", err)
		}
		if got != signed {
			t.Errorf("Submitted record mismatch: %+v", got)
		}
		json.NewEncoder(w).Encode(map[string]string{"hash": signed.Hash})
	}))
	defer srv.Close()

	hash, err := New(srv.URL, 5*time.Second).Submit(context.Background(), signed)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if hash != signed.Hash {
		t.Errorf("Expected hash %s, got %s", signed.Hash, hash)
	}
}

// TestSubmitRejection verifies node rejections surface the cleaned reason,
// not the echoed record dump
func TestSubmitRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"error":   "tx {huge serialized record dump ...} rejected",
			"message": "signature verification failed",
		})
	}))
	defer srv.Close()

	_, err := New(srv.URL, 5*time.Second).Submit(context.Background(), tx.SignedTransaction{})
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !strings.Contains(err.Error(), "signature verification failed") {
		t.Errorf("Error missing node reason: %v", err)
	}
	if strings.Contains(err.Error(), "record dump") {
		t.Errorf("Error includes raw node payload: %v", err)
	}
}

// TestContextCancellation verifies requests honor the caller's context
func TestContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := New(srv.URL, 5*time.Second).AccountInfo(ctx, testAddr); err == nil {
		t.Error("Expected context error, got nil")
	}
}
