// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 arcwallet Authors

package util

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ClientConfig holds settings for the RPC client. It configures transport
// only; nothing in it affects key derivation or signing.
type ClientConfig struct {
	RPCURL         string `yaml:"rpc_url" description:"Node RPC endpoint"`
	RequestTimeout string `yaml:"request_timeout" description:"Per-request timeout (Go duration)" default:"10s"`
}

// DefaultClientConfig returns the default client configuration.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		RPCURL:         "http://localhost:26757",
		RequestTimeout: "10s",
	}
}

// LoadClientConfig loads configuration from path, or from ARCWALLET_CONFIG
// when path is empty. Missing file with no explicit path is not an error;
// defaults apply. Fields absent from the file keep their defaults.
func LoadClientConfig(path string) (ClientConfig, error) {
	cfg := DefaultClientConfig()

	if path == "" {
		path = os.Getenv("ARCWALLET_CONFIG")
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.RPCURL == "" {
		cfg.RPCURL = DefaultClientConfig().RPCURL
	}
	if cfg.RequestTimeout == "" {
		cfg.RequestTimeout = DefaultClientConfig().RequestTimeout
	}
	return cfg, nil
}
