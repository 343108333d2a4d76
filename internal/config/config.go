// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration of the wallet coordinator.
// It is populated by merging environment variables, command-line flags, an
// optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds wallet behaviour: auto-lock, approvals and derivation params.
	App App `envPrefix:"APP_"`

	// Storage holds the durable store connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the coordinator's message endpoint settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings used by UI and relay clients to reach the
	// coordinator.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background timer intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App groups wallet-level settings.
type App struct {
	// AutoLockMinutes is the inactivity timeout written into preferences when
	// the wallet is created. Users change it later through preferences; a
	// value of 0 here means "use the default".
	AutoLockMinutes int `env:"AUTO_LOCK_MINUTES"`

	// ApprovalTimeout is the hard lifetime of a pending approval.
	ApprovalTimeout time.Duration `env:"APPROVAL_TIMEOUT"`

	// Bech32Prefix is the reference prefix primary Cosmos addresses are
	// derived under.
	Bech32Prefix string `env:"BECH32_PREFIX"`

	// BitcoinNetwork is "mainnet" or "testnet".
	BitcoinNetwork string `env:"BITCOIN_NETWORK"`

	// EnabledSchemes lists the derivation schemes every account is derived on.
	EnabledSchemes []string `env:"ENABLED_SCHEMES" envSeparator:","`

	// DevMode enables debug-level logging.
	DevMode bool `env:"DEV_MODE"`
}

// Storage groups the configuration for the durable store.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite data source name.
type DB struct {
	DSN string `env:"DSN"`
}

// Server holds the coordinator HTTP endpoint settings.
type Server struct {
	Address        string        `env:"ADDRESS"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client-side transport settings.
type Adapter struct {
	Address        string        `env:"ADDRESS"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	// PollInterval is how often a relay polls for an approval-gated result.
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// Workers holds background worker intervals.
type Workers struct {
	AutoLockInterval      time.Duration `env:"AUTO_LOCK_INTERVAL"`
	ApprovalSweepInterval time.Duration `env:"APPROVAL_SWEEP_INTERVAL"`
}

// GetStructuredConfig builds the coordinator configuration from the process
// environment, the given command-line arguments, an optional JSON file and
// defaults, then validates it.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}

// GetClientConfig builds the configuration used by walletctl. Flags are owned
// by the CLI framework, so only the environment, JSON file and defaults apply.
func GetClientConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg, cfg.validateClient()
}
