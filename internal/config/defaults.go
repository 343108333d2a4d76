package config

import "time"

// Default values applied to every field left empty by env, flags and JSON.
const (
	DefaultAutoLockMinutes       = 10
	DefaultApprovalTimeout       = 5 * time.Minute
	DefaultBech32Prefix          = "cosmos"
	DefaultBitcoinNetwork        = "mainnet"
	DefaultDSN                   = "wallet.db"
	DefaultAddress               = "localhost:8088"
	DefaultRequestTimeout        = 30 * time.Second
	DefaultPollInterval          = 500 * time.Millisecond
	DefaultAutoLockInterval      = 30 * time.Second
	DefaultApprovalSweepInterval = 15 * time.Second
)

// DefaultEnabledSchemes is every derivation scheme the wallet supports.
var DefaultEnabledSchemes = []string{"cosmos", "bitcoin", "evm", "solana"}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AutoLockMinutes: DefaultAutoLockMinutes,
			ApprovalTimeout: DefaultApprovalTimeout,
			Bech32Prefix:    DefaultBech32Prefix,
			BitcoinNetwork:  DefaultBitcoinNetwork,
			EnabledSchemes:  append([]string(nil), DefaultEnabledSchemes...),
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Server: Server{
			Address:        DefaultAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			Address:        DefaultAddress,
			RequestTimeout: DefaultRequestTimeout,
			PollInterval:   DefaultPollInterval,
		},
		Workers: Workers{
			AutoLockInterval:      DefaultAutoLockInterval,
			ApprovalSweepInterval: DefaultApprovalSweepInterval,
		},
	}
}
