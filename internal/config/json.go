package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys
// and human-readable durations.
type StructuredJSONConfig struct {
	App struct {
		AutoLockMinutes int      `json:"auto_lock_minutes"`
		ApprovalTimeout Duration `json:"approval_timeout"`
		Bech32Prefix    string   `json:"bech32_prefix"`
		BitcoinNetwork  string   `json:"bitcoin_network"`
		EnabledSchemes  []string `json:"enabled_schemes"`
		DevMode         bool     `json:"dev_mode"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
		PollInterval   Duration `json:"poll_interval"`
	} `json:"adapter,omitempty"`

	Workers struct {
		AutoLockInterval      Duration `json:"auto_lock_interval"`
		ApprovalSweepInterval Duration `json:"approval_sweep_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			AutoLockMinutes: jsonCfg.App.AutoLockMinutes,
			ApprovalTimeout: time.Duration(jsonCfg.App.ApprovalTimeout),
			Bech32Prefix:    jsonCfg.App.Bech32Prefix,
			BitcoinNetwork:  jsonCfg.App.BitcoinNetwork,
			EnabledSchemes:  jsonCfg.App.EnabledSchemes,
			DevMode:         jsonCfg.App.DevMode,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			Address:        jsonCfg.Server.Address,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			Address:        jsonCfg.Adapter.Address,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			PollInterval:   time.Duration(jsonCfg.Adapter.PollInterval),
		},
		Workers: Workers{
			AutoLockInterval:      time.Duration(jsonCfg.Workers.AutoLockInterval),
			ApprovalSweepInterval: time.Duration(jsonCfg.Workers.ApprovalSweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a time.Duration that unmarshals from either a Go duration
// string ("30s") or a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
