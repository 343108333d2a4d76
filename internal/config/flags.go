package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port pair accepted by the -a flag.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses walletd's command-line arguments into a partial config.
// Fields whose flag is absent keep their zero value so that mergo can fill
// them from lower-priority sources.
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("walletd", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var autoLockMinutes int
	var approvalTimeout time.Duration
	var bech32Prefix string
	var bitcoinNetwork string
	var schemes string
	var devMode bool
	var autoLockInterval time.Duration
	var sweepInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "SQLite database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&autoLockMinutes, "auto-lock-minutes", 0, "Default inactivity timeout in minutes")
	fs.DurationVar(&approvalTimeout, "approval-timeout", 0, "Pending approval lifetime (e.g., 5m)")
	fs.StringVar(&bech32Prefix, "bech32-prefix", "", "Reference bech32 prefix for Cosmos addresses")
	fs.StringVar(&bitcoinNetwork, "bitcoin-network", "", "Bitcoin network: mainnet or testnet")
	fs.StringVar(&schemes, "schemes", "", "Comma separated derivation schemes")
	fs.BoolVar(&devMode, "dev", false, "Developer mode (debug logging)")
	fs.DurationVar(&autoLockInterval, "auto-lock-interval", 0, "Auto-lock check interval")
	fs.DurationVar(&sweepInterval, "approval-sweep-interval", 0, "Expired approval sweep interval")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AutoLockMinutes: autoLockMinutes,
			ApprovalTimeout: approvalTimeout,
			Bech32Prefix:    bech32Prefix,
			BitcoinNetwork:  bitcoinNetwork,
			EnabledSchemes:  splitList(schemes),
			DevMode:         devMode,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			Address:        serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			AutoLockInterval:      autoLockInterval,
			ApprovalSweepInterval: sweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set implements flag.Value. Only "localhost" or a literal IP is accepted
// as host: the coordinator listens on loopback.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
