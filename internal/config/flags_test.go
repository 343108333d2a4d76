package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "missing colon", input: "localhost8080", expectError: true, errorMsg: "need address in a form `host:port`"},
		{name: "non numeric port", input: "localhost:abc", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true, errorMsg: "port number is a positive integer"},
		{name: "hostname not allowed", input: "example.com:80", expectError: true, errorMsg: "incorrect IP-address provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				require.Error(t, err)
				if tt.errorMsg != "" {
					assert.Equal(t, tt.errorMsg, err.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "127.0.0.1:9000",
		"-d", "/tmp/w.db",
		"-config", "/etc/walletd.json",
		"-request-timeout", "15s",
		"-auto-lock-minutes", "3",
		"-approval-timeout", "1m",
		"-bech32-prefix", "juno",
		"-bitcoin-network", "testnet",
		"-schemes", "cosmos, bitcoin",
		"-dev",
		"-auto-lock-interval", "10s",
		"-approval-sweep-interval", "2s",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Address)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/tmp/w.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/walletd.json", cfg.JSONFilePath)
	assert.Equal(t, 3, cfg.App.AutoLockMinutes)
	assert.Equal(t, time.Minute, cfg.App.ApprovalTimeout)
	assert.Equal(t, "juno", cfg.App.Bech32Prefix)
	assert.Equal(t, "testnet", cfg.App.BitcoinNetwork)
	assert.Equal(t, []string{"cosmos", "bitcoin"}, cfg.App.EnabledSchemes)
	assert.True(t, cfg.App.DevMode)
	assert.Equal(t, 10*time.Second, cfg.Workers.AutoLockInterval)
	assert.Equal(t, 2*time.Second, cfg.Workers.ApprovalSweepInterval)
}

func TestParseFlags_NoFlagsLeavesZeroValues(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Invalid(t *testing.T) {
	_, err := parseFlags([]string{"-a", "nope"})
	require.Error(t, err)

	_, err = parseFlags([]string{"-unknown-flag"})
	require.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList("   "))
	assert.Equal(t, []string{"a", "b"}, splitList("a,,b ,"))
}
