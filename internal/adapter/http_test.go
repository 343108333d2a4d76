// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpCoordinatorAdapter {
	t.Helper()

	a, err := NewHTTPCoordinatorAdapter(config.Adapter{Address: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpCoordinatorAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Wallet ──────────────────────────────────────────────────────────────────

func TestCreateWallet_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/wallet/create", r.URL.Path)

		var req models.CreateWalletRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "pw", req.Password)
		assert.Equal(t, 12, req.Words)

		writeJSON(t, w, http.StatusCreated, models.CreateWalletResponse{Mnemonic: "one two three"})
	}))
	defer srv.Close()

	mnemonic, err := newTestAdapter(t, srv.URL).CreateWallet(context.Background(), "pw", 12)

	require.NoError(t, err)
	assert.Equal(t, "one two three", mnemonic)
}

func TestCreateWallet_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "wallet record already exists", http.StatusConflict)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateWallet(context.Background(), "pw", 12)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "already exists")
}

func TestUnlock_WrongPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/wallet/unlock", r.URL.Path)
		http.Error(w, "wrong password", http.StatusUnauthorized)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).Unlock(context.Background(), "bad")

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLock_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/wallet/lock", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, newTestAdapter(t, srv.URL).Lock(context.Background()))
}

func TestStatus_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		writeJSON(t, w, http.StatusOK, models.WalletStatus{State: models.StateUnlocked, AccountCount: 2})
	}))
	defer srv.Close()

	status, err := newTestAdapter(t, srv.URL).Status(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.StateUnlocked, status.State)
	assert.Equal(t, 2, status.AccountCount)
}

// ── Accounts ────────────────────────────────────────────────────────────────

func TestAccounts_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/accounts", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []models.Account{{ID: "a1", Name: "Account 1"}, {ID: "a2", Name: "Account 2", Index: 1}})
	}))
	defer srv.Close()

	accounts, err := newTestAdapter(t, srv.URL).Accounts(context.Background())

	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, 1, accounts[1].Index)
}

func TestSelectAccount_Locked(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/accounts/a1/select", r.URL.Path)
		http.Error(w, "wallet is locked", http.StatusLocked)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).SelectAccount(context.Background(), "a1")

	assert.ErrorIs(t, err, ErrLocked)
}

func TestSetAutoLock_Put(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/wallet/preferences/auto-lock", r.URL.Path)

		var req models.AutoLockRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 15, req.Minutes)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, newTestAdapter(t, srv.URL).SetAutoLock(context.Background(), 15))
}

// ── Approvals ───────────────────────────────────────────────────────────────

func TestResolveApproval_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/approvals/gone/resolve", r.URL.Path)
		http.Error(w, "pending approval was not found", http.StatusNotFound)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).ResolveApproval(context.Background(), "gone", true)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRevokePermission_QueryParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "https://app.example", r.URL.Query().Get("origin"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, newTestAdapter(t, srv.URL).RevokePermission(context.Background(), "https://app.example"))
}

func TestVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.NewAppBuildInfo("1.0.0", "", ""))
	}))
	defer srv.Close()

	info, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", info.Version)
	assert.Equal(t, "N/A", info.Commit)
}

func TestInternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Accounts(context.Background())

	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestUnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Status(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8088", want: "http://localhost:8088"},
		{name: "with scheme", raw: "https://wallet.local", want: "https://wallet.local"},
		{name: "trailing slash", raw: "http://127.0.0.1:8088/", want: "http://127.0.0.1:8088"},
		{name: "spaces", raw: "  localhost:1  ", want: "http://localhost:1"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPCoordinatorAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPCoordinatorAdapter(config.Adapter{}, logger.Nop())

	assert.ErrorIs(t, err, ErrEmptyAddress)
}

func TestGatewayErrorsAreInternal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Status(context.Background())

	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Contains(t, err.Error(), "Bad Gateway")
}

func TestResolveApproval_Expired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "approval timed out and was rejected: p1", http.StatusGone)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).ResolveApproval(context.Background(), "p1", true)

	assert.ErrorIs(t, err, ErrExpired)
}
