package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-chain-keeper/internal/keyring"
	"github.com/MKhiriev/go-chain-keeper/internal/service"
	"github.com/MKhiriev/go-chain-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAccounts(t *testing.T) {
	h, m := newMockedHandler(t)
	m.wallet.EXPECT().Accounts(gomock.Any()).Return([]models.Account{
		{ID: "a1", Name: "Account 1", Address: "cosmos1abc", Algo: models.AlgoSecp256k1},
	}, nil)

	rec := serve(h, http.MethodGet, "/api/accounts", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"address":"cosmos1abc"`)
}

func TestAddAccount(t *testing.T) {
	h, m := newMockedHandler(t)
	m.wallet.EXPECT().AddAccount(gomock.Any(), "Savings").Return(models.Account{ID: "a2", Name: "Savings", Index: 1}, nil)

	rec := serve(h, http.MethodPost, "/api/accounts", `{"name":"Savings"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"index":1`)
}

func TestAddAccount_InvalidName(t *testing.T) {
	h, m := newMockedHandler(t)
	m.wallet.EXPECT().AddAccount(gomock.Any(), "").Return(models.Account{}, service.ErrInvalidName)

	rec := serve(h, http.MethodPost, "/api/accounts", `{"name":""}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImportAccount(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "imported", wantStatus: http.StatusCreated},
		{name: "duplicate seed", err: fmt.Errorf("add: %w", keyring.ErrDuplicateAccount), wantStatus: http.StatusConflict},
		{name: "wrong password", err: service.ErrWrongPassword, wantStatus: http.StatusUnauthorized},
		{name: "locked", err: service.ErrLocked, wantStatus: http.StatusLocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			m.wallet.EXPECT().
				ImportAccount(gomock.Any(), "Cold", "legal winner", "pw").
				Return(models.Account{ID: "i1", Imported: true}, tt.err)

			rec := serve(h, http.MethodPost, "/api/accounts/import", `{"name":"Cold","mnemonic":"legal winner","password":"pw"}`, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDeriveAccount_UsesPathID(t *testing.T) {
	h, m := newMockedHandler(t)
	m.wallet.EXPECT().
		DeriveImportedAccount(gomock.Any(), "i1", "Cold 2", "pw").
		Return(models.Account{ID: "i2", Imported: true, DerivedFrom: "i1"}, nil)

	rec := serve(h, http.MethodPost, "/api/accounts/i1/derive", `{"name":"Cold 2","password":"pw"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"derivedFrom":"i1"`)
}

func TestSelectAccount(t *testing.T) {
	h, m := newMockedHandler(t)
	gomock.InOrder(
		m.wallet.EXPECT().SelectAccount(gomock.Any(), "a1").Return(nil),
		m.wallet.EXPECT().SelectAccount(gomock.Any(), "missing").Return(service.ErrAccountNotFound),
	)

	assert.Equal(t, http.StatusNoContent, serve(h, http.MethodPost, "/api/accounts/a1/select", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodPost, "/api/accounts/missing/select", "", nil).Code)
}
