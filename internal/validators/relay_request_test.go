// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-chain-keeper/internal/keyring"
	"github.com/MKhiriev/go-chain-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validArbitrary() models.RelayRequest {
	return models.RelayRequest{
		Type:    models.RelaySignArbitrary,
		Origin:  "https://app.example",
		ChainID: "cosmoshub-4",
		Signer:  "cosmos1abc",
		Data:    []byte("hello"),
	}
}

func fixedValidator(now time.Time) *RelayRequestValidator {
	return &RelayRequestValidator{now: func() time.Time { return now }}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestNewRelayRequestValidator(t *testing.T) {
	require.NotNil(t, NewRelayRequestValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewRelayRequestValidator()
	ctx := context.Background()
	req := validArbitrary()

	assert.NoError(t, v.Validate(ctx, req))
	assert.NoError(t, v.Validate(ctx, &req))
	assert.ErrorIs(t, v.Validate(ctx, "nope"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, req, "bogus"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// RelayRequest
// ---------------------------------------------------------------------------

func TestValidate_RelayRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.RelayRequest)
		fields  []string
		wantErr error
	}{
		{name: "valid arbitrary", mutate: func(r *models.RelayRequest) {}},
		{name: "blank origin", mutate: func(r *models.RelayRequest) { r.Origin = "  " }, wantErr: ErrEmptyOrigin},
		{name: "empty chain", mutate: func(r *models.RelayRequest) { r.ChainID = "" }, wantErr: ErrEmptyChainID},
		{name: "empty data", mutate: func(r *models.RelayRequest) { r.Data = nil }, wantErr: ErrEmptyData},
		{name: "empty signer", mutate: func(r *models.RelayRequest) { r.Signer = "" }, wantErr: ErrEmptySigner},
		{name: "unknown type", mutate: func(r *models.RelayRequest) { r.Type = "sign_everything" }, wantErr: ErrUnknownType},
		{
			name:   "enable needs no signer",
			mutate: func(r *models.RelayRequest) { r.Type, r.Signer, r.Data = models.RelayEnable, "", nil },
		},
		{
			name:    "amino without doc",
			mutate:  func(r *models.RelayRequest) { r.Type = models.RelaySignAmino },
			wantErr: ErrMissingSignDoc,
		},
		{
			name: "amino doc for another chain",
			mutate: func(r *models.RelayRequest) {
				r.Type = models.RelaySignAmino
				r.AminoDoc = &models.StdSignDoc{ChainID: "osmosis-1"}
			},
			wantErr: keyring.ErrChainMismatch,
		},
		{
			name: "direct doc matches chain",
			mutate: func(r *models.RelayRequest) {
				r.Type = models.RelaySignDirect
				r.DirectDoc = &models.DirectSignDoc{ChainID: "cosmoshub-4"}
			},
		},
		{
			name:    "direct without doc",
			mutate:  func(r *models.RelayRequest) { r.Type = models.RelaySignDirect },
			wantErr: ErrMissingSignDoc,
		},
		{
			name:   "scoped to origin ignores the rest",
			mutate: func(r *models.RelayRequest) { r.ChainID, r.Signer = "", "" },
			fields: []string{FieldOrigin},
		},
	}

	v := NewRelayRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validArbitrary()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// OriginPermission
// ---------------------------------------------------------------------------

func TestValidate_OriginPermission(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	v := fixedValidator(now)
	ctx := context.Background()

	valid := models.OriginPermission{Origin: "https://app.example", ChainID: "osmosis-1", GrantedAt: now}
	assert.NoError(t, v.Validate(ctx, valid))
	assert.NoError(t, v.Validate(ctx, &valid))

	skewed := valid
	skewed.GrantedAt = now.Add(30 * time.Second)
	assert.NoError(t, v.Validate(ctx, skewed))

	future := valid
	future.GrantedAt = now.Add(time.Hour)
	assert.ErrorIs(t, v.Validate(ctx, future), ErrInvalidGrantAge)

	noChain := valid
	noChain.ChainID = ""
	assert.ErrorIs(t, v.Validate(ctx, noChain), ErrEmptyChainID)
	assert.NoError(t, v.Validate(ctx, noChain, FieldOrigin))
}
