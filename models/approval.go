// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// ApprovalKind classifies what an external origin asks the user to approve.
type ApprovalKind string

const (
	ApprovalConnection  ApprovalKind = "connection"
	ApprovalTransaction ApprovalKind = "transaction"
	ApprovalSigning     ApprovalKind = "signing"
)

// Valid reports whether k is one of the known approval kinds.
func (k ApprovalKind) Valid() bool {
	switch k {
	case ApprovalConnection, ApprovalTransaction, ApprovalSigning:
		return true
	}
	return false
}

// PendingApproval is a durable request waiting for a user decision.
// It lives until it is resolved or its timeout expires.
type PendingApproval struct {
	ID        string          `json:"id"`
	Kind      ApprovalKind    `json:"kind"`
	Origin    string          `json:"origin"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ExpiresAt returns the hard deadline of the approval for the given timeout.
func (p PendingApproval) ExpiresAt(timeout time.Duration) time.Time {
	return p.CreatedAt.Add(timeout)
}

// ApprovalOutcome is the durable result of a resolved approval. It keeps
// the original payload so a caller resuming by id can act on it after a
// coordinator restart.
type ApprovalOutcome struct {
	ID         string          `json:"id"`
	Kind       ApprovalKind    `json:"kind"`
	Origin     string          `json:"origin"`
	Payload    json.RawMessage `json:"payload"`
	Approved   bool            `json:"approved"`
	ResolvedAt time.Time       `json:"resolvedAt"`
}

// OriginPermission records that an origin was granted a connection to a chain.
type OriginPermission struct {
	Origin    string    `json:"origin"`
	ChainID   string    `json:"chainId"`
	GrantedAt time.Time `json:"grantedAt"`
}
