package models

// DefaultChainID is selected when no chain has been chosen yet.
const DefaultChainID = "cosmoshub-4"

// Preferences is the durable user preferences record.
type Preferences struct {
	SchemaVersion     int    `json:"schemaVersion"`
	SelectedAccountID string `json:"selectedAccountId"`
	SelectedChainID   string `json:"selectedChainId"`
	// AutoLockMinutes is the inactivity timeout; 0 disables auto-lock.
	AutoLockMinutes int `json:"autoLockMinutes"`
}
