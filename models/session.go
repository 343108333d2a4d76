package models

import "time"

// SessionSnapshot is the ephemeral copy of an unlocked keyring.
// It is written only while unlocked and cleared on lock.
type SessionSnapshot struct {
	SessionID         string `json:"sessionId"`
	SerializedKeyring []byte `json:"serializedKeyring"`
	// LastActivityTimestamp is unix milliseconds of the last explicit activity.
	LastActivityTimestamp int64 `json:"lastActivityTimestamp"`
}

// LastActivity returns LastActivityTimestamp as time.Time.
func (s SessionSnapshot) LastActivity() time.Time {
	return time.UnixMilli(s.LastActivityTimestamp)
}

// WalletState is the lock state of the wallet as seen by one coordinator.
type WalletState string

const (
	StateNotInitialized WalletState = "not_initialized"
	StateLocked         WalletState = "locked"
	StateUnlocking      WalletState = "unlocking"
	StateUnlocked       WalletState = "unlocked"
)

// WalletStatus is returned to UI contexts polling the coordinator.
type WalletStatus struct {
	State        WalletState `json:"state"`
	AccountCount int         `json:"accountCount"`
}
