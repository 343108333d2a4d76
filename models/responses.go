package models

// CreateWalletResponse returns the freshly generated mnemonic exactly once.
type CreateWalletResponse struct {
	Mnemonic string `json:"mnemonic"`
}

// VerifyResponse reports the result of a password or signature check.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// CountResponse carries the number of pending approvals.
type CountResponse struct {
	Count int `json:"count"`
}

// AutoLockResponse reports whether a CheckAutoLock call locked the wallet.
type AutoLockResponse struct {
	Locked bool `json:"locked"`
}
