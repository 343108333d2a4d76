package models

// CreateWalletRequest asks the coordinator to generate a new mnemonic.
// Words is 12 or 24.
type CreateWalletRequest struct {
	Password string `json:"password"`
	Words    int    `json:"words"`
}

// ImportWalletRequest initializes the wallet from an existing mnemonic.
type ImportWalletRequest struct {
	Mnemonic string `json:"mnemonic"`
	Password string `json:"password"`
}

// PasswordRequest carries the wallet password for unlock and verification.
type PasswordRequest struct {
	Password string `json:"password"`
}

// AutoLockRequest sets the inactivity timeout in minutes; 0 disables it.
type AutoLockRequest struct {
	Minutes int `json:"minutes"`
}

// SelectChainRequest stores the chain the UI works with.
type SelectChainRequest struct {
	ChainID string `json:"chainId"`
}

// AddAccountRequest derives the next primary account.
type AddAccountRequest struct {
	Name string `json:"name"`
}

// ImportAccountRequest adds an account backed by its own mnemonic. Password
// is the wallet password the mnemonic is encrypted under.
type ImportAccountRequest struct {
	Name     string `json:"name"`
	Mnemonic string `json:"mnemonic"`
	Password string `json:"password"`
}

// DeriveAccountRequest derives the next index of an imported account's seed.
type DeriveAccountRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// ResolveApprovalRequest is the user's decision on a pending approval.
type ResolveApprovalRequest struct {
	Approved bool `json:"approved"`
}

// VerifyArbitraryRequest checks an ADR-036 signature made by signer.
type VerifyArbitraryRequest struct {
	ChainID   string       `json:"chainId"`
	Signer    string       `json:"signer"`
	Data      []byte       `json:"data"`
	Signature StdSignature `json:"signature"`
}
