// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Coin is an amino coin amount.
type Coin struct {
	Amount string `json:"amount"`
	Denom  string `json:"denom"`
}

// StdFee is the amino fee of a sign doc.
type StdFee struct {
	Amount  []Coin `json:"amount"`
	Gas     string `json:"gas"`
	Granter string `json:"granter,omitempty"`
	Payer   string `json:"payer,omitempty"`
}

// StdSignDoc is the amino (legacy JSON) sign document. Msgs are kept raw:
// the keyring canonicalises the whole document before hashing.
type StdSignDoc struct {
	AccountNumber string            `json:"account_number"`
	ChainID       string            `json:"chain_id"`
	Fee           StdFee            `json:"fee"`
	Memo          string            `json:"memo"`
	Msgs          []json.RawMessage `json:"msgs"`
	Sequence      string            `json:"sequence"`
}

// DirectSignDoc is the protobuf sign document.
type DirectSignDoc struct {
	BodyBytes     []byte `json:"bodyBytes"`
	AuthInfoBytes []byte `json:"authInfoBytes"`
	ChainID       string `json:"chainId"`
	AccountNumber uint64 `json:"accountNumber,string"`
}

// PubKey is an amino-typed public key.
type PubKey struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// StdSignature is a signature together with the signer's public key.
// Signature is base64 of the 64-byte r ‖ s encoding.
type StdSignature struct {
	PubKey    PubKey `json:"pub_key"`
	Signature string `json:"signature"`
}

// AminoSignResponse is returned by amino signing.
type AminoSignResponse struct {
	Signed    StdSignDoc   `json:"signed"`
	Signature StdSignature `json:"signature"`
}

// DirectSignResponse is returned by direct signing.
type DirectSignResponse struct {
	Signed    DirectSignDoc `json:"signed"`
	Signature StdSignature  `json:"signature"`
}

// Key is the public key lookup result handed to relay contexts.
type Key struct {
	Name               string `json:"name"`
	Algo               Algo   `json:"algo"`
	PubKey             []byte `json:"pubKey"`
	Address            []byte `json:"address"`
	Bech32Address      string `json:"bech32Address"`
	EthereumHexAddress string `json:"ethereumHexAddress,omitempty"`
	IsNanoLedger       bool   `json:"isNanoLedger"`
	IsKeystone         bool   `json:"isKeystone"`
}
