package keyring

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/MKhiriev/go-chain-keeper/internal/derivation"
	"github.com/MKhiriev/go-chain-keeper/models"
)

// PubKeyTypeSecp256k1 is the amino type of a Cosmos secp256k1 public key.
const PubKeyTypeSecp256k1 = "tendermint/PubKeySecp256k1"

// Key returns the public key information of an account with its Cosmos
// address encoded under prefix.
func (k *Keyring) Key(accountID, prefix string) (models.Key, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.wiped {
		return models.Key{}, ErrWiped
	}

	e, ok := k.registry.get(accountID)
	if !ok {
		return models.Key{}, fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
	}
	return keyOf(e, prefix)
}

// KeyByAddress returns the key that owns a bech32 address of any prefix.
func (k *Keyring) KeyByAddress(address string) (models.Key, error) {
	hrp, err := bech32Prefix(address)
	if err != nil {
		return models.Key{}, err
	}

	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.wiped {
		return models.Key{}, ErrWiped
	}

	e, err := k.signer(address)
	if err != nil {
		return models.Key{}, err
	}
	return keyOf(e, hrp)
}

func keyOf(e *entry, prefix string) (models.Key, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	addr, err := e.addressFor(prefix)
	if err != nil {
		return models.Key{}, err
	}

	key := models.Key{
		Name:          e.account.Name,
		Algo:          e.account.Algo,
		PubKey:        bytes.Clone(e.account.PubKey),
		Address:       bytes.Clone(e.addrHash),
		Bech32Address: addr,
	}
	if kp, ok := e.keys[derivation.EVM]; ok {
		key.EthereumHexAddress = kp.Address
	}
	return key, nil
}

// signer finds the entry whose Cosmos key hash equals the signer payload.
// Callers must hold k.mu.
func (k *Keyring) signer(address string) (*entry, error) {
	hash, err := derivation.AddressBytes(address)
	if err != nil {
		return nil, err
	}
	e, ok := k.registry.byAddressHash(hash)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSignerNotFound, address)
	}
	return e, nil
}

// SignAmino signs a legacy amino JSON sign doc with the signer's Cosmos key.
func (k *Keyring) SignAmino(chainID, signer string, doc models.StdSignDoc) (models.AminoSignResponse, error) {
	if doc.ChainID != chainID {
		return models.AminoSignResponse{}, fmt.Errorf("%w: doc %q, request %q", ErrChainMismatch, doc.ChainID, chainID)
	}

	signBytes, err := AminoSignBytes(doc)
	if err != nil {
		return models.AminoSignResponse{}, err
	}

	sig, err := k.signCosmos(signer, signBytes)
	if err != nil {
		return models.AminoSignResponse{}, err
	}
	return models.AminoSignResponse{Signed: doc, Signature: sig}, nil
}

// SignDirect signs a protobuf sign doc with the signer's Cosmos key.
func (k *Keyring) SignDirect(chainID, signer string, doc models.DirectSignDoc) (models.DirectSignResponse, error) {
	if doc.ChainID != chainID {
		return models.DirectSignResponse{}, fmt.Errorf("%w: doc %q, request %q", ErrChainMismatch, doc.ChainID, chainID)
	}

	sig, err := k.signCosmos(signer, DirectSignBytes(doc))
	if err != nil {
		return models.DirectSignResponse{}, err
	}
	return models.DirectSignResponse{Signed: doc, Signature: sig}, nil
}

// SignArbitrary signs data under the ADR-036 "sign data" convention. The
// wrapping doc carries no chain id, so the result is valid on every chain.
func (k *Keyring) SignArbitrary(signer string, data []byte) (models.StdSignature, error) {
	signBytes, err := AminoSignBytes(ADR36SignDoc(signer, data))
	if err != nil {
		return models.StdSignature{}, err
	}
	return k.signCosmos(signer, signBytes)
}

// VerifyArbitrary checks an ADR-036 signature. The public key in sig must
// belong to signer; the keyring only needs to be open, not to own signer.
func (k *Keyring) VerifyArbitrary(signer string, data []byte, sig models.StdSignature) (bool, error) {
	if sig.PubKey.Type != PubKeyTypeSecp256k1 {
		return false, fmt.Errorf("unsupported public key type %q", sig.PubKey.Type)
	}
	pub, err := base64.StdEncoding.DecodeString(sig.PubKey.Value)
	if err != nil {
		return false, fmt.Errorf("decode public key: %w", err)
	}
	rs, err := base64.StdEncoding.DecodeString(sig.Signature)
	if err != nil {
		return false, fmt.Errorf("decode signature: %w", err)
	}

	owner, err := derivation.AddressBytes(signer)
	if err != nil {
		return false, err
	}
	hrp, _ := bech32Prefix(signer)
	derived, err := derivation.CosmosAddress(pub, hrp)
	if err != nil {
		return false, err
	}
	derivedHash, err := derivation.AddressBytes(derived)
	if err != nil {
		return false, err
	}
	if !bytes.Equal(owner, derivedHash) {
		return false, nil
	}

	signBytes, err := AminoSignBytes(ADR36SignDoc(signer, data))
	if err != nil {
		return false, err
	}
	hash := sha256.Sum256(signBytes)
	if len(rs) != 64 {
		return false, nil
	}
	return ethcrypto.VerifySignature(pub, hash[:], rs), nil
}

func (k *Keyring) signCosmos(signer string, signBytes []byte) (models.StdSignature, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.wiped {
		return models.StdSignature{}, ErrWiped
	}

	e, err := k.signer(signer)
	if err != nil {
		return models.StdSignature{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	kp, ok := e.keys[derivation.Cosmos]
	if !ok || len(kp.PrivateKey) == 0 {
		return models.StdSignature{}, ErrWiped
	}

	hash := sha256.Sum256(signBytes)
	rs := signSecp256k1(kp.PrivateKey, hash[:])

	return models.StdSignature{
		PubKey: models.PubKey{
			Type:  PubKeyTypeSecp256k1,
			Value: base64.StdEncoding.EncodeToString(kp.PublicKey),
		},
		Signature: base64.StdEncoding.EncodeToString(rs),
	}, nil
}

// signSecp256k1 returns the 64-byte low-S r ‖ s signature of hash.
func signSecp256k1(privKey, hash []byte) []byte {
	priv, _ := btcec.PrivKeyFromBytes(privKey)
	defer priv.Zero()

	compact := ecdsa.SignCompact(priv, hash, true)
	// drop the recovery byte
	return compact[1:]
}

// AminoSignBytes returns the canonical JSON of doc: keys sorted at every
// level, no insignificant whitespace.
func AminoSignBytes(doc models.StdSignDoc) ([]byte, error) {
	if doc.Msgs == nil {
		doc.Msgs = []json.RawMessage{}
	}
	if doc.Fee.Amount == nil {
		doc.Fee.Amount = []models.Coin{}
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal sign doc: %w", err)
	}
	return canonicalJSON(raw)
}

func canonicalJSON(raw []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode sign doc: %w", err)
	}
	// encoding/json sorts map keys
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode sign doc: %w", err)
	}
	return out, nil
}

// DirectSignBytes encodes cosmos.tx.v1beta1.SignDoc. Default values are
// omitted as proto3 requires.
func DirectSignBytes(doc models.DirectSignDoc) []byte {
	var b []byte
	if len(doc.BodyBytes) > 0 {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, doc.BodyBytes)
	}
	if len(doc.AuthInfoBytes) > 0 {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, doc.AuthInfoBytes)
	}
	if doc.ChainID != "" {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendString(b, doc.ChainID)
	}
	if doc.AccountNumber != 0 {
		b = protowire.AppendTag(b, 4, protowire.VarintType)
		b = protowire.AppendVarint(b, doc.AccountNumber)
	}
	return b
}

// ADR36SignDoc wraps arbitrary data in the amino doc used for off-chain
// message signing.
func ADR36SignDoc(signer string, data []byte) models.StdSignDoc {
	msg, _ := json.Marshal(map[string]any{
		"type": "sign/MsgSignData",
		"value": map[string]string{
			"signer": signer,
			"data":   base64.StdEncoding.EncodeToString(data),
		},
	})
	return models.StdSignDoc{
		AccountNumber: "0",
		ChainID:       "",
		Fee:           models.StdFee{Amount: []models.Coin{}, Gas: "0"},
		Memo:          "",
		Msgs:          []json.RawMessage{msg},
		Sequence:      "0",
	}
}

func bech32Prefix(address string) (string, error) {
	if _, err := derivation.AddressBytes(address); err != nil {
		return "", err
	}
	for i := len(address) - 1; i >= 0; i-- {
		if address[i] == '1' {
			return address[:i], nil
		}
	}
	return "", fmt.Errorf("%w: %s", derivation.ErrInvalidAddress, address)
}
