package vault

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-chain-keeper/internal/crypto"
	"github.com/MKhiriev/go-chain-keeper/internal/mock"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/models"
)

func newMockedVault(t *testing.T) (*Vault, *mock.MockRecordStore, *mock.MockSecretCipher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	records := mock.NewMockRecordStore(ctrl)
	cipher := mock.NewMockSecretCipher(ctrl)
	return New(records, cipher, 10), records, cipher
}

func currentWalletRecord() models.RawRecord {
	return models.RawRecord{
		Name:          models.WalletRecordName,
		SchemaVersion: WalletSchemaVersion,
		Body:          []byte(`{"schemaVersion":3,"salt":"c2FsdA==","encryptedMnemonic":"Y3Q=","accounts":[],"importedAccounts":[]}`),
	}
}

func TestVault_CreateWallet_EncryptFailureWritesNothing(t *testing.T) {
	v, records, cipher := newMockedVault(t)
	ctx := context.Background()

	records.EXPECT().GetRecord(ctx, models.WalletRecordName).Return(models.RawRecord{}, store.ErrRecordNotFound)
	cipher.EXPECT().Encrypt(testMnemonic, "pw").Return(models.EncryptedSecret{}, errors.New("entropy exhausted"))
	// no PutRecord expectation: a failed encryption must not touch storage

	_, err := v.CreateWallet(ctx, testMnemonic, "pw", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "encrypt mnemonic")
}

func TestVault_CreateWallet_StoresOnlyCiphertext(t *testing.T) {
	v, records, cipher := newMockedVault(t)
	ctx := context.Background()

	records.EXPECT().GetRecord(ctx, models.WalletRecordName).Return(models.RawRecord{}, store.ErrRecordNotFound)
	cipher.EXPECT().Encrypt(testMnemonic, "pw").Return(models.EncryptedSecret{Salt: "c2FsdA==", Ciphertext: "Y3Q="}, nil)
	records.EXPECT().
		PutRecord(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.RawRecord) error {
			assert.Equal(t, models.WalletRecordName, rec.Name)
			assert.Equal(t, WalletSchemaVersion, rec.SchemaVersion)
			assert.NotContains(t, string(rec.Body), "abandon")
			assert.Contains(t, string(rec.Body), `"salt":"c2FsdA=="`)
			return nil
		})

	rec, err := v.CreateWallet(ctx, testMnemonic, "pw", nil)

	require.NoError(t, err)
	assert.Equal(t, "Y3Q=", rec.EncryptedMnemonic)
}

func TestVault_Exists_StoreError(t *testing.T) {
	v, records, _ := newMockedVault(t)
	records.EXPECT().GetRecord(gomock.Any(), models.WalletRecordName).Return(models.RawRecord{}, store.ErrExecutingQuery)

	_, err := v.Exists(context.Background())

	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestVault_VerifyPassword_DelegatesToCipher(t *testing.T) {
	v, records, cipher := newMockedVault(t)
	records.EXPECT().GetRecord(gomock.Any(), models.WalletRecordName).Return(currentWalletRecord(), nil).Times(2)
	secret := models.EncryptedSecret{Salt: "c2FsdA==", Ciphertext: "Y3Q="}

	gomock.InOrder(
		cipher.EXPECT().VerifyPassword(secret, "wrong").Return(false, nil),
		cipher.EXPECT().VerifyPassword(secret, "pw").Return(false, crypto.ErrIntegrity),
	)

	ok, err := v.VerifyPassword(context.Background(), "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = v.VerifyPassword(context.Background(), "pw")
	assert.ErrorIs(t, err, crypto.ErrIntegrity)
}

func TestVault_LoadWallet_WriteBackFailure(t *testing.T) {
	v, records, _ := newMockedVault(t)
	legacy := models.RawRecord{
		Name:          models.WalletRecordName,
		SchemaVersion: 1,
		Body:          []byte(`{"salt":"c2FsdA==","encryptedMnemonic":"Y3Q=","accounts":[]}`),
	}
	records.EXPECT().GetRecord(gomock.Any(), models.WalletRecordName).Return(legacy, nil)
	records.EXPECT().PutRecord(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := v.LoadWallet(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "write back migrated")
}

func TestVault_DecryptMain_WrongPassword(t *testing.T) {
	v, _, cipher := newMockedVault(t)
	rec := models.WalletRecord{Salt: "s", EncryptedMnemonic: "c"}
	cipher.EXPECT().Decrypt(rec.MainSecret(), "bad").Return("", crypto.ErrAuthentication)

	_, err := v.DecryptMain(rec, "bad")

	assert.ErrorIs(t, err, crypto.ErrAuthentication)
}
