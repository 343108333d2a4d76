package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-chain-keeper/internal/crypto"
	"github.com/MKhiriev/go-chain-keeper/internal/derivation"
	"github.com/MKhiriev/go-chain-keeper/internal/keyring"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/service"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/internal/utils"
	"github.com/MKhiriev/go-chain-keeper/internal/vault"
)

var errorStatusMap = map[error]int{
	utils.ErrInvalidJSON: http.StatusBadRequest,
	ErrEmptyOrigin:       http.StatusBadRequest,
	ErrInvalidOrigin:     http.StatusBadRequest,
	ErrEmptyQueryParam:   http.StatusBadRequest,

	service.ErrWalletNotFound:     http.StatusNotFound,
	service.ErrWalletExists:       http.StatusConflict,
	service.ErrLocked:             http.StatusLocked,
	service.ErrUnlockInProgress:   http.StatusConflict,
	service.ErrWrongPassword:      http.StatusUnauthorized,
	service.ErrEmptyPassword:      http.StatusBadRequest,
	service.ErrInvalidMnemonic:    http.StatusBadRequest,
	service.ErrInvalidName:        http.StatusBadRequest,
	service.ErrInvalidAutoLock:    http.StatusBadRequest,
	service.ErrAccountNotFound:    http.StatusNotFound,
	service.ErrApprovalNotFound:   http.StatusNotFound,
	service.ErrApprovalPending:    http.StatusConflict,
	service.ErrApprovalExpired:    http.StatusGone,
	service.ErrInvalidApproval:    http.StatusBadRequest,
	service.ErrRequestRejected:    http.StatusForbidden,
	service.ErrOriginNotPermitted: http.StatusForbidden,
	service.ErrInvalidRequest:     http.StatusBadRequest,

	keyring.ErrSignerNotFound:   http.StatusNotFound,
	keyring.ErrDuplicateAccount: http.StatusConflict,
	keyring.ErrChainMismatch:    http.StatusBadRequest,
	keyring.ErrSchemeDisabled:   http.StatusBadRequest,

	derivation.ErrInvalidMnemonic:    http.StatusBadRequest,
	derivation.ErrInvalidAddress:     http.StatusBadRequest,
	derivation.ErrUnsupportedScheme:  http.StatusBadRequest,
	derivation.ErrUnsupportedNetwork: http.StatusBadRequest,

	crypto.ErrAuthentication: http.StatusUnauthorized,
	crypto.ErrIntegrity:      http.StatusInternalServerError,

	vault.ErrMigrationMissing: http.StatusInternalServerError,
	vault.ErrUnknownVersion:   http.StatusInternalServerError,
	vault.ErrMalformedRecord:  http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrSessionStore:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. Server errors are
// answered with the bare status text so internals never reach the client.
func writeError(w http.ResponseWriter, log *logger.Logger, err error, msg string) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg(msg)
	http.Error(w, err.Error(), status)
}
