package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when no record with the requested name
	// has been written yet.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrApprovalNotFound is returned when a pending approval with the given
	// id does not exist (never created, already resolved or expired).
	ErrApprovalNotFound = errors.New("pending approval was not found")

	// ErrApprovalExists is returned when a pending approval id is reused.
	ErrApprovalExists = errors.New("pending approval already exists")

	// ErrOutcomeNotFound is returned when an approval has no stored outcome,
	// either because it is still pending or because the outcome was consumed.
	ErrOutcomeNotFound = errors.New("approval outcome was not found")

	// ErrSessionNotFound is returned by the session store when no snapshot
	// was written during the current process lifetime or it was cleared.
	ErrSessionNotFound = errors.New("session snapshot was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")

	// ErrSessionStore wraps failures of the ephemeral key-value store.
	ErrSessionStore = errors.New("session store failure")
)
