package vault

import "errors"

var (
	// ErrWalletNotFound is returned when no wallet record has been written yet.
	ErrWalletNotFound = errors.New("wallet record not found")

	// ErrWalletExists is returned when creating a wallet over an existing one.
	ErrWalletExists = errors.New("wallet record already exists")

	// ErrImportedNotFound is returned for an unknown imported account id.
	ErrImportedNotFound = errors.New("imported account not found")

	// ErrMigrationMissing is returned when no step upgrades a stored version.
	// It is fatal: the record is never loaded with a guessed schema.
	ErrMigrationMissing = errors.New("no migration for record version")

	// ErrUnknownVersion is returned for a record newer than this build knows.
	ErrUnknownVersion = errors.New("record version is newer than supported")

	// ErrMalformedRecord is returned when a record body is not a JSON object
	// or does not match its schema after migration.
	ErrMalformedRecord = errors.New("malformed record")
)
