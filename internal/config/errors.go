package config

import "errors"

var (
	// ErrInvalidAdapterConfigs is returned when the client transport settings
	// are missing or invalid.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs is returned when the store DSN is missing.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs is returned when the endpoint address or
	// timeout is missing.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs is returned for an unknown scheme or network, or a
	// negative timeout.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs is returned for bad worker intervals.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
