package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("wrong password")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrLocked              = errors.New("wallet is locked")
	ErrExpired             = errors.New("approval expired")
	ErrInternalServerError = errors.New("coordinator internal error")

	// ErrRejected is returned by Relay when the user rejected the request or
	// it timed out.
	ErrRejected = errors.New("request rejected")

	ErrEmptyAddress = errors.New("empty address")
	ErrEmptyOrigin  = errors.New("empty origin")
)
