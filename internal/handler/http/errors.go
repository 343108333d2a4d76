// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyOrigin is returned by the origin middleware when a relay
	// request carries no X-Origin header.
	ErrEmptyOrigin = errors.New("empty `X-Origin` header")

	// ErrInvalidOrigin is returned when X-Origin is not an absolute
	// scheme://host URL.
	ErrInvalidOrigin = errors.New("invalid `X-Origin` header")

	// ErrEmptyQueryParam is returned when a required query parameter is
	// missing.
	ErrEmptyQueryParam = errors.New("required query parameter is empty")
)
