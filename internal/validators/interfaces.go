// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks requests that arrive from external origins
// before any of them reaches the keyring or the approval queue.
//
// A Validator accepts an optional list of field names to restrict the
// checks to; with no fields every rule for the type applies.
package validators

import "context"

// Validator validates a value, optionally only the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
