// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// statusErrorMap mirrors the coordinator's error-to-status table in reverse.
var statusErrorMap = map[int]error{
	http.StatusBadRequest:   ErrBadRequest,
	http.StatusUnauthorized: ErrUnauthorized,
	http.StatusForbidden:    ErrForbidden,
	http.StatusNotFound:     ErrNotFound,
	http.StatusConflict:     ErrConflict,
	http.StatusGone:         ErrExpired,
	http.StatusLocked:       ErrLocked,
}

// mapHTTPError turns a non-2xx coordinator response into a sentinel error
// carrying the response text. Every 5xx is an [ErrInternalServerError].
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	if target, ok := statusErrorMap[code]; ok {
		return fmt.Errorf("%w: %s", target, body)
	}
	if code >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d: %s", ErrInternalServerError, code, body)
	}
	return fmt.Errorf("http %d: %s", code, body)
}
