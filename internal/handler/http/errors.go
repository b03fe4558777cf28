// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is logged when a request body cannot be decoded. The
	// client gets 400 Bad Request.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
	// ErrBodyTooLarge answers bodies over the access request limit with 413.
	ErrBodyTooLarge = errors.New("request body too large")
)
