// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks field-device input before it reaches the
// service layer.
//
// [Validator] is the generic entry point; [ParseAccessRequest] turns a wire
// [models.AccessRequest] into the typed [models.AccessCommand] variant for
// its command, so the access service never sees a request with missing
// fields.
package validators

import "context"

// Validator validates the provided input and optionally restricts the
// checks to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
