// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input (names, PINs, mood entries, journal
// text, preference updates) before a service touches the companion state.
// Failures are *ValidationError values naming the offending field.
package validators

import "context"

// Validator validates a request value. fields, when given, limits the check
// to the named fields.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
