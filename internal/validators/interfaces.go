// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks note drafts on the client and every request the
// ledger node and its relayer endpoints accept.
package validators

import "context"

// Validator checks a value. The optional names restrict the check to the
// listed fields; an empty list checks everything the value carries.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
