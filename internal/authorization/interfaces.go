// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
)

type TenantGuardInterface interface {
	// Authorize reports whether a principal bound to principalTenant may
	// touch a resource owned by resourceTenant.
	Authorize(ctx context.Context, principalTenant, resourceTenant string) bool
	// CheckResourceAccess is the error-returning form used by resource
	// services; a denial is ErrTenantMismatch.
	CheckResourceAccess(ctx context.Context, principalID, principalTenant, resourceTenant string) error
}
