// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	"github.com/fleetops/fleet-console/internal/logging"
	"github.com/fleetops/fleet-console/internal/tracing"
)

func TestTenantGuard_Authorize(t *testing.T) {
	testCases := []struct {
		name            string
		principalTenant string
		resourceTenant  string
		want            bool
	}{
		{
			name:            "same tenant",
			principalTenant: "tenant-1",
			resourceTenant:  "tenant-1",
			want:            true,
		},
		{
			name:            "different tenants",
			principalTenant: "tenant-1",
			resourceTenant:  "tenant-2",
			want:            false,
		},
		{
			name:            "resource without tenant binding",
			principalTenant: "tenant-1",
			resourceTenant:  "",
			want:            false,
		},
		{
			name:            "unauthenticated principal tenant",
			principalTenant: "",
			resourceTenant:  "tenant-1",
			want:            false,
		},
		{
			name:            "both empty",
			principalTenant: "",
			resourceTenant:  "",
			want:            false,
		},
	}

	guard := NewTenantGuard(tracing.NewNoopTracer(), nil, logging.NewNoopLogger())

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := guard.Authorize(context.Background(), tc.principalTenant, tc.resourceTenant)
			if got != tc.want {
				t.Errorf("Authorize(%q, %q) = %v, want %v", tc.principalTenant, tc.resourceTenant, got, tc.want)
			}
		})
	}
}

func TestTenantGuard_CheckResourceAccess(t *testing.T) {
	guard := NewTenantGuard(tracing.NewNoopTracer(), nil, logging.NewNoopLogger())

	if err := guard.CheckResourceAccess(context.Background(), "user-1", "tenant-1", "tenant-1"); err != nil {
		t.Errorf("unexpected error for matching tenants: %v", err)
	}

	err := guard.CheckResourceAccess(context.Background(), "user-1", "tenant-1", "tenant-2")
	if !errors.Is(err, ErrTenantMismatch) {
		t.Errorf("expected ErrTenantMismatch, got %v", err)
	}

	err = guard.CheckResourceAccess(context.Background(), "user-1", "tenant-1", "")
	if !errors.Is(err, ErrTenantMismatch) {
		t.Errorf("expected ErrTenantMismatch for unbound resource, got %v", err)
	}
}
