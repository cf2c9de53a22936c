// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"

	"github.com/fleetops/fleet-console/internal/logging"
	"github.com/fleetops/fleet-console/internal/monitoring"
	"github.com/fleetops/fleet-console/internal/tracing"
)

// ErrTenantMismatch is surfaced to clients as a plain not-found so the
// existence of another tenant's rows is never disclosed.
var ErrTenantMismatch = errors.New("resource belongs to a different tenant")

var _ TenantGuardInterface = (*TenantGuard)(nil)

// TenantGuard is the cross-cutting precondition applied ahead of every
// tenant-owned resource operation: the authenticated principal's tenant
// must match the resource's tenant. It holds no state and performs no I/O.
type TenantGuard struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (g *TenantGuard) Authorize(ctx context.Context, principalTenant, resourceTenant string) bool {
	_, span := g.tracer.Start(ctx, "authorization.TenantGuard.Authorize")
	defer span.End()

	// A tenant-scoped resource with no tenant binding is never served.
	if principalTenant == "" || resourceTenant == "" {
		return false
	}

	return principalTenant == resourceTenant
}

func (g *TenantGuard) CheckResourceAccess(ctx context.Context, principalID, principalTenant, resourceTenant string) error {
	ctx, span := g.tracer.Start(ctx, "authorization.TenantGuard.CheckResourceAccess")
	defer span.End()

	if g.Authorize(ctx, principalTenant, resourceTenant) {
		return nil
	}

	g.logger.Security().AuthzFailure(principalID, "tenant_resource_access")
	return ErrTenantMismatch
}

func NewTenantGuard(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *TenantGuard {
	g := new(TenantGuard)

	g.tracer = tracer
	g.monitor = monitor
	g.logger = logger

	return g
}
