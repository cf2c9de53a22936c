// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package drivers

import (
	"context"

	"github.com/fleetops/fleet-console/internal/types"
	"github.com/fleetops/fleet-console/pkg/auth"
)

type StorageInterface interface {
	CreateDriver(ctx context.Context, d *types.Driver) (*types.Driver, error)
	GetDriverByID(ctx context.Context, id string) (*types.Driver, error)
	ListDriversByTenantID(ctx context.Context, tenantID string) ([]*types.Driver, error)
	UpdateDriver(ctx context.Context, d *types.Driver, paths []string) error
	DeleteDriver(ctx context.Context, id string) error
}

type GuardInterface interface {
	CheckResourceAccess(ctx context.Context, principalID, principalTenant, resourceTenant string) error
}

type ServiceInterface interface {
	CreateDriver(ctx context.Context, identity auth.Identity, d *types.Driver) (*types.Driver, error)
	GetDriver(ctx context.Context, identity auth.Identity, id string) (*types.Driver, error)
	ListDrivers(ctx context.Context, identity auth.Identity) ([]*types.Driver, error)
	UpdateDriver(ctx context.Context, identity auth.Identity, id string, d *types.Driver, paths []string) (*types.Driver, error)
	DeleteDriver(ctx context.Context, identity auth.Identity, id string) error
}
