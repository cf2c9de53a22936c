// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package vehicles

import (
	"context"

	"github.com/fleetops/fleet-console/internal/types"
	"github.com/fleetops/fleet-console/pkg/auth"
)

type StorageInterface interface {
	CreateVehicle(ctx context.Context, v *types.Vehicle) (*types.Vehicle, error)
	GetVehicleByID(ctx context.Context, id string) (*types.Vehicle, error)
	ListVehiclesByTenantID(ctx context.Context, tenantID string) ([]*types.Vehicle, error)
	UpdateVehicle(ctx context.Context, v *types.Vehicle, paths []string) error
	DeleteVehicle(ctx context.Context, id string) error
}

type GuardInterface interface {
	CheckResourceAccess(ctx context.Context, principalID, principalTenant, resourceTenant string) error
}

type ServiceInterface interface {
	CreateVehicle(ctx context.Context, identity auth.Identity, v *types.Vehicle) (*types.Vehicle, error)
	GetVehicle(ctx context.Context, identity auth.Identity, id string) (*types.Vehicle, error)
	ListVehicles(ctx context.Context, identity auth.Identity) ([]*types.Vehicle, error)
	UpdateVehicle(ctx context.Context, identity auth.Identity, id string, v *types.Vehicle, paths []string) (*types.Vehicle, error)
	DeleteVehicle(ctx context.Context, identity auth.Identity, id string) error
}
