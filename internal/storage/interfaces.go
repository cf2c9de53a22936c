// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/fleetops/fleet-console/internal/types"
)

type StorageInterface interface {
	CreatePrincipal(ctx context.Context, p *types.Principal) (*types.Principal, error)
	GetPrincipalByID(ctx context.Context, id string) (*types.Principal, error)
	// GetPrincipalByLogin matches a single submitted identifier against
	// both the username and email columns.
	GetPrincipalByLogin(ctx context.Context, login string) (*types.Principal, error)
	// GetPrincipalByUsernameOrEmail returns any principal colliding with
	// either value, for pre-registration duplicate checks.
	GetPrincipalByUsernameOrEmail(ctx context.Context, username, email string) (*types.Principal, error)
	SetPrincipalStatus(ctx context.Context, id string, active bool) error

	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)

	CreateVehicle(ctx context.Context, v *types.Vehicle) (*types.Vehicle, error)
	GetVehicleByID(ctx context.Context, id string) (*types.Vehicle, error)
	ListVehiclesByTenantID(ctx context.Context, tenantID string) ([]*types.Vehicle, error)
	UpdateVehicle(ctx context.Context, v *types.Vehicle, paths []string) error
	DeleteVehicle(ctx context.Context, id string) error

	CreateDriver(ctx context.Context, d *types.Driver) (*types.Driver, error)
	GetDriverByID(ctx context.Context, id string) (*types.Driver, error)
	ListDriversByTenantID(ctx context.Context, tenantID string) ([]*types.Driver, error)
	UpdateDriver(ctx context.Context, d *types.Driver, paths []string) error
	DeleteDriver(ctx context.Context, id string) error
}
