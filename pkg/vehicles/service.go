// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package vehicles

import (
	"context"
	"errors"
	"fmt"

	"github.com/fleetops/fleet-console/internal/authorization"
	"github.com/fleetops/fleet-console/internal/logging"
	"github.com/fleetops/fleet-console/internal/monitoring"
	"github.com/fleetops/fleet-console/internal/storage"
	"github.com/fleetops/fleet-console/internal/tracing"
	"github.com/fleetops/fleet-console/internal/types"
	"github.com/fleetops/fleet-console/pkg/auth"
)

var _ ServiceInterface = (*Service)(nil)

// Service applies tenant scoping to every vehicle operation. Reads and
// writes on a single vehicle fetch the row first and pass it through the
// guard; list queries filter by the caller's tenant in SQL instead.
type Service struct {
	storage StorageInterface
	guard   GuardInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	guard GuardInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		guard:   guard,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) CreateVehicle(ctx context.Context, identity auth.Identity, v *types.Vehicle) (*types.Vehicle, error) {
	ctx, span := s.tracer.Start(ctx, "vehicles.Service.CreateVehicle")
	defer span.End()

	// Ownership comes from the token, never from the request body.
	v.TenantID = identity.TenantID

	created, err := s.storage.CreateVehicle(ctx, v)
	if err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	s.logger.Infof("created vehicle %s for tenant %s", created.ID, created.TenantID)

	return created, nil
}

func (s *Service) GetVehicle(ctx context.Context, identity auth.Identity, id string) (*types.Vehicle, error) {
	ctx, span := s.tracer.Start(ctx, "vehicles.Service.GetVehicle")
	defer span.End()

	return s.authorizedVehicle(ctx, identity, id)
}

func (s *Service) ListVehicles(ctx context.Context, identity auth.Identity) ([]*types.Vehicle, error) {
	ctx, span := s.tracer.Start(ctx, "vehicles.Service.ListVehicles")
	defer span.End()

	vs, err := s.storage.ListVehiclesByTenantID(ctx, identity.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	return vs, nil
}

func (s *Service) UpdateVehicle(ctx context.Context, identity auth.Identity, id string, v *types.Vehicle, paths []string) (*types.Vehicle, error) {
	ctx, span := s.tracer.Start(ctx, "vehicles.Service.UpdateVehicle")
	defer span.End()

	if _, err := s.authorizedVehicle(ctx, identity, id); err != nil {
		return nil, err
	}

	v.ID = id
	if err := s.storage.UpdateVehicle(ctx, v, paths); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	updated, err := s.storage.GetVehicleByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated vehicle: %w", err)
	}

	return updated, nil
}

func (s *Service) DeleteVehicle(ctx context.Context, identity auth.Identity, id string) error {
	ctx, span := s.tracer.Start(ctx, "vehicles.Service.DeleteVehicle")
	defer span.End()

	if _, err := s.authorizedVehicle(ctx, identity, id); err != nil {
		return err
	}

	if err := s.storage.DeleteVehicle(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	s.logger.Infof("deleted vehicle %s for tenant %s", id, identity.TenantID)

	return nil
}

// authorizedVehicle fetches a vehicle and verifies the caller's tenant owns
// it. Missing rows and rows of other tenants yield the same ErrNotFound.
func (s *Service) authorizedVehicle(ctx context.Context, identity auth.Identity, id string) (*types.Vehicle, error) {
	v, err := s.storage.GetVehicleByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch vehicle: %w", err)
	}

	if err := s.guard.CheckResourceAccess(ctx, identity.ID, identity.TenantID, v.TenantID); err != nil {
		if errors.Is(err, authorization.ErrTenantMismatch) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to authorize access: %w", err)
	}

	return v, nil
}
