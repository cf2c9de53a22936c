// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package drivers

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

// Service applies the same tenant scoping as the vehicles service: single
// row operations fetch then pass through the guard, lists filter in SQL.
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

func (s *Service) CreateDriver(ctx context.Context, identity auth.Identity, d *types.Driver) (*types.Driver, error) {
	ctx, span := s.tracer.Start(ctx, "drivers.Service.CreateDriver")
	defer span.End()

	d.TenantID = identity.TenantID

	created, err := s.storage.CreateDriver(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}

	s.logger.Infof("created driver %s for tenant %s", created.ID, created.TenantID)

	return created, nil
}

func (s *Service) GetDriver(ctx context.Context, identity auth.Identity, id string) (*types.Driver, error) {
	ctx, span := s.tracer.Start(ctx, "drivers.Service.GetDriver")
	defer span.End()

	return s.authorizedDriver(ctx, identity, id)
}

func (s *Service) ListDrivers(ctx context.Context, identity auth.Identity) ([]*types.Driver, error) {
	ctx, span := s.tracer.Start(ctx, "drivers.Service.ListDrivers")
	defer span.End()

	ds, err := s.storage.ListDriversByTenantID(ctx, identity.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}

	return ds, nil
}

func (s *Service) UpdateDriver(ctx context.Context, identity auth.Identity, id string, d *types.Driver, paths []string) (*types.Driver, error) {
	ctx, span := s.tracer.Start(ctx, "drivers.Service.UpdateDriver")
	defer span.End()

	if _, err := s.authorizedDriver(ctx, identity, id); err != nil {
		return nil, err
	}

	d.ID = id
	if err := s.storage.UpdateDriver(ctx, d, paths); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update driver: %w", err)
	}

	updated, err := s.storage.GetDriverByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated driver: %w", err)
	}

	return updated, nil
}

func (s *Service) DeleteDriver(ctx context.Context, identity auth.Identity, id string) error {
	ctx, span := s.tracer.Start(ctx, "drivers.Service.DeleteDriver")
	defer span.End()

	if _, err := s.authorizedDriver(ctx, identity, id); err != nil {
		return err
	}

	if err := s.storage.DeleteDriver(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete driver: %w", err)
	}

	s.logger.Infof("deleted driver %s for tenant %s", id, identity.TenantID)

	return nil
}

func (s *Service) authorizedDriver(ctx context.Context, identity auth.Identity, id string) (*types.Driver, error) {
	d, err := s.storage.GetDriverByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch driver: %w", err)
	}

	if err := s.guard.CheckResourceAccess(ctx, identity.ID, identity.TenantID, d.TenantID); err != nil {
		if errors.Is(err, authorization.ErrTenantMismatch) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to authorize access: %w", err)
	}

	return d, nil
}
