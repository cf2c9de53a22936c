// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fleetops/fleet-console/internal/types"
)

var vehicleColumns = []string{
	"vehicle_id", "tenant_id", "fleet_id", "registration_number",
	"model", "capacity", "active", "last_inspection", "created_at",
}

var driverColumns = []string{
	"driver_id", "tenant_id", "first_name", "last_name",
	"license_number", "phone", "active", "created_at",
}

func (s *Storage) CreateVehicle(ctx context.Context, v *types.Vehicle) (*types.Vehicle, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateVehicle")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate vehicle ID: %w", err)
	}

	var created types.Vehicle
	err = s.db.Statement(ctx).
		Insert("vehicles").
		Columns("vehicle_id", "tenant_id", "fleet_id", "registration_number", "model", "capacity", "last_inspection").
		Values(id.String(), v.TenantID, nullable(v.FleetID), v.RegistrationNumber, v.Model, v.Capacity, v.LastInspection).
		Suffix("RETURNING vehicle_id, tenant_id, COALESCE(fleet_id::text, ''), registration_number, model, capacity, active, last_inspection, created_at").
		QueryRowContext(ctx).
		Scan(vehicleFields(&created)...)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert vehicle: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetVehicleByID(ctx context.Context, id string) (*types.Vehicle, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetVehicleByID")
	defer span.End()

	var v types.Vehicle
	err := s.db.Statement(ctx).
		Select(vehicleSelectColumns()...).
		From("vehicles").
		Where(sq.Eq{"vehicle_id": id}).
		QueryRowContext(ctx).
		Scan(vehicleFields(&v)...)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return &v, nil
}

func (s *Storage) ListVehiclesByTenantID(ctx context.Context, tenantID string) ([]*types.Vehicle, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListVehiclesByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(vehicleSelectColumns()...).
		From("vehicles").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []*types.Vehicle
	for rows.Next() {
		var v types.Vehicle
		if err := rows.Scan(vehicleFields(&v)...); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return vehicles, nil
}

// UpdateVehicle updates only the fields named in paths, PATCH semantics.
func (s *Storage) UpdateVehicle(ctx context.Context, v *types.Vehicle, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateVehicle")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "fleet_id":
			updateMap["fleet_id"] = nullable(v.FleetID)
		case "registration_number":
			updateMap["registration_number"] = v.RegistrationNumber
		case "model":
			updateMap["model"] = v.Model
		case "capacity":
			updateMap["capacity"] = v.Capacity
		case "active":
			updateMap["active"] = v.Active
		case "last_inspection":
			updateMap["last_inspection"] = v.LastInspection
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update("vehicles").
		SetMap(updateMap).
		Where(sq.Eq{"vehicle_id": v.ID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteVehicle(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteVehicle")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("vehicles").
		Where(sq.Eq{"vehicle_id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) CreateDriver(ctx context.Context, d *types.Driver) (*types.Driver, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateDriver")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate driver ID: %w", err)
	}

	var created types.Driver
	err = s.db.Statement(ctx).
		Insert("drivers").
		Columns("driver_id", "tenant_id", "first_name", "last_name", "license_number", "phone").
		Values(id.String(), d.TenantID, d.FirstName, d.LastName, d.LicenseNumber, d.Phone).
		Suffix("RETURNING driver_id, tenant_id, first_name, last_name, license_number, phone, active, created_at").
		QueryRowContext(ctx).
		Scan(driverFields(&created)...)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert driver: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetDriverByID(ctx context.Context, id string) (*types.Driver, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetDriverByID")
	defer span.End()

	var d types.Driver
	err := s.db.Statement(ctx).
		Select(driverColumns...).
		From("drivers").
		Where(sq.Eq{"driver_id": id}).
		QueryRowContext(ctx).
		Scan(driverFields(&d)...)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	return &d, nil
}

func (s *Storage) ListDriversByTenantID(ctx context.Context, tenantID string) ([]*types.Driver, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListDriversByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(driverColumns...).
		From("drivers").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	defer rows.Close()

	var drivers []*types.Driver
	for rows.Next() {
		var d types.Driver
		if err := rows.Scan(driverFields(&d)...); err != nil {
			return nil, fmt.Errorf("failed to scan driver: %w", err)
		}
		drivers = append(drivers, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return drivers, nil
}

func (s *Storage) UpdateDriver(ctx context.Context, d *types.Driver, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateDriver")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "first_name":
			updateMap["first_name"] = d.FirstName
		case "last_name":
			updateMap["last_name"] = d.LastName
		case "license_number":
			updateMap["license_number"] = d.LicenseNumber
		case "phone":
			updateMap["phone"] = d.Phone
		case "active":
			updateMap["active"] = d.Active
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update("drivers").
		SetMap(updateMap).
		Where(sq.Eq{"driver_id": d.ID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update driver: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteDriver(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteDriver")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("drivers").
		Where(sq.Eq{"driver_id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete driver: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func vehicleSelectColumns() []string {
	cols := make([]string, len(vehicleColumns))
	copy(cols, vehicleColumns)
	cols[2] = "COALESCE(fleet_id::text, '')"
	return cols
}

func vehicleFields(v *types.Vehicle) []interface{} {
	return []interface{}{
		&v.ID, &v.TenantID, &v.FleetID, &v.RegistrationNumber,
		&v.Model, &v.Capacity, &v.Active, &v.LastInspection, &v.CreatedAt,
	}
}

func driverFields(d *types.Driver) []interface{} {
	return []interface{}{
		&d.ID, &d.TenantID, &d.FirstName, &d.LastName,
		&d.LicenseNumber, &d.Phone, &d.Active, &d.CreatedAt,
	}
}

// nullable maps an empty string to NULL for optional uuid columns.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
