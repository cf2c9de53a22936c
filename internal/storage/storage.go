// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fleetops/fleet-console/internal/db"
	"github.com/fleetops/fleet-console/internal/logging"
	"github.com/fleetops/fleet-console/internal/monitoring"
	"github.com/fleetops/fleet-console/internal/tracing"
	"github.com/fleetops/fleet-console/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var principalColumns = []string{
	"user_id", "tenant_id", "username", "email", "password_hash",
	"first_name", "last_name", "is_active", "created_at", "updated_at",
}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

// CreatePrincipal inserts a new principal row. Username and email
// uniqueness is enforced by the database constraints, so concurrent
// registrations for the same identifier surface as ErrDuplicateKey here
// rather than two successful writes.
func (s *Storage) CreatePrincipal(ctx context.Context, p *types.Principal) (*types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePrincipal")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate principal ID: %w", err)
	}

	var created types.Principal
	err = s.db.Statement(ctx).
		Insert("users").
		Columns("user_id", "tenant_id", "username", "email", "password_hash", "first_name", "last_name").
		Values(id.String(), p.TenantID, p.Username, p.Email, p.PasswordHash, p.FirstName, p.LastName).
		Suffix("RETURNING " + strings.Join(principalColumns, ", ")).
		QueryRowContext(ctx).
		Scan(principalFields(&created)...)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert principal: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetPrincipalByID(ctx context.Context, id string) (*types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPrincipalByID")
	defer span.End()

	return s.getPrincipal(ctx, sq.Eq{"user_id": id})
}

func (s *Storage) GetPrincipalByLogin(ctx context.Context, login string) (*types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPrincipalByLogin")
	defer span.End()

	return s.getPrincipal(ctx, sq.Or{
		sq.Eq{"username": login},
		sq.Eq{"email": login},
	})
}

func (s *Storage) GetPrincipalByUsernameOrEmail(ctx context.Context, username, email string) (*types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPrincipalByUsernameOrEmail")
	defer span.End()

	return s.getPrincipal(ctx, sq.Or{
		sq.Eq{"username": username},
		sq.Eq{"email": email},
	})
}

func (s *Storage) getPrincipal(ctx context.Context, pred interface{}) (*types.Principal, error) {
	var p types.Principal
	err := s.db.Statement(ctx).
		Select(principalColumns...).
		From("users").
		Where(pred).
		Limit(1).
		QueryRowContext(ctx).
		Scan(principalFields(&p)...)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get principal: %w", err)
	}

	return &p, nil
}

// SetPrincipalStatus toggles the login gate. Disabled principals keep
// their rows and credentials but always fail login.
func (s *Storage) SetPrincipalStatus(ctx context.Context, id string, active bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetPrincipalStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("is_active", active).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update principal status: %w", err)
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

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	var t types.Tenant
	err := s.db.Statement(ctx).
		Select("tenant_id", "tenant_name", "domain_name", "contact_email", "plan_type", "is_active", "created_at", "updated_at").
		From("tenants").
		Where(sq.Eq{"tenant_id": id}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Name, &t.DomainName, &t.ContactEmail, &t.PlanType, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return &t, nil
}

func principalFields(p *types.Principal) []interface{} {
	return []interface{}{
		&p.ID, &p.TenantID, &p.Username, &p.Email, &p.PasswordHash,
		&p.FirstName, &p.LastName, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	}
}
