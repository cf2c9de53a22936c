// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fleetops/fleet-console/internal/logging"
	"github.com/fleetops/fleet-console/internal/monitoring"
	"github.com/fleetops/fleet-console/internal/storage"
	"github.com/fleetops/fleet-console/internal/tracing"
	"github.com/fleetops/fleet-console/internal/types"
)

type RegisterRequest struct {
	Username  string
	Password  string
	Email     string
	TenantID  string
	FirstName string
	LastName  string
}

type LoginResult struct {
	AccessToken string
	Principal   *types.Principal
}

var _ ServiceInterface = (*Service)(nil)

// Service is a stateless orchestrator over the credential store, password
// hasher and token issuer. It holds no persistent state of its own.
type Service struct {
	storage StorageInterface
	hasher  PasswordHasherInterface
	issuer  TokenIssuerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	hasher PasswordHasherInterface,
	issuer TokenIssuerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		hasher:  hasher,
		issuer:  issuer,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Register creates a new active principal. The duplicate check runs before
// the password is ever hashed; the unique constraints on the users table
// close the window where two concurrent registrations pass that check.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.Register")
	defer span.End()

	if req.TenantID == "" {
		return nil, ErrUnknownTenant
	}

	tenant, err := s.storage.GetTenantByID(ctx, req.TenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUnknownTenant
		}
		return nil, fmt.Errorf("failed to look up tenant: %w", err)
	}
	if !tenant.IsActive {
		return nil, ErrUnknownTenant
	}

	_, err = s.storage.GetPrincipalByUsernameOrEmail(ctx, req.Username, req.Email)
	if err == nil {
		return nil, ErrDuplicateCredential
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing credentials: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.storage.CreatePrincipal(ctx, &types.Principal{
		TenantID:     req.TenantID,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			// A concurrent registration won the race.
			return nil, ErrDuplicateCredential
		}
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return nil, ErrUnknownTenant
		}
		return nil, fmt.Errorf("failed to create principal: %w", err)
	}

	s.logger.Infof("registered principal %s for tenant %s", created.ID, created.TenantID)

	// The hash never crosses the service boundary outward.
	created.PasswordHash = ""
	return created, nil
}

// Login verifies credentials and mints a session token. Lookup misses and
// password mismatches are indistinguishable to the caller; the security
// log records which one happened.
func (s *Service) Login(ctx context.Context, login, password string) (*LoginResult, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.Login")
	defer span.End()

	p, err := s.storage.GetPrincipalByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().AuthnFailure(login, "unknown principal")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up principal: %w", err)
	}

	if !s.hasher.Compare(p.PasswordHash, password) {
		s.logger.Security().AuthnFailure(p.ID, "password mismatch")
		return nil, ErrInvalidCredentials
	}

	if !p.IsActive {
		s.logger.Security().AuthnFailure(p.ID, "account disabled")
		return nil, ErrAccountDisabled
	}

	token, err := s.issuer.Issue(p)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Security().AuthnSuccess(p.ID)

	p.PasswordHash = ""
	return &LoginResult{
		AccessToken: token,
		Principal:   p,
	}, nil
}

// Deactivate disables the principal's login gate. The row and credentials
// stay; outstanding tokens remain valid until expiry since tokens are
// stateless.
func (s *Service) Deactivate(ctx context.Context, principalID string) error {
	ctx, span := s.tracer.Start(ctx, "auth.Service.Deactivate")
	defer span.End()

	p, err := s.storage.GetPrincipalByID(ctx, principalID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("failed to look up principal: %w", err)
	}

	if err := s.storage.SetPrincipalStatus(ctx, p.ID, false); err != nil {
		return fmt.Errorf("failed to deactivate principal: %w", err)
	}

	s.logger.Infof("deactivated principal %s", p.ID)

	return nil
}

// Resolve validates a raw token and returns its claims. Used by the auth
// middleware and any endpoint requiring an authenticated caller.
func (s *Service) Resolve(ctx context.Context, rawToken string) (*Claims, error) {
	_, span := s.tracer.Start(ctx, "auth.Service.Resolve")
	defer span.End()

	return s.issuer.Verify(rawToken)
}

func (s *Service) TokenLifetime() time.Duration {
	return s.issuer.Lifetime()
}
