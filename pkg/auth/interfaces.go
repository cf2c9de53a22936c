// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"context"
	"time"

	"github.com/fleetops/fleet-console/internal/types"
)

// StorageInterface defines the credential store operations required by the
// auth package. It is a subset of the internal/storage interface; no other
// package reads or writes password hashes.
type StorageInterface interface {
	CreatePrincipal(ctx context.Context, p *types.Principal) (*types.Principal, error)
	GetPrincipalByID(ctx context.Context, id string) (*types.Principal, error)
	GetPrincipalByLogin(ctx context.Context, login string) (*types.Principal, error)
	GetPrincipalByUsernameOrEmail(ctx context.Context, username, email string) (*types.Principal, error)
	SetPrincipalStatus(ctx context.Context, id string, active bool) error

	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
}

type PasswordHasherInterface interface {
	Hash(plaintext string) (string, error)
	Compare(hash, plaintext string) bool
}

type TokenIssuerInterface interface {
	Issue(p *types.Principal) (string, error)
	Verify(raw string) (*Claims, error)
	Lifetime() time.Duration
}

// ServiceInterface defines the auth orchestration operations.
type ServiceInterface interface {
	Register(ctx context.Context, req RegisterRequest) (*types.Principal, error)
	Login(ctx context.Context, login, password string) (*LoginResult, error)
	Resolve(ctx context.Context, rawToken string) (*Claims, error)
	Deactivate(ctx context.Context, principalID string) error
	TokenLifetime() time.Duration
}
