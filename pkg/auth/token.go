// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fleetops/fleet-console/internal/types"
)

// Claims is the signed, self-contained session credential. Tokens are
// never stored server side; expiry is the only invalidation mechanism.
type Claims struct {
	Username string `json:"username"`
	TenantID string `json:"tenant_id"`
	jwt.RegisteredClaims
}

var _ TokenIssuerInterface = (*TokenIssuer)(nil)

// TokenIssuer mints and verifies HS256 session tokens. The signing key is
// process-wide configuration injected at construction; rotating it
// invalidates all previously issued tokens with no grace window.
type TokenIssuer struct {
	key      []byte
	lifetime time.Duration
}

func (i *TokenIssuer) Issue(p *types.Principal) (string, error) {
	now := time.Now()

	claims := Claims{
		Username: p.Username,
		TenantID: p.TenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks signature integrity and expiry. It is a pure, synchronous
// computation with no suspension.
func (i *TokenIssuer) Verify(raw string) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		return i.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, mapTokenError(err)
	}

	return &claims, nil
}

// Lifetime exposes the configured token validity window for response
// shaping, e.g. the expires_in field.
func (i *TokenIssuer) Lifetime() time.Duration {
	return i.lifetime
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpiredToken
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSignature
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrInvalidSignature
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformedToken
	default:
		return ErrMalformedToken
	}
}

func NewTokenIssuer(key []byte, lifetime time.Duration) *TokenIssuer {
	return &TokenIssuer{
		key:      key,
		lifetime: lifetime,
	}
}
