// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"errors"
)

// Typed per-request outcomes. The HTTP layer maps these to status codes;
// none of them is fatal to the process.
var (
	// ErrDuplicateCredential is returned when a registration collides
	// with an existing username or email.
	ErrDuplicateCredential = errors.New("username or email already registered")

	// ErrInvalidCredentials deliberately covers both "no such user" and
	// "wrong password" so callers cannot enumerate accounts. The security
	// log keeps the internal distinction.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountDisabled is returned for principals with is_active false.
	ErrAccountDisabled = errors.New("account is disabled")

	// ErrUnknownTenant is returned when a registration names a tenant
	// that does not exist.
	ErrUnknownTenant = errors.New("tenant does not exist")

	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidSignature = errors.New("token signature is invalid")
	ErrMalformedToken   = errors.New("token is malformed")
)
