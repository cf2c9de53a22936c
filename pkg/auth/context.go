// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import "context"

// Identity is the authenticated caller extracted from a verified token.
type Identity struct {
	ID       string
	Username string
	TenantID string
}

// Define a private custom type to avoid collisions
type contextKey struct{}

var identityContextKey = contextKey{}

// WithIdentity returns a new context with the given identity derived from the parent context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

// IdentityFromContext retrieves the authenticated identity from the context.
// Returns a zero identity and false if none is present.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityContextKey).(Identity)
	return id, ok
}
