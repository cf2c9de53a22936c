// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package vehicles

import "errors"

// ErrNotFound covers both a missing row and a row owned by another
// tenant. Collapsing the two keeps cross-tenant probing blind.
var ErrNotFound = errors.New("vehicle not found")
