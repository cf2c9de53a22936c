// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package drivers

import "errors"

// ErrNotFound covers both a missing row and a row owned by another tenant.
var ErrNotFound = errors.New("driver not found")
