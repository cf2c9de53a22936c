// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/fleetops/fleet-console/cmd"

func main() {
	cmd.Execute()
}
