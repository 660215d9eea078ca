// Copyright 2026 Comparte Ride
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/cride/circle-service/cmd"

func main() {
	cmd.Execute()
}
