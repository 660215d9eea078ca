// Copyright 2026 Comparte Ride
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/cride/circle-service/internal/types"
)

// CircleProvisionerInterface is the slice of the circle service the
// registration hook needs.
type CircleProvisionerInterface interface {
	CreateCircle(ctx context.Context, ownerID string, c *types.Circle) (*types.Circle, error)
}

type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identityID, email string) error
}
