// Copyright 2026 Comparte Ride
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/cride/circle-service/internal/openfga"
)

type AuthorizerInterface interface {
	Check(ctx context.Context, user, relation, object string, contextualTuples ...openfga.Tuple) (bool, error)

	AssignCircleAdmin(ctx context.Context, circleID, userID string) error
	AssignCircleMember(ctx context.Context, circleID, userID string) error
	RemoveCircleAdmin(ctx context.Context, circleID, userID string) error
	RemoveCircleMember(ctx context.Context, circleID, userID string) error

	// CheckCircleMember reports whether the user holds the member relation
	// on the circle; CheckCircleAdmin does the same for the admin relation.
	CheckCircleMember(ctx context.Context, circleID, userID string) (bool, error)
	CheckCircleAdmin(ctx context.Context, circleID, userID string) (bool, error)
}

type AuthzClientInterface interface {
	Check(ctx context.Context, user, relation, object string, contextualTuples ...openfga.Tuple) (bool, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuple(ctx context.Context, user, relation, object string) error
}
