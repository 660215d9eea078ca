// Copyright 2026 Comparte Ride
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/cride/circle-service/internal/logging"
	"github.com/cride/circle-service/internal/monitoring"
	"github.com/cride/circle-service/internal/openfga"
	"github.com/cride/circle-service/internal/tracing"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

type Authorizer struct {
	client AuthzClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) Check(ctx context.Context, user, relation, object string, contextualTuples ...openfga.Tuple) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Check")
	defer span.End()

	return a.client.Check(ctx, user, relation, object, contextualTuples...)
}

func (a *Authorizer) AssignCircleAdmin(ctx context.Context, circleID, userID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignCircleAdmin")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userID), ADMIN_RELATION, CircleTuple(circleID))
}

func (a *Authorizer) AssignCircleMember(ctx context.Context, circleID, userID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignCircleMember")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userID), MEMBER_RELATION, CircleTuple(circleID))
}

func (a *Authorizer) RemoveCircleAdmin(ctx context.Context, circleID, userID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveCircleAdmin")
	defer span.End()

	return a.client.DeleteTuple(ctx, UserTuple(userID), ADMIN_RELATION, CircleTuple(circleID))
}

func (a *Authorizer) RemoveCircleMember(ctx context.Context, circleID, userID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveCircleMember")
	defer span.End()

	return a.client.DeleteTuple(ctx, UserTuple(userID), MEMBER_RELATION, CircleTuple(circleID))
}

func (a *Authorizer) CheckCircleMember(ctx context.Context, circleID, userID string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckCircleMember")
	defer span.End()

	return a.Check(ctx, UserTuple(userID), MEMBER_RELATION, CircleTuple(circleID))
}

func (a *Authorizer) CheckCircleAdmin(ctx context.Context, circleID, userID string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckCircleAdmin")
	defer span.End()

	return a.Check(ctx, UserTuple(userID), ADMIN_RELATION, CircleTuple(circleID))
}

func NewAuthorizer(client AuthzClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.client = client
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
