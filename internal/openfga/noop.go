// Copyright 2026 Comparte Ride
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"

	"github.com/cride/circle-service/internal/logging"
	"github.com/cride/circle-service/internal/monitoring"
	"github.com/cride/circle-service/internal/tracing"
)

var _ OpenFGAClientInterface = (*NoopClient)(nil)

// NoopClient allows every check and swallows every write. Used when
// authorization enforcement is disabled.
type NoopClient struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewNoopClient(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *NoopClient {
	return &NoopClient{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (c *NoopClient) Check(ctx context.Context, user, relation, object string, contextualTuples ...Tuple) (bool, error) {
	return true, nil
}

func (c *NoopClient) WriteTuple(ctx context.Context, user, relation, object string) error {
	return nil
}

func (c *NoopClient) DeleteTuple(ctx context.Context, user, relation, object string) error {
	return nil
}
