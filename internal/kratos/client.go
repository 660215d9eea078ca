// Copyright 2026 Comparte Ride
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"fmt"
	"net/http"

	ory "github.com/ory/client-go"

	"github.com/cride/circle-service/internal/logging"
	"github.com/cride/circle-service/internal/monitoring"
	"github.com/cride/circle-service/internal/tracing"
)

type ClientInterface interface {
	GetIdentityIDByIdentifier(ctx context.Context, identifier string) (string, error)
}

type Client struct {
	client  *ory.APIClient
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosAdminURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}
	return &Client{
		client:  ory.NewAPIClient(conf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// GetIdentityIDByIdentifier resolves a credentials identifier (username or
// email) to the stable identity ID. Returns an empty string when no
// identity matches.
func (c *Client) GetIdentityIDByIdentifier(ctx context.Context, identifier string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentityIDByIdentifier")
	defer span.End()

	// NOTE: we are setting an empty page token because of https://github.com/ory/sdk/issues/461
	ids, r, err := c.client.IdentityAPI.ListIdentities(ctx).CredentialsIdentifier(identifier).PageToken("").Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return "", nil
		}
		return "", fmt.Errorf("failed to list identities: %w", err)
	}

	if len(ids) == 0 {
		return "", nil
	}

	// Identifiers are unique per identity
	return ids[0].Id, nil
}
