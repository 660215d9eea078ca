// Copyright 2026 Comparte Ride
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"
	"fmt"

	fgaClient "github.com/openfga/go-sdk/client"
	"github.com/openfga/go-sdk/credentials"

	"github.com/cride/circle-service/internal/logging"
	"github.com/cride/circle-service/internal/monitoring"
	"github.com/cride/circle-service/internal/tracing"
)

// Tuple is a user-relation-object triple in the authorization store.
type Tuple struct {
	User     string
	Relation string
	Object   string
}

func NewTuple(user, relation, object string) Tuple {
	return Tuple{User: user, Relation: relation, Object: object}
}

type OpenFGAClientInterface interface {
	Check(ctx context.Context, user, relation, object string, contextualTuples ...Tuple) (bool, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuple(ctx context.Context, user, relation, object string) error
}

var _ OpenFGAClientInterface = (*Client)(nil)

type Client struct {
	c *fgaClient.OpenFgaClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(config *Config) *Client {
	cfg := &fgaClient.ClientConfiguration{
		ApiUrl:               fmt.Sprintf("%s://%s", config.ApiScheme, config.ApiHost),
		StoreId:              config.StoreID,
		AuthorizationModelId: config.AuthModelID,
	}

	if config.ApiToken != "" {
		cfg.Credentials = &credentials.Credentials{
			Method: credentials.CredentialsMethodApiToken,
			Config: &credentials.Config{ApiToken: config.ApiToken},
		}
	}

	c, err := fgaClient.NewSdkClient(cfg)
	if err != nil {
		config.Logger.Fatalf("invalid openfga client configuration: %v", err)
	}

	return &Client{
		c:       c,
		tracer:  config.Tracer,
		monitor: config.Monitor,
		logger:  config.Logger,
	}
}

func (c *Client) Check(ctx context.Context, user, relation, object string, contextualTuples ...Tuple) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.Check")
	defer span.End()

	body := fgaClient.ClientCheckRequest{
		User:     user,
		Relation: relation,
		Object:   object,
	}

	for _, t := range contextualTuples {
		body.ContextualTuples = append(body.ContextualTuples, fgaClient.ClientContextualTupleKey{
			User:     t.User,
			Relation: t.Relation,
			Object:   t.Object,
		})
	}

	resp, err := c.c.Check(ctx).Body(body).Execute()
	if err != nil {
		return false, fmt.Errorf("failed to issue openfga check: %w", err)
	}

	return resp.GetAllowed(), nil
}

func (c *Client) WriteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteTuple")
	defer span.End()

	body := fgaClient.ClientWriteRequest{
		Writes: []fgaClient.ClientTupleKey{
			{User: user, Relation: relation, Object: object},
		},
	}

	if _, err := c.c.Write(ctx).Body(body).Execute(); err != nil {
		return fmt.Errorf("failed to write openfga tuple: %w", err)
	}

	return nil
}

func (c *Client) DeleteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuple")
	defer span.End()

	body := fgaClient.ClientWriteRequest{
		Deletes: []fgaClient.ClientTupleKeyWithoutCondition{
			{User: user, Relation: relation, Object: object},
		},
	}

	if _, err := c.c.Write(ctx).Body(body).Execute(); err != nil {
		return fmt.Errorf("failed to delete openfga tuple: %w", err)
	}

	return nil
}
