// Copyright 2026 Comparte Ride
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"fmt"
	"strings"

	"github.com/cride/circle-service/internal/logging"
	"github.com/cride/circle-service/internal/monitoring"
	"github.com/cride/circle-service/internal/tracing"
	"github.com/cride/circle-service/internal/types"
)

type Service struct {
	circles CircleProvisionerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	circles CircleProvisionerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		circles: circles,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HandleRegistration provisions a private personal circle for every newly
// registered identity, with the rider as its founding admin.
func (s *Service) HandleRegistration(ctx context.Context, identityID, email string) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	s.logger.Debugf("Handling registration for identity %s with email %s", identityID, email)

	if identityID == "" || email == "" {
		return fmt.Errorf("identity ID or email is empty")
	}

	circle, err := s.circles.CreateCircle(ctx, identityID, &types.Circle{
		Name:     fmt.Sprintf("%s's circle", email),
		SlugName: personalSlug(identityID),
		About:    "Personal circle",
		IsPublic: false,
	})
	if err != nil {
		return fmt.Errorf("failed to provision personal circle: %w", err)
	}

	s.logger.Infof("Provisioned personal circle %s for identity %s", circle.ID, identityID)
	return nil
}

// personalSlug derives a stable slug from the identity ID so retried hook
// deliveries collide on the unique slug instead of creating duplicates.
func personalSlug(identityID string) string {
	return "personal-" + strings.ReplaceAll(identityID, "-", "")
}

var _ ServiceInterface = (*Service)(nil)
