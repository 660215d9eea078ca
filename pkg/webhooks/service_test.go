// Copyright 2026 Comparte Ride
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/cride/circle-service/internal/logging"
	"github.com/cride/circle-service/internal/monitoring"
	"github.com/cride/circle-service/internal/tracing"
	"github.com/cride/circle-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_webhooks.go -source=./interfaces.go

func TestService_HandleRegistration(t *testing.T) {
	identityID := "0191a0b2-5a8f-7cc0-b3f1-2d2b4f1f6a01"
	email := "user@example.com"

	testCases := []struct {
		name        string
		identityID  string
		email       string
		setupMocks  func(*MockCircleProvisionerInterface)
		expectedErr bool
	}{
		{
			name:       "success",
			identityID: identityID,
			email:      email,
			setupMocks: func(circles *MockCircleProvisionerInterface) {
				circles.EXPECT().CreateCircle(gomock.Any(), identityID, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, c *types.Circle) (*types.Circle, error) {
						if c.Name != "user@example.com's circle" {
							return nil, errors.New("wrong circle name")
						}
						if c.IsPublic {
							return nil, errors.New("personal circle should be private")
						}
						if c.SlugName != personalSlug(identityID) {
							return nil, errors.New("wrong slug")
						}
						created := *c
						created.ID = "circle-123"
						return &created, nil
					})
			},
			expectedErr: false,
		},
		{
			name:        "empty email",
			identityID:  identityID,
			email:       "",
			setupMocks:  func(*MockCircleProvisionerInterface) {},
			expectedErr: true,
		},
		{
			name:        "empty identity",
			identityID:  "",
			email:       email,
			setupMocks:  func(*MockCircleProvisionerInterface) {},
			expectedErr: true,
		},
		{
			name:       "provisioning fails",
			identityID: identityID,
			email:      email,
			setupMocks: func(circles *MockCircleProvisionerInterface) {
				circles.EXPECT().CreateCircle(gomock.Any(), identityID, gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			circles := NewMockCircleProvisionerInterface(ctrl)
			tc.setupMocks(circles)

			svc := NewService(circles, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

			err := svc.HandleRegistration(context.Background(), tc.identityID, tc.email)
			if tc.expectedErr && err == nil {
				t.Fatal("expected an error, got nil")
			}
			if !tc.expectedErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestPersonalSlugIsStable(t *testing.T) {
	id := "0191a0b2-5a8f-7cc0-b3f1-2d2b4f1f6a01"
	if personalSlug(id) != personalSlug(id) {
		t.Fatal("slug derivation must be deterministic")
	}
}
