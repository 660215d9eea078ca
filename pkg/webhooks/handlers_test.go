// Copyright 2026 Comparte Ride
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
)

func TestAPI_Registration(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: `{"id":"identity-123","traits":{"email":"user@example.com"}}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().HandleRegistration(gomock.Any(), "identity-123", "user@example.com").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid request body",
			requestBody:    "not-json",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "service error",
			requestBody: `{"id":"identity-123","traits":{"email":"user@example.com"}}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().HandleRegistration(gomock.Any(), "identity-123", "user@example.com").Return(errors.New("provisioning failed"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			tc.setupMocks(svc)

			mux := chi.NewMux()
			NewAPI(svc).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/registration", bytes.NewBufferString(tc.requestBody))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, rec.Code, strings.TrimSpace(rec.Body.String()))
			}
		})
	}
}
