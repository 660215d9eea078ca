// Copyright 2026 Comparte Ride
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/cride/circle-service/internal/identity"
	"github.com/cride/circle-service/internal/logging"
	"github.com/cride/circle-service/internal/monitoring"
	"github.com/cride/circle-service/internal/tracing"
	"github.com/cride/circle-service/pkg/authentication"
	"github.com/cride/circle-service/pkg/circle"
	"github.com/cride/circle-service/pkg/metrics"
	"github.com/cride/circle-service/pkg/status"
	"github.com/cride/circle-service/pkg/webhooks"
)

// NewRouter assembles the HTTP surface. The circle API sits behind the
// identity middleware and, when a verifier is configured, OAuth2 bearer
// authentication. Metrics and status stay open for the platform probes.
func NewRouter(
	circleAPI *circle.API,
	webhooksAPI *webhooks.API,
	oauth2Middleware *authentication.Middleware,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	webhooksAPI.RegisterEndpoints(router)

	router.Group(func(r chi.Router) {
		r.Use(identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware)
		if oauth2Middleware != nil {
			r.Use(oauth2Middleware.Authenticate())
		}
		circleAPI.RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
