// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/fleetops/fleet-console/internal/authorization"
	"github.com/fleetops/fleet-console/internal/db"
	"github.com/fleetops/fleet-console/internal/logging"
	"github.com/fleetops/fleet-console/internal/monitoring"
	"github.com/fleetops/fleet-console/internal/storage"
	"github.com/fleetops/fleet-console/internal/tracing"
	"github.com/fleetops/fleet-console/pkg/auth"
	"github.com/fleetops/fleet-console/pkg/drivers"
	"github.com/fleetops/fleet-console/pkg/metrics"
	"github.com/fleetops/fleet-console/pkg/status"
	"github.com/fleetops/fleet-console/pkg/vehicles"
)

func NewRouter(
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	authService auth.ServiceInterface,
	authMiddleware *auth.Middleware,
	guard authorization.TenantGuardInterface,
	corsAllowedOrigins []string,
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
		middlewareCORS(corsAllowedOrigins),
		db.TransactionMiddleware(dbClient, logger),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	auth.NewAPI(authService, authMiddleware, logger).RegisterEndpoints(router)

	vehicleService := vehicles.NewService(s, guard, tracer, monitor, logger)
	vehicles.NewAPI(vehicleService, authMiddleware, logger).RegisterEndpoints(router)

	driverService := drivers.NewService(s, guard, tracer, monitor, logger)
	drivers.NewAPI(driverService, authMiddleware, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
