// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package vehicles

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/fleetops/fleet-console/internal/logging"
	"github.com/fleetops/fleet-console/internal/types"
	"github.com/fleetops/fleet-console/pkg/auth"
)

type createVehicleRequest struct {
	RegistrationNumber string     `json:"registration_number" validate:"required,max=32"`
	Model              string     `json:"model" validate:"omitempty,max=64"`
	Capacity           int        `json:"capacity" validate:"omitempty,gte=0,lte=1000"`
	FleetID            string     `json:"fleet_id" validate:"omitempty,uuid"`
	LastInspection     *time.Time `json:"last_inspection"`
}

// updateVehicleRequest uses pointers so absent fields are left untouched.
type updateVehicleRequest struct {
	RegistrationNumber *string    `json:"registration_number" validate:"omitempty,max=32"`
	Model              *string    `json:"model" validate:"omitempty,max=64"`
	Capacity           *int       `json:"capacity" validate:"omitempty,gte=0,lte=1000"`
	FleetID            *string    `json:"fleet_id" validate:"omitempty,uuid"`
	Active             *bool      `json:"active"`
	LastInspection     *time.Time `json:"last_inspection"`
}

type API struct {
	service    ServiceInterface
	middleware *auth.Middleware
	validate   *validator.Validate
	logger     logging.LoggerInterface
}

func NewAPI(service ServiceInterface, middleware *auth.Middleware, logger logging.LoggerInterface) *API {
	return &API{
		service:    service,
		middleware: middleware,
		validate:   validator.New(),
		logger:     logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Route("/vehicles", func(r chi.Router) {
		r.Use(a.middleware.Authenticate())
		r.Post("/", a.create)
		r.Get("/", a.list)
		r.Get("/{id}", a.get)
		r.Patch("/{id}", a.update)
		r.Delete("/{id}", a.delete)
	})
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req createVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	created, err := a.service.CreateVehicle(r.Context(), identity, &types.Vehicle{
		RegistrationNumber: req.RegistrationNumber,
		Model:              req.Model,
		Capacity:           req.Capacity,
		FleetID:            req.FleetID,
		LastInspection:     req.LastInspection,
	})
	if err != nil {
		a.logger.Errorf("failed to create vehicle: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, "failed to create vehicle")
		return
	}

	a.jsonResponse(w, http.StatusCreated, created)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	vehicles, err := a.service.ListVehicles(r.Context(), identity)
	if err != nil {
		a.logger.Errorf("failed to list vehicles: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, "failed to list vehicles")
		return
	}

	if vehicles == nil {
		vehicles = []*types.Vehicle{}
	}
	a.jsonResponse(w, http.StatusOK, vehicles)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	vehicle, err := a.service.GetVehicle(r.Context(), identity, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			a.errorResponse(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}
		a.logger.Errorf("failed to get vehicle: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, "failed to get vehicle")
		return
	}

	a.jsonResponse(w, http.StatusOK, vehicle)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req updateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	vehicle, paths := req.apply()

	updated, err := a.service.UpdateVehicle(r.Context(), identity, chi.URLParam(r, "id"), vehicle, paths)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			a.errorResponse(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}
		a.logger.Errorf("failed to update vehicle: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, "failed to update vehicle")
		return
	}

	a.jsonResponse(w, http.StatusOK, updated)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := a.service.DeleteVehicle(r.Context(), identity, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			a.errorResponse(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}
		a.logger.Errorf("failed to delete vehicle: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, "failed to delete vehicle")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// apply converts the request into a vehicle plus the list of set fields.
func (r *updateVehicleRequest) apply() (*types.Vehicle, []string) {
	var v types.Vehicle
	var paths []string

	if r.RegistrationNumber != nil {
		v.RegistrationNumber = *r.RegistrationNumber
		paths = append(paths, "registration_number")
	}
	if r.Model != nil {
		v.Model = *r.Model
		paths = append(paths, "model")
	}
	if r.Capacity != nil {
		v.Capacity = *r.Capacity
		paths = append(paths, "capacity")
	}
	if r.FleetID != nil {
		v.FleetID = *r.FleetID
		paths = append(paths, "fleet_id")
	}
	if r.Active != nil {
		v.Active = *r.Active
		paths = append(paths, "active")
	}
	if r.LastInspection != nil {
		v.LastInspection = r.LastInspection
		paths = append(paths, "last_inspection")
	}

	return &v, paths
}

func (a *API) jsonResponse(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) errorResponse(w http.ResponseWriter, status int, message string) {
	a.jsonResponse(w, status, map[string]interface{}{
		"status":  status,
		"message": message,
	})
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Sprintf("invalid field %s", verrs[0].Field())
	}
	return "validation failed"
}
