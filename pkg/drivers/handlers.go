// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package drivers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/fleetops/fleet-console/internal/logging"
	"github.com/fleetops/fleet-console/internal/types"
	"github.com/fleetops/fleet-console/pkg/auth"
)

type createDriverRequest struct {
	FirstName     string `json:"first_name" validate:"required,max=64"`
	LastName      string `json:"last_name" validate:"required,max=64"`
	LicenseNumber string `json:"license_number" validate:"omitempty,max=32"`
	Phone         string `json:"phone" validate:"omitempty,max=32"`
}

type updateDriverRequest struct {
	FirstName     *string `json:"first_name" validate:"omitempty,max=64"`
	LastName      *string `json:"last_name" validate:"omitempty,max=64"`
	LicenseNumber *string `json:"license_number" validate:"omitempty,max=32"`
	Phone         *string `json:"phone" validate:"omitempty,max=32"`
	Active        *bool   `json:"active"`
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
	mux.Route("/drivers", func(r chi.Router) {
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

	var req createDriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	created, err := a.service.CreateDriver(r.Context(), identity, &types.Driver{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		LicenseNumber: req.LicenseNumber,
		Phone:         req.Phone,
	})
	if err != nil {
		a.logger.Errorf("failed to create driver: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, "failed to create driver")
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

	drivers, err := a.service.ListDrivers(r.Context(), identity)
	if err != nil {
		a.logger.Errorf("failed to list drivers: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, "failed to list drivers")
		return
	}

	if drivers == nil {
		drivers = []*types.Driver{}
	}
	a.jsonResponse(w, http.StatusOK, drivers)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	driver, err := a.service.GetDriver(r.Context(), identity, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			a.errorResponse(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}
		a.logger.Errorf("failed to get driver: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, "failed to get driver")
		return
	}

	a.jsonResponse(w, http.StatusOK, driver)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req updateDriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	driver, paths := req.apply()

	updated, err := a.service.UpdateDriver(r.Context(), identity, chi.URLParam(r, "id"), driver, paths)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			a.errorResponse(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}
		a.logger.Errorf("failed to update driver: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, "failed to update driver")
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

	if err := a.service.DeleteDriver(r.Context(), identity, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			a.errorResponse(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}
		a.logger.Errorf("failed to delete driver: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, "failed to delete driver")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (r *updateDriverRequest) apply() (*types.Driver, []string) {
	var d types.Driver
	var paths []string

	if r.FirstName != nil {
		d.FirstName = *r.FirstName
		paths = append(paths, "first_name")
	}
	if r.LastName != nil {
		d.LastName = *r.LastName
		paths = append(paths, "last_name")
	}
	if r.LicenseNumber != nil {
		d.LicenseNumber = *r.LicenseNumber
		paths = append(paths, "license_number")
	}
	if r.Phone != nil {
		d.Phone = *r.Phone
		paths = append(paths, "phone")
	}
	if r.Active != nil {
		d.Active = *r.Active
		paths = append(paths, "active")
	}

	return &d, paths
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
