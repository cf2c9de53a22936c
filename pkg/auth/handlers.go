// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/fleetops/fleet-console/internal/logging"
)

type registerRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=64"`
	Password  string `json:"password" validate:"required,min=8,max=128"`
	Email     string `json:"email" validate:"required,email"`
	TenantID  string `json:"tenant_id" validate:"omitempty,uuid"`
	FirstName string `json:"first_name" validate:"omitempty,max=64"`
	LastName  string `json:"last_name" validate:"omitempty,max=64"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type API struct {
	service    ServiceInterface
	middleware *Middleware
	validate   *validator.Validate
	logger     logging.LoggerInterface
}

func NewAPI(service ServiceInterface, middleware *Middleware, logger logging.LoggerInterface) *API {
	return &API{
		service:    service,
		middleware: middleware,
		validate:   validator.New(),
		logger:     logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/auth/register", a.register)
	mux.Post("/auth/login", a.login)
	mux.With(a.middleware.Authenticate()).Get("/auth/profile", a.profile)
	mux.With(a.middleware.Authenticate()).Post("/auth/deactivate", a.deactivate)
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	principal, err := a.service.Register(r.Context(), RegisterRequest{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		TenantID:  req.TenantID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateCredential), errors.Is(err, ErrUnknownTenant):
			a.errorResponse(w, http.StatusBadRequest, err.Error())
		default:
			a.logger.Errorf("registration failed: %v", err)
			a.errorResponse(w, http.StatusInternalServerError, "registration failed")
		}
		return
	}

	a.jsonResponse(w, http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully",
		"user":    principal,
	})
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	result, err := a.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrAccountDisabled):
			// Same status for both; the body names the kind but never
			// which credential field was wrong.
			a.errorResponse(w, http.StatusUnauthorized, err.Error())
		default:
			a.logger.Errorf("login failed: %v", err)
			a.errorResponse(w, http.StatusInternalServerError, "login failed")
		}
		return
	}

	a.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"access_token": result.AccessToken,
		"expires_in":   fmt.Sprintf("%ds", int(a.service.TokenLifetime().Seconds())),
		"user":         result.Principal,
	})
}

func (a *API) profile(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	a.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"user_id":   identity.ID,
		"username":  identity.Username,
		"tenant_id": identity.TenantID,
	})
}

func (a *API) deactivate(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := a.service.Deactivate(r.Context(), identity.ID); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			a.errorResponse(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		a.logger.Errorf("deactivation failed: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, "deactivation failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
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
