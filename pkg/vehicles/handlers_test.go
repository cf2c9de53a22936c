// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package vehicles

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"

	"github.com/fleetops/fleet-console/internal/logging"
	"github.com/fleetops/fleet-console/internal/tracing"
	"github.com/fleetops/fleet-console/internal/types"
	"github.com/fleetops/fleet-console/pkg/auth"
)

func newAuthenticatedAPI(ctrl *gomock.Controller, service ServiceInterface) *API {
	mockAuthSvc := auth.NewMockServiceInterface(ctrl)
	mockAuthSvc.EXPECT().Resolve(gomock.Any(), "valid.jwt.token").Return(&auth.Claims{
		Username:         "jdoe",
		TenantID:         testTenantID,
		RegisteredClaims: jwt.RegisteredClaims{Subject: testUserID},
	}, nil).AnyTimes()
	mockAuthSvc.EXPECT().Resolve(gomock.Any(), gomock.Not("valid.jwt.token")).
		Return(nil, auth.ErrInvalidSignature).AnyTimes()

	middleware := auth.NewMiddleware(mockAuthSvc, tracing.NewNoopTracer(), nil, logging.NewNoopLogger())
	return NewAPI(service, middleware, logging.NewNoopLogger())
}

func serveJSON(t *testing.T, api *API, method, target, token string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if str, ok := body.(string); ok {
			buf.WriteString(str)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to marshal request: %v", err)
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	mux.ServeHTTP(w, req)

	return w.Result()
}

func TestAPI_CreateVehicle(t *testing.T) {
	tests := []struct {
		name           string
		token          string
		requestBody    interface{}
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:        "success",
			token:       "valid.jwt.token",
			requestBody: map[string]interface{}{"registration_number": "FL-1234", "model": "Sprinter", "capacity": 12},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().CreateVehicle(gomock.Any(), testIdentity, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ auth.Identity, v *types.Vehicle) (*types.Vehicle, error) {
						if v.RegistrationNumber != "FL-1234" || v.Model != "Sprinter" || v.Capacity != 12 {
							return nil, errors.New("request body not mapped")
						}
						created := *v
						created.ID = testVehicleID
						created.TenantID = testTenantID
						return &created, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "no token",
			token:          "",
			requestBody:    map[string]interface{}{"registration_number": "FL-1234"},
			setupMocks:     func(mockSvc *MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid body",
			token:          "valid.jwt.token",
			requestBody:    "not-json",
			setupMocks:     func(mockSvc *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing registration number",
			token:          "valid.jwt.token",
			requestBody:    map[string]interface{}{"model": "Sprinter"},
			setupMocks:     func(mockSvc *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "service error",
			token:       "valid.jwt.token",
			requestBody: map[string]interface{}{"registration_number": "FL-1234"},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().CreateVehicle(gomock.Any(), testIdentity, gomock.Any()).
					Return(nil, errors.New("storage down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			resp := serveJSON(t, newAuthenticatedAPI(ctrl, mockService), http.MethodPost, "/vehicles/", tt.token, tt.requestBody)
			defer resp.Body.Close()

			if resp.StatusCode != tt.expectedStatus {
				body, _ := io.ReadAll(resp.Body)
				t.Errorf("expected status %d, got %d. Body: %s", tt.expectedStatus, resp.StatusCode, string(body))
			}
		})
	}
}

func TestAPI_GetVehicle(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().GetVehicle(gomock.Any(), testIdentity, testVehicleID).
					Return(&types.Vehicle{ID: testVehicleID, TenantID: testTenantID, RegistrationNumber: "FL-1234"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().GetVehicle(gomock.Any(), testIdentity, testVehicleID).Return(nil, ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "service error",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().GetVehicle(gomock.Any(), testIdentity, testVehicleID).
					Return(nil, errors.New("storage down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			resp := serveJSON(t, newAuthenticatedAPI(ctrl, mockService), http.MethodGet, "/vehicles/"+testVehicleID, "valid.jwt.token", nil)
			defer resp.Body.Close()

			if resp.StatusCode != tt.expectedStatus {
				body, _ := io.ReadAll(resp.Body)
				t.Errorf("expected status %d, got %d. Body: %s", tt.expectedStatus, resp.StatusCode, string(body))
			}
		})
	}
}

func TestAPI_ListVehicles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().ListVehicles(gomock.Any(), testIdentity).Return(nil, nil)

	resp := serveJSON(t, newAuthenticatedAPI(ctrl, mockService), http.MethodGet, "/vehicles/", "valid.jwt.token", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	// An empty list serializes as [], not null.
	var result []*types.Vehicle
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if string(bytes.TrimSpace(raw)) == "null" {
		t.Error("expected [] body for an empty list")
	}
}

func TestAPI_UpdateVehicle(t *testing.T) {
	model := "Sprinter"

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:        "success - partial update",
			requestBody: map[string]interface{}{"model": model},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().UpdateVehicle(gomock.Any(), testIdentity, testVehicleID, gomock.Any(), []string{"model"}).
					Return(&types.Vehicle{ID: testVehicleID, TenantID: testTenantID, Model: model}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "not found",
			requestBody: map[string]interface{}{"model": model},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().UpdateVehicle(gomock.Any(), testIdentity, testVehicleID, gomock.Any(), []string{"model"}).
					Return(nil, ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid body",
			requestBody:    "not-json",
			setupMocks:     func(mockSvc *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			resp := serveJSON(t, newAuthenticatedAPI(ctrl, mockService), http.MethodPatch, "/vehicles/"+testVehicleID, "valid.jwt.token", tt.requestBody)
			defer resp.Body.Close()

			if resp.StatusCode != tt.expectedStatus {
				body, _ := io.ReadAll(resp.Body)
				t.Errorf("expected status %d, got %d. Body: %s", tt.expectedStatus, resp.StatusCode, string(body))
			}
		})
	}
}

func TestAPI_DeleteVehicle(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().DeleteVehicle(gomock.Any(), testIdentity, testVehicleID).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "not found",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().DeleteVehicle(gomock.Any(), testIdentity, testVehicleID).Return(ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			resp := serveJSON(t, newAuthenticatedAPI(ctrl, mockService), http.MethodDelete, "/vehicles/"+testVehicleID, "valid.jwt.token", nil)
			defer resp.Body.Close()

			if resp.StatusCode != tt.expectedStatus {
				body, _ := io.ReadAll(resp.Body)
				t.Errorf("expected status %d, got %d. Body: %s", tt.expectedStatus, resp.StatusCode, string(body))
			}
		})
	}
}
