// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package drivers

import (
	"bytes"
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

func TestAPI_DriverCRUD(t *testing.T) {
	driver := &types.Driver{ID: testDriverID, TenantID: testTenantID, FirstName: "Max", LastName: "Miller"}

	tests := []struct {
		name           string
		method         string
		target         string
		token          string
		requestBody    interface{}
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:        "create success",
			method:      http.MethodPost,
			target:      "/drivers/",
			token:       "valid.jwt.token",
			requestBody: map[string]interface{}{"first_name": "Max", "last_name": "Miller"},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().CreateDriver(gomock.Any(), testIdentity, gomock.Any()).Return(driver, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "create without token",
			method:         http.MethodPost,
			target:         "/drivers/",
			token:          "",
			requestBody:    map[string]interface{}{"first_name": "Max", "last_name": "Miller"},
			setupMocks:     func(mockSvc *MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "create with forged token",
			method:         http.MethodPost,
			target:         "/drivers/",
			token:          "forged.jwt.token",
			requestBody:    map[string]interface{}{"first_name": "Max", "last_name": "Miller"},
			setupMocks:     func(mockSvc *MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "create missing last name",
			method:         http.MethodPost,
			target:         "/drivers/",
			token:          "valid.jwt.token",
			requestBody:    map[string]interface{}{"first_name": "Max"},
			setupMocks:     func(mockSvc *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "get success",
			method: http.MethodGet,
			target: "/drivers/" + testDriverID,
			token:  "valid.jwt.token",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().GetDriver(gomock.Any(), testIdentity, testDriverID).Return(driver, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "get not found",
			method: http.MethodGet,
			target: "/drivers/" + testDriverID,
			token:  "valid.jwt.token",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().GetDriver(gomock.Any(), testIdentity, testDriverID).Return(nil, ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "list success",
			method: http.MethodGet,
			target: "/drivers/",
			token:  "valid.jwt.token",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().ListDrivers(gomock.Any(), testIdentity).Return([]*types.Driver{driver}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "patch success",
			method:      http.MethodPatch,
			target:      "/drivers/" + testDriverID,
			token:       "valid.jwt.token",
			requestBody: map[string]interface{}{"phone": "555-0100"},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().UpdateDriver(gomock.Any(), testIdentity, testDriverID, gomock.Any(), []string{"phone"}).
					Return(driver, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "delete success",
			method: http.MethodDelete,
			target: "/drivers/" + testDriverID,
			token:  "valid.jwt.token",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().DeleteDriver(gomock.Any(), testIdentity, testDriverID).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:   "delete not found",
			method: http.MethodDelete,
			target: "/drivers/" + testDriverID,
			token:  "valid.jwt.token",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().DeleteDriver(gomock.Any(), testIdentity, testDriverID).Return(ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "service error maps to 500",
			method: http.MethodGet,
			target: "/drivers/" + testDriverID,
			token:  "valid.jwt.token",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().GetDriver(gomock.Any(), testIdentity, testDriverID).
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

			resp := serveJSON(t, newAuthenticatedAPI(ctrl, mockService), tt.method, tt.target, tt.token, tt.requestBody)
			defer resp.Body.Close()

			if resp.StatusCode != tt.expectedStatus {
				body, _ := io.ReadAll(resp.Body)
				t.Errorf("expected status %d, got %d. Body: %s", tt.expectedStatus, resp.StatusCode, string(body))
			}
		})
	}
}
