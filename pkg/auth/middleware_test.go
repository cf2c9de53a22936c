// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"

	"github.com/fleetops/fleet-console/internal/logging"
	"github.com/fleetops/fleet-console/internal/tracing"
)

func TestMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name           string
		authorization  string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectIdentity bool
	}{
		{
			name:          "success",
			authorization: "Bearer signed.jwt.token",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Resolve(gomock.Any(), "signed.jwt.token").Return(&Claims{
					Username:         "jdoe",
					TenantID:         testTenantID,
					RegisteredClaims: jwt.RegisteredClaims{Subject: testUserID},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectIdentity: true,
		},
		{
			name:           "missing header",
			authorization:  "",
			setupMocks:     func(mockSvc *MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "not a bearer scheme",
			authorization:  "Basic dXNlcjpwYXNz",
			setupMocks:     func(mockSvc *MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "expired token",
			authorization: "Bearer expired.jwt.token",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Resolve(gomock.Any(), "expired.jwt.token").Return(nil, ErrExpiredToken)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "bad signature",
			authorization: "Bearer forged.jwt.token",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Resolve(gomock.Any(), "forged.jwt.token").Return(nil, ErrInvalidSignature)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			middleware := NewMiddleware(mockService, tracing.NewNoopTracer(), nil, logging.NewNoopLogger())

			var gotIdentity *Identity
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if id, ok := IdentityFromContext(r.Context()); ok {
					gotIdentity = &id
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			w := httptest.NewRecorder()

			middleware.Authenticate()(next).ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.expectIdentity {
				if gotIdentity == nil {
					t.Fatal("expected identity in request context")
				}
				if gotIdentity.ID != testUserID || gotIdentity.TenantID != testTenantID || gotIdentity.Username != "jdoe" {
					t.Errorf("unexpected identity: %+v", gotIdentity)
				}
			} else if gotIdentity != nil {
				t.Error("handler must not run for unauthenticated requests")
			}
		})
	}
}
