// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package drivers

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/fleetops/fleet-console/internal/authorization"
	"github.com/fleetops/fleet-console/internal/logging"
	"github.com/fleetops/fleet-console/internal/storage"
	"github.com/fleetops/fleet-console/internal/tracing"
	"github.com/fleetops/fleet-console/internal/types"
	"github.com/fleetops/fleet-console/pkg/auth"
)

//go:generate mockgen -build_flags=--mod=mod -package drivers -destination ./mock_drivers.go -source=./interfaces.go

const (
	testTenantID  = "018f3c2a-0000-7000-8000-00000000000a"
	otherTenantID = "018f3c2a-0000-7000-8000-00000000000b"
	testUserID    = "018f3c2a-0000-7000-8000-000000000001"
	testDriverID  = "018f3c2a-0000-7000-8000-0000000000d1"
)

var testIdentity = auth.Identity{ID: testUserID, Username: "jdoe", TenantID: testTenantID}

func newTestService(s StorageInterface, g GuardInterface) *Service {
	return NewService(s, g, tracing.NewNoopTracer(), nil, logging.NewNoopLogger())
}

func TestService_CreateDriver_ForcesCallerTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockGuard := NewMockGuardInterface(ctrl)

	mockStorage.EXPECT().CreateDriver(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d *types.Driver) (*types.Driver, error) {
			if d.TenantID != testTenantID {
				return nil, errors.New("tenant must come from the caller identity")
			}
			created := *d
			created.ID = testDriverID
			created.Active = true
			return &created, nil
		})

	s := newTestService(mockStorage, mockGuard)

	created, err := s.CreateDriver(context.Background(), testIdentity, &types.Driver{
		TenantID:  otherTenantID,
		FirstName: "Max",
		LastName:  "Miller",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.TenantID != testTenantID {
		t.Errorf("expected tenant %q, got %q", testTenantID, created.TenantID)
	}
}

func TestService_GetDriver(t *testing.T) {
	driver := &types.Driver{ID: testDriverID, TenantID: testTenantID, FirstName: "Max"}
	foreign := &types.Driver{ID: testDriverID, TenantID: otherTenantID}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockGuardInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface, mockGuard *MockGuardInterface) {
				mockStorage.EXPECT().GetDriverByID(gomock.Any(), testDriverID).Return(driver, nil)
				mockGuard.EXPECT().CheckResourceAccess(gomock.Any(), testUserID, testTenantID, testTenantID).Return(nil)
			},
		},
		{
			name: "error - driver does not exist",
			setupMocks: func(mockStorage *MockStorageInterface, mockGuard *MockGuardInterface) {
				mockStorage.EXPECT().GetDriverByID(gomock.Any(), testDriverID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
		{
			name: "error - driver owned by another tenant reads as missing",
			setupMocks: func(mockStorage *MockStorageInterface, mockGuard *MockGuardInterface) {
				mockStorage.EXPECT().GetDriverByID(gomock.Any(), testDriverID).Return(foreign, nil)
				mockGuard.EXPECT().CheckResourceAccess(gomock.Any(), testUserID, testTenantID, otherTenantID).
					Return(authorization.ErrTenantMismatch)
			},
			expectedErr: ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockGuard := NewMockGuardInterface(ctrl)
			tc.setupMocks(mockStorage, mockGuard)

			s := newTestService(mockStorage, mockGuard)

			got, err := s.GetDriver(context.Background(), testIdentity, testDriverID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != testDriverID {
				t.Errorf("expected id %q, got %q", testDriverID, got.ID)
			}
		})
	}
}

func TestService_ListDrivers_ScopedToCallerTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockGuard := NewMockGuardInterface(ctrl)

	mockStorage.EXPECT().ListDriversByTenantID(gomock.Any(), testTenantID).
		Return([]*types.Driver{{ID: "d-1", TenantID: testTenantID}}, nil)

	s := newTestService(mockStorage, mockGuard)

	got, err := s.ListDrivers(context.Background(), testIdentity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 driver, got %d", len(got))
	}
}

func TestService_UpdateDriver_GuardsBeforeWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockGuard := NewMockGuardInterface(ctrl)

	foreign := &types.Driver{ID: testDriverID, TenantID: otherTenantID}
	mockStorage.EXPECT().GetDriverByID(gomock.Any(), testDriverID).Return(foreign, nil)
	mockGuard.EXPECT().CheckResourceAccess(gomock.Any(), testUserID, testTenantID, otherTenantID).
		Return(authorization.ErrTenantMismatch)

	s := newTestService(mockStorage, mockGuard)

	// No UpdateDriver expectation: the write must never happen.
	_, err := s.UpdateDriver(context.Background(), testIdentity, testDriverID, &types.Driver{Phone: "555-0100"}, []string{"phone"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestService_DeleteDriver_GuardsBeforeWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockGuard := NewMockGuardInterface(ctrl)

	foreign := &types.Driver{ID: testDriverID, TenantID: otherTenantID}
	mockStorage.EXPECT().GetDriverByID(gomock.Any(), testDriverID).Return(foreign, nil)
	mockGuard.EXPECT().CheckResourceAccess(gomock.Any(), testUserID, testTenantID, otherTenantID).
		Return(authorization.ErrTenantMismatch)

	s := newTestService(mockStorage, mockGuard)

	if err := s.DeleteDriver(context.Background(), testIdentity, testDriverID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
