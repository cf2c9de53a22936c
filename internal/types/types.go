// Copyright 2026 FleetOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Principal is an authenticated account bound to exactly one tenant.
// PasswordHash never serializes; it stays inside the storage and auth layers.
type Principal struct {
	ID           string    `db:"user_id" json:"user_id"`
	TenantID     string    `db:"tenant_id" json:"tenant_id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FirstName    string    `db:"first_name" json:"first_name,omitempty"`
	LastName     string    `db:"last_name" json:"last_name,omitempty"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type Tenant struct {
	ID           string    `db:"tenant_id" json:"tenant_id"`
	Name         string    `db:"tenant_name" json:"tenant_name"`
	DomainName   string    `db:"domain_name" json:"domain_name,omitempty"`
	ContactEmail string    `db:"contact_email" json:"contact_email,omitempty"`
	PlanType     string    `db:"plan_type" json:"plan_type"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type Vehicle struct {
	ID                 string     `db:"vehicle_id" json:"vehicle_id"`
	TenantID           string     `db:"tenant_id" json:"tenant_id"`
	FleetID            string     `db:"fleet_id" json:"fleet_id,omitempty"`
	RegistrationNumber string     `db:"registration_number" json:"registration_number"`
	Model              string     `db:"model" json:"model,omitempty"`
	Capacity           int        `db:"capacity" json:"capacity,omitempty"`
	Active             bool       `db:"active" json:"active"`
	LastInspection     *time.Time `db:"last_inspection" json:"last_inspection,omitempty"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
}

type Driver struct {
	ID            string    `db:"driver_id" json:"driver_id"`
	TenantID      string    `db:"tenant_id" json:"tenant_id"`
	FirstName     string    `db:"first_name" json:"first_name"`
	LastName      string    `db:"last_name" json:"last_name"`
	LicenseNumber string    `db:"license_number" json:"license_number,omitempty"`
	Phone         string    `db:"phone" json:"phone,omitempty"`
	Active        bool      `db:"active" json:"active"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
