// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package registry implements the registry buffer: durable buffering of
// device registration records produced on the manufacturing line.
package registry

import (
	"context"
	"time"

	"github.com/absmach/ate/pkg/errors"
)

var (
	ErrMalformedEntity = errors.New("malformed device record")
	ErrConflict        = errors.New("device already registered with different data")
	ErrNotFound        = errors.New("device not found")
	ErrCreateEntity    = errors.New("failed to buffer device record")
	ErrViewEntity      = errors.New("failed to retrieve device record")
)

// Device is a buffered registration record for a single provisioned unit.
type Device struct {
	ID        string    `db:"id"`
	Sku       string    `db:"sku"`
	DeviceID  string    `db:"device_id"`
	Data      []byte    `db:"data"`
	CreatedAt time.Time `db:"created_at"`
}

//go:generate mockery --name Service --output=./mocks --filename service.go --quiet --note "Copyright (c) Abstract Machines"
type Service interface {
	// RegisterDevice validates a registration record and buffers it.
	RegisterDevice(ctx context.Context, device Device) (Device, error)

	// ViewDevice retrieves a buffered record by its device ID.
	ViewDevice(ctx context.Context, deviceID string) (Device, error)
}

//go:generate mockery --name Repository --output=./mocks --filename repository.go --quiet --note "Copyright (c) Abstract Machines"
type Repository interface {
	// CreateDevice adds a device record to the buffer.
	CreateDevice(ctx context.Context, device Device) error

	// RetrieveDevice retrieves a device record from the buffer.
	RetrieveDevice(ctx context.Context, deviceID string) (Device, error)
}
