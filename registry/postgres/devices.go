// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/absmach/ate/pkg/errors"
	"github.com/absmach/ate/registry"
)

// Postgres error codes:
// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	errDuplicate   = "23505" // unique_violation
	errTruncation  = "22001" // string_data_right_truncation
	errInvalid     = "22P02" // invalid_text_representation
	errInvalidChar = "22021" // character_not_in_repertoire
)

type devicesRepo struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) registry.Repository {
	return devicesRepo{
		db: db,
	}
}

// CreateDevice buffers a device registration record. Re-registering the
// same device is a conflict; the line resolves those manually.
func (repo devicesRepo) CreateDevice(ctx context.Context, device registry.Device) error {
	q := `INSERT INTO devices (id, sku, device_id, data, created_at)
		VALUES (:id, :sku, :device_id, :data, :created_at)`
	if _, err := repo.db.NamedExecContext(ctx, q, device); err != nil {
		return handleError(registry.ErrCreateEntity, err)
	}
	return nil
}

// RetrieveDevice retrieves a buffered record by its device ID.
func (repo devicesRepo) RetrieveDevice(ctx context.Context, deviceID string) (registry.Device, error) {
	q := `SELECT id, sku, device_id, data, created_at FROM devices WHERE device_id = $1`
	var device registry.Device
	if err := repo.db.QueryRowxContext(ctx, q, deviceID).StructScan(&device); err != nil {
		if err == sql.ErrNoRows {
			return registry.Device{}, errors.Wrap(registry.ErrNotFound, err)
		}
		return registry.Device{}, handleError(registry.ErrViewEntity, err)
	}
	return device, nil
}

func handleError(wrapper, err error) error {
	pqErr, ok := err.(*pgconn.PgError)
	if ok {
		switch pqErr.Code {
		case errDuplicate:
			return errors.Wrap(registry.ErrConflict, err)
		case errInvalid, errInvalidChar, errTruncation:
			return errors.Wrap(registry.ErrMalformedEntity, err)
		}
	}

	return errors.Wrap(wrapper, err)
}
