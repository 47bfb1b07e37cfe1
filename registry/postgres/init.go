// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	migrate "github.com/rubenv/sql-migrate"
)

func Migration() *migrate.MemoryMigrationSource {
	return &migrate.MemoryMigrationSource{
		Migrations: []*migrate.Migration{
			{
				Id: "registry_1",
				Up: []string{
					`CREATE TABLE IF NOT EXISTS devices (
						id         VARCHAR(36) NOT NULL,
						sku        VARCHAR(64) NOT NULL,
						device_id  VARCHAR(64) UNIQUE NOT NULL,
						data       BYTEA NOT NULL,
						created_at TIMESTAMP,
						PRIMARY KEY (device_id)
					)`,
				},
				Down: []string{
					"DROP TABLE devices",
				},
			},
		},
	}
}
