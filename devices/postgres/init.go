// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package postgres

import migrate "github.com/rubenv/sql-migrate"

// Migration of devices service.
func Migration() *migrate.MemoryMigrationSource {
	return &migrate.MemoryMigrationSource{
		Migrations: []*migrate.Migration{
			{
				Id: "devices_1",
				Up: []string{
					`CREATE TABLE IF NOT EXISTS devices (
						id             VARCHAR(36) PRIMARY KEY,
						type           VARCHAR(254) NOT NULL,
						claim_code     VARCHAR(12)  NOT NULL,
						claim_state    SMALLINT     NOT NULL DEFAULT 0,
						enabled        BOOLEAN      NOT NULL DEFAULT FALSE,
						owner          VARCHAR(254) NOT NULL DEFAULT '',
						remaining_life FLOAT        NOT NULL DEFAULT 100,
						tags           JSONB,
						methods        JSONB,
						created_at     TIMESTAMP    NOT NULL,
						updated_at     TIMESTAMP
					)`,
					`CREATE INDEX IF NOT EXISTS idx_devices_claim_code ON devices (claim_code)`,
					`CREATE TABLE IF NOT EXISTS device_events (
						id          VARCHAR(36) PRIMARY KEY,
						device_id   VARCHAR(36) NOT NULL REFERENCES devices (id) ON DELETE CASCADE,
						type        VARCHAR(254) NOT NULL,
						payload     JSONB,
						occurred_at TIMESTAMP NOT NULL
					)`,
					`CREATE INDEX IF NOT EXISTS idx_device_events_device_id ON device_events (device_id, occurred_at)`,
				},
				Down: []string{
					"DROP TABLE IF EXISTS device_events",
					"DROP TABLE IF EXISTS devices",
				},
			},
		},
	}
}
