package database

import (
	"context"

	"github.com/afandyna/ser-Health/internal/infrastructure/clients/postgres"
	apperrors "github.com/afandyna/ser-Health/pkg/errors"
)

// Schema creates the tables used by the listing and booking adapters.
const Schema = `
CREATE TABLE IF NOT EXISTS listings (
	id            TEXT NOT NULL,
	kind          TEXT NOT NULL,
	name          TEXT NOT NULL,
	name_ar       TEXT NOT NULL DEFAULT '',
	latitude      DOUBLE PRECISION,
	longitude     DOUBLE PRECISION,
	category_tags TEXT[] NOT NULL DEFAULT '{}',
	status        TEXT NOT NULL DEFAULT '',
	availability  TEXT NOT NULL DEFAULT '',
	attributes    JSONB NOT NULL DEFAULT '{}',
	verified      BOOLEAN NOT NULL DEFAULT false,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (kind, id)
);

CREATE INDEX IF NOT EXISTS idx_listings_kind_verified ON listings (kind, verified);

CREATE TABLE IF NOT EXISTS bookings (
	id           TEXT PRIMARY KEY,
	doctor_id    TEXT NOT NULL,
	patient_name TEXT NOT NULL,
	phone        TEXT NOT NULL DEFAULT '',
	booking_date TEXT NOT NULL,
	booking_time TEXT NOT NULL,
	status       TEXT NOT NULL DEFAULT 'pending',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_open_slot
	ON bookings (doctor_id, booking_date, booking_time)
	WHERE status <> 'cancelled';
`

// Migrate applies Schema. Every statement is idempotent.
func Migrate(ctx context.Context, client *postgres.Client) error {
	if _, err := client.DB().ExecContext(ctx, Schema); err != nil {
		return apperrors.NewInternalError("failed to apply schema", err)
	}
	return nil
}
