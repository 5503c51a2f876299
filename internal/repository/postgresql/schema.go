package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/shift-payroll/internal/pkg/database"
)

// schema creates the tables read by the planning and payroll engine. Shifts
// reference staff but cover requests and timesheets carry no foreign key to
// shifts, so hard-deleting a shift leaves them dangling.
const schema = `
CREATE TABLE IF NOT EXISTS staff (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	username     TEXT NOT NULL UNIQUE,
	email        TEXT NOT NULL DEFAULT '',
	phone_number TEXT NOT NULL DEFAULT '',
	role         TEXT NOT NULL,
	status       TEXT NOT NULL DEFAULT 'ACTIVE',
	work_days    TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS shifts (
	id                 TEXT PRIMARY KEY,
	staff_id           TEXT NOT NULL REFERENCES staff(id),
	date               DATE NOT NULL,
	start_time         TIME NOT NULL,
	end_time           TIME NOT NULL,
	name               TEXT NOT NULL DEFAULT '',
	role               TEXT NOT NULL DEFAULT '',
	published          BOOLEAN NOT NULL DEFAULT FALSE,
	salary_coefficient DOUBLE PRECISION NOT NULL DEFAULT 1,
	created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_shifts_staff_date ON shifts (staff_id, date);

CREATE TABLE IF NOT EXISTS shift_cover_requests (
	id                TEXT PRIMARY KEY,
	shift_id          TEXT NOT NULL UNIQUE,
	covering_staff_id TEXT NOT NULL REFERENCES staff(id),
	note              TEXT NOT NULL DEFAULT '',
	status            TEXT NOT NULL DEFAULT 'PENDING',
	created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS leave_requests (
	id          TEXT PRIMARY KEY,
	staff_id    TEXT NOT NULL REFERENCES staff(id),
	leave_type  TEXT NOT NULL,
	start_date  DATE NOT NULL,
	end_date    DATE NOT NULL,
	status      TEXT NOT NULL DEFAULT 'PENDING',
	reason      TEXT NOT NULL DEFAULT '',
	admin_reply TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_leave_requests_staff ON leave_requests (staff_id, status);

CREATE TABLE IF NOT EXISTS salaries (
	id               TEXT PRIMARY KEY,
	staff_id         TEXT NOT NULL REFERENCES staff(id),
	hourly_wage      NUMERIC(12, 2) NOT NULL,
	effective_date   DATE NOT NULL,
	termination_date DATE,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_salaries_staff ON salaries (staff_id, effective_date);

CREATE TABLE IF NOT EXISTS timesheets (
	id             TEXT PRIMARY KEY,
	shift_id       TEXT NOT NULL UNIQUE,
	staff_id       TEXT NOT NULL REFERENCES staff(id),
	check_in_time  TIME NOT NULL,
	check_out_time TIME NOT NULL,
	status         TEXT NOT NULL DEFAULT 'PENDING',
	note_title     TEXT NOT NULL DEFAULT '',
	note_content   TEXT NOT NULL DEFAULT '',
	salary_id      TEXT,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, db *database.DB) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
