package postgresql

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// TIME columns are exchanged as pgtype.Time and surfaced as a time.Time on
// 0000-01-01 UTC, the same value time.Parse yields for a clock layout.

func toPgTime(t time.Time) pgtype.Time {
	h, m, s := t.Clock()
	d := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second + time.Duration(t.Nanosecond())
	return pgtype.Time{Microseconds: d.Microseconds(), Valid: true}
}

func fromPgTime(t pgtype.Time) time.Time {
	return time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(t.Microseconds) * time.Microsecond)
}
