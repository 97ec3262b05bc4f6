package adapters

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// timestampLayouts lists the textual forms a driver may hand back for a
// timestamp column it could not type (SQLite aggregates, Postgres text casts).
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// NullTimestamp is a nullable timestamp column that only accepts values that
// are unambiguously timestamps. Anything else fails the scan.
type NullTimestamp struct {
	Time  time.Time
	Valid bool
}

// Scan implements sql.Scanner.
func (t *NullTimestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = NullTimestamp{}
		return nil
	case time.Time:
		*t = NullTimestamp{Time: v, Valid: true}
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into timestamp", src)
	}
}

// Value implements driver.Valuer.
func (t NullTimestamp) Value() (driver.Value, error) {
	if !t.Valid {
		return nil, nil
	}
	return t.Time, nil
}

// Ptr returns nil for NULL, otherwise a pointer to a copy of the time.
func (t NullTimestamp) Ptr() *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func (t *NullTimestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if v, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*t = NullTimestamp{Time: v, Valid: true}
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as timestamp", s)
}
