// Package model defines domain types for expense records and their day groups.
package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseRecord is one spending event as it appears in a seed file.
type ExpenseRecord struct {
	ID        int64           `json:"id" yaml:"id"`
	Name      string          `json:"name" yaml:"name"`
	Cost      decimal.Decimal `json:"cost" yaml:"-"`
	CreatedAt string          `json:"created_at" yaml:"created_at"`
}

// Collection is an ordered list of records. It is treated as a value:
// operations that change it return a new Collection.
type Collection []ExpenseRecord

// Clone returns a copy backed by a fresh array with room for extra records.
func (c Collection) Clone(extra int) Collection {
	out := make(Collection, len(c), len(c)+extra)
	copy(out, c)
	return out
}

// DayKey identifies a calendar day. It is comparable and used as a map key.
type DayKey struct {
	Year  int
	Month time.Month
	Day   int
}

// KeyOf returns the calendar day of t in t's own location.
func KeyOf(t time.Time) DayKey {
	y, m, d := t.Date()
	return DayKey{Year: y, Month: m, Day: d}
}

// Time returns midnight of the day in loc.
func (k DayKey) Time(loc *time.Location) time.Time {
	return time.Date(k.Year, k.Month, k.Day, 0, 0, 0, 0, loc)
}

func (k DayKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", k.Year, k.Month, k.Day)
}
