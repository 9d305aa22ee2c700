// Package pipeline groups expense records by calendar day, totals them, and
// loads seed collections.
package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diarijajan/diari/internal/model"

	"github.com/shopspring/decimal"
)

var (
	// ErrMalformedRecord is returned when a record's created_at cannot be parsed.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrInvalidAmount is returned by a strict Aggregator for negative costs.
	ErrInvalidAmount = errors.New("invalid amount")
)

// Layouts accepted for created_at, tried in order.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Aggregator computes the day-grouped display model of a collection.
// The zero value groups in local time and accepts any cost.
type Aggregator struct {
	// Location decides which calendar day a timestamp falls on.
	// Timestamps without an offset are read in it too. Nil means time.Local.
	Location *time.Location
	// StrictAmounts makes Append reject negative costs.
	StrictAmounts bool
}

var defaultAggregator Aggregator

func (ag Aggregator) location() *time.Location {
	if ag.Location == nil {
		return time.Local
	}
	return ag.Location
}

// ParseCreatedAt returns the record's timestamp in the aggregator's location.
func (ag Aggregator) ParseCreatedAt(r model.ExpenseRecord) (time.Time, error) {
	loc := ag.location()
	s := strings.TrimSpace(r.CreatedAt)
	if s != "" {
		for _, layout := range createdAtLayouts {
			if t, err := time.ParseInLocation(layout, s, loc); err == nil {
				return t.In(loc), nil
			}
		}
	}
	return time.Time{}, fmt.Errorf("%w: id %d: created_at %q", ErrMalformedRecord, r.ID, r.CreatedAt)
}

// Group buckets records by calendar day. Groups come out in the order their
// day is first seen in records, not in date order; records keep their
// relative order within a group.
func (ag Aggregator) Group(records []model.ExpenseRecord) ([]model.DateGroup, error) {
	loc := ag.location()
	groups := make([]model.DateGroup, 0)
	index := make(map[model.DayKey]int)

	for _, r := range records {
		ts, err := ag.ParseCreatedAt(r)
		if err != nil {
			return nil, err
		}
		key := model.KeyOf(ts)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, model.DateGroup{
				Key:      key,
				Date:     key.Time(loc),
				Subtotal: decimal.Zero,
			})
		}
		g := &groups[i]
		g.Records = append(g.Records, r)
		g.Subtotal = g.Subtotal.Add(r.Cost)
	}

	return groups, nil
}

// Total returns the sum of all costs, zero for no records.
func (ag Aggregator) Total(records []model.ExpenseRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Cost)
	}
	return total
}

// Summarize builds the full display model in one call.
func (ag Aggregator) Summarize(records []model.ExpenseRecord) (model.Summary, error) {
	groups, err := ag.Group(records)
	if err != nil {
		return model.Summary{}, err
	}
	return model.Summary{
		Groups:  groups,
		Total:   ag.Total(records),
		Records: len(records),
	}, nil
}

// Append returns a new collection with one record added at the end, stamped
// with now. The input collection and its backing array are left untouched.
func (ag Aggregator) Append(c model.Collection, name string, cost decimal.Decimal, now time.Time) (model.Collection, error) {
	if ag.StrictAmounts && cost.IsNegative() {
		return nil, fmt.Errorf("%w: %s is negative", ErrInvalidAmount, cost.String())
	}

	out := c.Clone(1)
	out = append(out, model.ExpenseRecord{
		ID:        NextID(c),
		Name:      name,
		Cost:      cost,
		CreatedAt: now.Format(time.RFC3339Nano),
	})
	return out, nil
}

// NextID returns one more than the largest id in c, or 1 when c is empty.
func NextID(c model.Collection) int64 {
	var maxID int64
	for _, r := range c {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	return maxID + 1
}

// Group buckets records by calendar day in local time.
func Group(records []model.ExpenseRecord) ([]model.DateGroup, error) {
	return defaultAggregator.Group(records)
}

// Total returns the sum of all costs.
func Total(records []model.ExpenseRecord) decimal.Decimal {
	return defaultAggregator.Total(records)
}

// Append adds a record stamped with now, accepting any cost.
func Append(c model.Collection, name string, cost decimal.Decimal, now time.Time) (model.Collection, error) {
	return defaultAggregator.Append(c, name, cost, now)
}
