package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateGroup holds the records of a single calendar day, in input order.
type DateGroup struct {
	Key      DayKey
	Date     time.Time
	Records  []ExpenseRecord
	Subtotal decimal.Decimal
}

// Summary is the display model of a collection: its day groups in
// first-seen order and the grand total across all of them.
type Summary struct {
	Groups  []DateGroup
	Total   decimal.Decimal
	Records int
}
