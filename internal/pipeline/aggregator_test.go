package pipeline

import (
	"errors"
	"testing"
	"time"

	"github.com/diarijajan/diari/internal/model"

	"github.com/shopspring/decimal"
)

func rec(id int64, name string, cost int64, createdAt string) model.ExpenseRecord {
	return model.ExpenseRecord{ID: id, Name: name, Cost: decimal.NewFromInt(cost), CreatedAt: createdAt}
}

func utcAggregator() Aggregator {
	return Aggregator{Location: time.UTC}
}

func TestGroup_EndToEnd(t *testing.T) {
	records := []model.ExpenseRecord{
		rec(1, "Sarapan", 10000, "2024-01-01T09:00"),
		rec(2, "Makan malam", 5000, "2024-01-01T18:30"),
		rec(3, "Kopi", 7000, "2024-01-02T08:00"),
	}
	ag := utcAggregator()

	groups, err := ag.Group(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if want := (model.DayKey{Year: 2024, Month: time.January, Day: 1}); groups[0].Key != want {
		t.Errorf("groups[0].Key = %v, want %v", groups[0].Key, want)
	}
	if !groups[0].Subtotal.Equal(decimal.NewFromInt(15000)) {
		t.Errorf("day 1 subtotal = %s, want 15000", groups[0].Subtotal)
	}
	if !groups[1].Subtotal.Equal(decimal.NewFromInt(7000)) {
		t.Errorf("day 2 subtotal = %s, want 7000", groups[1].Subtotal)
	}
	if total := ag.Total(records); !total.Equal(decimal.NewFromInt(22000)) {
		t.Errorf("total = %s, want 22000", total)
	}
}

func TestGroup_FirstSeenOrder(t *testing.T) {
	records := []model.ExpenseRecord{
		rec(1, "b1", 1, "2024-05-02T10:00"),
		rec(2, "a1", 2, "2024-05-01T10:00"),
		rec(3, "b2", 3, "2024-05-02T11:00"),
	}

	groups, err := utcAggregator().Group(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if groups[0].Key.Day != 2 || groups[1].Key.Day != 1 {
		t.Fatalf("group days = [%d, %d], want [2, 1]", groups[0].Key.Day, groups[1].Key.Day)
	}
	if len(groups[0].Records) != 2 || groups[0].Records[0].ID != 1 || groups[0].Records[1].ID != 3 {
		t.Errorf("day 2 records out of order: %+v", groups[0].Records)
	}
}

func TestGroup_Partition(t *testing.T) {
	records := []model.ExpenseRecord{
		rec(1, "a", 100, "2024-02-10T23:59"),
		rec(2, "b", 200, "2024-02-11T00:00"),
		rec(3, "c", 300, "2024-02-10T00:01"),
		rec(4, "d", 400, "2025-02-10T12:00"),
		rec(5, "e", 500, "2024-02-11T08:00"),
	}
	ag := utcAggregator()

	groups, err := ag.Group(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[int64]int)
	sum := decimal.Zero
	for _, g := range groups {
		sum = sum.Add(g.Subtotal)
		for _, r := range g.Records {
			seen[r.ID]++
			ts, err := ag.ParseCreatedAt(r)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if model.KeyOf(ts) != g.Key {
				t.Errorf("record %d (%s) in group %s", r.ID, r.CreatedAt, g.Key)
			}
		}
	}
	if len(seen) != len(records) {
		t.Fatalf("records in groups = %d, want %d", len(seen), len(records))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("record %d appears %d times", id, n)
		}
	}
	if !sum.Equal(ag.Total(records)) {
		t.Errorf("sum of subtotals %s != total %s", sum, ag.Total(records))
	}
	// Same day and month in another year is a separate group.
	if len(groups) != 3 {
		t.Errorf("groups = %d, want 3", len(groups))
	}
}

func TestGroup_Empty(t *testing.T) {
	groups, err := Group(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if groups == nil || len(groups) != 0 {
		t.Errorf("Group(nil) = %v, want empty slice", groups)
	}
	if total := Total(nil); !total.IsZero() {
		t.Errorf("Total(nil) = %s, want 0", total)
	}
}

func TestGroup_MalformedCreatedAt(t *testing.T) {
	records := []model.ExpenseRecord{
		rec(1, "ok", 100, "2024-01-01T09:00"),
		rec(7, "bad", 100, "kemarin sore"),
	}

	_, err := utcAggregator().Group(records)
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("err = %v, want ErrMalformedRecord", err)
	}

	_, err = utcAggregator().Group([]model.ExpenseRecord{rec(2, "empty", 1, "")})
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("empty created_at: err = %v, want ErrMalformedRecord", err)
	}
}

func TestGroup_UsesLocation(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	// 20:00 UTC on Jan 1 is 03:00 on Jan 2 in Jakarta.
	records := []model.ExpenseRecord{rec(1, "late", 1, "2024-01-01T20:00:00Z")}

	groups, err := Aggregator{Location: jakarta}.Group(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if groups[0].Key.Day != 2 {
		t.Errorf("day = %d, want 2", groups[0].Key.Day)
	}
	if groups[0].Date.Location() != jakarta {
		t.Errorf("group date location = %v, want WIB", groups[0].Date.Location())
	}
}

func TestParseCreatedAt_Layouts(t *testing.T) {
	ag := utcAggregator()
	want := time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC)
	for _, s := range []string{
		"2024-03-05T14:07:00Z",
		"2024-03-05T21:07:00+07:00",
		"2024-03-05T14:07:00",
		"2024-03-05T14:07",
		"2024-03-05 14:07:00",
		" 2024-03-05 14:07 ",
	} {
		got, err := ag.ParseCreatedAt(model.ExpenseRecord{CreatedAt: s})
		if err != nil {
			t.Errorf("%q: unexpected error: %v", s, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("%q = %v, want %v", s, got, want)
		}
	}
}

func TestAppend(t *testing.T) {
	c := model.Collection{
		rec(1, "Bakso", 20000, "2024-03-07T18:45"),
		rec(2, "Es teh", 5000, "2024-03-07T19:00"),
	}
	before := append(model.Collection(nil), c...)
	now := time.Date(2024, 3, 8, 7, 5, 0, 0, time.UTC)

	out, err := Append(c, "Coffee", decimal.NewFromInt(15000), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != len(c)+1 {
		t.Fatalf("len = %d, want %d", len(out), len(c)+1)
	}
	last := out[len(out)-1]
	if last.Name != "Coffee" || !last.Cost.Equal(decimal.NewFromInt(15000)) {
		t.Errorf("last = %+v", last)
	}
	ts, err := utcAggregator().ParseCreatedAt(last)
	if err != nil {
		t.Fatalf("appended created_at unparseable: %v", err)
	}
	if !ts.Equal(now) {
		t.Errorf("created_at = %v, want %v", ts, now)
	}
	if last.ID != 3 {
		t.Errorf("ID = %d, want 3", last.ID)
	}
	for i := range c {
		if c[i].ID != before[i].ID || c[i].Name != before[i].Name ||
			!c[i].Cost.Equal(before[i].Cost) || c[i].CreatedAt != before[i].CreatedAt {
			t.Errorf("input[%d] changed", i)
		}
		if out[i].ID != c[i].ID || out[i].Name != c[i].Name || out[i].CreatedAt != c[i].CreatedAt {
			t.Errorf("out[%d] = %+v, want %+v", i, out[i], c[i])
		}
	}
	if len(c) != 2 {
		t.Errorf("input len changed to %d", len(c))
	}
}

func TestAppend_DoesNotShareBackingArray(t *testing.T) {
	c := make(model.Collection, 1, 8)
	c[0] = rec(1, "a", 1, "2024-01-01T00:00")
	now := time.Now()

	first, err := Append(c, "x", decimal.NewFromInt(1), now)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Append(c, "y", decimal.NewFromInt(2), now)
	if err != nil {
		t.Fatal(err)
	}
	if first[1].Name != "x" || second[1].Name != "y" {
		t.Errorf("appends clobbered each other: %q, %q", first[1].Name, second[1].Name)
	}
}

func TestAppend_Amounts(t *testing.T) {
	now := time.Now()
	neg := decimal.NewFromInt(-500)

	if _, err := Append(nil, "refund", neg, now); err != nil {
		t.Errorf("permissive append rejected negative cost: %v", err)
	}
	if _, err := Append(nil, "free", decimal.Zero, now); err != nil {
		t.Errorf("permissive append rejected zero cost: %v", err)
	}

	strict := Aggregator{StrictAmounts: true}
	if _, err := strict.Append(nil, "refund", neg, now); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("strict append err = %v, want ErrInvalidAmount", err)
	}
	if _, err := strict.Append(nil, "free", decimal.Zero, now); err != nil {
		t.Errorf("strict append rejected zero cost: %v", err)
	}
}

func TestNextID(t *testing.T) {
	cases := []struct {
		ids  []int64
		want int64
	}{
		{nil, 1},
		{[]int64{1, 2, 3}, 4},
		{[]int64{9, 2, 5}, 10},
		{[]int64{-4, -1}, 1},
	}
	for _, tc := range cases {
		var c model.Collection
		for _, id := range tc.ids {
			c = append(c, model.ExpenseRecord{ID: id})
		}
		if got := NextID(c); got != tc.want {
			t.Errorf("NextID(%v) = %d, want %d", tc.ids, got, tc.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	s, err := utcAggregator().Summarize(DefaultCollection())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Records != 7 {
		t.Errorf("Records = %d, want 7", s.Records)
	}
	if len(s.Groups) != 3 {
		t.Errorf("Groups = %d, want 3", len(s.Groups))
	}
	if !s.Total.Equal(decimal.NewFromInt(150000)) {
		t.Errorf("Total = %s, want 150000", s.Total)
	}
}
