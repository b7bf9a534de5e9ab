package fintrace

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// SortKey selects the field a view is ordered by.
type SortKey int

const (
	SortByDate SortKey = iota
	SortByDescription
	SortByAmount
)

func (k SortKey) String() string {
	switch k {
	case SortByDate:
		return "date"
	case SortByDescription:
		return "description"
	case SortByAmount:
		return "amount"
	default:
		return "unknown"
	}
}

// ParseSortKey parses a string into a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch s {
	case "date":
		return SortByDate, nil
	case "description":
		return SortByDescription, nil
	case "amount":
		return SortByAmount, nil
	default:
		return 0, fmt.Errorf("unknown sort key: %q", s)
	}
}

// Direction is the order of a sorted view.
type Direction int

const (
	Descending Direction = iota
	Ascending
)

func (d Direction) String() string {
	if d == Ascending {
		return "asc"
	}
	return "desc"
}

// ParseDirection parses a string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "asc":
		return Ascending, nil
	case "desc":
		return Descending, nil
	default:
		return 0, fmt.Errorf("unknown sort direction: %q", s)
	}
}

// SortState is the transient sort selection of a view. The zero value is
// the default: by date, newest first.
type SortState struct {
	Key SortKey
	Dir Direction
}

// SortedView returns the records totally ordered by the sort state. The
// sort is stable: records that compare equal keep their input order.
func SortedView(records []Record, state SortState) []Record {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		var cmp int
		switch state.Key {
		case SortByDescription:
			cmp = strings.Compare(a.Description, b.Description)
		case SortByAmount:
			cmp = a.Amount.Cmp(b.Amount)
		default:
			switch {
			case a.Date.Before(b.Date):
				cmp = -1
			case a.Date.After(b.Date):
				cmp = 1
			}
		}
		if state.Dir == Descending {
			cmp = -cmp
		}
		return cmp
	})
	return sorted
}

// SearchedView applies the matcher filter to an already sorted view.
func SearchedView(sorted []Record, m *Matcher) []Record {
	return m.Filter(sorted)
}

// NoCategory is the TopCategory sentinel when there are no records.
const NoCategory = "—"

// Summary holds the aggregate figures of a record collection.
type Summary struct {
	Count       int
	Total       Amount // sum of amounts in base units, pre-conversion
	TopCategory string
}

// Aggregate computes count, total and the most frequent category. Ties are
// broken by first appearance in iteration order.
func Aggregate(records []Record) Summary {
	sum := Summary{Count: len(records), TopCategory: NoCategory}
	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		sum.Total = sum.Total.Add(r.Amount)
		if _, seen := counts[r.Category]; !seen {
			order = append(order, r.Category)
		}
		counts[r.Category]++
	}
	best := 0
	for _, cat := range order {
		if counts[cat] > best {
			best = counts[cat]
			sum.TopCategory = cat
		}
	}
	return sum
}

// Level classifies the remaining budget.
type Level int

const (
	BudgetOK Level = iota
	BudgetLow
	BudgetOver
)

func (l Level) String() string {
	switch l {
	case BudgetOver:
		return "over"
	case BudgetLow:
		return "low"
	default:
		return "ok"
	}
}

// BudgetStatus classifies the spending total against the cap and returns
// the remaining budget (cap - total, negative when over).
//
//	over: remaining < 0
//	low:  0 <= remaining < cap * 0.2
//	ok:   otherwise
func BudgetStatus(total, cap Amount) (Level, Amount) {
	remaining := cap.Sub(total)
	if remaining.IsNegative() {
		return BudgetOver, remaining
	}
	threshold := A(cap.value.Mul(decimal.NewFromFloat(0.2)))
	if remaining.LessThan(threshold) {
		return BudgetLow, remaining
	}
	return BudgetOK, remaining
}

// Trend buckets record amounts by calendar day over the window of `days`
// days ending today, oldest bucket first. Day matching is midnight
// truncated; records outside the window are ignored. With no in-window
// records all buckets are zero.
func Trend(records []Record, today Date, days int) []Amount {
	buckets := make([]Amount, days)
	for _, r := range records {
		diff := r.Date.DaysUntil(today)
		if diff >= 0 && diff < days {
			i := days - 1 - diff
			buckets[i] = buckets[i].Add(r.Amount)
		}
	}
	return buckets
}
