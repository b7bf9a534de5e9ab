package fintrace

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DateFormat is the only accepted textual form for record dates.
const DateFormat = "2006-01-02"

// DatetimeFormat is used for createdAt/updatedAt instants.
const DatetimeFormat = time.RFC3339

// dateRE accepts strict YYYY-MM-DD with month 01-12 and day 01-31.
// There is deliberately no month-length or leap-year cross-check.
var dateRE = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)

// Date represents a calendar date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns the Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{year, month, day}
}

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

func (d Date) Year() int         { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int          { return d.d }

// String formats the date as YYYY-MM-DD, preserving the stored fields.
func (d Date) String() string { return fmt.Sprintf("%04d-%02d-%02d", d.y, int(d.m), d.d) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns the canonical representation of that day (midnight UTC).
// Out-of-range days (e.g. February 31) normalize forward, which is only
// used for comparisons and day arithmetic, never for display.
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.time().AddDate(0, 0, i).Date()) }

// DaysUntil returns the number of whole days from d to x, midnight truncated.
func (d Date) DaysUntil(x Date) int {
	return int(x.time().Sub(d.time()) / (24 * time.Hour))
}

// ParseDate parses a Date in strict YYYY-MM-DD form. Records only ever
// carry this canonical form, so anything else is an error.
func ParseDate(str string) (Date, error) {
	if !dateRE.MatchString(str) {
		return Date{}, fmt.Errorf("invalid date %q: want format %q", str, DateFormat)
	}
	y, _ := strconv.Atoi(str[0:4])
	m, _ := strconv.Atoi(str[5:7])
	d, _ := strconv.Atoi(str[8:10])
	return Date{y, time.Month(m), d}, nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshal a date from a json string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	on, err := ParseDate(str)
	if err != nil {
		return fmt.Errorf("invalid date in data file: %w", err)
	}
	*d = on
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshal/unmarshal type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
