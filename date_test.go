package fintrace

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2024-05-01", NewDate(2024, time.May, 1), false},
		{"2024-12-31", NewDate(2024, time.December, 31), false},
		{"2024-02-31", NewDate(2024, time.February, 31), false}, // no month-length check
		{"2024-13-01", Date{}, true},
		{"2024-00-01", Date{}, true},
		{"2024-05-32", Date{}, true},
		{"2024-05-00", Date{}, true},
		{"2024-5-1", Date{}, true},
		{"05-01-2024", Date{}, true},
		{"yesterday", Date{}, true},
		{"", Date{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDateString(t *testing.T) {
	if got := NewDate(2024, time.May, 1).String(); got != "2024-05-01" {
		t.Errorf("String() = %q, want 2024-05-01", got)
	}
	// Display never normalizes, even for days no month has.
	if got := NewDate(2024, time.February, 31).String(); got != "2024-02-31" {
		t.Errorf("String() = %q, want 2024-02-31", got)
	}
}

func TestDateArithmetic(t *testing.T) {
	d := MustParseDate("2024-05-10")
	if got := d.Add(-7); got != MustParseDate("2024-05-03") {
		t.Errorf("Add(-7) = %v", got)
	}
	if got := d.Add(25); got != MustParseDate("2024-06-04") {
		t.Errorf("Add(25) = %v", got)
	}
	if got := MustParseDate("2024-05-03").DaysUntil(d); got != 7 {
		t.Errorf("DaysUntil = %d, want 7", got)
	}
	if got := d.DaysUntil(MustParseDate("2024-05-03")); got != -7 {
		t.Errorf("DaysUntil = %d, want -7", got)
	}
	if !MustParseDate("2024-05-03").Before(d) || !d.After(MustParseDate("2024-05-03")) {
		t.Error("Before/After disagree about ordering")
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := MustParseDate("2024-05-01")
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2024-05-01"` {
		t.Errorf("Marshal = %s", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}

	if err := json.Unmarshal([]byte(`"not-a-date"`), &back); err == nil {
		t.Error("unmarshal of a malformed date should fail")
	}
}
