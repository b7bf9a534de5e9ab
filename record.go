package fintrace

import (
	"encoding/json"
	"time"
)

// Record is a single financial transaction entry owned by the store.
//
// Every stored record satisfies the field validation rules; they are
// enforced at the mutation boundary, never re-checked on read.
type Record struct {
	ID          string    // opaque unique identifier, immutable after creation
	Description string    // non-empty, no leading/trailing whitespace
	Amount      Amount    // positive, at most two fractional digits
	Category    string    // letters, spaces and hyphens only
	Date        Date      // the day the transaction happened
	CreatedAt   time.Time // set once at creation
	UpdatedAt   time.Time // refreshed on every edit
}

// jrecord is the JSON shape of a Record. Timestamps stay textual so that
// instants written by other tools round-trip unchanged.
type jrecord struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      Amount `json:"amount"`
	Category    string `json:"category"`
	Date        Date   `json:"date"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// MarshalJSON writes the record fields in a stable, readable order.
func (r Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", r.ID)
	w.Append("description", r.Description)
	w.Append("amount", r.Amount)
	w.Append("category", r.Category)
	w.Append("date", r.Date)
	w.Append("createdAt", r.CreatedAt.UTC().Format(DatetimeFormat))
	w.Append("updatedAt", r.UpdatedAt.UTC().Format(DatetimeFormat))
	return w.MarshalJSON()
}

func (r *Record) UnmarshalJSON(b []byte) error {
	var j jrecord
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	created, err := parseInstant(j.CreatedAt)
	if err != nil {
		return err
	}
	updated, err := parseInstant(j.UpdatedAt)
	if err != nil {
		return err
	}
	*r = Record{
		ID:          j.ID,
		Description: j.Description,
		Amount:      j.Amount,
		Category:    j.Category,
		Date:        j.Date,
		CreatedAt:   created,
		UpdatedAt:   updated,
	}
	return nil
}

// parseInstant accepts RFC3339 instants with or without fractional seconds.
func parseInstant(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s)
}

var _ json.Marshaler = Record{}
var _ json.Unmarshaler = (*Record)(nil)
