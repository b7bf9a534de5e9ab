package fintrace

import (
	"encoding/json"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Settings hold the process-wide preferences, persisted independently of
// the records under their own blob keys.
type Settings struct {
	DisplayCurrency string // one of Currencies(), default USD
	Budget          Amount // positive cap for budget classification, default 200
}

// DefaultBudget is the budget cap used when none was ever persisted.
var DefaultBudget = A(200)

// Observer is notified after every successful mutation, so a presentation
// layer can re-render. The store itself renders nothing.
type Observer interface {
	Changed()
}

// RecordInput carries the raw field values for an add or edit, exactly as
// the user typed them. The store trims and parses; it does not validate.
// Callers gate input through the field validation tier first.
type RecordInput struct {
	Description string
	Amount      string
	Category    string
	Date        string
}

// Store is the sole mutator of the record collection. It owns identity
// generation and persists through its Blob collaborator inline with every
// mutation. Single-threaded by design: no locking.
type Store struct {
	records  []Record
	settings Settings
	blob     Blob
	observer Observer
	now      func() time.Time
}

// OpenStore builds a Store from the persisted state in blob. A missing or
// unparseable records blob yields an empty collection: corruption is logged,
// never raised.
func OpenStore(blob Blob) *Store {
	s := &Store{
		blob: blob,
		settings: Settings{
			DisplayCurrency: DefaultCurrency,
			Budget:          DefaultBudget,
		},
		now: time.Now,
	}
	if data, ok := blob.Get(recordsKey); ok {
		var records []Record
		if err := json.Unmarshal(data, &records); err != nil {
			log.Printf("warning: could not parse stored records, starting empty: %v", err)
		} else {
			s.records = records
		}
	}
	if data, ok := blob.Get(currencyKey); ok {
		if code := strings.TrimSpace(string(data)); code != "" {
			s.settings.DisplayCurrency = code
		}
	}
	if data, ok := blob.Get(capKey); ok {
		if cap, err := ParseAmount(strings.TrimSpace(string(data))); err == nil && !cap.IsZero() {
			s.settings.Budget = cap
		}
	}
	return s
}

// SetObserver registers the observer notified after each mutation.
// Passing nil unregisters.
func (s *Store) SetObserver(o Observer) { s.observer = o }

func (s *Store) notify() {
	if s.observer != nil {
		s.observer.Changed()
	}
}

// Records returns the collection in natural order, newest created first.
// The slice is a copy: the store remains the only mutator.
func (s *Store) Records() []Record { return slices.Clone(s.records) }

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// Find returns the record with the given id.
func (s *Store) Find(id string) (Record, bool) {
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// Settings returns the current settings.
func (s *Store) Settings() Settings { return s.settings }

// Display formats an amount in the current display currency.
func (s *Store) Display(a Amount) string {
	return CurrencyDisplay(a, s.settings.DisplayCurrency)
}

// newID generates a fresh record identifier. A collision-resistant random
// id replaces the original count+timestamp scheme, which could collide
// under rapid import or after deletions shrank the count.
func (s *Store) newID() string { return "txn_" + uuid.NewString() }

// Add creates a record from the input, prepends it to the collection
// (natural order is newest first), persists, and notifies the observer.
// Input is trimmed and parsed but not re-validated here.
func (s *Store) Add(input RecordInput) Record {
	now := s.now()
	rec := Record{
		ID:          s.newID(),
		Description: strings.TrimSpace(input.Description),
		Category:    strings.TrimSpace(input.Category),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if a, err := ParseAmount(strings.TrimSpace(input.Amount)); err == nil {
		rec.Amount = a
	}
	if d, err := ParseDate(input.Date); err == nil {
		rec.Date = d
	}
	s.records = append([]Record{rec}, s.records...)
	s.persist()
	s.notify()
	return rec
}

// Edit overwrites the fields present (non-empty) in updates and refreshes
// updatedAt. Editing an unknown id is a silent no-op: treated as a benign
// race with a prior deletion.
func (s *Store) Edit(id string, updates RecordInput) {
	i := slices.IndexFunc(s.records, func(r Record) bool { return r.ID == id })
	if i == -1 {
		return
	}
	rec := &s.records[i]
	if updates.Description != "" {
		rec.Description = strings.TrimSpace(updates.Description)
	}
	if updates.Amount != "" {
		if a, err := ParseAmount(strings.TrimSpace(updates.Amount)); err == nil {
			rec.Amount = a
		}
	}
	if updates.Category != "" {
		rec.Category = strings.TrimSpace(updates.Category)
	}
	if updates.Date != "" {
		if d, err := ParseDate(updates.Date); err == nil {
			rec.Date = d
		}
	}
	rec.UpdatedAt = s.now()
	s.persist()
	s.notify()
}

// Delete removes the record with the given id. Deleting an unknown id
// leaves the collection untouched and skips the persist.
func (s *Store) Delete(id string) {
	i := slices.IndexFunc(s.records, func(r Record) bool { return r.ID == id })
	if i == -1 {
		return
	}
	s.records = slices.Delete(s.records, i, i+1)
	s.persist()
	s.notify()
}

// UpdateSetting mutates one setting and persists that setting alone.
// Key "currency" sets the display currency, "cap" the budget cap.
// Unknown keys are ignored silently.
func (s *Store) UpdateSetting(key, value string) {
	switch key {
	case "currency":
		s.settings.DisplayCurrency = value
		if err := s.blob.Set(currencyKey, []byte(value)); err != nil {
			log.Printf("warning: could not persist currency: %v", err)
		}
	case "cap":
		cap, err := ParseAmount(strings.TrimSpace(value))
		if err != nil || !cap.IsPositive() {
			return
		}
		s.settings.Budget = cap
		if err := s.blob.Set(capKey, []byte(cap.String())); err != nil {
			log.Printf("warning: could not persist budget cap: %v", err)
		}
	}
}

// appendImported appends already validated and re-stamped records at the
// end of the collection (import order is preserved, not prepended), with a
// single persist for the whole batch.
func (s *Store) appendImported(records []Record) {
	s.records = append(s.records, records...)
	s.persist()
	s.notify()
}

// persist serializes the full collection to the blob collaborator.
// Failures are logged, not raised: the in-memory state stays authoritative
// for the rest of the session.
func (s *Store) persist() {
	data, err := json.Marshal(s.records)
	if err != nil {
		log.Printf("warning: could not serialize records: %v", err)
		return
	}
	if err := s.blob.Set(recordsKey, data); err != nil {
		log.Printf("warning: could not persist records: %v", err)
	}
}
