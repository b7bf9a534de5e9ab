package fintrace

import (
	"strings"
	"testing"
	"time"
)

// countingObserver counts change notifications.
type countingObserver struct{ changes int }

func (o *countingObserver) Changed() { o.changes++ }

func newTestStore() *Store {
	return OpenStore(NewMemStore())
}

func TestStoreAddThenFind(t *testing.T) {
	s := newTestStore()

	rec := s.Add(RecordInput{
		Description: "  Coffee  ",
		Amount:      "3.50",
		Category:    " Food ",
		Date:        "2024-05-01",
	})

	got, ok := s.Find(rec.ID)
	if !ok {
		t.Fatalf("record %q not found after Add", rec.ID)
	}
	if got.Description != "Coffee" {
		t.Errorf("Description = %q, want trimmed %q", got.Description, "Coffee")
	}
	if got.Category != "Food" {
		t.Errorf("Category = %q, want trimmed %q", got.Category, "Food")
	}
	if !got.Amount.Equal(A(3.5)) {
		t.Errorf("Amount = %s, want 3.50", got.Amount)
	}
	if got.Date != MustParseDate("2024-05-01") {
		t.Errorf("Date = %s, want 2024-05-01", got.Date)
	}
	if !got.CreatedAt.Equal(got.UpdatedAt) {
		t.Errorf("CreatedAt %v and UpdatedAt %v should be stamped together", got.CreatedAt, got.UpdatedAt)
	}
}

func TestStoreNaturalOrderIsNewestFirst(t *testing.T) {
	s := newTestStore()
	first := s.Add(RecordInput{Description: "First", Amount: "1", Category: "Misc", Date: "2024-05-01"})
	second := s.Add(RecordInput{Description: "Second", Amount: "2", Category: "Misc", Date: "2024-05-02"})

	records := s.Records()
	if len(records) != 2 {
		t.Fatalf("Len = %d, want 2", len(records))
	}
	if records[0].ID != second.ID || records[1].ID != first.ID {
		t.Errorf("natural order = %v, want newest created first", ids(records))
	}
}

func TestStoreIDs(t *testing.T) {
	s := newTestStore()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		rec := s.Add(RecordInput{Description: "x", Amount: "1", Category: "Misc", Date: "2024-05-01"})
		if !strings.HasPrefix(rec.ID, "txn_") {
			t.Fatalf("id %q should carry the txn_ prefix", rec.ID)
		}
		if seen[rec.ID] {
			t.Fatalf("duplicate id generated: %q", rec.ID)
		}
		seen[rec.ID] = true
	}
}

func TestStoreEdit(t *testing.T) {
	s := newTestStore()
	clock := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	rec := s.Add(RecordInput{Description: "Coffee", Amount: "3.50", Category: "Food", Date: "2024-05-01"})

	t.Run("empty update refreshes only updatedAt", func(t *testing.T) {
		clock = clock.Add(time.Hour)
		s.Edit(rec.ID, RecordInput{})

		got, _ := s.Find(rec.ID)
		if got.Description != rec.Description || !got.Amount.Equal(rec.Amount) ||
			got.Category != rec.Category || got.Date != rec.Date || !got.CreatedAt.Equal(rec.CreatedAt) {
			t.Errorf("empty update changed a payload field: %+v", got)
		}
		if !got.UpdatedAt.After(rec.UpdatedAt) {
			t.Errorf("UpdatedAt = %v, want refreshed after %v", got.UpdatedAt, rec.UpdatedAt)
		}
	})

	t.Run("partial update overwrites present fields", func(t *testing.T) {
		s.Edit(rec.ID, RecordInput{Amount: "4.25", Category: "Drinks"})

		got, _ := s.Find(rec.ID)
		if !got.Amount.Equal(A(4.25)) {
			t.Errorf("Amount = %s, want 4.25", got.Amount)
		}
		if got.Category != "Drinks" {
			t.Errorf("Category = %q, want Drinks", got.Category)
		}
		if got.Description != "Coffee" {
			t.Errorf("Description should be untouched, got %q", got.Description)
		}
	})

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		before := s.Records()
		s.Edit("txn_missing", RecordInput{Description: "Ghost"})
		after := s.Records()
		if len(before) != len(after) {
			t.Error("editing an unknown id changed the collection")
		}
	})
}

func TestStoreDelete(t *testing.T) {
	blob := NewMemStore()
	s := OpenStore(blob)
	rec := s.Add(RecordInput{Description: "Coffee", Amount: "3.50", Category: "Food", Date: "2024-05-01"})

	t.Run("unknown id leaves collection unchanged", func(t *testing.T) {
		s.Delete("txn_missing")
		if s.Len() != 1 {
			t.Errorf("Len = %d, want 1", s.Len())
		}
	})

	t.Run("removes the record and persists", func(t *testing.T) {
		s.Delete(rec.ID)
		if s.Len() != 0 {
			t.Errorf("Len = %d, want 0", s.Len())
		}
		if _, ok := s.Find(rec.ID); ok {
			t.Error("deleted record still found")
		}
		// A fresh store over the same blob must agree.
		if got := OpenStore(blob).Len(); got != 0 {
			t.Errorf("persisted Len = %d, want 0", got)
		}
	})
}

func TestStoreObserver(t *testing.T) {
	s := newTestStore()
	obs := &countingObserver{}
	s.SetObserver(obs)

	rec := s.Add(RecordInput{Description: "Coffee", Amount: "3.50", Category: "Food", Date: "2024-05-01"})
	s.Edit(rec.ID, RecordInput{Amount: "4"})
	s.Delete(rec.ID)

	if obs.changes != 3 {
		t.Errorf("observer notified %d times, want 3", obs.changes)
	}
}

func TestStoreSettings(t *testing.T) {
	blob := NewMemStore()
	s := OpenStore(blob)

	if got := s.Settings(); got.DisplayCurrency != "USD" || !got.Budget.Equal(A(200)) {
		t.Fatalf("default settings = %+v, want USD and budget 200", got)
	}

	s.UpdateSetting("currency", "RWF")
	s.UpdateSetting("cap", "350")
	s.UpdateSetting("mystery", "ignored")

	if got := s.Settings(); got.DisplayCurrency != "RWF" || !got.Budget.Equal(A(350)) {
		t.Errorf("settings = %+v, want RWF and budget 350", got)
	}

	// Each setting persists alone and survives a reopen.
	reopened := OpenStore(blob)
	if got := reopened.Settings(); got.DisplayCurrency != "RWF" || !got.Budget.Equal(A(350)) {
		t.Errorf("reopened settings = %+v, want RWF and budget 350", got)
	}
}

func TestUpdateSettingRejectsNonPositiveCap(t *testing.T) {
	s := newTestStore()
	s.UpdateSetting("cap", "350")

	for _, bad := range []string{"-10", "0", "abc", ""} {
		s.UpdateSetting("cap", bad)
		if got := s.Settings().Budget; !got.Equal(A(350)) {
			t.Errorf("cap %q changed the budget to %s, want 350.00 kept", bad, got)
		}
	}
}

func TestOpenStoreRecoversFromCorruption(t *testing.T) {
	blob := NewMemStore()
	blob.Set(recordsKey, []byte("{not json"))

	s := OpenStore(blob)
	if s.Len() != 0 {
		t.Errorf("corrupt blob should load as an empty collection, got %d records", s.Len())
	}

	// The store remains usable after recovery.
	s.Add(RecordInput{Description: "Coffee", Amount: "3.50", Category: "Food", Date: "2024-05-01"})
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	blob := NewMemStore()
	s := OpenStore(blob)
	rec := s.Add(RecordInput{Description: "Coffee", Amount: "3.50", Category: "Food", Date: "2024-05-01"})

	reopened := OpenStore(blob)
	got, ok := reopened.Find(rec.ID)
	if !ok {
		t.Fatal("record not found after reopen")
	}
	if got.Description != "Coffee" || !got.Amount.Equal(A(3.5)) || got.Category != "Food" {
		t.Errorf("reopened record = %+v", got)
	}
}
