package fintrace

import (
	"encoding/json"
	"fmt"
	"io"
)

// this file handles the bulk import/export format: a plain JSON array of
// records, indented on export so it stays human readable and diffable.

// Import reads a JSON array of record objects from r. Every element must
// pass the structural validation tier; on any violation the entire batch is
// rejected and the collection is left untouched. Accepted records are given
// a fresh id and fresh timestamps (whatever the input carried is ignored)
// and appended, in input order, after the existing records. The whole batch
// persists once.
//
// It returns the number of imported records.
func (s *Store) Import(r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("could not read import payload: %w", err)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return 0, fmt.Errorf("import payload must be a JSON array: %w", err)
	}

	// Validate the full batch before merging anything.
	for i, raw := range elements {
		var obj map[string]any
		if err := json.Unmarshal(raw, &obj); err != nil {
			return 0, fmt.Errorf("import element %d is not an object: %w", i, err)
		}
		if !ValidateRecordStructure(obj) {
			return 0, fmt.Errorf("import element %d has an invalid structure", i)
		}
	}

	now := s.now()
	imported := make([]Record, 0, len(elements))
	for i, raw := range elements {
		// Only the payload fields are read back; any supplied id or
		// timestamps are discarded and re-stamped below.
		var j struct {
			Description string `json:"description"`
			Amount      Amount `json:"amount"`
			Category    string `json:"category"`
			Date        Date   `json:"date"`
		}
		if err := json.Unmarshal(raw, &j); err != nil {
			return 0, fmt.Errorf("could not decode import element %d: %w", i, err)
		}
		imported = append(imported, Record{
			ID:          s.newID(),
			Description: j.Description,
			Amount:      j.Amount,
			Category:    j.Category,
			Date:        j.Date,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	s.appendImported(imported)
	return len(imported), nil
}

// Export writes the full collection to w as indented JSON.
func Export(w io.Writer, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("could not serialize records: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("could not write export: %w", err)
	}
	return nil
}

// ExportFileName returns the default export file name for a given day.
func ExportFileName(on Date) string {
	return fmt.Sprintf("fintrace_export_%s.json", on)
}
