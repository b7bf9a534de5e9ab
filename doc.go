// Package fintrace provides the record state engine of a personal finance
// tracker. It is designed to be local-first: all data lives in a small
// key-value blob store on disk, giving users full control over their
// financial records.
//
// The core functionalities include:
//   - Record Store: Creating, editing, and deleting monetary transaction
//     records, keeping newest-first natural order and persisting the whole
//     collection inline with every mutation.
//   - Validation: Two distinct tiers gate mutation, a strict per-field tier
//     for interactive entry and a relaxed structural tier for bulk import.
//   - Search: Dynamic, user-supplied patterns compiled into safe matchers
//     for filtering and highlighting, never failing on malformed input.
//   - View Projection: Sorted, filtered, and aggregated read-only views,
//     budget-threshold classification, and a seven-day spending trend.
//   - Currency Display: Conversion against a fixed rate table for rendering;
//     amounts are always stored in base units.
//   - Import/Export: A plain JSON array interchange format, validated as a
//     whole before any record is merged.
//
// This package serves as the foundational logic for the `ft` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package fintrace
