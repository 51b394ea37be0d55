package referenceService

import "strings"

// Validate checks an edit before it may reach the store.
func Validate(rec PartReference) *ValidationError {
	if strings.TrimSpace(rec.PartNumber) == "" {
		return &ValidationError{Field: "part_number", Reason: "must not be blank"}
	}
	if rec.StdPack <= 0 {
		return &ValidationError{Field: "std_pack", Reason: "must be greater than zero"}
	}
	if rec.CycleTime < 0 {
		return &ValidationError{Field: "cycle_time", Reason: "must not be negative"}
	}
	return nil
}

// ApplyEdit validates rec and, on success, upserts it into the store.
// Invalid records are never written.
func ApplyEdit(store *Store, rec PartReference) error {
	if err := Validate(rec); err != nil {
		return err
	}
	return store.Upsert(rec)
}
