package referenceService

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// Store keeps the reference table in memory, keyed by part number, and
// mirrors every change to the backing CSV file. All mutation goes through the
// store mutex; edits are last-write-wins.
type Store struct {
	mu       sync.Mutex
	filePath string
	parts    map[string]PartReference
	order    []string
}

// OpenStore loads the reference file at filePath, creating an empty file with
// the expected header when it does not exist yet.
func OpenStore(filePath string) (*Store, error) {
	s := &Store{
		filePath: filePath,
		parts:    map[string]PartReference{},
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
			return nil, fmt.Errorf("unable to create reference directory: %w", err)
		}
		if err := s.save(); err != nil {
			return nil, err
		}
		return s, nil
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Get returns the stored reference for partNumber, or the default record
// when the part is unknown. Never fails.
func (s *Store) Get(partNumber string) PartReference {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ref, ok := s.parts[partNumber]; ok {
		return ref
	}
	return DefaultReference(partNumber)
}

// Has reports whether partNumber has a stored record (Get cannot tell a
// default apart from a stored part that happens to match the defaults).
func (s *Store) Has(partNumber string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.parts[partNumber]
	return ok
}

// All returns the stored references in file/insertion order.
func (s *Store) All() []PartReference {
	s.mu.Lock()
	defer s.mu.Unlock()

	refs := make([]PartReference, 0, len(s.order))
	for _, pn := range s.order {
		refs = append(refs, s.parts[pn])
	}
	return refs
}

// Upsert inserts or replaces the record for rec.PartNumber and persists the
// table. New parts append to the existing order.
func (s *Store) Upsert(rec PartReference) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.parts[rec.PartNumber]; !ok {
		s.order = append(s.order, rec.PartNumber)
	}
	s.parts[rec.PartNumber] = rec

	return s.save()
}

// Delete removes the record for partNumber. It reports false when the part
// was not stored.
func (s *Store) Delete(partNumber string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.parts[partNumber]; !ok {
		return false, nil
	}
	delete(s.parts, partNumber)
	for i, pn := range s.order {
		if pn == partNumber {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return true, s.save()
}

func (s *Store) load() error {
	file, err := os.Open(s.filePath)
	if err != nil {
		return fmt.Errorf("unable to open reference file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("unable to read reference file: %w", err)
	}

	if len(rows) == 0 {
		return nil
	}

	col := map[string]int{}
	for i, h := range rows[0] {
		col[h] = i
	}
	if _, ok := col["part_number"]; !ok {
		return fmt.Errorf("reference file %s has no part_number column", s.filePath)
	}

	cell := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	for _, row := range rows[1:] {
		pn := cell(row, "part_number")
		if pn == "" {
			continue
		}

		stdPack, _ := strconv.Atoi(cell(row, "std_pack"))
		cycleTime, _ := strconv.ParseFloat(cell(row, "cycle_time"), 64)

		rec := PartReference{
			PartNumber:  pn,
			StdPack:     stdPack,
			CycleTime:   cycleTime,
			Color:       cell(row, "color"),
			Description: cell(row, "description"),
			Machine:     cell(row, "machine"),
			Location:    cell(row, "location"),
			Notes:       cell(row, "notes"),
		}

		if _, ok := s.parts[pn]; !ok {
			s.order = append(s.order, pn)
		}
		s.parts[pn] = rec
	}

	return nil
}

// save writes the whole table back to the CSV file. Callers hold the mutex.
func (s *Store) save() error {
	file, err := os.Create(s.filePath)
	if err != nil {
		return fmt.Errorf("unable to write reference file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(CsvHeader); err != nil {
		return fmt.Errorf("unable to write reference header: %w", err)
	}

	for _, pn := range s.order {
		rec := s.parts[pn]
		row := []string{
			rec.PartNumber,
			strconv.Itoa(rec.StdPack),
			strconv.FormatFloat(rec.CycleTime, 'f', -1, 64),
			rec.Color,
			rec.Description,
			rec.Machine,
			rec.Location,
			rec.Notes,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("unable to write reference row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
