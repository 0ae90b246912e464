package storage

import (
	"max.ks1230/expense-tracker/internal/entity/expense"
)

// Store holds the session's records in insertion order. Records have no
// identity beyond their position; the store is append-only.
type Store struct {
	records []expense.Record
}

func NewStore(records []expense.Record) *Store {
	return &Store{records: records}
}

func (s *Store) Append(rec expense.Record) {
	s.records = append(s.records, rec)
}

// All returns the records in insertion order. Callers must not mutate the
// returned slice.
func (s *Store) All() []expense.Record {
	return s.records
}

func (s *Store) Len() int {
	return len(s.records)
}
