// Package memory is the in-process storage adapter. It backs the service in
// dev mode (no DB configured) and the end-to-end tests. Both tables live in
// one Store behind one mutex so pet deletion can cascade like the database
// foreign key does.
package memory

import (
	"sync"

	"novellia-pets/internal/domain/dashboard"
	"novellia-pets/internal/domain/pets"
	"novellia-pets/internal/domain/records"
)

type Store struct {
	mu sync.RWMutex

	pets    map[int64]pets.Pet
	records map[int64]records.MedicalRecord

	nextPetID    int64
	nextRecordID int64
}

func NewStore() *Store {
	return &Store{
		pets:    make(map[int64]pets.Pet),
		records: make(map[int64]records.MedicalRecord),
	}
}

// Pets returns the pets-repository view over the store.
func (s *Store) Pets() pets.Repository { return &petRepo{s: s} }

// Records returns the medical-records-repository view over the store.
func (s *Store) Records() records.Repository { return &recordRepo{s: s} }

// Dashboard returns the rollup-repository view over the store.
func (s *Store) Dashboard() dashboard.Repository { return &dashboardRepo{s: s} }
