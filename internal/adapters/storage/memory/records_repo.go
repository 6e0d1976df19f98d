package memory

import (
	"context"
	"sort"

	"novellia-pets/internal/domain/records"
)

type recordRepo struct {
	s *Store
}

func (r *recordRepo) Create(ctx context.Context, rec records.MedicalRecord) (records.MedicalRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextRecordID++
	rec.ID = r.s.nextRecordID
	r.s.records[rec.ID] = rec
	return rec, nil
}

func (r *recordRepo) GetByID(ctx context.Context, id int64) (records.MedicalRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.records[id]
	if !ok {
		return records.MedicalRecord{}, records.ErrNotFound
	}
	return rec, nil
}

func (r *recordRepo) ListByPet(ctx context.Context, petID int64) ([]records.MedicalRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]records.MedicalRecord, 0)
	for _, rec := range r.s.records {
		if rec.PetID == petID {
			out = append(out, rec)
		}
	}

	// date DESC with dateless records last, then created_at DESC, id as a
	// final tie-break - mirrors the SQL ORDER BY.
	sort.Slice(out, func(i, j int) bool {
		di, dj := out[i].Date, out[j].Date
		switch {
		case di != nil && dj != nil && !di.Equal(*dj):
			return di.After(*dj)
		case di != nil && dj == nil:
			return true
		case di == nil && dj != nil:
			return false
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})

	return out, nil
}

func (r *recordRepo) Update(ctx context.Context, rec records.MedicalRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.records[rec.ID]; !ok {
		return records.ErrNotFound
	}
	r.s.records[rec.ID] = rec
	return nil
}

func (r *recordRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.records[id]; !ok {
		return records.ErrNotFound
	}
	delete(r.s.records, id)
	return nil
}
