package memory

import (
	"context"
	"sort"
	"time"

	"novellia-pets/internal/domain/dashboard"
	"novellia-pets/internal/domain/records"
)

type dashboardRepo struct {
	s *Store
}

func (r *dashboardRepo) CountPets(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.pets), nil
}

func (r *dashboardRepo) CountPetsByType(ctx context.Context) ([]dashboard.AnimalTypeCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := map[string]int{}
	for _, p := range r.s.pets {
		counts[p.AnimalType]++
	}

	out := make([]dashboard.AnimalTypeCount, 0, len(counts))
	for t, n := range counts {
		out = append(out, dashboard.AnimalTypeCount{AnimalType: t, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].AnimalType < out[j].AnimalType
	})
	return out, nil
}

func (r *dashboardRepo) CountRecords(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.records), nil
}

func (r *dashboardRepo) CountRecordsByType(ctx context.Context) ([]dashboard.RecordTypeCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := map[string]int{}
	for _, rec := range r.s.records {
		counts[string(rec.RecordType)]++
	}

	out := make([]dashboard.RecordTypeCount, 0, len(counts))
	for t, n := range counts {
		out = append(out, dashboard.RecordTypeCount{RecordType: t, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].RecordType < out[j].RecordType
	})
	return out, nil
}

func (r *dashboardRepo) UpcomingVaccines(ctx context.Context, from, to time.Time, limit int) ([]dashboard.PetRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]dashboard.PetRecord, 0)
	for _, rec := range r.s.records {
		if rec.RecordType != records.RecordTypeVaccine || rec.Date == nil {
			continue
		}
		if rec.Date.Before(from) || rec.Date.After(to) {
			continue
		}
		out = append(out, r.joined(rec))
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Record.Date.Equal(*out[j].Record.Date) {
			return out[i].Record.Date.Before(*out[j].Record.Date)
		}
		return out[i].Record.ID < out[j].Record.ID
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *dashboardRepo) RecentRecords(ctx context.Context, limit int) ([]dashboard.PetRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]dashboard.PetRecord, 0, len(r.s.records))
	for _, rec := range r.s.records {
		out = append(out, r.joined(rec))
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Record.CreatedAt.Equal(out[j].Record.CreatedAt) {
			return out[i].Record.CreatedAt.After(out[j].Record.CreatedAt)
		}
		return out[i].Record.ID > out[j].Record.ID
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// joined attaches the owning pet's name and type; callers hold the lock.
func (r *dashboardRepo) joined(rec records.MedicalRecord) dashboard.PetRecord {
	pr := dashboard.PetRecord{Record: rec}
	if p, ok := r.s.pets[rec.PetID]; ok {
		pr.PetName = p.Name
		pr.AnimalType = p.AnimalType
	}
	return pr
}
