package dashboard

import (
	"context"
	"time"
)

const (
	// upcomingWindow is the symmetric window around now for "upcoming"
	// vaccines: 30 days back catches recently missed ones.
	upcomingWindow = 30 * 24 * time.Hour
	listCap        = 10
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Stats assembles the read-only dashboard rollups. Pure projection, nothing
// here mutates state.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	var out Stats
	var err error

	if out.TotalPets, err = s.repo.CountPets(ctx); err != nil {
		return Stats{}, err
	}
	if out.PetsByType, err = s.repo.CountPetsByType(ctx); err != nil {
		return Stats{}, err
	}
	if out.TotalRecords, err = s.repo.CountRecords(ctx); err != nil {
		return Stats{}, err
	}
	if out.RecordsByType, err = s.repo.CountRecordsByType(ctx); err != nil {
		return Stats{}, err
	}

	now := s.now()
	out.UpcomingVaccines, err = s.repo.UpcomingVaccines(ctx, now.Add(-upcomingWindow), now.Add(upcomingWindow), listCap)
	if err != nil {
		return Stats{}, err
	}

	if out.RecentRecords, err = s.repo.RecentRecords(ctx, listCap); err != nil {
		return Stats{}, err
	}

	return out, nil
}
