package dashboard

import (
	"context"
	"time"
)

type Repository interface {
	CountPets(ctx context.Context) (int, error)
	// CountPetsByType returns one row per animal_type, highest count first.
	CountPetsByType(ctx context.Context) ([]AnimalTypeCount, error)
	CountRecords(ctx context.Context) (int, error)
	CountRecordsByType(ctx context.Context) ([]RecordTypeCount, error)
	// UpcomingVaccines returns vaccine records dated within [from, to],
	// soonest first, at most limit rows.
	UpcomingVaccines(ctx context.Context, from, to time.Time, limit int) ([]PetRecord, error)
	// RecentRecords returns the limit most recently created records.
	RecentRecords(ctx context.Context, limit int) ([]PetRecord, error)
}
