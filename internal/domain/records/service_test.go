package records

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID   map[int64]MedicalRecord
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]MedicalRecord{}}
}

func (r *testRepo) Create(ctx context.Context, rec MedicalRecord) (MedicalRecord, error) {
	r.nextID++
	rec.ID = r.nextID
	r.byID[rec.ID] = rec
	return rec, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (MedicalRecord, error) {
	rec, ok := r.byID[id]
	if !ok {
		return MedicalRecord{}, ErrNotFound
	}
	return rec, nil
}

func (r *testRepo) ListByPet(ctx context.Context, petID int64) ([]MedicalRecord, error) {
	out := make([]MedicalRecord, 0)
	for _, rec := range r.byID {
		if rec.PetID == petID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, rec MedicalRecord) error {
	if _, ok := r.byID[rec.ID]; !ok {
		return ErrNotFound
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// -------------------------
// Tests
// -------------------------

func seedAllergy(t *testing.T, svc *Service) MedicalRecord {
	t.Helper()

	date := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	reactions := "hives"
	sev := SeveritySevere

	rec, err := svc.Create(context.Background(), 1, CreateInput{
		RecordType: RecordTypeAllergy,
		Name:       "Peanuts",
		Date:       &date,
		Reactions:  &reactions,
		Severity:   &sev,
	})
	assert.NoError(t, err)
	return rec
}

func TestService_Update_MergesByPresence(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewService(newTestRepo())
	svc.now = func() time.Time { return now }

	rec := seedAllergy(t, svc)

	later := now.Add(time.Hour)
	svc.now = func() time.Time { return later }

	itchy := "itchy"
	got, err := svc.Update(context.Background(), rec.ID, UpdateInput{
		Reactions: TextPatch{Present: true, Value: &itchy},
	})
	assert.NoError(t, err)

	// Only reactions changed; everything else kept its stored value.
	assert.Equal(t, "itchy", *got.Reactions)
	assert.Equal(t, rec.RecordType, got.RecordType)
	assert.Equal(t, rec.Name, got.Name)
	assert.Equal(t, rec.Date, got.Date)
	assert.Equal(t, rec.Severity, got.Severity)
	assert.Equal(t, rec.CreatedAt, got.CreatedAt)
	assert.Equal(t, later, got.UpdatedAt)
}

func TestService_Update_ExplicitClearOfDate(t *testing.T) {
	svc := NewService(newTestRepo())
	rec := seedAllergy(t, svc)

	got, err := svc.Update(context.Background(), rec.ID, UpdateInput{
		Date: DatePatch{Present: true, Value: nil},
	})
	assert.NoError(t, err)
	assert.Nil(t, got.Date)
	assert.Equal(t, rec.Reactions, got.Reactions) // untouched
}

func TestService_Update_NotFound(t *testing.T) {
	svc := NewService(newTestRepo())

	name := "x"
	_, err := svc.Update(context.Background(), 7, UpdateInput{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Create_StampsTimestamps(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewService(newTestRepo())
	svc.now = func() time.Time { return now }

	rec := seedAllergy(t, svc)
	assert.Equal(t, int64(1), rec.ID)
	assert.Equal(t, now, rec.CreatedAt)
	assert.Equal(t, now, rec.UpdatedAt)
}

func TestService_Create_StoresNameVerbatim(t *testing.T) {
	svc := NewService(newTestRepo())

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rec, err := svc.Create(context.Background(), 1, CreateInput{
		RecordType: RecordTypeVaccine,
		Name:       " Rabies ",
		Date:       &date,
	})
	assert.NoError(t, err)
	assert.Equal(t, " Rabies ", rec.Name)
}

func TestService_Delete_NotFound(t *testing.T) {
	svc := NewService(newTestRepo())
	assert.ErrorIs(t, svc.Delete(context.Background(), 3), ErrNotFound)
}
