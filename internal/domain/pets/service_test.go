package pets

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID   map[int64]Pet
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) (Pet, error) {
	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	return p, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context, filter ListFilter) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.AnimalType != "" && p.AnimalType != filter.AnimalType {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *testRepo) ExistsByNameAndOwner(ctx context.Context, name, ownerName string) (bool, error) {
	for _, p := range r.byID {
		if p.Name == name && p.OwnerName == ownerName {
			return true, nil
		}
	}
	return false, nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
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

func newTestService(now time.Time) (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo)
	svc.now = func() time.Time { return now }
	return svc, repo
}

func TestService_Create_AssignsIDAndTimestamps(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)

	p, err := svc.Create(context.Background(), CreateInput{
		Name:        "Rex",
		AnimalType:  "dog",
		OwnerName:   "Alice",
		DateOfBirth: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, now, p.CreatedAt)
	assert.Equal(t, now, p.UpdatedAt)
}

func TestService_Create_RejectsDuplicateNameAndOwner(t *testing.T) {
	svc, _ := newTestService(time.Now())

	_, err := svc.Create(context.Background(), CreateInput{
		Name: "Rex", AnimalType: "dog", OwnerName: "Alice",
		DateOfBirth: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)

	// Different animal type and birth date must not matter.
	_, err = svc.Create(context.Background(), CreateInput{
		Name: "Rex", AnimalType: "cat", OwnerName: "Alice",
		DateOfBirth: time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrDuplicate)

	// Same name, different owner is fine.
	_, err = svc.Create(context.Background(), CreateInput{
		Name: "Rex", AnimalType: "dog", OwnerName: "Bob",
		DateOfBirth: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
}

func TestService_Create_StoresSubmittedValuesVerbatim(t *testing.T) {
	svc, repo := newTestService(time.Now())

	// A whitespace-only name passes the length check and must be stored
	// exactly as submitted, never collapsed to "".
	p, err := svc.Create(context.Background(), CreateInput{
		Name: "   ", AnimalType: "dog", OwnerName: "Alice",
		DateOfBirth: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	assert.Equal(t, "   ", p.Name)
	assert.Equal(t, "   ", repo.byID[p.ID].Name)
}

func TestService_Create_UniquenessIsExactMatch(t *testing.T) {
	svc, _ := newTestService(time.Now())

	_, err := svc.Create(context.Background(), CreateInput{
		Name: "Rex", AnimalType: "dog", OwnerName: "Alice",
		DateOfBirth: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)

	// " Rex " is a different string from "Rex"; exact-match uniqueness
	// accepts it.
	p, err := svc.Create(context.Background(), CreateInput{
		Name: " Rex ", AnimalType: "dog", OwnerName: "Alice",
		DateOfBirth: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	assert.Equal(t, " Rex ", p.Name)
}

func TestService_Update_KeepsOmittedFields(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestService(created)

	p, err := svc.Create(context.Background(), CreateInput{
		Name: "Rex", AnimalType: "dog", OwnerName: "Alice",
		DateOfBirth: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)

	updated := created.Add(time.Hour)
	svc.now = func() time.Time { return updated }

	name := "Rexy"
	got, err := svc.Update(context.Background(), p.ID, UpdateInput{Name: &name})
	assert.NoError(t, err)

	assert.Equal(t, "Rexy", got.Name)
	assert.Equal(t, "dog", got.AnimalType)
	assert.Equal(t, "Alice", got.OwnerName)
	assert.Equal(t, p.DateOfBirth, got.DateOfBirth)
	assert.Equal(t, created, got.CreatedAt)
	assert.Equal(t, updated, got.UpdatedAt)
}

func TestService_Update_NotFound(t *testing.T) {
	svc, _ := newTestService(time.Now())

	name := "Rex"
	_, err := svc.Update(context.Background(), 99, UpdateInput{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete_NotFound(t *testing.T) {
	svc, _ := newTestService(time.Now())
	assert.ErrorIs(t, svc.Delete(context.Background(), 42), ErrNotFound)
}
