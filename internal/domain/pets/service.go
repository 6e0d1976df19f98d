package pets

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("pet not found")
	// ErrDuplicate means a pet with the same (name, owner_name) already exists.
	ErrDuplicate = errors.New("pet already exists for this owner")
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

type CreateInput struct {
	Name        string
	AnimalType  string
	OwnerName   string
	DateOfBirth time.Time
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	// Uniqueness is an exact match on the submitted strings; values are
	// stored exactly as validated, never normalized.
	exists, err := s.repo.ExistsByNameAndOwner(ctx, in.Name, in.OwnerName)
	if err != nil {
		return Pet{}, err
	}
	if exists {
		return Pet{}, ErrDuplicate
	}

	now := s.now()
	p := Pet{
		Name:        in.Name,
		AnimalType:  in.AnimalType,
		OwnerName:   in.OwnerName,
		DateOfBirth: in.DateOfBirth,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return s.repo.Create(ctx, p)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Pet, error) {
	return s.repo.List(ctx, filter)
}

// UpdateInput carries the editable fields of a pet. nil means the caller
// did not supply the field.
type UpdateInput struct {
	Name        *string
	AnimalType  *string
	OwnerName   *string
	DateOfBirth *time.Time
}

// Update replaces all four editable fields in one unconditional write.
// Fields the caller omitted keep the currently stored values; unlike medical
// records there is no per-field clearing, every column is written.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.AnimalType != nil {
		p.AnimalType = *in.AnimalType
	}
	if in.OwnerName != nil {
		p.OwnerName = *in.OwnerName
	}
	if in.DateOfBirth != nil {
		p.DateOfBirth = *in.DateOfBirth
	}
	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Delete removes the pet and, via storage-level cascade, all its medical records.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
