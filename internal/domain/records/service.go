package records

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("medical record not found")

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
	RecordType RecordType
	Name       string
	Date       *time.Time
	Reactions  *string
	Severity   *Severity
}

// Create inserts a record for petID. Parent existence is checked at the
// handler layer before the payload is even validated.
func (s *Service) Create(ctx context.Context, petID int64, in CreateInput) (MedicalRecord, error) {
	now := s.now()
	rec := MedicalRecord{
		PetID:      petID,
		RecordType: in.RecordType,
		Name:       in.Name,
		Date:       in.Date,
		Reactions:  in.Reactions,
		Severity:   in.Severity,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return s.repo.Create(ctx, rec)
}

func (s *Service) GetByID(ctx context.Context, id int64) (MedicalRecord, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPet(ctx context.Context, petID int64) ([]MedicalRecord, error) {
	return s.repo.ListByPet(ctx, petID)
}

// DatePatch and TextPatch wrap optional update fields so "absent from the
// request" can be told apart from "present but cleared" (Present with a nil
// Value clears the stored value).
type DatePatch struct {
	Present bool
	Value   *time.Time
}

type TextPatch struct {
	Present bool
	Value   *string
}

// UpdateInput carries merge-by-presence update fields: nil / non-Present
// fields keep their stored values.
type UpdateInput struct {
	RecordType *RecordType
	Name       *string
	Date       DatePatch
	Reactions  TextPatch
	Severity   *Severity
}

// Update merges in into the stored record. Unlike pet updates, each field is
// overwritten only when the caller explicitly supplied it.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (MedicalRecord, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return MedicalRecord{}, err
	}

	if in.RecordType != nil {
		rec.RecordType = *in.RecordType
	}
	if in.Name != nil {
		rec.Name = *in.Name
	}
	if in.Date.Present {
		rec.Date = in.Date.Value
	}
	if in.Reactions.Present {
		rec.Reactions = in.Reactions.Value
	}
	if in.Severity != nil {
		rec.Severity = in.Severity
	}
	rec.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, rec); err != nil {
		return MedicalRecord{}, err
	}
	return rec, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
