package records

import "context"

type Repository interface {
	// Create inserts rec and returns it with the storage-assigned id.
	Create(ctx context.Context, rec MedicalRecord) (MedicalRecord, error)
	GetByID(ctx context.Context, id int64) (MedicalRecord, error)
	// ListByPet returns the pet's records ordered by date descending with
	// dateless records last, then by creation time descending.
	ListByPet(ctx context.Context, petID int64) ([]MedicalRecord, error)
	Update(ctx context.Context, rec MedicalRecord) error
	Delete(ctx context.Context, id int64) error
}
