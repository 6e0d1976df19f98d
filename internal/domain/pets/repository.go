package pets

import "context"

// ListFilter narrows List results. Search is a case-insensitive substring
// match on name; AnimalType is an exact match. Both combine with AND.
type ListFilter struct {
	Search     string
	AnimalType string
}

type Repository interface {
	// Create inserts p and returns it with the storage-assigned id.
	Create(ctx context.Context, p Pet) (Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	// List returns pets matching filter, most recently created first.
	List(ctx context.Context, filter ListFilter) ([]Pet, error)
	ExistsByNameAndOwner(ctx context.Context, name, ownerName string) (bool, error)
	Update(ctx context.Context, p Pet) error
	// Delete removes the pet; the storage layer cascades to its medical records.
	Delete(ctx context.Context, id int64) error
}
