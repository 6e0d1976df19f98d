package pets

import "time"

// AnimalType is freeform at the storage level (VARCHAR(100)); the UI offers
// this closed set.
const (
	AnimalTypeDog    = "dog"
	AnimalTypeCat    = "cat"
	AnimalTypeBird   = "bird"
	AnimalTypeRabbit = "rabbit"
	AnimalTypeOther  = "other"
)

// Pet represents one animal and its owner metadata.
type Pet struct {
	ID int64

	Name       string
	AnimalType string
	OwnerName  string

	DateOfBirth time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
