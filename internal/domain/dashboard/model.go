package dashboard

import "novellia-pets/internal/domain/records"

// AnimalTypeCount is one row of the pets-by-type rollup.
type AnimalTypeCount struct {
	AnimalType string
	Count      int
}

// RecordTypeCount is one row of the records-by-type rollup.
type RecordTypeCount struct {
	RecordType string
	Count      int
}

// PetRecord is a medical record joined with its owning pet's name and type,
// used by the upcoming-vaccines and recent-records lists.
type PetRecord struct {
	Record     records.MedicalRecord
	PetName    string
	AnimalType string
}

// Stats is the full dashboard projection over the two tables.
type Stats struct {
	TotalPets     int
	PetsByType    []AnimalTypeCount
	TotalRecords  int
	RecordsByType []RecordTypeCount

	// Vaccine records dated within ±30 days of now, most imminent first.
	UpcomingVaccines []PetRecord
	// The 10 most recently created records of either type.
	RecentRecords []PetRecord
}
