package records

import "time"

// MedicalRecord is one vaccine or allergy entry, always linked to exactly
// one pet. Date is the administration date for vaccines and the optional
// first-observed date for allergies; Reactions and Severity only carry
// meaning for allergies.
type MedicalRecord struct {
	ID    int64
	PetID int64

	RecordType RecordType
	Name       string

	Date      *time.Time
	Reactions *string
	Severity  *Severity

	CreatedAt time.Time
	UpdatedAt time.Time
}
