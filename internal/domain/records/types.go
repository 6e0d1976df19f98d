package records

// RecordType distinguishes the two kinds of medical record.
type RecordType string

const (
	RecordTypeVaccine RecordType = "vaccine"
	RecordTypeAllergy RecordType = "allergy"
)

// Severity grades an allergy. The column-level CHECK restricts stored values
// to this enumeration, but nothing at storage level ties it to record_type -
// the vaccine/allergy conditional rules live in the validation layer only.
type Severity string

const (
	SeverityMild   Severity = "mild"
	SeveritySevere Severity = "severe"
)
