package records

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateRecordValidate_VaccineOK(t *testing.T) {
	req := createRecordRequest{
		RecordType: "vaccine",
		Name:       "Rabies",
		Date:       "2024-03-01",
	}

	in, errs := req.validate()
	assert.True(t, errs.Empty())
	assert.Equal(t, RecordTypeVaccine, in.RecordType)
	assert.Equal(t, "Rabies", in.Name)
	if assert.NotNil(t, in.Date) {
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *in.Date)
	}
	assert.Nil(t, in.Reactions)
	assert.Nil(t, in.Severity)
}

func TestCreateRecordValidate_VaccineRequiresDate(t *testing.T) {
	req := createRecordRequest{RecordType: "vaccine", Name: "Rabies", Date: ""}
	_, errs := req.validate()

	if assert.Len(t, errs, 1) {
		assert.Equal(t, []string{"date"}, errs[0].Path)
		assert.Equal(t, "Vaccine records require a date", errs[0].Message)
	}
}

func TestCreateRecordValidate_WhitespaceDateFailsFormat(t *testing.T) {
	// Only the literal empty string counts as absent; a whitespace-only date
	// is a present value and must fail the format check, not the
	// conditional-requiredness rule.
	req := createRecordRequest{RecordType: "vaccine", Name: "Rabies", Date: "   "}
	_, errs := req.validate()

	if assert.Len(t, errs, 1) {
		assert.Equal(t, []string{"date"}, errs[0].Path)
		assert.Equal(t, "Invalid date format. Use YYYY-MM-DD", errs[0].Message)
	}
}

func TestCreateRecordValidate_AllergyRequiresSeverity(t *testing.T) {
	req := createRecordRequest{RecordType: "allergy", Name: "Pollen"}
	_, errs := req.validate()

	if assert.Len(t, errs, 1) {
		assert.Equal(t, []string{"severity"}, errs[0].Path)
		assert.Equal(t, "Allergy records require severity (mild or severe)", errs[0].Message)
	}
}

func TestCreateRecordValidate_AllergyOK(t *testing.T) {
	req := createRecordRequest{
		RecordType: "allergy",
		Name:       "Pollen",
		Severity:   "mild",
		Reactions:  "sneezing",
	}

	in, errs := req.validate()
	assert.True(t, errs.Empty())
	assert.Nil(t, in.Date) // date is optional for allergies
	assert.Equal(t, SeverityMild, *in.Severity)
	assert.Equal(t, "sneezing", *in.Reactions)
}

func TestCreateRecordValidate_RecordTypeEnum(t *testing.T) {
	for _, rt := range []string{"", "shot", "VACCINE"} {
		req := createRecordRequest{RecordType: rt, Name: "Rabies", Date: "2024-03-01"}
		_, errs := req.validate()
		if assert.Len(t, errs, 1, "record_type %q", rt) {
			assert.Equal(t, `Record type must be "vaccine" or "allergy"`, errs[0].Message)
		}
	}
}

func TestCreateRecordValidate_SeverityEnum(t *testing.T) {
	// " mild" is checked as submitted, not normalized into the enum.
	for _, sev := range []string{"fatal", " mild"} {
		req := createRecordRequest{RecordType: "allergy", Name: "Pollen", Severity: sev}
		_, errs := req.validate()
		if assert.Len(t, errs, 1, "severity %q", sev) {
			assert.Equal(t, []string{"severity"}, errs[0].Path)
			assert.Equal(t, `Severity must be "mild" or "severe"`, errs[0].Message)
		}
	}
}

func TestCreateRecordValidate_DateFormat(t *testing.T) {
	req := createRecordRequest{RecordType: "allergy", Name: "Pollen", Severity: "mild", Date: "03/01/2024"}
	_, errs := req.validate()

	if assert.Len(t, errs, 1) {
		assert.Equal(t, "Invalid date format. Use YYYY-MM-DD", errs[0].Message)
	}
}

func TestCreateRecordValidate_CollectsEveryError(t *testing.T) {
	// Unknown type plus empty name: both surface in one pass.
	_, errs := createRecordRequest{RecordType: "shot"}.validate()

	assert.Len(t, errs, 2)
	paths := []string{errs[0].Path[0], errs[1].Path[0]}
	assert.Contains(t, paths, "record_type")
	assert.Contains(t, paths, "name")
}

func TestCreateRecordValidate_EmptySeverityOnVaccineIgnored(t *testing.T) {
	// Empty-string optional fields normalize to "no value" before enum checks.
	req := createRecordRequest{RecordType: "vaccine", Name: "Rabies", Date: "2024-03-01", Severity: "", Reactions: ""}
	in, errs := req.validate()

	assert.True(t, errs.Empty())
	assert.Nil(t, in.Severity)
	assert.Nil(t, in.Reactions)
}

func TestUpdateRecordValidate_EmptyDateClears(t *testing.T) {
	empty := ""
	in, errs := updateRecordRequest{Date: &empty}.validate()

	assert.True(t, errs.Empty())
	assert.True(t, in.Date.Present)
	assert.Nil(t, in.Date.Value)
}

func TestUpdateRecordValidate_NoCrossFieldRecheck(t *testing.T) {
	// Changing only the name of a vaccine must not demand a date.
	name := "Rabies booster"
	in, errs := updateRecordRequest{Name: &name}.validate()

	assert.True(t, errs.Empty())
	assert.False(t, in.Date.Present)
	assert.False(t, in.Reactions.Present)
}

func TestUpdateRecordValidate_SuppliedValuesStillChecked(t *testing.T) {
	badSev := ""
	badDate := "2024-3-1"
	badType := "shot"
	_, errs := updateRecordRequest{Severity: &badSev, Date: &badDate, RecordType: &badType}.validate()

	assert.Len(t, errs, 3)
}
