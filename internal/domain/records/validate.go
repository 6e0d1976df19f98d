package records

import (
	"novellia-pets/internal/validation"
)

const (
	msgRecordType      = `Record type must be "vaccine" or "allergy"`
	msgSeverity        = `Severity must be "mild" or "severe"`
	msgDateFormat      = "Invalid date format. Use YYYY-MM-DD"
	msgVaccineNeedDate = "Vaccine records require a date"
	msgAllergyNeedSev  = "Allergy records require severity (mild or severe)"
)

type createRecordRequest struct {
	RecordType string `json:"record_type"`
	Name       string `json:"name"`
	Date       string `json:"date,omitempty"`      // YYYY-MM-DD, optional
	Reactions  string `json:"reactions,omitempty"` // free text, optional
	Severity   string `json:"severity,omitempty"`  // mild | severe, optional
}

type updateRecordRequest struct {
	// Pointers so an omitted field can be told apart from an explicit empty
	// string ("" on date/reactions clears the stored value).
	RecordType *string `json:"record_type"`
	Name       *string `json:"name"`
	Date       *string `json:"date"`
	Reactions  *string `json:"reactions"`
	Severity   *string `json:"severity"`
}

// validate runs every check in one pass: field-level rules first, then the
// cross-field conditional requiredness. Empty-string optional fields are
// normalized to "no value" before the enum and cross-field checks, matching
// the falsy semantics of the API contract.
func (r createRecordRequest) validate() (CreateInput, validation.Errors) {
	var errs validation.Errors

	rt := RecordType(r.RecordType)
	if rt != RecordTypeVaccine && rt != RecordTypeAllergy {
		errs.Add("record_type", msgRecordType)
	}

	switch {
	case len(r.Name) == 0:
		errs.Add("name", "Name is required")
	case len(r.Name) > 255:
		errs.Add("name", "Name is too long")
	}

	in := CreateInput{RecordType: rt, Name: r.Name}

	if r.Date != "" {
		if t, ok := validation.ParseDate(r.Date); ok {
			in.Date = &t
		} else {
			errs.Add("date", msgDateFormat)
		}
	}

	sev := Severity(r.Severity)
	switch sev {
	case "":
		// stays absent
	case SeverityMild, SeveritySevere:
		in.Severity = &sev
	default:
		errs.Add("severity", msgSeverity)
	}

	if r.Reactions != "" {
		reactions := r.Reactions
		in.Reactions = &reactions
	}

	// Conditional requiredness by record type.
	if rt == RecordTypeVaccine && r.Date == "" {
		errs.Add("date", msgVaccineNeedDate)
	}
	if rt == RecordTypeAllergy && sev == "" {
		errs.Add("severity", msgAllergyNeedSev)
	}

	if !errs.Empty() {
		return CreateInput{}, errs
	}
	return in, nil
}

// validate checks only the supplied fields. The cross-field rules are not
// re-applied on update: an update may legally leave a vaccine's date alone by
// omitting the field, and "" on date/reactions clears the stored value.
func (r updateRecordRequest) validate() (UpdateInput, validation.Errors) {
	var errs validation.Errors
	var in UpdateInput

	if r.RecordType != nil {
		rt := RecordType(*r.RecordType)
		if rt != RecordTypeVaccine && rt != RecordTypeAllergy {
			errs.Add("record_type", msgRecordType)
		} else {
			in.RecordType = &rt
		}
	}

	if r.Name != nil {
		switch {
		case len(*r.Name) == 0:
			errs.Add("name", "Name is required")
		case len(*r.Name) > 255:
			errs.Add("name", "Name is too long")
		default:
			in.Name = r.Name
		}
	}

	if r.Date != nil {
		in.Date.Present = true
		if *r.Date != "" {
			if t, ok := validation.ParseDate(*r.Date); ok {
				in.Date.Value = &t
			} else {
				errs.Add("date", msgDateFormat)
			}
		}
	}

	if r.Reactions != nil {
		in.Reactions.Present = true
		if *r.Reactions != "" {
			reactions := *r.Reactions
			in.Reactions.Value = &reactions
		}
	}

	if r.Severity != nil {
		sev := Severity(*r.Severity)
		if sev != SeverityMild && sev != SeveritySevere {
			errs.Add("severity", msgSeverity)
		} else {
			in.Severity = &sev
		}
	}

	if !errs.Empty() {
		return UpdateInput{}, errs
	}
	return in, nil
}
