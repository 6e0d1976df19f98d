package pets

import (
	"novellia-pets/internal/validation"
)

type createPetRequest struct {
	Name        string `json:"name"`
	AnimalType  string `json:"animal_type"`
	OwnerName   string `json:"owner_name"`
	DateOfBirth string `json:"date_of_birth"` // YYYY-MM-DD
}

type updatePetRequest struct {
	// Pointers so an omitted field can be told apart from an empty one.
	Name        *string `json:"name"`
	AnimalType  *string `json:"animal_type"`
	OwnerName   *string `json:"owner_name"`
	DateOfBirth *string `json:"date_of_birth"`
}

// validate checks every rule in one pass and returns the typed input on success.
func (r createPetRequest) validate() (CreateInput, validation.Errors) {
	var errs validation.Errors

	checkRequiredText(&errs, "name", "Name", r.Name, 255)
	checkRequiredText(&errs, "animal_type", "Animal type", r.AnimalType, 100)
	checkRequiredText(&errs, "owner_name", "Owner name", r.OwnerName, 255)

	dob, ok := validation.ParseDate(r.DateOfBirth)
	if !ok {
		errs.Add("date_of_birth", "Invalid date format. Use YYYY-MM-DD")
	}

	if !errs.Empty() {
		return CreateInput{}, errs
	}

	return CreateInput{
		Name:        r.Name,
		AnimalType:  r.AnimalType,
		OwnerName:   r.OwnerName,
		DateOfBirth: dob,
	}, nil
}

// validate checks only the supplied fields; omitted fields pass through.
func (r updatePetRequest) validate() (UpdateInput, validation.Errors) {
	var errs validation.Errors
	var in UpdateInput

	if r.Name != nil {
		checkRequiredText(&errs, "name", "Name", *r.Name, 255)
		in.Name = r.Name
	}
	if r.AnimalType != nil {
		checkRequiredText(&errs, "animal_type", "Animal type", *r.AnimalType, 100)
		in.AnimalType = r.AnimalType
	}
	if r.OwnerName != nil {
		checkRequiredText(&errs, "owner_name", "Owner name", *r.OwnerName, 255)
		in.OwnerName = r.OwnerName
	}
	if r.DateOfBirth != nil {
		dob, ok := validation.ParseDate(*r.DateOfBirth)
		if !ok {
			errs.Add("date_of_birth", "Invalid date format. Use YYYY-MM-DD")
		} else {
			in.DateOfBirth = &dob
		}
	}

	if !errs.Empty() {
		return UpdateInput{}, errs
	}
	return in, nil
}

func checkRequiredText(errs *validation.Errors, field, label, value string, max int) {
	switch {
	case len(value) == 0:
		errs.Add(field, label+" is required")
	case len(value) > max:
		errs.Add(field, label+" is too long")
	}
}
