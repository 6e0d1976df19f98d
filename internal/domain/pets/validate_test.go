package pets

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreatePetRequestValidate_OK(t *testing.T) {
	req := createPetRequest{
		Name:        "Rex",
		AnimalType:  "dog",
		OwnerName:   "Alice",
		DateOfBirth: "2020-01-01",
	}

	in, errs := req.validate()
	assert.True(t, errs.Empty())
	assert.Equal(t, "Rex", in.Name)
	assert.Equal(t, "dog", in.AnimalType)
	assert.Equal(t, "Alice", in.OwnerName)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), in.DateOfBirth)
}

func TestCreatePetRequestValidate_CollectsEveryError(t *testing.T) {
	_, errs := createPetRequest{}.validate()

	assert.Len(t, errs, 4)

	messages := map[string]string{}
	for _, fe := range errs {
		messages[fe.Path[0]] = fe.Message
	}
	assert.Equal(t, "Name is required", messages["name"])
	assert.Equal(t, "Animal type is required", messages["animal_type"])
	assert.Equal(t, "Owner name is required", messages["owner_name"])
	assert.Equal(t, "Invalid date format. Use YYYY-MM-DD", messages["date_of_birth"])
}

func TestCreatePetRequestValidate_LengthLimits(t *testing.T) {
	req := createPetRequest{
		Name:        strings.Repeat("x", 256),
		AnimalType:  strings.Repeat("y", 101),
		OwnerName:   strings.Repeat("z", 256),
		DateOfBirth: "2020-01-01",
	}

	_, errs := req.validate()
	assert.Len(t, errs, 3)
	for _, fe := range errs {
		assert.Contains(t, fe.Message, "is too long")
	}
}

func TestCreatePetRequestValidate_DateFormat(t *testing.T) {
	for _, bad := range []string{"", "01-01-2020", "2020/01/01", "2020-1-1", "2020-13-40"} {
		req := createPetRequest{Name: "Rex", AnimalType: "dog", OwnerName: "Alice", DateOfBirth: bad}
		_, errs := req.validate()
		if assert.Len(t, errs, 1, "date %q", bad) {
			assert.Equal(t, []string{"date_of_birth"}, errs[0].Path)
			assert.Equal(t, "Invalid date format. Use YYYY-MM-DD", errs[0].Message)
		}
	}
}

func TestUpdatePetRequestValidate_OnlySuppliedFieldsChecked(t *testing.T) {
	name := "Milo"
	in, errs := updatePetRequest{Name: &name}.validate()

	assert.True(t, errs.Empty())
	assert.Equal(t, "Milo", *in.Name)
	assert.Nil(t, in.AnimalType)
	assert.Nil(t, in.OwnerName)
	assert.Nil(t, in.DateOfBirth)
}

func TestUpdatePetRequestValidate_SuppliedInvalidRejected(t *testing.T) {
	empty := ""
	bad := "not-a-date"
	_, errs := updatePetRequest{Name: &empty, DateOfBirth: &bad}.validate()

	assert.Len(t, errs, 2)
}
