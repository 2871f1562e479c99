package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFieldUnknownType(t *testing.T) {
	err := Field{ID: "f1", Type: "checkbox", Label: "Pick"}.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type")
}

func TestValidateFieldMissingType(t *testing.T) {
	assert.Error(t, Field{ID: "f1", Label: "Pick"}.Validate())
}

func TestValidateChoiceFieldRequiresOptions(t *testing.T) {
	for _, typ := range []FieldType{FieldMultipleChoice, FieldDropdown, FieldPictureChoice} {
		err := Field{ID: "f1", Type: typ, Label: "Pick"}.Validate()
		assert.Error(t, err, string(typ))
	}

	err := Field{
		ID:    "f1",
		Type:  FieldDropdown,
		Label: "Pick",
		Properties: FieldProperties{
			Options: []Option{{ID: "o1", Label: "A"}, {ID: "o2", Label: "B"}},
		},
	}.Validate()
	assert.NoError(t, err)
}

func TestValidateChoiceFieldDuplicateOptionIDs(t *testing.T) {
	err := Field{
		ID:    "f1",
		Type:  FieldMultipleChoice,
		Label: "Pick",
		Properties: FieldProperties{
			Options: []Option{{ID: "o1", Label: "A"}, {ID: "o1", Label: "B"}},
		},
	}.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate option id")
}

func TestValidateFieldBounds(t *testing.T) {
	min, max := 10.0, 5.0
	err := Field{
		ID:    "f1",
		Type:  FieldSlider,
		Label: "Amount",
		Properties: FieldProperties{
			Min: &min,
			Max: &max,
		},
	}.Validate()
	assert.Error(t, err)
}

func TestValidateFieldsRejectsEmptyAndDuplicates(t *testing.T) {
	assert.Error(t, ValidateFields(nil))
	assert.Error(t, ValidateFields([]Field{}))

	fields := []Field{
		{ID: "f1", Type: FieldShortAnswer, Label: "Name"},
		{ID: "f1", Type: FieldLongAnswer, Label: "Bio"},
	}
	err := ValidateFields(fields)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate field id")
}

func TestFindRecipientExactMatch(t *testing.T) {
	form := Form{
		Recipients: []Recipient{
			{Email: "a@test.com", Token: "token-a"},
			{Email: "b@test.com", Token: "token-b"},
		},
	}

	assert.NotNil(t, form.FindRecipient("a@test.com", "token-a"))
	// a valid token paired with another recipient's email must not match
	assert.Nil(t, form.FindRecipient("b@test.com", "token-a"))
	assert.Nil(t, form.FindRecipient("a@test.com", "TOKEN-A"))
	assert.Nil(t, form.FindRecipient("a@test.com", "token-a "))

	assert.True(t, form.HasRecipient("b@test.com"))
	assert.False(t, form.HasRecipient("c@test.com"))
}
