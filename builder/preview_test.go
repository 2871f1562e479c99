package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tanishksoam/speakhire/schema"
)

func previewFields() []schema.Field {
	min, max := 0.0, 10.0
	return []schema.Field{
		{ID: "intro", Type: schema.FieldHeading, Label: "Welcome"},
		{ID: "name", Type: schema.FieldShortAnswer, Label: "Name", Required: true},
		{ID: "mail", Type: schema.FieldEmail, Label: "Email"},
		{ID: "when", Type: schema.FieldDate, Label: "Date"},
		{ID: "at", Type: schema.FieldTime, Label: "Time"},
		{
			ID:    "color",
			Type:  schema.FieldDropdown,
			Label: "Color",
			Properties: schema.FieldProperties{
				Options: []schema.Option{{ID: "o1", Label: "Red"}, {ID: "o2", Label: "Blue"}},
			},
		},
		{
			ID:       "fruits",
			Type:     schema.FieldMultipleChoice,
			Label:    "Fruits",
			Required: true,
			Properties: schema.FieldProperties{
				Options: []schema.Option{{ID: "a", Label: "Apple"}, {ID: "b", Label: "Banana"}},
			},
		},
		{ID: "stars", Type: schema.FieldRating, Label: "Stars"},
		{ID: "amount", Type: schema.FieldSlider, Label: "Amount", Properties: schema.FieldProperties{Min: &min, Max: &max}},
		{ID: "code", Type: schema.FieldShortAnswer, Label: "Code", Properties: schema.FieldProperties{Pattern: `^[A-Z]{3}-\d+$`}},
	}
}

func errorFor(errs []FieldError, fieldID string) *FieldError {
	for i := range errs {
		if errs[i].FieldID == fieldID {
			return &errs[i]
		}
	}
	return nil
}

func TestValidateSubmissionAccepts(t *testing.T) {
	errs := ValidateSubmission(previewFields(), map[string]interface{}{
		"name":   "Ada",
		"mail":   "ada@test.com",
		"when":   "2026-09-01",
		"at":     "14:30",
		"color":  "o2",
		"fruits": []interface{}{"a", "b"},
		"stars":  float64(4),
		"amount": float64(7),
		"code":   "ABC-42",
	})
	assert.Empty(t, errs)
}

func TestValidateSubmissionRequired(t *testing.T) {
	errs := ValidateSubmission(previewFields(), map[string]interface{}{})

	assert.NotNil(t, errorFor(errs, "name"))
	assert.NotNil(t, errorFor(errs, "fruits"))
	// optional fields left blank are fine
	assert.Nil(t, errorFor(errs, "mail"))
	assert.Nil(t, errorFor(errs, "stars"))
}

func TestValidateSubmissionKinds(t *testing.T) {
	errs := ValidateSubmission(previewFields(), map[string]interface{}{
		"name":   42,
		"mail":   "not-an-email",
		"when":   "September 1st",
		"at":     "2pm",
		"color":  "o9",
		"fruits": []interface{}{"a", "zzz"},
		"stars":  "five",
		"amount": float64(99),
		"code":   "abc",
	})

	for _, id := range []string{"name", "mail", "when", "at", "color", "fruits", "stars", "amount", "code"} {
		assert.NotNil(t, errorFor(errs, id), id)
	}
}

func TestValidateSubmissionRatingBounds(t *testing.T) {
	fields := []schema.Field{{ID: "stars", Type: schema.FieldRating, Label: "Stars"}}

	assert.Empty(t, ValidateSubmission(fields, map[string]interface{}{"stars": float64(5)}))
	assert.NotEmpty(t, ValidateSubmission(fields, map[string]interface{}{"stars": float64(6)}))
	assert.NotEmpty(t, ValidateSubmission(fields, map[string]interface{}{"stars": float64(0)}))

	capped := []schema.Field{{
		ID: "stars", Type: schema.FieldRating, Label: "Stars",
		Properties: schema.FieldProperties{MaxRating: 10},
	}}
	assert.Empty(t, ValidateSubmission(capped, map[string]interface{}{"stars": float64(8)}))
}

func TestValidateSubmissionDisplayOnly(t *testing.T) {
	errs := ValidateSubmission(previewFields(), map[string]interface{}{
		"name":   "Ada",
		"fruits": "a",
		"intro":  "should not be answerable",
	})
	assert.NotNil(t, errorFor(errs, "intro"))
}

func TestValidateSubmissionUnknownField(t *testing.T) {
	errs := ValidateSubmission(previewFields(), map[string]interface{}{
		"name":    "Ada",
		"fruits":  "a",
		"unknown": "x",
	})
	assert.NotNil(t, errorFor(errs, "unknown"))
}

func TestValidateSubmissionSingleChoiceAsString(t *testing.T) {
	errs := ValidateSubmission(previewFields(), map[string]interface{}{
		"name":   "Ada",
		"fruits": "b",
	})
	assert.Empty(t, errs)
}
