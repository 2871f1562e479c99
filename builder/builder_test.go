package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tanishksoam/speakhire/schema"
)

func shortAnswer(id, label string) schema.Field {
	return schema.Field{ID: id, Type: schema.FieldShortAnswer, Label: label}
}

func TestAddFieldAssignsID(t *testing.T) {
	b := New()

	f, err := b.AddField(schema.Field{Type: schema.FieldShortAnswer, Label: "Name"})
	assert.NoError(t, err)
	assert.NotEmpty(t, f.ID)
	assert.Len(t, b.Fields(), 1)
}

func TestAddFieldRejectsInvalid(t *testing.T) {
	b := New()

	_, err := b.AddField(schema.Field{Type: schema.FieldDropdown, Label: "Pick"})
	assert.Error(t, err)
	assert.Empty(t, b.Fields())

	_, err = b.AddField(schema.Field{ID: "f1", Type: "bogus", Label: "x"})
	assert.Error(t, err)
}

func TestAddFieldRejectsDuplicateID(t *testing.T) {
	b := New()

	_, err := b.AddField(shortAnswer("f1", "a"))
	assert.NoError(t, err)
	_, err = b.AddField(shortAnswer("f1", "b"))
	assert.Error(t, err)
}

func TestUpdateField(t *testing.T) {
	b := New()
	_, err := b.AddField(shortAnswer("f1", "Name"))
	assert.NoError(t, err)

	label := "Full name"
	required := true
	updated, err := b.UpdateField("f1", FieldPatch{Label: &label, Required: &required})
	assert.NoError(t, err)
	assert.Equal(t, "Full name", updated.Label)
	assert.True(t, updated.Required)

	// patching into an invalid definition leaves the field untouched
	badType := schema.FieldDropdown
	_, err = b.UpdateField("f1", FieldPatch{Type: &badType})
	assert.Error(t, err)
	assert.Equal(t, schema.FieldShortAnswer, b.Fields()[0].Type)

	_, err = b.UpdateField("missing", FieldPatch{Label: &label})
	assert.Error(t, err)
}

func TestDeleteFieldClearsSelection(t *testing.T) {
	b := New()
	_, _ = b.AddField(shortAnswer("f1", "a"))
	_, _ = b.AddField(shortAnswer("f2", "b"))
	assert.NoError(t, b.Select("f1"))

	assert.True(t, b.DeleteField("f1"))
	assert.Nil(t, b.Selected())
	assert.Len(t, b.Fields(), 1)

	assert.False(t, b.DeleteField("f1"))
}

func TestDuplicateFieldInsertsAfterOriginal(t *testing.T) {
	b := New()
	_, _ = b.AddField(shortAnswer("f1", "a"))
	_, _ = b.AddField(shortAnswer("f2", "b"))

	dup, err := b.DuplicateField("f1")
	assert.NoError(t, err)
	assert.NotEqual(t, "f1", dup.ID)

	fields := b.Fields()
	assert.Len(t, fields, 3)
	assert.Equal(t, "f1", fields[0].ID)
	assert.Equal(t, dup.ID, fields[1].ID)
	assert.Equal(t, "f2", fields[2].ID)
	assert.Equal(t, "a", fields[1].Label)
}

func TestDuplicateChoiceFieldCopiesOptions(t *testing.T) {
	b := New()
	_, err := b.AddField(schema.Field{
		ID:    "pick",
		Type:  schema.FieldMultipleChoice,
		Label: "Pick",
		Properties: schema.FieldProperties{
			Options: []schema.Option{{ID: "o1", Label: "A"}, {ID: "o2", Label: "B"}},
		},
	})
	assert.NoError(t, err)

	dup, err := b.DuplicateField("pick")
	assert.NoError(t, err)
	assert.Len(t, dup.Properties.Options, 2)

	// the copy owns its option slice
	dup.Properties.Options[0].Label = "changed"
	assert.Equal(t, "A", b.Fields()[0].Properties.Options[0].Label)
}

func TestReorder(t *testing.T) {
	b := New()
	_, _ = b.AddField(shortAnswer("f1", "a"))
	_, _ = b.AddField(shortAnswer("f2", "b"))
	_, _ = b.AddField(shortAnswer("f3", "c"))

	assert.NoError(t, b.Reorder([]string{"f3", "f1", "f2"}))

	fields := b.Fields()
	assert.Equal(t, "f3", fields[0].ID)
	assert.Equal(t, "f1", fields[1].ID)
	assert.Equal(t, "f2", fields[2].ID)

	assert.Error(t, b.Reorder([]string{"f1", "f2"}))
	assert.Error(t, b.Reorder([]string{"f1", "f1", "f2"}))
	assert.Error(t, b.Reorder([]string{"f1", "f2", "nope"}))
}

func TestSetFieldsValidates(t *testing.T) {
	b := New()

	err := b.SetFields([]schema.Field{{ID: "f1", Label: "no type"}})
	assert.Error(t, err)

	err = b.SetFields([]schema.Field{shortAnswer("f1", "a"), shortAnswer("f2", "b")})
	assert.NoError(t, err)
	assert.Len(t, b.Fields(), 2)
}

func TestReset(t *testing.T) {
	b := New()
	_, _ = b.AddField(shortAnswer("f1", "a"))
	assert.NoError(t, b.Select("f1"))

	b.Reset()
	assert.Empty(t, b.Fields())
	assert.Nil(t, b.Selected())
}
