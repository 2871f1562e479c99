// Package builder holds the draft state of a form while it is being
// composed: an ordered field list plus the edit operations the canvas
// dispatches. The state is explicit and per-instance, nothing here is
// process-wide.
package builder

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Tanishksoam/speakhire/schema"
)

// Builder edits an in-memory field list. It is not safe for concurrent
// use; each editing session owns its Builder.
type Builder struct {
	fields   []schema.Field
	selected string
}

func New() *Builder {
	return &Builder{fields: []schema.Field{}}
}

// Fields returns the fields in display order.
func (b *Builder) Fields() []schema.Field {
	out := make([]schema.Field, len(b.fields))
	copy(out, b.fields)
	return out
}

// SetFields replaces the whole field list, validating every definition.
func (b *Builder) SetFields(fields []schema.Field) error {
	if err := schema.ValidateFields(fields); err != nil {
		return err
	}
	b.fields = append([]schema.Field{}, fields...)
	return nil
}

// AddField appends a field to the end of the list. A missing id is
// assigned; the definition is validated before it lands.
func (b *Builder) AddField(f schema.Field) (schema.Field, error) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if err := f.Validate(); err != nil {
		return schema.Field{}, err
	}
	if b.indexOf(f.ID) != -1 {
		return schema.Field{}, fmt.Errorf("field id %s already exists", f.ID)
	}

	b.fields = append(b.fields, f)
	return f, nil
}

// FieldPatch carries a partial field update. Nil members are left alone.
type FieldPatch struct {
	Type       *schema.FieldType
	Label      *string
	Required   *bool
	Properties *schema.FieldProperties
}

// UpdateField applies a patch to the field with the given id. The patched
// definition must still validate, otherwise the field is left unchanged.
func (b *Builder) UpdateField(id string, patch FieldPatch) (schema.Field, error) {
	idx := b.indexOf(id)
	if idx == -1 {
		return schema.Field{}, fmt.Errorf("field %s not found", id)
	}

	updated := b.fields[idx]
	if patch.Type != nil {
		updated.Type = *patch.Type
	}
	if patch.Label != nil {
		updated.Label = *patch.Label
	}
	if patch.Required != nil {
		updated.Required = *patch.Required
	}
	if patch.Properties != nil {
		updated.Properties = *patch.Properties
	}

	if err := updated.Validate(); err != nil {
		return schema.Field{}, err
	}

	b.fields[idx] = updated
	return updated, nil
}

// DeleteField removes a field; deleting the selected field clears the
// selection.
func (b *Builder) DeleteField(id string) bool {
	idx := b.indexOf(id)
	if idx == -1 {
		return false
	}

	b.fields = append(b.fields[:idx], b.fields[idx+1:]...)
	if b.selected == id {
		b.selected = ""
	}
	return true
}

// DuplicateField inserts a copy of the field right after the original.
// The copy gets a fresh field id; option ids are kept, they only need to
// be distinct within their field.
func (b *Builder) DuplicateField(id string) (schema.Field, error) {
	idx := b.indexOf(id)
	if idx == -1 {
		return schema.Field{}, fmt.Errorf("field %s not found", id)
	}

	dup := b.fields[idx]
	dup.ID = uuid.NewString()
	dup.Properties.Options = append([]schema.Option{}, b.fields[idx].Properties.Options...)

	b.fields = append(b.fields, schema.Field{})
	copy(b.fields[idx+2:], b.fields[idx+1:])
	b.fields[idx+1] = dup

	return dup, nil
}

// Reorder rearranges the list into the order given by ids, which must be
// a permutation of the current field ids.
func (b *Builder) Reorder(ids []string) error {
	if len(ids) != len(b.fields) {
		return fmt.Errorf("reorder expects %d field ids, got %d", len(b.fields), len(ids))
	}

	reordered := make([]schema.Field, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("duplicate field id %s in reorder", id)
		}
		seen[id] = struct{}{}

		idx := b.indexOf(id)
		if idx == -1 {
			return fmt.Errorf("field %s not found", id)
		}
		reordered = append(reordered, b.fields[idx])
	}

	b.fields = reordered
	return nil
}

// Select marks a field as the one being edited. An empty id clears the
// selection.
func (b *Builder) Select(id string) error {
	if id != "" && b.indexOf(id) == -1 {
		return fmt.Errorf("field %s not found", id)
	}
	b.selected = id
	return nil
}

// Selected returns the currently selected field, or nil.
func (b *Builder) Selected() *schema.Field {
	idx := b.indexOf(b.selected)
	if idx == -1 {
		return nil
	}
	f := b.fields[idx]
	return &f
}

// Reset drops all fields and the selection.
func (b *Builder) Reset() {
	b.fields = []schema.Field{}
	b.selected = ""
}

func (b *Builder) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range b.fields {
		if b.fields[i].ID == id {
			return i
		}
	}
	return -1
}
