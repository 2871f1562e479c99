package schema

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FormCollection = "forms"
)

// FieldType enumerates the kinds of fields a form can carry.
type FieldType string

const (
	FieldShortAnswer    FieldType = "shortAnswer"
	FieldLongAnswer     FieldType = "longAnswer"
	FieldMultipleChoice FieldType = "multipleChoice"
	FieldDropdown       FieldType = "dropdown"
	FieldPictureChoice  FieldType = "pictureChoice"
	FieldEmail          FieldType = "email"
	FieldDate           FieldType = "date"
	FieldTime           FieldType = "time"
	FieldRating         FieldType = "rating"
	FieldSlider         FieldType = "slider"
	FieldHeading        FieldType = "heading"
	FieldParagraph      FieldType = "paragraph"
)

var knownFieldTypes = map[FieldType]struct{}{
	FieldShortAnswer:    {},
	FieldLongAnswer:     {},
	FieldMultipleChoice: {},
	FieldDropdown:       {},
	FieldPictureChoice:  {},
	FieldEmail:          {},
	FieldDate:           {},
	FieldTime:           {},
	FieldRating:         {},
	FieldSlider:         {},
	FieldHeading:        {},
	FieldParagraph:      {},
}

// choiceFieldTypes are the types that must carry a non-empty option list.
var choiceFieldTypes = map[FieldType]struct{}{
	FieldMultipleChoice: {},
	FieldDropdown:       {},
	FieldPictureChoice:  {},
}

// IsChoiceType reports whether fields of type t carry an option list.
func IsChoiceType(t FieldType) bool {
	_, ok := choiceFieldTypes[t]
	return ok
}

// Option is one selectable choice of a choice-bearing field. The id is
// stable for the life of the field so stored answers stay resolvable.
type Option struct {
	ID    string `json:"id" bson:"id"`
	Label string `json:"label" bson:"label"`
	Image string `json:"image,omitempty" bson:"image,omitempty"`
}

// FieldProperties holds the per-type configuration of a field. Which
// members are meaningful is decided by the field type and checked by
// Field.Validate at definition time.
type FieldProperties struct {
	Options     []Option `json:"options,omitempty" bson:"options,omitempty"`
	Min         *float64 `json:"min,omitempty" bson:"min,omitempty"`
	Max         *float64 `json:"max,omitempty" bson:"max,omitempty"`
	Step        *float64 `json:"step,omitempty" bson:"step,omitempty"`
	MaxRating   int      `json:"max_rating,omitempty" bson:"max_rating,omitempty"`
	Pattern     string   `json:"pattern,omitempty" bson:"pattern,omitempty"`
	Placeholder string   `json:"placeholder,omitempty" bson:"placeholder,omitempty"`
}

type Field struct {
	ID         string          `json:"id" bson:"id"`
	Type       FieldType       `json:"type" bson:"type"`
	Label      string          `json:"label" bson:"label"`
	Required   bool            `json:"required" bson:"required"`
	Properties FieldProperties `json:"properties,omitempty" bson:"properties,omitempty"`
}

// Validate checks a field definition: known type, and for choice-bearing
// types a non-empty option list with distinct option ids.
func (f Field) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("field missing id")
	}
	if f.Type == "" {
		return fmt.Errorf("field %s missing type", f.ID)
	}
	if _, ok := knownFieldTypes[f.Type]; !ok {
		return fmt.Errorf("field %s has unknown type %q", f.ID, f.Type)
	}

	if IsChoiceType(f.Type) {
		if len(f.Properties.Options) == 0 {
			return fmt.Errorf("field %s of type %s requires options", f.ID, f.Type)
		}
		seen := make(map[string]struct{}, len(f.Properties.Options))
		for _, o := range f.Properties.Options {
			if o.ID == "" {
				return fmt.Errorf("field %s has an option without id", f.ID)
			}
			if _, dup := seen[o.ID]; dup {
				return fmt.Errorf("field %s has duplicate option id %s", f.ID, o.ID)
			}
			seen[o.ID] = struct{}{}
		}
	}

	if f.Properties.Min != nil && f.Properties.Max != nil && *f.Properties.Min > *f.Properties.Max {
		return fmt.Errorf("field %s has min greater than max", f.ID)
	}

	return nil
}

// ValidateFields checks a full field list and the uniqueness of field ids
// across the form.
func ValidateFields(fields []Field) error {
	if len(fields) == 0 {
		return fmt.Errorf("form requires at least one field")
	}

	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if err := f.Validate(); err != nil {
			return err
		}
		if _, dup := seen[f.ID]; dup {
			return fmt.Errorf("duplicate field id %s", f.ID)
		}
		seen[f.ID] = struct{}{}
	}
	return nil
}

// Recipient is one invited submitter. The token is a single-use secret;
// used never reverts once set.
type Recipient struct {
	Email     string    `json:"email" bson:"email"`
	Token     string    `json:"token" bson:"token"`
	Used      bool      `json:"used" bson:"used"`
	InvitedAt time.Time `json:"invited_at" bson:"invited_at"`
}

// Response is one accepted submission. Answers are keyed by field id and
// immutable after the write.
type Response struct {
	Email       string                 `json:"email" bson:"email"`
	Answers     map[string]interface{} `json:"responses" bson:"answers"`
	SubmittedAt time.Time              `json:"submitted_at" bson:"submitted_at"`
}

type Form struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title        string             `json:"title" bson:"title"`
	Description  string             `json:"description" bson:"description"`
	Fields       []Field            `json:"fields" bson:"fields"`
	AccessToken  string             `json:"-" bson:"access_token,omitempty"`
	Recipients   []Recipient        `json:"-" bson:"recipients,omitempty"`
	Responses    []Response         `json:"-" bson:"responses,omitempty"`
	IsTemplate   bool               `json:"is_template" bson:"is_template"`
	PublishedURL string             `json:"published_url,omitempty" bson:"published_url,omitempty"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

// FindRecipient returns the recipient matching both email and token with
// exact string comparison, or nil.
func (f *Form) FindRecipient(email, token string) *Recipient {
	for i := range f.Recipients {
		if f.Recipients[i].Email == email && f.Recipients[i].Token == token {
			return &f.Recipients[i]
		}
	}
	return nil
}

// HasRecipient reports whether email already belongs to the recipient set.
func (f *Form) HasRecipient(email string) bool {
	for i := range f.Recipients {
		if f.Recipients[i].Email == email {
			return true
		}
	}
	return false
}
