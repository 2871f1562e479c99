package builder

import (
	"fmt"
	"regexp"
	"time"

	"github.com/Tanishksoam/speakhire/schema"
)

// FieldError is one validation finding of the preview renderer.
type FieldError struct {
	FieldID string `json:"field_id"`
	Message string `json:"message"`
}

var previewEmailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateSubmission checks an answer mapping against the field list the
// way the preview renderer does before letting the user submit: required
// fields answered, value kinds matching the field type, choice answers
// pointing at real option ids, numbers inside their bounds, text matching
// its pattern.
//
// This validation is advisory. The server stores whatever a recipient
// submits; the single-use token is the only gate on the write path.
func ValidateSubmission(fields []schema.Field, answers map[string]interface{}) []FieldError {
	var errs []FieldError

	known := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		known[f.ID] = struct{}{}

		value, answered := answers[f.ID]
		if isDisplayOnly(f.Type) {
			if answered {
				errs = append(errs, FieldError{f.ID, "display-only field cannot take an answer"})
			}
			continue
		}

		if !answered || isEmptyValue(value) {
			if f.Required {
				errs = append(errs, FieldError{f.ID, "answer is required"})
			}
			continue
		}

		if msg := checkValue(f, value); msg != "" {
			errs = append(errs, FieldError{f.ID, msg})
		}
	}

	for id := range answers {
		if _, ok := known[id]; !ok {
			errs = append(errs, FieldError{id, "unknown field id"})
		}
	}

	return errs
}

func isDisplayOnly(t schema.FieldType) bool {
	return t == schema.FieldHeading || t == schema.FieldParagraph
}

func isEmptyValue(v interface{}) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case []interface{}:
		return len(value) == 0
	case []string:
		return len(value) == 0
	}
	return false
}

func checkValue(f schema.Field, value interface{}) string {
	switch f.Type {
	case schema.FieldShortAnswer, schema.FieldLongAnswer:
		s, ok := value.(string)
		if !ok {
			return "expected a text answer"
		}
		if f.Properties.Pattern != "" {
			re, err := regexp.Compile(f.Properties.Pattern)
			if err != nil {
				return "field pattern is not a valid expression"
			}
			if !re.MatchString(s) {
				return "answer does not match the expected pattern"
			}
		}

	case schema.FieldEmail:
		s, ok := value.(string)
		if !ok || !previewEmailRegexp.MatchString(s) {
			return "expected a valid email address"
		}

	case schema.FieldDate:
		s, ok := value.(string)
		if !ok {
			return "expected a date answer"
		}
		if _, err := time.Parse("2006-01-02", s); err != nil {
			return "expected a date in YYYY-MM-DD form"
		}

	case schema.FieldTime:
		s, ok := value.(string)
		if !ok {
			return "expected a time answer"
		}
		if _, err := time.Parse("15:04", s); err != nil {
			return "expected a time in HH:MM form"
		}

	case schema.FieldDropdown:
		s, ok := value.(string)
		if !ok {
			return "expected a single option id"
		}
		if !hasOption(f, s) {
			return fmt.Sprintf("option %s does not exist", s)
		}

	case schema.FieldMultipleChoice, schema.FieldPictureChoice:
		set := toStringSet(value)
		if set == nil {
			return "expected one or more option ids"
		}
		for _, id := range set {
			if !hasOption(f, id) {
				return fmt.Sprintf("option %s does not exist", id)
			}
		}

	case schema.FieldRating:
		n, ok := toNumber(value)
		if !ok {
			return "expected a numeric rating"
		}
		max := float64(f.Properties.MaxRating)
		if max == 0 {
			max = 5
		}
		if n < 1 || n > max {
			return fmt.Sprintf("rating must be between 1 and %.0f", max)
		}

	case schema.FieldSlider:
		n, ok := toNumber(value)
		if !ok {
			return "expected a numeric value"
		}
		if f.Properties.Min != nil && n < *f.Properties.Min {
			return fmt.Sprintf("value must be at least %v", *f.Properties.Min)
		}
		if f.Properties.Max != nil && n > *f.Properties.Max {
			return fmt.Sprintf("value must be at most %v", *f.Properties.Max)
		}
	}

	return ""
}

func hasOption(f schema.Field, id string) bool {
	for _, o := range f.Properties.Options {
		if o.ID == id {
			return true
		}
	}
	return false
}

// toStringSet accepts a single option id or a list of them; anything else
// yields nil.
func toStringSet(v interface{}) []string {
	switch value := v.(type) {
	case string:
		return []string{value}
	case []string:
		return value
	case []interface{}:
		out := make([]string, 0, len(value))
		for _, item := range value {
			s, ok := item.(string)
			if !ok {
				return nil
			}
			out = append(out, s)
		}
		return out
	}
	return nil
}

func toNumber(v interface{}) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case float32:
		return float64(value), true
	case int:
		return float64(value), true
	case int32:
		return float64(value), true
	case int64:
		return float64(value), true
	}
	return 0, false
}
