package model

import "time"

// Translation is one localized string entry: the label is the lookup
// key the runtime translator resolves, the translation its localized
// text for the language the record is tagged with.
type Translation struct {
	ID          int64
	Label       string
	Translation string
	// LanguageID references the entity_tags row the "language" select
	// field points at. Nil until the field is set.
	LanguageID   *int64
	CreatedBy    int64
	CreatedDate  time.Time
	ModifiedBy   int64
	ModifiedDate time.Time
}

// TextValue returns the scalar dynamic-field value stored under key.
// The second return reports whether the entity has such a column.
func (t Translation) TextValue(key string) (string, bool) {
	switch key {
	case "label":
		return t.Label, true
	case "translation":
		return t.Translation, true
	default:
		return "", false
	}
}

// SetTextValue stores a scalar dynamic-field value. Unknown keys are
// ignored and reported false.
func (t *Translation) SetTextValue(key, value string) bool {
	switch key {
	case "label":
		t.Label = value
	case "translation":
		t.Translation = value
	default:
		return false
	}
	return true
}

// SelectRef returns a pointer to the reference column backing a select
// field, or nil when the entity has no such field.
func (t *Translation) SelectRef(key string) **int64 {
	switch key {
	case "language":
		return &t.LanguageID
	default:
		return nil
	}
}
