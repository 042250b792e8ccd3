package model

// Tag is a generic categorization entity. The language taxonomy lives
// under the tag keyed "category".
type Tag struct {
	ID     int64
	TagKey string
	Label  string
}

// EntityTag associates a tag value with a form. Select and multiselect
// field values reference these rows; the per-language catalog binding
// is the entity tag whose value is the language code.
type EntityTag struct {
	ID    int64
	TagID int64
	Form  string
	Value string
	// TagLabel is the label of the referenced tag, joined in on read.
	TagLabel string
}

// DisplayLabel prefers the inline tag value and only falls back to the
// referenced tag's own label when no value is stored.
func (e EntityTag) DisplayLabel() string {
	if e.Value != "" {
		return e.Value
	}
	return e.TagLabel
}

// TagOption is the {id,label} pair select and multiselect fields
// resolve to for display and API output.
type TagOption struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}
