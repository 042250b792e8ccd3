package model

// Form field types understood by the field resolver. Descriptors are
// externally authored; anything else is passed through untouched.
const (
	FieldText        = "text"
	FieldTextarea    = "textarea"
	FieldDate        = "date"
	FieldSelect      = "select"
	FieldMultiselect = "multiselect"
)

// FormField describes one dynamic field of a form. Consumed read-only.
type FormField struct {
	ID     int64
	Form   string
	Key    string
	Type   string
	Label  string
	Tab    string
	SortID int
}
