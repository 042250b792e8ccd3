// Package catalog implements the gettext catalog formats the module
// emits: the human-editable PO source and the compiled MO binary the
// runtime translator loads.
package catalog

import "bytes"

// Entry is one label/translation pair of a catalog.
type Entry struct {
	ID  string
	Str string
}

// EncodePO serializes entries into the PO subset the module produces:
// a header block with an empty msgid/msgstr pair, then one
// msgid/msgstr pair per entry in input order. No plural forms, no
// comments, no metadata.
//
// Embedded double quotes and newlines are written through verbatim and
// will corrupt the catalog; this mirrors the historic writer and is a
// documented limitation, not a feature.
func EncodePO(entries []Entry) []byte {
	var b bytes.Buffer
	b.WriteString("msgid \"\"\n")
	b.WriteString("msgstr \"\"\n")

	for _, e := range entries {
		b.WriteString("\nmsgid \"")
		b.WriteString(e.ID)
		b.WriteString("\"\nmsgstr \"")
		b.WriteString(e.Str)
		b.WriteString("\"\n")
	}
	return b.Bytes()
}
