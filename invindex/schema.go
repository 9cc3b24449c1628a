package invindex

import "fmt"

// FieldKind distinguishes how a schema field is stored and queried.
type FieldKind uint8

const (
	// FieldID is the u64 primary key: indexed (for completeness) and
	// stored, so a matching DocAddress can be resolved back to a row id.
	FieldID FieldKind = iota
	// FieldText is a tokenized text field eligible for phrase queries.
	FieldText
)

// Field describes one schema field, mirroring the external search
// library's schema-builder contract named in spec.md §6: {id u64
// indexed+stored, title text tokenized, body text tokenized optional}.
type Field struct {
	Name     string
	Kind     FieldKind
	Optional bool
}

// Schema is the fixed field set documents are indexed under. A single
// Schema is shared by the Builder (§4.1) and by every reopened index
// (§4.7), so that "open-or-create" against the virtual directory uses the
// identical field layout used at build time.
type Schema struct {
	Fields []Field
}

// DocSchema returns the schema fixed by spec.md: {id: u64, title: text,
// body: text?}.
func DocSchema() Schema {
	return Schema{Fields: []Field{
		{Name: "id", Kind: FieldID},
		{Name: "title", Kind: FieldText},
		{Name: "body", Kind: FieldText, Optional: true},
	}}
}

// Field looks up a field by name.
func (s Schema) Field(name string) (Field, error) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, nil
		}
	}
	return Field{}, fmt.Errorf("%w: %q", ErrSchemaFieldMissing, name)
}
