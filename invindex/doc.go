package invindex

// Document is one record submitted to Builder.AddDocument. Body is a
// pointer because the schema marks "body" optional (spec.md §6): a nil
// Body indexes and stores nothing under that field, matching how the
// external search library treats an absent optional field rather than an
// empty string.
type Document struct {
	ID    uint64
	Title string
	Body  *string
}
