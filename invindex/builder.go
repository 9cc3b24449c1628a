package invindex

import "fmt"

type config struct {
	schema Schema
}

func defaultConfig() config {
	return config{schema: DocSchema()}
}

// Option configures a Builder. Grounded on the project's established
// functional-options shape: an unexported config struct plus an apply
// method, rather than a growing constructor signature.
type Option func(*config)

func (c *config) apply(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// WithSchema overrides the schema documents are validated and indexed
// against. Most callers want DocSchema, the only schema the rest of this
// module assumes.
func WithSchema(s Schema) Option {
	return func(c *config) { c.schema = s }
}

// Builder accumulates documents in memory and, on Commit, produces a
// sealed index as a read-write Directory: meta.json, postings.bin, and
// store.bin (spec.md §4.1, §4.4). No partial index is ever exposed — a
// failed Commit returns ErrIndexBuild and nothing else.
type Builder struct {
	cfg  config
	docs []Document
}

// NewBuilder returns an empty Builder.
func NewBuilder(opts ...Option) *Builder {
	cfg := defaultConfig()
	cfg.apply(opts)
	return &Builder{cfg: cfg}
}

// AddDocument stages a document for the next Commit. It does not tokenize
// or index immediately; all indexing work happens in Commit so that a
// caller inspecting the Builder mid-build never observes a half-built
// segment.
func (b *Builder) AddDocument(d Document) error {
	if _, err := b.cfg.schema.Field("title"); err != nil {
		return err
	}
	b.docs = append(b.docs, d)
	return nil
}

// Commit tokenizes every staged document, builds the title/body term
// dictionaries, and serializes meta.json, postings.bin, and store.bin into
// a fresh MemDirectory.
func (b *Builder) Commit() (*MemDirectory, error) {
	title := fieldPostings{name: "title"}
	body := fieldPostings{name: "body"}
	titleIndex := make(map[string]int, len(b.docs))
	bodyIndex := make(map[string]int, len(b.docs))
	ids := make([]uint64, len(b.docs))

	for ordinal, d := range b.docs {
		ids[ordinal] = d.ID
		accumulate(&title, titleIndex, uint32(ordinal), d.Title)
		if d.Body != nil {
			accumulate(&body, bodyIndex, uint32(ordinal), *d.Body)
		}
	}

	fields := []fieldPostings{title}
	if len(body.terms) > 0 {
		fields = append(fields, body)
	}
	sortFieldPostings(fields)

	postingsBytes, err := encodePostings(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexBuild, err)
	}
	storeBytes := encodeStore(ids)

	segments := []string{"postings.bin", "store.bin"}
	metaBytes, err := encodeMeta(metaDescriptor{
		Version:  CurrentFormatVersion,
		NumDocs:  uint64(len(b.docs)),
		Segments: segments,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexBuild, err)
	}

	dir := NewMemDirectory()
	if err := writeFile(dir, MetaFileName, metaBytes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexBuild, err)
	}
	if err := writeFile(dir, "postings.bin", postingsBytes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexBuild, err)
	}
	if err := writeFile(dir, "store.bin", storeBytes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexBuild, err)
	}

	return dir, nil
}

func writeFile(dir *MemDirectory, path string, content []byte) error {
	w, err := dir.OpenWrite(path)
	if err != nil {
		return err
	}
	if _, err := w.Write(content); err != nil {
		return err
	}
	return w.Close()
}

// accumulate tokenizes text and folds its term occurrences into field,
// using termIndex to find or create each term's entry in field.terms.
func accumulate(field *fieldPostings, termIndex map[string]int, docOrdinal uint32, text string) {
	perTerm := make(map[string][]uint32)
	for _, tok := range analyze(text) {
		perTerm[tok.Term] = append(perTerm[tok.Term], tok.Position)
	}
	for term, positions := range perTerm {
		idx, ok := termIndex[term]
		if !ok {
			idx = len(field.terms)
			field.terms = append(field.terms, termPostings{term: term, hash: termHash(term)})
			termIndex[term] = idx
		}
		field.terms[idx].postings = append(field.terms[idx].postings, posting{docOrdinal: docOrdinal, positions: positions})
	}
}
