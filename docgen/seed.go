// Package docgen supplies the synthetic data the demonstration CLI and
// tests build table files from: the fixed five-document seed corpus
// spec.md's scenarios are phrased against, a parameterized random title
// generator for larger runs, and an unrelated nested-contacts generator
// used only by the throughput benchmark command.
package docgen

// SeedDocs returns the fixed five-document corpus spec.md's concrete
// scenarios are defined over, id assigned by position starting at 0.
func SeedDocs() []Doc {
	titles := []string{
		"The Name of the Wind",
		"The Diary of Muadib",
		"A Dairy Cow",
		"A Dairy Cow",
		"The Diary of a Young Girl",
	}
	docs := make([]Doc, len(titles))
	for i, title := range titles {
		docs[i] = Doc{ID: uint64(i), Title: title}
	}
	return docs
}

// Doc is a generated title-only document: the seed corpus and the random
// generator both produce these, leaving body text to callers that want
// it (the demonstration CLI does not).
type Doc struct {
	ID    uint64
	Title string
}
