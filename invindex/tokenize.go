package invindex

import (
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
)

// standardAnalyzer is built once per process: a full bleve.IndexMapping is
// more than this package needs, but it is the supported way to obtain a
// configured "standard" analyzer (unicode segmentation, lowercasing,
// English stopword removal) without reimplementing bleve's registry
// wiring.
var standardAnalyzer = sync.OnceValue(func() *analysis.Analyzer {
	return bleve.NewIndexMapping().AnalyzerNamed(standard.Name)
})

// tokenPosition is one occurrence of a term within a field's text, 1-based
// to match the external search library's position numbering.
type tokenPosition struct {
	Term     string
	Position uint32
}

// analyze tokenizes text with the standard analyzer and returns each
// token's normalized term and position, dropping empty tokens (e.g.
// stopwords the filter chain removed).
func analyze(text string) []tokenPosition {
	stream := standardAnalyzer().Analyze([]byte(text))

	out := make([]tokenPosition, 0, len(stream))
	for _, tok := range stream {
		if tok == nil || len(tok.Term) == 0 {
			continue
		}
		out = append(out, tokenPosition{Term: string(tok.Term), Position: uint32(tok.Position)})
	}
	return out
}

// AnalyzeTerms runs the same standard analyzer Builder indexes with and
// returns just the normalized term sequence, dropping positions. Callers
// that build a PhraseQuery from raw user text (querybridge, in
// particular) must tokenize through this rather than a plain
// strings.Fields split, or case and stopword handling would drift between
// what was indexed and what is searched for.
func AnalyzeTerms(text string) []string {
	tokens := analyze(text)
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Term
	}
	return out
}
