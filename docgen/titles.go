package docgen

import "math/rand"

// fillerWords is drawn from to pad out a generated title with unrelated
// content, the same role the teacher's generator's filler-word list
// plays: most of a title's length, carrying no query-relevant signal.
var fillerWords = []string{
	"report", "summary", "analysis", "overview", "notes", "journal",
	"record", "chronicle", "field", "study", "survey", "ledger",
	"almanac", "bulletin", "digest", "annals", "memoir", "gazette",
}

// selectivityPhrase pairs a multi-word phrase with the probability it is
// appended to a generated title, letting a caller predict approximately
// how many generated titles will match a given phrase query.
type selectivityPhrase struct {
	Phrase      string
	Selectivity float64
}

var selectivityPhrases = []selectivityPhrase{
	{Phrase: "dairy cow", Selectivity: 0.05},
	{Phrase: "urban farming", Selectivity: 0.03},
	{Phrase: "solar power", Selectivity: 0.02},
}

// TitleGenerator produces reproducible synthetic titles: the same seed
// always yields the same sequence, so a test or benchmark can assert
// about approximately how many generated rows match a given phrase.
type TitleGenerator struct {
	rng *rand.Rand
}

// NewTitleGenerator returns a generator seeded deterministically.
func NewTitleGenerator(seed int64) *TitleGenerator {
	return &TitleGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Next returns one generated title: 3-8 shuffled filler words, plus zero
// or more selectivity phrases included according to their configured
// probability.
func (g *TitleGenerator) Next() string {
	n := 3 + g.rng.Intn(6)
	parts := make([]string, 0, n+len(selectivityPhrases))
	for i := 0; i < n; i++ {
		parts = append(parts, fillerWords[g.rng.Intn(len(fillerWords))])
	}
	for _, sp := range selectivityPhrases {
		if g.rng.Float64() < sp.Selectivity {
			parts = append(parts, sp.Phrase)
		}
	}
	g.rng.Shuffle(len(parts), func(i, j int) { parts[i], parts[j] = parts[j], parts[i] })

	out := parts[0]
	for _, p := range parts[1:] {
		out += " " + p
	}
	return out
}

// GenerateDocs produces count documents with ids starting at startID,
// titles drawn from g.
func (g *TitleGenerator) GenerateDocs(startID uint64, count int) []Doc {
	docs := make([]Doc, count)
	for i := 0; i < count; i++ {
		docs[i] = Doc{ID: startID + uint64(i), Title: g.Next()}
	}
	return docs
}
