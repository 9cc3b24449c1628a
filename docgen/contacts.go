package docgen

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/rivo/uniseg"
)

// Phone is one phone number entry on a Contact, modeled on the nested
// contacts benchmark's phone-list schema: a number that may be absent
// (some contacts list a phone slot with no number on file) paired with a
// type tag.
type Phone struct {
	Number *string `parquet:"number,optional"`
	Type   string  `parquet:"type"`
}

// Contact is one row of the nested-contacts throughput benchmark, an
// unrelated peripheral pipeline bundled alongside the embedded-index demo
// purely to exercise a second, differently-shaped columnar write path
// (spec.md's Non-goals explicitly separate it from the core system).
// The nested Emails/Phones lists give the columnar writer a repeated
// field to encode, which the flat {id, title, body} table schema never
// exercises.
type Contact struct {
	ID     string   `parquet:"id"`
	Name   *string  `parquet:"name,optional"`
	Emails []string `parquet:"emails,list"`
	Phones []Phone  `parquet:"phones,list"`
}

var phoneTypes = []string{"mobile", "home", "work"}

var nameSyllables = []string{"ka", "mi", "ta", "ren", "sol", "dev", "ana", "lux", "fen", "quo"}

var emailDomains = []string{"example.com", "mail.example.org", "example.net"}

// ContactGenerator produces a reproducible stream of synthetic nested
// Contact records.
type ContactGenerator struct {
	rng          *rand.Rand
	phoneCounter int
}

// NewContactGenerator returns a generator seeded deterministically.
func NewContactGenerator(seed int64) *ContactGenerator {
	return &ContactGenerator{rng: rand.New(rand.NewSource(seed))}
}

// generateName builds a pronounceable synthetic name and reports whether
// one was generated at all: roughly one in twenty generated contacts has
// no name on file, the same long-tail-of-missing-data shape the
// benchmark's own generator models.
func (g *ContactGenerator) generateName() *string {
	if g.rng.Intn(20) == 0 {
		return nil
	}
	syllables := 2 + g.rng.Intn(3)
	name := ""
	for i := 0; i < syllables; i++ {
		name += nameSyllables[g.rng.Intn(len(nameSyllables))]
	}
	// uniseg measures the name in grapheme clusters rather than bytes so
	// that a future multi-byte alphabet swap-in doesn't silently change
	// the truncation point below.
	if uniseg.GraphemeClusterCount(name) > 24 {
		g := uniseg.NewGraphemes(name)
		var truncated []rune
		for g.Next() && len(truncated) < 24 {
			truncated = append(truncated, g.Runes()...)
		}
		name = string(truncated)
	}
	return &name
}

// generatePhones builds 0-3 phone entries, some missing their number, a
// unique numeric suffix per populated number so duplicate-detection tests
// downstream of the benchmark have a stable key to check against.
func (g *ContactGenerator) generatePhones() []Phone {
	count := g.rng.Intn(4)
	if count == 0 {
		return nil
	}
	phones := make([]Phone, count)
	for i := range phones {
		phones[i].Type = phoneTypes[g.rng.Intn(len(phoneTypes))]
		if g.rng.Intn(10) == 0 {
			continue // no number on file for this slot
		}
		g.phoneCounter++
		number := fmt.Sprintf("+1-555-%08d", g.phoneCounter)
		phones[i].Number = &number
	}
	return phones
}

// generateEmails builds 0-2 email addresses whose local part is id's
// leading eight hex digits; the count and each domain are drawn from the
// generator's seeded rng.
func (g *ContactGenerator) generateEmails(id uuid.UUID) []string {
	count := g.rng.Intn(3)
	if count == 0 {
		return nil
	}
	emails := make([]string, count)
	for i := range emails {
		domain := emailDomains[g.rng.Intn(len(emailDomains))]
		emails[i] = fmt.Sprintf("%s@%s", id.String()[:8], domain)
	}
	return emails
}

// Generate produces count contacts and writes nothing itself; callers
// that want the nested shape on disk push the result through a columnar
// writer (cmd/ftep's contacts-bench does this).
func (g *ContactGenerator) Generate(count int) []Contact {
	contacts := make([]Contact, count)
	for i := range contacts {
		// Drawing the id from the seeded rng keeps the whole stream
		// reproducible; rand.Rand's Read never returns an error.
		id, _ := uuid.NewRandomFromReader(g.rng)
		contacts[i] = Contact{
			ID:     id.String(),
			Name:   g.generateName(),
			Emails: g.generateEmails(id),
			Phones: g.generatePhones(),
		}
	}
	return contacts
}
