package drill

import (
	"math/rand"
	"time"

	"github.com/lithammer/shortuuid/v4"

	"github.com/bunpou/bunpou/server/service/sentence"
	"github.com/bunpou/bunpou/store"
)

// commonParticles is the distractor pool for particle drills.
var commonParticles = []string{"は", "が", "を", "に", "で", "へ", "と", "も"}

// fallbackMeanings supplies meaning distractors when no sibling entries are
// available to draw from.
var fallbackMeanings = []string{
	"Indicates the location of an action",
	"Past tense of a verb",
	"Indicates possession",
	"Expresses a desire or wish",
	"Polite negative form",
	"Indicates a point in time",
}

// Generator builds drill instances from grammar entries. The random source
// is injectable so selection and shuffling are deterministic under test.
type Generator struct {
	rand *rand.Rand
}

// NewGenerator creates a Generator backed by the given source, or a
// time-seeded one when src is nil.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Generator{rand: rand.New(src)}
}

// Generate builds a drill for the entry's first example sentence. The pool
// carries candidate meaning strings from sibling entries of the same quiz
// batch. A sentence whose segmentation is degenerate can only yield a
// meaning drill.
func (g *Generator) Generate(entry *store.Grammar, pool []string, mode Mode) (*Drill, error) {
	if entry == nil || len(entry.Examples) == 0 {
		return nil, ErrNoExample
	}

	tokens, err := usableTokens(entry.Examples[0].Japanese)
	if err != nil {
		// Degenerate segmentation: fall back to meaning choice.
		return g.MeaningChoice(entry, pool)
	}
	hasParticles := len(particleTokens(tokens)) > 0

	var drillType Type
	if mode == ModePractice {
		if hasParticles && g.rand.Intn(2) == 0 {
			drillType = TypeParticle
		} else {
			drillType = TypeScramble
		}
	} else {
		types := []Type{TypeScramble, TypeMeaning}
		if hasParticles {
			types = append(types, TypeParticle)
		}
		drillType = types[g.rand.Intn(len(types))]
	}

	switch drillType {
	case TypeParticle:
		return g.ParticleFill(entry)
	case TypeMeaning:
		return g.MeaningChoice(entry, pool)
	default:
		return g.Scramble(entry)
	}
}

// Scramble shuffles the sentence's tokens into the word bank.
func (g *Generator) Scramble(entry *store.Grammar) (*Drill, error) {
	if entry == nil || len(entry.Examples) == 0 {
		return nil, ErrNoExample
	}
	example := entry.Examples[0]
	tokens, err := usableTokens(example.Japanese)
	if err != nil {
		return nil, err
	}

	bank := append([]string(nil), tokens...)
	g.shuffle(bank)

	return &Drill{
		ID:          shortuuid.New(),
		GrammarID:   entry.ID,
		Type:        TypeScramble,
		Sentence:    example.Japanese,
		Bank:        bank,
		Translation: example.Translation,
	}, nil
}

// ParticleFill blanks one particle occurrence and builds four candidate
// options around it. The target is a surface form: when the sentence uses
// the same particle twice, selecting that form is accepted no matter which
// occurrence was blanked.
func (g *Generator) ParticleFill(entry *store.Grammar) (*Drill, error) {
	if entry == nil || len(entry.Examples) == 0 {
		return nil, ErrNoExample
	}
	tokens, err := usableTokens(entry.Examples[0].Japanese)
	if err != nil {
		return nil, err
	}
	particles := particleTokens(tokens)
	if len(particles) == 0 {
		return nil, ErrNoParticles
	}

	target := particles[g.rand.Intn(len(particles))]

	distractors := make([]string, 0, len(commonParticles))
	for _, p := range commonParticles {
		if p != target {
			distractors = append(distractors, p)
		}
	}
	g.shuffle(distractors)
	if len(distractors) > 3 {
		distractors = distractors[:3]
	}
	options := append(distractors, target)
	g.shuffle(options)

	return &Drill{
		ID:        shortuuid.New(),
		GrammarID: entry.ID,
		Type:      TypeParticle,
		Tokens:    tokens,
		Target:    target,
		Options:   options,
	}, nil
}

// MeaningChoice builds a multiple-choice drill over the entry's meaning,
// drawing distractors from the pool or the fixed fallback list.
func (g *Generator) MeaningChoice(entry *store.Grammar, pool []string) (*Drill, error) {
	if entry == nil {
		return nil, ErrNoExample
	}
	correct := entry.Meaning
	if correct == "" {
		return nil, ErrNoMeaning
	}

	candidates := distinctOther(pool, correct)
	if len(candidates) == 0 {
		candidates = distinctOther(fallbackMeanings, correct)
	}
	g.shuffle(candidates)
	if len(candidates) > 3 {
		candidates = candidates[:3]
	}
	options := append(candidates, correct)
	g.shuffle(options)

	return &Drill{
		ID:        shortuuid.New(),
		GrammarID: entry.ID,
		Type:      TypeMeaning,
		Pattern:   entry.Pattern,
		Meaning:   correct,
		Options:   options,
	}, nil
}

func (g *Generator) shuffle(list []string) {
	g.rand.Shuffle(len(list), func(i, j int) {
		list[i], list[j] = list[j], list[i]
	})
}

// usableTokens segments the sentence and rejects degenerate results.
func usableTokens(text string) ([]string, error) {
	tokens := sentence.Segment(text)
	if len(tokens) == 0 || (len(tokens) == 1 && tokens[0] == "") {
		return nil, ErrNoTokens
	}
	return tokens, nil
}

func particleTokens(tokens []string) []string {
	var particles []string
	for _, t := range tokens {
		if sentence.IsParticle(t) {
			particles = append(particles, t)
		}
	}
	return particles
}

// distinctOther returns the distinct values of list that differ from excluded.
func distinctOther(list []string, excluded string) []string {
	seen := map[string]bool{excluded: true}
	var out []string
	for _, v := range list {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
