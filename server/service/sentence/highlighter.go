package sentence

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Class is the display classification of one token.
type Class string

const (
	// ClassGrammar marks tokens carrying the pattern's grammar core.
	ClassGrammar Class = "grammar"
	// ClassParticle marks tokens that are grammatical particles.
	ClassParticle Class = "particle"
	// ClassPlain marks everything else.
	ClassPlain Class = "plain"
)

// Span is one token annotated with its display classification.
type Span struct {
	Text  string `json:"text"`
	Class Class  `json:"class"`
}

// placeholderPattern matches the template markers of a pattern string
// (conjugation placeholders, digits, tildes, parentheses).
var placeholderPattern = regexp.MustCompile(`[A-Z0-9~～()]+`)

// ignoreCore can never equal or be contained in a real token, so patterns
// that are all placeholder get no grammar highlighting at all.
const ignoreCore = "###IGNORE###"

var particles = map[string]bool{
	"は": true, "が": true, "を": true, "に": true, "で": true,
	"へ": true, "と": true, "も": true, "から": true, "まで": true,
	"ね": true, "よ": true, "か": true,
}

// IsParticle reports whether the token is one of the closed particle set
// used for highlighting and particle drills.
func IsParticle(token string) bool {
	return particles[token]
}

// GrammarCore strips placeholder markers from a pattern string, leaving the
// invariant part that shows up verbatim in example sentences.
func GrammarCore(pattern string) string {
	core := strings.TrimSpace(placeholderPattern.ReplaceAllString(pattern, ""))
	if core == "" {
		return ignoreCore
	}
	return core
}

// Highlight segments the sentence and classifies each token against the
// entry's pattern: grammar core first, then particles, then plain.
func Highlight(text, pattern string) []Span {
	core := GrammarCore(pattern)
	tokens := Segment(text)

	spans := make([]Span, 0, len(tokens))
	for _, token := range tokens {
		class := ClassPlain
		switch {
		case token == core || (utf8.RuneCountInString(core) > 1 && strings.Contains(token, core)):
			class = ClassGrammar
		case IsParticle(token):
			class = ClassParticle
		}
		spans = append(spans, Span{Text: token, Class: class})
	}
	return spans
}
