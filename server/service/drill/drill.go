// Package drill generates and evaluates interactive grammar drills:
// sentence scramble, particle fill and meaning multiple-choice.
package drill

import (
	"github.com/pkg/errors"
)

// Type identifies the kind of a drill instance.
type Type string

const (
	// TypeScramble asks the user to rebuild a sentence from shuffled tokens.
	TypeScramble Type = "scramble"
	// TypeParticle blanks one particle and asks the user to pick it back.
	TypeParticle Type = "particle"
	// TypeMeaning asks for the meaning of the pattern among distractors.
	TypeMeaning Type = "meaning"
)

// Mode selects the drill-type weighting.
type Mode string

const (
	// ModeQuiz is the batch quiz context: uniform pick among all types
	// available for the sentence.
	ModeQuiz Mode = "quiz"
	// ModePractice is the single-item practice context: particle fill and
	// scramble only, even odds.
	ModePractice Mode = "practice"
)

var (
	// ErrNoExample is returned for an entry without example sentences.
	ErrNoExample = errors.New("grammar entry has no example sentence")
	// ErrNoTokens is returned when segmentation yields no usable tokens.
	ErrNoTokens = errors.New("sentence segmentation produced no usable tokens")
	// ErrNoParticles is returned when a particle drill is requested for a
	// sentence without particle tokens.
	ErrNoParticles = errors.New("sentence contains no particle tokens")
	// ErrNoMeaning is returned when a meaning drill is requested for an
	// entry without meaning text.
	ErrNoMeaning = errors.New("grammar entry has no meaning text")
)

// Drill is the transient state of one exercise instance. It is handed to the
// client as-is and comes back for evaluation; it is never persisted.
//
// Invariants per type:
//   - scramble: Bank is a permutation of the sentence's full token sequence.
//   - particle: Target is one of Tokens and is contained in Options.
//   - meaning: Meaning is contained in Options; all Options are distinct.
type Drill struct {
	ID        string `json:"id"`
	GrammarID string `json:"grammarId"`
	Type      Type   `json:"type"`

	// Scramble fields.
	Sentence    string   `json:"sentence,omitempty"`
	Bank        []string `json:"bank,omitempty"`
	Translation string   `json:"translation,omitempty"`

	// Particle fields.
	Tokens []string `json:"tokens,omitempty"`
	Target string   `json:"target,omitempty"`

	// Meaning fields.
	Pattern string `json:"pattern,omitempty"`
	Meaning string `json:"meaning,omitempty"`

	// Options carries the candidate answers for particle and meaning drills.
	Options []string `json:"options,omitempty"`
}
