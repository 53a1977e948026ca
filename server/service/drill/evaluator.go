package drill

import (
	"container/list"
	"strings"
	"sync"
	"unicode"

	"github.com/pkg/errors"
)

var (
	// ErrAlreadyEvaluated is returned for a drill instance that already
	// produced a verdict; the caller must not record anything for it.
	ErrAlreadyEvaluated = errors.New("drill already evaluated")
	// ErrIncomplete is returned for a scramble answer while tokens are
	// still in the bank.
	ErrIncomplete = errors.New("scramble bank is not empty yet")
	// ErrUnknownType is returned for a drill with an unrecognized type.
	ErrUnknownType = errors.New("unknown drill type")
)

// Answer is the user state submitted for evaluation: the placed token
// sequence for a scramble, or the selected option otherwise.
type Answer struct {
	Placed   []string `json:"placed,omitempty"`
	Selected string   `json:"selected,omitempty"`
}

// Verdict is the result of one drill evaluation.
type Verdict struct {
	DrillID   string `json:"drillId"`
	GrammarID string `json:"grammarId"`
	Correct   bool   `json:"correct"`
}

// Evaluator scores drill answers. Each drill instance yields at most one
// verdict: repeated submissions for the same drill ID are rejected, so a
// double click can never double-count a quiz outcome.
type Evaluator struct {
	mu   sync.Mutex
	seen map[string]*list.Element
	lru  *list.List
	cap  int
}

// NewEvaluator creates an Evaluator. The seen-drill set is bounded; drills
// are short-lived so evicting the oldest entries is safe.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		seen: make(map[string]*list.Element),
		lru:  list.New(),
		cap:  4096,
	}
}

// Evaluate scores the answer against the drill. The first call for a drill
// ID wins; later calls return ErrAlreadyEvaluated.
func (e *Evaluator) Evaluate(d *Drill, answer Answer) (*Verdict, error) {
	var correct bool
	switch d.Type {
	case TypeScramble:
		if len(answer.Placed) < len(d.Bank) {
			return nil, ErrIncomplete
		}
		correct = stripSpaces(strings.Join(answer.Placed, "")) == stripSpaces(d.Sentence)
	case TypeParticle:
		correct = answer.Selected == d.Target
	case TypeMeaning:
		correct = answer.Selected == d.Meaning
	default:
		return nil, ErrUnknownType
	}

	if !e.record(d.ID) {
		return nil, ErrAlreadyEvaluated
	}

	return &Verdict{
		DrillID:   d.ID,
		GrammarID: d.GrammarID,
		Correct:   correct,
	}, nil
}

// record marks the drill ID as evaluated; false means it was already seen.
func (e *Evaluator) record(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.seen[id]; ok {
		return false
	}
	e.seen[id] = e.lru.PushFront(id)
	for len(e.seen) > e.cap {
		oldest := e.lru.Back()
		e.lru.Remove(oldest)
		delete(e.seen, oldest.Value.(string))
	}
	return true
}

// stripSpaces removes all whitespace, including the full-width space, so
// token joins compare equal to author-spaced sentences.
func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
