package drill

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func scrambleDrill(id string) *Drill {
	return &Drill{
		ID:        id,
		GrammarID: "n5-01-desu",
		Type:      TypeScramble,
		Sentence:  "私は学生です。",
		Bank:      []string{"学生", "私", "です。", "は"},
	}
}

func TestEvaluateScramble(t *testing.T) {
	e := NewEvaluator()

	v, err := e.Evaluate(scrambleDrill("d1"), Answer{
		Placed: []string{"私", "は", "学生", "です。"},
	})
	require.NoError(t, err)
	require.True(t, v.Correct)
	require.Equal(t, "d1", v.DrillID)
	require.Equal(t, "n5-01-desu", v.GrammarID)

	v, err = e.Evaluate(scrambleDrill("d2"), Answer{
		Placed: []string{"学生", "は", "私", "です。"},
	})
	require.NoError(t, err)
	require.False(t, v.Correct)
}

func TestEvaluateScrambleSpacedSentence(t *testing.T) {
	e := NewEvaluator()
	d := &Drill{
		ID:       "d1",
		Type:     TypeScramble,
		Sentence: "私 は 学生 です",
		Bank:     []string{"学生", "私", "です", "は"},
	}
	v, err := e.Evaluate(d, Answer{Placed: []string{"私", "は", "学生", "です"}})
	require.NoError(t, err)
	require.True(t, v.Correct)
}

func TestEvaluateScrambleIncomplete(t *testing.T) {
	e := NewEvaluator()
	_, err := e.Evaluate(scrambleDrill("d1"), Answer{Placed: []string{"私", "は"}})
	require.ErrorIs(t, err, ErrIncomplete)

	// An incomplete submission does not consume the drill.
	_, err = e.Evaluate(scrambleDrill("d1"), Answer{
		Placed: []string{"私", "は", "学生", "です。"},
	})
	require.NoError(t, err)
}

func TestEvaluateParticle(t *testing.T) {
	e := NewEvaluator()
	d := &Drill{
		ID:      "d1",
		Type:    TypeParticle,
		Tokens:  []string{"私", "は", "学生", "です。"},
		Target:  "は",
		Options: []string{"が", "は", "を", "に"},
	}

	v, err := e.Evaluate(d, Answer{Selected: "は"})
	require.NoError(t, err)
	require.True(t, v.Correct)

	d.ID = "d2"
	v, err = e.Evaluate(d, Answer{Selected: "が"})
	require.NoError(t, err)
	require.False(t, v.Correct)
}

func TestEvaluateMeaning(t *testing.T) {
	e := NewEvaluator()
	d := &Drill{
		ID:      "d1",
		Type:    TypeMeaning,
		Meaning: "To be (polite copula)",
		Options: []string{"To be (polite copula)", "Indicates a topic"},
	}

	v, err := e.Evaluate(d, Answer{Selected: "To be (polite copula)"})
	require.NoError(t, err)
	require.True(t, v.Correct)
}

func TestEvaluateOnce(t *testing.T) {
	e := NewEvaluator()
	d := scrambleDrill("d1")
	answer := Answer{Placed: []string{"私", "は", "学生", "です。"}}

	_, err := e.Evaluate(d, answer)
	require.NoError(t, err)

	_, err = e.Evaluate(d, answer)
	require.ErrorIs(t, err, ErrAlreadyEvaluated)
}

func TestEvaluateUnknownType(t *testing.T) {
	e := NewEvaluator()
	_, err := e.Evaluate(&Drill{ID: "d1", Type: Type("bogus")}, Answer{})
	require.ErrorIs(t, err, ErrUnknownType)
}
