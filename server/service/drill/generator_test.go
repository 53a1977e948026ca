package drill

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bunpou/bunpou/store"
)

func testEntry() *store.Grammar {
	return &store.Grammar{
		ID:      "n5-01-desu",
		Level:   "N5",
		Lesson:  1,
		Pattern: "Nです",
		Meaning: "To be (polite copula)",
		Examples: []store.Example{
			{
				Japanese:    "私は学生です。",
				Romaji:      "watashi wa gakusei desu",
				Translation: "I am a student.",
			},
		},
	}
}

func TestScramble(t *testing.T) {
	g := NewGenerator(rand.NewSource(1))
	d, err := g.Scramble(testEntry())
	require.NoError(t, err)

	require.Equal(t, TypeScramble, d.Type)
	require.Equal(t, "私は学生です。", d.Sentence)
	require.Equal(t, "I am a student.", d.Translation)
	require.NotEmpty(t, d.ID)

	// The bank is a permutation of the token sequence.
	want := []string{"私", "は", "学生", "です。"}
	got := append([]string(nil), d.Bank...)
	sort.Strings(got)
	sort.Strings(want)
	require.Equal(t, want, got)
}

func TestParticleFill(t *testing.T) {
	g := NewGenerator(rand.NewSource(1))
	d, err := g.ParticleFill(testEntry())
	require.NoError(t, err)

	require.Equal(t, TypeParticle, d.Type)
	require.Equal(t, "は", d.Target)
	require.Equal(t, []string{"私", "は", "学生", "です。"}, d.Tokens)

	require.Len(t, d.Options, 4)
	require.Contains(t, d.Options, d.Target)
	seen := map[string]bool{}
	for _, o := range d.Options {
		require.False(t, seen[o], "duplicate option %q", o)
		seen[o] = true
	}
}

func TestParticleFillNoParticles(t *testing.T) {
	entry := testEntry()
	entry.Examples[0].Japanese = "おはよう"

	g := NewGenerator(rand.NewSource(1))
	_, err := g.ParticleFill(entry)
	require.ErrorIs(t, err, ErrNoParticles)
}

func TestMeaningChoice(t *testing.T) {
	pool := []string{
		"To be (polite copula)", // same as correct, must be excluded
		"Indicates a topic",
		"Expresses existence",
		"Indicates a direction",
		"Marks the object",
	}

	g := NewGenerator(rand.NewSource(1))
	d, err := g.MeaningChoice(testEntry(), pool)
	require.NoError(t, err)

	require.Equal(t, TypeMeaning, d.Type)
	require.Equal(t, "Nです", d.Pattern)
	require.Len(t, d.Options, 4)
	require.Contains(t, d.Options, "To be (polite copula)")
	seen := map[string]bool{}
	for _, o := range d.Options {
		require.False(t, seen[o], "duplicate option %q", o)
		seen[o] = true
	}
}

func TestMeaningChoiceFallbackPool(t *testing.T) {
	g := NewGenerator(rand.NewSource(1))
	d, err := g.MeaningChoice(testEntry(), nil)
	require.NoError(t, err)

	require.Len(t, d.Options, 4)
	require.Contains(t, d.Options, "To be (polite copula)")
	for _, o := range d.Options {
		if o == d.Meaning {
			continue
		}
		require.Contains(t, fallbackMeanings, o)
	}
}

func TestGeneratePracticeMode(t *testing.T) {
	g := NewGenerator(rand.NewSource(7))

	// Practice mode never produces meaning drills for a usable sentence.
	for i := 0; i < 50; i++ {
		d, err := g.Generate(testEntry(), nil, ModePractice)
		require.NoError(t, err)
		require.NotEqual(t, TypeMeaning, d.Type)
	}
}

func TestGeneratePracticeModeNoParticles(t *testing.T) {
	entry := testEntry()
	entry.Examples[0].Japanese = "おはようございます"

	g := NewGenerator(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		d, err := g.Generate(entry, nil, ModePractice)
		require.NoError(t, err)
		require.Equal(t, TypeScramble, d.Type)
	}
}

func TestGenerateQuizModeNoParticles(t *testing.T) {
	entry := testEntry()
	entry.Examples[0].Japanese = "おはようございます"

	g := NewGenerator(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		d, err := g.Generate(entry, nil, ModeQuiz)
		require.NoError(t, err)
		require.NotEqual(t, TypeParticle, d.Type)
	}
}

func TestGenerateDegenerateSentence(t *testing.T) {
	entry := testEntry()
	entry.Examples[0].Japanese = ""

	g := NewGenerator(rand.NewSource(1))
	d, err := g.Generate(entry, nil, ModeQuiz)
	require.NoError(t, err)
	require.Equal(t, TypeMeaning, d.Type)
}

func TestGenerateNoExample(t *testing.T) {
	g := NewGenerator(rand.NewSource(1))
	_, err := g.Generate(&store.Grammar{ID: "x"}, nil, ModeQuiz)
	require.ErrorIs(t, err, ErrNoExample)
}
