package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseVerdict(t *testing.T) {
	verdict, err := parseVerdict(`{
		"is_correct": true,
		"score": 9.2,
		"correction": "",
		"explanation": "Kalimat sudah benar dan alami.",
		"alternatives": ["私は先生です。"]
	}`)
	require.NoError(t, err)
	require.True(t, verdict.IsCorrect)
	require.Equal(t, 9.2, verdict.Score)
	require.Equal(t, []string{"私は先生です。"}, verdict.Alternatives)
}

func TestParseVerdictCodeFence(t *testing.T) {
	verdict, err := parseVerdict("```json\n{\"is_correct\": false, \"score\": 4.5, \"correction\": \"私は学生です。\", \"explanation\": \"Partikel salah.\", \"alternatives\": []}\n```")
	require.NoError(t, err)
	require.False(t, verdict.IsCorrect)
	require.Equal(t, "私は学生です。", verdict.Correction)
}

func TestParseVerdictMalformed(t *testing.T) {
	_, err := parseVerdict("The sentence looks fine to me!")
	require.Error(t, err)
}

func TestParseVerdictScoreOutOfRange(t *testing.T) {
	_, err := parseVerdict(`{"is_correct": true, "score": 85}`)
	require.Error(t, err)
}

func TestParseVerdictTruncatesAlternatives(t *testing.T) {
	verdict, err := parseVerdict(`{"is_correct": true, "score": 8.0, "alternatives": ["a", "b", "c"]}`)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, verdict.Alternatives)
}

func TestValidatorDisabled(t *testing.T) {
	var v *Validator
	_, err := v.Validate(context.Background(), []string{"Nです"}, "私は学生です。")
	require.ErrorIs(t, err, ErrDisabled)
}
