package sentence

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{
			text: "わたしはがくせいです。",
			want: []string{"わたしはがくせいです。"},
		},
		{
			text: "私は学生です。",
			want: []string{"私", "は", "学生", "です。"},
		},
		{
			text: "元気です。",
			want: []string{"元気", "です。"},
		},
		{
			text: "テレビを見ます",
			want: []string{"テレビ", "を", "見", "ます"},
		},
		{
			text: "私 は 学生 です",
			want: []string{"私", "は", "学生", "です"},
		},
		{
			text: "  私は学生です。  ",
			want: []string{"私", "は", "学生", "です。"},
		},
		{
			text: "CDを買います",
			want: []string{"CD", "を", "買", "います"},
		},
		{
			text: "",
			want: []string{""},
		},
		{
			text: "。",
			want: []string{"。"},
		},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Segment(tt.text), "text: %q", tt.text)
	}
}

func TestSegmentJoinPreservesText(t *testing.T) {
	for _, text := range []string{
		"私は学生です。",
		"山田さんはコーヒーを飲みます。",
		"これはペンですか？",
	} {
		joined := ""
		for _, token := range Segment(text) {
			joined += token
		}
		require.Equal(t, text, joined)
	}
}

func TestSegmentIdempotent(t *testing.T) {
	// Re-segmenting the concatenation of Segment's own output yields the
	// same token sequence as segmenting the original sentence.
	for _, text := range []string{
		"私は学生です。",
		"テレビを見ます",
		"山田さんはコーヒーを飲みます。",
		"CDを買います",
		"これはペンですか？",
	} {
		tokens := Segment(text)
		joined := ""
		for _, token := range tokens {
			joined += token
		}
		require.Equal(t, tokens, Segment(joined), "text: %q", text)
	}
}
