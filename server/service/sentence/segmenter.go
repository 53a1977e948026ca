// Package sentence provides script-aware segmentation and syntax
// highlighting for Japanese example sentences.
package sentence

import (
	"regexp"
	"strings"
)

// Segmentation is a structural approximation of morpheme boundaries: a token
// is a maximal run of one script class. Compound words crossing script
// boundaries will over- or under-segment; that is the accepted baseline, not
// a bug.
var (
	tokenPattern       = regexp.MustCompile(`[一-龯々]+|[ァ-ンー]+|[ぁ-ん]+|[a-zA-Z0-9]+|[。、！？.!?]+`)
	punctuationPattern = regexp.MustCompile(`^[。、！？.!?]+$`)
)

// Segment splits a sentence into orthographic tokens: kanji runs, katakana
// runs, hiragana runs, latin/digit runs, with terminal punctuation merged
// onto the preceding token. Sentences that already contain spaces are split
// on whitespace instead (content authored pre-segmented).
//
// Segment("") returns [""]; callers that cannot use an empty token must
// guard before calling.
func Segment(text string) []string {
	cleanText := strings.TrimSpace(text)

	var tokens []string
	if strings.ContainsRune(cleanText, ' ') {
		tokens = strings.Fields(cleanText)
	} else {
		tokens = tokenPattern.FindAllString(cleanText, -1)
		if tokens == nil {
			tokens = []string{cleanText}
		}
	}

	merged := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if punctuationPattern.MatchString(token) && len(merged) > 0 {
			merged[len(merged)-1] += token
		} else {
			merged = append(merged, token)
		}
	}
	return merged
}
