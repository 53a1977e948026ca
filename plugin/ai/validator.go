// Package ai validates learner-built sentences against a target grammar
// pattern using an OpenAI-compatible chat completion endpoint.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/sync/semaphore"

	"github.com/bunpou/bunpou/internal/profile"
)

var (
	// ErrDisabled is returned when no API key is configured.
	ErrDisabled = errors.New("ai validation is not configured")
	// ErrUnavailable is returned when the upstream model cannot be reached
	// or answers with garbage.
	ErrUnavailable = errors.New("ai validation unavailable")
)

const validatorSystemPrompt = `Anda adalah Sensei (Guru) Bahasa Jepang veteran yang sangat teliti, cerdas, humoris, dan suportif.
Tugas Anda adalah memvalidasi kalimat siswa berdasarkan "Kata Wajib" (pola grammar target).

PEDOMAN PENILAIAN UTAMA:
1. **Logika & Makna (CRITICAL)**: Cek apakah kalimat masuk akal secara logika dunia nyata?
2. **Ketepatan Grammar**: Cek partikel, konjugasi verba/adjektiva, dan urutan kata.
3. **Kewajaran (Naturalness)**: Apakah terdengar kaku atau alami?

INSTRUKSI OUTPUT (JSON):
1. "score": Berikan nilai spesifik format desimal (contoh: 6.8, 7.5, 8.9, 9.2).
2. "correction": Berikan versi kalimat yang paling alami.
3. "explanation": Gunakan Bahasa Indonesia. Struktur: Analisis Makna, Analisis Grammar, TIPS MENGINGAT.
4. "is_correct": true jika grammar bisa dimengerti, false jika salah total.

Output JSON Wajib:
{
    "is_correct": boolean,
    "score": number,
    "correction": "string",
    "explanation": "string",
    "alternatives": ["string (Sopan)", "string (Kasual)"]
}`

// Verdict is the structured evaluation of one submitted sentence. Score is
// on a 0 to 10 scale, fractional.
type Verdict struct {
	IsCorrect    bool     `json:"is_correct"`
	Score        float64  `json:"score"`
	Correction   string   `json:"correction"`
	Explanation  string   `json:"explanation"`
	Alternatives []string `json:"alternatives"`
}

// Validator asks the configured chat model for sentence verdicts. Concurrent
// upstream calls are capped so a burst of submissions cannot exhaust the
// provider quota.
type Validator struct {
	client *openai.Client
	model  string
	sem    *semaphore.Weighted
}

const maxConcurrentCalls = 4

// NewValidator creates a Validator from the profile, or nil when AI
// validation is disabled.
func NewValidator(p *profile.Profile) *Validator {
	if !p.IsAIEnabled() {
		return nil
	}
	cfg := openai.DefaultConfig(p.AIAPIKey)
	cfg.BaseURL = p.AIBaseURL
	return &Validator{
		client: openai.NewClientWithConfig(cfg),
		model:  p.AIModel,
		sem:    semaphore.NewWeighted(maxConcurrentCalls),
	}
}

// Validate evaluates the sentence against the target words. The verdict
// comes straight from the model; a response that is not the expected JSON
// shape is treated as an upstream failure, never shown to the user raw.
func (v *Validator) Validate(ctx context.Context, words []string, sentence string) (*Verdict, error) {
	if v == nil {
		return nil, ErrDisabled
	}
	if err := v.sem.Acquire(ctx, 1); err != nil {
		return nil, errors.Wrap(err, "acquire validation slot")
	}
	defer v.sem.Release(1)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:       v.model,
		Temperature: 0.6,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: validatorSystemPrompt,
			},
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Kata Wajib (Target Grammar): [%s]\nKalimat Siswa: %q",
					strings.Join(words, ", "), sentence),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	start := time.Now()
	resp, err := v.client.CreateChatCompletion(ctx, req)
	if err != nil {
		slog.Error("sentence validation request failed",
			"error", err,
			"latency_ms", time.Since(start).Milliseconds())
		return nil, errors.Wrap(ErrUnavailable, err.Error())
	}
	if len(resp.Choices) == 0 {
		return nil, errors.Wrap(ErrUnavailable, "empty completion")
	}

	verdict, err := parseVerdict(resp.Choices[0].Message.Content)
	if err != nil {
		slog.Warn("sentence validation returned malformed verdict",
			"content", resp.Choices[0].Message.Content,
			"error", err)
		return nil, errors.Wrap(ErrUnavailable, err.Error())
	}

	slog.Debug("sentence validated",
		"correct", verdict.IsCorrect,
		"score", verdict.Score,
		"latency_ms", time.Since(start).Milliseconds(),
		"tokens", resp.Usage.TotalTokens)
	return verdict, nil
}

// parseVerdict decodes the model output, tolerating code fences some models
// wrap around JSON despite the response format hint.
func parseVerdict(content string) (*Verdict, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	verdict := &Verdict{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), verdict); err != nil {
		return nil, errors.Wrap(err, "decode verdict")
	}
	if verdict.Score < 0 || verdict.Score > 10 {
		return nil, errors.Errorf("score out of range: %v", verdict.Score)
	}
	if len(verdict.Alternatives) > 2 {
		verdict.Alternatives = verdict.Alternatives[:2]
	}
	return verdict, nil
}
