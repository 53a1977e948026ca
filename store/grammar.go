package store

import (
	"context"
)

// Example is one example sentence attached to a grammar entry.
type Example struct {
	Japanese    string `json:"jp"`
	Romaji      string `json:"romaji"`
	Translation string `json:"translation"`
}

// Grammar is the object representing a grammar catalog entry.
// The catalog is written once by the import step and read-only afterwards.
type Grammar struct {
	ID       string    `json:"id"`
	Level    string    `json:"level"`
	Lesson   int       `json:"lesson"`
	Pattern  string    `json:"pattern"`
	Meaning  string    `json:"meaning"`
	Usage    string    `json:"usage"`
	Notes    string    `json:"notes"`
	Examples []Example `json:"examples"`
}

// FindGrammar is the find condition for grammar entries.
type FindGrammar struct {
	ID     *string
	Level  *string
	Lesson *int

	// Search is a case-insensitive substring match across pattern, meaning,
	// usage, notes and example text. When set, results are ordered by
	// (level, lesson) instead of (lesson, id).
	Search *string

	Limit *int
}

// CreateGrammar creates a new grammar entry.
func (s *Store) CreateGrammar(ctx context.Context, create *Grammar) (*Grammar, error) {
	return s.driver.CreateGrammar(ctx, create)
}

// ListGrammars lists grammar entries with filter.
func (s *Store) ListGrammars(ctx context.Context, find *FindGrammar) ([]*Grammar, error) {
	return s.driver.ListGrammars(ctx, find)
}

// GetGrammar gets a single grammar entry, or nil when none matches.
func (s *Store) GetGrammar(ctx context.Context, find *FindGrammar) (*Grammar, error) {
	limit := 1
	find.Limit = &limit
	list, err := s.driver.ListGrammars(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}
