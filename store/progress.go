package store

import (
	"context"
	"time"
)

// Stats holds the aggregate study counters of one visitor.
type Stats struct {
	XP             int    `json:"xp"`
	Streak         int    `json:"streak"`
	LastStudyDate  string `json:"lastStudyDate"` // calendar date YYYY-MM-DD, "" if never
	TotalQuizzes   int    `json:"totalQuizzes"`
	CorrectAnswers int    `json:"correctAnswers"`
}

// ReviewRecord is the spaced-repetition schedule of one (visitor, grammar) pair.
// Records are created on the first quiz outcome and rescheduled afterwards,
// never deleted.
type ReviewRecord struct {
	GrammarID    string    `json:"grammarId"`
	IntervalDays float64   `json:"interval"`
	EaseFactor   float64   `json:"easeFactor"`
	LastReview   time.Time `json:"lastReview"`
	NextReview   time.Time `json:"nextReview"`
}

// ProgressLedger is the full progress document of one visitor. It is
// persisted as a whole on every mutation; the last write wins when two
// sessions for the same visitor interleave.
type ProgressLedger struct {
	VisitorID    string         `json:"visitorId"`
	LearnedItems []string       `json:"learnedItems"`
	Favorites    []string       `json:"favorites"`
	Stats        Stats          `json:"stats"`
	ReviewData   []ReviewRecord `json:"reviewData"`
}

// NewProgressLedger returns the zero-valued ledger handed out for a visitor
// that has no stored record yet.
func NewProgressLedger(visitorID string) *ProgressLedger {
	return &ProgressLedger{
		VisitorID:    visitorID,
		LearnedItems: []string{},
		Favorites:    []string{},
		ReviewData:   []ReviewRecord{},
	}
}

// IsLearned reports whether the grammar id has been marked learned.
func (l *ProgressLedger) IsLearned(grammarID string) bool {
	for _, id := range l.LearnedItems {
		if id == grammarID {
			return true
		}
	}
	return false
}

// IsFavorite reports whether the grammar id is in the favorites set.
func (l *ProgressLedger) IsFavorite(grammarID string) bool {
	for _, id := range l.Favorites {
		if id == grammarID {
			return true
		}
	}
	return false
}

// FindReview returns the review record for the grammar id, or nil.
func (l *ProgressLedger) FindReview(grammarID string) *ReviewRecord {
	for i := range l.ReviewData {
		if l.ReviewData[i].GrammarID == grammarID {
			return &l.ReviewData[i]
		}
	}
	return nil
}

// GetProgress returns the ledger stored for the visitor, or a zero-valued
// default when none exists yet.
func (s *Store) GetProgress(ctx context.Context, visitorID string) (*ProgressLedger, error) {
	ledger, err := s.driver.GetProgress(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	if ledger == nil {
		return NewProgressLedger(visitorID), nil
	}
	return ledger, nil
}

// UpsertProgress replaces the visitor's stored ledger with the given value,
// creating the record when absent, and returns the stored value.
func (s *Store) UpsertProgress(ctx context.Context, upsert *ProgressLedger) (*ProgressLedger, error) {
	return s.driver.UpsertProgress(ctx, upsert)
}
