// Package progress implements the visitor progress ledger: learned and
// favorite sets, study stats and review scheduling.
package progress

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/bunpou/bunpou/server/service/srs"
	"github.com/bunpou/bunpou/store"
)

const (
	xpPerLearned       = 20
	xpPerCorrectAnswer = 15
	xpPerWrongAnswer   = 2
)

// Store is the slice of the storage layer the service needs.
type Store interface {
	GetProgress(ctx context.Context, visitorID string) (*store.ProgressLedger, error)
	UpsertProgress(ctx context.Context, upsert *store.ProgressLedger) (*store.ProgressLedger, error)
}

// Service mutates progress ledgers. Every operation loads the visitor's full
// document, applies the change and writes the document back.
type Service struct {
	store Store

	// NowFunc supplies the current time and is overridable in tests.
	NowFunc func() time.Time
}

func NewService(s Store) *Service {
	return &Service{
		store:   s,
		NowFunc: time.Now,
	}
}

// Get returns the visitor's ledger, a zero default when none is stored.
func (s *Service) Get(ctx context.Context, visitorID string) (*store.ProgressLedger, error) {
	return s.store.GetProgress(ctx, visitorID)
}

// Replace stores the given ledger wholesale for the visitor. Imported
// documents from another device overwrite whatever was there.
func (s *Service) Replace(ctx context.Context, ledger *store.ProgressLedger) (*store.ProgressLedger, error) {
	return s.store.UpsertProgress(ctx, ledger)
}

// MarkLearned adds the grammar id to the learned set, awards XP and advances
// the daily streak. Marking an already-learned item changes nothing.
func (s *Service) MarkLearned(ctx context.Context, visitorID, grammarID string) (*store.ProgressLedger, error) {
	ledger, err := s.store.GetProgress(ctx, visitorID)
	if err != nil {
		return nil, errors.Wrap(err, "get progress")
	}
	if ledger.IsLearned(grammarID) {
		return ledger, nil
	}

	ledger.LearnedItems = append(ledger.LearnedItems, grammarID)
	ledger.Stats.XP += xpPerLearned
	s.touchStreak(ledger)

	return s.store.UpsertProgress(ctx, ledger)
}

// UnmarkLearned removes the grammar id from the learned set. XP, streak and
// the item's review record are left untouched; un-learning is not the
// inverse of learning.
func (s *Service) UnmarkLearned(ctx context.Context, visitorID, grammarID string) (*store.ProgressLedger, error) {
	ledger, err := s.store.GetProgress(ctx, visitorID)
	if err != nil {
		return nil, errors.Wrap(err, "get progress")
	}
	if !ledger.IsLearned(grammarID) {
		return ledger, nil
	}

	kept := ledger.LearnedItems[:0]
	for _, id := range ledger.LearnedItems {
		if id != grammarID {
			kept = append(kept, id)
		}
	}
	ledger.LearnedItems = kept

	return s.store.UpsertProgress(ctx, ledger)
}

// ToggleFavorite flips the grammar id's membership in the favorites set.
func (s *Service) ToggleFavorite(ctx context.Context, visitorID, grammarID string) (*store.ProgressLedger, error) {
	ledger, err := s.store.GetProgress(ctx, visitorID)
	if err != nil {
		return nil, errors.Wrap(err, "get progress")
	}

	if ledger.IsFavorite(grammarID) {
		kept := ledger.Favorites[:0]
		for _, id := range ledger.Favorites {
			if id != grammarID {
				kept = append(kept, id)
			}
		}
		ledger.Favorites = kept
	} else {
		ledger.Favorites = append(ledger.Favorites, grammarID)
	}

	return s.store.UpsertProgress(ctx, ledger)
}

// RecordQuizOutcome updates stats and the review schedule for one answered
// quiz question. Wrong answers still earn a little XP.
func (s *Service) RecordQuizOutcome(ctx context.Context, visitorID, grammarID string, correct bool) (*store.ProgressLedger, error) {
	ledger, err := s.store.GetProgress(ctx, visitorID)
	if err != nil {
		return nil, errors.Wrap(err, "get progress")
	}

	ledger.Stats.TotalQuizzes++
	if correct {
		ledger.Stats.CorrectAnswers++
		ledger.Stats.XP += xpPerCorrectAnswer
	} else {
		ledger.Stats.XP += xpPerWrongAnswer
	}
	s.touchStreak(ledger)

	now := s.NowFunc()
	next := srs.Schedule(ledger.FindReview(grammarID), grammarID, correct, now)
	if rec := ledger.FindReview(grammarID); rec != nil {
		*rec = next
	} else {
		ledger.ReviewData = append(ledger.ReviewData, next)
	}

	return s.store.UpsertProgress(ctx, ledger)
}

// ReviewQueue returns the visitor's learned items ordered by review
// priority, most urgent first.
func (s *Service) ReviewQueue(ctx context.Context, visitorID string) ([]store.ReviewRecord, error) {
	ledger, err := s.store.GetProgress(ctx, visitorID)
	if err != nil {
		return nil, errors.Wrap(err, "get progress")
	}
	return srs.ReviewQueue(ledger), nil
}

// touchStreak advances the daily streak when this is the first study
// activity of the calendar day.
func (s *Service) touchStreak(ledger *store.ProgressLedger) {
	today := s.NowFunc().Format("2006-01-02")
	if ledger.Stats.LastStudyDate == today {
		return
	}
	ledger.Stats.Streak++
	ledger.Stats.LastStudyDate = today
}
