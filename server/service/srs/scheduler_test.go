package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bunpou/bunpou/store"
)

func TestScheduleFirstOutcome(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	rec := Schedule(nil, "g1", true, now)
	require.Equal(t, "g1", rec.GrammarID)
	require.Equal(t, 1.0, rec.IntervalDays)
	require.Equal(t, 2.5, rec.EaseFactor)
	require.Equal(t, now, rec.LastReview)
	require.Equal(t, now.Add(24*time.Hour), rec.NextReview)

	rec = Schedule(nil, "g1", false, now)
	require.Equal(t, 0.5, rec.IntervalDays)
	require.Equal(t, 2.5, rec.EaseFactor)
	require.Equal(t, now.Add(12*time.Hour), rec.NextReview)
}

func TestScheduleProgression(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	// First correct answer.
	rec := Schedule(nil, "g1", true, now)
	require.Equal(t, 1.0, rec.IntervalDays)
	require.Equal(t, 2.5, rec.EaseFactor)

	// Second correct answer: interval 1 * 2.5, ease nudged up.
	rec = Schedule(&rec, "g1", true, now)
	require.Equal(t, 2.5, rec.IntervalDays)
	require.InDelta(t, 2.6, rec.EaseFactor, 1e-9)

	// Failure resets the interval but only dents the ease factor.
	rec = Schedule(&rec, "g1", false, now)
	require.Equal(t, 1.0, rec.IntervalDays)
	require.InDelta(t, 2.4, rec.EaseFactor, 1e-9)
}

func TestScheduleClamps(t *testing.T) {
	now := time.Now()

	prev := store.ReviewRecord{GrammarID: "g1", IntervalDays: 20, EaseFactor: 3.0}
	rec := Schedule(&prev, "g1", true, now)
	require.Equal(t, 30.0, rec.IntervalDays)
	require.Equal(t, 3.0, rec.EaseFactor)

	prev = store.ReviewRecord{GrammarID: "g1", IntervalDays: 5, EaseFactor: 1.3}
	rec = Schedule(&prev, "g1", false, now)
	require.Equal(t, 1.0, rec.IntervalDays)
	require.InDelta(t, 1.3, rec.EaseFactor, 1e-9)
}

func TestReviewQueue(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	ledger := store.NewProgressLedger("v1")
	ledger.LearnedItems = []string{"g1", "g2", "g3", "g4"}
	ledger.ReviewData = []store.ReviewRecord{
		{GrammarID: "g1", NextReview: now.Add(-1 * day)},
		{GrammarID: "g2", NextReview: now.Add(-3 * day)},
		{GrammarID: "g3", NextReview: now.Add(2 * day)},
	}

	queue := ReviewQueue(ledger)
	var ids []string
	for _, rec := range queue {
		ids = append(ids, rec.GrammarID)
	}
	// g4 has never been reviewed and comes first; g3 is scheduled furthest
	// out and goes last, but is still offered.
	require.Equal(t, []string{"g4", "g2", "g1", "g3"}, ids)
}

func TestReviewQueueKeepsFutureItems(t *testing.T) {
	// A visitor whose items are all scheduled for tomorrow still gets a
	// full session, not an empty queue.
	ledger := store.NewProgressLedger("v1")
	ledger.LearnedItems = []string{"g1"}
	ledger.ReviewData = []store.ReviewRecord{
		{GrammarID: "g1", NextReview: time.Now().Add(24 * time.Hour)},
	}

	queue := ReviewQueue(ledger)
	require.Len(t, queue, 1)
	require.Equal(t, "g1", queue[0].GrammarID)
}

func TestReviewQueueIgnoresUnlearned(t *testing.T) {
	ledger := store.NewProgressLedger("v1")
	ledger.ReviewData = []store.ReviewRecord{
		{GrammarID: "g1", NextReview: time.Now().Add(-time.Hour)},
	}

	// g1 was unmarked as learned; its review record alone does not queue it.
	require.Empty(t, ReviewQueue(ledger))
}
