// Package srs implements the spaced-repetition scheduler used to plan
// grammar reviews from quiz outcomes.
package srs

import (
	"sort"
	"time"

	"github.com/bunpou/bunpou/store"
)

const (
	initialEase = 2.5
	minEase     = 1.3
	maxEase     = 3.0
	easeReward  = 0.1
	easePenalty = 0.2

	maxIntervalDays = 30
)

// Schedule computes the next review record for a grammar entry after one
// quiz outcome. prev is the entry's current record, nil when it has never
// been reviewed.
//
// Intervals grow multiplicatively by the ease factor on success and collapse
// to one day on failure. The ease factor is a long-term signal and is never
// reset, only nudged inside [1.3, 3.0].
func Schedule(prev *store.ReviewRecord, grammarID string, correct bool, now time.Time) store.ReviewRecord {
	next := store.ReviewRecord{GrammarID: grammarID}

	switch {
	case prev == nil:
		next.EaseFactor = initialEase
		if correct {
			next.IntervalDays = 1
		} else {
			next.IntervalDays = 0.5
		}
	case correct:
		next.IntervalDays = prev.IntervalDays * prev.EaseFactor
		if next.IntervalDays > maxIntervalDays {
			next.IntervalDays = maxIntervalDays
		}
		next.EaseFactor = prev.EaseFactor + easeReward
		if next.EaseFactor > maxEase {
			next.EaseFactor = maxEase
		}
	default:
		next.IntervalDays = 1
		next.EaseFactor = prev.EaseFactor - easePenalty
		if next.EaseFactor < minEase {
			next.EaseFactor = minEase
		}
	}

	next.LastReview = now
	next.NextReview = now.Add(time.Duration(next.IntervalDays * float64(24*time.Hour)))
	return next
}

// ReviewQueue orders the visitor's learned items by review priority: items
// never quizzed come first (due immediately), then everything else by
// ascending next review time. Items scheduled in the future stay at the back
// of the queue rather than being dropped, so a session can run ahead of
// schedule.
func ReviewQueue(ledger *store.ProgressLedger) []store.ReviewRecord {
	var never, scheduled []store.ReviewRecord
	for _, id := range ledger.LearnedItems {
		rec := ledger.FindReview(id)
		if rec == nil {
			never = append(never, store.ReviewRecord{GrammarID: id})
			continue
		}
		scheduled = append(scheduled, *rec)
	}

	sort.SliceStable(scheduled, func(i, j int) bool {
		return scheduled[i].NextReview.Before(scheduled[j].NextReview)
	})
	return append(never, scheduled...)
}
