package service

import (
	"strings"
	"time"

	"github.com/itsGods/Notes-to-Store/internal/domain"
)

type RecencyBucket string

const (
	BucketToday       RecencyBucket = "Today"
	BucketYesterday   RecencyBucket = "Yesterday"
	BucketPrevious30d RecencyBucket = "Previous 30 Days"
	BucketOlder       RecencyBucket = "Older"
)

var bucketOrder = []RecencyBucket{BucketToday, BucketYesterday, BucketPrevious30d, BucketOlder}

type NoteGroup struct {
	Bucket RecencyBucket  `json:"bucket"`
	Notes  []*domain.Note `json:"notes"`
}

// FilterNotes returns the notes whose title or content contains query as a
// case-insensitive substring, preserving input order. An empty query
// returns the input untouched. Pure: the input slice is never mutated.
func FilterNotes(notes []*domain.Note, query string) []*domain.Note {
	if query == "" {
		return notes
	}

	q := strings.ToLower(query)

	var filtered []*domain.Note
	for _, note := range notes {
		if strings.Contains(strings.ToLower(note.Title), q) ||
			strings.Contains(strings.ToLower(note.Content), q) {
			filtered = append(filtered, note)
		}
	}

	return filtered
}

// GroupByRecency partitions notes into Today / Yesterday / Previous 30 Days
// / Older relative to now. Every note lands in exactly one bucket; in-bucket
// order is inherited from the input; empty buckets are omitted.
func GroupByRecency(notes []*domain.Note, now time.Time) []NoteGroup {
	buckets := make(map[RecencyBucket][]*domain.Note)

	for _, note := range notes {
		b := bucketFor(note.UpdatedAt, now)
		buckets[b] = append(buckets[b], note)
	}

	var groups []NoteGroup
	for _, b := range bucketOrder {
		if len(buckets[b]) > 0 {
			groups = append(groups, NoteGroup{Bucket: b, Notes: buckets[b]})
		}
	}

	return groups
}

func bucketFor(updatedAt, now time.Time) RecencyBucket {
	if sameCalendarDay(updatedAt, now) {
		return BucketToday
	}
	if sameCalendarDay(updatedAt, now.AddDate(0, 0, -1)) {
		return BucketYesterday
	}
	// Elapsed wall-clock time, deliberately not calendar days.
	if now.Sub(updatedAt) < 30*24*time.Hour {
		return BucketPrevious30d
	}
	return BucketOlder
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
