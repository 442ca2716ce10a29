package service

import (
	"testing"
	"time"

	"github.com/itsGods/Notes-to-Store/internal/domain"
)

func note(id, title, content string, updatedAt time.Time) *domain.Note {
	return &domain.Note{
		ID:        id,
		OwnerID:   "owner1",
		Title:     title,
		Content:   content,
		UpdatedAt: updatedAt,
	}
}

func TestFilterNotes(t *testing.T) {
	now := time.Now()
	collection := []*domain.Note{
		note("1", "Groceries", "Buy milk and eggs", now),
		note("2", "Work", "standup at nine", now),
		note("3", "Ideas", "note-taking app with MILK theme", now),
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "empty query returns everything", query: "", wantIDs: []string{"1", "2", "3"}},
		{name: "matches title", query: "groc", wantIDs: []string{"1"}},
		{name: "matches content", query: "standup", wantIDs: []string{"2"}},
		{name: "case insensitive across fields", query: "milk", wantIDs: []string{"1", "3"}},
		{name: "no matches", query: "zebra", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterNotes(collection, tt.query)

			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d notes, want %d", len(got), len(tt.wantIDs))
			}
			for i, n := range got {
				if n.ID != tt.wantIDs[i] {
					t.Errorf("result[%d] = %s, want %s", i, n.ID, tt.wantIDs[i])
				}
			}
		})
	}

	if len(collection) != 3 {
		t.Error("FilterNotes mutated its input")
	}
}

func TestFilterNotesIsSubset(t *testing.T) {
	now := time.Now()
	collection := []*domain.Note{
		note("1", "alpha", "", now),
		note("2", "beta", "", now),
	}

	members := make(map[string]bool)
	for _, n := range collection {
		members[n.ID] = true
	}

	for _, query := range []string{"", "a", "alp", "nothing-matches"} {
		for _, n := range FilterNotes(collection, query) {
			if !members[n.ID] {
				t.Errorf("filter(%q) produced note %s not in input", query, n.ID)
			}
		}
	}
}

func TestGroupByRecency(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	collection := []*domain.Note{
		note("today", "t", "", time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC)),
		note("yesterday", "y", "", time.Date(2025, 3, 14, 23, 30, 0, 0, time.UTC)),
		note("recent-a", "r", "", now.Add(-3 * 24 * time.Hour)),
		note("recent-b", "r", "", now.Add(-29*24*time.Hour - 23*time.Hour)),
		note("old", "o", "", now.Add(-31 * 24 * time.Hour)),
	}

	groups := GroupByRecency(collection, now)

	want := map[RecencyBucket][]string{
		BucketToday:       {"today"},
		BucketYesterday:   {"yesterday"},
		BucketPrevious30d: {"recent-a", "recent-b"},
		BucketOlder:       {"old"},
	}

	if len(groups) != len(want) {
		t.Fatalf("got %d groups, want %d", len(groups), len(want))
	}

	for i, b := range []RecencyBucket{BucketToday, BucketYesterday, BucketPrevious30d, BucketOlder} {
		if groups[i].Bucket != b {
			t.Fatalf("group[%d] = %s, want %s", i, groups[i].Bucket, b)
		}
		ids := want[b]
		if len(groups[i].Notes) != len(ids) {
			t.Fatalf("bucket %s has %d notes, want %d", b, len(groups[i].Notes), len(ids))
		}
		for j, n := range groups[i].Notes {
			if n.ID != ids[j] {
				t.Errorf("bucket %s[%d] = %s, want %s", b, j, n.ID, ids[j])
			}
		}
	}
}

func TestGroupByRecencyPartitionIsExhaustiveAndDisjoint(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	var collection []*domain.Note
	for i := 0; i < 60; i++ {
		collection = append(collection, note(
			time.Duration(i).String(), "n", "",
			now.Add(-time.Duration(i)*13*time.Hour),
		))
	}

	groups := GroupByRecency(collection, now)

	seen := make(map[string]int)
	for _, g := range groups {
		for _, n := range g.Notes {
			seen[n.ID]++
		}
	}

	if len(seen) != len(collection) {
		t.Errorf("partition not exhaustive: %d of %d notes grouped", len(seen), len(collection))
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("note %s appears in %d buckets", id, count)
		}
	}
}

func TestGroupByRecencyThirtyDayBoundaryIsWallClock(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	inside := note("inside", "n", "", now.Add(-30*24*time.Hour+time.Minute))
	outside := note("outside", "n", "", now.Add(-30*24*time.Hour))

	groups := GroupByRecency([]*domain.Note{inside, outside}, now)

	got := make(map[string]RecencyBucket)
	for _, g := range groups {
		for _, n := range g.Notes {
			got[n.ID] = g.Bucket
		}
	}

	if got["inside"] != BucketPrevious30d {
		t.Errorf("note just inside 30d landed in %s", got["inside"])
	}
	if got["outside"] != BucketOlder {
		t.Errorf("note at exactly 30d landed in %s, want Older", got["outside"])
	}
}

func TestGroupByRecencyOmitsEmptyBuckets(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	groups := GroupByRecency([]*domain.Note{
		note("only", "n", "", now.Add(-time.Hour)),
	}, now)

	if len(groups) != 1 || groups[0].Bucket != BucketToday {
		t.Errorf("unexpected groups: %+v", groups)
	}

	if got := GroupByRecency(nil, now); len(got) != 0 {
		t.Errorf("grouping an empty collection produced %d groups", len(got))
	}
}
