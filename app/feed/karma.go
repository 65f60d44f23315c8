package feed

import (
	"sort"
	"time"
)

// Karma weights per like kind.
const (
	PostLikeKarma    = 5
	CommentLikeKarma = 1
)

// LikeEvent is one like drawn from either stream. AuthorID is the author of
// the liked content — the karma recipient — not the user who liked it.
type LikeEvent struct {
	ActorID   int
	AuthorID  int
	CreatedAt time.Time
}

// Entry is a user's total karma inside the window.
type Entry struct {
	UserID int
	Karma  int
}

// Leaderboard aggregates both like streams into the topN karma earners within
// the trailing window ending at now. Events exactly on the window boundary
// count; older ones do not, so passing an unfiltered superset of events gives
// the same result as a pre-filtered one. Users with no qualifying likes never
// appear. Equal karma orders by ascending UserID to keep output reproducible.
//
// now is an explicit argument, never the wall clock, so results are
// deterministic under test.
func Leaderboard(postLikes, commentLikes []LikeEvent, now time.Time, window time.Duration, topN int) []Entry {
	cutoff := now.Add(-window)
	karma := make(map[int]int)

	tally := func(events []LikeEvent, weight int) {
		for _, e := range events {
			if e.CreatedAt.Before(cutoff) {
				continue
			}
			karma[e.AuthorID] += weight
		}
	}
	tally(postLikes, PostLikeKarma)
	tally(commentLikes, CommentLikeKarma)

	entries := make([]Entry, 0, len(karma))
	for userID, total := range karma {
		entries = append(entries, Entry{UserID: userID, Karma: total})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Karma != entries[j].Karma {
			return entries[i].Karma > entries[j].Karma
		}
		return entries[i].UserID < entries[j].UserID
	})

	if topN >= 0 && len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}
