package services

import (
	"time"

	"feedboard/app/feed"
	"feedboard/app/repositories"
)

// Leaderboard parameters. The window filter is pushed down to the like
// repositories; the aggregator re-checks it anyway, so a repository returning
// a superset changes nothing.
const (
	LeaderboardWindow = 24 * time.Hour
	LeaderboardSize   = 5
)

// LeaderboardService computes the rolling karma leaderboard. Karma is
// recomputed from the raw like events on every request; the stored events
// stay the single source of truth.
type LeaderboardService struct {
	postLikeRepo    repositories.PostLikeRepository
	commentLikeRepo repositories.CommentLikeRepository
	userRepo        repositories.UserRepository
}

// NewLeaderboardService creates a new LeaderboardService
func NewLeaderboardService(
	postLikeRepo repositories.PostLikeRepository,
	commentLikeRepo repositories.CommentLikeRepository,
	userRepo repositories.UserRepository,
) *LeaderboardService {
	return &LeaderboardService{
		postLikeRepo:    postLikeRepo,
		commentLikeRepo: commentLikeRepo,
		userRepo:        userRepo,
	}
}

// Top returns the top karma earners of the window ending at now, ranked
// 1-based. now comes from the caller so results are deterministic under test.
func (s *LeaderboardService) Top(now time.Time) ([]*LeaderboardRow, error) {
	cutoff := now.Add(-LeaderboardWindow)

	postLikes, err := s.postLikeRepo.ListSince(cutoff)
	if err != nil {
		return nil, err
	}
	commentLikes, err := s.commentLikeRepo.ListSince(cutoff)
	if err != nil {
		return nil, err
	}

	postEvents := make([]feed.LikeEvent, 0, len(postLikes))
	for _, like := range postLikes {
		postEvents = append(postEvents, feed.LikeEvent{
			ActorID:   like.UserID,
			AuthorID:  like.AuthorID,
			CreatedAt: like.CreatedAt,
		})
	}
	commentEvents := make([]feed.LikeEvent, 0, len(commentLikes))
	for _, like := range commentLikes {
		commentEvents = append(commentEvents, feed.LikeEvent{
			ActorID:   like.UserID,
			AuthorID:  like.AuthorID,
			CreatedAt: like.CreatedAt,
		})
	}

	entries := feed.Leaderboard(postEvents, commentEvents, now, LeaderboardWindow, LeaderboardSize)

	userIDs := make([]int, 0, len(entries))
	for _, entry := range entries {
		userIDs = append(userIDs, entry.UserID)
	}
	users, err := s.userRepo.GetByIDs(userIDs)
	if err != nil {
		return nil, err
	}

	rows := make([]*LeaderboardRow, 0, len(entries))
	for _, entry := range entries {
		user, ok := users[entry.UserID]
		if !ok {
			// Deleted account; karma with no one to credit.
			continue
		}
		rows = append(rows, &LeaderboardRow{
			Rank:     len(rows) + 1,
			UserID:   user.ID,
			Username: user.Username,
			Karma:    entry.Karma,
		})
	}
	return rows, nil
}
