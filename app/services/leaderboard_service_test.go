package services

import (
	"testing"
	"time"

	"feedboard/app/models"
	"feedboard/app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addPostLike(t *testing.T, repo repositories.PostLikeRepository, actorID, postID, authorID int, createdAt time.Time) {
	t.Helper()
	require.NoError(t, repo.Create(&models.PostLike{
		UserID: actorID, PostID: postID, AuthorID: authorID, CreatedAt: createdAt,
	}))
}

func addCommentLike(t *testing.T, repo repositories.CommentLikeRepository, actorID, commentID, authorID int, createdAt time.Time) {
	t.Helper()
	require.NoError(t, repo.Create(&models.CommentLike{
		UserID: actorID, CommentID: commentID, PostID: 1, AuthorID: authorID, CreatedAt: createdAt,
	}))
}

func TestLeaderboardServiceTop(t *testing.T) {
	f := newServiceFixture()
	service := NewLeaderboardService(f.postLikeRepo, f.commentLikeRepo, f.userRepo)

	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")

	now := time.Now()

	// alice: one post like inside the window (5) and two comment likes (2) = 7.
	// bob: one post like inside (5), one post like outside that must not count.
	addPostLike(t, f.postLikeRepo, 100, 1, alice.ID, now.Add(-time.Hour))
	addCommentLike(t, f.commentLikeRepo, 100, 1, alice.ID, now.Add(-2*time.Hour))
	addCommentLike(t, f.commentLikeRepo, 101, 2, alice.ID, now.Add(-3*time.Hour))
	addPostLike(t, f.postLikeRepo, 100, 2, bob.ID, now.Add(-23*time.Hour))
	addPostLike(t, f.postLikeRepo, 101, 3, bob.ID, now.Add(-25*time.Hour))

	rows, err := service.Top(now)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, "alice", rows[0].Username)
	assert.Equal(t, 7, rows[0].Karma)

	assert.Equal(t, 2, rows[1].Rank)
	assert.Equal(t, "bob", rows[1].Username)
	assert.Equal(t, 5, rows[1].Karma)
}

func TestLeaderboardServiceTiesAndTruncation(t *testing.T) {
	f := newServiceFixture()
	service := NewLeaderboardService(f.postLikeRepo, f.commentLikeRepo, f.userRepo)

	now := time.Now()

	// Seven authors with one post like each: all tied at 5 karma, so the
	// top five are the five lowest user IDs, in ascending order.
	var ids []int
	for _, name := range []string{"u1", "u2", "u3", "u4", "u5", "u6", "u7"} {
		user := f.addUser(t, name)
		ids = append(ids, user.ID)
		addPostLike(t, f.postLikeRepo, 100, user.ID, user.ID, now.Add(-time.Hour))
	}

	rows, err := service.Top(now)
	require.NoError(t, err)
	require.Len(t, rows, LeaderboardSize)

	for i, row := range rows {
		assert.Equal(t, i+1, row.Rank)
		assert.Equal(t, ids[i], row.UserID)
		assert.Equal(t, 5, row.Karma)
	}
}

func TestLeaderboardServiceEdgeCases(t *testing.T) {
	now := time.Now()

	t.Run("no likes at all", func(t *testing.T) {
		f := newServiceFixture()
		service := NewLeaderboardService(f.postLikeRepo, f.commentLikeRepo, f.userRepo)

		rows, err := service.Top(now)
		assert.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("like exactly at the window boundary counts", func(t *testing.T) {
		f := newServiceFixture()
		service := NewLeaderboardService(f.postLikeRepo, f.commentLikeRepo, f.userRepo)

		alice := f.addUser(t, "alice")
		addPostLike(t, f.postLikeRepo, 100, 1, alice.ID, now.Add(-LeaderboardWindow))

		rows, err := service.Top(now)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 5, rows[0].Karma)
	})

	t.Run("deleted author is skipped", func(t *testing.T) {
		f := newServiceFixture()
		service := NewLeaderboardService(f.postLikeRepo, f.commentLikeRepo, f.userRepo)

		alice := f.addUser(t, "alice")
		addPostLike(t, f.postLikeRepo, 100, 1, alice.ID, now.Add(-time.Hour))
		addPostLike(t, f.postLikeRepo, 100, 2, 424242, now.Add(-time.Hour))
		addPostLike(t, f.postLikeRepo, 101, 2, 424242, now.Add(-time.Hour))

		rows, err := service.Top(now)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "alice", rows[0].Username)
		assert.Equal(t, 1, rows[0].Rank)
	})
}
