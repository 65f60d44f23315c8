package services

import (
	"testing"
	"time"

	"feedboard/app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeServicePosts(t *testing.T) {
	f := newServiceFixture()
	service := NewLikeService(f.postRepo, f.commentRepo, f.postLikeRepo, f.commentLikeRepo)

	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")
	post := f.addPost(t, alice.ID, "a post")

	t.Run("like stores the post author for karma", func(t *testing.T) {
		assert.NoError(t, service.LikePost(bob.ID, post.ID))

		likes, err := f.postLikeRepo.ListSince(time.Time{})
		require.NoError(t, err)
		require.Len(t, likes, 1)
		assert.Equal(t, bob.ID, likes[0].UserID)
		assert.Equal(t, alice.ID, likes[0].AuthorID)
	})

	t.Run("second like is a conflict", func(t *testing.T) {
		assert.ErrorIs(t, service.LikePost(bob.ID, post.ID), repositories.ErrAlreadyLiked)
	})

	t.Run("unlike then unlike again", func(t *testing.T) {
		assert.NoError(t, service.UnlikePost(bob.ID, post.ID))
		assert.ErrorIs(t, service.UnlikePost(bob.ID, post.ID), repositories.ErrNotLiked)
	})

	t.Run("missing post", func(t *testing.T) {
		err := service.LikePost(bob.ID, 9999)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestLikeServiceComments(t *testing.T) {
	f := newServiceFixture()
	service := NewLikeService(f.postRepo, f.commentRepo, f.postLikeRepo, f.commentLikeRepo)

	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")
	post := f.addPost(t, alice.ID, "a post")
	comment := f.addComment(t, post.ID, alice.ID, nil, "a comment")

	t.Run("like stores the comment author for karma", func(t *testing.T) {
		assert.NoError(t, service.LikeComment(bob.ID, comment.ID))

		likes, err := f.commentLikeRepo.ListSince(time.Time{})
		require.NoError(t, err)
		require.Len(t, likes, 1)
		assert.Equal(t, bob.ID, likes[0].UserID)
		assert.Equal(t, alice.ID, likes[0].AuthorID)
		assert.Equal(t, post.ID, likes[0].PostID)
	})

	t.Run("second like is a conflict", func(t *testing.T) {
		assert.ErrorIs(t, service.LikeComment(bob.ID, comment.ID), repositories.ErrAlreadyLiked)
	})

	t.Run("unlike then unlike again", func(t *testing.T) {
		assert.NoError(t, service.UnlikeComment(bob.ID, comment.ID))
		assert.ErrorIs(t, service.UnlikeComment(bob.ID, comment.ID), repositories.ErrNotLiked)
	})

	t.Run("missing comment", func(t *testing.T) {
		err := service.LikeComment(bob.ID, 9999)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}
