package controllers

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"feedboard/app/models"
	"feedboard/app/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostControllerCreate(t *testing.T) {
	app := newTestApp()
	alice := app.addUser(t, "alice")

	t.Run("creates a post", func(t *testing.T) {
		w := app.do(http.MethodPost, "/api/posts", alice.ID, `{"content":"hello feed"}`)
		assert.Equal(t, http.StatusCreated, w.Code)

		var post models.Post
		decodeBody(t, w, &post)
		assert.NotZero(t, post.ID)
		assert.Equal(t, alice.ID, post.AuthorID)
		assert.Equal(t, "hello feed", post.Content)
	})

	t.Run("requires authentication", func(t *testing.T) {
		w := app.do(http.MethodPost, "/api/posts", 0, `{"content":"anonymous"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("empty content", func(t *testing.T) {
		w := app.do(http.MethodPost, "/api/posts", alice.ID, `{"content":""}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		w := app.do(http.MethodPost, "/api/posts", alice.ID, `{not json`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPostControllerIndex(t *testing.T) {
	app := newTestApp()
	alice := app.addUser(t, "alice")
	for i := 0; i < 3; i++ {
		app.addPost(t, alice.ID, "post number "+strconv.Itoa(i))
	}

	w := app.do(http.MethodGet, "/api/posts?page=1&per_page=2", 0, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var posts []*services.PostView
	decodeBody(t, w, &posts)
	assert.Len(t, posts, 2)
	assert.Equal(t, "alice", posts[0].Author.Username)
}

func TestPostControllerShow(t *testing.T) {
	app := newTestApp()
	alice := app.addUser(t, "alice")
	bob := app.addUser(t, "bob")
	post := app.addPost(t, alice.ID, "threaded")
	root := app.addComment(t, post.ID, bob.ID, nil, "root")
	app.addComment(t, post.ID, alice.ID, &root.ID, "reply")

	t.Run("returns the nested tree", func(t *testing.T) {
		w := app.do(http.MethodGet, "/api/posts/"+strconv.Itoa(post.ID), 0, "")
		assert.Equal(t, http.StatusOK, w.Code)

		var detail services.PostDetailView
		decodeBody(t, w, &detail)
		assert.Equal(t, post.ID, detail.ID)
		require.Len(t, detail.Comments, 1)
		require.Len(t, detail.Comments[0].Replies, 1)
		assert.Equal(t, "reply", detail.Comments[0].Replies[0].Content)
	})

	t.Run("missing post", func(t *testing.T) {
		w := app.do(http.MethodGet, "/api/posts/9999", 0, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPostControllerLikes(t *testing.T) {
	app := newTestApp()
	alice := app.addUser(t, "alice")
	bob := app.addUser(t, "bob")
	post := app.addPost(t, alice.ID, "likeable")
	likePath := "/api/posts/" + strconv.Itoa(post.ID) + "/like"
	unlikePath := "/api/posts/" + strconv.Itoa(post.ID) + "/unlike"

	t.Run("like awards post karma", func(t *testing.T) {
		w := app.do(http.MethodPost, likePath, bob.ID, "")
		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		decodeBody(t, w, &body)
		assert.Equal(t, float64(5), body["karma_awarded"])
	})

	t.Run("duplicate like conflicts", func(t *testing.T) {
		w := app.do(http.MethodPost, likePath, bob.ID, "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unlike removes the like", func(t *testing.T) {
		w := app.do(http.MethodPost, unlikePath, bob.ID, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unlike without a like conflicts", func(t *testing.T) {
		w := app.do(http.MethodPost, unlikePath, bob.ID, "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("like requires authentication", func(t *testing.T) {
		w := app.do(http.MethodPost, likePath, 0, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("like missing post", func(t *testing.T) {
		w := app.do(http.MethodPost, "/api/posts/9999/like", bob.ID, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPostControllerViewerState(t *testing.T) {
	app := newTestApp()
	alice := app.addUser(t, "alice")
	bob := app.addUser(t, "bob")
	post := app.addPost(t, alice.ID, "viewed")
	require.NoError(t, app.postLikeRepo.Create(&models.PostLike{
		UserID: bob.ID, PostID: post.ID, AuthorID: alice.ID, CreatedAt: time.Now(),
	}))

	w := app.do(http.MethodGet, "/api/posts", bob.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var posts []*services.PostView
	decodeBody(t, w, &posts)
	require.Len(t, posts, 1)
	assert.True(t, posts[0].UserHasLiked)
	assert.Equal(t, 1, posts[0].LikeCount)
}
