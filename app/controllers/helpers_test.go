package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"feedboard/app/middleware"
	"feedboard/app/models"
	"feedboard/app/repositories/mock"
	"feedboard/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// testApp wires the controllers over in-memory mock repositories with the
// same routing and middleware shape the real server uses.
type testApp struct {
	router          *mux.Router
	userRepo        *mock.UserRepository
	postRepo        *mock.PostRepository
	commentRepo     *mock.CommentRepository
	postLikeRepo    *mock.PostLikeRepository
	commentLikeRepo *mock.CommentLikeRepository
	leaderboard     *LeaderboardController
}

func newTestApp() *testApp {
	app := &testApp{
		userRepo:        mock.NewUserRepository(),
		postRepo:        mock.NewPostRepository(),
		commentRepo:     mock.NewCommentRepository(),
		postLikeRepo:    mock.NewPostLikeRepository(),
		commentLikeRepo: mock.NewCommentLikeRepository(),
	}

	postService := services.NewPostService(app.postRepo, app.commentRepo, app.userRepo, app.postLikeRepo, app.commentLikeRepo)
	commentService := services.NewCommentService(app.commentRepo, app.postRepo, app.userRepo)
	likeService := services.NewLikeService(app.postRepo, app.commentRepo, app.postLikeRepo, app.commentLikeRepo)
	leaderboardService := services.NewLeaderboardService(app.postLikeRepo, app.commentLikeRepo, app.userRepo)
	userService := services.NewUserService(app.userRepo)

	postController := NewPostController(postService, likeService)
	commentController := NewCommentController(commentService, likeService)
	app.leaderboard = NewLeaderboardController(leaderboardService)
	authController := NewAuthController(userService)

	router := mux.NewRouter()
	router.Use(middleware.CurrentUser(app.userRepo))

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/posts", postController.Index).Methods("GET")
	api.HandleFunc("/posts", postController.Create).Methods("POST")
	api.HandleFunc("/posts/{id:[0-9]+}", postController.Show).Methods("GET")
	api.HandleFunc("/posts/{id:[0-9]+}/like", postController.Like).Methods("POST")
	api.HandleFunc("/posts/{id:[0-9]+}/unlike", postController.Unlike).Methods("POST")
	api.HandleFunc("/posts/{postId:[0-9]+}/comments", commentController.Create).Methods("POST")
	api.HandleFunc("/comments/{id:[0-9]+}/like", commentController.Like).Methods("POST")
	api.HandleFunc("/comments/{id:[0-9]+}/unlike", commentController.Unlike).Methods("POST")
	api.HandleFunc("/leaderboard", app.leaderboard.Index).Methods("GET")
	api.HandleFunc("/auth/register", authController.Register).Methods("POST")
	api.HandleFunc("/auth/login", authController.Login).Methods("POST")
	api.HandleFunc("/auth/me", authController.Me).Methods("GET")

	app.router = router
	return app
}

func (app *testApp) addUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, PasswordHash: "h", CreatedAt: time.Now()}
	require.NoError(t, app.userRepo.Create(user))
	return user
}

func (app *testApp) addPost(t *testing.T, authorID int, content string) *models.Post {
	t.Helper()
	post := &models.Post{AuthorID: authorID, Content: content, CreatedAt: time.Now()}
	require.NoError(t, app.postRepo.Create(post))
	return post
}

func (app *testApp) addComment(t *testing.T, postID, authorID int, parentID *int, content string) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		PostID: postID, AuthorID: authorID, ParentID: parentID,
		Content: content, CreatedAt: time.Now(),
	}
	require.NoError(t, app.commentRepo.Create(comment))
	return comment
}

// do performs a request as the given user (0 = anonymous) and returns the recorder.
func (app *testApp) do(method, path string, userID int, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set("X-User-ID", strconv.Itoa(userID))
	}

	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
