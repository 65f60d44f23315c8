package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"feedboard/app/middleware"
	"feedboard/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for posts
type PostController struct {
	postService *services.PostService
	likeService *services.LikeService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, likeService *services.LikeService) *PostController {
	return &PostController{
		postService: postService,
		likeService: likeService,
	}
}

func viewerID(r *http.Request) int {
	if user := middleware.UserFrom(r); user != nil {
		return user.ID
	}
	return 0
}

// Index handles listing posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	posts, err := pc.postService.ListPosts(page, perPage, viewerID(r))
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, posts)
}

// Show handles fetching a single post with its nested comment tree
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid post ID"})
		return
	}

	detail, err := pc.postService.GetPostDetail(id, viewerID(r))
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, detail)
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	post, err := pc.postService.CreatePost(user.ID, body.Content)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, post)
}

// Like handles liking a post
func (pc *PostController) Like(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid post ID"})
		return
	}

	if err := pc.likeService.LikePost(user.ID, id); err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{
		"detail":        "post liked",
		"karma_awarded": 5,
	})
}

// Unlike handles removing a like from a post
func (pc *PostController) Unlike(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid post ID"})
		return
	}

	if err := pc.likeService.UnlikePost(user.ID, id); err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]string{"detail": "like removed"})
}
