package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"feedboard/app/services"

	"github.com/gorilla/mux"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
	likeService    *services.LikeService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService, likeService *services.LikeService) *CommentController {
	return &CommentController{
		commentService: commentService,
		likeService:    likeService,
	}
}

// Create handles creating a comment on a post, optionally as a reply
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	postID, err := strconv.Atoi(vars["postId"])
	if err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid post ID"})
		return
	}

	var body struct {
		Content  string `json:"content"`
		ParentID *int   `json:"parent_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	comment, err := cc.commentService.CreateComment(postID, user.ID, body.Content, body.ParentID)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, comment)
}

// Like handles liking a comment
func (cc *CommentController) Like(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid comment ID"})
		return
	}

	if err := cc.likeService.LikeComment(user.ID, id); err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{
		"detail":        "comment liked",
		"karma_awarded": 1,
	})
}

// Unlike handles removing a like from a comment
func (cc *CommentController) Unlike(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid comment ID"})
		return
	}

	if err := cc.likeService.UnlikeComment(user.ID, id); err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]string{"detail": "like removed"})
}
