package services

import "time"

// View types are the JSON shapes the API returns. They are assembled fresh
// per request and never persisted.

// AuthorView identifies the author of a post or comment.
type AuthorView struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// PostView is one row in the post list.
type PostView struct {
	ID           int        `json:"id"`
	Author       AuthorView `json:"author"`
	Content      string     `json:"content"`
	CreatedAt    time.Time  `json:"created_at"`
	LikeCount    int        `json:"like_count"`
	CommentCount int        `json:"comment_count"`
	UserHasLiked bool       `json:"user_has_liked"`
}

// CommentView is one node of the nested comment tree.
type CommentView struct {
	ID           int            `json:"id"`
	Author       AuthorView     `json:"author"`
	Content      string         `json:"content"`
	ParentID     *int           `json:"parent_id"`
	CreatedAt    time.Time      `json:"created_at"`
	LikeCount    int            `json:"like_count"`
	UserHasLiked bool           `json:"user_has_liked"`
	Replies      []*CommentView `json:"replies"`
}

// PostDetailView is a post together with its full comment tree.
type PostDetailView struct {
	PostView
	Comments []*CommentView `json:"comments"`
}

// LeaderboardRow is one ranked leaderboard entry.
type LeaderboardRow struct {
	Rank     int    `json:"rank"`
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Karma    int    `json:"karma"`
}

// UserView is the public shape of a user account.
type UserView struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}
