// Package seed fills the database with demo users, posts, nested comments
// and likes so the feed and leaderboard have something to show.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"feedboard/app/models"
	"feedboard/app/repositories"

	"github.com/dgraph-io/badger/v4"
)

var usernames = []string{"alice", "bob", "charlie", "diana", "eve", "frank"}

var postContents = []string{
	"Just deployed my first Go REST API! The standard library got me most of the way.",
	"Has anyone tried embedding BadgerDB? No external database to babysit.",
	"Working on a community feed project. Nested comments are tricky!",
	"Pro tip: fetch a thread's comments in one query and rebuild the tree in memory.",
	"TIL about database constraints for preventing race conditions. Game changer!",
}

var commentContents = []string{
	"Great post! Thanks for sharing.",
	"I had the same experience, very useful info.",
	"Could you explain more about this?",
	"This is exactly what I was looking for!",
	"Interesting perspective, thanks!",
}

// Run seeds the database. Likes are spread over the last 48 hours so some
// fall inside the leaderboard window and some do not.
func Run(db *badger.DB) error {
	userRepo := repositories.NewBadgerUserRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)
	postLikeRepo := repositories.NewBadgerPostLikeRepository(db)
	commentLikeRepo := repositories.NewBadgerCommentLikeRepository(db)

	now := time.Now()

	var users []*models.User
	for _, username := range usernames {
		user := &models.User{
			Username:  username,
			CreatedAt: now,
		}
		if err := user.SetPassword("password123"); err != nil {
			return err
		}
		err := userRepo.Create(user)
		if err == repositories.ErrUsernameTaken {
			user, err = userRepo.GetByUsername(username)
		}
		if err != nil {
			return fmt.Errorf("seeding user %s: %v", username, err)
		}
		users = append(users, user)
	}
	log.Printf("seeded %d users", len(users))

	var posts []*models.Post
	for i, content := range postContents {
		post := &models.Post{
			AuthorID:  users[i%len(users)].ID,
			Content:   content,
			CreatedAt: now.Add(-time.Duration(len(postContents)-i) * time.Hour),
		}
		if err := postRepo.Create(post); err != nil {
			return fmt.Errorf("seeding post: %v", err)
		}
		posts = append(posts, post)
	}
	log.Printf("seeded %d posts", len(posts))

	var comments []*models.Comment
	for _, post := range posts {
		var parent *models.Comment
		for depth := 0; depth < 3; depth++ {
			comment := &models.Comment{
				PostID:    post.ID,
				AuthorID:  users[rand.Intn(len(users))].ID,
				Content:   commentContents[rand.Intn(len(commentContents))],
				CreatedAt: post.CreatedAt.Add(time.Duration(depth+1) * 10 * time.Minute),
			}
			if parent != nil {
				parentID := parent.ID
				comment.ParentID = &parentID
			}
			if err := commentRepo.Create(comment); err != nil {
				return fmt.Errorf("seeding comment: %v", err)
			}
			comments = append(comments, comment)
			// Half the chains nest deeper, half start a new thread.
			if rand.Intn(2) == 0 {
				parent = comment
			} else {
				parent = nil
			}
		}
	}
	log.Printf("seeded %d comments", len(comments))

	postLikes, commentLikes := 0, 0
	for _, post := range posts {
		for _, user := range users {
			if rand.Intn(3) == 0 {
				continue
			}
			like := &models.PostLike{
				UserID:    user.ID,
				PostID:    post.ID,
				AuthorID:  post.AuthorID,
				CreatedAt: now.Add(-time.Duration(rand.Intn(48)) * time.Hour),
			}
			err := postLikeRepo.Create(like)
			if err == repositories.ErrAlreadyLiked {
				continue
			}
			if err != nil {
				return fmt.Errorf("seeding post like: %v", err)
			}
			postLikes++
		}
	}
	for _, comment := range comments {
		for _, user := range users {
			if rand.Intn(2) == 0 {
				continue
			}
			like := &models.CommentLike{
				UserID:    user.ID,
				CommentID: comment.ID,
				PostID:    comment.PostID,
				AuthorID:  comment.AuthorID,
				CreatedAt: now.Add(-time.Duration(rand.Intn(48)) * time.Hour),
			}
			err := commentLikeRepo.Create(like)
			if err == repositories.ErrAlreadyLiked {
				continue
			}
			if err != nil {
				return fmt.Errorf("seeding comment like: %v", err)
			}
			commentLikes++
		}
	}
	log.Printf("seeded %d post likes, %d comment likes", postLikes, commentLikes)

	return nil
}
