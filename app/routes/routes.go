package routes

import (
	"feedboard/app/controllers"
	"feedboard/app/middleware"
	"feedboard/app/repositories"
	"feedboard/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes wires repositories, services and controllers over the given
// Badger DB and returns the API router.
func SetupRoutes(db *badger.DB) *mux.Router {
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)
	userRepo := repositories.NewBadgerUserRepository(db)
	postLikeRepo := repositories.NewBadgerPostLikeRepository(db)
	commentLikeRepo := repositories.NewBadgerCommentLikeRepository(db)

	postService := services.NewPostService(postRepo, commentRepo, userRepo, postLikeRepo, commentLikeRepo)
	commentService := services.NewCommentService(commentRepo, postRepo, userRepo)
	likeService := services.NewLikeService(postRepo, commentRepo, postLikeRepo, commentLikeRepo)
	leaderboardService := services.NewLeaderboardService(postLikeRepo, commentLikeRepo, userRepo)
	userService := services.NewUserService(userRepo)

	postController := controllers.NewPostController(postService, likeService)
	commentController := controllers.NewCommentController(commentService, likeService)
	leaderboardController := controllers.NewLeaderboardController(leaderboardService)
	authController := controllers.NewAuthController(userService)

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)
	router.Use(middleware.CurrentUser(userRepo))

	api := router.PathPrefix("/api").Subrouter()

	// Posts
	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id:[0-9]+}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id:[0-9]+}/like", postController.Like).Methods("POST")
	posts.HandleFunc("/{id:[0-9]+}/unlike", postController.Unlike).Methods("POST")

	// Comments
	posts.HandleFunc("/{postId:[0-9]+}/comments", commentController.Create).Methods("POST")
	api.HandleFunc("/comments/{id:[0-9]+}/like", commentController.Like).Methods("POST")
	api.HandleFunc("/comments/{id:[0-9]+}/unlike", commentController.Unlike).Methods("POST")

	// Leaderboard
	api.HandleFunc("/leaderboard", leaderboardController.Index).Methods("GET")

	// Auth
	api.HandleFunc("/auth/register", authController.Register).Methods("POST")
	api.HandleFunc("/auth/login", authController.Login).Methods("POST")
	api.HandleFunc("/auth/me", authController.Me).Methods("GET")

	return router
}
