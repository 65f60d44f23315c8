package controllers

import (
	"net/http"
	"time"

	"feedboard/app/services"
)

// LeaderboardController serves the rolling karma leaderboard
type LeaderboardController struct {
	leaderboardService *services.LeaderboardService
	now                func() time.Time
}

// NewLeaderboardController creates a new LeaderboardController
func NewLeaderboardController(leaderboardService *services.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{
		leaderboardService: leaderboardService,
		now:                time.Now,
	}
}

// Index returns the current top earners of the trailing 24-hour window
func (lc *LeaderboardController) Index(w http.ResponseWriter, r *http.Request) {
	rows, err := lc.leaderboardService.Top(lc.now())
	if err != nil {
		sendError(w, err)
		return
	}
	if rows == nil {
		rows = []*services.LeaderboardRow{}
	}
	sendJSON(w, http.StatusOK, rows)
}
