package http

import (
	"net/http"
	"strconv"

	leaderboardService "anoa.com/arcadehub/internal/modules/leaderboard/service"
	searchService "anoa.com/arcadehub/internal/modules/search/service"
	"anoa.com/arcadehub/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LeaderboardHandler struct {
	service leaderboardService.LeaderboardService
	search  searchService.PlayerSearchService
}

func NewLeaderboardHandler(service leaderboardService.LeaderboardService, search searchService.PlayerSearchService) *LeaderboardHandler {
	return &LeaderboardHandler{service: service, search: search}
}

func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "10")
	limit, _ := strconv.Atoi(limitStr)
	if limit < 1 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	// The current player is merged in when authenticated.
	var userID *uuid.UUID
	if id, err := response.GetUserID(c); err == nil {
		userID = &id
	}

	board, err := h.service.GetLeaderboard(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if len(board) > limit {
		board = board[:limit]
	}

	c.JSON(http.StatusOK, gin.H{"data": board})
}

func (h *LeaderboardHandler) GetMyRank(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	rank, err := h.service.GetUserRank(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rank": rank})
}

func (h *LeaderboardHandler) SearchPlayers(c *gin.Context) {
	if h.search == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "player search is not configured"})
		return
	}

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	limitStr := c.DefaultQuery("limit", "10")
	limit, _ := strconv.Atoi(limitStr)
	if limit < 1 || limit > 50 {
		limit = 10
	}

	docs, err := h.search.Search(query, limit)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": docs})
}
