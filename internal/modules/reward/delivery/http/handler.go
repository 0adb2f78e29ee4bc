package http

import (
	"errors"
	"net/http"
	"time"

	"anoa.com/arcadehub/internal/modules/reward/dto"
	rewardService "anoa.com/arcadehub/internal/modules/reward/service"
	"anoa.com/arcadehub/pkg/apperror"
	"anoa.com/arcadehub/pkg/response"
	"anoa.com/arcadehub/pkg/validator"
	"github.com/gin-gonic/gin"
)

type RewardHandler struct {
	service rewardService.RewardService
}

func NewRewardHandler(service rewardService.RewardService) *RewardHandler {
	return &RewardHandler{service: service}
}

func (h *RewardHandler) GetDailyBonuses(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	bonuses, err := h.service.GetDailyBonuses(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": bonuses})
}

func (h *RewardHandler) ClaimDailyBonus(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	res, err := h.service.ClaimDailyBonus(c.Request.Context(), userID, time.Now())
	if err != nil {
		if errors.Is(err, apperror.ErrAlreadyClaimed) {
			// Not fatal: the claim is simply unavailable until tomorrow.
			c.JSON(http.StatusConflict, res)
			return
		}
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *RewardHandler) GetStreak(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	res, err := h.service.GetStreak(c.Request.Context(), userID, time.Now())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *RewardHandler) GetAchievements(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	achievements, err := h.service.GetAchievements(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": achievements})
}

func (h *RewardHandler) UpdateProgress(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input dto.UpdateProgressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	completed, err := h.service.UpdateProgress(c.Request.Context(), userID, input.Category, input.Value)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"completed_achievements": completed})
}
