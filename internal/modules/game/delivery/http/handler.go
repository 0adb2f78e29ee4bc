package http

import (
	"net/http"

	"anoa.com/arcadehub/internal/modules/game/dto"
	gameService "anoa.com/arcadehub/internal/modules/game/service"
	"anoa.com/arcadehub/pkg/response"
	"anoa.com/arcadehub/pkg/validator"
	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	service gameService.GameService
}

func NewGameHandler(service gameService.GameService) *GameHandler {
	return &GameHandler{service: service}
}

func (h *GameHandler) CompleteGame(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input dto.CompleteGameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	result, err := h.service.Complete(c.Request.Context(), userID, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *GameHandler) GetHistory(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	records, err := h.service.History(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": records})
}
