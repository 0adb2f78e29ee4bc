package http

import (
	"net/http"

	statService "anoa.com/arcadehub/internal/modules/stats/service"
	"anoa.com/arcadehub/pkg/response"
	"github.com/gin-gonic/gin"
)

type StatHandler struct {
	service statService.StatService
}

func NewStatHandler(service statService.StatService) *StatHandler {
	return &StatHandler{service: service}
}

func (h *StatHandler) GetMyStats(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	stats, err := h.service.ForUser(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
