package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Event_Showcase/internal/service"
)

type StatsHandler struct {
	svc *service.StatsService
}

func NewStatsHandler() *StatsHandler {
	return &StatsHandler{svc: service.NewStatsService()}
}

// Overview 主办方汇总面板
func (h *StatsHandler) Overview(c *gin.Context) {
	stats, err := h.svc.Overview(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "internal error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
