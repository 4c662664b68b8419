package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"Event_Showcase/internal/middleware"
	"Event_Showcase/internal/service"
)

type VoteHandler struct {
	svc *service.VoteService
}

type VoteReq struct {
	SubmissionID string `json:"submissionId" binding:"required"`
}

func NewVoteHandler(svc *service.VoteService) *VoteHandler {
	return &VoteHandler{svc: svc}
}

// Cast 投票接口。指纹由限流中间件写进 context，同一个指纹同一投稿只计一票。
// 重复投票返回 409 并带当前票数，让前端能直接刷新数字。
func (h *VoteHandler) Cast(c *gin.Context) {
	var req VoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	// 限流中间件已经算好指纹，优先复用；没过中间件的调用路径再现算
	fp := c.GetString(middleware.ContextFingerprintKey)
	if fp == "" {
		fp = middleware.Fingerprint(c)
	}

	result, err := h.svc.Cast(c.Request.Context(), req.SubmissionID, fp)
	if err != nil {
		if errors.Is(err, service.ErrInvalidVote) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "internal error"})
		return
	}

	if !result.Counted {
		c.JSON(http.StatusConflict, gin.H{
			"msg":     "already voted for this submission",
			"counted": false,
			"votes":   result.Votes,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"counted": true, "votes": result.Votes})
}
