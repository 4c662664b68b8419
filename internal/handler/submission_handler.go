package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"Event_Showcase/internal/repository/redis"
	"Event_Showcase/internal/service"
)

type SubmissionHandler struct {
	svc *service.SubmissionService
}

// CreateSubmissionReq 创建投稿请求体，约束和前端表单一致
type CreateSubmissionReq struct {
	Name          string `json:"name" binding:"required,max=100"`
	Author        string `json:"author" binding:"required,max=100"`
	AuthorTwitter string `json:"authorTwitter" binding:"max=100"`
	Description   string `json:"description" binding:"required,max=500"`
	Category      string `json:"category" binding:"required,category"`
	ProjectURL    string `json:"projectUrl" binding:"required,url"`
	SocialPostURL string `json:"socialPostUrl" binding:"omitempty,url"`
}

func NewSubmissionHandler(svc *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{svc: svc}
}

// Create 投稿接口
func (h *SubmissionHandler) Create(c *gin.Context) {
	var req CreateSubmissionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	sub, err := h.svc.Create(c.Request.Context(), service.SubmissionInput{
		Name:          req.Name,
		Author:        req.Author,
		AuthorTwitter: req.AuthorTwitter,
		Description:   req.Description,
		Category:      req.Category,
		ProjectURL:    req.ProjectURL,
		SocialPostURL: req.SocialPostURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidSubmission) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// List 全量投稿，带票数，新的在前
func (h *SubmissionHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "internal error"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *SubmissionHandler) Get(c *gin.Context) {
	sub, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, redis.ErrSubmissionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "internal error"})
		return
	}
	c.JSON(http.StatusOK, sub)
}
