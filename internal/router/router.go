package router

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"Event_Showcase/internal/config"
	"Event_Showcase/internal/handler"
	"Event_Showcase/internal/middleware"
	"Event_Showcase/internal/model"
	"Event_Showcase/internal/pkg"
	"Event_Showcase/internal/repository/redis"
	"Event_Showcase/internal/service"
)

// InitRouter 组装路由。producer 可以是 nil（没配 Kafka 时事件降级为 no-op）。
func InitRouter(cfg *config.Config, producer *pkg.KafkaProducer) *gin.Engine {
	r := gin.Default()

	registerValidators()

	submission := handler.NewSubmissionHandler(
		service.NewSubmissionService(producer, cfg.SMTP, cfg.NotifyTo))
	vote := handler.NewVoteHandler(service.NewVoteService(producer))
	stats := handler.NewStatsHandler()

	limiter := redis.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)

	// 投稿相关接口，全部公开
	subGroup := r.Group("/api/submissions")
	{
		subGroup.POST("", submission.Create)
		subGroup.GET("", submission.List)
		subGroup.GET("/:id", submission.Get)
	}

	// 投票接口，先过限流闸门
	voteGroup := r.Group("/api/vote")
	voteGroup.Use(middleware.RateLimit(limiter))
	{
		voteGroup.POST("", vote.Cast)
	}

	// 主办方接口
	orgGroup := r.Group("/api/organizer")
	orgGroup.Use(middleware.OrganizerAuth([]byte(cfg.OrganizerSecret)))
	{
		orgGroup.GET("/stats", stats.Overview)
	}

	return r
}

// registerValidators 往 gin 的 binding 引擎里挂自定义校验，
// category 必须落在固定分类集合里
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			return model.IsValidCategory(fl.Field().String())
		})
	}
}
