package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/d60-Lab/questionsdb/config"
	_ "github.com/d60-Lab/questionsdb/docs"
	"github.com/d60-Lab/questionsdb/internal/api/handler"
	"github.com/d60-Lab/questionsdb/internal/api/middleware"
	"github.com/d60-Lab/questionsdb/internal/service"
)

// Options 路由依赖
type Options struct {
	Config   *config.Config
	DB       *gorm.DB
	Services *service.Services
	// Registry defaults to prometheus.DefaultRegisterer/DefaultGatherer.
	Registry *prometheus.Registry
}

// Setup 构建 gin 引擎并注册全部只读路由
func Setup(opts Options) *gin.Engine {
	cfg := opts.Config
	gin.SetMode(cfg.Server.Mode)

	var (
		reg      prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if opts.Registry != nil {
		reg, gatherer = opts.Registry, opts.Registry
	}
	metrics := middleware.NewMetrics(reg)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(middleware.AccessLog())
	r.Use(middleware.ReportErrors())
	r.Use(metrics.Middleware())
	if cfg.Tracing.Enabled {
		r.Use(otelgin.Middleware(cfg.App.Name))
	}
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.GET("/health", handler.Health(opts.DB))
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h := handler.New(opts.Services)
	v1 := r.Group("/api/v1")
	if cfg.RateLimit.Enabled {
		v1.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}

	users := v1.Group("/users")
	{
		users.GET("", h.FindUsersByName)
		users.GET("/:id", h.GetUser)
		users.GET("/:id/questions", h.AuthoredQuestions)
		users.GET("/:id/replies", h.AuthoredReplies)
		users.GET("/:id/followed-questions", h.FollowedQuestions)
		users.GET("/:id/liked-questions", h.LikedQuestions)
	}

	questions := v1.Group("/questions")
	{
		questions.GET("/:id", h.GetQuestion)
		questions.GET("/:id/author", h.QuestionAuthor)
		questions.GET("/:id/replies", h.QuestionReplies)
		questions.GET("/:id/followers", h.QuestionFollowers)
		questions.GET("/:id/likers", h.QuestionLikers)
		questions.GET("/:id/likes/count", h.QuestionLikeCount)
	}

	rankings := v1.Group("/rankings")
	{
		rankings.GET("/most-followed", h.MostFollowed)
		rankings.GET("/most-liked", h.MostLiked)
	}

	replies := v1.Group("/replies")
	{
		replies.GET("/:id", h.GetReply)
		replies.GET("/:id/author", h.ReplyAuthor)
		replies.GET("/:id/question", h.ReplyQuestion)
		replies.GET("/:id/parent", h.ReplyParent)
		replies.GET("/:id/children", h.ReplyChildren)
		replies.GET("/:id/ancestors", h.ReplyAncestors)
		replies.GET("/:id/descendants", h.ReplyDescendants)
	}

	v1.GET("/follows/:id", h.GetFollow)
	v1.GET("/likes/:id", h.GetLike)

	return r
}
