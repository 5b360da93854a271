package router

import (
	"wellness/api"
	"wellness/config"
	_ "wellness/docs"
	"wellness/history"
	"wellness/middleware"
	"wellness/risk"
	"wellness/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, engine *risk.Engine, store *history.Store) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	window := cfg.RateLimit.Window
	v1 := r.Group("/api/v1")
	{
		// 认证相关路由
		authHandler := api.NewAuthHandler(cfg, store)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", middleware.LoginRateLimit(cfg.RateLimit.LoginMax, window), authHandler.Login)

			authorized := auth.Group("")
			authorized.Use(middleware.JWTAuth())
			authorized.GET("/profile", authHandler.GetProfile)
			authorized.PUT("/password", authHandler.ChangePassword)
		}

		// 健康评估：匿名可用，登录后历史按用户保存
		wellnessHandler := api.NewWellnessHandler(engine, store, service.NewEmailService(&cfg.Email))
		analyzeLimit := middleware.AnalyzeRateLimit(cfg.RateLimit.AnalyzeMax, window)
		wellness := v1.Group("/wellness")
		wellness.Use(middleware.Session(cfg.Server.Mode == gin.ReleaseMode))
		{
			wellness.GET("/form", wellnessHandler.Form)
			wellness.POST("/analyze", analyzeLimit, wellnessHandler.Analyze)
			wellness.POST("/analyze/text", analyzeLimit, wellnessHandler.AnalyzeText)
			wellness.GET("/trend", wellnessHandler.Trend)
			wellness.GET("/summary", wellnessHandler.Summary)

			hist := wellness.Group("/history")
			{
				hist.GET("", wellnessHandler.History)
				hist.DELETE("", wellnessHandler.ClearHistory)
				hist.GET("/export/csv", wellnessHandler.ExportCSV)
				hist.GET("/export/excel", wellnessHandler.ExportExcel)
				hist.POST("/email", middleware.JWTAuth(), wellnessHandler.EmailSummary)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"profile": engine.Profile(),
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
