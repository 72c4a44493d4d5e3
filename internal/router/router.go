package router

import (
	"log"
	"time"

	"shareabyte/config"
	"shareabyte/internal/cache"
	"shareabyte/internal/handler"
	"shareabyte/internal/middleware"
	"shareabyte/internal/repository"
	"shareabyte/internal/service"
	"shareabyte/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	scoreRepo := repository.NewScoreRepository(db)

	c := cache.New(cfg.Redis.Addr)
	if c == nil && cfg.Redis.Addr != "" {
		log.Printf("[router] leaderboard cache disabled")
	}

	// Services
	fcmSvc := service.NewFCMService(cfg.Firebase.ServiceAccountPath)
	if fcmSvc == nil && cfg.Firebase.ServiceAccountPath == "" {
		log.Printf("[router] push notifications disabled: set FIREBASE_SERVICE_ACCOUNT_PATH to enable")
	}
	notifSvc := service.NewNotificationService(notificationRepo, userRepo, fcmSvc)
	authSvc := service.NewAuthService(cfg, userRepo, scoreRepo)
	postSvc := service.NewPostService(postRepo, userRepo, notifSvc)
	messageSvc := service.NewMessageService(messageRepo, userRepo, postRepo, notifSvc)
	scoreSvc := service.NewScoreService(scoreRepo, c, &cfg.Redis)
	voteSvc := service.NewVoteService(db, c, &cfg.Score)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	meHandler := handler.NewMeHandler(userRepo)
	postHandler := handler.NewPostHandler(postRepo, postSvc)
	messageHandler := handler.NewMessageHandler(messageRepo, messageSvc)
	notificationHandler := handler.NewNotificationHandler(notificationRepo, voteSvc)
	scoreHandler := handler.NewScoreHandler(scoreSvc)
	uploadHandler := handler.NewUploadHandler(cloud)

	authMw := middleware.AuthRequired(&cfg.JWT)
	writeLimiter := middleware.NewInMemoryRateLimiter(30, 60*time.Second)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.PATCH("/change-password", authMw, authHandler.ChangePassword)
		}

		// Public: anyone may browse posts and the leaderboard.
		api.GET("/posts", postHandler.Search)
		api.GET("/posts/:id", postHandler.Get)
		api.GET("/leaderboard", scoreHandler.Leaderboard)

		me := api.Group("/me")
		me.Use(authMw)
		{
			me.GET("/profile", meHandler.GetProfile)
			me.PATCH("/profile", meHandler.UpdateProfile)
			me.GET("/posts", postHandler.ListMine)
			me.GET("/score", scoreHandler.MyScore)
		}

		posts := api.Group("/posts")
		posts.Use(authMw)
		{
			posts.POST("", postHandler.Create)
			posts.PATCH("/:id", postHandler.Update)
			posts.DELETE("/:id", postHandler.Delete)
			posts.POST("/:id/complete", postHandler.Complete)
		}

		messages := api.Group("/messages")
		messages.Use(authMw)
		{
			messages.POST("", middleware.RateLimitByUser(writeLimiter), messageHandler.Send)
			messages.GET("", messageHandler.List)
			messages.GET("/with/:user_id", messageHandler.Thread)
			messages.PATCH("/:id/archive", messageHandler.Archive)
			messages.DELETE("/:id", messageHandler.Delete)
		}

		notifications := api.Group("/notifications")
		notifications.Use(authMw)
		{
			notifications.GET("", notificationHandler.List)
			notifications.PATCH("/:id/read", notificationHandler.MarkRead)
			notifications.DELETE("/:id", notificationHandler.Delete)
			notifications.POST("/:id/vote", middleware.RateLimitByUser(writeLimiter), notificationHandler.Vote)
		}

		uploads := api.Group("/uploads")
		uploads.Use(authMw)
		{
			uploads.POST("/post-image", uploadHandler.UploadPostImage)
		}
	}

	return r
}
