package router

import (
	"time"

	"github.com/conduit-dev/conduit/db"
	"github.com/conduit-dev/conduit/internal/config"
	"github.com/conduit-dev/conduit/internal/handlers"
	"github.com/conduit-dev/conduit/internal/middleware"
	"github.com/conduit-dev/conduit/internal/services"
	"github.com/conduit-dev/conduit/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.BuildAllowedOrigins(config.Cfg.AllowedOrigins),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	userHandler := handlers.NewUserHandler(services.NewUserService(db.DB))
	profileHandler := handlers.NewProfileHandler(services.NewProfileService(db.DB))
	articleHandler := handlers.NewArticleHandler(services.NewArticleService(db.DB))
	commentHandler := handlers.NewCommentHandler(services.NewCommentService(db.DB))
	favoriteHandler := handlers.NewFavoriteHandler(services.NewFavoriteService(db.DB))
	tagHandler := handlers.NewTagHandler(services.NewTagService(db.DB))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/tags", tagHandler.List)

		users := api.Group("/users")
		{
			users.POST("", userHandler.Register)
			users.POST("/login", userHandler.Login)
		}

		user := api.Group("/user", middleware.AuthMiddleware())
		{
			user.GET("", userHandler.Current)
			user.PUT("", userHandler.Update)
		}

		profiles := api.Group("/profiles")
		{
			profiles.GET("/:username", middleware.OptionalAuthMiddleware(), profileHandler.Get)
			profiles.POST("/:username/follow", middleware.AuthMiddleware(), profileHandler.Follow)
			profiles.DELETE("/:username/follow", middleware.AuthMiddleware(), profileHandler.Unfollow)
		}

		articles := api.Group("/articles")
		{
			articles.GET("", middleware.OptionalAuthMiddleware(), articleHandler.List)
			articles.GET("/feed", middleware.AuthMiddleware(), articleHandler.Feed)
			articles.POST("", middleware.AuthMiddleware(), articleHandler.Create)
			articles.GET("/:slug", middleware.OptionalAuthMiddleware(), articleHandler.Get)
			articles.PUT("/:slug", middleware.AuthMiddleware(), articleHandler.Update)
			articles.DELETE("/:slug", middleware.AuthMiddleware(), articleHandler.Delete)

			articles.POST("/:slug/comments", middleware.AuthMiddleware(), commentHandler.Add)
			articles.GET("/:slug/comments", middleware.OptionalAuthMiddleware(), commentHandler.List)
			articles.DELETE("/:slug/comments/:id", middleware.AuthMiddleware(), commentHandler.Delete)

			articles.POST("/:slug/favorite", middleware.AuthMiddleware(), favoriteHandler.Add)
			articles.DELETE("/:slug/favorite", middleware.AuthMiddleware(), favoriteHandler.Remove)
		}
	}

	return r
}
