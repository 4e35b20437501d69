package app

import (
	"github.com/apolzek/neosearch/internal/auth"
	"github.com/apolzek/neosearch/internal/cache"
	"github.com/apolzek/neosearch/internal/config"
	"github.com/apolzek/neosearch/internal/feed"
	"github.com/apolzek/neosearch/internal/handlers"
	"github.com/apolzek/neosearch/internal/mw"
	"github.com/apolzek/neosearch/internal/repo"
	"github.com/apolzek/neosearch/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"

	_ "github.com/apolzek/neosearch/docs"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, log *zap.Logger, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1", mw.RateLimit(mw.RateLimitConfig{
		Burst:        cfg.Rate.Burst,
		RefillPerMin: cfg.Rate.RefillPerMin,
		MaxEntries:   cfg.Rate.MaxEntries,
		IdleTTL:      cfg.Rate.IdleTTL.Duration(),
	}))

	tokens := auth.NewStore(rdb, cfg.Auth.SessionTTL.Duration())
	searchCache := cache.NewSearchCache(rdb, cfg.Redis.DefaultTTL.Duration())
	fetcher := feed.NewFetcher(cfg.Feed.Timeout.Duration())

	userRepo := repo.NewPGUserRepo(db)
	bookmarkRepo := repo.NewPGBookmarkRepo(db)
	repositoryRepo := repo.NewPGRepositoryRepo(db)

	userSvc := service.NewUserService(userRepo)
	bookmarkSvc := service.NewBookmarkService(bookmarkRepo, searchCache)
	repositorySvc := service.NewRepositoryService(repositoryRepo, bookmarkRepo, fetcher, searchCache, log)
	searchSvc := service.NewSearchService(bookmarkRepo, searchCache)
	profileSvc := service.NewProfileService(userRepo, repositoryRepo, bookmarkRepo)

	authHandler := handlers.NewAuthHandler(tokens, userSvc)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	searchHandler := handlers.NewSearchHandler(searchSvc)
	api.GET("/search", auth.OptionalToken(tokens), searchHandler.Search)

	profileHandler := handlers.NewProfileHandler(profileSvc)
	api.GET("/users", profileHandler.ListUsers)
	api.GET("/users/:username", profileHandler.Get)

	protected := api.Group("", auth.RequireToken(tokens))
	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/auth/me", authHandler.Me)

	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkSvc)
	protected.POST("/bookmarks", bookmarkHandler.Create)
	protected.GET("/bookmarks", bookmarkHandler.List)
	protected.DELETE("/bookmarks/:id", bookmarkHandler.Delete)

	repositoryHandler := handlers.NewRepositoryHandler(repositorySvc)
	protected.POST("/repositories", repositoryHandler.Create)
	protected.GET("/repositories", repositoryHandler.List)
	protected.POST("/repositories/:id/sync", repositoryHandler.Sync)
	protected.DELETE("/repositories/:id", repositoryHandler.Delete)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "NeoSearch API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}
