package app

import (
	"context"
	"net/http"
	"time"

	"jobly/internal/auth"
	"jobly/internal/cache"
	"jobly/internal/config"
	dom "jobly/internal/domain"
	"jobly/internal/handlers"
	"jobly/internal/repo"
	"jobly/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

type apiHandlers struct {
	sessions  auth.SessionGetter
	auth      *handlers.AuthHandler
	companies *handlers.CompanyHandler
	jobs      *handlers.JobHandler
	users     *handlers.UserHandler
}

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg, db, rdb))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(http.StatusFound, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	ttl := cfg.Redis.DefaultTTL.Duration()
	companyCache := cache.NewListCache[dom.Company](rdb, cache.PrefixCompanies, ttl)
	jobCache := cache.NewListCache[dom.Job](rdb, cache.PrefixJobs, ttl)

	sessionStore := auth.NewStore(rdb, cfg.Session.TTL.Duration())
	userSvc := service.NewUserService(repo.NewPGUserRepo(db), cfg.Session.BcryptCost)
	companySvc := service.NewCompanyService(repo.NewPGCompanyRepo(db), companyCache, jobCache)
	jobSvc := service.NewJobService(repo.NewPGJobRepo(db), jobCache)

	registerAPI(r.Group("/api/v1"), apiHandlers{
		sessions:  sessionStore,
		auth:      handlers.NewAuthHandler(sessionStore, userSvc),
		companies: handlers.NewCompanyHandler(companySvc),
		jobs:      handlers.NewJobHandler(jobSvc),
		users:     handlers.NewUserHandler(userSvc),
	})
}

// registerAPI mounts the /api/v1 routes. Listings and single reads are
// public; writes need an admin session; user routes need the same user or
// an admin.
func registerAPI(api *gin.RouterGroup, h apiHandlers) {
	api.POST("/auth/login", h.auth.Login)
	api.POST("/auth/register", h.auth.Register)
	api.POST("/auth/logout", h.auth.Logout)

	api.GET("/companies", h.companies.List)
	api.GET("/companies/:handle", h.companies.Get)
	api.GET("/jobs", h.jobs.List)
	api.GET("/jobs/:id", h.jobs.Get)

	session := auth.RequireSession(h.sessions)

	admin := api.Group("", session, auth.RequireAdmin())
	admin.POST("/companies", h.companies.Create)
	admin.PATCH("/companies/:handle", h.companies.Update)
	admin.DELETE("/companies/:handle", h.companies.Delete)
	admin.POST("/jobs", h.jobs.Create)
	admin.PATCH("/jobs/:id", h.jobs.Update)
	admin.DELETE("/jobs/:id", h.jobs.Delete)

	users := api.Group("/users/:username", session, auth.RequireAdminOrSelf("username"))
	users.GET("", h.users.Get)
	users.POST("/jobs/:id", h.users.Apply)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Jobly API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

// healthHandler reports 503 when Postgres or Redis does not answer a ping.
func healthHandler(cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		checks := gin.H{"postgres": "ok", "redis": "ok"}
		status := http.StatusOK
		if err := db.Ping(ctx); err != nil {
			checks["postgres"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			checks["redis"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"ok": status == http.StatusOK, "env": cfg.App.Env, "checks": checks})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	}
}
