package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pandeptwidyaop/landing-kit/internal/artifacts"
	"github.com/pandeptwidyaop/landing-kit/internal/config"
	"github.com/pandeptwidyaop/landing-kit/internal/handlers"
	"github.com/pandeptwidyaop/landing-kit/internal/middleware"
	"github.com/pandeptwidyaop/landing-kit/internal/services"
	"github.com/pandeptwidyaop/landing-kit/internal/upgrade"
)

// Deps are the services the routes are built on. Events and Docker may be nil.
type Deps struct {
	Events  *services.EventService
	Store   *artifacts.Store
	Docker  handlers.DockerProbe
	Checker *upgrade.Checker
}

func New(cfg *config.Config, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodySizeLimit(cfg.Server.MaxBodyBytes))

	paths := cfg.Paths
	if deps.Store == nil {
		deps.Store = artifacts.NewStore(paths.Resolve(paths.DeliveryDir))
	}
	if deps.Checker == nil {
		deps.Checker = upgrade.NewChecker()
	}

	pageHandler := handlers.NewPageHandler(paths.Resolve(paths.LandingPage), paths.Resolve(paths.PagesDir))
	infoHandler := handlers.NewInfoHandler(cfg.Packaging.Version)
	downloadHandler := handlers.NewDownloadHandler(deps.Store, deps.Events)
	contactHandler := handlers.NewContactHandler(deps.Events)
	statusHandler := handlers.NewStatusHandler()
	healthHandler := handlers.NewHealthHandler(paths.Resolve(paths.DeliveryDir), deps.Docker)
	versionHandler := handlers.NewVersionHandler(deps.Checker)

	r.Static("/static", paths.Resolve(paths.StaticDir))

	r.GET("/", pageHandler.Home)
	r.GET("/download", pageHandler.Page("download"))
	r.GET("/onboarding", pageHandler.Page("onboarding"))
	r.GET("/support", pageHandler.Page("support"))

	r.GET("/download/"+artifacts.Client, downloadHandler.Download(artifacts.Client))
	r.GET("/download/"+artifacts.Server, downloadHandler.Download(artifacts.Server))

	r.GET("/ws", statusHandler.HandleWebSocket)

	contactLimiter := middleware.NewRateLimiter(cfg.Server.ContactRateLimit, time.Minute)

	api := r.Group("/api")
	{
		api.GET("/client-info", infoHandler.ClientInfo)
		api.GET("/server-info", infoHandler.ServerInfo)
		api.GET("/download-stats", downloadHandler.Stats)
		api.POST("/contact", contactLimiter.Middleware(), contactHandler.Submit)

		api.GET("/health", healthHandler.Health)
		api.GET("/version", versionHandler.Get)
		api.GET("/version/check", versionHandler.CheckUpdate)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return r
}
