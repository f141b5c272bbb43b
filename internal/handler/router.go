package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shareit/internal/handler/api"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Users    *api.UserHandler
	Items    *api.ItemHandler
	Bookings *api.BookingHandler
	Requests *api.RequestHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, registry *prometheus.Registry, handlers Handlers) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, registry, handlers)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, registry *prometheus.Registry, handlers Handlers) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	users := engine.Group("/users")
	{
		addRoutes(users, []route{
			{Method: http.MethodPost, Path: "", Handler: handlers.Users.Create},
			{Method: http.MethodGet, Path: "", Handler: handlers.Users.List},
			{Method: http.MethodGet, Path: "/:userId", Handler: handlers.Users.Get},
			{Method: http.MethodPatch, Path: "/:userId", Handler: handlers.Users.Update},
			{Method: http.MethodDelete, Path: "/:userId", Handler: handlers.Users.Delete},
		})
	}

	items := engine.Group("/items")
	items.Use(middleware.RequireIdentity())
	{
		addRoutes(items, []route{
			{Method: http.MethodPost, Path: "", Handler: handlers.Items.Create},
			{Method: http.MethodGet, Path: "", Handler: handlers.Items.ListForOwner},
			{Method: http.MethodGet, Path: "/search", Handler: handlers.Items.Search},
			{Method: http.MethodGet, Path: "/:itemId", Handler: handlers.Items.Get},
			{Method: http.MethodPatch, Path: "/:itemId", Handler: handlers.Items.Update},
			{Method: http.MethodDelete, Path: "/:itemId", Handler: handlers.Items.Delete},
			{Method: http.MethodPost, Path: "/:itemId/comment", Handler: handlers.Items.CreateComment},
		})
	}

	bookings := engine.Group("/bookings")
	bookings.Use(middleware.RequireIdentity())
	{
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: handlers.Bookings.Create},
			{Method: http.MethodGet, Path: "", Handler: handlers.Bookings.ListForBooker},
			{Method: http.MethodGet, Path: "/owner", Handler: handlers.Bookings.ListForOwner},
			{Method: http.MethodGet, Path: "/:bookingId", Handler: handlers.Bookings.Get},
			{Method: http.MethodPatch, Path: "/:bookingId", Handler: handlers.Bookings.Approve},
		})
	}

	requests := engine.Group("/requests")
	requests.Use(middleware.RequireIdentity())
	{
		addRoutes(requests, []route{
			{Method: http.MethodPost, Path: "", Handler: handlers.Requests.Create},
			{Method: http.MethodGet, Path: "", Handler: handlers.Requests.ListOwn},
			{Method: http.MethodGet, Path: "/all", Handler: handlers.Requests.ListOthers},
			{Method: http.MethodGet, Path: "/:requestId", Handler: handlers.Requests.Get},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
