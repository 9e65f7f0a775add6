// Package http is the echo transport of the admin panel: server-rendered pages
// for the operator and a small JSON API for the storefront.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"penguinadmin/internal/auth"
	"penguinadmin/internal/core/ports"
	"penguinadmin/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Config holds the transport settings.
type Config struct {
	// UploadsPath is the directory product images are written to and served from.
	UploadsPath string
	// RequestTimeout bounds the store work of a single request.
	RequestTimeout time.Duration
}

// Server routes HTTP requests to the application use cases.
type Server struct {
	handlers Handlers
	sessions *auth.Manager
	csrf     ports.AntiForgeryTokenStore
	logger   *slog.Logger
	cfg      Config
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	handlers Handlers,
	sessions *auth.Manager,
	csrf ports.AntiForgeryTokenStore,
	logger *slog.Logger,
	cfg Config,
) *Server {
	if cfg.UploadsPath == "" {
		cfg.UploadsPath = "uploads"
	}
	return &Server{
		handlers: handlers,
		sessions: sessions,
		csrf:     csrf,
		logger:   logger.With("component", "http"),
		cfg:      cfg,
	}
}

// NewEcho builds the echo instance with middleware and every route registered.
func (s *Server) NewEcho() (*echo.Echo, error) {
	renderer, err := newTemplateRenderer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURIPath:  true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("path", v.URIPath),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				level = slog.LevelError
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			s.logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	}))
	if s.cfg.RequestTimeout > 0 {
		e.Use(s.requestTimeout(s.cfg.RequestTimeout))
	}

	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}
	e.Use(validator)

	s.register(e)
	return e, nil
}

func (s *Server) register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/login")
	})

	e.GET("/login", s.LoginForm)
	e.POST("/login", s.Login)
	e.POST("/logout", s.Logout)

	admin := e.Group("", s.requireSession)
	admin.Match([]string{http.MethodGet, http.MethodPost}, "/dashboard", s.Dashboard)
	admin.Match([]string{http.MethodGet, http.MethodPost}, "/orders", s.ListOrders)
	admin.Match([]string{http.MethodGet, http.MethodPost}, "/orders/:id", s.ShowOrder)
	admin.POST("/orders/:id/status", s.ChangeOrderStatus)
	admin.POST("/orders/:id/deliver", s.DeliverOrder)
	admin.Match([]string{http.MethodGet, http.MethodPost}, "/deliveries", s.ListDeliveries)
	admin.Match([]string{http.MethodGet, http.MethodPost}, "/products", s.ListProducts)
	admin.Match([]string{http.MethodGet, http.MethodPost}, "/products/new", s.NewProductForm)
	admin.POST("/products/create", s.CreateProduct)
	admin.Match([]string{http.MethodGet, http.MethodPost}, "/products/:id/edit", s.EditProductForm)
	admin.POST("/products/:id/update", s.UpdateProduct)
	admin.POST("/products/:id/delete", s.DeleteProduct)
	admin.POST("/products/:id/image", s.UploadProductImage)

	servers.RegisterHandlers(e, s)
	e.GET("/api/openapi.yml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", servers.Document())
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static(uploadsURL, s.cfg.UploadsPath)
}

func (s *Server) requestTimeout(d time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), d)
			defer cancel()
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
