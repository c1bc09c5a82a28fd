// Package webserver hosts the echo instance serving the editing
// surface and the marketing content endpoints. Route registration goes
// through the Api helpers so handler packages never touch echo setup.
package webserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/app"
)

// AppContextKey carries the application container through the echo
// context to handlers.
const AppContextKey = "nmtweb.app"

var server *WebServer

type WebServer struct {
	root *echo.Echo
	api  *echo.Group
	appx *app.Application
}

func Init(appx *app.Application) {
	server = NewWebServer(appx)
}

func NewWebServer(appx *app.Application) *WebServer {
	ws := &WebServer{appx: appx}
	ws.root = echo.New()
	ws.root.HideBanner = true
	ws.root.Pre(middleware.RemoveTrailingSlash())
	ws.root.Use(middleware.Recover())
	ws.root.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
	}))
	ws.root.Use(ws.injectApp)
	ws.root.Use(ws.requestLogger)

	ws.api = ws.root.Group("/api")
	return ws
}

func (ws *WebServer) injectApp(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set(AppContextKey, ws.appx)
		return next(c)
	}
}

func (ws *WebServer) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		zap.L().Debug("http request",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Int("status", c.Response().Status),
			zap.Duration("elapsed", time.Since(start)))
		return err
	}
}

// Listen starts the HTTP listener and blocks until shutdown.
func Listen() error {
	cfg := server.appx.Config()
	addr := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
	zap.S().Infof("web server listening on %s", addr)
	return server.root.Start(addr)
}

// Shutdown stops the HTTP listener gracefully.
func Shutdown(ctx context.Context) error {
	if server == nil {
		return nil
	}
	return server.root.Shutdown(ctx)
}

// Echo exposes the underlying instance (used in tests).
func Echo() *echo.Echo {
	return server.root
}

func ApiGET(path string, h echo.HandlerFunc) {
	server.api.GET(path, h)
}

func ApiPOST(path string, h echo.HandlerFunc) {
	server.api.POST(path, h)
}

func ApiPATCH(path string, h echo.HandlerFunc) {
	server.api.PATCH(path, h)
}

func ApiDELETE(path string, h echo.HandlerFunc) {
	server.api.DELETE(path, h)
}
