// Package adminapi exposes the HTTP surface of the content tool: the
// product editing endpoints the form posts to, the marketing content
// endpoints the site shell reads, and a process status probe.
package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/app"
	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/webserver"
)

type apiResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Detail  interface{} `json:"detail,omitempty"`
}

// GetApp extracts the application container injected by the webserver.
func GetApp(c echo.Context) *app.Application {
	return c.Get(webserver.AppContextKey).(*app.Application)
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, apiResponse{Code: "OK", Data: data})
}

func okMessage(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, apiResponse{Code: "OK", Message: message, Data: data})
}

func fail(c echo.Context, status int, code, message string, detail interface{}) error {
	return c.JSON(status, apiResponse{Code: code, Message: message, Detail: detail})
}

// InitRouter registers every adminapi route with the webserver.
func InitRouter() {
	registerProductRoutes()
	registerSiteRoutes()
	registerStatusRoutes()
}
