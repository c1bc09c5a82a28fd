package adminapi

import (
	"github.com/labstack/echo/v4"

	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/webserver"
)

func registerSiteRoutes() {
	webserver.ApiGET("/site/content", siteContent)
	webserver.ApiGET("/site/branding", siteBranding)
	webserver.ApiGET("/site/footer", siteFooter)
	webserver.ApiGET("/site/technologies", siteTechnologies)
}

func siteContent(c echo.Context) error {
	return ok(c, GetApp(c).Content())
}

func siteBranding(c echo.Context) error {
	return ok(c, GetApp(c).Content().Branding)
}

func siteFooter(c echo.Context) error {
	return ok(c, GetApp(c).Content().Footer)
}

// siteTechnologies serves the catalog the form's technology picker
// renders its toggle buttons from.
func siteTechnologies(c echo.Context) error {
	return ok(c, GetApp(c).Content().Technologies)
}
