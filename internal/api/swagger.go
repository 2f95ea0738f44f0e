package api

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:embed openapi.yaml
var openapiSpec []byte

// HandleOpenAPISpec serves the embedded OpenAPI document.
// (GET /openapi.yaml)
func HandleOpenAPISpec(c echo.Context) error {
	return c.Blob(http.StatusOK, "application/yaml", openapiSpec)
}

// SwaggerUI serves the interactive API docs, pointed at the embedded spec.
// (GET /swagger/*)
func SwaggerUI() echo.HandlerFunc {
	return echo.WrapHandler(httpSwagger.Handler(
		httpSwagger.URL("/openapi.yaml"),
	))
}
