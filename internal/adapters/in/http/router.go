package http

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"loading/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const BaseURL = "/api/v1"

// openAPIDoc serves the embedded OpenAPI document through swag's registry.
type openAPIDoc struct {
	doc string
}

func (d openAPIDoc) ReadDoc() string { return d.doc }

var registerDocOnce sync.Once

// RegisterSwaggerDoc validates the embedded OpenAPI document and registers it for
// the Swagger UI. Registering more than once is a no-op.
func RegisterSwaggerDoc() error {
	spec, err := servers.GetSwagger()
	if err != nil {
		return err
	}
	if err = spec.Validate(context.Background()); err != nil {
		return fmt.Errorf("invalid OpenAPI document: %w", err)
	}

	raw, err := spec.MarshalJSON()
	if err != nil {
		return err
	}

	registerDocOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{doc: string(raw)})
	})
	return nil
}

// NewRouter builds the echo instance serving the API, the health probe and the
// Swagger UI. Extra routes such as /metrics are added by the caller.
func NewRouter(server *Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			c.Logger().Infoj(log.JSON{
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency.String(),
			})
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlersWithBaseURL(e, server, BaseURL)
	return e
}
