package http

import (
	"context"
	"log/slog"
	"net/http"

	"catering/internal/adapters/in/http/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// openAPIDoc serves the contract to the swagger UI.
type openAPIDoc struct {
	json string
}

func (d openAPIDoc) ReadDoc() string {
	return d.json
}

// NewRouter builds the echo instance: health check, swagger UI and the API
// routes behind authentication and request validation.
func NewRouter(server servers.ServerInterface, swagger *openapi3.T, jwtSecret string, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := swagger.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if swag.GetSwagger(swag.Name) == nil {
		swag.Register(swag.Name, openAPIDoc{json: string(doc)})
	}

	validator, err := ValidateRequests(swagger)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(context.Background(), level, "Request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(withMiddleware(e, Authenticate(jwtSecret), validator), server)

	return e, nil
}

// middlewareRouter attaches middleware to each registered route rather than to
// a group, so unknown paths still answer 404 instead of 401.
type middlewareRouter struct {
	e  *echo.Echo
	mw []echo.MiddlewareFunc
}

func withMiddleware(e *echo.Echo, mw ...echo.MiddlewareFunc) middlewareRouter {
	return middlewareRouter{e: e, mw: mw}
}

func (r middlewareRouter) chain(m []echo.MiddlewareFunc) []echo.MiddlewareFunc {
	return append(append([]echo.MiddlewareFunc{}, r.mw...), m...)
}

func (r middlewareRouter) CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.e.CONNECT(path, h, r.chain(m)...)
}

func (r middlewareRouter) DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.e.DELETE(path, h, r.chain(m)...)
}

func (r middlewareRouter) GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.e.GET(path, h, r.chain(m)...)
}

func (r middlewareRouter) HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.e.HEAD(path, h, r.chain(m)...)
}

func (r middlewareRouter) OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.e.OPTIONS(path, h, r.chain(m)...)
}

func (r middlewareRouter) PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.e.PATCH(path, h, r.chain(m)...)
}

func (r middlewareRouter) POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.e.POST(path, h, r.chain(m)...)
}

func (r middlewareRouter) PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.e.PUT(path, h, r.chain(m)...)
}

func (r middlewareRouter) TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.e.TRACE(path, h, r.chain(m)...)
}
