package http

import (
	"net/http"
	"strings"

	"catering/internal/adapters/in/http/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

// ValidateRequests checks every request matching an operation of swagger
// against its parameters and body schema. Requests that match no operation
// are left to the router.
func ValidateRequests(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	// match on path only, whatever host the service runs behind
	pathOnly := *swagger
	pathOnly.Servers = nil

	router, err := gorillamux.NewRouter(&pathOnly)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				message, _, _ := strings.Cut(err.Error(), "\n")
				return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
			}
			return next(ctx)
		}
	}, nil
}
