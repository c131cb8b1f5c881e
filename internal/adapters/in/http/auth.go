package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"catering/internal/adapters/in/http/servers"
	"catering/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

var errUnauthenticated = errors.New("authentication required")

// Claims is the access token payload issued by the identity provider.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// Authenticate resolves the bearer token into a kernel.Principal stored on
// the echo context. Tokens are HS256 signed with secret.
func Authenticate(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
				return unauthorized(ctx, "Missing bearer token")
			}

			principal, err := parsePrincipal(secret, token)
			if err != nil {
				return unauthorized(ctx, "Invalid or expired token")
			}

			ctx.Set(principalKey, principal)
			return next(ctx)
		}
	}
}

func parsePrincipal(secret, tokenStr string) (kernel.Principal, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return kernel.Principal{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return kernel.Principal{}, errors.New("invalid token")
	}
	return kernel.NewPrincipal(claims.UserID, kernel.Role(claims.Role))
}

func principalFrom(ctx echo.Context) (kernel.Principal, error) {
	principal, ok := ctx.Get(principalKey).(kernel.Principal)
	if !ok {
		return kernel.Principal{}, errUnauthenticated
	}
	return principal, nil
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{Code: http.StatusUnauthorized, Message: message})
}
