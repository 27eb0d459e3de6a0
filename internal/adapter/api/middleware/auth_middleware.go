package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/burhansaar3-alt/app/internal/domain/entity"
	"github.com/burhansaar3-alt/app/internal/domain/repository"
	"github.com/burhansaar3-alt/app/internal/infrastructure/firebase"
)

type AuthMiddleware struct {
	authClient *firebase.AuthClient
	userRepo   repository.UserRepository
}

func NewAuthMiddleware(authClient *firebase.AuthClient, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		authClient: authClient,
		userRepo:   userRepo,
	}
}

// Authenticate verifies the bearer token and loads the account into the
// request context under "uid" and "user".
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		uid, err := m.authClient.VerifyToken(c.Request().Context(), parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		user, err := m.userRepo.GetByID(c.Request().Context(), uid)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Account not found")
		}

		c.Set("uid", uid)
		c.Set("user", user)

		return next(c)
	}
}

// AuthenticateOptional loads the account when a valid bearer token is
// present, and lets the request through anonymously otherwise. Used on
// public endpoints whose results widen for elevated roles.
func (m *AuthMiddleware) AuthenticateOptional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return next(c)
		}

		uid, err := m.authClient.VerifyToken(c.Request().Context(), parts[1])
		if err != nil {
			return next(c)
		}

		user, err := m.userRepo.GetByID(c.Request().Context(), uid)
		if err != nil {
			return next(c)
		}

		c.Set("uid", uid)
		c.Set("user", user)

		return next(c)
	}
}

// CurrentUser pulls the authenticated account out of the context. Returns
// nil outside Authenticate.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get("user").(*entity.User)
	return user
}
