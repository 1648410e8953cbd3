package middleware

import (
	"context"
	"net/http"
	"time"

	"mediaMatcher/domain"
	"mediaMatcher/pkg/logger"
	"mediaMatcher/pkg/utils"

	jsonres "mediaMatcher/pkg/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const sessionCookieName = "mm_session"

// UserRepository resolves a session ID to a user row, creating it on first
// sight.
type UserRepository interface {
	FindOrCreateBySessionID(ctx context.Context, sessionID string) (domain.User, error)
}

// SessionMiddleware implements the anonymous identity model: a signed cookie
// carries a session UUID, and every request resolves it to a user. Missing
// or invalid cookies get a fresh session instead of an error.
func SessionMiddleware(users UserRepository, secret string, ttl time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := ""

			if cookie, err := c.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
				if claims, err := utils.ParseSessionToken(cookie.Value, secret); err == nil {
					sessionID = claims.SessionID
				}
			}

			if sessionID == "" {
				sessionID = uuid.NewString()

				token, err := utils.GenerateSessionToken(sessionID, secret, ttl)
				if err != nil {
					logger.Error("failed to issue session token", "error", err)
					return c.JSON(http.StatusInternalServerError, jsonres.Error(
						"INTERNAL", "Failed to establish session", nil,
					))
				}

				c.SetCookie(&http.Cookie{
					Name:     sessionCookieName,
					Value:    token,
					Path:     "/",
					Expires:  time.Now().Add(ttl),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			user, err := users.FindOrCreateBySessionID(c.Request().Context(), sessionID)
			if err != nil {
				logger.Error("failed to resolve session user", "error", err)
				return c.JSON(http.StatusInternalServerError, jsonres.Error(
					"INTERNAL", "Failed to establish session", nil,
				))
			}

			c.Set("user_id", user.ID)
			c.Set("session_id", sessionID)

			return next(c)
		}
	}
}
