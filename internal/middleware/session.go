package middleware

import (
	"net/http"

	"devjobs_backend/internal/logger"
	"devjobs_backend/internal/models"
	"devjobs_backend/internal/sessions"

	"github.com/gin-gonic/gin"
)

// LoginPath is where unauthenticated requests to protected routes land.
const LoginPath = "/iniciar-sesion"

// SessionMiddleware resolves the session cookie to a user. Requests without
// a cookie, or with a token that no longer resolves, proceed as anonymous;
// only a store failure aborts the request.
func SessionMiddleware(authenticator *sessions.Authenticator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		c.Set("sessionToken", token)

		user, err := authenticator.Deserialize(c.Request.Context(), token)
		if err != nil {
			logger.CtxError(c.Request.Context(), "session lookup failed", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
			return
		}
		if user == nil {
			c.Next()
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Set("userID", user.ID)
		c.Set("currentUser", user)
		c.Next()
	}
}

// RequireAuth gates protected routes. Anonymous requests are bounced to the
// login page rather than answered with a JSON 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserID(c) == "" {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID extracts the authenticated user's id from the context, or "".
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}

// GetSessionToken returns the raw cookie token, or "" for anonymous requests.
func GetSessionToken(c *gin.Context) string {
	token, exists := c.Get("sessionToken")
	if !exists {
		return ""
	}

	t, ok := token.(string)
	if !ok {
		return ""
	}

	return t
}

// GetCurrentUser returns the resolved user, or nil for anonymous requests.
func GetCurrentUser(c *gin.Context) *models.User {
	val, exists := c.Get("currentUser")
	if !exists {
		return nil
	}

	user, ok := val.(*models.User)
	if !ok {
		return nil
	}

	return user
}
