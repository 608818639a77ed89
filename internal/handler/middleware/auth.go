package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"salon-scheduler/internal/handler/httperr"
	"salon-scheduler/internal/pkg/config"
	"salon-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ctxCallerIDKey = "caller_id"

// AuthMiddleware verifies bearer tokens minted by the front-of-house chat
// service. The engine never issues tokens itself.
type AuthMiddleware struct {
	secret []byte
}

func NewAuthMiddleware(cfg config.Config) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(cfg.Auth.JWTSecret)}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing bearer token"), "Access token required", nil)
			return
		}
		token := strings.TrimSpace(authHeader[len("Bearer "):])

		callerID, err := m.validateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxCallerIDKey, callerID)
		c.Next()
	}
}

func (m *AuthMiddleware) validateToken(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.New("unexpected signing method")
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", errs.Wrap(err, "failed to parse token")
	}
	if !parsed.Valid {
		return "", errs.New("invalid token")
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", errs.New("token has no subject")
	}
	return sub, nil
}

// GetCallerID returns the authenticated caller from context.
func GetCallerID(c *gin.Context) (string, bool) {
	callerID, exists := c.Get(ctxCallerIDKey)
	if !exists {
		return "", false
	}
	id, ok := callerID.(string)
	return id, ok
}
