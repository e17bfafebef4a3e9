package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/interview-console/internal/models"
	"github.com/noah-isme/interview-console/internal/service"
	"github.com/noah-isme/interview-console/internal/session"
	appErrors "github.com/noah-isme/interview-console/pkg/errors"
	"github.com/noah-isme/interview-console/pkg/response"
)

// ContextUserKey is the gin context key storing the console session claims.
const ContextUserKey = "currentUser"

// StudentSession protects student routes. It reads the console token from
// the durable student cookie, validates it and stores the claims on the
// request context.
func StudentSession(store *session.Store, authService *service.AuthService) gin.HandlerFunc {
	return requireSession(authService, models.RoleStudent, store.StudentToken)
}

// AdminSession protects admin console routes using the session-scoped admin
// cookie.
func AdminSession(store *session.Store, authService *service.AuthService) gin.HandlerFunc {
	return requireSession(authService, models.RoleAdmin, store.AdminToken)
}

func requireSession(authService *service.AuthService, role models.Role, tokenFrom func(r *http.Request) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFrom(c.Request)
		if token == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(token)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if claims.Role != role {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}

		c.Set(ContextUserKey, claims)
		c.Next()
	}
}
