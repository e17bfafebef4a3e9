package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/interview-console/internal/middleware"
	"github.com/noah-isme/interview-console/internal/models"
	"github.com/noah-isme/interview-console/internal/service"
	"github.com/noah-isme/interview-console/pkg/response"
)

func claimsFromContext(c *gin.Context) *models.ConsoleClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.ConsoleClaims)
	if !ok {
		return nil
	}
	return claims
}

// respondError renders form validation failures as per-field errors and
// everything else through the common envelope.
func respondError(c *gin.Context, err error) {
	var fields service.FieldErrors
	if errors.As(err, &fields) {
		response.FieldErrors(c, fields)
		return
	}
	response.Error(c, err)
}
