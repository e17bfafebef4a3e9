package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/interview-console/internal/models"
	appErrors "github.com/noah-isme/interview-console/pkg/errors"
)

// Envelope represents the common response contract.
type Envelope struct {
	Data       interface{}            `json:"data,omitempty"`
	Error      *appErrors.Error       `json:"error,omitempty"`
	Pagination *models.Pagination     `json:"pagination,omitempty"`
	Meta       map[string]interface{} `json:"meta,omitempty"`
}

// JSON sends a success response with optional pagination metadata.
func JSON(c *gin.Context, status int, data interface{}, pagination *models.Pagination, meta ...map[string]interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	envelope := Envelope{Data: data, Pagination: pagination}
	if len(meta) > 0 && meta[0] != nil {
		envelope.Meta = meta[0]
	}
	c.JSON(status, envelope)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data, nil)
}

// Reload responds with a success payload and signals the client to perform a
// full page reload to pick up the mutation's effects.
func Reload(c *gin.Context, status int, data interface{}) {
	JSON(c, status, data, nil, map[string]interface{}{"reload": true})
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, Envelope{Error: appErr})
}

// FieldErrors sends a validation failure with per-field messages so forms can
// highlight individual inputs.
func FieldErrors(c *gin.Context, fields map[string]string) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	meta := make(map[string]interface{}, 1)
	fieldMap := make(map[string]interface{}, len(fields))
	for name, msg := range fields {
		fieldMap[name] = msg
	}
	meta["fields"] = fieldMap
	c.JSON(http.StatusBadRequest, Envelope{Error: appErrors.ErrValidation, Meta: meta})
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
