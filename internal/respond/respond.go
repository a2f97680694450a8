// Package respond owns the wire shape of every response: entity payloads,
// `{"message": ...}` bodies for status errors, and field->message maps for
// body validation failures.
package respond

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/projectdesk/projectdesk-backend/internal/apperr"
)

// Data writes an entity (or slice of entities) as-is at the given status.
func Data(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Message writes a `{"message": ...}` body at the given status.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// FieldErrors writes a field->violation map at 400, the shape body
// validation failures use.
func FieldErrors(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, fields)
}

// Error translates a service failure into its wire response. Typed errors
// keep their status and message; anything else is an unexpected failure and
// comes back as a logged 500.
func Error(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		Message(c, ae.Status, ae.Message)
		return
	}

	log.Error().Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("unhandled error")
	Message(c, http.StatusInternalServerError, "internal server error")
}
