package errors

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Responder writes structured errors to HTTP responses with standardized
// logging. Handlers hand it whatever error came back from the registry and
// it decides status code and body.
type Responder struct {
	logger Logger
}

type Logger interface {
	Warn(msg string, fields map[string]interface{})
}

func NewResponder(logger Logger) *Responder {
	return &Responder{logger: logger}
}

// Respond normalizes err to an APIError and writes the {"detail": ...}
// body with the error's HTTP status.
func (r *Responder) Respond(c *gin.Context, err error) {
	apiErr := r.normalizeError(err)

	r.logger.Warn("request failed", map[string]interface{}{
		"code":   string(apiErr.Code),
		"detail": apiErr.Detail,
		"status": apiErr.Status,
		"path":   c.FullPath(),
	})

	c.JSON(apiErr.Status, gin.H{"detail": apiErr.Detail})
}

// normalizeError ensures we always have an APIError.
func (r *Responder) normalizeError(err error) *APIError {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}
	return &APIError{
		Code:      "INTERNAL_ERROR",
		Detail:    "Unexpected error",
		Status:    http.StatusInternalServerError,
		Timestamp: time.Now().UTC(),
	}
}
