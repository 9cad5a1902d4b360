package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// WriteDomain maps an error from the scheduling core onto the wire.
func WriteDomain(c *gin.Context, err error) {
	var de DomainError
	if !errors.As(err, &de) {
		Internal(c, "internal_error", "Something went wrong.")
		return
	}

	switch de.Kind {
	case KindValidation:
		BadRequest(c, de.Code, "Invalid request.")
	case KindAuthorization:
		Forbidden(c, de.Code, "Not allowed.")
	case KindNotFound:
		NotFound(c, de.Code, "Not found.")
	case KindConflict:
		Conflict(c, de.Code, "Requested time conflicts with an existing booking or block.")
	case KindPolicy:
		Write(c, http.StatusUnprocessableEntity, de.Code, "Request violates scheduling policy.")
	default:
		Internal(c, "internal_error", "Something went wrong.")
	}
}
