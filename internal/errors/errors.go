package errors

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castillotomupwork/task/internal/dto"
	"github.com/castillotomupwork/task/internal/validators"
)

// ValidationFailed sends a 400 response carrying the field-error list in the
// envelope's message slot.
func ValidationFailed(c *gin.Context, errs []validators.FieldError) {
	c.JSON(http.StatusBadRequest, dto.Fail(errs))
}

// BadRequest sends a 400 response with a single message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.Fail(message))
}

// NotFound sends a 404 response with a single message.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, dto.Fail(message))
}

// Internal sends a 500 response with a generic localized message. The real
// error is logged server-side and never leaves the process.
func Internal(c *gin.Context, message string, err error) {
	log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, dto.Fail(message))
}
