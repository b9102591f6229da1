package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.JSON(statusCode, ErrorResponse{
		Message: customMessage,
	})
}

// RespondWithValidationErrors emits the 422 body carrying one entry per
// offending field.
func RespondWithValidationErrors(c *gin.Context, errors map[string][]string) {
	c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
		Message: "Champ(s) incorrect(s)",
		Errors:  errors,
	})
}
