package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondBindingError writes a 400 response for a request body that failed
// binding. When the failure comes from struct validation, the offending
// fields are listed so the editing UI can highlight the inputs.
func respondBindingError(c *gin.Context, err error) {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		fields := make([]string, len(vErrs))
		for i, fe := range vErrs {
			fields[i] = lowerFirst(fe.Field())
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request validation failed", "fields": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}

// lowerFirst maps an exported struct field name to its JSON spelling.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
