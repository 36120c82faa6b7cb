package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GurjasChalana/fitness-club/internal/apperr"
)

// WriteError maps a service error to its transport response. Unknown
// errors get a generic 500 so internals never leak to clients.
func WriteError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
