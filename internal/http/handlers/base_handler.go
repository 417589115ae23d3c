// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/ai"
	"wayfarer/internal/geo"
	"wayfarer/internal/modules/hazard"
	"wayfarer/internal/modules/planner"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeDomainError maps sentinel errors to HTTP statuses. Geocoding and
// generation failures are whole-request failures; hazard-source gaps never
// reach here (they render inline in the report).
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrBadRequest),
		errors.Is(err, hazard.ErrBadDate),
		errors.Is(err, hazard.ErrBadDateRange):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, geo.ErrLocationNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, geo.ErrGeoService), errors.Is(err, ai.ErrGeneration):
		writeError(c, http.StatusBadGateway, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
