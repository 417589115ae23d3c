// README: Hazard report handler.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/modules/hazard"
)

// hazardTimeout covers geocoding plus the three parallel feed fetches.
const hazardTimeout = 30 * time.Second

type HazardHandler struct {
	hazard *hazard.Service
}

func NewHazardHandler(svc *hazard.Service) *HazardHandler {
	return &HazardHandler{hazard: svc}
}

type hazardReportReq struct {
	City      string `json:"city"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Report handles POST /api/hazards/report.
func (h *HazardHandler) Report(c *gin.Context) {
	var req hazardReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.City = strings.TrimSpace(req.City)
	if req.City == "" {
		writeError(c, http.StatusBadRequest, "missing city")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), hazardTimeout)
	defer cancel()

	report, err := h.hazard.Aggregate(ctx, req.City, req.StartDate, req.EndDate)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, report)
}
