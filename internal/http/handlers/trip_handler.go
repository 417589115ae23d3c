// README: Trip planning handler.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/modules/planner"
)

// planTimeout bounds the whole three-generation pipeline.
const planTimeout = 120 * time.Second

type TripHandler struct {
	planner *planner.Service
}

func NewTripHandler(p *planner.Service) *TripHandler {
	return &TripHandler{planner: p}
}

type planTripReq struct {
	City string `json:"city"`
	Days int    `json:"days"`
}

type planTripResp struct {
	City        string   `json:"city"`
	Days        int      `json:"days"`
	Attractions []string `json:"attractions"`
	Guide       string   `json:"guide"`
	Itinerary   string   `json:"itinerary"`
	Hotels      string   `json:"hotels"`
	TopHotel    string   `json:"top_hotel"`
	TotalCost   string   `json:"total_cost"`
	Summary     string   `json:"summary"`
}

// Plan handles POST /api/trips/plan.
func (h *TripHandler) Plan(c *gin.Context) {
	var req planTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), planTimeout)
	defer cancel()

	trip, err := h.planner.Plan(ctx, req.City, req.Days)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, planTripResp{
		City:        trip.City,
		Days:        trip.Days,
		Attractions: trip.Attractions,
		Guide:       trip.GuideText,
		Itinerary:   trip.ItineraryText,
		Hotels:      trip.HotelText,
		TopHotel:    trip.TopHotel,
		TotalCost:   trip.CostLabel,
		Summary:     trip.SummaryText,
	})
}
