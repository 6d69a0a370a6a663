package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Panupong-xD/SodiumTracker/services"

	"github.com/gin-gonic/gin"
)

type ConsumptionController struct {
	Svc *services.ConsumptionService
	Hub *services.RealtimeHub
}

func NewConsumptionController(svc *services.ConsumptionService, hub *services.RealtimeHub) *ConsumptionController {
	return &ConsumptionController{Svc: svc, Hub: hub}
}

// POST /consumption  { "food_id": "11" }
func (h *ConsumptionController) LogConsumption(c *gin.Context) {
	var req struct {
		FoodID string `json:"food_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	now := time.Now()
	ev, err := h.Svc.Log(c.Request.Context(), req.FoodID, now)
	if errors.Is(err, services.ErrNoProfile) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "set up a profile before logging consumption"})
		return
	}
	if errors.Is(err, services.ErrFoodNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "food item not found"})
		return
	}
	if err != nil {
		writeStorageError(c, err)
		return
	}

	// Push the refreshed headline to any connected dashboard.
	if summary, err := h.Svc.Summary(c.Request.Context(), now); err == nil {
		h.Hub.BroadcastSummary(summary)
	}

	c.JSON(http.StatusCreated, ev)
}

// GET /history?q=มาม่า
func (h *ConsumptionController) GetHistory(c *gin.Context) {
	sections, err := h.Svc.History(c.Request.Context(), c.Query("q"), time.Now())
	if err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, sections)
}

// DELETE /consumption/:id. Only same-day events can go.
func (h *ConsumptionController) DeleteConsumption(c *gin.Context) {
	err := h.Svc.Delete(c.Request.Context(), c.Param("id"), time.Now())
	if errors.Is(err, services.ErrEventNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "consumption event not found"})
		return
	}
	if errors.Is(err, services.ErrPastDayReadOnly) {
		c.JSON(http.StatusForbidden, gin.H{"error": "only today's events can be deleted"})
		return
	}
	if err != nil {
		writeStorageError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /consumption clears the whole log.
func (h *ConsumptionController) ClearHistory(c *gin.Context) {
	if err := h.Svc.Clear(c.Request.Context()); err != nil {
		writeStorageError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
