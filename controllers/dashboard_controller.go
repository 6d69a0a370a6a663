package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Panupong-xD/SodiumTracker/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Svc *services.ConsumptionService
}

func NewDashboardController(svc *services.ConsumptionService) *DashboardController {
	return &DashboardController{Svc: svc}
}

// GET /dashboard/summary
func (h *DashboardController) GetSummary(c *gin.Context) {
	summary, err := h.Svc.Summary(c.Request.Context(), time.Now())
	if errors.Is(err, services.ErrNoProfile) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no profile saved yet"})
		return
	}
	if err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /dashboard/chart?period=weekly|monthly|yearly
func (h *DashboardController) GetChart(c *gin.Context) {
	period, err := services.ParsePeriod(c.DefaultQuery("period", "weekly"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	chart, err := h.Svc.Chart(c.Request.Context(), period, time.Now())
	if errors.Is(err, services.ErrNoProfile) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no profile saved yet"})
		return
	}
	if err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, chart)
}
