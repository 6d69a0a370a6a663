package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Panupong-xD/SodiumTracker/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Svc *services.CatalogService
}

func NewFoodController(svc *services.CatalogService) *FoodController {
	return &FoodController{Svc: svc}
}

// GET /foods?q=มาม่า
func (h *FoodController) ListFoods(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /foods
func (h *FoodController) AddFood(c *gin.Context) {
	var req services.AddFoodInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	item, err := h.Svc.Add(c.Request.Context(), req, time.Now())
	if err != nil {
		if isStorageErr(err) {
			writeStorageError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// DELETE /foods/:id
func (h *FoodController) DeleteFood(c *gin.Context) {
	err := h.Svc.Remove(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrFoodNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "food item not found"})
		return
	}
	if err != nil {
		writeStorageError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /foods/:id/favorite toggles the flag and returns the updated item.
func (h *FoodController) ToggleFavorite(c *gin.Context) {
	item, err := h.Svc.ToggleFavorite(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrFoodNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "food item not found"})
		return
	}
	if err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}
