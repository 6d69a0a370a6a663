package controllers

import (
	"errors"
	"net/http"

	"github.com/Panupong-xD/SodiumTracker/models"
	"github.com/Panupong-xD/SodiumTracker/services"
	"github.com/Panupong-xD/SodiumTracker/storage"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Svc *services.ProfileService
}

func NewProfileController(svc *services.ProfileService) *ProfileController {
	return &ProfileController{Svc: svc}
}

// GET /profile
func (h *ProfileController) GetProfile(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context())
	if errors.Is(err, services.ErrNoProfile) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no profile saved yet"})
		return
	}
	if err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// PUT /profile is a full form resubmission. The recommended budget comes back
// recomputed in the response.
func (h *ProfileController) UpdateProfile(c *gin.Context) {
	var p models.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	saved, err := h.Svc.Save(c.Request.Context(), p)
	if err != nil {
		if isStorageErr(err) {
			writeStorageError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// --- shared error mapping ---

// isStorageErr separates gateway failures from validation failures.
// Validation errors are plain, unwrapped messages; everything that touched
// the gateway wraps an underlying cause.
func isStorageErr(err error) bool {
	var corrupt *storage.CorruptStateError
	return errors.As(err, &corrupt) || errors.Unwrap(err) != nil
}

func writeStorageError(c *gin.Context, err error) {
	var corrupt *storage.CorruptStateError
	if errors.As(err, &corrupt) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stored data is corrupt", "key": corrupt.Key})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load/save data"})
}
