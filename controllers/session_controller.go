package controllers

import (
	"net/http"
	"time"

	"github.com/Panupong-xD/SodiumTracker/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionController struct {
	Secret      []byte
	PairingCode string
}

func NewSessionController(secret []byte, pairingCode string) *SessionController {
	return &SessionController{Secret: secret, PairingCode: pairingCode}
}

// POST /session/pair  { "code": "..." }
// Exchanges the one pairing code for a device-session token. Single-user
// deployment: the code is shown by the operator, not per-account.
func (h *SessionController) Pair(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if req.Code != h.PairingCode {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong pairing code"})
		return
	}

	token, err := middlewares.IssueDeviceToken(h.Secret, uuid.NewString(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
