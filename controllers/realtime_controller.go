package controllers

import (
	"net/http"
	"time"

	"github.com/Panupong-xD/SodiumTracker/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	Hub *services.RealtimeHub
	Svc *services.ConsumptionService
}

func NewRealtimeController(hub *services.RealtimeHub, svc *services.ConsumptionService) *RealtimeController {
	return &RealtimeController{Hub: hub, Svc: svc}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GET /ws streams today-summary frames as consumption gets logged.
func (rc *RealtimeController) SummaryWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	rc.Hub.Register(conn)

	// Send the current headline so a fresh dashboard is never blank.
	if summary, err := rc.Svc.Summary(c.Request.Context(), time.Now()); err == nil {
		rc.Hub.BroadcastSummary(summary)
	}

	// keepalive through proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				rc.Hub.Unregister(conn)
				return
			}
		}
	}()

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.Hub.Unregister(conn)
			return
		}
	}
}
