package websocket

import (
	"log/slog"
	"net/http"

	ws "github.com/safespacehq/safespace-service/internal/websocket"
)

// Handler upgrades a connection and attaches it to the hub
// @Summary Subscribe to real-time feed events
// @Description One-way stream of story.created, story.reacted and comment.generated events
// @Tags websocket
// @Router /ws [get]
func Handler(hub *ws.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := ws.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("Failed to upgrade connection", slog.String("error", err.Error()))
			return
		}

		client := ws.NewClient(conn, hub)
		hub.RegisterClient(client)
		client.Start()
	}
}
