package api

import (
	"strconv"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"wavetags.link/configs/configslog"
	"wavetags.link/pkg/notifier"
)

// WSHandler gerçek zamanlı bildirim bağlantıları için handler.
type WSHandler struct {
	hub *notifier.Hub
}

// NewWSHandler yeni bir WSHandler örneği oluşturur.
func NewWSHandler(hub *notifier.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// Upgrade websocket olmayan istekleri reddeder.
func (h *WSHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Serve (GET /ws/:userId)
// Bağlantı kapanana kadar okur; sunucudan istemciye akış hub üzerinden yürür.
// İstemciden gelen mesajlar yok sayılır, okuma yalnızca kopuşu yakalamak içindir.
func (h *WSHandler) Serve() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID := parseWSUserID(conn.Params("userId"))
		if userID == 0 {
			_ = conn.Close()
			return
		}

		h.hub.Register(userID, conn)
		configslog.Log.Info("Websocket bağlantısı açıldı", zap.Uint("user_id", userID))

		defer func() {
			h.hub.Unregister(userID, conn)
			_ = conn.Close()
			configslog.Log.Info("Websocket bağlantısı kapandı", zap.Uint("user_id", userID))
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}

func parseWSUserID(raw string) uint {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}
