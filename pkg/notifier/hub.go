package notifier

import (
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"

	"wavetags.link/configs/configslog"
)

// Notification tek bir alıcıya iletilen olay. Teslimat best-effort'tur:
// alıcı bağlı değilse olay kaybolur (at-most-once), ack veya retry yoktur.
type Notification struct {
	Title string    `json:"title"`
	Body  string    `json:"body"`
	Time  time.Time `json:"time"`
	To    uint      `json:"to"`
	Type  string    `json:"type"`
}

// INotifier bildirim yayınlayan bileşenlerin kullandığı arayüz.
type INotifier interface {
	Publish(notification Notification)
}

// IConn hub'ın ihtiyaç duyduğu websocket bağlantı yüzeyi.
type IConn interface {
	WriteJSON(v interface{}) error
	Close() error
}

var _ IConn = (*websocket.Conn)(nil)

// Hub kullanıcı ID'sine göre açık websocket bağlantılarını tutar.
// Uygulama başında bir kez oluşturulur, kapatılmaz; ihtiyaç duyan
// servislere constructor ile verilir.
//
// Websocket bağlantısı aynı anda tek yazar kabul eder; Publish farklı
// goroutine'lerden çağrılabildiği için yazmalar bağlantı başına bir
// mutex ile sıralanır.
type Hub struct {
	mu    sync.RWMutex
	conns map[uint]map[IConn]*sync.Mutex
}

// NewHub boş bir hub oluşturur.
func NewHub() *Hub {
	return &Hub{conns: make(map[uint]map[IConn]*sync.Mutex)}
}

// Register bağlantıyı kullanıcıya bağlar. Aynı kullanıcı birden çok
// bağlantı açabilir (birden çok sekme/cihaz).
func (h *Hub) Register(userID uint, conn IConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[userID] == nil {
		h.conns[userID] = make(map[IConn]*sync.Mutex)
	}
	h.conns[userID][conn] = &sync.Mutex{}
}

// Unregister bağlantıyı kaldırır.
func (h *Hub) Unregister(userID uint, conn IConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.conns[userID]; ok {
		delete(set, conn)
		if len(set) == 0 {
			delete(h.conns, userID)
		}
	}
}

// ConnectionCount kullanıcının açık bağlantı sayısını döndürür.
func (h *Hub) ConnectionCount(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[userID])
}

// Publish olayı alıcının tüm açık bağlantılarına yazar.
// Yazılamayan bağlantı koparılmış sayılır ve listeden düşer.
func (h *Hub) Publish(notification Notification) {
	type target struct {
		conn IConn
		wmu  *sync.Mutex
	}

	h.mu.RLock()
	targets := make([]target, 0, len(h.conns[notification.To]))
	for conn, wmu := range h.conns[notification.To] {
		targets = append(targets, target{conn: conn, wmu: wmu})
	}
	h.mu.RUnlock()

	if len(targets) == 0 {
		return
	}

	for _, t := range targets {
		t.wmu.Lock()
		err := t.conn.WriteJSON(notification)
		t.wmu.Unlock()
		if err != nil {
			configslog.Log.Warn("Bildirim yazılamadı, bağlantı düşürülüyor",
				zap.Uint("to", notification.To), zap.Error(err))
			h.Unregister(notification.To, t.conn)
			_ = t.conn.Close()
		}
	}
}

var _ INotifier = (*Hub)(nil)
