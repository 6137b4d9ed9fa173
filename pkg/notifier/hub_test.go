package notifier

import (
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wavetags.link/configs/configslog"
)

// Publish, yazma hatasında paket genelindeki logger'ı kullanır;
// testlerde nil kalmaması için burada bir kez başlatılır.
func TestMain(m *testing.M) {
	configslog.InitLogger()
	os.Exit(m.Run())
}

// yaziciConn yazmaları sayar ve aynı anda birden fazla yazar girerse kaydeder.
type yaziciConn struct {
	writing  int32
	overlaps int32
	writes   int32
	failWith error
}

func (c *yaziciConn) WriteJSON(v interface{}) error {
	if atomic.AddInt32(&c.writing, 1) > 1 {
		atomic.AddInt32(&c.overlaps, 1)
	}
	time.Sleep(50 * time.Microsecond)
	atomic.AddInt32(&c.writing, -1)
	atomic.AddInt32(&c.writes, 1)
	return c.failWith
}

func (c *yaziciConn) Close() error { return nil }

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub()
	conn1 := &websocket.Conn{}
	conn2 := &websocket.Conn{}

	assert.Zero(t, hub.ConnectionCount(1))

	hub.Register(1, conn1)
	hub.Register(1, conn2)
	hub.Register(2, conn1)
	assert.Equal(t, 2, hub.ConnectionCount(1))
	assert.Equal(t, 1, hub.ConnectionCount(2))

	hub.Unregister(1, conn1)
	assert.Equal(t, 1, hub.ConnectionCount(1))

	// Aynı bağlantıyı iki kez silmek sorun çıkarmaz.
	hub.Unregister(1, conn1)
	hub.Unregister(1, conn2)
	assert.Zero(t, hub.ConnectionCount(1))
}

func TestHubPublishWithoutConnectionsIsNoop(t *testing.T) {
	hub := NewHub()

	// Alıcı bağlı değil: olay sessizce kaybolur.
	hub.Publish(Notification{
		Title: "You have a new Lead",
		Body:  "You have a new lead received from the user",
		Time:  time.Now().UTC(),
		To:    99,
		Type:  "LeadForm",
	})
	assert.Zero(t, hub.ConnectionCount(99))
}

// Aynı kullanıcıya eşzamanlı Publish çağrıları tek bağlantıya asla
// üst üste yazmamalıdır; websocket tek yazar kabul eder.
func TestHubPublishSerializesWritesPerConnection(t *testing.T) {
	hub := NewHub()
	conn := &yaziciConn{}
	hub.Register(7, conn)

	const (
		goroutines = 32
		perG       = 50
	)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perG; j++ {
				hub.Publish(Notification{
					Title: "One more Link Tap",
					Body:  "One more Link Tap from the user",
					Time:  time.Now().UTC(),
					To:    7,
					Type:  "LinkTap",
				})
			}
		}()
	}
	wg.Wait()

	assert.Zero(t, atomic.LoadInt32(&conn.overlaps))
	assert.Equal(t, int32(goroutines*perG), atomic.LoadInt32(&conn.writes))
	assert.Equal(t, 1, hub.ConnectionCount(7))
}

func TestHubPublishDropsFailingConnection(t *testing.T) {
	hub := NewHub()
	conn := &yaziciConn{failWith: errors.New("bağlantı koptu")}
	hub.Register(5, conn)
	require.Equal(t, 1, hub.ConnectionCount(5))

	hub.Publish(Notification{To: 5, Type: "Download"})
	assert.Zero(t, hub.ConnectionCount(5))
}
