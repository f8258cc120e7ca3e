// Package status broadcasts model-load progress to websocket subscribers.
package status

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mogaika/gltf_browser/logger"
)

const (
	INFO = iota
	ERROR
	PROGRESS
)

type event struct {
	Message  string
	Time     time.Time
	Type     int
	Progress float32
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

type broadcaster struct {
	sync.Mutex
	clients   map[*client]struct{}
	lastEvent []byte
}

var global = &broadcaster{clients: make(map[*client]struct{})}

func (b *broadcaster) register(c *client) {
	b.Lock()
	defer b.Unlock()
	b.clients[c] = struct{}{}
	if b.lastEvent != nil {
		c.send <- b.lastEvent
	}
}

func (b *broadcaster) unregister(c *client) {
	b.Lock()
	defer b.Unlock()
	if _, ok := b.clients[c]; ok {
		delete(b.clients, c)
		close(c.send)
	}
}

func (b *broadcaster) publish(e *event) {
	data, err := json.Marshal(e)
	if err != nil {
		logger.Sugar.Errorf("[status] failed to marshal event: %v", err)
		return
	}

	b.Lock()
	defer b.Unlock()
	b.lastEvent = data
	for c := range b.clients {
		select {
		case c.send <- data:
		default:
			// slow consumer, drop the event for it
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(time.Second * 30)
	defer func() {
		ticker.Stop()
		global.unregister(c)
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(40 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				logger.Sugar.Debugf("[status] ws write msg error: %v", err)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(40 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Sugar.Debugf("[status] ws write ping error: %v", err)
				return
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Handler upgrades the request and subscribes the peer to status events.
func Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Sugar.Errorf("[status] ws upgrade error: %v", err)
		return
	}
	c := &client{conn: conn, send: make(chan []byte, 32)}
	global.register(c)
	go c.writePump()
}

func publish(msg string, _type int, progress float32) {
	if math.IsNaN(float64(progress)) || math.IsInf(float64(progress), 0) {
		progress = 0
	}
	global.publish(&event{
		Message:  msg,
		Time:     time.Now(),
		Type:     _type,
		Progress: progress,
	})
}

func Info(format string, a ...interface{}) {
	publish(fmt.Sprintf(format, a...), INFO, 0.0)
}

func Error(format string, a ...interface{}) {
	publish(fmt.Sprintf(format, a...), ERROR, 0.0)
}

func Progress(progress float32, format string, a ...interface{}) {
	publish(fmt.Sprintf(format, a...), PROGRESS, progress)
}
