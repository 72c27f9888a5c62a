// internal/httpserver/ws.go
//
// WebSocket endpoint for a live game view: GET /game/{id}/ws.
//   - Inbound frames {"key":"a"} / {"key":"Enter"} go through the input adapter.
//   - Every state change of the game is pushed as {"type":"state","view":...}.
//   - Each key press is answered with {"type":"key","result":...}.
//
// The state subscription is taken when the socket opens and released when the
// read loop ends, however the connection goes away.

package httpserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/input"
)

const (
	wsPingEvery = 25 * time.Second
	wsMaxFrame  = 512
)

// Envelope is one outbound WebSocket message.
type Envelope struct {
	Type   string        `json:"type"` // state | key | error
	View   *game.View    `json:"view,omitempty"`
	Result *input.Result `json:"result,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// KeyFrame is one inbound key press.
type KeyFrame struct {
	Key string `json:"key"`
}

type wsClient struct {
	conn *websocket.Conn
	send chan Envelope
	done chan struct{}

	closeOnce sync.Once
}

func (c *wsClient) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

// push queues env without blocking. When the buffer is full the oldest
// queued message is dropped, so a slow reader still ends on the latest state.
func (c *wsClient) push(env Envelope) {
	for {
		select {
		case <-c.done:
			return
		case c.send <- env:
			return
		default:
			select {
			case <-c.send:
			default:
			}
		}
	}
}

func (s *Server) upgrader() *websocket.Upgrader {
	origin := s.deps.ClientOrigin
	return &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			o := r.Header.Get("Origin")
			return o == "" || o == origin
		},
	}
}

// handleWS streams key presses in and game views out.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	g := gameFrom(r)
	conn, err := s.upgrader().Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Str("gameId", g.ID).Msg("ws upgrade")
		return
	}
	c := &wsClient{
		conn: conn,
		send: make(chan Envelope, s.deps.WSSendBuffer),
		done: make(chan struct{}),
	}
	defer c.Close()

	unsubscribe := g.Subscribe(func(v game.View) {
		c.push(Envelope{Type: "state", View: &v})
	})
	defer unsubscribe()

	log.Debug().Str("gameId", g.ID).Msg("ws attached")
	defer log.Debug().Str("gameId", g.ID).Msg("ws detached")

	go c.writeLoop()

	v := g.View()
	c.push(Envelope{Type: "state", View: &v})

	c.conn.SetReadLimit(wsMaxFrame)
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var f KeyFrame
		if err := json.Unmarshal(data, &f); err != nil {
			c.push(Envelope{Type: "error", Error: "bad_json"})
			continue
		}
		res, _ := g.Key(f.Key)
		c.push(Envelope{Type: "key", Result: &res})
	}
}

// writeLoop is the only writer on the connection.
func (c *wsClient) writeLoop() {
	ticker := time.NewTicker(wsPingEvery)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case env := <-c.send:
			if err := c.conn.WriteJSON(env); err != nil {
				c.Close()
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.Close()
				return
			}
		}
	}
}
