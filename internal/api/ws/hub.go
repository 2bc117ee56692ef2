package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"xidach/internal/room"
	"xidach/internal/shared"
)

// Envelope is the shape of every frame in both directions.
type Envelope struct {
	Action string      `json:"action"`
	Data   interface{} `json:"data"`
}

type inbound struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

// Hub tracks live connections and the room channels they are enrolled in.
// It implements room.Gateway.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	rooms   map[int]map[string]struct{}

	dispatcher Dispatcher
	upgrader   websocket.Upgrader
	log        logrus.FieldLogger
}

var _ room.Gateway = (*Hub)(nil)

func NewHub(d Dispatcher, allowedOrigin string, log logrus.FieldLogger) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		rooms:      make(map[int]map[string]struct{}),
		dispatcher: d,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(allowedOrigin),
		},
		log: log,
	}
}

func checkOrigin(allowed string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		if allowed == "" || allowed == "*" {
			return true
		}
		origin := r.Header.Get("Origin")
		return origin == "" || origin == allowed
	}
}

func (h *Hub) HandleWS(c *gin.Context) {
	h.ServeWS(c.Writer, c.Request)
}

// ServeWS upgrades the request and starts the client's pumps.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	c := &Client{
		id:   uuid.NewString(),
		hub:  h,
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
	h.mu.Lock()
	h.clients[c.id] = c
	total := len(h.clients)
	h.mu.Unlock()
	h.log.WithFields(logrus.Fields{"conn": c.id, "clients": total}).Info("client connected")

	go c.writePump()
	go c.readPump()
}

// handle routes one inbound frame to the dispatcher.
func (h *Hub) handle(c *Client, raw []byte) {
	var msg inbound
	if err := json.Unmarshal(raw, &msg); err != nil || msg.Action == "" {
		h.log.WithField("conn", c.id).Warn("malformed frame")
		code, text := room.ErrorCode(room.ErrInvalidAction)
		h.Send(c.id, msg.Action, shared.Failure(code, text))
		return
	}
	if err := h.dispatcher.Dispatch(c.id, room.Action(msg.Action), msg.Data); err != nil {
		h.log.WithError(err).WithFields(logrus.Fields{"conn": c.id, "action": msg.Action}).Debug("action failed")
	}
}

// unregister drops the client from every room channel and closes its queue.
func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c.id]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, c.id)
	for id, members := range h.rooms {
		delete(members, c.id)
		if len(members) == 0 {
			delete(h.rooms, id)
		}
	}
	close(c.send)
	total := len(h.clients)
	h.mu.Unlock()

	h.log.WithFields(logrus.Fields{"conn": c.id, "clients": total}).Info("client disconnected")
	h.dispatcher.Disconnect(c.id)
}

func encode(action string, data interface{}) ([]byte, error) {
	return json.Marshal(Envelope{Action: action, Data: data})
}

// enqueue never blocks: a client whose queue is full is reported back so the
// caller can drop it once the hub lock is released.
func enqueue(c *Client, msg []byte) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (h *Hub) Send(connID string, action string, data interface{}) {
	msg, err := encode(action, data)
	if err != nil {
		h.log.WithError(err).WithField("action", action).Error("encode frame")
		return
	}
	h.mu.RLock()
	c, ok := h.clients[connID]
	delivered := ok && enqueue(c, msg)
	h.mu.RUnlock()

	if ok && !delivered {
		h.log.WithField("conn", connID).Warn("send queue full, dropping client")
		h.unregister(c)
	}
}

func (h *Hub) Broadcast(roomID int, action string, data interface{}) {
	msg, err := encode(action, data)
	if err != nil {
		h.log.WithError(err).WithField("action", action).Error("encode frame")
		return
	}
	var slow []*Client
	h.mu.RLock()
	for connID := range h.rooms[roomID] {
		if c, ok := h.clients[connID]; ok && !enqueue(c, msg) {
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.log.WithFields(logrus.Fields{"conn": c.id, "room": roomID}).Warn("send queue full, dropping client")
		h.unregister(c)
	}
}

func (h *Hub) Join(roomID int, connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[connID]; !ok {
		return
	}
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[string]struct{})
	}
	h.rooms[roomID][connID] = struct{}{}
}

func (h *Hub) Leave(roomID int, connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	members, ok := h.rooms[roomID]
	if !ok {
		return
	}
	delete(members, connID)
	if len(members) == 0 {
		delete(h.rooms, roomID)
	}
}

// Clients is the number of open connections.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Members is the number of connections enrolled in a room channel.
func (h *Hub) Members(roomID int) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}
