package room

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"xidach/internal/game"
	"xidach/internal/shared"
)

type Action string

const (
	ActionCreate    Action = "GAME/CREATE"
	ActionJoin      Action = "PLAYER/JOIN"
	ActionNewPlayer Action = "GAME/NEW_PLAYER"
	ActionStart     Action = "GAME/START"
	ActionShuffle   Action = "PLAYER/SHUFFLE_DECK"
	ActionDivide    Action = "GAME/PHASE_DIVIDE_DECK"
	ActionHold      Action = "PLAYER/HOLD"
	ActionDrawCard  Action = "PLAYER/DRAW_CARD"
	ActionShowHand  Action = "PLAYER/SHOW_HAND"
	ActionEndGame   Action = "GAME/END_GAME"
	ActionLeave     Action = "PLAYER/LEAVE"
)

// RoomID accepts a room id sent either as a JSON number or a string.
type RoomID int

func (id *RoomID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*id = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*id = RoomID(n)
	return nil
}

// Request is the payload of every inbound action. Fields an action does not
// use are ignored.
type Request struct {
	RoomID   RoomID    `json:"roomId"`
	Username string    `json:"username"`
	Color    string    `json:"color,omitempty"`
	Role     game.Role `json:"role,omitempty"`
}

type handlerFunc func(m *Manager, r *shared.Room, connID string, req Request) Outbox

var handlers = map[Action]handlerFunc{
	ActionJoin:     (*Manager).join,
	ActionStart:    (*Manager).start,
	ActionShuffle:  (*Manager).shuffleDeck,
	ActionDivide:   (*Manager).divide,
	ActionHold:     (*Manager).hold,
	ActionDrawCard: (*Manager).drawCard,
	ActionShowHand: (*Manager).showHand,
	ActionEndGame:  (*Manager).endGame,
	ActionLeave:    (*Manager).leave,
}

// Known reports whether the action has a handler.
func Known(action Action) bool {
	_, ok := handlers[action]
	return ok || action == ActionCreate
}

// run executes one action and hands its outbox to deliver while the room is
// still locked, so deliveries of one action never interleave with the next.
func (m *Manager) run(connID string, action Action, req Request, deliver func(Outbox)) error {
	if action == ActionCreate {
		if req.Username == "" {
			deliver(Outbox{{Kind: NoticeDirect, ConnID: connID, Action: action, Payload: failure(ErrInvalidAction)}})
			return ErrInvalidAction
		}
		build := func(id int) *shared.Room {
			return newRoom(id, req, connID, m.color(0, req.Color))
		}
		m.store.Create(build, func(r *shared.Room) {
			m.logger(r, action, req).Info("room created")
			deliver(m.created(r, connID))
		})
		return nil
	}

	h, ok := handlers[action]
	if !ok {
		m.log.WithField("action", action).Warn("unknown action")
		deliver(rejection(connID, action, ErrInvalidAction))
		return ErrInvalidAction
	}
	found := m.store.With(int(req.RoomID), func(r *shared.Room) {
		deliver(h(m, r, connID, req))
	})
	if !found {
		m.log.WithFields(logrus.Fields{"room": req.RoomID, "action": action}).Info("room not found")
		deliver(rejection(connID, action, ErrRoomNotFound))
		return ErrRoomNotFound
	}
	return nil
}

func rejection(connID string, action Action, err error) Outbox {
	var out Outbox
	out.direct(connID, action, failure(err))
	return out
}

// Handle runs one action and returns the notices it produced without
// delivering them.
func (m *Manager) Handle(connID string, action Action, req Request) (Outbox, error) {
	var out Outbox
	err := m.run(connID, action, req, func(o Outbox) { out = append(out, o...) })
	return out, err
}

// Rooms returns how many rooms are open.
func (m *Manager) Rooms() int {
	return m.store.Len()
}

// Snapshot returns the redacted view of a room.
func (m *Manager) Snapshot(id int) (shared.Room, bool) {
	var view shared.Room
	ok := m.store.With(id, func(r *shared.Room) { view = Redact(r) })
	return view, ok
}

// Dispatcher connects inbound frames from the transport to the manager and
// delivers the resulting notices through the gateway.
type Dispatcher struct {
	m   *Manager
	gw  Gateway
	log logrus.FieldLogger
}

func NewDispatcher(m *Manager, gw Gateway, log logrus.FieldLogger) *Dispatcher {
	return &Dispatcher{m: m, gw: gw, log: log}
}

// SetGateway swaps the delivery target; the hub and dispatcher reference each
// other so one of them is wired after construction.
func (d *Dispatcher) SetGateway(gw Gateway) {
	d.gw = gw
}

// Dispatch decodes a raw payload and runs the action. Unknown actions are
// rejected before their payload is looked at.
func (d *Dispatcher) Dispatch(connID string, action Action, data json.RawMessage) error {
	if !Known(action) {
		d.log.WithField("action", action).Warn("unknown action")
		rejection(connID, action, ErrInvalidAction).Deliver(d.gw)
		return ErrInvalidAction
	}
	var req Request
	if len(data) > 0 {
		if err := json.Unmarshal(data, &req); err != nil {
			d.log.WithError(err).WithField("action", action).Warn("bad payload")
			rejection(connID, action, ErrInvalidAction).Deliver(d.gw)
			return ErrInvalidAction
		}
	}
	return d.Run(connID, action, req)
}

func (d *Dispatcher) Run(connID string, action Action, req Request) error {
	return d.m.run(connID, action, req, func(o Outbox) { o.Deliver(d.gw) })
}

// Disconnect is called when a connection drops. Room state is left alone.
func (d *Dispatcher) Disconnect(connID string) {
	d.log.WithField("conn", connID).Info("client disconnected")
}
