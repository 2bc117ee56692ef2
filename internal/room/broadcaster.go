package room

import "xidach/internal/shared"

// Broadcaster delivers a message to every connection enrolled in a room.
type Broadcaster interface {
	Broadcast(roomID int, action string, data interface{})
}

// Gateway is everything the state machine needs from the realtime transport.
type Gateway interface {
	Broadcaster
	Send(connID string, action string, data interface{})
	Join(roomID int, connID string)
	Leave(roomID int, connID string)
}

type NoticeKind int

const (
	NoticeDirect NoticeKind = iota
	NoticeBroadcast
	NoticeJoin
	NoticeLeave
)

// Notice is one delivery an action produced. Payloads are snapshots taken at
// the moment the notice was queued.
type Notice struct {
	Kind    NoticeKind
	RoomID  int
	ConnID  string
	Action  Action
	Payload shared.Response
}

// Outbox is the ordered list of deliveries produced by one action.
type Outbox []Notice

func (o *Outbox) direct(connID string, action Action, resp shared.Response) {
	if connID == "" {
		return
	}
	*o = append(*o, Notice{Kind: NoticeDirect, ConnID: connID, Action: action, Payload: resp})
}

func (o *Outbox) broadcast(roomID int, action Action, resp shared.Response) {
	*o = append(*o, Notice{Kind: NoticeBroadcast, RoomID: roomID, Action: action, Payload: resp})
}

func (o *Outbox) join(roomID int, connID string) {
	*o = append(*o, Notice{Kind: NoticeJoin, RoomID: roomID, ConnID: connID})
}

func (o *Outbox) leave(roomID int, connID string) {
	*o = append(*o, Notice{Kind: NoticeLeave, RoomID: roomID, ConnID: connID})
}

// Deliver hands every notice to the gateway in order.
func (o Outbox) Deliver(g Gateway) {
	for _, n := range o {
		switch n.Kind {
		case NoticeDirect:
			g.Send(n.ConnID, string(n.Action), n.Payload)
		case NoticeBroadcast:
			g.Broadcast(n.RoomID, string(n.Action), n.Payload)
		case NoticeJoin:
			g.Join(n.RoomID, n.ConnID)
		case NoticeLeave:
			g.Leave(n.RoomID, n.ConnID)
		}
	}
}
