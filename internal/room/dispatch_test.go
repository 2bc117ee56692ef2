package room

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xidach/internal/shared"
)

type sent struct {
	kind   NoticeKind
	roomID int
	connID string
	action string
	data   interface{}
}

type recordingGateway struct {
	mu  sync.Mutex
	log []sent
}

func (g *recordingGateway) add(s sent) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.log = append(g.log, s)
}

func (g *recordingGateway) Broadcast(roomID int, action string, data interface{}) {
	g.add(sent{kind: NoticeBroadcast, roomID: roomID, action: action, data: data})
}

func (g *recordingGateway) Send(connID, action string, data interface{}) {
	g.add(sent{kind: NoticeDirect, connID: connID, action: action, data: data})
}

func (g *recordingGateway) Join(roomID int, connID string) {
	g.add(sent{kind: NoticeJoin, roomID: roomID, connID: connID})
}

func (g *recordingGateway) Leave(roomID int, connID string) {
	g.add(sent{kind: NoticeLeave, roomID: roomID, connID: connID})
}

func (g *recordingGateway) reset() []sent {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := g.log
	g.log = nil
	return out
}

func TestRoomIDDecoding(t *testing.T) {
	tests := []struct {
		in   string
		want RoomID
	}{
		{`{"roomId": 1004}`, 1004},
		{`{"roomId": "1004"}`, 1004},
		{`{"roomId": null}`, 0},
		{`{}`, 0},
	}
	for _, tt := range tests {
		var req Request
		require.NoError(t, json.Unmarshal([]byte(tt.in), &req), tt.in)
		assert.Equal(t, tt.want, req.RoomID, tt.in)
	}

	var req Request
	assert.Error(t, json.Unmarshal([]byte(`{"roomId": "abc"}`), &req))
}

func TestDispatcherDeliversInOrder(t *testing.T) {
	gw := &recordingGateway{}
	d := NewDispatcher(newTestManager(), gw, quietLogger())

	require.NoError(t, d.Dispatch("c-host", ActionCreate, json.RawMessage(`{"username":"host"}`)))
	created := gw.reset()
	require.Len(t, created, 2)
	assert.Equal(t, sent{kind: NoticeJoin, roomID: 1000, connID: "c-host"}, created[0])
	assert.Equal(t, string(ActionCreate), created[1].action)

	require.NoError(t, d.Dispatch("c-bob", ActionJoin, json.RawMessage(`{"roomId":"1000","username":"bob"}`)))
	joined := gw.reset()
	require.Len(t, joined, 3)
	assert.Equal(t, NoticeJoin, joined[0].kind)
	assert.Equal(t, "c-bob", joined[1].connID)
	assert.Equal(t, NoticeBroadcast, joined[2].kind)
	assert.Equal(t, 1000, joined[2].roomID)
	assert.Equal(t, string(ActionNewPlayer), joined[2].action)

	resp := joined[1].data.(shared.Response)
	assert.Equal(t, "bob", resp.Data.(gin.H)["username"])
}

func TestDispatcherRejectsBadPayload(t *testing.T) {
	gw := &recordingGateway{}
	d := NewDispatcher(newTestManager(), gw, quietLogger())

	err := d.Dispatch("c1", ActionJoin, json.RawMessage(`{"roomId":`))

	assert.ErrorIs(t, err, ErrInvalidAction)
	got := gw.reset()
	require.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].connID)
	assert.Equal(t, string(ActionJoin), got[0].action)
	assert.Equal(t, shared.Failure(400, "INVALID_ACTION"), got[0].data)
}

func TestDispatcherRejectsUnknownActionBeforeDecoding(t *testing.T) {
	gw := &recordingGateway{}
	d := NewDispatcher(newTestManager(), gw, quietLogger())

	assert.False(t, Known("GAME/NOPE"))
	assert.True(t, Known(ActionCreate))
	assert.True(t, Known(ActionHold))

	err := d.Dispatch("c1", Action("GAME/NOPE"), json.RawMessage(`{"roomId":`))

	assert.ErrorIs(t, err, ErrInvalidAction)
	got := gw.reset()
	require.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].connID)
	assert.Equal(t, "GAME/NOPE", got[0].action)
	assert.Equal(t, shared.Failure(400, "INVALID_ACTION"), got[0].data)
}

func TestDispatcherUnknownRoom(t *testing.T) {
	gw := &recordingGateway{}
	d := NewDispatcher(newTestManager(), gw, quietLogger())

	err := d.Run("c1", ActionHold, Request{RoomID: 55, Username: "x"})

	assert.ErrorIs(t, err, ErrRoomNotFound)
	got := gw.reset()
	require.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].connID)
	assert.Equal(t, shared.Failure(404, "NOT_FOUND"), got[0].data)
}

func TestDispatcherSetGateway(t *testing.T) {
	first, second := &recordingGateway{}, &recordingGateway{}
	d := NewDispatcher(newTestManager(), first, quietLogger())
	d.SetGateway(second)

	require.NoError(t, d.Run("c1", ActionCreate, Request{Username: "host"}))

	assert.Empty(t, first.reset())
	assert.Len(t, second.reset(), 2)
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		code int
		msg  string
	}{
		{ErrRoomNotFound, 404, "NOT_FOUND"},
		{ErrRoomFull, 400, "FULL_ROOM"},
		{ErrDuplicateUsername, 400, "DUPLICATE_USERNAME"},
		{ErrGameInProgress, 400, "GAME_IN_PROGRESS"},
		{ErrInvalidAction, 400, "INVALID_ACTION"},
		{assert.AnError, 500, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		code, msg := ErrorCode(tt.err)
		assert.Equal(t, tt.code, code)
		assert.Equal(t, tt.msg, msg)
	}
}

// Concurrent actions on one room keep the card count intact.
func TestDispatcherConcurrentActions(t *testing.T) {
	m := newTestManager()
	d := NewDispatcher(m, &recordingGateway{}, quietLogger())
	id := createRoom(t, m, "host")
	join(t, m, id, "p1", "p2")
	act(t, m, id, ActionDivide, "host")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := []string{"p1", "p2", "host"}[i%3]
			_ = d.Run(connOf(user), ActionDrawCard, Request{RoomID: RoomID(id), Username: user})
			_ = d.Run(connOf(user), ActionShuffle, Request{RoomID: RoomID(id), Username: user})
		}(i)
	}
	wg.Wait()

	view, ok := m.Snapshot(id)
	require.True(t, ok)
	assert.Equal(t, 52, view.CardCount())
}
