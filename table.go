package main

import (
	"github.com/gin-gonic/gin"

	"xidach/internal/shared"
)

// table is an in-process gateway that keeps the last state each local seat
// was told about.
type table struct {
	roomID int
	seats  map[string]shared.Participant
	view   shared.Room
}

func newTable() *table {
	return &table{seats: make(map[string]shared.Participant)}
}

func (t *table) seat(connID string) shared.Participant {
	return t.seats[connID]
}

// status reads a participant's status from the last broadcast room view.
func (t *table) status(username string) shared.Status {
	if t.view.Host.Username == username {
		return t.view.Host.Status
	}
	if i := t.view.PlayerIndex(username); i >= 0 {
		return t.view.Players[i].Status
	}
	return shared.StatusNone
}

func payload(data interface{}) gin.H {
	resp, ok := data.(shared.Response)
	if !ok || resp.Status != shared.ResponseSuccess {
		return nil
	}
	h, _ := resp.Data.(gin.H)
	return h
}

func (t *table) Send(connID string, _ string, data interface{}) {
	h := payload(data)
	if id, ok := h["idRoom"].(int); ok {
		t.roomID = id
	}
	if p, ok := h["thisPlayer"].(shared.Participant); ok {
		t.seats[connID] = p
	}
}

func (t *table) Broadcast(_ int, _ string, data interface{}) {
	if r, ok := payload(data)["room"].(shared.Room); ok {
		t.view = r
	}
}

// Join is a no-op; local seats see every notice.
func (t *table) Join(int, string) {
}

func (t *table) Leave(int, string) {
}
