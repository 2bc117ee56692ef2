package shared

import (
	"time"

	"xidach/internal/game"
)

type Phase string

const (
	PhaseWaitingPlayer Phase = "WAITING_PLAYER"
	PhasePrepare       Phase = "PREPARE"
	PhaseDivideCards   Phase = "DIVIDE_CARDS"
	PhaseDuel          Phase = "DUEL"
)

// Status is a participant's place in the current deal. The empty status is
// the host's before it is first called to draw.
type Status string

const (
	StatusNone     Status = ""
	StatusWaiting  Status = "WAITING"
	StatusDraw     Status = "DRAW"
	StatusStand    Status = "STAND"
	StatusShowHand Status = "SHOW_HAND"
)

type Participant struct {
	Username    string        `json:"username"`
	Color       string        `json:"color"`
	Role        game.Role     `json:"role"`
	Status      Status        `json:"status"`
	Cards       []game.Card   `json:"cards"`
	DuelOutcome *game.Outcome `json:"duelResult,omitempty"`
	ConnID      string        `json:"-"`
}

type Room struct {
	ID        int           `json:"id"`
	Host      Participant   `json:"host"`
	Players   []Participant `json:"players"`
	Deck      game.Deck     `json:"deck"`
	Phase     Phase         `json:"phase"`
	TurnIdx   int           `json:"currentTurn"`
	Message   string        `json:"message"`
	CreatedAt time.Time     `json:"createdAt"`
}

// PlayerIndex returns the index of the named player, or -1.
func (r *Room) PlayerIndex(username string) int {
	for i := range r.Players {
		if r.Players[i].Username == username {
			return i
		}
	}
	return -1
}

// IsHostTurn reports whether every player has finished drawing.
func (r *Room) IsHostTurn() bool {
	return r.TurnIdx >= len(r.Players)
}

// CardCount is the number of cards held by the deck and all hands together.
func (r *Room) CardCount() int {
	n := len(r.Deck) + len(r.Host.Cards)
	for _, p := range r.Players {
		n += len(p.Cards)
	}
	return n
}

type ResponseStatus string

const (
	ResponseSuccess ResponseStatus = "SUCCESS"
	ResponseError   ResponseStatus = "ERROR"
)

// Response is the envelope every direct reply and broadcast travels in.
type Response struct {
	Status  ResponseStatus `json:"status"`
	Code    int            `json:"code"`
	Data    interface{}    `json:"data,omitempty"`
	Message string         `json:"message,omitempty"`
}

func Success(data interface{}) Response {
	return Response{Status: ResponseSuccess, Code: 200, Data: data}
}

func Failure(code int, message string) Response {
	return Response{Status: ResponseError, Code: code, Message: message}
}
