package room

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xidach/internal/game"
	"xidach/internal/shared"
)

func sampleRoom() *shared.Room {
	win := game.PlayerWin
	return &shared.Room{
		ID: 7,
		Host: shared.Participant{
			Username: "host",
			Role:     game.RoleHost,
			Status:   shared.StatusDraw,
			Cards:    []game.Card{card(game.King, game.Spade), card(game.Five, game.Heart)},
			ConnID:   "c-host",
		},
		Players: []shared.Participant{
			{
				Username:    "open",
				Role:        game.RolePlayer,
				Status:      shared.StatusShowHand,
				Cards:       []game.Card{card(game.Ace, game.Club), card(game.Ten, game.Club)},
				DuelOutcome: &win,
			},
			{
				Username: "closed",
				Role:     game.RolePlayer,
				Status:   shared.StatusStand,
				Cards:    []game.Card{card(game.Two, game.Diamond), card(game.Three, game.Diamond), card(game.Four, game.Diamond)},
			},
		},
		Deck:  game.Deck{card(game.Two, game.Spade), card(game.Queen, game.Heart)},
		Phase: shared.PhaseDuel,
	}
}

func TestRedact(t *testing.T) {
	r := sampleRoom()

	view := Redact(r)

	assert.Equal(t, []game.Card{game.Hidden, game.Hidden}, []game.Card(view.Deck))
	assert.Equal(t, []game.Card{game.Hidden, game.Hidden}, view.Host.Cards)
	assert.Equal(t, r.Players[0].Cards, view.Players[0].Cards)
	assert.Len(t, view.Players[1].Cards, 3)
	for _, c := range view.Players[1].Cards {
		assert.True(t, c.IsHidden())
	}
	assert.Equal(t, "closed", view.Players[1].Username)
	assert.Equal(t, shared.PhaseDuel, view.Phase)
}

func TestRedactDoesNotAlias(t *testing.T) {
	r := sampleRoom()

	view := Redact(r)
	view.Players[0].Cards[0] = game.Hidden
	*view.Players[0].DuelOutcome = game.HostWin
	view.Players = append(view.Players, shared.Participant{Username: "extra"})

	assert.Equal(t, card(game.Ace, game.Club), r.Players[0].Cards[0])
	assert.Equal(t, game.PlayerWin, *r.Players[0].DuelOutcome)
	assert.Len(t, r.Players, 2)
	assert.Equal(t, card(game.Two, game.Spade), r.Deck[0])
}

func TestRedactedJSON(t *testing.T) {
	view := Redact(sampleRoom())

	b, err := json.Marshal(view)
	require.NoError(t, err)

	var decoded struct {
		Deck []struct {
			Value interface{} `json:"value"`
			Kind  interface{} `json:"kind"`
		} `json:"deck"`
		Host struct {
			ConnID interface{} `json:"ConnID"`
		} `json:"host"`
		CurrentTurn int `json:"currentTurn"`
	}
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Len(t, decoded.Deck, 2)
	assert.Nil(t, decoded.Deck[0].Value)
	assert.Nil(t, decoded.Deck[0].Kind)
	assert.Nil(t, decoded.Host.ConnID)
	assert.NotContains(t, string(b), "c-host")
}

func TestSnapshotCopiesCards(t *testing.T) {
	p := shared.Participant{Cards: []game.Card{card(game.Ace, game.Heart)}}

	s := snapshot(p)
	p.Cards[0] = card(game.Two, game.Club)

	assert.Equal(t, card(game.Ace, game.Heart), s.Cards[0])
	assert.Nil(t, s.DuelOutcome)
}
