package room

import (
	"xidach/internal/game"
	"xidach/internal/shared"
)

// Redact returns a copy of the room that is safe to show every member: the
// deck is fully concealed and only SHOW_HAND participants keep their cards.
func Redact(r *shared.Room) shared.Room {
	out := *r
	out.Deck = hiddenCards(len(r.Deck))
	out.Host = redactParticipant(r.Host)
	out.Players = make([]shared.Participant, len(r.Players))
	for i, p := range r.Players {
		out.Players[i] = redactParticipant(p)
	}
	return out
}

func redactParticipant(p shared.Participant) shared.Participant {
	if p.Status == shared.StatusShowHand {
		return snapshot(p)
	}
	out := snapshot(p)
	out.Cards = hiddenCards(len(p.Cards))
	return out
}

func hiddenCards(n int) []game.Card {
	// game.Hidden is the zero Card, so a fresh slice is already concealed.
	return make([]game.Card, n)
}

// snapshot copies a participant so later mutation of the room does not leak
// into already queued notices.
func snapshot(p shared.Participant) shared.Participant {
	out := p
	out.Cards = append(make([]game.Card, 0, len(p.Cards)), p.Cards...)
	if p.DuelOutcome != nil {
		o := *p.DuelOutcome
		out.DuelOutcome = &o
	}
	return out
}
