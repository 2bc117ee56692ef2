package room

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"xidach/internal/config"
	"xidach/internal/game"
	"xidach/internal/shared"
)

const (
	msgWaitingPlayers = "Waiting for other players..."
	msgPreparing      = "Getting ready"
	msgDealing        = "Dealing cards"
	msgDealt          = "Cards dealt!"
	msgRevealed       = "Hands revealed"
)

// Store is the room registry the manager works against.
type Store interface {
	Create(build func(id int) *shared.Room, fn func(r *shared.Room)) *shared.Room
	With(id int, fn func(r *shared.Room)) bool
	Len() int
}

// Manager is the room state machine. Every action runs under the room's lock
// and returns the notices it wants delivered.
type Manager struct {
	store  Store
	rules  config.Rules
	scorer game.Scorer
	log    logrus.FieldLogger

	rngMu sync.Mutex
	rng   *rand.Rand
}

type Option func(*Manager)

// WithRand fixes the shuffle source.
func WithRand(rng *rand.Rand) Option {
	return func(m *Manager) { m.rng = rng }
}

func NewManager(s Store, rules config.Rules, log logrus.FieldLogger, opts ...Option) *Manager {
	m := &Manager{
		store: s,
		rules: rules,
		scorer: game.Scorer{
			HostThreshold:   rules.HostThreshold,
			PlayerThreshold: rules.PlayerThreshold,
		},
		log: log,
		rng: game.NewRand(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) Scorer() game.Scorer { return m.scorer }

func (m *Manager) shuffle(deck game.Deck) game.Deck {
	m.rngMu.Lock()
	defer m.rngMu.Unlock()
	return game.Shuffle(deck, m.rng, m.rules.ShufflePasses)
}

func (m *Manager) color(n int, hint string) string {
	if hint != "" {
		return hint
	}
	colors := config.DefaultPlayerColors
	return colors[n%len(colors)]
}

func (m *Manager) logger(r *shared.Room, action Action, req Request) logrus.FieldLogger {
	return m.log.WithFields(logrus.Fields{
		"room":   r.ID,
		"action": action,
		"user":   req.Username,
	})
}

// skip logs an action that was ignored and produces nothing.
func (m *Manager) skip(r *shared.Room, action Action, req Request, reason string) Outbox {
	m.logger(r, action, req).WithField("phase", r.Phase).Debugf("ignored: %s", reason)
	return nil
}

func roomData(r *shared.Room) gin.H {
	return gin.H{"room": Redact(r)}
}

func playerData(p shared.Participant) gin.H {
	return gin.H{"thisPlayer": snapshot(p)}
}

func newRoom(id int, req Request, connID, color string) *shared.Room {
	return &shared.Room{
		ID: id,
		Host: shared.Participant{
			Username: req.Username,
			Color:    color,
			Role:     game.RoleHost,
			Status:   shared.StatusNone,
			Cards:    []game.Card{},
			ConnID:   connID,
		},
		Players:   []shared.Participant{},
		Deck:      game.GenerateDeck(),
		Phase:     shared.PhaseWaitingPlayer,
		TurnIdx:   0,
		Message:   msgWaitingPlayers,
		CreatedAt: time.Now(),
	}
}

func (m *Manager) created(r *shared.Room, connID string) Outbox {
	var out Outbox
	out.join(r.ID, connID)
	out.direct(connID, ActionCreate, shared.Success(gin.H{
		"idRoom":     r.ID,
		"room":       Redact(r),
		"thisPlayer": snapshot(r.Host),
	}))
	return out
}

func (m *Manager) join(r *shared.Room, connID string, req Request) Outbox {
	var out Outbox
	var err error
	switch {
	case req.Username == "":
		err = ErrInvalidAction
	case len(r.Players) >= m.rules.MaxPlayers:
		err = ErrRoomFull
	case r.Phase != shared.PhaseWaitingPlayer && r.Phase != shared.PhasePrepare:
		err = ErrGameInProgress
	case r.Host.Username == req.Username || r.PlayerIndex(req.Username) >= 0:
		err = ErrDuplicateUsername
	}
	if err != nil {
		m.logger(r, ActionJoin, req).WithError(err).Info("join rejected")
		out.direct(connID, ActionJoin, failure(err))
		return out
	}

	p := shared.Participant{
		Username: req.Username,
		Color:    m.color(len(r.Players)+1, ""),
		Role:     game.RolePlayer,
		Status:   shared.StatusWaiting,
		Cards:    []game.Card{},
		ConnID:   connID,
	}
	r.Players = append(r.Players, p)

	out.join(r.ID, connID)
	out.direct(connID, ActionJoin, shared.Success(gin.H{
		"idRoom":     r.ID,
		"username":   p.Username,
		"room":       Redact(r),
		"thisPlayer": snapshot(p),
	}))
	out.broadcast(r.ID, ActionNewPlayer, shared.Success(roomData(r)))
	m.logger(r, ActionJoin, req).WithField("players", len(r.Players)).Info("player joined")
	return out
}

func (m *Manager) start(r *shared.Room, _ string, req Request) Outbox {
	if r.Phase != shared.PhaseWaitingPlayer && r.Phase != shared.PhasePrepare {
		return m.skip(r, ActionStart, req, "deal already running")
	}
	r.Phase = shared.PhasePrepare
	r.Message = msgPreparing

	var out Outbox
	out.broadcast(r.ID, ActionStart, shared.Success(roomData(r)))
	m.logger(r, ActionStart, req).Info("room started")
	return out
}

func (m *Manager) shuffleDeck(r *shared.Room, _ string, req Request) Outbox {
	r.Deck = m.shuffle(r.Deck)
	r.Message = fmt.Sprintf("%s shuffled the deck.", req.Username)

	var out Outbox
	out.broadcast(r.ID, ActionShuffle, shared.Success(roomData(r)))
	m.logger(r, ActionShuffle, req).Info("deck shuffled")
	return out
}

func (m *Manager) divide(r *shared.Room, _ string, req Request) Outbox {
	if r.Phase != shared.PhasePrepare && r.Phase != shared.PhaseWaitingPlayer {
		return m.skip(r, ActionDivide, req, "cards already dealt")
	}
	r.Phase = shared.PhaseDivideCards
	r.Message = msgDealing

	var out Outbox
	for round := 0; round < m.rules.DealRounds; round++ {
		for i := range r.Players {
			p := &r.Players[i]
			if !m.dealTo(r, p) {
				break
			}
			out.direct(p.ConnID, ActionDrawCard, shared.Success(playerData(*p)))
		}
		if m.dealTo(r, &r.Host) {
			out.direct(r.Host.ConnID, ActionDrawCard, shared.Success(playerData(r.Host)))
		}
	}

	r.Message = msgDealt
	r.Phase = shared.PhaseDuel
	r.TurnIdx = 0
	if len(r.Players) > 0 {
		r.Players[0].Status = shared.StatusDraw
	} else {
		r.Host.Status = shared.StatusDraw
	}
	out.broadcast(r.ID, ActionStart, shared.Success(roomData(r)))
	m.logger(r, ActionDivide, req).WithField("deck", len(r.Deck)).Info("cards dealt")
	return out
}

func (m *Manager) dealTo(r *shared.Room, p *shared.Participant) bool {
	rest, card, ok := game.Draw(r.Deck, game.Top, nil)
	if !ok {
		return false
	}
	r.Deck = rest
	p.Cards = append(p.Cards, card)
	return true
}

// advanceTurn moves the turn to the next player, or to the host once every
// player has finished. The host is told directly when its turn comes; a host
// that already holds a full hand stays on STAND.
func (m *Manager) advanceTurn(r *shared.Room, out *Outbox, action Action) {
	r.TurnIdx++
	if r.TurnIdx < len(r.Players) {
		r.Players[r.TurnIdx].Status = shared.StatusDraw
		return
	}
	r.TurnIdx = len(r.Players)
	if len(r.Host.Cards) < m.rules.MaxHandSize {
		r.Host.Status = shared.StatusDraw
	} else {
		r.Host.Status = shared.StatusStand
	}
	out.direct(r.Host.ConnID, action, shared.Success(playerData(r.Host)))
}

func (m *Manager) hold(r *shared.Room, _ string, req Request) Outbox {
	if r.Phase != shared.PhaseDuel {
		return m.skip(r, ActionHold, req, "not in duel phase")
	}
	idx := r.PlayerIndex(req.Username)
	if idx < 0 {
		return m.skip(r, ActionHold, req, "unknown player")
	}
	if r.IsHostTurn() {
		return m.skip(r, ActionHold, req, "players are done")
	}

	var out Outbox
	r.Players[r.TurnIdx].Status = shared.StatusStand
	r.Message = fmt.Sprintf("%s is done drawing", req.Username)
	m.advanceTurn(r, &out, ActionHold)

	out.direct(r.Players[idx].ConnID, ActionHold, shared.Success(playerData(r.Players[idx])))
	out.broadcast(r.ID, ActionStart, shared.Success(roomData(r)))
	m.logger(r, ActionHold, req).WithField("turn", r.TurnIdx).Info("player holds")
	return out
}

func (m *Manager) drawCard(r *shared.Room, _ string, req Request) Outbox {
	if r.Phase != shared.PhaseDuel {
		return m.skip(r, ActionDrawCard, req, "not in duel phase")
	}
	if idx := r.PlayerIndex(req.Username); idx >= 0 {
		return m.playerDraw(r, idx, req)
	}
	if req.Username != "" && req.Username == r.Host.Username {
		return m.hostDraw(r, req)
	}
	return m.skip(r, ActionDrawCard, req, "unknown participant")
}

func (m *Manager) playerDraw(r *shared.Room, idx int, req Request) Outbox {
	p := &r.Players[idx]
	if idx != r.TurnIdx || p.Status != shared.StatusDraw {
		return m.skip(r, ActionDrawCard, req, "not this player's turn")
	}
	if len(p.Cards) >= m.rules.MaxHandSize {
		return m.skip(r, ActionDrawCard, req, "hand is full")
	}
	rest, card, ok := game.Draw(r.Deck, game.Bottom, nil)
	if !ok {
		return m.skip(r, ActionDrawCard, req, "deck is empty")
	}
	r.Deck = rest
	p.Cards = append(p.Cards, card)

	var out Outbox
	full := len(p.Cards) >= m.rules.MaxHandSize
	if full {
		p.Status = shared.StatusStand
		r.Message = fmt.Sprintf("%s is done drawing", req.Username)
	}
	out.direct(p.ConnID, ActionDrawCard, shared.Success(playerData(*p)))
	if full {
		m.advanceTurn(r, &out, ActionDrawCard)
	}
	out.broadcast(r.ID, ActionStart, shared.Success(roomData(r)))
	m.logger(r, ActionDrawCard, req).WithField("cards", len(r.Players[idx].Cards)).Info("player drew")
	return out
}

func (m *Manager) hostDraw(r *shared.Room, req Request) Outbox {
	h := &r.Host
	if h.Status == shared.StatusShowHand {
		return m.skip(r, ActionDrawCard, req, "hands already revealed")
	}
	if len(h.Cards) >= m.rules.MaxHandSize {
		return m.skip(r, ActionDrawCard, req, "hand is full")
	}
	rest, card, ok := game.Draw(r.Deck, game.Bottom, nil)
	if !ok {
		return m.skip(r, ActionDrawCard, req, "deck is empty")
	}
	r.Deck = rest
	h.Cards = append(h.Cards, card)
	if len(h.Cards) >= m.rules.MaxHandSize {
		h.Status = shared.StatusStand
		r.Message = fmt.Sprintf("%s is done drawing", req.Username)
	}

	var out Outbox
	out.direct(h.ConnID, ActionDrawCard, shared.Success(playerData(*h)))
	out.broadcast(r.ID, ActionStart, shared.Success(roomData(r)))
	m.logger(r, ActionDrawCard, req).WithField("cards", len(h.Cards)).Info("host drew")
	return out
}

func (m *Manager) settle(p *shared.Participant, host []game.Card) {
	o := m.scorer.Duel(host, p.Cards)
	p.DuelOutcome = &o
	p.Status = shared.StatusShowHand
}

func (m *Manager) showHand(r *shared.Room, _ string, req Request) Outbox {
	if r.Phase != shared.PhaseDuel {
		return m.skip(r, ActionShowHand, req, "not in duel phase")
	}

	var out Outbox
	if req.Role == game.RoleHost {
		if req.Username != r.Host.Username {
			return m.skip(r, ActionShowHand, req, "caller is not the host")
		}
		if !r.IsHostTurn() {
			return m.skip(r, ActionShowHand, req, "players are still drawing")
		}
		for i := range r.Players {
			p := &r.Players[i]
			m.settle(p, r.Host.Cards)
			out.direct(p.ConnID, ActionShowHand, shared.Success(playerData(*p)))
		}
		r.Host.Status = shared.StatusShowHand
		r.Message = msgRevealed
		out.broadcast(r.ID, ActionShowHand, shared.Success(roomData(r)))
		m.logger(r, ActionShowHand, req).Info("host revealed all hands")
		return out
	}

	idx := r.PlayerIndex(req.Username)
	if idx < 0 {
		return m.skip(r, ActionShowHand, req, "unknown player")
	}
	p := &r.Players[idx]
	if p.Status != shared.StatusStand {
		return m.skip(r, ActionShowHand, req, "player is not standing")
	}
	m.settle(p, r.Host.Cards)
	out.direct(p.ConnID, ActionShowHand, shared.Success(playerData(*p)))
	out.broadcast(r.ID, ActionShowHand, shared.Success(roomData(r)))
	m.logger(r, ActionShowHand, req).WithField("outcome", *p.DuelOutcome).Info("player revealed")
	return out
}

// reset prepares the room for a fresh deal with the same participants.
func reset(r *shared.Room) {
	r.Message = msgPreparing
	r.TurnIdx = 0
	r.Deck = game.GenerateDeck()
	r.Phase = shared.PhaseWaitingPlayer
	r.Host.Cards = []game.Card{}
	r.Host.DuelOutcome = nil
	r.Host.Status = shared.StatusNone
	for i := range r.Players {
		r.Players[i].Cards = []game.Card{}
		r.Players[i].DuelOutcome = nil
		r.Players[i].Status = shared.StatusWaiting
	}
}

func (m *Manager) endGame(r *shared.Room, _ string, req Request) Outbox {
	reset(r)

	var out Outbox
	for _, p := range r.Players {
		out.direct(p.ConnID, ActionStart, shared.Success(playerData(p)))
	}
	out.broadcast(r.ID, ActionStart, shared.Success(roomData(r)))
	m.logger(r, ActionEndGame, req).Info("new deal")
	return out
}

func (m *Manager) leave(r *shared.Room, connID string, req Request) Outbox {
	var out Outbox
	if req.Role != game.RolePlayer {
		out.leave(r.ID, connID)
		m.logger(r, ActionLeave, req).Info("host left the room channel")
		return out
	}

	// A seat is only given up by the connection that holds it.
	idx := r.PlayerIndex(req.Username)
	if idx < 0 || r.Players[idx].ConnID != connID {
		return m.skip(r, ActionLeave, req, "seat not held by this connection")
	}
	out.leave(r.ID, connID)
	switch r.Phase {
	case shared.PhaseWaitingPlayer, shared.PhasePrepare:
		r.Players = append(r.Players[:idx], r.Players[idx+1:]...)
		r.Message = fmt.Sprintf("%s left the room", req.Username)
		out.broadcast(r.ID, ActionStart, shared.Success(roomData(r)))
	default:
		// Mid-deal the seat stays so its cards remain accounted for.
		if idx == r.TurnIdx && r.Players[idx].Status == shared.StatusDraw {
			r.Players[idx].Status = shared.StatusStand
			r.Message = fmt.Sprintf("%s left the room", req.Username)
			m.advanceTurn(r, &out, ActionHold)
			out.broadcast(r.ID, ActionStart, shared.Success(roomData(r)))
		}
	}
	m.logger(r, ActionLeave, req).Info("player left")
	return out
}
