package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"xidach/internal/config"
	"xidach/internal/game"
	"xidach/internal/room"
	"xidach/internal/shared"
	"xidach/internal/store"
)

const (
	dealerName = "Dealer"
	dealerConn = "local-dealer"
	playerConn = "local-player"

	optDraw = "Draw a card"
	optHold = "Hold"
)

// Plays deals against an automated dealer on the real room engine.
func main() {
	cfg := config.Load()
	log := cfg.NewLogger()
	if os.Getenv("LOG_LEVEL") == "" {
		log.SetLevel(logrus.WarnLevel)
	}

	rm := room.NewManager(store.NewMemoryStore(cfg.FirstRoomID), cfg.Rules, log)
	t := newTable()
	d := room.NewDispatcher(rm, t, log)

	pterm.DefaultHeader.WithFullWidth().Println("Xi Dach")
	name, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Your name").Show()
	name = strings.TrimSpace(name)
	if name == "" || name == dealerName {
		name = "You"
	}

	run := func(action room.Action, conn, user string, role game.Role) {
		req := room.Request{RoomID: room.RoomID(t.roomID), Username: user, Role: role}
		if err := d.Run(conn, action, req); err != nil {
			pterm.Error.Printfln("%s: %v", action, err)
			os.Exit(1)
		}
	}
	dealer := func(action room.Action) { run(action, dealerConn, dealerName, game.RoleHost) }
	player := func(action room.Action) { run(action, playerConn, name, game.RolePlayer) }

	dealer(room.ActionCreate)
	player(room.ActionJoin)
	pterm.Info.Printfln("Room %d is ready, %s vs %s", t.roomID, name, dealerName)

	scorer := rm.Scorer()
	for {
		dealer(room.ActionStart)
		dealer(room.ActionShuffle)
		dealer(room.ActionDivide)

		for t.status(name) == shared.StatusDraw {
			me := t.seat(playerConn)
			printHand(scorer, me)
			choice, _ := pterm.DefaultInteractiveSelect.
				WithDefaultText("Your move").
				WithOptions([]string{optDraw, optHold}).
				Show()
			if choice == optHold {
				player(room.ActionHold)
				continue
			}
			player(room.ActionDrawCard)
		}
		printHand(scorer, t.seat(playerConn))

		spinner, _ := pterm.DefaultSpinner.Start(dealerName + " is drawing...")
		for {
			if t.status(dealerName) != shared.StatusDraw || !scorer.HostShouldDraw(t.seat(dealerConn).Cards) {
				break
			}
			dealer(room.ActionDrawCard)
		}
		spinner.Success(dealerName + " stands")

		dealer(room.ActionShowHand)
		printShowdown(scorer, t.view, t.seat(playerConn))

		again, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Deal again?").Show()
		if !again {
			break
		}
		dealer(room.ActionEndGame)
	}
}

func cards(hand []game.Card) string {
	parts := make([]string, len(hand))
	for i, c := range hand {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func printHand(s game.Scorer, p shared.Participant) {
	v := s.Evaluate(p.Cards, p.Role)
	pterm.DefaultBox.WithTitle(pterm.LightCyan(p.Username)).Printfln("%s\n%s (%d)", cards(p.Cards), v.Status, v.Value)
}

func printShowdown(s game.Scorer, view shared.Room, me shared.Participant) {
	rows := [][]string{{"Seat", "Cards", "Points", "Status"}}
	for _, p := range append([]shared.Participant{view.Host}, view.Players...) {
		v := s.Evaluate(p.Cards, p.Role)
		rows = append(rows, []string{p.Username, cards(p.Cards), fmt.Sprint(v.Value), string(v.Status)})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()

	if me.DuelOutcome == nil {
		pterm.Warning.Println("No result")
		return
	}
	switch *me.DuelOutcome {
	case game.PlayerWin:
		pterm.Success.Println("You win!")
	case game.HostWin:
		pterm.Error.Printfln("%s wins.", dealerName)
	default:
		pterm.Info.Println("Draw.")
	}
}
