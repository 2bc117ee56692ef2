package game

// Outcome is the result of one host-versus-player duel.
type Outcome string

const (
	HostWin   Outcome = "HOST_WIN"
	Tie       Outcome = "DRAW"
	PlayerWin Outcome = "PLAYER_WIN"
)

var statusWeight = map[PointStatus]int{
	DeathFlag:       -1000,
	NotEnoughPoints: -100,
	OverPoint:       -10,
	EnoughPoints:    0,
	BlackJack:       10,
	FiveStars:       100,
	DoubleAce:       1000,
}

// Duel compares the host hand against a player hand with DefaultScorer.
func Duel(hostHand, playerHand []Card) Outcome {
	return DefaultScorer.Duel(hostHand, playerHand)
}

func (s Scorer) Duel(hostHand, playerHand []Card) Outcome {
	return Resolve(s.Evaluate(hostHand, RoleHost), s.Evaluate(playerHand, RolePlayer))
}

// Resolve decides a duel from two valuations. Equal statuses draw, except
// ENOUGH_POINTS which compares totals; different statuses compare weights.
func Resolve(host, player Valuation) Outcome {
	if host.Status == player.Status {
		if host.Status != EnoughPoints || host.Value == player.Value {
			return Tie
		}
		if host.Value > player.Value {
			return HostWin
		}
		return PlayerWin
	}

	hw, pw := statusWeight[host.Status], statusWeight[player.Status]
	switch {
	case hw > pw:
		return HostWin
	case hw < pw:
		return PlayerWin
	default:
		return Tie
	}
}
