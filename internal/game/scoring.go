package game

const (
	// BlackJackPoints is the best reachable total.
	BlackJackPoints = 21
	// DeathFlagPoints is the total at which a busted player hand is a death flag.
	DeathFlagPoints = 28
	// FiveStarsCards is the hand size that makes a non-busted hand five stars.
	FiveStarsCards = 5
)

// PointStatus classifies a hand.
type PointStatus string

const (
	NotEnoughPoints PointStatus = "NOT_ENOUGH_POINTS"
	OverPoint       PointStatus = "OVER_POINT"
	DeathFlag       PointStatus = "DEATH_FLAG"
	EnoughPoints    PointStatus = "ENOUGH_POINTS"
	FiveStars       PointStatus = "FIVE_STARS"
	BlackJack       PointStatus = "BLACK_JACK"
	DoubleAce       PointStatus = "DOUBLE_ACE"
)

type Valuation struct {
	Status PointStatus `json:"status"`
	Value  int         `json:"value"`
}

var (
	oneAceValues = []int{1, 10, 11}
	twoAceValues = []int{2, 11, 12, 20, 21}
)

// Scorer values hands. The thresholds are the minimum totals a host or a
// player needs for ENOUGH_POINTS.
type Scorer struct {
	HostThreshold   int
	PlayerThreshold int
}

// DefaultScorer uses the standard 15/16 thresholds.
var DefaultScorer = Scorer{HostThreshold: 15, PlayerThreshold: 16}

// Evaluate values a hand with DefaultScorer.
func Evaluate(hand []Card, role Role) Valuation {
	return DefaultScorer.Evaluate(hand, role)
}

func IsDoubleAce(hand []Card) bool {
	return len(hand) == 2 && hand[0].Rank == Ace && hand[1].Rank == Ace
}

func IsBlackJack(hand []Card) bool {
	if len(hand) != 2 {
		return false
	}
	switch {
	case hand[0].Rank == Ace:
		return hand[1].Rank.IsTenValued()
	case hand[1].Rank == Ace:
		return hand[0].Rank.IsTenValued()
	}
	return false
}

func (s Scorer) Evaluate(hand []Card, role Role) Valuation {
	if IsDoubleAce(hand) {
		return Valuation{Status: DoubleAce, Value: BlackJackPoints}
	}
	if IsBlackJack(hand) {
		return Valuation{Status: BlackJack, Value: BlackJackPoints}
	}

	aces, total := 0, 0
	for _, c := range hand {
		switch {
		case c.Rank == Ace:
			aces++
		case c.Rank.IsTenValued():
			total += 10
		case c.Rank >= Two && c.Rank <= Nine:
			total += int(c.Rank)
		}
	}
	total += aceValue(aces, len(hand), total)

	if total > BlackJackPoints {
		if role == RolePlayer && total >= DeathFlagPoints {
			return Valuation{Status: DeathFlag, Value: total}
		}
		return Valuation{Status: OverPoint, Value: total}
	}
	if len(hand) == FiveStarsCards {
		return Valuation{Status: FiveStars, Value: total}
	}
	if total < s.threshold(role) {
		return Valuation{Status: NotEnoughPoints, Value: total}
	}
	return Valuation{Status: EnoughPoints, Value: total}
}

func (s Scorer) threshold(role Role) int {
	if role == RoleHost {
		return s.HostThreshold
	}
	return s.PlayerThreshold
}

// aceValue picks what the aces add. From four cards up every ace is worth 1.
// Otherwise the candidate that lands closest to 21 without passing it wins;
// if none fits the aces add nothing.
func aceValue(aces, handSize, rest int) int {
	if aces == 0 {
		return 0
	}
	if handSize >= 4 {
		return aces
	}
	candidates := twoAceValues
	if aces == 1 {
		candidates = oneAceValues
	}
	best, gap := 0, abs(BlackJackPoints-rest)
	for _, v := range candidates {
		t := rest + v
		if t <= BlackJackPoints && BlackJackPoints-t < gap {
			best, gap = v, BlackJackPoints-t
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
