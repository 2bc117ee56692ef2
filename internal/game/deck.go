package game

import (
	"math/rand"
	"time"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// Deck is the ordered pile of undealt cards. The top is the last element,
// the bottom is the first.
type Deck []Card

// NewRand returns a time-seeded source for shuffling and random draws.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// GenerateDeck returns the 52 cards rank-major, suit-minor. It is not shuffled.
func GenerateDeck() Deck {
	deck := make(Deck, 0, DeckSize)
	for _, r := range Ranks {
		for _, s := range Suits {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// Shuffle mixes the deck in place. Each pass swaps every index with an index
// drawn from the whole deck; this is not an unbiased Fisher-Yates shuffle.
func Shuffle(deck Deck, rng *rand.Rand, passes int) Deck {
	if rng == nil {
		rng = NewRand()
	}
	if passes < 1 {
		passes = 1
	}
	for p := 0; p < passes; p++ {
		for i := range deck {
			j := rng.Intn(len(deck))
			deck[i], deck[j] = deck[j], deck[i]
		}
	}
	return deck
}

type positionKind int

const (
	posTop positionKind = iota
	posBottom
	posRandom
	posIndex
)

// Position selects which card Draw removes.
type Position struct {
	kind  positionKind
	index int
}

var (
	Top    = Position{kind: posTop}
	Bottom = Position{kind: posBottom}
	Random = Position{kind: posRandom}
)

// At selects the card at index i.
func At(i int) Position {
	return Position{kind: posIndex, index: i}
}

// Draw removes one card from the deck and returns the shortened deck and the
// card. ok is false when the deck is empty or the index is out of range.
// A Random draw returns the randomly chosen card.
func Draw(deck Deck, pos Position, rng *rand.Rand) (rest Deck, card Card, ok bool) {
	if len(deck) == 0 {
		return deck, Card{}, false
	}
	switch pos.kind {
	case posTop:
		last := len(deck) - 1
		return deck[:last], deck[last], true
	case posBottom:
		return deck[1:], deck[0], true
	case posRandom:
		if rng == nil {
			rng = NewRand()
		}
		return removeAt(deck, rng.Intn(len(deck)))
	default:
		if pos.index < 0 || pos.index >= len(deck) {
			return deck, Card{}, false
		}
		return removeAt(deck, pos.index)
	}
}

func removeAt(deck Deck, i int) (Deck, Card, bool) {
	card := deck[i]
	return append(deck[:i], deck[i+1:]...), card, true
}
