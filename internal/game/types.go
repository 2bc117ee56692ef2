package game

import (
	"encoding/json"
	"strconv"
)

// Rank is a card rank. The zero value is a concealed rank.
type Rank int

const (
	RankHidden Rank = 0
	Two        Rank = iota + 1
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank in deck enumeration order.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

func (r Rank) String() string {
	switch r {
	case RankHidden:
		return "?"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.Itoa(int(r))
	}
}

// IsTenValued reports whether the rank counts as ten points.
func (r Rank) IsTenValued() bool {
	return r == Ten || r == Jack || r == Queen || r == King
}

// MarshalJSON writes pip ranks as numbers, court ranks and aces as letters,
// and a concealed rank as null.
func (r Rank) MarshalJSON() ([]byte, error) {
	switch {
	case r == RankHidden:
		return []byte("null"), nil
	case r >= Two && r <= Ten:
		return []byte(strconv.Itoa(int(r))), nil
	default:
		return json.Marshal(r.String())
	}
}

// Suit is a card suit. The zero value is a concealed suit.
type Suit int

const (
	SuitHidden Suit = iota
	Spade
	Club
	Diamond
	Heart
)

// Suits lists every suit in deck enumeration order.
var Suits = []Suit{Spade, Club, Diamond, Heart}

func (s Suit) String() string {
	switch s {
	case Spade:
		return "spade"
	case Club:
		return "club"
	case Diamond:
		return "diamond"
	case Heart:
		return "heart"
	default:
		return "?"
	}
}

// Symbol is the single-rune suit glyph used by the console client.
func (s Suit) Symbol() string {
	switch s {
	case Spade:
		return "♠"
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	case Heart:
		return "♥"
	default:
		return "?"
	}
}

func (s Suit) MarshalJSON() ([]byte, error) {
	if s == SuitHidden {
		return []byte("null"), nil
	}
	return json.Marshal(s.String())
}

type Card struct {
	Rank Rank `json:"value"`
	Suit Suit `json:"kind"`
}

// Hidden is the placeholder that stands in for a concealed card.
var Hidden = Card{}

func (c Card) IsHidden() bool {
	return c.Rank == RankHidden && c.Suit == SuitHidden
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// Role distinguishes the dealer from the players; scoring thresholds differ.
type Role string

const (
	RoleHost   Role = "HOST"
	RolePlayer Role = "PLAYER"
)
