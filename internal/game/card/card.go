package card

import (
	"fmt"
	"strings"
)

// Suit is one of the four printed suits of the piquet deck.
type Suit int

// Rank is the printed rank, 7 through Ace.
type Rank int

const (
	Clubs Suit = iota
	Spades
	Hearts
	Diamonds
)

const (
	Rank7 Rank = iota + 7
	Rank8
	Rank9
	Rank10
	RankJ
	RankQ
	RankK
	RankA
)

// suitSymbols maps suits to their display symbols.
var suitSymbols = map[Suit]string{
	Clubs:    "♣",
	Spades:   "♠",
	Hearts:   "♥",
	Diamonds: "♦",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return "?"
}

// FailSuits are the three suits that exist as fail; Diamonds is entirely trump.
var FailSuits = []Suit{Clubs, Spades, Hearts}

// rankNames maps ranks to their display strings.
var rankNames = map[Rank]string{
	Rank7:  "7",
	Rank8:  "8",
	Rank9:  "9",
	Rank10: "10",
	RankJ:  "J",
	RankQ:  "Q",
	RankK:  "K",
	RankA:  "A",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return "?"
}

// Card is an immutable (suit, rank) value. A deck holds exactly one of each
// of the 32 combinations.
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// IsTrump reports whether the card belongs to the 14-card trump group:
// every Queen, every Jack, and the plain Diamonds.
func (c Card) IsTrump() bool {
	return c.Rank == RankQ || c.Rank == RankJ || c.Suit == Diamonds
}

// Points returns the card's point value. The full deck sums to 120.
func (c Card) Points() int {
	switch c.Rank {
	case RankA:
		return 11
	case Rank10:
		return 10
	case RankK:
		return 4
	case RankQ:
		return 3
	case RankJ:
		return 2
	default:
		return 0
	}
}

// trumpSuitOrder ranks suits within the Queen and Jack groups, Clubs highest.
var trumpSuitOrder = map[Suit]int{
	Clubs:    3,
	Spades:   2,
	Hearts:   1,
	Diamonds: 0,
}

// TrumpPower returns the card's ordinal within the trump ordering, 14 for Q♣
// down to 1 for 7♦, and 0 for fail cards. Distinct trump never share a value.
func (c Card) TrumpPower() int {
	switch {
	case c.Rank == RankQ:
		return 11 + trumpSuitOrder[c.Suit]
	case c.Rank == RankJ:
		return 7 + trumpSuitOrder[c.Suit]
	case c.Suit == Diamonds:
		return failOrdinal(c.Rank)
	default:
		return 0
	}
}

// failOrdinal orders plain ranks A > 10 > K > 9 > 8 > 7. It doubles as the
// ordering of the six non-court Diamonds within trump.
func failOrdinal(r Rank) int {
	switch r {
	case RankA:
		return 6
	case Rank10:
		return 5
	case RankK:
		return 4
	case Rank9:
		return 3
	case Rank8:
		return 2
	default: // Rank7
		return 1
	}
}

// FailPower returns the card's ordinal within its fail suit (A > 10 > K > 9 >
// 8 > 7), and 0 for trump.
func (c Card) FailPower() int {
	if c.IsTrump() {
		return 0
	}
	return failOrdinal(c.Rank)
}

// Deck is an ordered collection of cards.
type Deck []Card

// New returns the 32-card deck in canonical order.
func New() Deck {
	deck := make(Deck, 0, 32)
	for s := Clubs; s <= Diamonds; s++ {
		for r := Rank7; r <= RankA; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// charToSuit is used when parsing text card notation.
var charToSuit = map[byte]Suit{
	'C': Clubs,
	'S': Spades,
	'H': Hearts,
	'D': Diamonds,
}

// charToRank is used when parsing text card notation.
var charToRank = map[string]Rank{
	"7":  Rank7,
	"8":  Rank8,
	"9":  Rank9,
	"10": Rank10,
	"T":  Rank10,
	"J":  RankJ,
	"Q":  RankQ,
	"K":  RankK,
	"A":  RankA,
}

// Parse reads notation like "QC", "10D" or "AS" (rank then suit letter).
func Parse(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("unrecognized card: %q", s)
	}
	suit, ok := charToSuit[s[len(s)-1]]
	if !ok {
		return Card{}, fmt.Errorf("unrecognized suit: %q", s)
	}
	rank, ok := charToRank[s[:len(s)-1]]
	if !ok {
		return Card{}, fmt.Errorf("unrecognized rank: %q", s)
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// Contains reports whether cards holds c.
func Contains(cards []Card, c Card) bool {
	for _, x := range cards {
		if x == c {
			return true
		}
	}
	return false
}

// Remove deletes the first occurrence of c and reports whether it was found.
func Remove(cards *[]Card, c Card) bool {
	for i, x := range *cards {
		if x == c {
			*cards = append((*cards)[:i], (*cards)[i+1:]...)
			return true
		}
	}
	return false
}

// PointSum totals the point values of cards.
func PointSum(cards []Card) int {
	sum := 0
	for _, c := range cards {
		sum += c.Points()
	}
	return sum
}
