package rule

import "github.com/JohnLemonNFT/sheepshead-sub000/internal/game/card"

// Play is one card laid into a trick by a seat.
type Play struct {
	Card card.Card
	Seat int
}

// EffectiveSuit maps a card to the suit it follows as. All 14 trump act as a
// single suit; Diamonds stands for it, since every Diamond is trump.
func EffectiveSuit(c card.Card) card.Suit {
	if c.IsTrump() {
		return card.Diamonds
	}
	return c.Suit
}

// CardBeats reports whether a beats b given the led effective suit. Trump
// beats fail unconditionally; within a category the higher power wins; a fail
// card off the led suit never beats anything.
func CardBeats(a, b card.Card, ledSuit card.Suit) bool {
	if a.IsTrump() {
		if !b.IsTrump() {
			return true
		}
		return a.TrumpPower() > b.TrumpPower()
	}
	if b.IsTrump() {
		return false
	}
	if a.Suit != ledSuit {
		return false
	}
	if b.Suit != ledSuit {
		return true
	}
	return a.FailPower() > b.FailPower()
}

// TrickWinner returns the seat that won a completed trick. Power values are a
// total order within trump and within each fail suit, so ties cannot occur in
// a legal deck.
func TrickWinner(plays []Play) int {
	if len(plays) == 0 {
		return -1
	}
	ledSuit := EffectiveSuit(plays[0].Card)
	best := 0
	for i := 1; i < len(plays); i++ {
		if CardBeats(plays[i].Card, plays[best].Card, ledSuit) {
			best = i
		}
	}
	return plays[best].Seat
}
