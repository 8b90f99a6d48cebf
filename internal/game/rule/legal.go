package rule

import (
	"fmt"

	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/card"
)

// CalledCard is the partner-designating card: a called fail ace (or ten), or
// the J♦ under that variant. Revealed flips when the card hits the table;
// until then other seats must not learn who holds it.
type CalledCard struct {
	Card     card.Card
	Revealed bool
}

// LegalPlays returns the subset of hand that may be played onto trick. It is
// the single authority on play legality; the state machine never re-derives
// it. The result is always non-empty for a non-empty hand.
func LegalPlays(hand []card.Card, trick []Play, called *CalledCard) []card.Card {
	if len(hand) == 0 {
		return nil
	}
	if len(trick) == 0 {
		return append([]card.Card(nil), hand...)
	}

	ledSuit := EffectiveSuit(trick[0].Card)

	// A partner holding the un-played called card must surrender it the
	// first time its suit is led, not just any card of that suit. The rule
	// only binds for fail called cards (ace/ten), never the J♦.
	if called != nil && !called.Revealed && !called.Card.IsTrump() &&
		ledSuit == called.Card.Suit && card.Contains(hand, called.Card) {
		return []card.Card{called.Card}
	}

	var following []card.Card
	for _, c := range hand {
		if EffectiveSuit(c) == ledSuit {
			following = append(following, c)
		}
	}
	if len(following) > 0 {
		return following
	}
	// Void in the led suit: anything goes, trump or sluff.
	return append([]card.Card(nil), hand...)
}

// IsLegalPlay is a membership test against LegalPlays.
func IsLegalPlay(hand []card.Card, trick []Play, c card.Card, called *CalledCard) bool {
	return card.Contains(LegalPlays(hand, trick, called), c)
}

// CallableSuits lists the fail suits the hand may call an ace in: the player
// must not hold that ace and must hold a fail card of the suit to keep as the
// hold card.
func CallableSuits(hand []card.Card) []card.Suit {
	return callable(hand, card.RankA)
}

// CallableTens is the call-a-ten fallback used when no ace is callable.
func CallableTens(hand []card.Card) []card.Suit {
	return callable(hand, card.Rank10)
}

func callable(hand []card.Card, rank card.Rank) []card.Suit {
	var suits []card.Suit
	for _, s := range card.FailSuits {
		hasCalled := false
		hasHold := false
		for _, c := range hand {
			if c.IsTrump() || c.Suit != s {
				continue
			}
			if c.Rank == rank {
				hasCalled = true
			} else {
				hasHold = true
			}
		}
		if !hasCalled && hasHold {
			suits = append(suits, s)
		}
	}
	return suits
}

// MustGoAlone reports whether the hand has no callable ace suit, which forces
// the picker to play without a partner (unless the ten fallback is in play).
func MustGoAlone(hand []card.Card) bool {
	return len(CallableSuits(hand)) == 0
}

// ValidateBury checks a proposed bury selection. callSuit, when non-nil, is
// the suit the picker intends to call; the bury must leave a hold card in it.
// Failures come back as a reason string for the actor, never a panic.
func ValidateBury(hand, proposed []card.Card, burySize int, callSuit *card.Suit) (bool, string) {
	if len(proposed) != burySize {
		return false, fmt.Sprintf("must bury exactly %d cards", burySize)
	}

	remaining := append([]card.Card(nil), hand...)
	for _, c := range proposed {
		if !card.Remove(&remaining, c) {
			return false, fmt.Sprintf("%v is not in your hand", c)
		}
	}

	if callSuit != nil {
		holds := false
		for _, c := range remaining {
			if !c.IsTrump() && c.Suit == *callSuit && c.Rank != card.RankA {
				holds = true
				break
			}
		}
		if !holds {
			return false, fmt.Sprintf("bury would leave no %v hold card for the call", *callSuit)
		}
	}

	return true, ""
}
