package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/card"
)

func c(s card.Suit, r card.Rank) card.Card { return card.Card{Suit: s, Rank: r} }

func TestLegalPlaysLeading(t *testing.T) {
	hand := []card.Card{c(card.Clubs, card.RankA), c(card.Diamonds, card.Rank9)}
	plays := LegalPlays(hand, nil, nil)
	assert.ElementsMatch(t, hand, plays)
}

func TestLegalPlaysMustFollowFail(t *testing.T) {
	hand := []card.Card{
		c(card.Hearts, card.Rank9),
		c(card.Hearts, card.RankA),
		c(card.Spades, card.RankA),
		c(card.Clubs, card.RankQ),
	}
	trick := []Play{{Card: c(card.Hearts, card.RankK), Seat: 0}}

	plays := LegalPlays(hand, trick, nil)
	assert.ElementsMatch(t, []card.Card{
		c(card.Hearts, card.Rank9),
		c(card.Hearts, card.RankA),
	}, plays)
}

func TestLegalPlaysLedTrumpRequiresTrump(t *testing.T) {
	hand := []card.Card{
		c(card.Hearts, card.RankQ), // trump despite printed hearts
		c(card.Hearts, card.RankA),
	}
	trick := []Play{{Card: c(card.Diamonds, card.Rank7), Seat: 2}}

	plays := LegalPlays(hand, trick, nil)
	assert.Equal(t, []card.Card{c(card.Hearts, card.RankQ)}, plays)
}

func TestLegalPlaysVoidMeansAnything(t *testing.T) {
	hand := []card.Card{c(card.Spades, card.Rank8), c(card.Diamonds, card.RankJ)}
	trick := []Play{{Card: c(card.Hearts, card.RankK), Seat: 0}}

	plays := LegalPlays(hand, trick, nil)
	assert.ElementsMatch(t, hand, plays)
}

func TestLegalPlaysNonEmptySubsetProperty(t *testing.T) {
	deck := card.New()
	trick := []Play{{Card: c(card.Clubs, card.Rank9), Seat: 0}}
	for start := 0; start+6 <= len(deck); start += 3 {
		hand := deck[start : start+6]
		plays := LegalPlays(hand, trick, nil)
		assert.NotEmpty(t, plays)
		for _, p := range plays {
			assert.True(t, card.Contains(hand, p))
		}
	}
}

func TestCalledAceForcedWhenSuitLed(t *testing.T) {
	called := &CalledCard{Card: c(card.Clubs, card.RankA)}
	hand := []card.Card{
		c(card.Clubs, card.RankA),
		c(card.Clubs, card.Rank7),
		c(card.Diamonds, card.RankQ),
	}
	trick := []Play{{Card: c(card.Clubs, card.RankK), Seat: 1}}

	plays := LegalPlays(hand, trick, called)
	assert.Equal(t, []card.Card{c(card.Clubs, card.RankA)}, plays)
}

func TestCalledAceNotForcedOnceRevealed(t *testing.T) {
	called := &CalledCard{Card: c(card.Clubs, card.RankA), Revealed: true}
	hand := []card.Card{c(card.Clubs, card.RankA), c(card.Clubs, card.Rank7)}
	trick := []Play{{Card: c(card.Clubs, card.RankK), Seat: 1}}

	plays := LegalPlays(hand, trick, called)
	assert.Len(t, plays, 2)
}

func TestJackOfDiamondsNeverForced(t *testing.T) {
	called := &CalledCard{Card: c(card.Diamonds, card.RankJ)}
	hand := []card.Card{
		c(card.Diamonds, card.RankJ),
		c(card.Diamonds, card.RankA),
	}
	trick := []Play{{Card: c(card.Diamonds, card.Rank7), Seat: 0}}

	plays := LegalPlays(hand, trick, called)
	assert.Len(t, plays, 2)
}

func TestIsLegalPlay(t *testing.T) {
	hand := []card.Card{c(card.Hearts, card.Rank9), c(card.Spades, card.RankA)}
	trick := []Play{{Card: c(card.Hearts, card.RankK), Seat: 0}}

	assert.True(t, IsLegalPlay(hand, trick, c(card.Hearts, card.Rank9), nil))
	assert.False(t, IsLegalPlay(hand, trick, c(card.Spades, card.RankA), nil))
	assert.False(t, IsLegalPlay(hand, trick, c(card.Clubs, card.Rank7), nil))
}

func TestCallableSuits(t *testing.T) {
	hand := []card.Card{
		c(card.Clubs, card.RankA),  // holds the club ace: not callable
		c(card.Spades, card.Rank9), // hold card, no ace: callable
		c(card.Hearts, card.RankQ), // trump, not a hearts hold card
		c(card.Diamonds, card.Rank8),
	}
	assert.Equal(t, []card.Suit{card.Spades}, CallableSuits(hand))
}

func TestMustGoAlone(t *testing.T) {
	allAces := []card.Card{
		c(card.Clubs, card.RankA),
		c(card.Spades, card.RankA),
		c(card.Hearts, card.RankA),
		c(card.Diamonds, card.RankQ),
		c(card.Diamonds, card.RankJ),
		c(card.Diamonds, card.Rank7),
	}
	assert.True(t, MustGoAlone(allAces))

	withHold := append(allAces[:2:2], c(card.Hearts, card.Rank7))
	assert.False(t, MustGoAlone(withHold))
}

func TestCallableTens(t *testing.T) {
	hand := []card.Card{
		c(card.Clubs, card.Rank10),
		c(card.Spades, card.RankK),
		c(card.Hearts, card.RankA),
	}
	assert.ElementsMatch(t, []card.Suit{card.Spades, card.Hearts}, CallableTens(hand))
}

func TestValidateBury(t *testing.T) {
	hand := []card.Card{
		c(card.Clubs, card.Rank7),
		c(card.Clubs, card.Rank8),
		c(card.Spades, card.Rank9),
		c(card.Diamonds, card.RankA),
	}

	ok, _ := ValidateBury(hand, []card.Card{c(card.Clubs, card.Rank7), c(card.Spades, card.Rank9)}, 2, nil)
	assert.True(t, ok)

	ok, reason := ValidateBury(hand, []card.Card{c(card.Clubs, card.Rank7)}, 2, nil)
	assert.False(t, ok)
	assert.Contains(t, reason, "exactly 2")

	ok, reason = ValidateBury(hand, []card.Card{c(card.Hearts, card.RankA), c(card.Clubs, card.Rank7)}, 2, nil)
	assert.False(t, ok)
	assert.Contains(t, reason, "not in your hand")

	// Proposing the same card twice is caught even though it is in hand once.
	ok, _ = ValidateBury(hand, []card.Card{c(card.Clubs, card.Rank7), c(card.Clubs, card.Rank7)}, 2, nil)
	assert.False(t, ok)
}

func TestValidateBuryProtectsHoldCard(t *testing.T) {
	spades := card.Spades
	hand := []card.Card{
		c(card.Spades, card.Rank9), // the only spade: intended hold card
		c(card.Clubs, card.Rank7),
		c(card.Clubs, card.Rank8),
		c(card.Diamonds, card.RankA),
	}

	ok, reason := ValidateBury(hand, []card.Card{c(card.Spades, card.Rank9), c(card.Clubs, card.Rank7)}, 2, &spades)
	assert.False(t, ok)
	assert.Contains(t, reason, "hold card")

	ok, _ = ValidateBury(hand, []card.Card{c(card.Clubs, card.Rank7), c(card.Clubs, card.Rank8)}, 2, &spades)
	assert.True(t, ok)
}
