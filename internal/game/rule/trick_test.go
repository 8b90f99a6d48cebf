package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/card"
)

func TestEffectiveSuit(t *testing.T) {
	assert.Equal(t, card.Diamonds, EffectiveSuit(card.Card{Suit: card.Clubs, Rank: card.RankQ}))
	assert.Equal(t, card.Diamonds, EffectiveSuit(card.Card{Suit: card.Spades, Rank: card.RankJ}))
	assert.Equal(t, card.Diamonds, EffectiveSuit(card.Card{Suit: card.Diamonds, Rank: card.Rank8}))
	assert.Equal(t, card.Hearts, EffectiveSuit(card.Card{Suit: card.Hearts, Rank: card.RankA}))
}

func TestCardBeats(t *testing.T) {
	qc := card.Card{Suit: card.Clubs, Rank: card.RankQ}
	jd := card.Card{Suit: card.Diamonds, Rank: card.RankJ}
	ah := card.Card{Suit: card.Hearts, Rank: card.RankA}
	kh := card.Card{Suit: card.Hearts, Rank: card.RankK}
	as := card.Card{Suit: card.Spades, Rank: card.RankA}

	// Trump beats fail unconditionally.
	assert.True(t, CardBeats(jd, ah, card.Hearts))
	assert.False(t, CardBeats(ah, jd, card.Hearts))

	// Within trump, higher power wins.
	assert.True(t, CardBeats(qc, jd, card.Diamonds))
	assert.False(t, CardBeats(jd, qc, card.Diamonds))

	// Within the led fail suit, higher power wins.
	assert.True(t, CardBeats(ah, kh, card.Hearts))

	// A sluffed off-suit fail card never beats anything.
	assert.False(t, CardBeats(as, kh, card.Hearts))
}

func TestTrickWinnerAllFail(t *testing.T) {
	winner := TrickWinner([]Play{
		{Card: card.Card{Suit: card.Hearts, Rank: card.RankK}, Seat: 0},
		{Card: card.Card{Suit: card.Hearts, Rank: card.RankA}, Seat: 1},
		{Card: card.Card{Suit: card.Spades, Rank: card.RankA}, Seat: 2}, // sluff
		{Card: card.Card{Suit: card.Hearts, Rank: card.Rank9}, Seat: 3},
		{Card: card.Card{Suit: card.Hearts, Rank: card.Rank7}, Seat: 4},
	})
	assert.Equal(t, 1, winner)
}

func TestTrickWinnerTrumpTakesLedFail(t *testing.T) {
	winner := TrickWinner([]Play{
		{Card: card.Card{Suit: card.Clubs, Rank: card.RankA}, Seat: 2},
		{Card: card.Card{Suit: card.Diamonds, Rank: card.Rank7}, Seat: 3},
		{Card: card.Card{Suit: card.Clubs, Rank: card.Rank10}, Seat: 4},
	})
	assert.Equal(t, 3, winner)
}

func TestTrickWinnerLedTrump(t *testing.T) {
	winner := TrickWinner([]Play{
		{Card: card.Card{Suit: card.Diamonds, Rank: card.RankA}, Seat: 0},
		{Card: card.Card{Suit: card.Hearts, Rank: card.RankJ}, Seat: 1},
		{Card: card.Card{Suit: card.Spades, Rank: card.RankQ}, Seat: 2},
		{Card: card.Card{Suit: card.Diamonds, Rank: card.Rank10}, Seat: 3},
		{Card: card.Card{Suit: card.Hearts, Rank: card.RankA}, Seat: 4},
	})
	assert.Equal(t, 2, winner)
}

func TestTrickWinnerIsAlwaysAParticipant(t *testing.T) {
	deck := card.New()
	// Walk overlapping windows of the canonical deck as ad-hoc tricks.
	for start := 0; start+5 <= len(deck); start++ {
		plays := make([]Play, 5)
		for i := range 5 {
			plays[i] = Play{Card: deck[start+i], Seat: (start + i) % 5}
		}
		winner := TrickWinner(plays)
		found := false
		for _, p := range plays {
			if p.Seat == winner {
				found = true
			}
		}
		assert.True(t, found, "winner %d not in trick starting at %d", winner, start)
	}
}

func TestTrickWinnerEmpty(t *testing.T) {
	assert.Equal(t, -1, TrickWinner(nil))
}
