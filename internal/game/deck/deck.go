package deck

import (
	"fmt"
	"math/rand/v2"

	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/card"
)

// Shuffle returns a fresh deck permuted deterministically by seed. The same
// seed always yields the same order, which is what makes a deal verifiable
// after the fact.
func Shuffle(seed int64) card.Deck {
	deck := card.New()
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// Deal partitions a shuffled deck into per-seat hands and the blind, with no
// overlap and no leftover. A configuration that does not exhaust the deck is
// a programmer error, not a runtime condition, so it panics.
func Deal(shuffled card.Deck, players, cardsPerPlayer, blindSize int) ([][]card.Card, []card.Card) {
	if players*cardsPerPlayer+blindSize != len(shuffled) {
		panic(fmt.Sprintf("deal does not exhaust deck: %d x %d + %d != %d",
			players, cardsPerPlayer, blindSize, len(shuffled)))
	}

	hands := make([][]card.Card, players)
	idx := 0
	for p := range players {
		hands[p] = append([]card.Card(nil), shuffled[idx:idx+cardsPerPlayer]...)
		idx += cardsPerPlayer
	}
	blind := append([]card.Card(nil), shuffled[idx:]...)
	return hands, blind
}

// NextDealer advances the dealer one seat clockwise.
func NextDealer(dealer, players int) int {
	return (dealer + 1) % players
}

// LeftOf is the seat immediately clockwise of pos; it acts first in picking
// and leads the first trick.
func LeftOf(pos, players int) int {
	return (pos + 1) % players
}
