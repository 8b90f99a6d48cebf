package view

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/card"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/hand"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/rule"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/variant"
)

func mk(t *testing.T, s string) card.Card {
	t.Helper()
	c, err := card.Parse(s)
	require.NoError(t, err)
	return c
}

func TestViewShowsOnlyOwnHand(t *testing.T) {
	st := hand.NewHand(variant.FiveHanded(), 0, 21)

	for seat := 0; seat < 5; seat++ {
		v := For(st, seat)
		require.Len(t, v.Hand, 6)
		assert.Equal(t, seat, v.Viewer)
		for i, c := range st.Seats[seat].Hand {
			assert.Equal(t, int(c.Suit), v.Hand[i].Suit)
			assert.Equal(t, int(c.Rank), v.Hand[i].Rank)
		}
		for _, sv := range v.Seats {
			assert.Equal(t, 6, sv.CardsLeft, "counts only, never cards")
		}
	}
}

func TestViewNeverLeaksOtherHands(t *testing.T) {
	st := hand.NewHand(variant.FiveHanded(), 0, 21)
	v := For(st, 2)

	raw, err := json.Marshal(v)
	require.NoError(t, err)

	// No card outside the viewer's own hand may appear anywhere in the
	// serialized view while the hand is still being played.
	for seat, s := range st.Seats {
		if seat == 2 {
			continue
		}
		for _, c := range s.Hand {
			assert.NotContains(t, string(raw), c.String(),
				"seat %d's %v leaked to seat 2", seat, c)
		}
	}
	for _, c := range st.Blind {
		assert.NotContains(t, string(raw), c.String(), "blind leaked")
	}
}

// calledState is mid-play with seat 3 secretly partnered via the called A♥.
func calledState(t *testing.T, revealed bool) *hand.State {
	t.Helper()
	st := hand.NewHand(variant.FiveHanded(), 0, 3)
	st.Phase = hand.PhasePlaying
	st.Picker = 1
	st.Current = 1
	st.Seats[1].IsPicker = true
	st.Seats[3].IsPartner = true
	st.Called = &rule.CalledCard{Card: mk(t, "AH"), Revealed: revealed}
	return st
}

func TestViewHidesPartnerUntilRevealed(t *testing.T) {
	st := calledState(t, false)

	// Defenders and even the picker see the call but not the holder.
	for seat := 0; seat < 5; seat++ {
		v := For(st, seat)
		require.NotNil(t, v.Called)
		assert.Equal(t, mk(t, "AH"), FromDTO(v.Called.Card))
		assert.False(t, v.Called.Revealed)
		if seat == 3 {
			assert.True(t, v.Seats[3].IsPartner, "the holder knows")
			continue
		}
		assert.Equal(t, -1, v.PartnerSeat)
		assert.False(t, v.Seats[3].IsPartner)
	}
}

func TestViewRevealsPartnerOnPlay(t *testing.T) {
	st := calledState(t, true)

	for seat := 0; seat < 5; seat++ {
		v := For(st, seat)
		assert.Equal(t, 3, v.PartnerSeat)
		assert.True(t, v.Seats[3].IsPartner)
	}
}

func TestViewHidesBuryUntilScored(t *testing.T) {
	st := hand.NewHand(variant.FiveHanded(), 0, 3)
	require.NoError(t, st.Apply(1, hand.Pick()))
	buried := append([]card.Card(nil), st.Seats[1].Hand[:2]...)
	require.NoError(t, st.Apply(1, hand.Bury(buried...)))

	v := For(st, 1)
	assert.Empty(t, v.Buried, "even the picker's view omits the bury on the wire")

	st.Phase = hand.PhaseScoring
	v = For(st, 4)
	require.Len(t, v.Buried, 2)
	assert.Equal(t, buried[0], FromDTO(v.Buried[0]))
	assert.Equal(t, buried[1], FromDTO(v.Buried[1]))
	for _, sv := range v.Seats {
		assert.GreaterOrEqual(t, sv.PointsTaken, 0)
	}
}

func TestViewLegalPlaysOnlyForActingSeat(t *testing.T) {
	st := hand.NewHand(variant.FiveHanded(), 0, 1)
	for i := 0; i < 5; i++ {
		require.NoError(t, st.Apply(st.Current, hand.Pass()))
	}
	require.Equal(t, hand.PhasePlaying, st.Phase)

	acting := st.Current
	for seat := 0; seat < 5; seat++ {
		v := For(st, seat)
		if seat == acting {
			assert.NotEmpty(t, v.LegalPlays)
		} else {
			assert.Empty(t, v.LegalPlays)
		}
	}
}
