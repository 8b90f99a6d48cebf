package hand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohnLemonNFT/sheepshead-sub000/internal/apperrors"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/card"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/deck"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/rule"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/variant"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/protocol"
)

func mk(t *testing.T, s string) card.Card {
	t.Helper()
	c, err := card.Parse(s)
	require.NoError(t, err)
	return c
}

func mks(t *testing.T, labels ...string) []card.Card {
	t.Helper()
	out := make([]card.Card, 0, len(labels))
	for _, l := range labels {
		out = append(out, mk(t, l))
	}
	return out
}

// unshuffledHand deals the factory-ordered deck so tests know exactly who
// holds what: seat 0 gets the first CardsPerPlayer cards and so on, with the
// blind coming off the bottom.
func unshuffledHand(t *testing.T, cfg variant.Config, dealer int) *State {
	t.Helper()
	require.NoError(t, cfg.Validate())

	hands, blind := deck.Deal(card.New(), cfg.Players, cfg.CardsPerPlayer, cfg.BlindSize)
	seats := make([]Seat, cfg.Players)
	for i := range seats {
		seats[i] = Seat{Position: i, Hand: hands[i]}
	}
	return &State{
		Config:  cfg,
		Phase:   PhasePicking,
		Dealer:  dealer,
		Current: deck.LeftOf(dealer, cfg.Players),
		Picker:  -1,
		Blind:   blind,
		Seats:   seats,
		Crack:   CrackState{Multiplier: 1},
	}
}

func TestNewHandOpensPicking(t *testing.T) {
	st := NewHand(variant.FiveHanded(), 2, 42)

	assert.Equal(t, PhasePicking, st.Phase)
	assert.Equal(t, 3, st.Current)
	assert.Equal(t, -1, st.Picker)
	assert.Len(t, st.Blind, 2)
	assert.Equal(t, 32, st.TotalCards())
	assert.Equal(t, 1, st.Multiplier())
}

func TestNewHandIsDeterministic(t *testing.T) {
	a := NewHand(variant.FiveHanded(), 0, 7)
	b := NewHand(variant.FiveHanded(), 0, 7)
	for i := range a.Seats {
		assert.Equal(t, a.Seats[i].Hand, b.Seats[i].Hand)
	}
	assert.Equal(t, a.Blind, b.Blind)
}

func TestPickingRotatesAndResolvesLeaster(t *testing.T) {
	st := NewHand(variant.FiveHanded(), 0, 1)

	for i := 1; i <= 4; i++ {
		require.NoError(t, st.Apply(i%5, Pass()))
	}
	require.Equal(t, 0, st.Current)
	require.NoError(t, st.Apply(0, Pass()))

	assert.True(t, st.Leaster)
	assert.Equal(t, PhasePlaying, st.Phase)
	assert.Equal(t, -1, st.Picker)
	assert.Equal(t, 1, st.Current, "left of dealer leads")
	assert.Len(t, st.Blind, 2, "blind stays face down through a leaster")
}

func TestForcedPickFallsToDealer(t *testing.T) {
	cfg := variant.FiveHanded()
	cfg.NoPick = variant.ForcedPick
	st := NewHand(cfg, 3, 1)

	for i := 0; i < 5; i++ {
		require.NoError(t, st.Apply(st.Current, Pass()))
	}

	assert.Equal(t, 3, st.Picker)
	assert.False(t, st.Leaster)
	assert.Equal(t, PhaseBurying, st.Phase)
	assert.Len(t, st.Seats[3].Hand, 8)
	assert.Empty(t, st.Blind)
}

func TestPickTakesBlind(t *testing.T) {
	st := NewHand(variant.FiveHanded(), 0, 9)

	require.NoError(t, st.Apply(1, Pick()))

	assert.Equal(t, 1, st.Picker)
	assert.True(t, st.BlindTaken)
	assert.True(t, st.Seats[1].IsPicker)
	assert.Len(t, st.Seats[1].Hand, 8)
	assert.Empty(t, st.Blind)
	assert.Equal(t, PhaseBurying, st.Phase)
	assert.Equal(t, 32, st.TotalCards())
}

func TestPickOutOfTurnRejected(t *testing.T) {
	st := NewHand(variant.FiveHanded(), 0, 9)
	snap := st.Clone()

	err := st.Apply(3, Pick())
	assert.ErrorIs(t, err, apperrors.ErrNotYourTurn)
	assert.Equal(t, snap, st)
}

func TestCrackThenRecrackQuadruples(t *testing.T) {
	cfg := variant.FiveHanded()
	cfg.Cracking = true
	st := NewHand(cfg, 0, 5)

	require.NoError(t, st.Apply(1, Pick()))
	require.Equal(t, PhaseCracking, st.Phase)
	require.Equal(t, 2, st.Current, "left of picker answers first")

	require.NoError(t, st.Apply(2, NoCrack()))
	require.NoError(t, st.Apply(3, Crack()))
	assert.True(t, st.Crack.Cracked)
	assert.Equal(t, 2, st.Multiplier())
	require.Equal(t, 1, st.Current, "crack hands the decision to the picker")

	require.NoError(t, st.Apply(1, Recrack()))
	assert.Equal(t, 4, st.Multiplier())
	assert.Equal(t, PhaseBurying, st.Phase)
}

func TestAllDeclineCrack(t *testing.T) {
	cfg := variant.FiveHanded()
	cfg.Cracking = true
	st := NewHand(cfg, 0, 5)

	require.NoError(t, st.Apply(1, Pick()))
	for _, seat := range []int{2, 3, 4, 0} {
		require.NoError(t, st.Apply(seat, NoCrack()))
	}

	assert.Equal(t, 1, st.Multiplier())
	assert.Equal(t, PhaseBurying, st.Phase)
}

func TestDefenderCannotRecrack(t *testing.T) {
	cfg := variant.FiveHanded()
	cfg.Cracking = true
	st := NewHand(cfg, 0, 5)

	require.NoError(t, st.Apply(1, Pick()))
	err := st.Apply(2, Recrack())
	assert.ErrorIs(t, err, apperrors.ErrCannotCrack)
}

func TestBlitzDoublesOnce(t *testing.T) {
	cfg := variant.FiveHanded()
	cfg.Cracking = true
	cfg.Blitzing = true
	st := unshuffledHand(t, cfg, 0)
	// Give the picker both black queens.
	st.Seats[1].Hand = mks(t, "QC", "QS", "JH", "AD", "10H", "KH")

	require.NoError(t, st.Apply(1, Pick()))
	for _, seat := range []int{2, 3, 4, 0} {
		require.NoError(t, st.Apply(seat, NoCrack()))
	}
	require.Equal(t, PhaseBurying, st.Phase)

	require.True(t, st.CanBlitz())
	require.NoError(t, st.Apply(1, Blitz()))
	assert.True(t, st.Crack.Blitzed)
	assert.Equal(t, 2, st.Multiplier())

	err := st.Apply(1, Blitz())
	assert.ErrorIs(t, err, apperrors.ErrCannotBlitz)
	assert.Equal(t, 2, st.Multiplier())
}

func TestBuryRejections(t *testing.T) {
	st := NewHand(variant.FiveHanded(), 0, 3)
	require.NoError(t, st.Apply(1, Pick()))
	picker := st.Seats[1].Hand
	// Any other seat's card is guaranteed not to be in the picker's hand.
	notHeld := st.Seats[2].Hand[0]

	cases := map[string]Action{
		"wrong size":  Bury(picker[0]),
		"not held":    Bury(picker[0], notHeld),
		"duplicate":   Bury(picker[0], picker[0]),
		"three cards": Bury(picker[0], picker[1], picker[2]),
	}
	for name, a := range cases {
		t.Run(name, func(t *testing.T) {
			snap := st.Clone()
			err := st.Apply(1, a)
			var ge *apperrors.GameError
			require.ErrorAs(t, err, &ge)
			assert.Equal(t, protocol.ErrCodeInvalidBury, ge.Code)
			assert.Equal(t, snap, st)
		})
	}
}

func TestBuryMovesCardsAndOpensCalling(t *testing.T) {
	st := NewHand(variant.FiveHanded(), 0, 3)
	require.NoError(t, st.Apply(1, Pick()))
	chosen := append([]card.Card(nil), st.Seats[1].Hand[:2]...)

	require.NoError(t, st.Apply(1, Bury(chosen...)))

	assert.Equal(t, chosen, st.Buried)
	assert.Len(t, st.Seats[1].Hand, 6)
	assert.Equal(t, PhaseCalling, st.Phase)
	assert.Equal(t, 1, st.Current)
	assert.Equal(t, 32, st.TotalCards())
}

func callingState(t *testing.T, pickerHand []card.Card, buried []card.Card) *State {
	t.Helper()
	st := unshuffledHand(t, variant.FiveHanded(), 0)
	st.Phase = PhaseCalling
	st.Picker = 1
	st.Current = 1
	st.Seats[1].IsPicker = true
	st.Seats[1].Hand = pickerHand
	st.Buried = buried
	st.Blind = nil
	// Park the called candidates with seat 3 so a holder always exists.
	st.Seats[3].Hand = mks(t, "AH", "10S", "KS", "9H", "8H", "7H")
	return st
}

func TestCallAceDesignatesHolder(t *testing.T) {
	st := callingState(t,
		mks(t, "QC", "QS", "JC", "JD", "KH", "9D"),
		mks(t, "7S", "8S"))

	require.NoError(t, st.Apply(1, CallAce(card.Hearts)))

	require.NotNil(t, st.Called)
	assert.Equal(t, mk(t, "AH"), st.Called.Card)
	assert.False(t, st.Called.Revealed)
	assert.True(t, st.Seats[3].IsPartner)
	assert.Equal(t, 3, st.PartnerSeat())
	assert.Equal(t, PhasePlaying, st.Phase)
}

func TestCallAceNeedsHoldCard(t *testing.T) {
	// No clubs in hand, so clubs is not callable.
	st := callingState(t,
		mks(t, "QC", "QS", "JC", "JD", "KH", "9D"),
		mks(t, "7S", "8S"))

	err := st.Apply(1, CallAce(card.Clubs))
	assert.ErrorIs(t, err, apperrors.ErrInvalidCall)
	assert.Equal(t, PhaseCalling, st.Phase)
}

func TestCallBuriedAceRejected(t *testing.T) {
	st := callingState(t,
		mks(t, "QC", "QS", "JC", "JD", "KH", "9D"),
		mks(t, "AH", "8S"))
	st.Seats[3].Hand = mks(t, "10S", "KS", "AS", "9H", "8H", "7H")

	err := st.Apply(1, CallAce(card.Hearts))
	var ge *apperrors.GameError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, protocol.ErrCodeInvalidCall, ge.Code)
	assert.Nil(t, st.Called)
	assert.Equal(t, PhaseCalling, st.Phase)
}

func TestCallTenOnlyWithoutAceOption(t *testing.T) {
	// Picker holds every fail ace, so no ace is callable; hearts has a hold
	// card and its ten sits with seat 3.
	st := callingState(t,
		mks(t, "AC", "AS", "AH", "KH", "JD", "QC"),
		mks(t, "7S", "8S"))
	st.Seats[3].Hand = mks(t, "10H", "10S", "KS", "9H", "8H", "7H")

	require.NoError(t, st.Apply(1, CallTen(card.Hearts)))
	require.NotNil(t, st.Called)
	assert.Equal(t, mk(t, "10H"), st.Called.Card)
	assert.Equal(t, 3, st.PartnerSeat())
}

func TestCallTenRejectedWhileAceCallable(t *testing.T) {
	st := callingState(t,
		mks(t, "QC", "QS", "JC", "JD", "KH", "9D"),
		mks(t, "7S", "8S"))

	err := st.Apply(1, CallTen(card.Hearts))
	assert.ErrorIs(t, err, apperrors.ErrInvalidCall)
}

func TestGoAlone(t *testing.T) {
	st := callingState(t,
		mks(t, "QC", "QS", "JC", "JD", "KH", "9D"),
		mks(t, "7S", "8S"))

	require.NoError(t, st.Apply(1, GoAlone()))
	assert.True(t, st.Alone)
	assert.Nil(t, st.Called)
	assert.Equal(t, PhasePlaying, st.Phase)
	assert.Equal(t, -1, st.PartnerSeat())
}

func TestJackOfDiamondsPartner(t *testing.T) {
	// Factory order deals seat 3 every diamond, J♦ included.
	st := unshuffledHand(t, variant.FourHanded(), 0)

	require.NoError(t, st.Apply(1, Pick()))

	assert.Equal(t, PhasePlaying, st.Phase)
	assert.False(t, st.Alone)
	require.NotNil(t, st.Called)
	assert.Equal(t, mk(t, "JD"), st.Called.Card)
	assert.True(t, st.Seats[3].IsPartner)
}

func TestJackOfDiamondsPickerHoldsItAlone(t *testing.T) {
	st := unshuffledHand(t, variant.FourHanded(), 0)

	require.NoError(t, st.Apply(st.Current, Pass()))
	require.NoError(t, st.Apply(st.Current, Pass()))
	require.NoError(t, st.Apply(3, Pick()))

	assert.True(t, st.Alone)
	assert.Nil(t, st.Called)
	assert.Equal(t, -1, st.PartnerSeat())
	assert.Equal(t, PhasePlaying, st.Phase)
}

// playingState sets up the last trick of a hand with one card per seat.
func playingState(t *testing.T, lead int, hands ...[]card.Card) *State {
	t.Helper()
	cfg := variant.FiveHanded()
	require.Len(t, hands, cfg.Players)

	st := unshuffledHand(t, cfg, 0)
	st.Phase = PhasePlaying
	st.Current = lead
	st.TrickNumber = cfg.TricksPerHand() - 1
	for i := range st.Seats {
		st.Seats[i].Hand = hands[i]
	}
	return st
}

func TestTrickResolutionAwardsWinnerAndScores(t *testing.T) {
	st := playingState(t, 0,
		mks(t, "AS"),
		mks(t, "7S"),
		mks(t, "QC"),
		mks(t, "KS"),
		mks(t, "9H"),
	)

	for seat := 0; seat < 5; seat++ {
		require.NoError(t, st.Apply(st.Current, PlayCard(st.Seats[st.Current].Hand[0])))
	}

	require.Len(t, st.Completed, 1)
	assert.Equal(t, 2, st.Completed[0].Winner, "trump wins over the led ace")
	assert.Len(t, st.Seats[2].TricksWon, 1)
	assert.Equal(t, 2, st.Current)
	assert.Equal(t, PhaseScoring, st.Phase)

	st.CompleteScoring()
	assert.Equal(t, PhaseGameOver, st.Phase)
}

func TestIllegalPlayLeavesTrickUntouched(t *testing.T) {
	st := playingState(t, 0,
		mks(t, "AS"),
		mks(t, "7S", "9H"),
		mks(t, "QC"),
		mks(t, "KS"),
		mks(t, "9D"),
	)
	st.TrickNumber = 0

	require.NoError(t, st.Apply(0, PlayCard(mk(t, "AS"))))
	snap := st.Clone()

	// Seat 1 holds a spade and must follow.
	err := st.Apply(1, PlayCard(mk(t, "9H")))
	assert.ErrorIs(t, err, apperrors.ErrIllegalCard)
	assert.Equal(t, snap, st)

	// Out of turn is rejected before legality.
	err = st.Apply(2, PlayCard(mk(t, "QC")))
	assert.ErrorIs(t, err, apperrors.ErrNotYourTurn)
	assert.Equal(t, snap, st)

	require.NoError(t, st.Apply(1, PlayCard(mk(t, "7S"))))
	assert.Len(t, st.CurrentTrick, 2)
}

func TestCalledCardRevealsOnPlay(t *testing.T) {
	st := playingState(t, 0,
		mks(t, "AS"),
		mks(t, "AH"),
		mks(t, "QC"),
		mks(t, "KS"),
		mks(t, "9D"),
	)
	st.Picker = 2
	st.Seats[2].IsPicker = true
	st.Seats[1].IsPartner = true
	st.Called = &rule.CalledCard{Card: mk(t, "AH")}
	st.TrickNumber = 0

	require.NoError(t, st.Apply(0, PlayCard(mk(t, "AS"))))
	require.False(t, st.Called.Revealed)
	require.NoError(t, st.Apply(1, PlayCard(mk(t, "AH"))))
	assert.True(t, st.Called.Revealed)
}

func TestCloneIsIndependent(t *testing.T) {
	st := NewHand(variant.FiveHanded(), 0, 11)
	cp := st.Clone()

	require.NoError(t, st.Apply(1, Pick()))

	assert.Equal(t, PhasePicking, cp.Phase)
	assert.Equal(t, -1, cp.Picker)
	assert.Len(t, cp.Blind, 2)
	assert.Len(t, cp.Seats[1].Hand, 6)
}

func TestActionsInWrongPhaseRejected(t *testing.T) {
	st := NewHand(variant.FiveHanded(), 0, 2)

	assert.ErrorIs(t, st.Apply(1, PlayCard(st.Seats[1].Hand[0])), apperrors.ErrWrongPhase)
	assert.ErrorIs(t, st.Apply(1, Bury(st.Seats[1].Hand[:2]...)), apperrors.ErrWrongPhase)
	assert.ErrorIs(t, st.Apply(1, Crack()), apperrors.ErrWrongPhase)
}
