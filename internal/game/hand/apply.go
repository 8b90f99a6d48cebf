package hand

import (
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/apperrors"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/card"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/deck"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/rule"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/variant"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/protocol"
)

// Apply validates and applies one action for one seat. A nil return means the
// action took effect; a *apperrors.GameError means it was rejected and the
// state was not touched. Apply is the only mutation path into a State.
func (st *State) Apply(seat int, a Action) error {
	if seat < 0 || seat >= len(st.Seats) {
		return apperrors.ErrNotYourTurn
	}

	switch st.Phase {
	case PhasePicking:
		return st.applyPicking(seat, a)
	case PhaseCracking:
		return st.applyCracking(seat, a)
	case PhaseBurying:
		return st.applyBurying(seat, a)
	case PhaseCalling:
		return st.applyCalling(seat, a)
	case PhasePlaying:
		return st.applyPlaying(seat, a)
	default:
		return apperrors.ErrWrongPhase
	}
}

func (st *State) applyPicking(seat int, a Action) error {
	if seat != st.Current {
		return apperrors.ErrNotYourTurn
	}

	switch a.Type {
	case ActionPick:
		st.takeBlind(seat)
		if st.Config.Cracking {
			st.enterCracking()
		} else {
			st.enterBurying()
		}
		return nil

	case ActionPass:
		st.passes++
		if st.passes == st.Config.Players {
			st.resolveNoPick()
			return nil
		}
		st.Current = deck.LeftOf(st.Current, st.Config.Players)
		return nil

	default:
		return apperrors.ErrWrongPhase
	}
}

// resolveNoPick runs the configured no-pick rule once every seat has passed.
func (st *State) resolveNoPick() {
	switch st.Config.NoPick {
	case variant.ForcedPick:
		// Dealer's curse: the blind is theirs whether they want it or not.
		st.takeBlind(st.Dealer)
		st.enterBurying()
	default:
		st.Leaster = true
		st.enterPlaying()
	}
}

// takeBlind makes seat the picker and folds the blind into their hand.
func (st *State) takeBlind(seat int) {
	st.Picker = seat
	st.Seats[seat].IsPicker = true
	st.Seats[seat].Hand = append(st.Seats[seat].Hand, st.Blind...)
	st.Blind = nil
	st.BlindTaken = true
}

// enterCracking queues the defenders clockwise from the picker's left.
func (st *State) enterCracking() {
	st.Phase = PhaseCracking
	st.crackQueue = st.crackQueue[:0]
	for i := 1; i < st.Config.Players; i++ {
		st.crackQueue = append(st.crackQueue, (st.Picker+i)%st.Config.Players)
	}
	st.Current = st.crackQueue[0]
}

func (st *State) applyCracking(seat int, a Action) error {
	if len(st.crackQueue) == 0 || seat != st.crackQueue[0] {
		return apperrors.ErrNotYourTurn
	}

	if seat == st.Picker {
		// Picker stage: only reachable after a defender cracked.
		switch a.Type {
		case ActionRecrack:
			st.Crack.Multiplier *= 2
			st.enterBurying()
			return nil
		case ActionNoCrack:
			st.enterBurying()
			return nil
		default:
			return apperrors.ErrCannotCrack
		}
	}

	switch a.Type {
	case ActionCrack:
		// The first crack settles it for the defense; the picker answers.
		st.Crack.Cracked = true
		st.Crack.Multiplier *= 2
		st.crackQueue = append(st.crackQueue[:0], st.Picker)
		st.Current = st.Picker
		return nil

	case ActionNoCrack:
		st.crackQueue = st.crackQueue[1:]
		if len(st.crackQueue) == 0 {
			st.enterBurying()
			return nil
		}
		st.Current = st.crackQueue[0]
		return nil

	default:
		return apperrors.ErrCannotCrack
	}
}

// enterBurying hands the turn to the picker, or skips straight to calling on
// tables dealt without a blind.
func (st *State) enterBurying() {
	st.crackQueue = nil
	if st.Config.BlindSize == 0 {
		st.enterCalling()
		return
	}
	st.Phase = PhaseBurying
	st.Current = st.Picker
}

func (st *State) applyBurying(seat int, a Action) error {
	if seat != st.Picker {
		return apperrors.ErrNotYourTurn
	}

	switch a.Type {
	case ActionBlitz:
		if !st.CanBlitz() {
			return apperrors.ErrCannotBlitz
		}
		st.Crack.Blitzed = true
		st.Crack.Multiplier *= 2
		return nil

	case ActionBury:
		ok, reason := rule.ValidateBury(st.Seats[seat].Hand, a.Cards, st.Config.BlindSize, nil)
		if !ok {
			return apperrors.New(protocol.ErrCodeInvalidBury, reason)
		}
		for _, c := range a.Cards {
			card.Remove(&st.Seats[seat].Hand, c)
			st.Buried = append(st.Buried, c)
		}
		st.enterCalling()
		return nil

	default:
		return apperrors.ErrWrongPhase
	}
}

// enterCalling designates the partner per the table's variant, or opens the
// calling phase for the picker under called-ace rules.
func (st *State) enterCalling() {
	switch st.Config.Partner {
	case variant.JackOfDiamonds:
		holder := st.holderOf(card.Card{Suit: card.Diamonds, Rank: card.RankJ})
		if holder < 0 || holder == st.Picker {
			st.Alone = true
		} else {
			st.Called = &rule.CalledCard{Card: card.Card{Suit: card.Diamonds, Rank: card.RankJ}}
			st.Seats[holder].IsPartner = true
		}
		st.enterPlaying()

	case variant.Alone:
		st.Alone = true
		st.enterPlaying()

	default: // variant.CalledAce
		st.Phase = PhaseCalling
		st.Current = st.Picker
	}
}

func (st *State) applyCalling(seat int, a Action) error {
	if seat != st.Picker {
		return apperrors.ErrNotYourTurn
	}
	pickerHand := st.Seats[seat].Hand

	switch a.Type {
	case ActionCallAce:
		if !suitIn(rule.CallableSuits(pickerHand), a.Suit) {
			return apperrors.ErrInvalidCall
		}
		return st.designate(card.Card{Suit: a.Suit, Rank: card.RankA})

	case ActionCallTen:
		// The ten fallback only exists when no ace call is possible.
		if len(rule.CallableSuits(pickerHand)) > 0 ||
			!suitIn(rule.CallableTens(pickerHand), a.Suit) {
			return apperrors.ErrInvalidCall
		}
		return st.designate(card.Card{Suit: a.Suit, Rank: card.Rank10})

	case ActionGoAlone:
		st.Alone = true
		st.enterPlaying()
		return nil

	default:
		return apperrors.ErrWrongPhase
	}
}

// designate records the called card and marks its holder. A called card that
// no other seat holds (the picker buried it) is rejected, since the partner
// could never be revealed.
func (st *State) designate(c card.Card) error {
	holder := st.holderOf(c)
	if holder < 0 || holder == st.Picker {
		return apperrors.New(protocol.ErrCodeInvalidCall, "called card is out of play")
	}
	st.Called = &rule.CalledCard{Card: c}
	st.Seats[holder].IsPartner = true
	st.enterPlaying()
	return nil
}

func (st *State) holderOf(c card.Card) int {
	for i := range st.Seats {
		if card.Contains(st.Seats[i].Hand, c) {
			return i
		}
	}
	return -1
}

// enterPlaying opens trick play with the seat left of the dealer leading.
func (st *State) enterPlaying() {
	st.Phase = PhasePlaying
	st.Current = deck.LeftOf(st.Dealer, st.Config.Players)
	st.CurrentTrick = nil
	st.TrickNumber = 0
}

func (st *State) applyPlaying(seat int, a Action) error {
	if a.Type != ActionPlayCard {
		return apperrors.ErrWrongPhase
	}
	if seat != st.Current {
		return apperrors.ErrNotYourTurn
	}
	if !rule.IsLegalPlay(st.Seats[seat].Hand, st.CurrentTrick, a.Card, st.Called) {
		return apperrors.ErrIllegalCard
	}

	card.Remove(&st.Seats[seat].Hand, a.Card)
	st.CurrentTrick = append(st.CurrentTrick, rule.Play{Card: a.Card, Seat: seat})

	if st.Called != nil && a.Card == st.Called.Card {
		st.Called.Revealed = true
	}

	if len(st.CurrentTrick) < st.Config.Players {
		st.Current = deck.LeftOf(st.Current, st.Config.Players)
		return nil
	}

	winner := rule.TrickWinner(st.CurrentTrick)
	trick := Trick{Plays: st.CurrentTrick, Winner: winner}
	st.Completed = append(st.Completed, trick)
	st.Seats[winner].TricksWon = append(st.Seats[winner].TricksWon, trick)
	st.CurrentTrick = nil
	st.TrickNumber++
	st.Current = winner

	if st.TrickNumber == st.Config.TricksPerHand() {
		st.Phase = PhaseScoring
	}
	return nil
}

func suitIn(suits []card.Suit, s card.Suit) bool {
	for _, x := range suits {
		if x == s {
			return true
		}
	}
	return false
}
