// Package ai is the computer-seat policy. It consumes the same legal-move
// queries as any client and submits ordinary actions; the engine grants it no
// privilege and validates its output like a human's.
package ai

import (
	"fmt"
	"sort"

	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/card"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/hand"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/rule"
)

// Policy is a rule-driven actor. Zero value is ready to use.
type Policy struct {
	// PickThreshold is the minimum trump count to pick on. Defaults to 4.
	PickThreshold int
}

var _ hand.Actor = (*Policy)(nil)

// Propose returns one action legal at the given state. Proposing an illegal
// action would be a contract violation, so every branch draws from the same
// queries the engine validates against.
func (p *Policy) Propose(st *hand.State, seat int) (hand.Action, error) {
	switch st.Phase {
	case hand.PhasePicking:
		return p.proposePick(st, seat), nil
	case hand.PhaseCracking:
		return p.proposeCrack(st, seat), nil
	case hand.PhaseBurying:
		return p.proposeBury(st, seat), nil
	case hand.PhaseCalling:
		return p.proposeCall(st, seat), nil
	case hand.PhasePlaying:
		return p.proposePlay(st, seat), nil
	default:
		return hand.Action{}, fmt.Errorf("no action to propose in phase %v", st.Phase)
	}
}

func (p *Policy) threshold() int {
	if p.PickThreshold > 0 {
		return p.PickThreshold
	}
	return 4
}

func trumpCount(cards []card.Card) int {
	n := 0
	for _, c := range cards {
		if c.IsTrump() {
			n++
		}
	}
	return n
}

func (p *Policy) proposePick(st *hand.State, seat int) hand.Action {
	if trumpCount(st.Seats[seat].Hand) >= p.threshold() {
		return hand.Pick()
	}
	return hand.Pass()
}

// proposeCrack doubles only from a seat strong enough that it would have
// picked itself; the picker never recracks.
func (p *Policy) proposeCrack(st *hand.State, seat int) hand.Action {
	if seat != st.Picker && trumpCount(st.Seats[seat].Hand) >= p.threshold() {
		return hand.Crack()
	}
	return hand.NoCrack()
}

// proposeBury blitzes when available, then buries the highest-point fail
// cards. Aces and tens go last among fail so the bury does not strand the
// card the picker will want to call.
func (p *Policy) proposeBury(st *hand.State, seat int) hand.Action {
	if st.CanBlitz() {
		return hand.Blitz()
	}

	h := st.Seats[seat].Hand
	candidates := make([]card.Card, 0, len(h))
	for _, c := range h {
		if !c.IsTrump() && c.Rank != card.RankA && c.Rank != card.Rank10 {
			candidates = append(candidates, c)
		}
	}
	// Prefer stashing points; callable ranks and trump only when the hand
	// leaves no other choice.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Points() > candidates[j].Points()
	})
	for _, c := range h {
		if !c.IsTrump() && (c.Rank == card.RankA || c.Rank == card.Rank10) {
			candidates = append(candidates, c)
		}
	}
	for _, c := range h {
		if c.IsTrump() {
			candidates = append(candidates, c)
		}
	}

	size := st.Config.BlindSize
	for i := 0; i+size <= len(candidates); i++ {
		pick := candidates[i : i+size]
		if ok, _ := st.CanBurySelection(pick); ok {
			return hand.Bury(pick...)
		}
	}
	// Last resort: the first N cards of the hand always satisfy membership.
	return hand.Bury(h[:size]...)
}

// proposeCall prefers the callable suit with the fewest cards held, which
// maximizes the chance of trumping the called trick later. The picker knows
// its own bury, so suits whose called card went into the blind are skipped;
// the engine would reject them as out of play.
func (p *Policy) proposeCall(st *hand.State, seat int) hand.Action {
	h := st.Seats[seat].Hand

	suits := rule.CallableSuits(h)
	live := inPlay(suits, st.Buried, card.RankA)
	if len(live) > 0 {
		return hand.CallAce(thinnest(h, live))
	}
	if len(suits) == 0 {
		if tens := inPlay(rule.CallableTens(h), st.Buried, card.Rank10); len(tens) > 0 {
			return hand.CallTen(thinnest(h, tens))
		}
	}
	return hand.GoAlone()
}

func inPlay(suits []card.Suit, buried []card.Card, r card.Rank) []card.Suit {
	out := suits[:0:0]
	for _, s := range suits {
		if !card.Contains(buried, card.Card{Suit: s, Rank: r}) {
			out = append(out, s)
		}
	}
	return out
}

func thinnest(h []card.Card, suits []card.Suit) card.Suit {
	best := suits[0]
	bestCount := suitCount(h, best)
	for _, s := range suits[1:] {
		if n := suitCount(h, s); n < bestCount {
			best, bestCount = s, n
		}
	}
	return best
}

func suitCount(h []card.Card, s card.Suit) int {
	n := 0
	for _, c := range h {
		if !c.IsTrump() && c.Suit == s {
			n++
		}
	}
	return n
}

// proposePlay takes the trick with the weakest winning card when it can,
// otherwise throws the cheapest legal card.
func (p *Policy) proposePlay(st *hand.State, seat int) hand.Action {
	legal := st.LegalPlaysFor(seat)

	var winning []card.Card
	if len(st.CurrentTrick) > 0 {
		led := rule.EffectiveSuit(st.CurrentTrick[0].Card)
		for _, c := range legal {
			beatsAll := true
			for _, pl := range st.CurrentTrick {
				if !rule.CardBeats(c, pl.Card, led) {
					beatsAll = false
					break
				}
			}
			if beatsAll {
				winning = append(winning, c)
			}
		}
	}

	if len(winning) > 0 {
		return hand.PlayCard(weakest(winning))
	}
	return hand.PlayCard(cheapest(legal))
}

// weakest is the lowest-powered of a set of cards that can all win.
func weakest(cards []card.Card) card.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if power(c) < power(best) {
			best = c
		}
	}
	return best
}

// cheapest gives away the fewest points, breaking ties toward lower power.
func cheapest(cards []card.Card) card.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Points() < best.Points() ||
			(c.Points() == best.Points() && power(c) < power(best)) {
			best = c
		}
	}
	return best
}

func power(c card.Card) int {
	if c.IsTrump() {
		return 6 + c.TrumpPower()
	}
	return c.FailPower()
}
