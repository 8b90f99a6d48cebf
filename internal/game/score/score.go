package score

import (
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/card"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/hand"
)

// HandScore is the outcome of one scored hand. Deltas always sum to zero;
// the surrounding room accumulates them into the running scores.
type HandScore struct {
	Leaster bool

	PickerSeat  int
	PartnerSeat int // -1 when no partner

	PickerPoints   int // team points including the bury
	DefenderPoints int
	PickerWins     bool

	Schneider bool
	Schwarz   bool

	LeasterWinner int // -1 outside leaster
	Multiplier    int // schneider/schwarz times crack/blitz

	Deltas []int
}

// Calculate scores a hand that has reached the scoring phase. It is a pure
// read over the state; it never mutates.
func Calculate(st *hand.State) HandScore {
	if st.Leaster {
		return scoreLeaster(st)
	}
	return scoreNormal(st)
}

// seatPoints is a seat's own captured points, tricks only.
func seatPoints(st *hand.State, seat int) int {
	pts := 0
	for _, t := range st.Seats[seat].TricksWon {
		for _, p := range t.Plays {
			pts += p.Card.Points()
		}
	}
	return pts
}

func scoreNormal(st *hand.State) HandScore {
	hs := HandScore{
		PickerSeat:    st.Picker,
		PartnerSeat:   st.PartnerSeat(),
		LeasterWinner: -1,
	}

	pickerTricks := 0
	for i := range st.Seats {
		if i == st.Picker || st.Seats[i].IsPartner {
			hs.PickerPoints += seatPoints(st, i)
			pickerTricks += len(st.Seats[i].TricksWon)
		}
	}
	hs.PickerPoints += card.PointSum(st.Buried)
	hs.DefenderPoints = 120 - hs.PickerPoints
	hs.PickerWins = hs.PickerPoints >= 61

	// Schneider and schwarz size up the losing side; schwarz takes
	// precedence and they never stack.
	loserPoints := hs.PickerPoints
	loserTricks := pickerTricks
	if hs.PickerWins {
		loserPoints = hs.DefenderPoints
		loserTricks = len(st.Completed) - pickerTricks
	}
	switch {
	case loserTricks == 0:
		hs.Schwarz = true
	case loserPoints < 31:
		hs.Schneider = true
	}

	hs.Multiplier = st.Multiplier()
	if hs.Schwarz {
		hs.Multiplier *= 3
	} else if hs.Schneider {
		hs.Multiplier *= 2
	}

	hs.Deltas = normalDeltas(st, hs.PickerWins, hs.Multiplier)
	return hs
}

// normalDeltas allocates the zero-sum base stakes and applies the multiplier.
// Each defender stakes 1; the partner stakes 1 on the picker's side; the
// picker covers the rest, which is 2 at a five-handed table. Going alone the
// picker faces every defender's stake by themselves.
func normalDeltas(st *hand.State, pickerWins bool, multiplier int) []int {
	players := st.Config.Players
	deltas := make([]int, players)

	defenders := 0
	for i := range st.Seats {
		if i != st.Picker && !st.Seats[i].IsPartner {
			defenders++
		}
	}

	sign := 1
	if !pickerWins {
		sign = -1
	}

	for i := range st.Seats {
		switch {
		case i == st.Picker && st.Alone:
			deltas[i] = sign * defenders * multiplier
		case i == st.Picker:
			deltas[i] = sign * (defenders - 1) * multiplier
		case st.Seats[i].IsPartner:
			deltas[i] = sign * multiplier
		default:
			deltas[i] = -sign * multiplier
		}
	}
	return deltas
}

func scoreLeaster(st *hand.State) HandScore {
	hs := HandScore{
		Leaster:       true,
		PickerSeat:    -1,
		PartnerSeat:   -1,
		LeasterWinner: leasterWinner(st),
		Multiplier:    1,
	}

	players := st.Config.Players
	hs.Deltas = make([]int, players)
	for i := range hs.Deltas {
		if i == hs.LeasterWinner {
			hs.Deltas[i] = players - 1
		} else {
			hs.Deltas[i] = -1
		}
	}
	return hs
}

// leasterWinner finds the seat with strictly the fewest captured points.
// Ties break to the tied seat that won the most recent trick; a tied seat
// with no tricks at all cannot take the tie-break.
func leasterWinner(st *hand.State) int {
	best := -1
	bestPts := 0
	for i := range st.Seats {
		pts := seatPoints(st, i)
		if best < 0 || pts < bestPts {
			best, bestPts = i, pts
			continue
		}
		if pts == bestPts && lastTrickIndex(st, i) > lastTrickIndex(st, best) {
			best = i
		}
	}
	return best
}

// lastTrickIndex is the position in the completed-trick order of the seat's
// most recent trick win, or -1 if it won none.
func lastTrickIndex(st *hand.State, seat int) int {
	last := -1
	for i, t := range st.Completed {
		if t.Winner == seat {
			last = i
		}
	}
	return last
}
