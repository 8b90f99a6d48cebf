package hand

import (
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/card"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/deck"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/rule"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/variant"
)

// Phase is the hand state machine's current stage.
type Phase int

const (
	PhaseDealing Phase = iota
	PhasePicking
	PhaseCracking
	PhaseBurying
	PhaseCalling
	PhasePlaying
	PhaseScoring
	PhaseGameOver
)

var phaseNames = map[Phase]string{
	PhaseDealing:  "dealing",
	PhasePicking:  "picking",
	PhaseCracking: "cracking",
	PhaseBurying:  "burying",
	PhaseCalling:  "calling",
	PhasePlaying:  "playing",
	PhaseScoring:  "scoring",
	PhaseGameOver: "gameOver",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// Seat is one player position within a hand.
type Seat struct {
	Position  int
	Hand      []card.Card
	TricksWon []Trick
	IsPicker  bool
	IsPartner bool
}

// Trick is a completed trick with its resolved winner.
type Trick struct {
	Plays  []rule.Play
	Winner int
}

// CrackState tracks stake doubling from cracks, recracks and blitzes.
type CrackState struct {
	Cracked    bool
	Blitzed    bool
	Multiplier int
}

// State is the aggregate root for one hand. Exactly one State is live per
// hand; it is created by NewHand and superseded when the next hand is dealt.
// Running scores across hands belong to the surrounding room, not here.
type State struct {
	Config variant.Config
	Seed   int64

	Phase   Phase
	Dealer  int
	Current int
	Picker  int // -1 until someone picks; stays -1 for a leaster
	Alone   bool
	Leaster bool

	Blind      []card.Card
	BlindTaken bool
	Buried     []card.Card

	Seats        []Seat
	CurrentTrick []rule.Play
	Completed    []Trick
	TrickNumber  int

	Called *rule.CalledCard
	Crack  CrackState

	passes     int
	crackQueue []int
}

// NewHand shuffles with the recorded seed, deals, and opens picking with the
// seat left of the dealer.
func NewHand(cfg variant.Config, dealer int, seed int64) *State {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	hands, blind := deck.Deal(deck.Shuffle(seed), cfg.Players, cfg.CardsPerPlayer, cfg.BlindSize)

	seats := make([]Seat, cfg.Players)
	for i := range seats {
		seats[i] = Seat{Position: i, Hand: hands[i]}
	}

	return &State{
		Config:  cfg,
		Seed:    seed,
		Phase:   PhasePicking,
		Dealer:  dealer,
		Current: deck.LeftOf(dealer, cfg.Players),
		Picker:  -1,
		Blind:   blind,
		Seats:   seats,
		Crack:   CrackState{Multiplier: 1},
	}
}

// LegalPlaysFor returns the legal plays for a seat right now, or nil when it
// is not that seat's turn to play a card.
func (st *State) LegalPlaysFor(seat int) []card.Card {
	if st.Phase != PhasePlaying || seat != st.Current {
		return nil
	}
	return rule.LegalPlays(st.Seats[seat].Hand, st.CurrentTrick, st.Called)
}

// CallableSuitsForPicker lists the ace suits the picker may call, computed on
// the post-bury hand.
func (st *State) CallableSuitsForPicker() []card.Suit {
	if st.Phase != PhaseCalling || st.Picker < 0 {
		return nil
	}
	return rule.CallableSuits(st.Seats[st.Picker].Hand)
}

// CanBurySelection pre-validates a bury without applying it.
func (st *State) CanBurySelection(cards []card.Card) (bool, string) {
	if st.Phase != PhaseBurying || st.Picker < 0 {
		return false, "not in the burying phase"
	}
	return rule.ValidateBury(st.Seats[st.Picker].Hand, cards, st.Config.BlindSize, nil)
}

// CanPick reports whether seat may pick right now.
func (st *State) CanPick(seat int) bool {
	return st.Phase == PhasePicking && seat == st.Current
}

// CanBlitz reports whether the picker holds both black queens and the table
// allows blitzing.
func (st *State) CanBlitz() bool {
	if st.Phase != PhaseBurying || !st.Config.Blitzing || st.Crack.Blitzed || st.Picker < 0 {
		return false
	}
	h := st.Seats[st.Picker].Hand
	return card.Contains(h, card.Card{Suit: card.Clubs, Rank: card.RankQ}) &&
		card.Contains(h, card.Card{Suit: card.Spades, Rank: card.RankQ})
}

// Multiplier is the current stake multiplier from cracks and blitzes.
func (st *State) Multiplier() int {
	return st.Crack.Multiplier
}

// PartnerSeat returns the seat holding the called card, or -1. This is the
// ungated truth; redaction for other players happens at the view boundary.
func (st *State) PartnerSeat() int {
	for i := range st.Seats {
		if st.Seats[i].IsPartner {
			return i
		}
	}
	return -1
}

// CompleteScoring moves a scored hand to its terminal phase. The surrounding
// room calls this after it has consumed the hand score.
func (st *State) CompleteScoring() {
	if st.Phase == PhaseScoring {
		st.Phase = PhaseGameOver
	}
}

// TotalCards counts every card tracked by the state. It must always be 32;
// tests assert this after every transition.
func (st *State) TotalCards() int {
	total := len(st.Blind) + len(st.Buried) + len(st.CurrentTrick)
	for i := range st.Seats {
		total += len(st.Seats[i].Hand)
		for _, t := range st.Seats[i].TricksWon {
			total += len(t.Plays)
		}
	}
	return total
}

// Clone deep-copies the state. Queries and speculative previews work on a
// clone so the live state stays exclusively owned by Apply.
func (st *State) Clone() *State {
	cp := *st
	cp.Blind = append([]card.Card(nil), st.Blind...)
	cp.Buried = append([]card.Card(nil), st.Buried...)
	cp.CurrentTrick = append([]rule.Play(nil), st.CurrentTrick...)
	cp.crackQueue = append([]int(nil), st.crackQueue...)
	cp.Completed = cloneTricks(st.Completed)
	cp.Seats = make([]Seat, len(st.Seats))
	for i, s := range st.Seats {
		cp.Seats[i] = Seat{
			Position:  s.Position,
			Hand:      append([]card.Card(nil), s.Hand...),
			TricksWon: cloneTricks(s.TricksWon),
			IsPicker:  s.IsPicker,
			IsPartner: s.IsPartner,
		}
	}
	if st.Called != nil {
		called := *st.Called
		cp.Called = &called
	}
	return &cp
}

func cloneTricks(tricks []Trick) []Trick {
	if tricks == nil {
		return nil
	}
	out := make([]Trick, len(tricks))
	for i, t := range tricks {
		out[i] = Trick{Plays: append([]rule.Play(nil), t.Plays...), Winner: t.Winner}
	}
	return out
}
