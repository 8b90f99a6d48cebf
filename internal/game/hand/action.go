package hand

import (
	"fmt"

	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/card"
)

// ActionType enumerates the eleven kinds of player action.
type ActionType int

const (
	ActionPick ActionType = iota
	ActionPass
	ActionCrack
	ActionRecrack
	ActionNoCrack
	ActionBlitz
	ActionBury
	ActionCallAce
	ActionCallTen
	ActionGoAlone
	ActionPlayCard
)

var actionNames = map[ActionType]string{
	ActionPick:     "pick",
	ActionPass:     "pass",
	ActionCrack:    "crack",
	ActionRecrack:  "recrack",
	ActionNoCrack:  "noCrack",
	ActionBlitz:    "blitz",
	ActionBury:     "bury",
	ActionCallAce:  "callAce",
	ActionCallTen:  "callTen",
	ActionGoAlone:  "goAlone",
	ActionPlayCard: "playCard",
}

func (t ActionType) String() string {
	if name, ok := actionNames[t]; ok {
		return name
	}
	return "unknown"
}

// Action is the tagged value submitted through Apply. Suit is set for calls,
// Card for plays, Cards for the bury.
type Action struct {
	Type  ActionType
	Suit  card.Suit
	Card  card.Card
	Cards []card.Card
}

func (a Action) String() string {
	switch a.Type {
	case ActionPlayCard:
		return fmt.Sprintf("playCard(%v)", a.Card)
	case ActionBury:
		return fmt.Sprintf("bury(%v)", a.Cards)
	case ActionCallAce, ActionCallTen:
		return fmt.Sprintf("%v(%v)", a.Type, a.Suit)
	default:
		return a.Type.String()
	}
}

// Constructors keep call sites terse.

func Pick() Action                    { return Action{Type: ActionPick} }
func Pass() Action                    { return Action{Type: ActionPass} }
func Crack() Action                   { return Action{Type: ActionCrack} }
func Recrack() Action                 { return Action{Type: ActionRecrack} }
func NoCrack() Action                 { return Action{Type: ActionNoCrack} }
func Blitz() Action                   { return Action{Type: ActionBlitz} }
func Bury(cards ...card.Card) Action  { return Action{Type: ActionBury, Cards: cards} }
func CallAce(suit card.Suit) Action   { return Action{Type: ActionCallAce, Suit: suit} }
func CallTen(suit card.Suit) Action   { return Action{Type: ActionCallTen, Suit: suit} }
func GoAlone() Action                 { return Action{Type: ActionGoAlone} }
func PlayCard(c card.Card) Action     { return Action{Type: ActionPlayCard, Card: c} }

// Actor proposes one action for a seat given a state snapshot. Human input,
// the AI policy and the network relay all implement this; the engine never
// branches on which one it is talking to.
type Actor interface {
	Propose(st *State, seat int) (Action, error)
}
