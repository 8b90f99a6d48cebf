// Package view projects the authoritative hand state into what one seat is
// allowed to see. The engine always works on full truth; redaction lives
// entirely at this boundary.
package view

import (
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/card"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/hand"
)

// CardDTO is a card in wire form.
type CardDTO struct {
	Suit  int    `json:"suit"`
	Rank  int    `json:"rank"`
	Label string `json:"label"`
}

// PlayDTO is one play within a trick.
type PlayDTO struct {
	Card CardDTO `json:"card"`
	Seat int     `json:"seat"`
}

// TrickDTO is a completed trick.
type TrickDTO struct {
	Plays  []PlayDTO `json:"plays"`
	Winner int       `json:"winner"`
}

// SeatView is what a viewer learns about any seat, including their own.
type SeatView struct {
	Position    int  `json:"position"`
	CardsLeft   int  `json:"cards_left"`
	TricksWon   int  `json:"tricks_won"`
	IsPicker    bool `json:"is_picker"`
	IsPartner   bool `json:"is_partner"`              // false until the called card is revealed
	PointsTaken int  `json:"points_taken,omitempty"` // only from scoring onward
}

// CalledDTO is the public half of the partner designation: which card was
// called and whether it has hit the table. Never who holds it.
type CalledDTO struct {
	Card     CardDTO `json:"card"`
	Revealed bool    `json:"revealed"`
}

// StateView is the redacted state for one requesting seat.
type StateView struct {
	Phase       string `json:"phase"`
	Dealer      int    `json:"dealer"`
	Current     int    `json:"current"`
	Picker      int    `json:"picker"`
	PartnerSeat int    `json:"partner_seat"` // -1 until revealed
	Alone       bool   `json:"alone"`
	Leaster     bool   `json:"leaster"`
	Multiplier  int    `json:"multiplier"`
	TrickNumber int    `json:"trick_number"`
	BlindSize   int    `json:"blind_size"`

	Viewer int       `json:"viewer"`
	Hand   []CardDTO `json:"hand"`

	Seats        []SeatView `json:"seats"`
	CurrentTrick []PlayDTO  `json:"current_trick"`
	Tricks       []TrickDTO `json:"tricks"`

	Called *CalledDTO `json:"called,omitempty"`
	Buried []CardDTO  `json:"buried,omitempty"` // only from scoring onward

	LegalPlays    []CardDTO `json:"legal_plays,omitempty"`
	CallableSuits []int     `json:"callable_suits,omitempty"`
}

// For builds the view of st as seen from seat. It is a pure projection; the
// state is never mutated.
func For(st *hand.State, seat int) *StateView {
	scored := st.Phase == hand.PhaseScoring || st.Phase == hand.PhaseGameOver
	revealed := st.Called != nil && st.Called.Revealed

	v := &StateView{
		Phase:       st.Phase.String(),
		Dealer:      st.Dealer,
		Current:     st.Current,
		Picker:      st.Picker,
		PartnerSeat: -1,
		Alone:       st.Alone,
		Leaster:     st.Leaster,
		Multiplier:  st.Multiplier(),
		TrickNumber: st.TrickNumber,
		BlindSize:   len(st.Blind),
		Viewer:      seat,
		Hand:        toCards(st.Seats[seat].Hand),
	}

	if revealed || scored {
		v.PartnerSeat = st.PartnerSeat()
	}

	for i := range st.Seats {
		sv := SeatView{
			Position:  i,
			CardsLeft: len(st.Seats[i].Hand),
			TricksWon: len(st.Seats[i].TricksWon),
			IsPicker:  st.Seats[i].IsPicker,
			IsPartner: st.Seats[i].IsPartner && (revealed || scored || i == seat),
		}
		if scored {
			pts := 0
			for _, t := range st.Seats[i].TricksWon {
				for _, p := range t.Plays {
					pts += p.Card.Points()
				}
			}
			sv.PointsTaken = pts
		}
		v.Seats = append(v.Seats, sv)
	}

	for _, p := range st.CurrentTrick {
		v.CurrentTrick = append(v.CurrentTrick, PlayDTO{Card: toCard(p.Card), Seat: p.Seat})
	}
	for _, t := range st.Completed {
		td := TrickDTO{Winner: t.Winner}
		for _, p := range t.Plays {
			td.Plays = append(td.Plays, PlayDTO{Card: toCard(p.Card), Seat: p.Seat})
		}
		v.Tricks = append(v.Tricks, td)
	}

	if st.Called != nil {
		v.Called = &CalledDTO{Card: toCard(st.Called.Card), Revealed: st.Called.Revealed}
	}
	if scored {
		v.Buried = toCards(st.Buried)
	}

	v.LegalPlays = toCards(st.LegalPlaysFor(seat))
	if seat == st.Picker {
		for _, s := range st.CallableSuitsForPicker() {
			v.CallableSuits = append(v.CallableSuits, int(s))
		}
	}

	return v
}

func toCard(c card.Card) CardDTO {
	return CardDTO{Suit: int(c.Suit), Rank: int(c.Rank), Label: c.String()}
}

func toCards(cards []card.Card) []CardDTO {
	out := make([]CardDTO, 0, len(cards))
	for _, c := range cards {
		out = append(out, toCard(c))
	}
	return out
}

// FromDTO converts a wire card back into the domain value.
func FromDTO(d CardDTO) card.Card {
	return card.Card{Suit: card.Suit(d.Suit), Rank: card.Rank(d.Rank)}
}
