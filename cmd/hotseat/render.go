package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/card"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/hand"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/score"
)

var (
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	blackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	trumpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// renderCard paints one card: red suits red, black suits black, with a
// trump marker so the flat hand reads at a glance.
func renderCard(c card.Card) string {
	label := " " + c.String() + " "
	style := blackStyle
	if c.Suit == card.Hearts || c.Suit == card.Diamonds {
		style = redStyle
	}
	out := style.Render(label)
	if c.IsTrump() {
		out += trumpStyle.Render("*")
	} else {
		out += " "
	}
	return out
}

func renderCards(cards []card.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, renderCard(c))
	}
	return strings.Join(parts, " ")
}

// renderTable prints the table as seen from the human's seat.
func renderTable(st *hand.State, names []string, humanSeat int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  trick %d/%d", titleStyle("— "+st.Phase.String()+" —"),
		st.TrickNumber+1, st.Config.TricksPerHand())
	if st.Leaster {
		b.WriteString(dimStyle.Render("  [leaster]"))
	}
	if st.Multiplier() > 1 {
		fmt.Fprintf(&b, "  x%d", st.Multiplier())
	}
	b.WriteString("\n")

	for i := range st.Seats {
		marker := "  "
		if i == st.Current {
			marker = promptStyle.Render("> ")
		}
		tag := ""
		if i == st.Dealer {
			tag += " (dealer)"
		}
		if st.Seats[i].IsPicker {
			tag += " (picker)"
		}
		if st.Seats[i].IsPartner && (st.Called == nil || st.Called.Revealed || i == humanSeat) {
			tag += " (partner)"
		}
		fmt.Fprintf(&b, "%s%-18s %d cards, %d tricks%s\n",
			marker, names[i], len(st.Seats[i].Hand), len(st.Seats[i].TricksWon), tag)
	}

	if st.Called != nil {
		status := "hidden"
		if st.Called.Revealed {
			status = "revealed"
		}
		fmt.Fprintf(&b, "called: %s (%s)\n", renderCard(st.Called.Card), status)
	}

	if len(st.CurrentTrick) > 0 {
		b.WriteString("on the table: ")
		for _, p := range st.CurrentTrick {
			fmt.Fprintf(&b, "%s(%s) ", renderCard(p.Card), names[p.Seat])
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "your hand: %s\n", renderCards(st.Seats[humanSeat].Hand))
	return b.String()
}

// renderResult prints a scored hand.
func renderResult(st *hand.State, hs score.HandScore, names []string, totals []int) string {
	var b strings.Builder

	b.WriteString(titleStyle("— hand result —") + "\n")
	if hs.Leaster {
		fmt.Fprintf(&b, "leaster: %s takes it with the fewest points\n", names[hs.LeasterWinner])
	} else {
		verdict := "loses"
		if hs.PickerWins {
			verdict = "wins"
		}
		fmt.Fprintf(&b, "%s %s, %d to %d", names[hs.PickerSeat], verdict, hs.PickerPoints, hs.DefenderPoints)
		if hs.Schwarz {
			b.WriteString("  (schwarz)")
		} else if hs.Schneider {
			b.WriteString("  (schneider)")
		}
		if hs.Multiplier > 1 {
			fmt.Fprintf(&b, "  x%d", hs.Multiplier)
		}
		b.WriteString("\n")
		if len(st.Buried) > 0 {
			fmt.Fprintf(&b, "buried: %s\n", renderCards(st.Buried))
		}
	}

	for i, name := range names {
		fmt.Fprintf(&b, "  %-18s %+d  (total %+d)\n", name, hs.Deltas[i], totals[i])
	}
	return b.String()
}
