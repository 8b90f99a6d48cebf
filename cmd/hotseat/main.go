// Command hotseat plays a local game against the house bots: one human
// seat at the terminal, the AI policy everywhere else.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/JohnLemonNFT/sheepshead-sub000/internal/ai"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/card"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/deck"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/hand"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/score"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/variant"
)

func main() {
	players := flag.Int("players", 5, "players at the table (3, 4 or 5)")
	partner := flag.String("variant", "", "partner variant: calledAce, jackOfDiamonds, alone")
	cracking := flag.Bool("cracking", false, "allow cracking")
	blitzing := flag.Bool("blitzing", false, "allow blitzing (needs cracking)")
	forced := flag.Bool("forced-pick", false, "dealer must pick instead of leaster")
	seed := flag.Int64("seed", 0, "deal seed, 0 for random")
	hands := flag.Int("hands", 0, "hands to play, 0 for until quit")
	flag.Parse()

	cfg, err := buildConfig(*players, *partner, *cracking, *blitzing, *forced)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}

	game := &hotseatGame{
		cfg:    cfg,
		bots:   &ai.Policy{},
		input:  bufio.NewScanner(os.Stdin),
		names:  seatNames(cfg.Players),
		totals: make([]int, cfg.Players),
		seed:   *seed,
	}
	game.run(*hands)
}

func buildConfig(players int, partner string, cracking, blitzing, forced bool) (variant.Config, error) {
	var cfg variant.Config
	switch players {
	case 3:
		cfg = variant.ThreeHanded()
	case 4:
		cfg = variant.FourHanded()
	case 5:
		cfg = variant.FiveHanded()
	default:
		return cfg, fmt.Errorf("unsupported player count: %d", players)
	}

	switch partner {
	case "":
	case "calledAce":
		cfg.Partner = variant.CalledAce
	case "jackOfDiamonds":
		cfg.Partner = variant.JackOfDiamonds
	case "alone":
		cfg.Partner = variant.Alone
	default:
		return cfg, fmt.Errorf("unknown variant: %s", partner)
	}

	cfg.Cracking = cracking
	cfg.Blitzing = blitzing
	if forced {
		cfg.NoPick = variant.ForcedPick
	}
	return cfg, cfg.Validate()
}

func seatNames(players int) []string {
	names := []string{"You"}
	for i := 1; i < players; i++ {
		names = append(names, fmt.Sprintf("Bot %d", i))
	}
	return names
}

// hotseatGame drives hands locally: seat 0 is the terminal, every other
// seat the policy.
type hotseatGame struct {
	cfg    variant.Config
	bots   *ai.Policy
	input  *bufio.Scanner
	names  []string
	totals []int
	seed   int64
	dealer int
}

const humanSeat = 0

func (g *hotseatGame) run(maxHands int) {
	for handNum := 1; maxHands == 0 || handNum <= maxHands; handNum++ {
		seed := g.seed
		if seed == 0 {
			seed = rand.Int64()
		} else {
			seed += int64(handNum)
		}

		fmt.Printf("\n%s\n", titleStyle(fmt.Sprintf("=== hand %d, %s deals ===", handNum, g.names[g.dealer])))
		st := hand.NewHand(g.cfg, g.dealer, seed)

		if !g.playHand(st) {
			return
		}

		hs := score.Calculate(st)
		for i, d := range hs.Deltas {
			g.totals[i] += d
		}
		fmt.Println(renderResult(st, hs, g.names, g.totals))
		st.CompleteScoring()
		g.dealer = deck.NextDealer(g.dealer, g.cfg.Players)

		if maxHands == 0 && !g.confirm("another hand? [Y/n] ") {
			return
		}
	}
}

// playHand runs one hand to the scoring phase. Returns false when the
// human quit.
func (g *hotseatGame) playHand(st *hand.State) bool {
	for st.Phase != hand.PhaseScoring && st.Phase != hand.PhaseGameOver {
		seat := st.Current

		var a hand.Action
		var err error
		if seat == humanSeat {
			fmt.Println(renderTable(st, g.names, humanSeat))
			a, err = g.prompt(st)
			if err != nil {
				return false // EOF or quit
			}
		} else {
			a, err = g.bots.Propose(st, seat)
			if err != nil {
				fmt.Fprintln(os.Stderr, errorStyle.Render("bot stuck: "+err.Error()))
				return false
			}
		}

		if err := st.Apply(seat, a); err != nil {
			if seat == humanSeat {
				fmt.Println(errorStyle.Render(err.Error()))
				continue
			}
			fmt.Fprintln(os.Stderr, errorStyle.Render("bot action rejected: "+err.Error()))
			return false
		}

		if seat != humanSeat {
			g.announce(seat, a)
		}
	}
	return true
}

// announce tells the human what a bot just did, keeping hidden actions
// hidden.
func (g *hotseatGame) announce(seat int, a hand.Action) {
	name := g.names[seat]
	switch a.Type {
	case hand.ActionPlayCard:
		fmt.Printf("%s plays %s\n", name, renderCard(a.Card))
	case hand.ActionBury:
		fmt.Printf("%s buries %d cards\n", name, len(a.Cards))
	case hand.ActionCallAce:
		fmt.Printf("%s calls the %s ace\n", name, a.Suit)
	case hand.ActionCallTen:
		fmt.Printf("%s calls the %s ten\n", name, a.Suit)
	default:
		fmt.Printf("%s: %s\n", name, a.Type)
	}
}

// prompt reads one action from the terminal for the current phase.
func (g *hotseatGame) prompt(st *hand.State) (hand.Action, error) {
	for {
		fmt.Print(promptStyle.Render(g.promptText(st)))
		if !g.input.Scan() {
			return hand.Action{}, fmt.Errorf("input closed")
		}
		line := strings.TrimSpace(g.input.Text())
		if line == "quit" || line == "q" {
			return hand.Action{}, fmt.Errorf("quit")
		}

		a, err := parseAction(st, line)
		if err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			continue
		}
		return a, nil
	}
}

func (g *hotseatGame) promptText(st *hand.State) string {
	switch st.Phase {
	case hand.PhasePicking:
		return "pick or pass? "
	case hand.PhaseCracking:
		if st.Seats[humanSeat].IsPicker || st.Seats[humanSeat].IsPartner {
			return "recrack or no? "
		}
		return "crack or no? "
	case hand.PhaseBurying:
		if st.CanBlitz() {
			return "bury <cards> or blitz? "
		}
		return fmt.Sprintf("bury %d cards (e.g. bury QC 10H): ", st.Config.BlindSize)
	case hand.PhaseCalling:
		return "call <suit>, call10 <suit>, or alone? "
	default:
		return "play <card>: "
	}
}

// parseAction turns a command line into an engine action. Validation stays
// with the engine; this only builds the value.
func parseAction(st *hand.State, line string) (hand.Action, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return hand.Action{}, fmt.Errorf("say something")
	}

	switch strings.ToLower(fields[0]) {
	case "pick":
		return hand.Pick(), nil
	case "pass":
		return hand.Pass(), nil
	case "crack":
		return hand.Crack(), nil
	case "recrack":
		return hand.Recrack(), nil
	case "no", "nocrack":
		return hand.NoCrack(), nil
	case "blitz":
		return hand.Blitz(), nil
	case "alone":
		return hand.GoAlone(), nil
	case "bury":
		cards := make([]card.Card, 0, len(fields)-1)
		for _, f := range fields[1:] {
			c, err := card.Parse(f)
			if err != nil {
				return hand.Action{}, err
			}
			cards = append(cards, c)
		}
		return hand.Bury(cards...), nil
	case "call", "call10":
		if len(fields) < 2 {
			return hand.Action{}, fmt.Errorf("which suit?")
		}
		suit, err := parseSuit(fields[1])
		if err != nil {
			return hand.Action{}, err
		}
		if strings.ToLower(fields[0]) == "call10" {
			return hand.CallTen(suit), nil
		}
		return hand.CallAce(suit), nil
	case "play":
		if len(fields) < 2 {
			return hand.Action{}, fmt.Errorf("which card?")
		}
		c, err := card.Parse(fields[1])
		if err != nil {
			return hand.Action{}, err
		}
		return hand.PlayCard(c), nil
	default:
		// Bare card notation is shorthand for play.
		if c, err := card.Parse(fields[0]); err == nil && st.Phase == hand.PhasePlaying {
			return hand.PlayCard(c), nil
		}
		return hand.Action{}, fmt.Errorf("unrecognized command: %s", fields[0])
	}
}

func parseSuit(s string) (card.Suit, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "C", "CLUBS":
		return card.Clubs, nil
	case "S", "SPADES":
		return card.Spades, nil
	case "H", "HEARTS":
		return card.Hearts, nil
	case "D", "DIAMONDS":
		return card.Diamonds, nil
	default:
		return 0, fmt.Errorf("unrecognized suit: %s", s)
	}
}

func (g *hotseatGame) confirm(prompt string) bool {
	fmt.Print(promptStyle.Render(prompt))
	if !g.input.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(g.input.Text()))
	return answer == "" || answer == "y" || answer == "yes"
}
