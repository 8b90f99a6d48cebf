package variant

import "fmt"

// PartnerVariant selects how the picker's partner is designated.
type PartnerVariant int

const (
	// CalledAce: the picker calls a fail ace; whoever holds it is the partner.
	CalledAce PartnerVariant = iota
	// JackOfDiamonds: whoever holds the J♦ is the partner, no calling phase.
	JackOfDiamonds
	// Alone: no partner exists, the picker always plays solo.
	Alone
)

var partnerNames = map[PartnerVariant]string{
	CalledAce:      "calledAce",
	JackOfDiamonds: "jackOfDiamonds",
	Alone:          "alone",
}

func (p PartnerVariant) String() string {
	if name, ok := partnerNames[p]; ok {
		return name
	}
	return "unknown"
}

// NoPickRule selects what happens when every seat passes.
type NoPickRule int

const (
	// Leaster: play out the hand with no picker; fewest points wins.
	Leaster NoPickRule = iota
	// ForcedPick: the dealer is forced into the picker role.
	ForcedPick
)

var noPickNames = map[NoPickRule]string{
	Leaster:    "leaster",
	ForcedPick: "forcedPick",
}

func (n NoPickRule) String() string {
	if name, ok := noPickNames[n]; ok {
		return name
	}
	return "unknown"
}

// Config is the full rule configuration for a table. The state machine
// consults it at fixed decision points; it introduces no new phases of its own.
type Config struct {
	Players        int
	CardsPerPlayer int
	BlindSize      int

	Partner  PartnerVariant
	NoPick   NoPickRule
	Cracking bool
	Blitzing bool // only has effect when Cracking is enabled
}

// FiveHanded is the standard table: 5 players, 6 cards each, 2 in the blind.
func FiveHanded() Config {
	return Config{
		Players:        5,
		CardsPerPlayer: 6,
		BlindSize:      2,
		Partner:        CalledAce,
		NoPick:         Leaster,
	}
}

// FourHanded deals the whole deck with no blind; the picker plays without a
// bury and partners via the J♦.
func FourHanded() Config {
	return Config{
		Players:        4,
		CardsPerPlayer: 8,
		BlindSize:      0,
		Partner:        JackOfDiamonds,
		NoPick:         Leaster,
	}
}

// ThreeHanded: 10 cards each, 2 in the blind, no partner.
func ThreeHanded() Config {
	return Config{
		Players:        3,
		CardsPerPlayer: 10,
		BlindSize:      2,
		Partner:        Alone,
		NoPick:         Leaster,
	}
}

// Validate rejects configurations that cannot partition the 32-card deck or
// combine toggles incoherently.
func (c Config) Validate() error {
	if c.Players < 3 || c.Players > 5 {
		return fmt.Errorf("unsupported player count: %d", c.Players)
	}
	if c.Players*c.CardsPerPlayer+c.BlindSize != 32 {
		return fmt.Errorf("deal does not exhaust deck: %d players x %d cards + %d blind != 32",
			c.Players, c.CardsPerPlayer, c.BlindSize)
	}
	if c.Partner == CalledAce && c.Players < 4 {
		return fmt.Errorf("called-ace partner requires at least 4 players")
	}
	if c.Blitzing && !c.Cracking {
		return fmt.Errorf("blitzing requires cracking")
	}
	return nil
}

// TricksPerHand is the number of tricks a full hand plays out.
func (c Config) TricksPerHand() int {
	return c.CardsPerPlayer
}

// HasPartner reports whether this configuration ever designates a partner.
func (c Config) HasPartner() bool {
	return c.Partner != Alone
}
