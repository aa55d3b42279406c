package spacetraders

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Faction is one of the allegiances an agent can start with.
type Faction int

const (
	Cosmic Faction = iota
	Void
	Galactic
	Quantum
	Dominion
	Astro
	Corsairs
)

var factionSymbols = [...]string{"COSMIC", "VOID", "GALACTIC", "QUANTUM", "DOMINION", "ASTRO", "CORSAIRS"}

func (f Faction) String() string {
	if f < 0 || int(f) >= len(factionSymbols) {
		return fmt.Sprintf("Faction(%d)", int(f))
	}
	return factionSymbols[f]
}

func (f Faction) valid() bool {
	return f >= 0 && int(f) < len(factionSymbols)
}

// Factions lists every faction in declaration order.
func Factions() []Faction {
	factions := make([]Faction, len(factionSymbols))
	for i := range factionSymbols {
		factions[i] = Faction(i)
	}
	return factions
}

// ParseFaction matches symbol against the known factions ignoring case.
func ParseFaction(symbol string) (Faction, error) {
	upper := strings.ToUpper(strings.TrimSpace(symbol))
	for i, s := range factionSymbols {
		if s == upper {
			return Faction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", InvalidFactionError, symbol)
}

func (f Faction) MarshalJSON() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w: %d", InvalidFactionError, int(f))
	}
	return json.Marshal(f.String())
}

func (f *Faction) UnmarshalJSON(raw []byte) error {
	var symbol string
	if err := json.Unmarshal(raw, &symbol); err != nil {
		return err
	}

	parsed, err := ParseFaction(symbol)
	if err != nil {
		return err
	}

	*f = parsed
	return nil
}
