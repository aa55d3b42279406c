package spacetraders

import "encoding/json"

// RegistrationData is returned when a new agent is registered.
type RegistrationData struct {
	// Token is the bearer token for the new agent
	Token    string       `json:"token"`
	Agent    AgentData    `json:"agent"`
	Contract ContractData `json:"contract"`
	Faction  FactionData  `json:"faction"`
	Ship     ShipData     `json:"ship"`
}

func (r RegistrationData) String() string {
	return pretty(r)
}

// AgentData is the basic information about a player agent.
type AgentData struct {
	AccountID string `json:"accountId"`
	// Symbol is the agent's unique callsign
	Symbol string `json:"symbol"`
	// Headquarters is the waypoint symbol of the agent's headquarters
	Headquarters string `json:"headquarters"`
	// Credits can be negative if funds have been overdrawn
	Credits int64 `json:"credits"`
}

func (a AgentData) String() string {
	return pretty(a)
}

type ContractData struct {
	ID            string        `json:"id"`
	FactionSymbol string        `json:"factionSymbol"`
	Type          string        `json:"type"`
	Terms         ContractTerms `json:"terms"`
	Accepted      bool          `json:"accepted"`
	Fulfilled     bool          `json:"fulfilled"`
	Expiration    string        `json:"expiration"`
}

type ContractTerms struct {
	Deadline string         `json:"deadline"`
	Payment  PaymentInfo    `json:"payment"`
	Deliver  []DeliveryInfo `json:"deliver"`
}

type PaymentInfo struct {
	OnAccepted  int64 `json:"onAccepted"`
	OnFulfilled int64 `json:"onFulfilled"`
}

type DeliveryInfo struct {
	TradeSymbol       string `json:"tradeSymbol"`
	DestinationSymbol string `json:"destinationSymbol"`
	UnitsRequired     int    `json:"unitsRequired"`
	UnitsFulfilled    int    `json:"unitsFulfilled"`
}

type FactionData struct {
	Symbol       Faction     `json:"symbol"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Headquarters string      `json:"headquarters"`
	Traits       []TraitData `json:"traits"`
}

// LocationData describes a waypoint. Orbitals, traits, chart and faction are
// missing for waypoints that have not been charted or claimed yet.
type LocationData struct {
	SystemSymbol string           `json:"systemSymbol"`
	Symbol       string           `json:"symbol"`
	Type         string           `json:"type"`
	X            int              `json:"x"`
	Y            int              `json:"y"`
	Orbitals     []map[string]any `json:"orbitals,omitempty"`
	Traits       []TraitData      `json:"traits,omitempty"`
	Chart        map[string]any   `json:"chart,omitempty"`
	Faction      map[string]any   `json:"faction,omitempty"`
}

func (l LocationData) String() string {
	return pretty(l)
}

// pretty dumps v as indented JSON for logs and the cli.
func pretty(v any) string {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(out)
}
