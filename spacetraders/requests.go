package spacetraders

type RegisterAgentRequest struct {
	Symbol  string  `json:"symbol"`
	Faction Faction `json:"faction"`
}
