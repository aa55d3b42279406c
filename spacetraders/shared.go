package spacetraders

// TraitData is a general characteristic of a faction or a waypoint.
type TraitData struct {
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ShipData struct {
	Symbol       string           `json:"symbol"`
	Nav          NavInfo          `json:"nav"`
	Crew         CrewInfo         `json:"crew"`
	Fuel         FuelInfo         `json:"fuel"`
	Frame        FrameInfo        `json:"frame"`
	Reactor      ReactorInfo      `json:"reactor"`
	Engine       EngineInfo       `json:"engine"`
	Modules      []ModuleInfo     `json:"modules"`
	Mounts       []MountInfo      `json:"mounts"`
	Registration ShipRegistration `json:"registration"`
	Cargo        CargoInfo        `json:"cargo"`
}

func (s ShipData) String() string {
	return pretty(s)
}

type NavInfo struct {
	SystemSymbol   string `json:"systemSymbol"`
	WaypointSymbol string `json:"waypointSymbol"`
	Route          Route  `json:"route"`
	Status         string `json:"status"`
	FlightMode     string `json:"flightMode"`
}

type Route struct {
	Departure   LocationData `json:"departure"`
	Destination LocationData `json:"destination"`
}

type CrewInfo struct {
	Current  int    `json:"current"`
	Capacity int    `json:"capacity"`
	Required int    `json:"required"`
	Rotation string `json:"rotation"`
	Morale   int    `json:"morale"`
	Wages    int    `json:"wages"`
}

type FuelInfo struct {
	Current  int          `json:"current"`
	Capacity int          `json:"capacity"`
	Consumed ConsumedFuel `json:"consumed"`
}

type ConsumedFuel struct {
	Amount    int    `json:"amount"`
	Timestamp string `json:"timestamp"`
}

// ComponentInfo is shared by every installed ship part.
type ComponentInfo struct {
	Symbol       string                `json:"symbol"`
	Name         string                `json:"name"`
	Description  string                `json:"description"`
	Condition    *float64              `json:"condition,omitempty"`
	Requirements ComponentRequirements `json:"requirements"`
}

type ComponentRequirements struct {
	Crew  *int `json:"crew,omitempty"`
	Power *int `json:"power,omitempty"`
	Slots *int `json:"slots,omitempty"`
}

type FrameInfo struct {
	ComponentInfo
	ModuleSlots    int `json:"moduleSlots"`
	MountingPoints int `json:"mountingPoints"`
	FuelCapacity   int `json:"fuelCapacity"`
}

type ReactorInfo struct {
	ComponentInfo
	PowerOutput int `json:"powerOutput"`
}

type EngineInfo struct {
	ComponentInfo
	Speed int `json:"speed"`
}

type ModuleInfo struct {
	ComponentInfo
	Capacity *int `json:"capacity,omitempty"`
}

type MountInfo struct {
	ComponentInfo
	Strength int      `json:"strength"`
	Deposits []string `json:"deposits,omitempty"`
}

// ShipRegistration is the agent a ship is registered to.
type ShipRegistration struct {
	Name          string  `json:"name"`
	FactionSymbol Faction `json:"factionSymbol"`
	Role          string  `json:"role"`
}

type CargoInfo struct {
	Capacity  int         `json:"capacity"`
	Units     int         `json:"units"`
	Inventory []CargoItem `json:"inventory"`
}

type CargoItem struct {
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Units       int    `json:"units"`
}
