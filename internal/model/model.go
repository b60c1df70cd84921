// Package model holds the shared vocabulary of the simulation: action and
// event kinds, location and faction ids, stat deltas, log entries and the
// choice prompts the engine hands to a presenter.
package model

// ActionKind identifies one of the closed set of player actions.
type ActionKind string

const (
	ActionWork      ActionKind = "work"
	ActionPanhandle ActionKind = "panhandle"
	ActionSteal     ActionKind = "steal"
	ActionSleep     ActionKind = "sleep"
	ActionFindFood  ActionKind = "food"
	ActionEat       ActionKind = "eat"
	ActionBuyFood   ActionKind = "buy_food"
	ActionTravel    ActionKind = "travel"
)

// EventKind identifies one of the closed set of random events.
type EventKind string

const (
	EventBonusTip         EventKind = "bonus_tip"
	EventFindMoney        EventKind = "find_money"
	EventGenerousStranger EventKind = "generous_stranger"
	EventFreeResource     EventKind = "free_resource"
	EventPolice           EventKind = "police"
	EventBeatenUp         EventKind = "beaten_up"
	EventRobbery          EventKind = "robbery"
	EventSickness         EventKind = "sickness"
	EventWeather          EventKind = "weather"
	EventNightmare        EventKind = "nightmare"
	EventWorkAccident     EventKind = "work_accident"
)

// LocationID identifies a place on the map.
type LocationID string

const (
	LocShelter LocationID = "shelter"
	LocPark    LocationID = "park"
	LocCamden  LocationID = "camden-town"
	LocLondon  LocationID = "london-city"
)

// FactionID identifies a reputation faction.
type FactionID string

const (
	FactionPolice   FactionID = "police"
	FactionLocals   FactionID = "locals"
	FactionShelter  FactionID = "shelter"
	FactionBusiness FactionID = "business"
)

// LogType colors a log line for the presenter.
type LogType string

const (
	LogPositive LogType = "positive"
	LogNegative LogType = "negative"
	LogNeutral  LogType = "neutral"
)

// StatDelta is a signed change to the player's three resources.
type StatDelta struct {
	Money  int `json:"money"`
	Health int `json:"health"`
	Hunger int `json:"hunger"`
}

// IsZero reports whether the delta changes nothing.
func (d StatDelta) IsZero() bool {
	return d.Money == 0 && d.Health == 0 && d.Hunger == 0
}

// LogEntry is one narration line with its in-game timestamp.
type LogEntry struct {
	Message string  `json:"message"`
	Type    LogType `json:"type"`
	Day     int     `json:"day"`
	Hour    int     `json:"hour"`
}

// Choice is one selectable option on an event prompt.
type Choice struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Variant string `json:"variant,omitempty"` // "safe", "danger" or empty
}

// Prompt is what the presenter shows when an event fires and the
// simulation suspends for a decision.
type Prompt struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Choices     []Choice `json:"choices"`
}

// Availability is the structured answer to "can I do this here, now?".
// Refusals are data, not errors.
type Availability struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// Available is the always-yes availability.
func Available() Availability { return Availability{Available: true} }

// Unavailable builds a refusal with a reason.
func Unavailable(reason string) Availability {
	return Availability{Available: false, Reason: reason}
}

// Preview summarizes an action for pre-commit display. Effect fields are
// semantic levels ("low", "medium", "high", "none"), never exact numbers.
type Preview struct {
	TimeCost int    `json:"time_cost"`
	Money    string `json:"money"`
	Health   string `json:"health"`
	Hunger   string `json:"hunger"`
	Risk     string `json:"risk"`
	Notes    string `json:"notes,omitempty"`
}
