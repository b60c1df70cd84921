package telemetry

import "time"

type EventType string

const (
	EventActionStarted    EventType = "action_started"
	EventActionRefused    EventType = "action_refused"
	EventStreetEventFired EventType = "street_event_fired"
	EventChoiceMade       EventType = "choice_made"
	EventTravelStarted    EventType = "travel_started"
	EventDayTick          EventType = "day_tick"
	EventLevelUp          EventType = "level_up"
	EventGameWon          EventType = "game_won"
	EventGameLost         EventType = "game_lost"
	EventSessionRestarted EventType = "session_restarted"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
