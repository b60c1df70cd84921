package telemetry

import (
	"encoding/json"
	"time"
)

type Stats struct {
	Period        string            `json:"period"`
	EventCounts   map[EventType]int `json:"event_counts"`
	ActionsPerDay float64           `json:"actions_per_day"`
	EventsPerDay  float64           `json:"events_per_day"`
	ActionsRun    int               `json:"actions_run"`
	Refusals      int               `json:"refusals"`
	EventsFired   int               `json:"events_fired"`
	ChoicesMade   int               `json:"choices_made"`
	DayTicks      int               `json:"day_ticks"`
	LevelUps      int               `json:"level_ups"`
	GamesWon      int               `json:"games_won"`
	GamesLost     int               `json:"games_lost"`
	ActionsByKind map[string]int    `json:"actions_by_kind"`
	EventsByKind  map[string]int    `json:"events_by_kind"`
}

// CalculateStats computes balance stats from recorded events.
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:        since.Format("2006-01-02"),
		EventCounts:   make(map[EventType]int),
		ActionsByKind: make(map[string]int),
		EventsByKind:  make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventActionStarted:
			stats.ActionsRun++
			if kind, ok := metadata["kind"].(string); ok {
				stats.ActionsByKind[kind]++
			}
		case EventActionRefused:
			stats.Refusals++
		case EventStreetEventFired:
			stats.EventsFired++
			if kind, ok := metadata["kind"].(string); ok {
				stats.EventsByKind[kind]++
			}
		case EventChoiceMade:
			stats.ChoicesMade++
		case EventDayTick:
			stats.DayTicks++
		case EventLevelUp:
			stats.LevelUps++
		case EventGameWon:
			stats.GamesWon++
		case EventGameLost:
			stats.GamesLost++
		}
	}

	if stats.DayTicks > 0 {
		stats.ActionsPerDay = float64(stats.ActionsRun) / float64(stats.DayTicks)
		stats.EventsPerDay = float64(stats.EventsFired) / float64(stats.DayTicks)
	}

	return stats, nil
}
