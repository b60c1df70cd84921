package engine

import (
	"github.com/kozlovfedor-boop/get-off-the-street/internal/model"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/player"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/reputation"
)

// ActionInfo describes one action offered at the current location, with
// its availability and preview.
type ActionInfo struct {
	Kind         model.ActionKind   `json:"kind"`
	Availability model.Availability `json:"availability"`
	Preview      model.Preview      `json:"preview"`
}

// State is the full presenter-facing snapshot of a session.
type State struct {
	Player       player.State              `json:"player"`
	Factions     []reputation.FactionState `json:"factions"`
	Location     model.LocationID          `json:"location"`
	LocationName string                    `json:"location_name"`
	Description  string                    `json:"description"`
	Hour         int                       `json:"hour"`
	TimeDisplay  string                    `json:"time_display"`
	Period       string                    `json:"period"`
	Actions      []ActionInfo              `json:"actions"`
	Destinations []Destination             `json:"destinations"`
	Busy         bool                      `json:"busy"`
	GameOver     bool                      `json:"game_over"`
	Victory      bool                      `json:"victory"`
}

// Destination is a place the player could travel to from here.
type Destination struct {
	ID        model.LocationID `json:"id"`
	Name      string           `json:"name"`
	Hops      int              `json:"hops"`
	Direction string           `json:"direction"`
}

// Snapshot captures the current state for display.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		Player:      s.player.Snapshot(),
		Factions:    s.ledger.Snapshot(),
		Location:    s.location,
		Hour:        s.clock.Hour(),
		TimeDisplay: s.clock.Format(),
		Period:      s.clock.Period(),
		Busy:        s.busy,
		GameOver:    s.gameOver,
		Victory:     s.victory,
	}

	loc, ok := s.registry.Get(s.location)
	if !ok {
		return st
	}
	st.LocationName = loc.Name
	st.Description = loc.Description

	for _, kind := range loc.ActionKinds() {
		a, _ := loc.Action(kind)
		st.Actions = append(st.Actions, ActionInfo{
			Kind:         kind,
			Availability: loc.Availability(kind, s.player, s.ledger, s.clock),
			Preview:      a.Preview(),
		})
	}

	for _, id := range s.registry.IDs() {
		if id == s.location {
			continue
		}
		path, dir, err := s.registry.Path(s.location, id)
		if err != nil {
			continue
		}
		st.Destinations = append(st.Destinations, Destination{
			ID:        id,
			Name:      s.registry.Names()[id],
			Hops:      len(path) - 1,
			Direction: dir,
		})
	}
	return st
}

// History returns a copy of the narration log so far.
func (s *Session) History() []model.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.LogEntry, len(s.history))
	copy(out, s.history)
	return out
}

// GameOver reports whether the playthrough has ended, and how.
func (s *Session) GameOver() (over, victory bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameOver, s.victory
}

// Location returns where the player currently is.
func (s *Session) Location() model.LocationID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location
}
