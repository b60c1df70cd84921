package action

import (
	"fmt"

	"github.com/kozlovfedor-boop/get-off-the-street/internal/balance"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/model"
)

// Travel walks the player along the city's line of locations, one hop per
// hour. Built per journey, not from a location's action table.
type Travel struct {
	base

	destination model.LocationID
	path        []model.LocationID
	names       map[model.LocationID]string
	direction   string

	totalHunger int
}

// NewTravel builds a journey along the given path. The path includes the
// origin, so a journey of n hops has n+1 entries.
func NewTravel(cfg *balance.Config, destination model.LocationID, path []model.LocationID, names map[model.LocationID]string, direction string) *Travel {
	hops := len(path) - 1
	if hops < 0 {
		hops = 0
	}
	return &Travel{
		base: base{
			cfg:    cfg,
			config: balance.ActionConfig{TimeCost: hops * cfg.Travel.HoursPerHop},
		},
		destination: destination,
		path:        path,
		names:       names,
		direction:   direction,
	}
}

func (a *Travel) Kind() model.ActionKind { return model.ActionTravel }

// Destination returns where the journey ends.
func (a *Travel) Destination() model.LocationID { return a.destination }

// Direction reports "left" or "right" along the city line.
func (a *Travel) Direction() string { return a.direction }

// Path returns the full hop list including the origin.
func (a *Travel) Path() []model.LocationID { return a.path }

func (a *Travel) Begin(rt *Runtime) Result {
	r := a.cfg.Travel.HungerCost
	a.totalHunger = rt.RNG.Range(r.Min, r.Max)
	a.buildSchedule(a.config.TimeCost, model.StatDelta{Hunger: -a.totalHunger})

	return Result{
		Kind:     model.ActionTravel,
		Message:  fmt.Sprintf("Traveling to %s...", a.names[a.destination]),
		LogType:  model.LogNeutral,
		TimeCost: a.config.TimeCost,
	}
}

func (a *Travel) LogMessage(hourIndex, totalHours int, stats model.StatDelta) (string, model.LogType) {
	segment := hourIndex + 1
	if segment >= len(a.path) {
		segment = len(a.path) - 1
	}
	at := a.names[a.path[segment]]
	if hourIndex < totalHours-1 {
		return fmt.Sprintf("Passing through %s. Hunger %d", at, stats.Hunger), model.LogNeutral
	}
	return fmt.Sprintf("Arrived at %s. Total hunger -%d", at, a.totalHunger), model.LogNeutral
}

func (a *Travel) Preview() model.Preview {
	return model.Preview{
		TimeCost: a.config.TimeCost,
		Money:    "none",
		Health:   "none",
		Hunger:   "low",
		Risk:     a.riskLevel(),
		Notes:    fmt.Sprintf("Travel to %s", a.names[a.destination]),
	}
}
