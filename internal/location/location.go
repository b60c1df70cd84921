// Package location wires the balance tables into live locations: each
// location owns its built action set, answers availability questions, and
// the registry computes travel routes along the city line.
package location

import (
	"fmt"
	"log"
	"sort"

	"github.com/kozlovfedor-boop/get-off-the-street/internal/action"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/balance"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/clock"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/model"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/player"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/reputation"
)

// Location is one place on the map with its built actions.
type Location struct {
	ID          model.LocationID
	Name        string
	Description string

	cfg     *balance.Config
	actions map[model.ActionKind]action.Action
	configs map[model.ActionKind]balance.ActionConfig
}

// Action returns the built action of the given kind, if the location
// offers it.
func (l *Location) Action(kind model.ActionKind) (action.Action, bool) {
	a, ok := l.actions[kind]
	return a, ok
}

// ActionKinds lists the offered actions in a stable order.
func (l *Location) ActionKinds() []model.ActionKind {
	kinds := make([]model.ActionKind, 0, len(l.actions))
	for k := range l.actions {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Availability answers whether an action can start here and now. Refusals
// come back as data with a reason the presenter can show verbatim.
func (l *Location) Availability(kind model.ActionKind, p *player.Player, ledger *reputation.Ledger, clk *clock.TimeManager) model.Availability {
	ac, ok := l.configs[kind]
	if !ok {
		return model.Unavailable(fmt.Sprintf("You can't %s here.", kind))
	}

	if len(ac.TimeWindows) > 0 {
		open := false
		for _, w := range ac.TimeWindows {
			if clk.IsBetween(w.Start, w.End) {
				open = true
				break
			}
		}
		if !open {
			return model.Unavailable(fmt.Sprintf("%s: closed at %s. Open %s.", l.Name, clk.Format(), formatWindows(ac.TimeWindows)))
		}
	}

	for faction, tier := range ac.Gating.MinTier {
		if !ledger.AtLeast(faction, tier) {
			return model.Unavailable(fmt.Sprintf("Your standing with the %s is too low.", faction))
		}
	}

	if ac.Gating.Afford > 0 && p.Money < ac.Gating.Afford {
		return model.Unavailable(fmt.Sprintf("You need at least £%d.", ac.Gating.Afford))
	}

	return model.Available()
}

func formatWindows(windows []balance.Window) string {
	parts := ""
	for i, w := range windows {
		if i > 0 {
			parts += ", "
		}
		parts += fmt.Sprintf("%02d:00-%02d:00", w.Start, w.End)
	}
	return parts
}

// Registry holds every location, built once from the balance table.
type Registry struct {
	cfg       *balance.Config
	locations map[model.LocationID]*Location
	names     map[model.LocationID]string
}

// NewRegistry builds all locations and their actions. An action whose
// config names an unknown event is logged and skipped rather than taking
// the whole registry down.
func NewRegistry(cfg *balance.Config, logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	r := &Registry{
		cfg:       cfg,
		locations: make(map[model.LocationID]*Location, len(cfg.Locations)),
		names:     make(map[model.LocationID]string, len(cfg.Locations)),
	}
	for id, lc := range cfg.Locations {
		loc := &Location{
			ID:          id,
			Name:        lc.Name,
			Description: lc.Description,
			cfg:         cfg,
			actions:     make(map[model.ActionKind]action.Action, len(lc.Actions)),
			configs:     make(map[model.ActionKind]balance.ActionConfig, len(lc.Actions)),
		}
		for kind, ac := range lc.Actions {
			a, err := action.Build(cfg, kind, ac)
			if err != nil {
				logger.Printf("location %s: skipping action %s: %v", id, kind, err)
				continue
			}
			loc.actions[kind] = a
			loc.configs[kind] = ac
		}
		r.locations[id] = loc
		r.names[id] = lc.Name
	}
	return r
}

// Get returns the location by id.
func (r *Registry) Get(id model.LocationID) (*Location, bool) {
	l, ok := r.locations[id]
	return l, ok
}

// Names maps every location id to its display name.
func (r *Registry) Names() map[model.LocationID]string { return r.names }

// IDs lists the locations in their order along the city line.
func (r *Registry) IDs() []model.LocationID { return r.cfg.Travel.Order }

// Path computes the hop list from one location to another along the city
// line, origin included, and the direction of travel.
func (r *Registry) Path(from, to model.LocationID) ([]model.LocationID, string, error) {
	if from == to {
		return nil, "", fmt.Errorf("already at %s", from)
	}
	fromIdx, toIdx := -1, -1
	for i, id := range r.cfg.Travel.Order {
		if id == from {
			fromIdx = i
		}
		if id == to {
			toIdx = i
		}
	}
	if fromIdx < 0 {
		return nil, "", fmt.Errorf("unknown location %q", from)
	}
	if toIdx < 0 {
		return nil, "", fmt.Errorf("unknown location %q", to)
	}

	direction := "right"
	step := 1
	if toIdx < fromIdx {
		direction = "left"
		step = -1
	}
	var path []model.LocationID
	for i := fromIdx; i != toIdx; i += step {
		path = append(path, r.cfg.Travel.Order[i])
	}
	path = append(path, to)
	return path, direction, nil
}

// Travel builds the journey action between two locations.
func (r *Registry) Travel(from, to model.LocationID) (*action.Travel, error) {
	path, direction, err := r.Path(from, to)
	if err != nil {
		return nil, err
	}
	return action.NewTravel(r.cfg, to, path, r.names, direction), nil
}
