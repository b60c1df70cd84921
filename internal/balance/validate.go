package balance

import (
	"errors"
	"fmt"
	"sort"

	"github.com/kozlovfedor-boop/get-off-the-street/internal/model"
)

var knownEvents = map[model.EventKind]bool{
	model.EventBonusTip:         true,
	model.EventFindMoney:        true,
	model.EventGenerousStranger: true,
	model.EventFreeResource:     true,
	model.EventPolice:           true,
	model.EventBeatenUp:         true,
	model.EventRobbery:          true,
	model.EventSickness:         true,
	model.EventWeather:          true,
	model.EventNightmare:        true,
	model.EventWorkAccident:     true,
}

// Validate checks the structural invariants the engine relies on. It returns
// the first violation found; a nil error means the table is safe to run.
func (c *Config) Validate() error {
	if err := c.validateTiers(); err != nil {
		return err
	}
	if err := c.validatePresets(); err != nil {
		return err
	}
	if err := c.validateLocations(); err != nil {
		return err
	}
	if err := c.validateTravel(); err != nil {
		return err
	}
	if c.Level.MaxLevel < 1 {
		return errors.New("level_system: max_level must be at least 1")
	}
	if c.Level.BaseXP <= 0 || c.Level.XPMultiplier <= 0 {
		return errors.New("level_system: base_xp and xp_multiplier must be positive")
	}
	return nil
}

// validateTiers enforces the partition invariant: the bands must cover
// [0,100] contiguously with no gaps or overlaps.
func (c *Config) validateTiers() error {
	tiers := c.Reputation.Tiers
	if len(tiers) == 0 {
		return errors.New("reputation_system: no tiers defined")
	}
	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Min < sorted[j].Min })

	if sorted[0].Min != 0 {
		return fmt.Errorf("reputation_system: tiers must start at 0, got %d", sorted[0].Min)
	}
	for i, t := range sorted {
		if t.Max < t.Min {
			return fmt.Errorf("reputation_system: tier %q has max < min", t.Name)
		}
		if i > 0 && t.Min != sorted[i-1].Max+1 {
			return fmt.Errorf("reputation_system: gap or overlap between %q and %q", sorted[i-1].Name, t.Name)
		}
	}
	if last := sorted[len(sorted)-1]; last.Max != 100 {
		return fmt.Errorf("reputation_system: tiers must end at 100, got %d", last.Max)
	}
	return nil
}

func (c *Config) validatePresets() error {
	levels := []PresetLevel{PresetLow, PresetMedium, PresetHigh}
	rangeTables := map[string]map[PresetLevel]Range{
		"action.earnings":   c.Presets.Action.Earnings,
		"action.health":     c.Presets.Action.Health,
		"action.hunger":     c.Presets.Action.Hunger,
		"action.food":       c.Presets.Action.Food,
		"action.cost":       c.Presets.Action.Cost,
		"action.reward":     c.Presets.Action.Reward,
		"event.money_loss":  c.Presets.Event.MoneyLoss,
		"event.money_gain":  c.Presets.Event.MoneyGain,
		"event.health_loss": c.Presets.Event.HealthLoss,
		"event.hunger_loss": c.Presets.Event.HungerLoss,
		"event.hunger_gain": c.Presets.Event.HungerGain,
	}
	for name, table := range rangeTables {
		for _, l := range levels {
			r, ok := table[l]
			if !ok {
				return fmt.Errorf("presets: %s missing level %q", name, l)
			}
			if r.Max < r.Min {
				return fmt.Errorf("presets: %s[%s] has max < min", name, l)
			}
		}
	}
	for _, l := range levels {
		p, ok := c.Presets.Event.Chance[l]
		if !ok {
			return fmt.Errorf("presets: event.chance missing level %q", l)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("presets: event.chance[%s] out of [0,1]", l)
		}
		if _, ok := c.Presets.Reputation[l]; !ok {
			return fmt.Errorf("presets: reputation missing level %q", l)
		}
	}
	return nil
}

func (c *Config) validateLocations() error {
	if len(c.Locations) == 0 {
		return errors.New("locations: none defined")
	}
	for locID, loc := range c.Locations {
		for kind, action := range loc.Actions {
			if action.TimeCost < 0 {
				return fmt.Errorf("locations.%s.%s: negative time_cost", locID, kind)
			}
			for _, ev := range action.Events {
				if !knownEvents[ev.Type] {
					return fmt.Errorf("locations.%s.%s: unknown event type %q", locID, kind, ev.Type)
				}
			}
			for faction, effect := range action.Reputation {
				if _, _, err := effect.Parse(); err != nil {
					return fmt.Errorf("locations.%s.%s: reputation[%s]: %w", locID, kind, faction, err)
				}
			}
		}
	}
	return nil
}

func (c *Config) validateTravel() error {
	if len(c.Travel.Order) < 2 {
		return errors.New("travel: order needs at least two locations")
	}
	if c.Travel.HoursPerHop < 1 {
		return errors.New("travel: hours_per_hop must be at least 1")
	}
	for _, id := range c.Travel.Order {
		if _, ok := c.Locations[id]; !ok {
			return fmt.Errorf("travel: order references unknown location %q", id)
		}
	}
	return nil
}
