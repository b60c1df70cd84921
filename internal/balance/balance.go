// Package balance is the single source of truth for game tuning: per-location
// action tables, event tables, preset ranges, the level curve, the reputation
// tiers and the global constants. The engine consumes it as an immutable
// value; nothing in here mutates after load.
package balance

import (
	"fmt"
	"strings"

	"github.com/kozlovfedor-boop/get-off-the-street/internal/model"
)

// PresetLevel is a semantic magnitude resolved into a numeric range or
// probability through the preset tables.
type PresetLevel string

const (
	PresetNone   PresetLevel = "none"
	PresetLow    PresetLevel = "low"
	PresetMedium PresetLevel = "medium"
	PresetHigh   PresetLevel = "high"
)

// Range is an inclusive integer interval.
type Range struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Window is an hour-of-day interval [Start, End); Start > End wraps midnight.
type Window struct {
	Start int `yaml:"start" json:"start"`
	End   int `yaml:"end" json:"end"`
}

// RepEffect is a signed preset-coded reputation delta, e.g. "+low", "-medium".
type RepEffect string

// Parse splits the effect into its preset level and sign.
func (e RepEffect) Parse() (level PresetLevel, positive bool, err error) {
	s := strings.TrimSpace(string(e))
	if s == "" {
		return "", false, fmt.Errorf("empty reputation effect")
	}
	positive = !strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "+"), "-")
	level = PresetLevel(s)
	switch level {
	case PresetLow, PresetMedium, PresetHigh:
		return level, positive, nil
	default:
		return "", false, fmt.Errorf("unknown reputation effect %q", e)
	}
}

// EventConfig describes one event attached to an action.
type EventConfig struct {
	Type          model.EventKind                   `yaml:"type" json:"type"`
	Chance        PresetLevel                       `yaml:"chance" json:"chance"`
	Severity      PresetLevel                       `yaml:"severity,omitempty" json:"severity,omitempty"`
	Bonus         PresetLevel                       `yaml:"bonus,omitempty" json:"bonus,omitempty"`
	Amount        PresetLevel                       `yaml:"amount,omitempty" json:"amount,omitempty"`
	TimeCondition string                            `yaml:"time_condition,omitempty" json:"time_condition,omitempty"` // "daytime" | "nighttime" | ""
	Faction       model.FactionID                   `yaml:"faction,omitempty" json:"faction,omitempty"`
	Reputation    map[model.FactionID]RepEffect     `yaml:"reputation,omitempty" json:"reputation,omitempty"`
}

// Gating lists preconditions checked before an action may start.
type Gating struct {
	// MinTier requires at least the named tier with each listed faction.
	MinTier map[model.FactionID]string `yaml:"min_tier,omitempty" json:"min_tier,omitempty"`
	// Afford requires at least this much money on hand.
	Afford int `yaml:"afford,omitempty" json:"afford,omitempty"`
}

// ActionConfig is the immutable configuration of one (location, action) pair.
type ActionConfig struct {
	Earnings PresetLevel `yaml:"earnings,omitempty" json:"earnings,omitempty"`
	Health   PresetLevel `yaml:"health,omitempty" json:"health,omitempty"`
	Hunger   PresetLevel `yaml:"hunger,omitempty" json:"hunger,omitempty"`
	Food     PresetLevel `yaml:"food,omitempty" json:"food,omitempty"`
	Cost     PresetLevel `yaml:"cost,omitempty" json:"cost,omitempty"`
	Reward   PresetLevel `yaml:"reward,omitempty" json:"reward,omitempty"`

	TimeCost        int                           `yaml:"time_cost" json:"time_cost"`
	XP              int                           `yaml:"xp,omitempty" json:"xp,omitempty"`
	TimeWindows     []Window                      `yaml:"time_windows,omitempty" json:"time_windows,omitempty"`
	Reputation      map[model.FactionID]RepEffect `yaml:"reputation,omitempty" json:"reputation,omitempty"`
	Gating          Gating                        `yaml:"gating,omitempty" json:"gating,omitempty"`
	DeferredPayment bool                          `yaml:"deferred_payment,omitempty" json:"deferred_payment,omitempty"`
	Events          []EventConfig                 `yaml:"events,omitempty" json:"events,omitempty"`
}

// LocationConfig is the static record for one location.
type LocationConfig struct {
	Name        string                               `yaml:"name" json:"name"`
	Description string                               `yaml:"description" json:"description"`
	Actions     map[model.ActionKind]ActionConfig    `yaml:"actions" json:"actions"`
}

// ActionPresets maps semantic levels to ranges per stat category.
type ActionPresets struct {
	Earnings map[PresetLevel]Range `yaml:"earnings" json:"earnings"`
	Health   map[PresetLevel]Range `yaml:"health" json:"health"`
	Hunger   map[PresetLevel]Range `yaml:"hunger" json:"hunger"`
	Food     map[PresetLevel]Range `yaml:"food" json:"food"`
	Cost     map[PresetLevel]Range `yaml:"cost" json:"cost"`
	Reward   map[PresetLevel]Range `yaml:"reward" json:"reward"`
}

// EventPresets maps semantic levels to per-hour probabilities and
// severity/bonus ranges.
type EventPresets struct {
	Chance     map[PresetLevel]float64 `yaml:"chance" json:"chance"`
	MoneyLoss  map[PresetLevel]Range   `yaml:"money_loss" json:"money_loss"`
	MoneyGain  map[PresetLevel]Range   `yaml:"money_gain" json:"money_gain"`
	HealthLoss map[PresetLevel]Range   `yaml:"health_loss" json:"health_loss"`
	HungerLoss map[PresetLevel]Range   `yaml:"hunger_loss" json:"hunger_loss"`
	HungerGain map[PresetLevel]Range   `yaml:"hunger_gain" json:"hunger_gain"`
}

// Presets groups all preset tables.
type Presets struct {
	Action     ActionPresets           `yaml:"action" json:"action"`
	Event      EventPresets            `yaml:"event" json:"event"`
	Reputation map[PresetLevel]int     `yaml:"reputation" json:"reputation"`
}

// LevelBonuses are the per-level multiplier increments.
type LevelBonuses struct {
	Earnings         float64 `yaml:"earnings" json:"earnings"`
	Health           float64 `yaml:"health" json:"health"`
	HungerEfficiency float64 `yaml:"hunger_efficiency" json:"hunger_efficiency"`
	Risk             float64 `yaml:"risk" json:"risk"`
}

// LevelSystem defines the XP curve.
type LevelSystem struct {
	MaxLevel     int          `yaml:"max_level" json:"max_level"`
	BaseXP       int          `yaml:"base_xp" json:"base_xp"`
	XPMultiplier float64      `yaml:"xp_multiplier" json:"xp_multiplier"`
	Bonuses      LevelBonuses `yaml:"bonuses" json:"bonuses"`
}

// TierModifiers are a tier's outcome multipliers.
type TierModifiers struct {
	Earnings    float64 `yaml:"earnings" json:"earnings"`
	Risk        float64 `yaml:"risk" json:"risk"`
	EventChance float64 `yaml:"event_chance" json:"event_chance"`
}

// Tier is one contiguous band of reputation score.
type Tier struct {
	Name      string        `yaml:"name" json:"name"`
	Min       int           `yaml:"min" json:"min"`
	Max       int           `yaml:"max" json:"max"`
	Icon      string        `yaml:"icon" json:"icon"`
	Modifiers TierModifiers `yaml:"modifiers" json:"modifiers"`
}

// Faction is a reputation faction's display record.
type Faction struct {
	ID   model.FactionID `yaml:"id" json:"id"`
	Name string          `yaml:"name" json:"name"`
	Icon string          `yaml:"icon" json:"icon"`
}

// ReputationSystem defines factions and tier bands.
type ReputationSystem struct {
	Factions []Faction `yaml:"factions" json:"factions"`
	Starting int       `yaml:"starting" json:"starting"`
	Tiers    []Tier    `yaml:"tiers" json:"tiers"`
}

// Victory holds the win condition.
type Victory struct {
	Money     int `yaml:"money" json:"money"`
	MinHealth int `yaml:"min_health" json:"min_health"`
}

// Survival holds stat bounds and the starvation rule.
type Survival struct {
	StarvationThreshold int   `yaml:"starvation_threshold" json:"starvation_threshold"`
	StarvationPenalty   Range `yaml:"starvation_penalty" json:"starvation_penalty"`
	HealthMax           int   `yaml:"health_max" json:"health_max"`
	HungerMax           int   `yaml:"hunger_max" json:"hunger_max"`
}

// Starting holds initial player state.
type Starting struct {
	Location   model.LocationID `yaml:"location" json:"location"`
	Hour       int              `yaml:"hour" json:"hour"`
	Money      int              `yaml:"money" json:"money"`
	Health     int              `yaml:"health" json:"health"`
	Hunger     int              `yaml:"hunger" json:"hunger"`
	Level      int              `yaml:"level" json:"level"`
	Experience int              `yaml:"experience" json:"experience"`
}

// Constants groups the global game constants.
type Constants struct {
	Victory  Victory  `yaml:"victory" json:"victory"`
	Survival Survival `yaml:"survival" json:"survival"`
	Starting Starting `yaml:"starting" json:"starting"`
}

// TravelRules tune movement between locations.
type TravelRules struct {
	// Order is the linear arrangement of the map; travel walks adjacent hops.
	Order []model.LocationID `yaml:"order" json:"order"`
	// HoursPerHop is the time cost of one adjacent hop.
	HoursPerHop int `yaml:"hours_per_hop" json:"hours_per_hop"`
	// HungerCost is the randomized total hunger cost of a journey.
	HungerCost Range `yaml:"hunger_cost" json:"hunger_cost"`
}

// Config is the full balance table.
type Config struct {
	Locations  map[model.LocationID]LocationConfig `yaml:"locations" json:"locations"`
	Presets    Presets                             `yaml:"presets" json:"presets"`
	Level      LevelSystem                         `yaml:"level_system" json:"level_system"`
	Reputation ReputationSystem                    `yaml:"reputation_system" json:"reputation_system"`
	Constants  Constants                           `yaml:"constants" json:"constants"`
	Travel     TravelRules                         `yaml:"travel" json:"travel"`
}

// ReputationDelta resolves a RepEffect into a signed integer delta.
// Malformed effects degrade to zero.
func (c *Config) ReputationDelta(e RepEffect) int {
	level, positive, err := e.Parse()
	if err != nil {
		return 0
	}
	amount := c.Presets.Reputation[level]
	if !positive {
		amount = -amount
	}
	return amount
}

// resolveRange looks up a range preset, reporting whether it was found.
// PresetNone and unknown levels yield a zero range.
func resolveRange(table map[PresetLevel]Range, level PresetLevel) (Range, bool) {
	if level == "" || level == PresetNone {
		return Range{}, false
	}
	r, ok := table[level]
	return r, ok
}

// ActionRange resolves a semantic level against one of the action preset
// categories ("earnings", "health", "hunger", "food", "cost", "reward").
func (c *Config) ActionRange(category string, level PresetLevel) (Range, bool) {
	switch category {
	case "earnings":
		return resolveRange(c.Presets.Action.Earnings, level)
	case "health":
		return resolveRange(c.Presets.Action.Health, level)
	case "hunger":
		return resolveRange(c.Presets.Action.Hunger, level)
	case "food":
		return resolveRange(c.Presets.Action.Food, level)
	case "cost":
		return resolveRange(c.Presets.Action.Cost, level)
	case "reward":
		return resolveRange(c.Presets.Action.Reward, level)
	}
	return Range{}, false
}

// EventRange resolves a semantic level against one of the event severity
// categories ("money_loss", "money_gain", "health_loss", "hunger_loss",
// "hunger_gain").
func (c *Config) EventRange(category string, level PresetLevel) (Range, bool) {
	switch category {
	case "money_loss":
		return resolveRange(c.Presets.Event.MoneyLoss, level)
	case "money_gain":
		return resolveRange(c.Presets.Event.MoneyGain, level)
	case "health_loss":
		return resolveRange(c.Presets.Event.HealthLoss, level)
	case "hunger_loss":
		return resolveRange(c.Presets.Event.HungerLoss, level)
	case "hunger_gain":
		return resolveRange(c.Presets.Event.HungerGain, level)
	}
	return Range{}, false
}

// EventChance resolves a chance preset into a per-hour probability.
func (c *Config) EventChance(level PresetLevel) float64 {
	return c.Presets.Event.Chance[level]
}

// TierFor returns the tier band containing score, and whether one matched.
func (c *Config) TierFor(score int) (Tier, bool) {
	for _, t := range c.Reputation.Tiers {
		if score >= t.Min && score <= t.Max {
			return t, true
		}
	}
	return Tier{}, false
}

// TierIndex returns the ordinal position of a tier name, or -1.
// Tiers are listed worst-to-best, so a larger index is a better standing.
func (c *Config) TierIndex(name string) int {
	for i, t := range c.Reputation.Tiers {
		if t.Name == name {
			return i
		}
	}
	return -1
}

// NeutralTier returns the defensive fallback tier used when no band matches.
func (c *Config) NeutralTier() Tier {
	if t, ok := c.TierFor(c.Reputation.Starting); ok {
		return t
	}
	return Tier{Name: "Neutral", Min: 41, Max: 60, Modifiers: TierModifiers{Earnings: 1, Risk: 1, EventChance: 1}}
}

// XPThreshold returns the experience needed to leave the given level,
// floor(baseXP * multiplier^(level-1)).
func (c *Config) XPThreshold(level int) int {
	if level < 1 {
		level = 1
	}
	xp := float64(c.Level.BaseXP)
	for i := 1; i < level; i++ {
		xp *= c.Level.XPMultiplier
	}
	return int(xp)
}
