// Package action implements what the player can do at a location. An action
// commits hours up front; its totals are sampled once when it begins and
// delivered hour by hour, so what the player was promised is what arrives
// unless an event cuts the action short.
package action

import (
	"fmt"
	"math"

	"github.com/kozlovfedor-boop/get-off-the-street/internal/balance"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/event"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/model"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/player"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/reputation"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/statmath"
)

// Runtime is the live state handed to an action when it begins.
type Runtime struct {
	Player       *player.Player
	Ledger       *reputation.Ledger
	RNG          *statmath.RNG
	Location     model.LocationID
	LocationName string
}

// Result is what beginning an action reports.
type Result struct {
	Kind     model.ActionKind
	Message  string
	LogType  model.LogType
	TimeCost int
	// Stats is applied directly for instant actions. Timed actions deliver
	// through PerHourStats instead and leave this zero.
	Stats    model.StatDelta
	XPReward int
	// Failed marks a refusal at start (not enough money). No time passes,
	// no XP or reputation is granted.
	Failed bool
}

// Action is one thing the player can spend hours on.
//
// Begin samples every random total and fixes the hourly schedule;
// PerHourStats and LogMessage then replay it. Actions also satisfy
// event.Owner so events can identify and interfere with them.
type Action interface {
	event.Owner

	Events() []event.Event
	ReputationEffects() map[model.FactionID]balance.RepEffect
	XPReward() int
	TimeCost() int
	Instant() bool
	DefersPayment() bool

	Begin(rt *Runtime) Result
	PerHourStats(hourIndex int) model.StatDelta
	LogMessage(hourIndex, totalHours int, stats model.StatDelta) (string, model.LogType)
	Preview() model.Preview
}

// DeferredPayer is implemented by actions that hold wages until the work
// is done.
type DeferredPayer interface {
	FinalPayment() int
	FinalLog() (string, model.LogType)
}

// base carries configuration and the hourly schedule shared by all
// variants.
type base struct {
	cfg    *balance.Config
	config balance.ActionConfig
	events []event.Event

	// schedule is filled by Begin, one delta per hour.
	schedule []model.StatDelta
}

func (b *base) Events() []event.Event { return b.events }

func (b *base) ReputationEffects() map[model.FactionID]balance.RepEffect {
	return b.config.Reputation
}

func (b *base) XPReward() int       { return b.config.XP }
func (b *base) TimeCost() int       { return b.config.TimeCost }
func (b *base) Instant() bool       { return false }
func (b *base) DefersPayment() bool { return false }
func (b *base) ClearDeferredPay()   {}

func (b *base) PerHourStats(hourIndex int) model.StatDelta {
	if hourIndex < 0 || hourIndex >= len(b.schedule) {
		return model.StatDelta{}
	}
	return b.schedule[hourIndex]
}

// sample draws from an action preset category, or zero when unset.
func (b *base) sample(rng *statmath.RNG, category string, level balance.PresetLevel) int {
	r, ok := b.cfg.ActionRange(category, level)
	if !ok {
		return 0
	}
	return rng.Range(r.Min, r.Max)
}

// sampleScaled draws from a preset range widened or narrowed by a level or
// reputation multiplier.
func (b *base) sampleScaled(rng *statmath.RNG, category string, level balance.PresetLevel, factor float64) int {
	r, ok := b.cfg.ActionRange(category, level)
	if !ok {
		return 0
	}
	return rng.Range(scaleRange(r, factor))
}

func scaleRange(r balance.Range, factor float64) (int, int) {
	return int(math.Floor(float64(r.Min) * factor)), int(math.Ceil(float64(r.Max) * factor))
}

// efficiencyScale shrinks a cost magnitude by a bonus multiplier >= 1.
func efficiencyScale(v int, bonus float64) int {
	if bonus <= 0 {
		return v
	}
	return int(math.Round(float64(v) / bonus))
}

// buildSchedule spreads the sampled totals evenly across the hours.
func (b *base) buildSchedule(hours int, total model.StatDelta) {
	if hours <= 0 {
		b.schedule = nil
		return
	}
	money := statmath.Apportion(total.Money, hours)
	health := statmath.Apportion(total.Health, hours)
	hunger := statmath.Apportion(total.Hunger, hours)
	b.schedule = make([]model.StatDelta, hours)
	for i := range b.schedule {
		b.schedule[i] = model.StatDelta{Money: money[i], Health: health[i], Hunger: hunger[i]}
	}
}

// riskLevel summarizes the action's negative events as a semantic level,
// from the combined chance that at least one fires in an hour.
func (b *base) riskLevel() string {
	noEvent := 1.0
	seen := false
	for _, ev := range b.events {
		if !ev.Negative() {
			continue
		}
		seen = true
		noEvent *= 1 - ev.BaseChance()
	}
	if !seen {
		return "none"
	}
	combined := 1 - noEvent
	switch {
	case combined >= 0.25:
		return "high"
	case combined >= 0.10:
		return "medium"
	case combined > 0:
		return "low"
	default:
		return "none"
	}
}

func levelName(l balance.PresetLevel) string {
	if l == "" {
		return "none"
	}
	return string(l)
}

// Build constructs the action variant for a (location, kind) pair,
// including its event list. Unknown event types fail the build; the
// registry decides whether that is fatal.
func Build(cfg *balance.Config, kind model.ActionKind, ac balance.ActionConfig) (Action, error) {
	events := make([]event.Event, 0, len(ac.Events))
	for _, ec := range ac.Events {
		ev, err := event.Build(cfg, ec)
		if err != nil {
			return nil, fmt.Errorf("action %s: %w", kind, err)
		}
		events = append(events, ev)
	}
	b := base{cfg: cfg, config: ac, events: events}
	switch kind {
	case model.ActionWork:
		return &Work{base: b}, nil
	case model.ActionPanhandle:
		return &Panhandle{base: b}, nil
	case model.ActionSteal:
		return &Steal{base: b}, nil
	case model.ActionSleep:
		return &Sleep{base: b}, nil
	case model.ActionFindFood:
		return &FindFood{base: b}, nil
	case model.ActionEat:
		return &Eat{base: b}, nil
	case model.ActionBuyFood:
		return &BuyFood{base: b}, nil
	default:
		return nil, fmt.Errorf("unknown action kind %q", kind)
	}
}
