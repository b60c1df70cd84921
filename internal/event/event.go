// Package event implements the random occurrences that interrupt actions.
// An event rolls once per simulated hour. When it fires the simulation
// suspends, the presenter shows a prompt, and the chosen option decides
// whether the action continues.
package event

import (
	"fmt"

	"github.com/kozlovfedor-boop/get-off-the-street/internal/balance"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/clock"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/model"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/player"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/reputation"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/statmath"
)

// Owner is the running action an event may inspect or interfere with.
// It is a narrow view; events never drive the action directly.
type Owner interface {
	Kind() model.ActionKind
	// ClearDeferredPay wipes wages accrued so far by a deferred-payment
	// action. A no-op for actions that pay immediately.
	ClearDeferredPay()
}

// Context carries the live game state an event reads and mutates.
type Context struct {
	Player     *player.Player
	Ledger     *reputation.Ledger
	Clock      *clock.TimeManager
	RNG        *statmath.RNG
	Location   model.LocationID
	Action     Owner
	HourIndex  int
	TotalHours int
}

// Outcome is what firing an event reports before the player has chosen.
type Outcome struct {
	Kind    model.EventKind
	Message string
	LogType model.LogType
}

// Consequence is the result of the player's choice.
type Consequence struct {
	Message    string
	LogType    model.LogType
	StopAction bool
}

// Event is one random occurrence attached to an action.
//
// Fire samples magnitudes and may apply unavoidable damage; ProcessChoice
// applies everything the player had a say in. Events keep sampled amounts
// between the two calls so the prompt can show real numbers.
type Event interface {
	Kind() model.EventKind
	// Negative reports whether the event harms the player. Negative events
	// benefit from level risk reduction and count toward risk previews.
	Negative() bool
	CanTrigger(ctx *Context) bool
	// BaseChance is the configured per-hour probability before modifiers.
	BaseChance() float64
	// Chance is the effective per-hour probability after reputation and
	// level modifiers.
	Chance(ctx *Context) float64
	Fire(ctx *Context) Outcome
	Prompt() model.Prompt
	ProcessChoice(choice string, ctx *Context) Consequence
	// ReputationEffects returns the faction deltas applied once the event
	// has resolved.
	ReputationEffects() map[model.FactionID]balance.RepEffect
}

// base carries the configuration shared by all variants.
type base struct {
	cfg    *balance.Config
	config balance.EventConfig
}

func (b *base) BaseChance() float64 {
	return b.cfg.EventChance(b.config.Chance)
}

// chance applies the faction standing and level modifiers to the base
// probability. Risk reduction only softens events that hurt; it never
// erodes the good ones.
func (b *base) chance(ctx *Context, negative bool) float64 {
	p := b.BaseChance()
	if p <= 0 {
		return 0
	}
	if b.config.Faction != "" {
		p *= ctx.Ledger.Modifier(b.config.Faction, reputation.ModEventChance)
	}
	if negative {
		p -= ctx.Player.RiskReduction()
	}
	if p < 0.01 {
		p = 0.01
	}
	return p
}

// timeConditionMet checks the optional daytime/nighttime gate.
func (b *base) timeConditionMet(ctx *Context) bool {
	switch b.config.TimeCondition {
	case "daytime":
		return ctx.Clock.IsDaytime()
	case "nighttime":
		return ctx.Clock.IsNighttime()
	default:
		return true
	}
}

func (b *base) ReputationEffects() map[model.FactionID]balance.RepEffect {
	return b.config.Reputation
}

// severityRange samples a magnitude from an event preset category.
func (b *base) severityRange(ctx *Context, category string, level balance.PresetLevel) int {
	r, ok := b.cfg.EventRange(category, level)
	if !ok {
		return 0
	}
	return ctx.RNG.Range(r.Min, r.Max)
}

func atAny(loc model.LocationID, ids ...model.LocationID) bool {
	for _, id := range ids {
		if loc == id {
			return true
		}
	}
	return false
}

// Build constructs the event variant named by the config.
func Build(cfg *balance.Config, ec balance.EventConfig) (Event, error) {
	b := base{cfg: cfg, config: ec}
	switch ec.Type {
	case model.EventBonusTip:
		return &BonusTip{base: b}, nil
	case model.EventFindMoney:
		return &FindMoney{base: b}, nil
	case model.EventGenerousStranger:
		return &GenerousStranger{base: b}, nil
	case model.EventFreeResource:
		return &FreeResource{base: b}, nil
	case model.EventPolice:
		return &Police{base: b}, nil
	case model.EventBeatenUp:
		return &BeatenUp{base: b}, nil
	case model.EventRobbery:
		return &Robbery{base: b}, nil
	case model.EventSickness:
		return &Sickness{base: b}, nil
	case model.EventWeather:
		return &Weather{base: b}, nil
	case model.EventNightmare:
		return &Nightmare{base: b}, nil
	case model.EventWorkAccident:
		return &WorkAccident{base: b}, nil
	default:
		return nil, fmt.Errorf("unknown event type %q", ec.Type)
	}
}
