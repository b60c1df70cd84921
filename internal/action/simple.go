package action

import (
	"fmt"

	"github.com/kozlovfedor-boop/get-off-the-street/internal/model"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/player"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/reputation"
)

// Panhandle begs for change over a few hours. Standing with the locals
// sways how generous passers-by are.
type Panhandle struct {
	base
}

func (a *Panhandle) Kind() model.ActionKind { return model.ActionPanhandle }

func (a *Panhandle) Begin(rt *Runtime) Result {
	factor := rt.Player.LevelBonus(player.BonusEarnings) *
		rt.Ledger.Modifier(model.FactionLocals, reputation.ModEarnings)
	earnings := a.sampleScaled(rt.RNG, "earnings", a.config.Earnings, factor)

	hungerBonus := rt.Player.LevelBonus(player.BonusHungerEfficiency)
	hunger := efficiencyScale(a.sample(rt.RNG, "hunger", a.config.Hunger), hungerBonus)

	a.buildSchedule(a.config.TimeCost, model.StatDelta{Money: earnings, Hunger: hunger})

	return Result{
		Kind:     model.ActionPanhandle,
		Message:  "You found a spot and started panhandling.",
		LogType:  model.LogNeutral,
		TimeCost: a.config.TimeCost,
		XPReward: a.config.XP,
	}
}

func (a *Panhandle) LogMessage(hourIndex, totalHours int, stats model.StatDelta) (string, model.LogType) {
	return fmt.Sprintf("Panhandling: Hour %d/%d - Earned £%d, Hunger %d",
		hourIndex+1, totalHours, stats.Money, stats.Hunger), model.LogPositive
}

func (a *Panhandle) Preview() model.Preview {
	return model.Preview{
		TimeCost: a.config.TimeCost,
		Money:    levelName(a.config.Earnings),
		Health:   "none",
		Hunger:   levelName(a.config.Hunger),
		Risk:     a.riskLevel(),
	}
}

// Steal is a quick grab. The theft itself always pays; the danger lives
// entirely in the police and beating events attached to it.
type Steal struct {
	base
}

func (a *Steal) Kind() model.ActionKind { return model.ActionSteal }

func (a *Steal) Begin(rt *Runtime) Result {
	factor := rt.Player.LevelBonus(player.BonusEarnings)
	stolen := a.sampleScaled(rt.RNG, "reward", a.config.Reward, factor)

	hungerBonus := rt.Player.LevelBonus(player.BonusHungerEfficiency)
	hunger := efficiencyScale(a.sample(rt.RNG, "hunger", a.config.Hunger), hungerBonus)

	a.buildSchedule(a.config.TimeCost, model.StatDelta{Money: stolen, Hunger: hunger})

	return Result{
		Kind:     model.ActionSteal,
		Message:  "You look for an easy mark...",
		LogType:  model.LogNeutral,
		TimeCost: a.config.TimeCost,
		XPReward: a.config.XP,
	}
}

func (a *Steal) LogMessage(hourIndex, totalHours int, stats model.StatDelta) (string, model.LogType) {
	return fmt.Sprintf("You successfully stole £%d!", stats.Money), model.LogPositive
}

func (a *Steal) Preview() model.Preview {
	return model.Preview{
		TimeCost: a.config.TimeCost,
		Money:    levelName(a.config.Reward),
		Health:   "none",
		Hunger:   levelName(a.config.Hunger),
		Risk:     a.riskLevel(),
	}
}

// Sleep recovers health over several hours. Where you sleep decides how
// well you rest and what can happen to you meanwhile.
type Sleep struct {
	base
}

func (a *Sleep) Kind() model.ActionKind { return model.ActionSleep }

func (a *Sleep) Begin(rt *Runtime) Result {
	factor := rt.Player.LevelBonus(player.BonusHealth)
	health := a.sampleScaled(rt.RNG, "health", a.config.Health, factor)

	hungerBonus := rt.Player.LevelBonus(player.BonusHungerEfficiency)
	hunger := efficiencyScale(a.sample(rt.RNG, "hunger", a.config.Hunger), hungerBonus)

	a.buildSchedule(a.config.TimeCost, model.StatDelta{Health: health, Hunger: hunger})

	return Result{
		Kind:     model.ActionSleep,
		Message:  fmt.Sprintf("You settle down to sleep for %d hours.", a.config.TimeCost),
		LogType:  model.LogNeutral,
		TimeCost: a.config.TimeCost,
		XPReward: a.config.XP,
	}
}

func (a *Sleep) LogMessage(hourIndex, totalHours int, stats model.StatDelta) (string, model.LogType) {
	return fmt.Sprintf("Resting: Hour %d/%d - Health +%d, Hunger %d",
		hourIndex+1, totalHours, stats.Health, stats.Hunger), model.LogNeutral
}

func (a *Sleep) Preview() model.Preview {
	return model.Preview{
		TimeCost: a.config.TimeCost,
		Money:    "none",
		Health:   levelName(a.config.Health),
		Hunger:   levelName(a.config.Hunger),
		Risk:     a.riskLevel(),
	}
}

// FindFood digs through dumpsters for something edible.
type FindFood struct {
	base
}

func (a *FindFood) Kind() model.ActionKind { return model.ActionFindFood }

func (a *FindFood) Begin(rt *Runtime) Result {
	food := a.sample(rt.RNG, "food", a.config.Food)
	a.buildSchedule(a.config.TimeCost, model.StatDelta{Hunger: food})

	return Result{
		Kind:     model.ActionFindFood,
		Message:  "You start searching the dumpsters.",
		LogType:  model.LogNeutral,
		TimeCost: a.config.TimeCost,
		XPReward: a.config.XP,
	}
}

func (a *FindFood) LogMessage(hourIndex, totalHours int, stats model.StatDelta) (string, model.LogType) {
	return fmt.Sprintf("Searching for food: Hour %d/%d - Found +%d hunger",
		hourIndex+1, totalHours, stats.Hunger), model.LogPositive
}

func (a *FindFood) Preview() model.Preview {
	return model.Preview{
		TimeCost: a.config.TimeCost,
		Money:    "none",
		Health:   "none",
		Hunger:   levelName(a.config.Food),
		Risk:     a.riskLevel(),
	}
}

// Eat is the free shelter meal. Instant; no hours pass.
type Eat struct {
	base
}

func (a *Eat) Kind() model.ActionKind { return model.ActionEat }
func (a *Eat) Instant() bool          { return true }

func (a *Eat) Begin(rt *Runtime) Result {
	food := a.sample(rt.RNG, "food", a.config.Food)
	return Result{
		Kind:     model.ActionEat,
		Message:  fmt.Sprintf("You ate a free meal at the shelter. Hunger +%d.", food),
		LogType:  model.LogPositive,
		TimeCost: 0,
		Stats:    model.StatDelta{Hunger: food},
		XPReward: a.config.XP,
	}
}

func (a *Eat) LogMessage(hourIndex, totalHours int, stats model.StatDelta) (string, model.LogType) {
	return "", model.LogNeutral
}

func (a *Eat) Preview() model.Preview {
	return model.Preview{
		TimeCost: 0,
		Money:    "none",
		Health:   "none",
		Hunger:   levelName(a.config.Food),
		Risk:     "none",
	}
}

// BuyFood purchases a proper meal. Refuses outright when the sampled price
// is beyond the player's pocket; refused purchases cost no time.
type BuyFood struct {
	base
}

func (a *BuyFood) Kind() model.ActionKind { return model.ActionBuyFood }

func (a *BuyFood) Begin(rt *Runtime) Result {
	cost := a.sample(rt.RNG, "cost", a.config.Cost)
	food := a.sample(rt.RNG, "food", a.config.Food)

	if rt.Player.Money < cost {
		return Result{
			Kind:    model.ActionBuyFood,
			Message: fmt.Sprintf("You don't have enough money. Need £%d.", cost),
			LogType: model.LogNegative,
			Failed:  true,
		}
	}

	a.buildSchedule(a.config.TimeCost, model.StatDelta{Money: -cost, Hunger: food})

	return Result{
		Kind:     model.ActionBuyFood,
		Message:  fmt.Sprintf("You bought food in %s.", rt.LocationName),
		LogType:  model.LogPositive,
		TimeCost: a.config.TimeCost,
		XPReward: a.config.XP,
	}
}

func (a *BuyFood) LogMessage(hourIndex, totalHours int, stats model.StatDelta) (string, model.LogType) {
	return fmt.Sprintf("Buying food: Hour %d/%d - Cost £%d, Hunger +%d",
		hourIndex+1, totalHours, -stats.Money, stats.Hunger), model.LogPositive
}

func (a *BuyFood) Preview() model.Preview {
	return model.Preview{
		TimeCost: a.config.TimeCost,
		Money:    levelName(a.config.Cost),
		Health:   "none",
		Hunger:   levelName(a.config.Food),
		Risk:     a.riskLevel(),
		Notes:    "Money shown is the cost",
	}
}
