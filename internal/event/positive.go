package event

import (
	"fmt"

	"github.com/kozlovfedor-boop/get-off-the-street/internal/balance"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/model"
)

func levelOr(l, def balance.PresetLevel) balance.PresetLevel {
	if l == "" {
		return def
	}
	return l
}

// BonusTip pays extra wages for good work. Only fires while working.
type BonusTip struct {
	base
	tip int
}

func (e *BonusTip) Kind() model.EventKind { return model.EventBonusTip }
func (e *BonusTip) Negative() bool        { return false }

func (e *BonusTip) CanTrigger(ctx *Context) bool {
	return ctx.Action != nil && ctx.Action.Kind() == model.ActionWork && e.timeConditionMet(ctx)
}

func (e *BonusTip) Chance(ctx *Context) float64 { return e.chance(ctx, false) }

func (e *BonusTip) Fire(ctx *Context) Outcome {
	e.tip = e.severityRange(ctx, "money_gain", levelOr(e.config.Bonus, balance.PresetMedium))
	return Outcome{
		Kind:    model.EventBonusTip,
		Message: "Your employer noticed your hard work!",
		LogType: model.LogPositive,
	}
}

func (e *BonusTip) Prompt() model.Prompt {
	return model.Prompt{
		Title:       "Bonus Tip!",
		Description: fmt.Sprintf("Your boss gave you a £%d bonus for good work!", e.tip),
		Choices: []model.Choice{
			{Label: "Keep Working", Value: "continue", Variant: "safe"},
			{Label: "Take a Break", Value: "stop"},
		},
	}
}

func (e *BonusTip) ProcessChoice(choice string, ctx *Context) Consequence {
	ctx.Player.ApplyStats(model.StatDelta{Money: e.tip})
	if choice == "stop" {
		return Consequence{
			Message:    fmt.Sprintf("Received £%d bonus and took a break.", e.tip),
			LogType:    model.LogPositive,
			StopAction: true,
		}
	}
	return Consequence{
		Message: fmt.Sprintf("Received £%d bonus and kept working.", e.tip),
		LogType: model.LogPositive,
	}
}

// FindMoney is a lucky find on the ground. Anywhere but the shelter.
type FindMoney struct {
	base
	found int
}

func (e *FindMoney) Kind() model.EventKind { return model.EventFindMoney }
func (e *FindMoney) Negative() bool        { return false }

func (e *FindMoney) CanTrigger(ctx *Context) bool {
	return ctx.Location != model.LocShelter && e.timeConditionMet(ctx)
}

func (e *FindMoney) Chance(ctx *Context) float64 { return e.chance(ctx, false) }

func (e *FindMoney) Fire(ctx *Context) Outcome {
	e.found = e.severityRange(ctx, "money_gain", levelOr(e.config.Amount, balance.PresetLow))
	return Outcome{
		Kind:    model.EventFindMoney,
		Message: "You spotted some money on the ground!",
		LogType: model.LogPositive,
	}
}

func (e *FindMoney) Prompt() model.Prompt {
	return model.Prompt{
		Title:       "Found Money!",
		Description: fmt.Sprintf("You found £%d on the ground! Lucky find.", e.found),
		Choices: []model.Choice{
			{Label: "Continue", Value: "continue", Variant: "safe"},
			{Label: "Stop Action", Value: "stop"},
		},
	}
}

func (e *FindMoney) ProcessChoice(choice string, ctx *Context) Consequence {
	ctx.Player.ApplyStats(model.StatDelta{Money: e.found})
	if choice == "stop" {
		return Consequence{
			Message:    fmt.Sprintf("Picked up £%d and stopped.", e.found),
			LogType:    model.LogPositive,
			StopAction: true,
		}
	}
	return Consequence{
		Message: fmt.Sprintf("Picked up £%d and continued.", e.found),
		LogType: model.LogPositive,
	}
}

// GenerousStranger is a donation while panhandling, most at home in the
// wealthy district during the day.
type GenerousStranger struct {
	base
	donation int
}

func (e *GenerousStranger) Kind() model.EventKind { return model.EventGenerousStranger }
func (e *GenerousStranger) Negative() bool        { return false }

func (e *GenerousStranger) CanTrigger(ctx *Context) bool {
	if ctx.Action == nil || ctx.Action.Kind() != model.ActionPanhandle {
		return false
	}
	if !e.timeConditionMet(ctx) {
		return false
	}
	return ctx.Location != model.LocShelter
}

func (e *GenerousStranger) Chance(ctx *Context) float64 { return e.chance(ctx, false) }

func (e *GenerousStranger) Fire(ctx *Context) Outcome {
	e.donation = e.severityRange(ctx, "money_gain", levelOr(e.config.Bonus, balance.PresetHigh))
	return Outcome{
		Kind:    model.EventGenerousStranger,
		Message: "A well-dressed stranger approaches you!",
		LogType: model.LogPositive,
	}
}

func (e *GenerousStranger) Prompt() model.Prompt {
	return model.Prompt{
		Title:       "Generous Stranger",
		Description: fmt.Sprintf("A wealthy-looking person just gave you £%d! \"Good luck to you,\" they say.", e.donation),
		Choices: []model.Choice{
			{Label: "Thank Them & Continue", Value: "continue", Variant: "safe"},
			{Label: "Thank Them & Leave", Value: "stop"},
		},
	}
}

func (e *GenerousStranger) ProcessChoice(choice string, ctx *Context) Consequence {
	ctx.Player.ApplyStats(model.StatDelta{Money: e.donation})
	if choice == "stop" {
		return Consequence{
			Message:    fmt.Sprintf("Received £%d and decided to stop panhandling.", e.donation),
			LogType:    model.LogPositive,
			StopAction: true,
		}
	}
	return Consequence{
		Message: fmt.Sprintf("Received £%d and continued panhandling.", e.donation),
		LogType: model.LogPositive,
	}
}

// FreeResource is discarded but edible food, found in the scrappier parts
// of town.
type FreeResource struct {
	base
	hungerGain int
}

func (e *FreeResource) Kind() model.EventKind { return model.EventFreeResource }
func (e *FreeResource) Negative() bool        { return false }

func (e *FreeResource) CanTrigger(ctx *Context) bool {
	return atAny(ctx.Location, model.LocPark, model.LocCamden) && e.timeConditionMet(ctx)
}

func (e *FreeResource) Chance(ctx *Context) float64 { return e.chance(ctx, false) }

func (e *FreeResource) Fire(ctx *Context) Outcome {
	e.hungerGain = e.severityRange(ctx, "hunger_gain", levelOr(e.config.Amount, balance.PresetMedium))
	return Outcome{
		Kind:    model.EventFreeResource,
		Message: "You found some discarded food!",
		LogType: model.LogPositive,
	}
}

func (e *FreeResource) Prompt() model.Prompt {
	return model.Prompt{
		Title:       "Found Food",
		Description: fmt.Sprintf("You found edible food that was thrown away (+%d hunger).", e.hungerGain),
		Choices: []model.Choice{
			{Label: "Continue", Value: "continue", Variant: "safe"},
			{Label: "Stop", Value: "stop"},
		},
	}
}

func (e *FreeResource) ProcessChoice(choice string, ctx *Context) Consequence {
	ctx.Player.ApplyStats(model.StatDelta{Hunger: e.hungerGain})
	if choice == "stop" {
		return Consequence{
			Message:    fmt.Sprintf("Ate the food (+%d hunger) and stopped.", e.hungerGain),
			LogType:    model.LogPositive,
			StopAction: true,
		}
	}
	return Consequence{
		Message: fmt.Sprintf("Ate the food (+%d hunger) and continued.", e.hungerGain),
		LogType: model.LogPositive,
	}
}
