package event

import (
	"fmt"

	"github.com/kozlovfedor-boop/get-off-the-street/internal/balance"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/model"
)

// Police catches the player stealing. The fine and beating land in Fire;
// there is nothing to decide, only to accept.
type Police struct {
	base
	fine int
}

func (e *Police) Kind() model.EventKind { return model.EventPolice }
func (e *Police) Negative() bool        { return true }

func (e *Police) CanTrigger(ctx *Context) bool {
	return ctx.Action != nil && ctx.Action.Kind() == model.ActionSteal && e.timeConditionMet(ctx)
}

func (e *Police) Chance(ctx *Context) float64 { return e.chance(ctx, true) }

func (e *Police) Fire(ctx *Context) Outcome {
	fine := e.severityRange(ctx, "money_loss", levelOr(e.config.Severity, balance.PresetMedium))
	if fine > ctx.Player.Money {
		fine = ctx.Player.Money
	}
	e.fine = fine
	ctx.Player.ApplyStats(model.StatDelta{Money: -fine, Health: -25})
	return Outcome{
		Kind:    model.EventPolice,
		Message: fmt.Sprintf("Caught by police! Lost £%d and got beaten. Health -25.", fine),
		LogType: model.LogNegative,
	}
}

func (e *Police) Prompt() model.Prompt {
	return model.Prompt{
		Title:       "⚠️ Police!",
		Description: "You've been caught by the police while stealing!",
		Choices: []model.Choice{
			{Label: "Accept punishment", Value: "accept", Variant: "danger"},
		},
	}
}

func (e *Police) ProcessChoice(choice string, ctx *Context) Consequence {
	return Consequence{
		Message: "You were arrested and fined.",
		LogType: model.LogNegative,
	}
}

// BeatenUp is getting caught and hurt mid-theft. Damage lands in Fire and
// the theft always stops.
type BeatenUp struct {
	base
	healthLoss int
}

func (e *BeatenUp) Kind() model.EventKind { return model.EventBeatenUp }
func (e *BeatenUp) Negative() bool        { return true }

func (e *BeatenUp) CanTrigger(ctx *Context) bool {
	return ctx.Action != nil && ctx.Action.Kind() == model.ActionSteal && e.timeConditionMet(ctx)
}

func (e *BeatenUp) Chance(ctx *Context) float64 { return e.chance(ctx, true) }

func (e *BeatenUp) Fire(ctx *Context) Outcome {
	e.healthLoss = e.severityRange(ctx, "health_loss", levelOr(e.config.Severity, balance.PresetHigh))
	ctx.Player.ApplyStats(model.StatDelta{Health: -e.healthLoss})
	return Outcome{
		Kind:    model.EventBeatenUp,
		Message: fmt.Sprintf("Caught and beaten up! Health -%d.", e.healthLoss),
		LogType: model.LogNegative,
	}
}

func (e *BeatenUp) Prompt() model.Prompt {
	return model.Prompt{
		Title:       "💥 Caught!",
		Description: "Someone caught you stealing and beat you up!",
		Choices: []model.Choice{
			{Label: "Flee", Value: "flee", Variant: "danger"},
		},
	}
}

func (e *BeatenUp) ProcessChoice(choice string, ctx *Context) Consequence {
	return Consequence{
		Message:    "You fled from the scene in pain.",
		LogType:    model.LogNegative,
		StopAction: true,
	}
}

// Robbery wakes the player while sleeping rough at night. The outcome
// hangs entirely on the choice.
type Robbery struct {
	base
	loss int
}

func (e *Robbery) Kind() model.EventKind { return model.EventRobbery }
func (e *Robbery) Negative() bool        { return true }

func (e *Robbery) CanTrigger(ctx *Context) bool {
	if ctx.Action == nil || ctx.Action.Kind() != model.ActionSleep {
		return false
	}
	if !atAny(ctx.Location, model.LocPark, model.LocCamden) {
		return false
	}
	return e.timeConditionMet(ctx)
}

func (e *Robbery) Chance(ctx *Context) float64 { return e.chance(ctx, true) }

func (e *Robbery) Fire(ctx *Context) Outcome {
	loss := e.severityRange(ctx, "money_loss", levelOr(e.config.Severity, balance.PresetMedium))
	if loss > ctx.Player.Money {
		loss = ctx.Player.Money
	}
	e.loss = loss
	return Outcome{
		Kind:    model.EventRobbery,
		Message: "Someone is trying to rob you while you sleep!",
		LogType: model.LogNegative,
	}
}

func (e *Robbery) Prompt() model.Prompt {
	return model.Prompt{
		Title:       "ROBBERY!",
		Description: fmt.Sprintf("You wake to someone rummaging through your belongings! They're going for your money (£%d). What do you do?", e.loss),
		Choices: []model.Choice{
			{Label: "Fight Back", Value: "fight", Variant: "danger"},
			{Label: "Let Them Take It", Value: "submit", Variant: "safe"},
			{Label: "Run Away", Value: "flee"},
		},
	}
}

func (e *Robbery) ProcessChoice(choice string, ctx *Context) Consequence {
	switch choice {
	case "fight":
		if ctx.RNG.Range(1, 2) == 1 {
			ctx.Player.ApplyStats(model.StatDelta{Health: -15})
			return Consequence{
				Message: "You fought them off! Minor injury (-15 health) but kept your money.",
				LogType: model.LogPositive,
			}
		}
		ctx.Player.ApplyStats(model.StatDelta{Money: -e.loss, Health: -15})
		return Consequence{
			Message:    fmt.Sprintf("You fought back but lost! -£%d, -15 health.", e.loss),
			LogType:    model.LogNegative,
			StopAction: true,
		}
	case "submit":
		ctx.Player.ApplyStats(model.StatDelta{Money: -e.loss})
		return Consequence{
			Message: fmt.Sprintf("You let them take £%d. At least you're safe.", e.loss),
			LogType: model.LogNegative,
		}
	case "flee":
		ctx.Player.ApplyStats(model.StatDelta{Money: -e.loss, Hunger: -5})
		return Consequence{
			Message:    fmt.Sprintf("You fled quickly. Lost £%d and -5 hunger from running.", e.loss),
			LogType:    model.LogNegative,
			StopAction: true,
		}
	default:
		return Consequence{Message: "Something went wrong.", LogType: model.LogNeutral}
	}
}

// Sickness can strike anywhere outside the shelter.
type Sickness struct {
	base
	healthLoss int
}

func (e *Sickness) Kind() model.EventKind { return model.EventSickness }
func (e *Sickness) Negative() bool        { return true }

func (e *Sickness) CanTrigger(ctx *Context) bool {
	return ctx.Location != model.LocShelter && e.timeConditionMet(ctx)
}

func (e *Sickness) Chance(ctx *Context) float64 { return e.chance(ctx, true) }

func (e *Sickness) Fire(ctx *Context) Outcome {
	e.healthLoss = e.severityRange(ctx, "health_loss", levelOr(e.config.Severity, balance.PresetMedium))
	return Outcome{
		Kind:    model.EventSickness,
		Message: "You feel ill...",
		LogType: model.LogNegative,
	}
}

func (e *Sickness) Prompt() model.Prompt {
	return model.Prompt{
		Title:       "Feeling Sick",
		Description: fmt.Sprintf("You're feeling very ill. Your body aches (-%d health).", e.healthLoss),
		Choices: []model.Choice{
			{Label: "Push Through", Value: "continue", Variant: "danger"},
			{Label: "Stop & Rest", Value: "stop", Variant: "safe"},
		},
	}
}

func (e *Sickness) ProcessChoice(choice string, ctx *Context) Consequence {
	ctx.Player.ApplyStats(model.StatDelta{Health: -e.healthLoss})
	if choice == "stop" {
		return Consequence{
			Message:    fmt.Sprintf("Stopped to rest. -%d health.", e.healthLoss),
			LogType:    model.LogNegative,
			StopAction: true,
		}
	}
	return Consequence{
		Message: fmt.Sprintf("Pushed through illness. -%d health.", e.healthLoss),
		LogType: model.LogNegative,
	}
}

// Weather is rain and cold exposure, a flat -5 health and -5 hunger.
type Weather struct {
	base
}

func (e *Weather) Kind() model.EventKind { return model.EventWeather }
func (e *Weather) Negative() bool        { return true }

func (e *Weather) CanTrigger(ctx *Context) bool {
	return ctx.Location != model.LocShelter && e.timeConditionMet(ctx)
}

func (e *Weather) Chance(ctx *Context) float64 { return e.chance(ctx, true) }

func (e *Weather) Fire(ctx *Context) Outcome {
	return Outcome{
		Kind:    model.EventWeather,
		Message: "Sudden rain!",
		LogType: model.LogNegative,
	}
}

func (e *Weather) Prompt() model.Prompt {
	return model.Prompt{
		Title:       "Bad Weather",
		Description: "It started raining. You're getting soaked and cold (-5 health, -5 hunger).",
		Choices: []model.Choice{
			{Label: "Endure It", Value: "continue"},
			{Label: "Seek Shelter", Value: "stop", Variant: "safe"},
		},
	}
}

func (e *Weather) ProcessChoice(choice string, ctx *Context) Consequence {
	ctx.Player.ApplyStats(model.StatDelta{Health: -5, Hunger: -5})
	if choice == "stop" {
		return Consequence{
			Message:    "Sought shelter from rain. -5 health, -5 hunger.",
			LogType:    model.LogNegative,
			StopAction: true,
		}
	}
	return Consequence{
		Message: "Endured the rain. -5 health, -5 hunger.",
		LogType: model.LogNegative,
	}
}

// Nightmare disturbs sleep.
type Nightmare struct {
	base
	healthLoss int
}

func (e *Nightmare) Kind() model.EventKind { return model.EventNightmare }
func (e *Nightmare) Negative() bool        { return true }

func (e *Nightmare) CanTrigger(ctx *Context) bool {
	return ctx.Action != nil && ctx.Action.Kind() == model.ActionSleep && e.timeConditionMet(ctx)
}

func (e *Nightmare) Chance(ctx *Context) float64 { return e.chance(ctx, true) }

func (e *Nightmare) Fire(ctx *Context) Outcome {
	e.healthLoss = e.severityRange(ctx, "health_loss", levelOr(e.config.Severity, balance.PresetLow))
	return Outcome{
		Kind:    model.EventNightmare,
		Message: "You're having a nightmare...",
		LogType: model.LogNegative,
	}
}

func (e *Nightmare) Prompt() model.Prompt {
	return model.Prompt{
		Title:       "Nightmare",
		Description: fmt.Sprintf("You wake from a terrible nightmare, heart pounding (-%d health).", e.healthLoss),
		Choices: []model.Choice{
			{Label: "Try to Sleep More", Value: "continue", Variant: "safe"},
			{Label: "Give Up", Value: "stop"},
		},
	}
}

func (e *Nightmare) ProcessChoice(choice string, ctx *Context) Consequence {
	ctx.Player.ApplyStats(model.StatDelta{Health: -e.healthLoss})
	if choice == "stop" {
		return Consequence{
			Message:    fmt.Sprintf("Gave up trying to sleep. -%d health.", e.healthLoss),
			LogType:    model.LogNegative,
			StopAction: true,
		}
	}
	return Consequence{
		Message: fmt.Sprintf("Tried to sleep despite nightmare. -%d health.", e.healthLoss),
		LogType: model.LogNegative,
	}
}

// WorkAccident is an injury on the job. Reporting is safe, hiding it is
// free, demanding compensation can get the player fired and their accrued
// wages wiped.
type WorkAccident struct {
	base
	healthLoss int
}

func (e *WorkAccident) Kind() model.EventKind { return model.EventWorkAccident }
func (e *WorkAccident) Negative() bool        { return true }

func (e *WorkAccident) CanTrigger(ctx *Context) bool {
	return ctx.Action != nil && ctx.Action.Kind() == model.ActionWork && e.timeConditionMet(ctx)
}

func (e *WorkAccident) Chance(ctx *Context) float64 { return e.chance(ctx, true) }

func (e *WorkAccident) Fire(ctx *Context) Outcome {
	e.healthLoss = e.severityRange(ctx, "health_loss", levelOr(e.config.Severity, balance.PresetMedium))
	return Outcome{
		Kind:    model.EventWorkAccident,
		Message: "Accident at work! You've been injured.",
		LogType: model.LogNegative,
	}
}

func (e *WorkAccident) Prompt() model.Prompt {
	return model.Prompt{
		Title:       "WORK ACCIDENT",
		Description: fmt.Sprintf("You've been injured at work (-%d health). Your employer is asking what happened.", e.healthLoss),
		Choices: []model.Choice{
			{Label: "Report Injury", Value: "report", Variant: "safe"},
			{Label: "Hide It", Value: "hide"},
			{Label: "Demand Compensation", Value: "demand", Variant: "danger"},
		},
	}
}

func (e *WorkAccident) ProcessChoice(choice string, ctx *Context) Consequence {
	ctx.Player.ApplyStats(model.StatDelta{Health: -e.healthLoss})
	switch choice {
	case "report":
		compensation := ctx.RNG.Range(10, 20)
		ctx.Player.ApplyStats(model.StatDelta{Money: compensation})
		return Consequence{
			Message: fmt.Sprintf("Reported injury. Got £%d compensation and -%d health.", compensation, e.healthLoss),
			LogType: model.LogNeutral,
		}
	case "hide":
		return Consequence{
			Message: fmt.Sprintf("Kept working through pain. -%d health.", e.healthLoss),
			LogType: model.LogNegative,
		}
	case "demand":
		if ctx.RNG.Range(1, 100) <= 30 {
			paid := ctx.RNG.Range(30, 50)
			ctx.Player.ApplyStats(model.StatDelta{Money: paid})
			return Consequence{
				Message: fmt.Sprintf("They paid £%d to avoid trouble! -%d health.", paid, e.healthLoss),
				LogType: model.LogPositive,
			}
		}
		if ctx.Action != nil {
			ctx.Action.ClearDeferredPay()
		}
		return Consequence{
			Message:    fmt.Sprintf("They fired you! Lost work earnings and -%d health.", e.healthLoss),
			LogType:    model.LogNegative,
			StopAction: true,
		}
	default:
		return Consequence{Message: "Something went wrong.", LogType: model.LogNeutral}
	}
}
