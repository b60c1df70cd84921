package action

import (
	"fmt"

	"github.com/kozlovfedor-boop/get-off-the-street/internal/model"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/player"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/reputation"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/statmath"
)

// Work is a long shift with wages held back until the end. Earnings accrue
// hour by hour; an employer dispute can wipe them before payout.
type Work struct {
	base

	wages   []int
	accrued int
}

func (a *Work) Kind() model.ActionKind { return model.ActionWork }
func (a *Work) DefersPayment() bool    { return true }

func (a *Work) Begin(rt *Runtime) Result {
	factor := rt.Player.LevelBonus(player.BonusEarnings) *
		rt.Ledger.Modifier(model.FactionBusiness, reputation.ModEarnings)
	earnings := a.sampleScaled(rt.RNG, "earnings", a.config.Earnings, factor)

	hungerBonus := rt.Player.LevelBonus(player.BonusHungerEfficiency)
	hunger := efficiencyScale(a.sample(rt.RNG, "hunger", a.config.Hunger), hungerBonus)

	hours := a.config.TimeCost
	a.buildSchedule(hours, model.StatDelta{Hunger: hunger})
	a.wages = statmath.Apportion(earnings, hours)
	a.accrued = 0

	return Result{
		Kind:     model.ActionWork,
		Message:  fmt.Sprintf("You found work in %s.", rt.LocationName),
		LogType:  model.LogPositive,
		TimeCost: hours,
		XPReward: a.config.XP,
	}
}

// PerHourStats accrues the hour's wage internally and reports only the
// hunger cost; money shows up at payout.
func (a *Work) PerHourStats(hourIndex int) model.StatDelta {
	if hourIndex >= 0 && hourIndex < len(a.wages) {
		a.accrued += a.wages[hourIndex]
	}
	return a.base.PerHourStats(hourIndex)
}

func (a *Work) LogMessage(hourIndex, totalHours int, stats model.StatDelta) (string, model.LogType) {
	return fmt.Sprintf("Working: Hour %d/%d - Hunger %d", hourIndex+1, totalHours, stats.Hunger), model.LogNeutral
}

func (a *Work) ClearDeferredPay() { a.accrued = 0 }

func (a *Work) FinalPayment() int { return a.accrued }

func (a *Work) FinalLog() (string, model.LogType) {
	return fmt.Sprintf("Work complete - Earned £%d", a.accrued), model.LogPositive
}

func (a *Work) Preview() model.Preview {
	return model.Preview{
		TimeCost: a.config.TimeCost,
		Money:    levelName(a.config.Earnings),
		Health:   "none",
		Hunger:   levelName(a.config.Hunger),
		Risk:     a.riskLevel(),
		Notes:    "Paid when the shift ends",
	}
}
