package event

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kozlovfedor-boop/get-off-the-street/internal/balance"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/clock"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/model"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/player"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/reputation"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/statmath"
)

type stubOwner struct {
	kind    model.ActionKind
	cleared bool
}

func (s *stubOwner) Kind() model.ActionKind { return s.kind }
func (s *stubOwner) ClearDeferredPay()      { s.cleared = true }

func newTestContext(seed int64, action model.ActionKind, loc model.LocationID, hour int) (*Context, *balance.Config) {
	cfg := balance.Default()
	return &Context{
		Player:     player.New(cfg),
		Ledger:     reputation.New(cfg, log.New(io.Discard, "", 0)),
		Clock:      clock.New(hour),
		RNG:        statmath.New(seed),
		Location:   loc,
		Action:     &stubOwner{kind: action},
		TotalHours: 1,
	}, cfg
}

func TestBuildKnowsEveryKind(t *testing.T) {
	cfg := balance.Default()
	kinds := []model.EventKind{
		model.EventBonusTip, model.EventFindMoney, model.EventGenerousStranger,
		model.EventFreeResource, model.EventPolice, model.EventBeatenUp,
		model.EventRobbery, model.EventSickness, model.EventWeather,
		model.EventNightmare, model.EventWorkAccident,
	}
	for _, k := range kinds {
		ev, err := Build(cfg, balance.EventConfig{Type: k, Chance: balance.PresetLow})
		require.NoError(t, err, "kind %s", k)
		assert.Equal(t, k, ev.Kind())
	}
	_, err := Build(cfg, balance.EventConfig{Type: model.EventKind("alien_abduction")})
	assert.Error(t, err)
}

func TestPoliceOnlyTriggersDuringSteal(t *testing.T) {
	ctx, cfg := newTestContext(1, model.ActionSteal, model.LocCamden, 12)
	ev, err := Build(cfg, balance.EventConfig{Type: model.EventPolice, Chance: balance.PresetMedium, Severity: balance.PresetMedium})
	require.NoError(t, err)

	assert.True(t, ev.CanTrigger(ctx))

	ctx.Action = &stubOwner{kind: model.ActionWork}
	assert.False(t, ev.CanTrigger(ctx))
}

func TestPoliceFineCappedAtMoneyOnHand(t *testing.T) {
	ctx, cfg := newTestContext(7, model.ActionSteal, model.LocCamden, 12)
	ctx.Player.Money = 3

	ev, err := Build(cfg, balance.EventConfig{Type: model.EventPolice, Chance: balance.PresetMedium, Severity: balance.PresetHigh})
	require.NoError(t, err)

	out := ev.Fire(ctx)
	assert.Equal(t, model.LogNegative, out.LogType)
	assert.Equal(t, 0, ctx.Player.Money, "fine must not take more than the player has")
	assert.Equal(t, 75, ctx.Player.Health, "police beating costs 25 health")
}

func TestRobberySubmitLosesStoredAmountAndContinues(t *testing.T) {
	ctx, cfg := newTestContext(11, model.ActionSleep, model.LocPark, 23)
	ctx.Player.Money = 100

	ev, err := Build(cfg, balance.EventConfig{
		Type: model.EventRobbery, Chance: balance.PresetMedium,
		Severity: balance.PresetMedium, TimeCondition: "nighttime",
	})
	require.NoError(t, err)
	require.True(t, ev.CanTrigger(ctx))

	ev.Fire(ctx)
	assert.Equal(t, 100, ctx.Player.Money, "nothing is taken before the choice")

	c := ev.ProcessChoice("submit", ctx)
	assert.False(t, c.StopAction, "submitting lets the player keep sleeping")

	lost := 100 - ctx.Player.Money
	r := cfg.Presets.Event.MoneyLoss[balance.PresetMedium]
	if lost < r.Min || lost > r.Max {
		t.Fatalf("lost %d, want within [%d,%d]", lost, r.Min, r.Max)
	}
}

func TestRobberyGatedToRiskySpotsAtNight(t *testing.T) {
	cfg := balance.Default()
	ev, err := Build(cfg, balance.EventConfig{
		Type: model.EventRobbery, Chance: balance.PresetMedium,
		Severity: balance.PresetMedium, TimeCondition: "nighttime",
	})
	require.NoError(t, err)

	ctx, _ := newTestContext(1, model.ActionSleep, model.LocPark, 12)
	assert.False(t, ev.CanTrigger(ctx), "daytime sleep is safe")

	ctx, _ = newTestContext(1, model.ActionSleep, model.LocShelter, 23)
	assert.False(t, ev.CanTrigger(ctx), "shelter is safe at any hour")

	ctx, _ = newTestContext(1, model.ActionSleep, model.LocCamden, 2)
	assert.True(t, ev.CanTrigger(ctx))
}

func TestRobberyFightCostsHealthEitherWay(t *testing.T) {
	ctx, cfg := newTestContext(3, model.ActionSleep, model.LocPark, 23)
	ctx.Player.Money = 200

	ev, err := Build(cfg, balance.EventConfig{
		Type: model.EventRobbery, Chance: balance.PresetMedium,
		Severity: balance.PresetMedium, TimeCondition: "nighttime",
	})
	require.NoError(t, err)

	ev.Fire(ctx)
	c := ev.ProcessChoice("fight", ctx)

	assert.Equal(t, 85, ctx.Player.Health, "fighting costs 15 health win or lose")
	if c.StopAction {
		assert.Less(t, ctx.Player.Money, 200, "losing the fight loses the money too")
	} else {
		assert.Equal(t, 200, ctx.Player.Money, "winning keeps the money")
	}
}

func TestWorkAccidentDemandCanClearWages(t *testing.T) {
	cfg := balance.Default()
	firedSeen := false
	paidSeen := false

	for seed := int64(0); seed < 200; seed++ {
		owner := &stubOwner{kind: model.ActionWork}
		ctx := &Context{
			Player:   player.New(cfg),
			Ledger:   reputation.New(cfg, log.New(io.Discard, "", 0)),
			Clock:    clock.New(10),
			RNG:      statmath.New(seed),
			Location: model.LocCamden,
			Action:   owner,
		}

		ev, err := Build(cfg, balance.EventConfig{Type: model.EventWorkAccident, Chance: balance.PresetLow, Severity: balance.PresetLow})
		require.NoError(t, err)

		ev.Fire(ctx)
		c := ev.ProcessChoice("demand", ctx)

		if c.StopAction {
			firedSeen = true
			assert.True(t, owner.cleared, "getting fired wipes accrued wages")
			assert.Equal(t, 0, ctx.Player.Money)
		} else {
			paidSeen = true
			assert.False(t, owner.cleared)
			if ctx.Player.Money < 30 || ctx.Player.Money > 50 {
				t.Fatalf("compensation %d outside [30,50]", ctx.Player.Money)
			}
		}
	}

	assert.True(t, firedSeen, "no seed produced the fired branch")
	assert.True(t, paidSeen, "no seed produced the paid branch")
}

func TestWorkAccidentReportPaysSmallCompensation(t *testing.T) {
	ctx, cfg := newTestContext(5, model.ActionWork, model.LocCamden, 10)
	ev, err := Build(cfg, balance.EventConfig{Type: model.EventWorkAccident, Chance: balance.PresetLow, Severity: balance.PresetLow})
	require.NoError(t, err)

	ev.Fire(ctx)
	c := ev.ProcessChoice("report", ctx)

	assert.False(t, c.StopAction)
	if ctx.Player.Money < 10 || ctx.Player.Money > 20 {
		t.Fatalf("compensation %d outside [10,20]", ctx.Player.Money)
	}
	assert.Less(t, ctx.Player.Health, 100)
}

func TestChanceModifiers(t *testing.T) {
	ctx, cfg := newTestContext(1, model.ActionSteal, model.LocCamden, 12)
	ev, err := Build(cfg, balance.EventConfig{
		Type: model.EventPolice, Chance: balance.PresetHigh,
		Severity: balance.PresetMedium, Faction: model.FactionPolice,
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.15, ev.BaseChance(), 1e-9)
	// Neutral standing, level 1: no adjustment.
	assert.InDelta(t, 0.15, ev.Chance(ctx), 1e-9)

	// Hated standing raises the event chance.
	ctx.Ledger.Modify(model.FactionPolice, -50)
	assert.InDelta(t, 0.15*1.5, ev.Chance(ctx), 1e-9)

	// High level risk reduction lowers it, never below the floor.
	ctx.Ledger.Reset()
	for ctx.Player.Level < 10 {
		ctx.Player.AddExperience(ctx.Player.XPForNextLevel())
	}
	want := 0.15 - float64(ctx.Player.Level-1)*cfg.Level.Bonuses.Risk
	if want < 0.01 {
		want = 0.01
	}
	assert.InDelta(t, want, ev.Chance(ctx), 1e-9)
}

func TestPositiveEventsIgnoreRiskReduction(t *testing.T) {
	ctx, cfg := newTestContext(1, model.ActionWork, model.LocCamden, 12)
	ev, err := Build(cfg, balance.EventConfig{Type: model.EventBonusTip, Chance: balance.PresetMedium, Bonus: balance.PresetMedium})
	require.NoError(t, err)

	for ctx.Player.Level < 5 {
		ctx.Player.AddExperience(ctx.Player.XPForNextLevel())
	}
	assert.InDelta(t, 0.08, ev.Chance(ctx), 1e-9)
}

func TestBonusTipAppliesOnChoiceOnly(t *testing.T) {
	ctx, cfg := newTestContext(9, model.ActionWork, model.LocLondon, 10)
	ev, err := Build(cfg, balance.EventConfig{Type: model.EventBonusTip, Chance: balance.PresetMedium, Bonus: balance.PresetMedium})
	require.NoError(t, err)

	ev.Fire(ctx)
	assert.Equal(t, 0, ctx.Player.Money, "tip lands after the prompt, not before")

	c := ev.ProcessChoice("stop", ctx)
	assert.True(t, c.StopAction)
	r := cfg.Presets.Event.MoneyGain[balance.PresetMedium]
	if ctx.Player.Money < r.Min || ctx.Player.Money > r.Max {
		t.Fatalf("tip %d outside [%d,%d]", ctx.Player.Money, r.Min, r.Max)
	}
}

func TestFreeResourceGatedToScrappyLocations(t *testing.T) {
	cfg := balance.Default()
	ev, err := Build(cfg, balance.EventConfig{Type: model.EventFreeResource, Chance: balance.PresetLow, Amount: balance.PresetLow})
	require.NoError(t, err)

	ctx, _ := newTestContext(1, model.ActionPanhandle, model.LocPark, 12)
	assert.True(t, ev.CanTrigger(ctx))

	ctx, _ = newTestContext(1, model.ActionPanhandle, model.LocLondon, 12)
	assert.False(t, ev.CanTrigger(ctx))
}

func TestGenerousStrangerNeedsPanhandling(t *testing.T) {
	cfg := balance.Default()
	ev, err := Build(cfg, balance.EventConfig{
		Type: model.EventGenerousStranger, Chance: balance.PresetLow,
		Bonus: balance.PresetHigh, TimeCondition: "daytime",
	})
	require.NoError(t, err)

	ctx, _ := newTestContext(1, model.ActionPanhandle, model.LocLondon, 12)
	assert.True(t, ev.CanTrigger(ctx))

	ctx, _ = newTestContext(1, model.ActionPanhandle, model.LocLondon, 23)
	assert.False(t, ev.CanTrigger(ctx), "daytime condition")

	ctx, _ = newTestContext(1, model.ActionWork, model.LocLondon, 12)
	assert.False(t, ev.CanTrigger(ctx), "panhandle only")
}
