package engine

import (
	"context"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kozlovfedor-boop/get-off-the-street/internal/action"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/balance"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/event"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/model"
)

type testPresenter struct {
	entries []model.LogEntry
	prompts []model.Prompt
	choice  string
	changes int

	// onChoose, when set, runs instead of returning the canned choice.
	onChoose func(prompt model.Prompt) (string, error)
}

func (p *testPresenter) Log(e model.LogEntry) { p.entries = append(p.entries, e) }

func (p *testPresenter) Choose(ctx context.Context, prompt model.Prompt) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if p.onChoose != nil {
		return p.onChoose(prompt)
	}
	return p.choice, nil
}

func (p *testPresenter) StateChanged() { p.changes++ }

func (p *testPresenter) messages() string {
	var b strings.Builder
	for _, e := range p.entries {
		b.WriteString(e.Message)
		b.WriteString("\n")
	}
	return b.String()
}

// quietConfig returns the default table with every event silenced.
func quietConfig() *balance.Config {
	cfg := balance.Default()
	cfg.Presets.Event.Chance = map[balance.PresetLevel]float64{
		balance.PresetLow:    0,
		balance.PresetMedium: 0,
		balance.PresetHigh:   0,
	}
	return cfg
}

func newSession(cfg *balance.Config, p *testPresenter, seed int64) *Session {
	return New(Options{
		Config:    cfg,
		Logger:    log.New(io.Discard, "", 0),
		Presenter: p,
		Seed:      seed,
	})
}

func TestActionLogsEveryHourAndAdvancesClock(t *testing.T) {
	p := &testPresenter{}
	s := newSession(quietConfig(), p, 5)

	av, err := s.PerformAction(context.Background(), model.ActionPanhandle)
	require.NoError(t, err)
	require.True(t, av.Available)

	msgs := p.messages()
	assert.Contains(t, msgs, "Panhandling: Hour 1/3")
	assert.Contains(t, msgs, "Panhandling: Hour 2/3")
	assert.Contains(t, msgs, "Panhandling: Hour 3/3")

	st := s.Snapshot()
	assert.Equal(t, 9, st.Hour, "three hours past the 6am start")
	assert.False(t, st.Busy)
}

func TestUnavailableActionIsRefusedNotRun(t *testing.T) {
	p := &testPresenter{}
	s := newSession(quietConfig(), p, 5)

	// No work at the park.
	av, err := s.PerformAction(context.Background(), model.ActionWork)
	require.NoError(t, err)
	assert.False(t, av.Available)
	assert.NotEmpty(t, av.Reason)

	st := s.Snapshot()
	assert.Equal(t, 6, st.Hour, "a refusal costs no time")
}

func TestBusyGuardRefusesReentrantAction(t *testing.T) {
	cfg := quietConfig()
	// Force the park sleep robbery to fire every eligible hour.
	cfg.Presets.Event.Chance[balance.PresetMedium] = 1

	p := &testPresenter{}
	var s *Session
	var reentrant model.Availability
	p.onChoose = func(prompt model.Prompt) (string, error) {
		av, err := s.PerformAction(context.Background(), model.ActionPanhandle)
		require.NoError(t, err)
		reentrant = av
		return "submit", nil
	}
	s = newSession(cfg, p, 5)

	// Sleep at the park at night so the robbery can trigger.
	s.clock.Set(23)
	av, err := s.PerformAction(context.Background(), model.ActionSleep)
	require.NoError(t, err)
	require.True(t, av.Available)

	require.NotEmpty(t, p.prompts, "robbery should have fired")
	assert.False(t, reentrant.Available, "session must refuse actions mid-run")
}

func TestEventChoiceCanStopActionEarly(t *testing.T) {
	cfg := quietConfig()
	cfg.Presets.Event.Chance[balance.PresetMedium] = 1

	p := &testPresenter{choice: "stop"}
	s := newSession(cfg, p, 5)

	// Park sleep carries a medium-chance weather event, now certain.
	startHour := s.Snapshot().Hour
	av, err := s.PerformAction(context.Background(), model.ActionSleep)
	require.NoError(t, err)
	require.True(t, av.Available)

	require.NotEmpty(t, p.prompts)
	st := s.Snapshot()
	assert.Equal(t, startHour+1, st.Hour, "stopping after hour one leaves the rest of the time unspent")
}

func TestStarvationDrainsHealthEachHour(t *testing.T) {
	cfg := quietConfig()
	cfg.Constants.Starting.Hunger = 5

	p := &testPresenter{}
	s := newSession(cfg, p, 5)

	_, err := s.PerformAction(context.Background(), model.ActionPanhandle)
	require.NoError(t, err)

	assert.Contains(t, p.messages(), "starving")
	st := s.Snapshot()
	assert.Less(t, st.Player.Health, 100)
}

func TestVictoryEndsTheGame(t *testing.T) {
	cfg := quietConfig()
	cfg.Constants.Victory.Money = 1

	p := &testPresenter{}
	s := newSession(cfg, p, 5)

	av, err := s.PerformAction(context.Background(), model.ActionPanhandle)
	require.NoError(t, err)
	require.True(t, av.Available)

	over, victory := s.GameOver()
	assert.True(t, over)
	assert.True(t, victory)
	assert.Contains(t, p.messages(), "off the street")

	av, err = s.PerformAction(context.Background(), model.ActionPanhandle)
	require.NoError(t, err)
	assert.False(t, av.Available, "a finished game refuses actions")
}

func TestStarvingToDeathEndsTheGame(t *testing.T) {
	cfg := quietConfig()
	cfg.Constants.Starting.Health = 3
	cfg.Constants.Starting.Hunger = 0

	p := &testPresenter{}
	s := newSession(cfg, p, 5)

	_, err := s.PerformAction(context.Background(), model.ActionPanhandle)
	require.NoError(t, err)

	over, victory := s.GameOver()
	assert.True(t, over)
	assert.False(t, victory)
	assert.Contains(t, p.messages(), "The street has won")
}

func TestTravelMovesThePlayer(t *testing.T) {
	p := &testPresenter{}
	s := newSession(quietConfig(), p, 5)

	av, err := s.Travel(context.Background(), model.LocLondon)
	require.NoError(t, err)
	require.True(t, av.Available)

	assert.Equal(t, model.LocLondon, s.Location())
	assert.Contains(t, p.messages(), "Arrived at London City")

	st := s.Snapshot()
	assert.Equal(t, 8, st.Hour, "two hops from the park")
}

func TestTravelToCurrentLocationRefused(t *testing.T) {
	p := &testPresenter{}
	s := newSession(quietConfig(), p, 5)

	av, err := s.Travel(context.Background(), model.LocPark)
	require.NoError(t, err)
	assert.False(t, av.Available)
}

func TestDeferredWagesArriveAtCompletion(t *testing.T) {
	cfg := quietConfig()
	cfg.Constants.Starting.Location = model.LocCamden
	cfg.Constants.Starting.Hour = 8

	p := &testPresenter{}
	s := newSession(cfg, p, 5)

	av, err := s.PerformAction(context.Background(), model.ActionWork)
	require.NoError(t, err)
	require.True(t, av.Available)

	assert.Contains(t, p.messages(), "Work complete - Earned £")

	st := s.Snapshot()
	r := cfg.Presets.Action.Earnings[balance.PresetLow]
	if st.Player.Money < r.Min || st.Player.Money > r.Max {
		t.Fatalf("wages %d outside [%d,%d]", st.Player.Money, r.Min, r.Max)
	}
}

func TestInstantActionCostsNoTime(t *testing.T) {
	cfg := quietConfig()
	cfg.Constants.Starting.Location = model.LocShelter
	cfg.Constants.Starting.Hour = 7

	p := &testPresenter{}
	s := newSession(cfg, p, 5)

	before := s.Snapshot()
	av, err := s.PerformAction(context.Background(), model.ActionEat)
	require.NoError(t, err)
	require.True(t, av.Available)

	after := s.Snapshot()
	assert.Equal(t, before.Hour, after.Hour)
	assert.Greater(t, after.Player.Hunger, before.Player.Hunger)
}

func TestRestartResetsEverything(t *testing.T) {
	cfg := quietConfig()
	cfg.Constants.Victory.Money = 1

	p := &testPresenter{}
	s := newSession(cfg, p, 5)

	_, err := s.PerformAction(context.Background(), model.ActionPanhandle)
	require.NoError(t, err)
	over, _ := s.GameOver()
	require.True(t, over)

	s.Restart()

	over, _ = s.GameOver()
	assert.False(t, over)
	st := s.Snapshot()
	assert.Equal(t, 0, st.Player.Money)
	assert.Equal(t, 1, st.Player.Day)
	assert.Equal(t, cfg.Constants.Starting.Location, st.Location)
	assert.Equal(t, cfg.Constants.Starting.Hour, st.Hour)
}

type panicEvent struct{}

func (panicEvent) Kind() model.EventKind              { return model.EventKind("unstable") }
func (panicEvent) Negative() bool                     { return true }
func (panicEvent) CanTrigger(*event.Context) bool     { panic("boom") }
func (panicEvent) BaseChance() float64                { return 1 }
func (panicEvent) Chance(*event.Context) float64      { return 1 }
func (panicEvent) Fire(*event.Context) event.Outcome  { panic("boom") }
func (panicEvent) Prompt() model.Prompt               { return model.Prompt{} }
func (panicEvent) ProcessChoice(string, *event.Context) event.Consequence {
	return event.Consequence{}
}
func (panicEvent) ReputationEffects() map[model.FactionID]balance.RepEffect { return nil }

type panicAction struct {
	action.Action
}

func (panicAction) Events() []event.Event { return []event.Event{panicEvent{}} }

func TestPanickingEventIsAbsorbed(t *testing.T) {
	cfg := quietConfig()
	p := &testPresenter{}
	s := newSession(cfg, p, 5)

	loc, _ := s.registry.Get(model.LocPark)
	inner, _ := loc.Action(model.ActionPanhandle)

	fired := s.evaluateEvents(panicAction{Action: inner}, 0, 3)
	assert.Nil(t, fired, "a panicking event must read as no event")
}

func TestDayRolloverLogsNewDay(t *testing.T) {
	cfg := quietConfig()
	cfg.Constants.Starting.Hour = 22

	p := &testPresenter{}
	s := newSession(cfg, p, 5)

	_, err := s.PerformAction(context.Background(), model.ActionSleep)
	require.NoError(t, err)

	assert.Contains(t, p.messages(), "Day 2 begins")
	st := s.Snapshot()
	assert.Equal(t, 2, st.Player.Day)
}
