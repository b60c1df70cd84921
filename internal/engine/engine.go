// Package engine drives the simulation: one action in flight at a time,
// advanced hour by hour, suspending on fired events until the presenter
// reports the player's choice.
package engine

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/kozlovfedor-boop/get-off-the-street/internal/action"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/balance"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/clock"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/event"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/location"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/model"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/player"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/reputation"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/statmath"
)

// Presenter is the session's only view of the outside world. Log and
// StateChanged must not block; Choose blocks until the player decides.
type Presenter interface {
	Log(entry model.LogEntry)
	Choose(ctx context.Context, prompt model.Prompt) (string, error)
	StateChanged()
}

// Options configures a session.
type Options struct {
	Config    *balance.Config
	Logger    *log.Logger
	Presenter Presenter
	// Seed fixes the random stream; zero seeds from the wall clock.
	Seed int64
}

// Session is one playthrough. All mutation runs through PerformAction,
// Travel and Restart; snapshots are safe to take concurrently except while
// an hour is being applied.
type Session struct {
	cfg       *balance.Config
	logger    *log.Logger
	presenter Presenter

	mu       sync.Mutex
	player   *player.Player
	ledger   *reputation.Ledger
	registry *location.Registry
	clock    *clock.TimeManager
	rng      *statmath.RNG
	location model.LocationID
	history  []model.LogEntry
	busy     bool
	gameOver bool
	victory  bool
}

// New builds a session at the configured starting state and logs the
// opening lines.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	var rng *statmath.RNG
	if opts.Seed != 0 {
		rng = statmath.New(opts.Seed)
	} else {
		rng = statmath.NewFromTime()
	}
	s := &Session{
		cfg:       opts.Config,
		logger:    logger,
		presenter: opts.Presenter,
		player:    player.New(opts.Config),
		ledger:    reputation.New(opts.Config, logger),
		registry:  location.NewRegistry(opts.Config, logger),
		clock:     clock.New(opts.Config.Constants.Starting.Hour),
		rng:       rng,
		location:  opts.Config.Constants.Starting.Location,
	}
	s.logIntro()
	return s
}

func (s *Session) logIntro() {
	s.log("You're on the streets of London with nothing to your name.", model.LogNeutral)
	s.log(fmt.Sprintf("Reach £%d while staying healthy to get off the street.", s.cfg.Constants.Victory.Money), model.LogNeutral)
	s.log("Day 1 begins.", model.LogNeutral)
}

// log records an entry with the current in-game timestamp and hands it to
// the presenter. Callers hold the session lock or run before concurrency
// starts.
func (s *Session) log(message string, t model.LogType) {
	entry := model.LogEntry{
		Message: message,
		Type:    t,
		Day:     s.player.Day,
		Hour:    s.clock.Hour(),
	}
	s.history = append(s.history, entry)
	s.presenter.Log(entry)
}

// Registry exposes the location registry for presenters.
func (s *Session) Registry() *location.Registry { return s.registry }

// PerformAction starts the named action at the current location and drives
// it to completion, suspending on events. The returned availability says
// why nothing happened when it is negative; the error reports presenter
// failures only.
func (s *Session) PerformAction(ctx context.Context, kind model.ActionKind) (model.Availability, error) {
	s.mu.Lock()
	loc, ok := s.registry.Get(s.location)
	if !ok {
		s.mu.Unlock()
		return model.Unavailable("nowhere to act"), nil
	}
	if av := s.admit(); !av.Available {
		s.mu.Unlock()
		return av, nil
	}
	act, ok := loc.Action(kind)
	if !ok {
		s.mu.Unlock()
		return model.Unavailable(fmt.Sprintf("You can't %s at %s.", kind, loc.Name)), nil
	}
	if av := loc.Availability(kind, s.player, s.ledger, s.clock); !av.Available {
		s.mu.Unlock()
		return av, nil
	}
	s.busy = true
	s.mu.Unlock()

	defer s.clearBusy()
	if err := s.run(ctx, act, loc.Name); err != nil {
		return model.Available(), err
	}
	return model.Available(), nil
}

// Travel moves the player to another location, one hop per hour.
func (s *Session) Travel(ctx context.Context, destination model.LocationID) (model.Availability, error) {
	s.mu.Lock()
	if av := s.admit(); !av.Available {
		s.mu.Unlock()
		return av, nil
	}
	tr, err := s.registry.Travel(s.location, destination)
	if err != nil {
		s.mu.Unlock()
		return model.Unavailable(err.Error()), nil
	}
	s.busy = true
	s.mu.Unlock()

	defer s.clearBusy()
	if err := s.run(ctx, tr, s.registry.Names()[s.location]); err != nil {
		return model.Available(), err
	}
	return model.Available(), nil
}

// admit is the shared entry guard. Caller holds the lock.
func (s *Session) admit() model.Availability {
	if s.busy {
		return model.Unavailable("You're in the middle of something.")
	}
	if s.gameOver {
		if s.victory {
			return model.Unavailable("You've made it off the street. Restart to play again.")
		}
		return model.Unavailable("The game is over. Restart to try again.")
	}
	return model.Available()
}

func (s *Session) clearBusy() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

// run drives one action from Begin to settlement.
func (s *Session) run(ctx context.Context, act action.Action, locationName string) error {
	s.mu.Lock()
	rt := &action.Runtime{
		Player:       s.player,
		Ledger:       s.ledger,
		RNG:          s.rng,
		Location:     s.location,
		LocationName: locationName,
	}
	res := act.Begin(rt)

	if res.Failed {
		s.log(res.Message, res.LogType)
		s.mu.Unlock()
		s.presenter.StateChanged()
		return nil
	}

	s.log(res.Message, res.LogType)

	if act.Instant() || res.TimeCost <= 0 {
		s.player.ApplyStats(res.Stats)
		s.settle(act, res)
		s.checkEnd()
		s.mu.Unlock()
		s.presenter.StateChanged()
		return nil
	}
	s.mu.Unlock()

	stopped := false
	for hour := 0; hour < res.TimeCost && !stopped; hour++ {
		s.mu.Lock()

		delta := act.PerHourStats(hour)
		s.player.ApplyStats(delta)

		if msg, lt := act.LogMessage(hour, res.TimeCost, delta); msg != "" {
			s.log(msg, lt)
		}

		if s.player.IsStarving() {
			if loss, applied := s.player.ApplyStarvationPenalty(s.rng); applied {
				s.log(fmt.Sprintf("You're starving! -%d health.", loss), model.LogNegative)
			}
		}

		fired := s.evaluateEvents(act, hour, res.TimeCost)
		if fired != nil {
			outcome := fired.outcome
			s.log(outcome.Message, outcome.LogType)
			prompt := fired.event.Prompt()
			s.mu.Unlock()
			s.presenter.StateChanged()

			choice, err := s.presenter.Choose(ctx, prompt)

			s.mu.Lock()
			if err != nil {
				s.mu.Unlock()
				return fmt.Errorf("event choice: %w", err)
			}
			consequence := fired.event.ProcessChoice(choice, fired.ctx)
			s.log(consequence.Message, consequence.LogType)
			s.applyReputation(fired.event.ReputationEffects())
			stopped = consequence.StopAction
		}

		if days := s.clock.Advance(1); days > 0 {
			s.player.NextDay(days)
			s.log(fmt.Sprintf("Day %d begins.", s.player.Day), model.LogNeutral)
		}

		if tr, ok := act.(*action.Travel); ok {
			path := tr.Path()
			if hour+1 < len(path) {
				s.location = path[hour+1]
			}
		}

		if s.checkEnd() {
			s.mu.Unlock()
			s.presenter.StateChanged()
			return nil
		}

		s.mu.Unlock()
		s.presenter.StateChanged()
	}

	s.mu.Lock()
	s.settle(act, res)
	s.checkEnd()
	s.mu.Unlock()
	s.presenter.StateChanged()
	return nil
}

// settle pays out deferred wages, grants XP and applies the action's
// reputation effects. Caller holds the lock.
func (s *Session) settle(act action.Action, res action.Result) {
	if dp, ok := act.(action.DeferredPayer); ok && act.DefersPayment() {
		if pay := dp.FinalPayment(); pay > 0 {
			s.player.ApplyStats(model.StatDelta{Money: pay})
			msg, lt := dp.FinalLog()
			s.log(msg, lt)
		}
	}

	if levels := s.player.AddExperience(res.XPReward); levels > 0 {
		s.log(fmt.Sprintf("Level up! You're now level %d.", s.player.Level), model.LogPositive)
	}

	s.applyReputation(act.ReputationEffects())
}

func (s *Session) applyReputation(effects map[model.FactionID]balance.RepEffect) {
	changes := s.ledger.ApplyEffects(effects)
	names := map[model.FactionID]string{}
	for _, f := range s.cfg.Reputation.Factions {
		names[f.ID] = f.Name
	}
	for _, ch := range changes {
		t := model.LogPositive
		sign := "+"
		if ch.Delta < 0 {
			t = model.LogNegative
			sign = ""
		}
		s.log(fmt.Sprintf("%s reputation %s%d.", names[ch.Faction], sign, ch.Delta), t)
	}
}

// checkEnd evaluates loss then victory and reports whether the game just
// ended. Caller holds the lock.
func (s *Session) checkEnd() bool {
	if s.gameOver {
		return true
	}
	if !s.player.IsAlive() {
		s.gameOver = true
		s.victory = false
		s.log("Your health gave out. The street has won.", model.LogNegative)
		return true
	}
	if s.player.HasWon() {
		s.gameOver = true
		s.victory = true
		s.log(fmt.Sprintf("You've saved £%d. You're getting off the street!", s.player.Money), model.LogPositive)
		return true
	}
	return false
}

type firedEvent struct {
	event   event.Event
	outcome event.Outcome
	ctx     *event.Context
}

// evaluateEvents rolls the action's events in configured order; the first
// success fires, at most one per hour. A panicking event is logged and
// treated as if it had not triggered. Caller holds the lock.
func (s *Session) evaluateEvents(act action.Action, hourIndex, totalHours int) (fired *firedEvent) {
	events := act.Events()
	if len(events) == 0 {
		return nil
	}
	ectx := &event.Context{
		Player:     s.player,
		Ledger:     s.ledger,
		Clock:      s.clock,
		RNG:        s.rng,
		Location:   s.location,
		Action:     act,
		HourIndex:  hourIndex,
		TotalHours: totalHours,
	}
	for _, ev := range events {
		triggered := func() (t bool) {
			defer func() {
				if r := recover(); r != nil {
					s.logger.Printf("event %s panicked: %v", ev.Kind(), r)
					t = false
				}
			}()
			if !ev.CanTrigger(ectx) {
				return false
			}
			return s.rng.Chance(ev.Chance(ectx))
		}()
		if !triggered {
			continue
		}
		outcome, ok := func() (o event.Outcome, ok bool) {
			defer func() {
				if r := recover(); r != nil {
					s.logger.Printf("event %s panicked firing: %v", ev.Kind(), r)
					ok = false
				}
			}()
			return ev.Fire(ectx), true
		}()
		if !ok {
			return nil
		}
		return &firedEvent{event: ev, outcome: outcome, ctx: ectx}
	}
	return nil
}

// Restart wipes the playthrough back to day one.
func (s *Session) Restart() {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return
	}
	s.player.Reset()
	s.ledger.Reset()
	s.clock.Set(s.cfg.Constants.Starting.Hour)
	s.location = s.cfg.Constants.Starting.Location
	s.history = nil
	s.gameOver = false
	s.victory = false
	s.logIntro()
	s.mu.Unlock()
	s.presenter.StateChanged()
}
