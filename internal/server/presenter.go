package server

import (
	"context"
	"errors"
	"sync"

	"github.com/kozlovfedor-boop/get-off-the-street/internal/engine"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/model"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/telemetry"
)

// ErrNoPendingChoice is returned when a choice arrives but no event is
// waiting for one.
var ErrNoPendingChoice = errors.New("no event is waiting for a choice")

// Presenter bridges the session to the web: log lines and state snapshots
// are broadcast over the hub, and event prompts park the simulation until
// a choice comes back through Resolve.
type Presenter struct {
	hub       *Hub
	telemetry telemetry.Repository

	mu      sync.Mutex
	session *engine.Session
	pending chan string
	prompt  *model.Prompt

	lastDay   int
	lastLevel int
	ended     bool
}

func NewPresenter(hub *Hub, repo telemetry.Repository) *Presenter {
	return &Presenter{hub: hub, telemetry: repo, lastDay: 1, lastLevel: 1}
}

// Attach wires the session after construction; the session needs the
// presenter to exist first.
func (p *Presenter) Attach(s *engine.Session) {
	p.mu.Lock()
	p.session = s
	p.mu.Unlock()
}

// Log pushes one narration line. Called with the session lock held, so it
// must not call back into the session.
func (p *Presenter) Log(entry model.LogEntry) {
	p.hub.Broadcast("log", entry)
}

// Choose broadcasts the prompt and blocks until Resolve delivers a value
// or the context ends.
func (p *Presenter) Choose(ctx context.Context, prompt model.Prompt) (string, error) {
	ch := make(chan string, 1)
	p.mu.Lock()
	p.pending = ch
	pr := prompt
	p.prompt = &pr
	p.mu.Unlock()

	_ = p.telemetry.RecordEvent(telemetry.EventStreetEventFired, telemetry.EventMetadata{
		"kind": prompt.Title,
	})
	p.hub.Broadcast("prompt", prompt)

	defer func() {
		p.mu.Lock()
		p.pending = nil
		p.prompt = nil
		p.mu.Unlock()
		p.hub.Broadcast("prompt_cleared", struct{}{})
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case v := <-ch:
		_ = p.telemetry.RecordEvent(telemetry.EventChoiceMade, telemetry.EventMetadata{
			"value": v,
		})
		return v, nil
	}
}

// Resolve feeds the player's choice to the waiting event.
func (p *Presenter) Resolve(value string) error {
	p.mu.Lock()
	ch := p.pending
	p.pending = nil
	p.mu.Unlock()
	if ch == nil {
		return ErrNoPendingChoice
	}
	ch <- value
	return nil
}

// PendingPrompt returns the prompt a reconnecting client must answer, or
// nil.
func (p *Presenter) PendingPrompt() *model.Prompt {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.prompt == nil {
		return nil
	}
	pr := *p.prompt
	return &pr
}

// StateChanged snapshots the session, derives day/level/ending telemetry
// from the diff and broadcasts the state. Always called with the session
// lock released.
func (p *Presenter) StateChanged() {
	p.mu.Lock()
	s := p.session
	p.mu.Unlock()
	if s == nil {
		return
	}
	st := s.Snapshot()

	p.mu.Lock()
	for d := p.lastDay; d < st.Player.Day; d++ {
		_ = p.telemetry.RecordEvent(telemetry.EventDayTick, telemetry.EventMetadata{"day": d + 1})
	}
	if st.Player.Level > p.lastLevel {
		_ = p.telemetry.RecordEvent(telemetry.EventLevelUp, telemetry.EventMetadata{"level": st.Player.Level})
	}
	if st.GameOver && !p.ended {
		t := telemetry.EventGameLost
		if st.Victory {
			t = telemetry.EventGameWon
		}
		_ = p.telemetry.RecordEvent(t, telemetry.EventMetadata{"day": st.Player.Day, "money": st.Player.Money})
	}
	if !st.GameOver && p.ended {
		// restart happened
		_ = p.telemetry.RecordEvent(telemetry.EventSessionRestarted, nil)
	}
	p.lastDay = st.Player.Day
	p.lastLevel = st.Player.Level
	p.ended = st.GameOver
	p.mu.Unlock()

	p.hub.Broadcast("state", st)
}
