package server

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kozlovfedor-boop/get-off-the-street/internal/model"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/telemetry"
)

func newTestPresenter() *Presenter {
	logger := log.New(io.Discard, "", 0)
	return NewPresenter(NewHub(logger), telemetry.NewMemoryRepository())
}

func TestResolveWithoutPendingChoice(t *testing.T) {
	p := newTestPresenter()
	err := p.Resolve("fight")
	assert.ErrorIs(t, err, ErrNoPendingChoice)
}

func TestChooseBlocksUntilResolved(t *testing.T) {
	p := newTestPresenter()
	prompt := model.Prompt{
		Title: "You're being robbed!",
		Choices: []model.Choice{
			{Label: "Fight back", Value: "fight"},
			{Label: "Hand it over", Value: "submit"},
		},
	}

	got := make(chan string, 1)
	errs := make(chan error, 1)
	go func() {
		v, err := p.Choose(context.Background(), prompt)
		errs <- err
		got <- v
	}()

	// wait for the prompt to be parked
	deadline := time.Now().Add(2 * time.Second)
	for p.PendingPrompt() == nil {
		if time.Now().After(deadline) {
			t.Fatal("prompt never became pending")
		}
		time.Sleep(time.Millisecond)
	}
	assert.Equal(t, "You're being robbed!", p.PendingPrompt().Title)

	require.NoError(t, p.Resolve("submit"))
	require.NoError(t, <-errs)
	assert.Equal(t, "submit", <-got)
	assert.Nil(t, p.PendingPrompt())

	// resolved a second time, nothing is pending anymore
	assert.ErrorIs(t, p.Resolve("submit"), ErrNoPendingChoice)
}

func TestChooseHonorsContextCancellation(t *testing.T) {
	p := newTestPresenter()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Choose(ctx, model.Prompt{Title: "Trouble"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, p.PendingPrompt())
}

func TestChooseRecordsTelemetry(t *testing.T) {
	repo := telemetry.NewMemoryRepository()
	p := NewPresenter(NewHub(log.New(io.Discard, "", 0)), repo)

	done := make(chan struct{})
	go func() {
		_, _ = p.Choose(context.Background(), model.Prompt{Title: "Police!"})
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for p.PendingPrompt() == nil {
		if time.Now().After(deadline) {
			t.Fatal("prompt never became pending")
		}
		time.Sleep(time.Millisecond)
	}
	require.NoError(t, p.Resolve("accept"))
	<-done

	events, err := repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)

	var fired, chose int
	for _, e := range events {
		switch e.Type {
		case telemetry.EventStreetEventFired:
			fired++
		case telemetry.EventChoiceMade:
			chose++
		}
	}
	assert.Equal(t, 1, fired)
	assert.Equal(t, 1, chose)
}
