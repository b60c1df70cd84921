package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/kozlovfedor-boop/get-off-the-street/internal/engine"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/model"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/telemetry"
)

// App holds the state the handlers depend on: one session, one hub, one
// telemetry repo.
type App struct {
	Session   *engine.Session
	Hub       *Hub
	Presenter *Presenter
	Telemetry telemetry.Repository
	Logger    *log.Logger
	BootTime  time.Time
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error string `json:"error"`
}

// actionResponse is the body of /api/action and /api/travel. When the
// action ran, State is the post-action snapshot; when it was refused,
// Availability says why and State is unchanged.
type actionResponse struct {
	Availability model.Availability `json:"availability"`
	State        engine.State       `json:"state"`
}

// Register wires all game routes onto the mux.
func (a *App) Register(mux *http.ServeMux, rr *RouteRegistry) {
	Handle(mux, rr, "GET /healthz", "liveness probe", "", a.handleHealthz)
	Handle(mux, rr, "GET /api/state", "current game state snapshot", "", a.handleState)
	Handle(mux, rr, "GET /api/log", "full narration log", "", a.handleLog)
	Handle(mux, rr, "GET /api/prompt", "pending event prompt, if any", "", a.handlePrompt)
	Handle(mux, rr, "POST /api/action", "perform an action at the current location", `{"kind":"work"}`, a.handleAction)
	Handle(mux, rr, "POST /api/travel", "travel to another location", `{"destination":"camden-town"}`, a.handleTravel)
	Handle(mux, rr, "POST /api/choice", "answer the pending event prompt", `{"value":"fight"}`, a.handleChoice)
	Handle(mux, rr, "POST /api/restart", "start a fresh run", "", a.handleRestart)
	Handle(mux, rr, "GET /api/stats", "gameplay telemetry aggregates", "", a.handleStats)
	Handle(mux, rr, "GET /ws", "websocket push of log/state/prompt", "", a.Hub.ServeWS)

	mux.HandleFunc("GET /_/admin/routes.json", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, rr.List())
	})
}

// HandleCommand routes a websocket command the same way the HTTP
// handlers would.
func (a *App) HandleCommand(ctx context.Context, msg Message) {
	switch msg.Type {
	case "action":
		var body struct {
			Kind model.ActionKind `json:"kind"`
		}
		if err := json.Unmarshal(msg.Payload, &body); err != nil {
			return
		}
		a.performAction(ctx, body.Kind)
	case "travel":
		var body struct {
			Destination model.LocationID `json:"destination"`
		}
		if err := json.Unmarshal(msg.Payload, &body); err != nil {
			return
		}
		a.travel(ctx, body.Destination)
	case "choice":
		var body struct {
			Value string `json:"value"`
		}
		if err := json.Unmarshal(msg.Payload, &body); err != nil {
			return
		}
		_ = a.Presenter.Resolve(body.Value)
	case "restart":
		a.Session.Restart()
	default:
		a.Logger.Printf("ws unknown command type %q", msg.Type)
	}
}

func (a *App) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"service": "get-off-the-street",
		"uptime":  time.Since(a.BootTime).Round(time.Second).String(),
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

func (a *App) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Session.Snapshot())
}

func (a *App) handleLog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Session.History())
}

func (a *App) handlePrompt(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"prompt": a.Presenter.PendingPrompt(),
	})
}

func (a *App) handleAction(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Kind model.ActionKind `json:"kind"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid body: expected {\"kind\": ...}"})
		return
	}

	av, err := a.performAction(r.Context(), body.Kind)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, actionResponse{Availability: av, State: a.Session.Snapshot()})
}

func (a *App) handleTravel(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Destination model.LocationID `json:"destination"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid body: expected {\"destination\": ...}"})
		return
	}

	av, err := a.travel(r.Context(), body.Destination)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, actionResponse{Availability: av, State: a.Session.Snapshot()})
}

func (a *App) handleChoice(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid body: expected {\"value\": ...}"})
		return
	}

	if err := a.Presenter.Resolve(body.Value); err != nil {
		if errors.Is(err, ErrNoPendingChoice) {
			writeJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (a *App) handleRestart(w http.ResponseWriter, r *http.Request) {
	a.Session.Restart()
	_ = a.Telemetry.RecordEvent(telemetry.EventSessionRestarted, nil)
	writeJSON(w, http.StatusOK, a.Session.Snapshot())
}

func (a *App) handleStats(w http.ResponseWriter, r *http.Request) {
	since := a.BootTime
	if raw := r.URL.Query().Get("since"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "since must be RFC3339"})
			return
		}
		since = t
	}

	events, err := a.Telemetry.GetEvents(since, nil)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
		return
	}
	stats, err := telemetry.CalculateStats(events, since)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (a *App) performAction(ctx context.Context, kind model.ActionKind) (model.Availability, error) {
	av, err := a.Session.PerformAction(ctx, kind)
	if err != nil {
		return av, err
	}
	a.recordOutcome(telemetry.EventActionStarted, av, telemetry.EventMetadata{"kind": string(kind)})
	return av, nil
}

func (a *App) travel(ctx context.Context, destination model.LocationID) (model.Availability, error) {
	av, err := a.Session.Travel(ctx, destination)
	if err != nil {
		return av, err
	}
	a.recordOutcome(telemetry.EventTravelStarted, av, telemetry.EventMetadata{"destination": string(destination)})
	return av, nil
}

func (a *App) recordOutcome(t telemetry.EventType, av model.Availability, meta telemetry.EventMetadata) {
	if !av.Available {
		meta["reason"] = av.Reason
		t = telemetry.EventActionRefused
	}
	_ = a.Telemetry.RecordEvent(t, meta)
}
