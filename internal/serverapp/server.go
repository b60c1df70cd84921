// Package serverapp assembles the web front end: session, websocket hub,
// telemetry and routes behind the middleware chain.
package serverapp

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/kozlovfedor-boop/get-off-the-street/internal/balance"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/engine"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/httpmw"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/server"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/telemetry"
	staticfiles "github.com/kozlovfedor-boop/get-off-the-street/static"
)

type Options struct {
	Config        *balance.Config
	StaticDir     string
	UseDiskStatic bool
	Logger        *log.Logger
	// Seed fixes the session's random stream; zero seeds from the clock.
	Seed int64
}

// NewHandler builds the full HTTP handler and the app behind it. The
// caller must run app.Hub.Run before the websocket does anything useful.
func NewHandler(opts Options) (http.Handler, *server.App, error) {
	if opts.Config == nil {
		return nil, nil, errors.New("config is required")
	}
	if strings.TrimSpace(opts.StaticDir) == "" {
		opts.StaticDir = "static"
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	repo := telemetry.NewMemoryRepository()
	hub := server.NewHub(opts.Logger)
	presenter := server.NewPresenter(hub, repo)

	session := engine.New(engine.Options{
		Config:    opts.Config,
		Logger:    opts.Logger,
		Presenter: presenter,
		Seed:      opts.Seed,
	})
	presenter.Attach(session)

	app := &server.App{
		Session:   session,
		Hub:       hub,
		Presenter: presenter,
		Telemetry: repo,
		Logger:    opts.Logger,
		BootTime:  time.Now(),
	}
	hub.SetCommandHandler(app.HandleCommand)

	mux := http.NewServeMux()
	rr := &server.RouteRegistry{}
	app.Register(mux, rr)

	staticHandler := http.FileServer(http.FS(staticfiles.EmbeddedFS()))
	if opts.UseDiskStatic {
		staticHandler = http.FileServer(http.Dir(opts.StaticDir))
	}
	mux.Handle("/", staticHandler)

	return httpmw.Chain(
		mux,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
	), app, nil
}

func UseDiskStaticByEnv() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("STREET_DEV_STATIC"))) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
