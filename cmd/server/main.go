// Command server runs the street survival game behind a web UI.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	"github.com/kozlovfedor-boop/get-off-the-street/internal/balance"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/serverapp"
)

func main() {
	addr := flag.String("addr", ":8420", "listen address")
	balancePath := flag.String("balance", "", "path to a balance yaml file (default: built-in table)")
	seed := flag.Int64("seed", 0, "fixed random seed (0 seeds from the clock)")
	flag.Parse()

	cfg, err := balance.LoadOrDefault(*balancePath)
	if err != nil {
		log.Fatalf("load balance: %v", err)
	}

	handler, app, err := serverapp.NewHandler(serverapp.Options{
		Config:        cfg,
		StaticDir:     "static",
		UseDiskStatic: serverapp.UseDiskStaticByEnv(),
		Logger:        log.Default(),
		Seed:          *seed,
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}

	ctx := context.Background()
	go app.Hub.Run(ctx)

	log.Printf("listening on http://localhost%s", *addr)
	log.Fatal(http.ListenAndServe(*addr, handler))
}
