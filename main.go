// Command get-off-the-street runs the street survival game in the
// terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/kozlovfedor-boop/get-off-the-street/internal/balance"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/cli"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/engine"
)

func main() {
	balancePath := flag.String("balance", "", "path to a balance yaml file (default: built-in table)")
	seed := flag.Int64("seed", 0, "fixed random seed (0 seeds from the clock)")
	flag.Parse()

	cfg, err := balance.LoadOrDefault(*balancePath)
	if err != nil {
		log.Fatalf("load balance: %v", err)
	}

	front := cli.New(os.Stdin, os.Stdout)
	session := engine.New(engine.Options{
		Config:    cfg,
		Logger:    log.Default(),
		Presenter: front,
		Seed:      *seed,
	})
	front.Attach(session)

	if err := front.Run(context.Background()); err != nil && !errors.Is(err, io.EOF) {
		log.Fatal(err)
	}
}
