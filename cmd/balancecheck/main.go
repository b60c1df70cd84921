// Command balancecheck validates and generates balance tables, so a
// hand-tuned yaml file can be checked before the game loads it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kozlovfedor-boop/get-off-the-street/internal/balance"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "validate":
		if err := cmdValidate(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "validate failed:", err)
			os.Exit(1)
		}
	case "dump":
		if err := cmdDump(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "dump failed:", err)
			os.Exit(1)
		}
	default:
		printUsage()
		os.Exit(2)
	}
}

func cmdValidate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	file := fs.String("file", "", "balance yaml file to validate")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("-file is required")
	}

	cfg, err := balance.Load(*file)
	if err != nil {
		return err
	}

	fmt.Printf("%s: ok (%d locations, %d factions, %d tiers)\n",
		*file, len(cfg.Locations), len(cfg.Reputation.Factions), len(cfg.Reputation.Tiers))
	return nil
}

func cmdDump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	out := fs.String("out", "balance.yml", "output path for the built-in table")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := os.Stat(*out); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", *out)
	}

	if err := balance.Default().Save(*out); err != nil {
		return err
	}
	fmt.Printf("wrote built-in balance table to %s\n", *out)
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage:
  balancecheck validate -file balance.yml
  balancecheck dump [-out balance.yml]`)
}
