// Package cli is the terminal front end: a command loop over the session
// plus the terminal Presenter. Input is matched forgivingly, so "panhndle"
// still begs for change.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/kozlovfedor-boop/get-off-the-street/internal/engine"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/model"
)

// command is one recognized verb with its aliases.
type command struct {
	canonical string
	aliases   []string
}

var commands = []command{
	{canonical: "work"},
	{canonical: "panhandle", aliases: []string{"beg"}},
	{canonical: "steal"},
	{canonical: "sleep", aliases: []string{"rest"}},
	{canonical: "food", aliases: []string{"find food", "search", "scavenge"}},
	{canonical: "eat", aliases: []string{"meal"}},
	{canonical: "buy", aliases: []string{"buy food", "shop"}},
	{canonical: "go", aliases: []string{"travel", "move", "walk"}},
	{canonical: "look", aliases: []string{"l", "where am i", "status"}},
	{canonical: "rep", aliases: []string{"reputation", "factions"}},
	{canonical: "log", aliases: []string{"history"}},
	{canonical: "restart", aliases: []string{"new game"}},
	{canonical: "help", aliases: []string{"h", "?", "commands"}},
	{canonical: "quit", aliases: []string{"exit", "q"}},
}

// actionVerbs maps command verbs to action kinds.
var actionVerbs = map[string]model.ActionKind{
	"work":      model.ActionWork,
	"panhandle": model.ActionPanhandle,
	"steal":     model.ActionSteal,
	"sleep":     model.ActionSleep,
	"food":      model.ActionFindFood,
	"eat":       model.ActionEat,
	"buy":       model.ActionBuyFood,
}

// CLI runs the game in a terminal.
type CLI struct {
	session *engine.Session
	in      *bufio.Scanner
	out     io.Writer
}

// New builds the terminal front end. Attach the session afterwards; the
// presenter has to exist before the session does.
func New(in io.Reader, out io.Writer) *CLI {
	return &CLI{in: bufio.NewScanner(in), out: out}
}

// Attach wires the session this CLI drives.
func (c *CLI) Attach(s *engine.Session) { c.session = s }

// Log prints one narration line with its in-game timestamp.
func (c *CLI) Log(e model.LogEntry) {
	marker := " "
	switch e.Type {
	case model.LogPositive:
		marker = "+"
	case model.LogNegative:
		marker = "-"
	}
	fmt.Fprintf(c.out, "[Day %d %02d:00] %s %s\n", e.Day, e.Hour, marker, e.Message)
}

// Choose shows an event prompt and blocks for the player's pick. Input may
// be the option number, its label or its value, matched forgivingly.
func (c *CLI) Choose(ctx context.Context, prompt model.Prompt) (string, error) {
	fmt.Fprintf(c.out, "\n== %s ==\n%s\n", prompt.Title, prompt.Description)
	for i, ch := range prompt.Choices {
		fmt.Fprintf(c.out, "  %d) %s\n", i+1, ch.Label)
	}
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Fprint(c.out, "choice> ")
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		raw := strings.TrimSpace(c.in.Text())
		if raw == "" {
			continue
		}
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= len(prompt.Choices) {
			return prompt.Choices[n-1].Value, nil
		}
		if v, ok := matchChoice(raw, prompt.Choices); ok {
			return v, nil
		}
		fmt.Fprintln(c.out, "Pick one of the numbered options.")
	}
}

// StateChanged is a no-op in the terminal; output is already linear.
func (c *CLI) StateChanged() {}

// Run is the interactive loop. It returns on quit, EOF or context
// cancellation.
func (c *CLI) Run(ctx context.Context) error {
	c.printState()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(c.out, "\n> ")
		if !c.in.Scan() {
			return c.in.Err()
		}
		line := strings.TrimSpace(strings.ToLower(c.in.Text()))
		if line == "" {
			continue
		}

		verb, rest, ok := matchCommand(line)
		if !ok {
			fmt.Fprintln(c.out, "I don't understand. Try 'help'.")
			continue
		}

		switch verb {
		case "quit":
			fmt.Fprintln(c.out, "Goodbye.")
			return nil
		case "help":
			c.printHelp()
		case "look":
			c.printState()
		case "rep":
			c.printReputation()
		case "log":
			c.printHistory()
		case "restart":
			c.session.Restart()
			c.printState()
		case "go":
			c.travel(ctx, rest)
		default:
			kind, ok := actionVerbs[verb]
			if !ok {
				fmt.Fprintln(c.out, "I don't understand. Try 'help'.")
				continue
			}
			av, err := c.session.PerformAction(ctx, kind)
			if err != nil {
				return err
			}
			if !av.Available {
				fmt.Fprintln(c.out, av.Reason)
			}
		}
	}
}

func (c *CLI) travel(ctx context.Context, arg string) {
	names := c.session.Registry().Names()
	if arg == "" {
		fmt.Fprintln(c.out, "Go where? Destinations:")
		for _, d := range c.session.Snapshot().Destinations {
			fmt.Fprintf(c.out, "  %s (%d hop(s) %s)\n", d.Name, d.Hops, d.Direction)
		}
		return
	}

	dest, ok := matchDestination(arg, names)
	if !ok {
		fmt.Fprintf(c.out, "No such place as %q.\n", arg)
		return
	}
	av, err := c.session.Travel(ctx, dest)
	if err != nil {
		fmt.Fprintln(c.out, err.Error())
		return
	}
	if !av.Available {
		fmt.Fprintln(c.out, av.Reason)
	}
}

func (c *CLI) printState() {
	st := c.session.Snapshot()
	fmt.Fprintf(c.out, "\n-- %s, Day %d, %s (%s) --\n", st.LocationName, st.Player.Day, st.TimeDisplay, st.Period)
	fmt.Fprintf(c.out, "%s\n", st.Description)
	fmt.Fprintf(c.out, "Money £%d | Health %d | Hunger %d | Level %d (%d/%d xp)\n",
		st.Player.Money, st.Player.Health, st.Player.Hunger,
		st.Player.Level, st.Player.Experience, st.Player.XPForNextLevel)

	fmt.Fprintln(c.out, "Actions here:")
	for _, a := range st.Actions {
		if a.Availability.Available {
			fmt.Fprintf(c.out, "  %-10s %dh, money %s, hunger %s, risk %s\n",
				a.Kind, a.Preview.TimeCost, a.Preview.Money, a.Preview.Hunger, a.Preview.Risk)
		} else {
			fmt.Fprintf(c.out, "  %-10s [unavailable: %s]\n", a.Kind, a.Availability.Reason)
		}
	}
	if st.GameOver {
		if st.Victory {
			fmt.Fprintln(c.out, "You have won. 'restart' to play again.")
		} else {
			fmt.Fprintln(c.out, "Game over. 'restart' to try again.")
		}
	}
}

func (c *CLI) printReputation() {
	for _, f := range c.session.Snapshot().Factions {
		fmt.Fprintf(c.out, "%-16s %3d  %s\n", f.Name, f.Score, f.Tier)
	}
}

func (c *CLI) printHistory() {
	for _, e := range c.session.History() {
		c.Log(e)
	}
}

func (c *CLI) printHelp() {
	fmt.Fprintln(c.out, "Commands: work, panhandle, steal, sleep, food, eat, buy, go <place>, look, rep, log, restart, help, quit")
}

// matchCommand maps input to a canonical verb: exact, then prefix, then
// within edit distance. Returns the remainder for verbs that take an
// argument.
func matchCommand(line string) (verb, rest string, ok bool) {
	for _, cmd := range commands {
		for _, alias := range append([]string{cmd.canonical}, cmd.aliases...) {
			if line == alias {
				return cmd.canonical, "", true
			}
			if strings.HasPrefix(line, alias+" ") {
				return cmd.canonical, strings.TrimSpace(line[len(alias):]), true
			}
		}
	}

	first, rest, _ := strings.Cut(line, " ")

	type scored struct {
		verb string
		dist int
	}
	var best []scored
	for _, cmd := range commands {
		for _, alias := range append([]string{cmd.canonical}, cmd.aliases...) {
			if strings.Contains(alias, " ") {
				continue
			}
			if len(first) >= 2 && strings.HasPrefix(alias, first) {
				best = append(best, scored{cmd.canonical, 0})
				continue
			}
			dist := levenshtein.ComputeDistance(first, alias)
			if dist <= levenshteinLimit(len(alias)) {
				best = append(best, scored{cmd.canonical, dist})
			}
		}
	}
	if len(best) == 0 {
		return "", "", false
	}
	sort.SliceStable(best, func(i, j int) bool { return best[i].dist < best[j].dist })
	return best[0].verb, strings.TrimSpace(rest), true
}

// matchDestination resolves a place name against the registry, tolerating
// partial and misspelled input.
func matchDestination(arg string, names map[model.LocationID]string) (model.LocationID, bool) {
	arg = strings.ToLower(strings.TrimSpace(arg))

	type cand struct {
		id   model.LocationID
		dist int
	}
	var best []cand
	for id, name := range names {
		lowID := strings.ToLower(string(id))
		lowName := strings.ToLower(name)
		if arg == lowID || arg == lowName {
			return id, true
		}
		if strings.Contains(lowID, arg) || strings.Contains(lowName, arg) {
			best = append(best, cand{id, 0})
			continue
		}
		// Misspellings tend to target a single word of the name, so
		// compare against each word as well as the whole.
		words := []string{lowID, lowName}
		words = append(words, strings.FieldsFunc(lowID+" "+lowName, func(r rune) bool {
			return r == ' ' || r == '-'
		})...)
		d := -1
		for _, w := range words {
			if wd := levenshtein.ComputeDistance(arg, w); d < 0 || wd < d {
				d = wd
			}
		}
		if d >= 0 && d <= levenshteinLimit(len(arg)) {
			best = append(best, cand{id, d})
		}
	}
	if len(best) == 0 {
		return "", false
	}
	sort.SliceStable(best, func(i, j int) bool {
		if best[i].dist == best[j].dist {
			return best[i].id < best[j].id
		}
		return best[i].dist < best[j].dist
	})
	return best[0].id, true
}

// matchChoice resolves free-text input against prompt options.
func matchChoice(raw string, choices []model.Choice) (string, bool) {
	n := strings.ToLower(strings.TrimSpace(raw))
	for _, ch := range choices {
		if n == strings.ToLower(ch.Value) || n == strings.ToLower(ch.Label) {
			return ch.Value, true
		}
	}
	for _, ch := range choices {
		if strings.HasPrefix(strings.ToLower(ch.Label), n) || strings.HasPrefix(strings.ToLower(ch.Value), n) {
			return ch.Value, true
		}
	}
	for _, ch := range choices {
		if levenshtein.ComputeDistance(n, strings.ToLower(ch.Value)) <= levenshteinLimit(len(ch.Value)) {
			return ch.Value, true
		}
	}
	return "", false
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
