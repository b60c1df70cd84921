package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kozlovfedor-boop/get-off-the-street/internal/model"
)

func TestMatchCommandExactAndAliases(t *testing.T) {
	cases := map[string]string{
		"work":       "work",
		"beg":        "panhandle",
		"rest":       "sleep",
		"buy food":   "buy",
		"where am i": "look",
		"q":          "quit",
		"?":          "help",
	}
	for input, want := range cases {
		verb, _, ok := matchCommand(input)
		require.True(t, ok, "input %q", input)
		assert.Equal(t, want, verb, "input %q", input)
	}
}

func TestMatchCommandNearMiss(t *testing.T) {
	cases := map[string]string{
		"panhndle": "panhandle",
		"slep":     "sleep",
		"wok":      "work",
		"steel":    "steal",
		"restrat":  "restart",
	}
	for input, want := range cases {
		verb, _, ok := matchCommand(input)
		require.True(t, ok, "input %q", input)
		assert.Equal(t, want, verb, "input %q", input)
	}
}

func TestMatchCommandPrefix(t *testing.T) {
	verb, _, ok := matchCommand("panh")
	require.True(t, ok)
	assert.Equal(t, "panhandle", verb)
}

func TestMatchCommandKeepsArgument(t *testing.T) {
	verb, rest, ok := matchCommand("go camden")
	require.True(t, ok)
	assert.Equal(t, "go", verb)
	assert.Equal(t, "camden", rest)

	verb, rest, ok = matchCommand("travel london-city")
	require.True(t, ok)
	assert.Equal(t, "go", verb)
	assert.Equal(t, "london-city", rest)
}

func TestMatchCommandRejectsGibberish(t *testing.T) {
	_, _, ok := matchCommand("xyzzyplugh")
	assert.False(t, ok)
}

func TestMatchDestination(t *testing.T) {
	names := map[model.LocationID]string{
		model.LocShelter: "The Shelter",
		model.LocPark:    "The Park",
		model.LocCamden:  "Camden Town",
		model.LocLondon:  "London City",
	}

	cases := map[string]model.LocationID{
		"park":        model.LocPark,
		"the shelter": model.LocShelter,
		"camden":      model.LocCamden,
		"cmden":       model.LocCamden,
		"londn":       model.LocLondon,
		"shleter":     model.LocShelter,
	}
	for input, want := range cases {
		got, ok := matchDestination(input, names)
		require.True(t, ok, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}

	_, ok := matchDestination("atlantis", names)
	assert.False(t, ok)
}

func TestMatchChoice(t *testing.T) {
	choices := []model.Choice{
		{Label: "Fight back", Value: "fight"},
		{Label: "Hand over the money", Value: "submit"},
		{Label: "Run away", Value: "flee"},
	}

	for input, want := range map[string]string{
		"fight":    "fight",
		"Run away": "flee",
		"hand":     "submit",
		"fite":     "fight",
	} {
		got, ok := matchChoice(input, choices)
		require.True(t, ok, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}

	_, ok := matchChoice("negotiate", choices)
	assert.False(t, ok)
}

func TestChooseAcceptsNumber(t *testing.T) {
	in := strings.NewReader("2\n")
	var out strings.Builder
	c := New(in, &out)

	v, err := c.Choose(context.Background(), model.Prompt{
		Title:       "You're being robbed!",
		Description: "A figure blocks your way.",
		Choices: []model.Choice{
			{Label: "Fight back", Value: "fight"},
			{Label: "Hand over the money", Value: "submit"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "submit", v)
	assert.Contains(t, out.String(), "You're being robbed!")
}

func TestChooseRetriesOnNonsense(t *testing.T) {
	in := strings.NewReader("whatever\nfight\n")
	var out strings.Builder
	c := New(in, &out)

	v, err := c.Choose(context.Background(), model.Prompt{
		Title:   "Trouble",
		Choices: []model.Choice{{Label: "Fight back", Value: "fight"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "fight", v)
	assert.Contains(t, out.String(), "Pick one of the numbered options.")
}
