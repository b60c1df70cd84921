package reputation

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kozlovfedor-boop/get-off-the-street/internal/balance"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/model"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	return New(balance.Default(), log.New(io.Discard, "", 0))
}

func TestEveryScoreHasExactlyOneTier(t *testing.T) {
	cfg := balance.Default()
	for score := 0; score <= 100; score++ {
		matches := 0
		for _, tier := range cfg.Reputation.Tiers {
			if score >= tier.Min && score <= tier.Max {
				matches++
			}
		}
		if matches != 1 {
			t.Fatalf("score %d matched %d tiers, want exactly 1", score, matches)
		}
	}
}

func TestModifyClampsToBounds(t *testing.T) {
	l := newTestLedger(t)

	l.Modify(model.FactionPolice, -1000)
	assert.Equal(t, 0, l.Score(model.FactionPolice))

	l.Modify(model.FactionPolice, 1000)
	assert.Equal(t, 100, l.Score(model.FactionPolice))
}

func TestModifyUnknownFactionIsNoOp(t *testing.T) {
	l := newTestLedger(t)
	before := l.Snapshot()

	l.Modify(model.FactionID("mafia"), 25)

	assert.Equal(t, before, l.Snapshot())
}

func TestTierProgression(t *testing.T) {
	l := newTestLedger(t)

	assert.Equal(t, "Neutral", l.Tier(model.FactionLocals).Name)

	l.Modify(model.FactionLocals, 30) // 80
	assert.Equal(t, "Respected", l.Tier(model.FactionLocals).Name)

	l.Modify(model.FactionLocals, 15) // 95
	assert.Equal(t, "Trusted", l.Tier(model.FactionLocals).Name)

	l.Modify(model.FactionLocals, -95) // 0
	assert.Equal(t, "Hated", l.Tier(model.FactionLocals).Name)
}

func TestAtLeastIsOrdinal(t *testing.T) {
	l := newTestLedger(t)

	// Starting score 50 is Neutral.
	assert.True(t, l.AtLeast(model.FactionShelter, "Hated"))
	assert.True(t, l.AtLeast(model.FactionShelter, "Disliked"))
	assert.True(t, l.AtLeast(model.FactionShelter, "Neutral"))
	assert.False(t, l.AtLeast(model.FactionShelter, "Respected"))
	assert.False(t, l.AtLeast(model.FactionShelter, "Trusted"))

	l.Modify(model.FactionShelter, 45)
	assert.True(t, l.AtLeast(model.FactionShelter, "Respected"))
}

func TestModifiersFollowTier(t *testing.T) {
	l := newTestLedger(t)
	cfg := balance.Default()

	l.Modify(model.FactionBusiness, 50) // 100, best tier
	best := cfg.Reputation.Tiers[len(cfg.Reputation.Tiers)-1]
	assert.Equal(t, best.Modifiers.Earnings, l.Modifier(model.FactionBusiness, ModEarnings))
	assert.Equal(t, best.Modifiers.Risk, l.Modifier(model.FactionBusiness, ModRisk))
	assert.Equal(t, best.Modifiers.EventChance, l.Modifier(model.FactionBusiness, ModEventChance))
}

func TestApplyEffects(t *testing.T) {
	l := newTestLedger(t)
	cfg := balance.Default()

	changes := l.ApplyEffects(map[model.FactionID]balance.RepEffect{
		model.FactionPolice: "-medium",
		model.FactionLocals: "+low",
	})
	require.Len(t, changes, 2)

	expectPolice := 50 - cfg.Presets.Reputation[balance.PresetMedium]
	expectLocals := 50 + cfg.Presets.Reputation[balance.PresetLow]
	assert.Equal(t, expectPolice, l.Score(model.FactionPolice))
	assert.Equal(t, expectLocals, l.Score(model.FactionLocals))

	for _, ch := range changes {
		if ch.Delta == 0 {
			t.Fatalf("zero delta reported for %s", ch.Faction)
		}
	}
}

func TestResetRestoresStartingScores(t *testing.T) {
	l := newTestLedger(t)
	l.Modify(model.FactionPolice, -40)
	l.Modify(model.FactionLocals, 30)

	l.Reset()

	for _, f := range l.Snapshot() {
		assert.Equal(t, 50, f.Score, "faction %s", f.ID)
	}
}
