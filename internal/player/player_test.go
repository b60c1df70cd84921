package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kozlovfedor-boop/get-off-the-street/internal/balance"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/model"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/statmath"
)

func newPlayer() *Player {
	return New(balance.Default())
}

func TestStartingState(t *testing.T) {
	p := newPlayer()
	assert.Equal(t, 0, p.Money)
	assert.Equal(t, 100, p.Health)
	assert.Equal(t, 50, p.Hunger)
	assert.Equal(t, 1, p.Day)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 0, p.Experience)
}

func TestApplyStatsClamps(t *testing.T) {
	p := newPlayer()

	p.ApplyStats(model.StatDelta{Money: -50})
	assert.Equal(t, 0, p.Money, "money never goes negative")

	p.ApplyStats(model.StatDelta{Health: 500, Hunger: 500})
	assert.Equal(t, 100, p.Health)
	assert.Equal(t, 100, p.Hunger)

	p.ApplyStats(model.StatDelta{Health: -500, Hunger: -500})
	assert.Equal(t, 0, p.Health)
	assert.Equal(t, 0, p.Hunger)
}

func TestStarvation(t *testing.T) {
	p := newPlayer()
	rng := statmath.New(7)

	p.Hunger = 30
	loss, applied := p.ApplyStarvationPenalty(rng)
	assert.False(t, applied)
	assert.Zero(t, loss)

	p.Hunger = 19
	require.True(t, p.IsStarving())
	loss, applied = p.ApplyStarvationPenalty(rng)
	require.True(t, applied)
	if loss < 5 || loss > 12 {
		t.Fatalf("starvation loss %d outside configured range", loss)
	}
	assert.Equal(t, 100-loss, p.Health)
}

func TestVictoryNeedsHealthToo(t *testing.T) {
	p := newPlayer()
	p.Money = 2000
	p.Health = 21
	assert.True(t, p.HasWon())

	p.Health = 20
	assert.False(t, p.HasWon(), "victory min health is exclusive")

	p.Health = 100
	p.Money = 1999
	assert.False(t, p.HasWon())
}

func TestAddExperienceCarriesOver(t *testing.T) {
	p := newPlayer()
	// level 1 needs 150 xp
	assert.Equal(t, 150, p.XPForNextLevel())

	assert.Equal(t, 0, p.AddExperience(149))
	assert.Equal(t, 1, p.Level)

	assert.Equal(t, 1, p.AddExperience(1))
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 0, p.Experience)

	// a big grant promotes through several levels in one call
	gained := p.AddExperience(10000)
	assert.Greater(t, gained, 1)
}

func TestAddExperienceCapsAtMaxLevel(t *testing.T) {
	p := newPlayer()
	p.AddExperience(1 << 20)
	assert.Equal(t, 10, p.Level)

	// further grants accumulate xp but never promote
	before := p.Level
	p.AddExperience(1 << 20)
	assert.Equal(t, before, p.Level)
}

func TestAddExperienceIgnoresNonPositive(t *testing.T) {
	p := newPlayer()
	p.AddExperience(-50)
	assert.Equal(t, 0, p.Experience)
}

func TestLevelBonuses(t *testing.T) {
	p := newPlayer()
	assert.InDelta(t, 1.0, p.LevelBonus(BonusEarnings), 1e-9)
	assert.InDelta(t, 0.0, p.RiskReduction(), 1e-9)

	p.Level = 10
	assert.InDelta(t, 1.45, p.LevelBonus(BonusEarnings), 1e-9)
	assert.InDelta(t, 1.45, p.LevelBonus(BonusHealth), 1e-9)
	assert.InDelta(t, 1.45, p.LevelBonus(BonusHungerEfficiency), 1e-9)
	assert.InDelta(t, 0.27, p.RiskReduction(), 1e-9)

	assert.InDelta(t, 1.0, p.LevelBonus(BonusKind("unknown")), 1e-9)
}

func TestReset(t *testing.T) {
	p := newPlayer()
	p.Money = 999
	p.Health = 4
	p.Day = 12
	p.AddExperience(500)

	p.Reset()
	assert.Equal(t, 0, p.Money)
	assert.Equal(t, 100, p.Health)
	assert.Equal(t, 1, p.Day)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 0, p.Experience)
}

func TestSnapshotIncludesThreshold(t *testing.T) {
	p := newPlayer()
	st := p.Snapshot()
	assert.Equal(t, 150, st.XPForNextLevel)
	assert.Equal(t, p.Money, st.Money)
	assert.Equal(t, p.Day, st.Day)
}
