// Package player holds the player's resource state. Every mutation funnels
// through ApplyStats so the clamping invariant (health and hunger in
// [0,100], money never negative) holds after any change, however large.
package player

import (
	"github.com/kozlovfedor-boop/get-off-the-street/internal/balance"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/model"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/statmath"
)

// BonusKind selects which per-level multiplier LevelBonus returns.
type BonusKind string

const (
	BonusEarnings         BonusKind = "earnings"
	BonusHealth           BonusKind = "health"
	BonusHungerEfficiency BonusKind = "hunger_efficiency"
)

// Player is the mutable resource state of the single player.
type Player struct {
	Money      int `json:"money"`
	Health     int `json:"health"`
	Hunger     int `json:"hunger"`
	Day        int `json:"day"`
	Level      int `json:"level"`
	Experience int `json:"experience"`

	cfg *balance.Config
}

// New creates a player at the configured starting values.
func New(cfg *balance.Config) *Player {
	p := &Player{cfg: cfg}
	p.Reset()
	return p
}

// Reset restores the documented initial state.
func (p *Player) Reset() {
	s := p.cfg.Constants.Starting
	p.Money = s.Money
	p.Health = s.Health
	p.Hunger = s.Hunger
	p.Day = 1
	p.Level = s.Level
	p.Experience = s.Experience
	p.clamp()
}

// ApplyStats adds the delta and re-clamps. It cannot fail: a deficit larger
// than the balance is capped at zero, not rejected.
func (p *Player) ApplyStats(d model.StatDelta) {
	p.Money += d.Money
	p.Health += d.Health
	p.Hunger += d.Hunger
	p.clamp()
}

func (p *Player) clamp() {
	sv := p.cfg.Constants.Survival
	p.Money = statmath.ClampFloor(p.Money, 0)
	p.Health = statmath.Clamp(p.Health, 0, sv.HealthMax)
	p.Hunger = statmath.Clamp(p.Hunger, 0, sv.HungerMax)
	p.Experience = statmath.ClampFloor(p.Experience, 0)
	p.Level = statmath.Clamp(p.Level, 1, p.cfg.Level.MaxLevel)
}

// IsStarving reports whether hunger has dropped below the starvation
// threshold.
func (p *Player) IsStarving() bool {
	return p.Hunger < p.cfg.Constants.Survival.StarvationThreshold
}

// ApplyStarvationPenalty deducts a random slice of health when starving.
// It is called once per simulated hour regardless of the running action.
// The returned loss is zero when the player is not starving.
func (p *Player) ApplyStarvationPenalty(rng *statmath.RNG) (loss int, applied bool) {
	if !p.IsStarving() {
		return 0, false
	}
	r := p.cfg.Constants.Survival.StarvationPenalty
	loss = rng.Range(r.Min, r.Max)
	p.ApplyStats(model.StatDelta{Health: -loss})
	return loss, true
}

// IsAlive reports health above zero.
func (p *Player) IsAlive() bool { return p.Health > 0 }

// HasWon reports the victory condition: enough money while healthy enough
// to enjoy it.
func (p *Player) HasWon() bool {
	v := p.cfg.Constants.Victory
	return p.Money >= v.Money && p.Health > v.MinHealth
}

// AddExperience grants XP and promotes the level while the threshold is met,
// carrying excess XP over each promotion. Returns levels gained this call.
func (p *Player) AddExperience(amount int) int {
	if amount > 0 {
		p.Experience += amount
	}
	gained := 0
	for p.Level < p.cfg.Level.MaxLevel {
		needed := p.XPForNextLevel()
		if p.Experience < needed {
			break
		}
		p.Experience -= needed
		p.Level++
		gained++
	}
	return gained
}

// XPForNextLevel returns the XP required to leave the current level.
func (p *Player) XPForNextLevel() int {
	return p.cfg.XPThreshold(p.Level)
}

// LevelBonus returns the multiplier an action applies to a stat range
// before sampling: 1 + (level-1) * rate.
func (p *Player) LevelBonus(kind BonusKind) float64 {
	var rate float64
	switch kind {
	case BonusEarnings:
		rate = p.cfg.Level.Bonuses.Earnings
	case BonusHealth:
		rate = p.cfg.Level.Bonuses.Health
	case BonusHungerEfficiency:
		rate = p.cfg.Level.Bonuses.HungerEfficiency
	default:
		return 1.0
	}
	return 1 + float64(p.Level-1)*rate
}

// RiskReduction returns the flat probability knocked off negative event
// chances. Callers floor the result at 0.01; risk is never eliminated.
func (p *Player) RiskReduction() float64 {
	return float64(p.Level-1) * p.cfg.Level.Bonuses.Risk
}

// NextDay advances the day counter by n rollovers.
func (p *Player) NextDay(n int) {
	if n > 0 {
		p.Day += n
	}
}

// State is the serializable snapshot of the player.
type State struct {
	Money          int `json:"money"`
	Health         int `json:"health"`
	Hunger         int `json:"hunger"`
	Day            int `json:"day"`
	Level          int `json:"level"`
	Experience     int `json:"experience"`
	XPForNextLevel int `json:"xp_for_next_level"`
}

// Snapshot returns the current state for display.
func (p *Player) Snapshot() State {
	return State{
		Money:          p.Money,
		Health:         p.Health,
		Hunger:         p.Hunger,
		Day:            p.Day,
		Level:          p.Level,
		Experience:     p.Experience,
		XPForNextLevel: p.XPForNextLevel(),
	}
}
