// Package reputation tracks the player's standing with the four factions.
// Scores live in [0,100]; each score maps to exactly one tier band carrying
// outcome multipliers. Malformed input never fails loudly here — it degrades
// to neutral defaults with a warning, because a broken balance table should
// dent the experience, not the process.
package reputation

import (
	"log"

	"github.com/kozlovfedor-boop/get-off-the-street/internal/balance"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/model"
	"github.com/kozlovfedor-boop/get-off-the-street/internal/statmath"
)

// ModifierKind selects which tier multiplier Modifier returns.
type ModifierKind string

const (
	ModEarnings    ModifierKind = "earnings"
	ModRisk        ModifierKind = "risk"
	ModEventChance ModifierKind = "eventChance"
)

// Change records one applied reputation delta, for logging.
type Change struct {
	Faction model.FactionID `json:"faction"`
	Delta   int             `json:"delta"`
}

// Ledger holds the four faction scores.
type Ledger struct {
	scores map[model.FactionID]int
	cfg    *balance.Config
	logger *log.Logger
}

// New creates a ledger with every configured faction at the starting score.
func New(cfg *balance.Config, logger *log.Logger) *Ledger {
	if logger == nil {
		logger = log.Default()
	}
	l := &Ledger{cfg: cfg, logger: logger}
	l.Reset()
	return l
}

// Reset restores every faction to the starting score.
func (l *Ledger) Reset() {
	l.scores = make(map[model.FactionID]int, len(l.cfg.Reputation.Factions))
	for _, f := range l.cfg.Reputation.Factions {
		l.scores[f.ID] = l.cfg.Reputation.Starting
	}
}

// Modify adds delta to a faction's score and clamps to [0,100].
// Unknown factions are a warned no-op.
func (l *Ledger) Modify(faction model.FactionID, delta int) {
	if _, ok := l.scores[faction]; !ok {
		l.logger.Printf("reputation: unknown faction %q ignored", faction)
		return
	}
	l.scores[faction] = statmath.Clamp(l.scores[faction]+delta, 0, 100)
}

// Score returns the raw score, defaulting to the starting score for unknown
// factions.
func (l *Ledger) Score(faction model.FactionID) int {
	if s, ok := l.scores[faction]; ok {
		return s
	}
	return l.cfg.Reputation.Starting
}

// Tier returns the band containing the faction's score. A lookup miss means
// the tier table violates its partition invariant; the ledger logs it and
// falls back to Neutral.
func (l *Ledger) Tier(faction model.FactionID) balance.Tier {
	score := l.Score(faction)
	if t, ok := l.cfg.TierFor(score); ok {
		return t
	}
	l.logger.Printf("reputation: no tier band for score %d (faction %s), falling back to neutral", score, faction)
	return l.cfg.NeutralTier()
}

// AtLeast reports whether the faction standing is at or above the named
// tier, using the worst-to-best tier ordering. Unknown tier names degrade
// to true so a config typo never locks out an action.
func (l *Ledger) AtLeast(faction model.FactionID, tierName string) bool {
	required := l.cfg.TierIndex(tierName)
	if required < 0 {
		l.logger.Printf("reputation: unknown tier %q in gating, ignoring", tierName)
		return true
	}
	current := l.cfg.TierIndex(l.Tier(faction).Name)
	return current >= required
}

// Modifier returns the tier's outcome multiplier of the given kind.
func (l *Ledger) Modifier(faction model.FactionID, kind ModifierKind) float64 {
	m := l.Tier(faction).Modifiers
	switch kind {
	case ModEarnings:
		return m.Earnings
	case ModRisk:
		return m.Risk
	case ModEventChance:
		return m.EventChance
	default:
		l.logger.Printf("reputation: unknown modifier kind %q, using 1.0", kind)
		return 1.0
	}
}

// ApplyEffects applies a map of preset-coded deltas and returns the changes
// that actually landed, in a stable order.
func (l *Ledger) ApplyEffects(effects map[model.FactionID]balance.RepEffect) []Change {
	if len(effects) == 0 {
		return nil
	}
	var changes []Change
	for _, f := range l.cfg.Reputation.Factions {
		effect, ok := effects[f.ID]
		if !ok {
			continue
		}
		delta := l.cfg.ReputationDelta(effect)
		if delta == 0 {
			continue
		}
		l.Modify(f.ID, delta)
		changes = append(changes, Change{Faction: f.ID, Delta: delta})
	}
	return changes
}

// FactionState is the serializable view of one faction.
type FactionState struct {
	ID    model.FactionID `json:"id"`
	Name  string          `json:"name"`
	Icon  string          `json:"icon"`
	Score int             `json:"score"`
	Tier  string          `json:"tier"`
}

// Snapshot returns the display view of every faction, in config order.
func (l *Ledger) Snapshot() []FactionState {
	out := make([]FactionState, 0, len(l.cfg.Reputation.Factions))
	for _, f := range l.cfg.Reputation.Factions {
		out = append(out, FactionState{
			ID:    f.ID,
			Name:  f.Name,
			Icon:  f.Icon,
			Score: l.Score(f.ID),
			Tier:  l.Tier(f.ID).Name,
		})
	}
	return out
}
