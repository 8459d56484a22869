package config

// DifficultyManager turns the difficulty section into per-level limits.
type DifficultyManager struct {
	cfg SeatJamDifficulty
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg SeatJamDifficulty) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// Unlimited reports whether move limits are ignored.
func (d *DifficultyManager) Unlimited() bool {
	return d.cfg.Unlimited
}

// HintsAllowed reports whether the hint action is available.
func (d *DifficultyManager) HintsAllowed() bool {
	return d.cfg.Hints
}

// MoveLimit returns the effective move limit for a level whose file asks
// for base moves. Zero means unlimited.
func (d *DifficultyManager) MoveLimit(base int) int {
	if d.cfg.Unlimited || base <= 0 {
		return 0
	}
	return base + max(d.cfg.ExtraMoves, 0)
}
