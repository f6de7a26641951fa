package driver

// Stats tracks running counters across a Driver's lifetime, the same
// shape meta.Engine tracks match statistics and the reference driver
// tracks a running healed-step counter (original_source/pse/util/driver.py).
type Stats struct {
	// Steps counts every token (one per ProcessToken call, one per
	// encoded id in ConsumeRaw) that advanced the walker population
	// (accept or heal; rejects are not steps).
	Steps int

	// Heals counts how many of those steps required token healing.
	Heals int

	// Rejects counts calls that left the walker population unchanged
	// because the proposed token (and its healed candidates) were all
	// inconsistent with the structure.
	Rejects int

	lastHealStep int
}

// StepsSinceLastHeal is the running counter the reference driver exposes
// (pse/util/driver.py) so a caller can decide whether repeated healing
// signals the model is struggling against the schema and generation
// should be aborted.
func (s Stats) StepsSinceLastHeal() int {
	if s.Heals == 0 {
		return s.Steps
	}
	return s.Steps - s.lastHealStep
}
