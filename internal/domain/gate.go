package domain

// SecretSpotTarget is how many secret spots a completed quest unlocks.
const SecretSpotTarget = 3

// AllSpotsUnlocked reports whether an attraction's secret spots are open.
// The gate is exact: a completion signal always carries the target count, so
// anything else (including values above it) keeps the spots locked.
func AllSpotsUnlocked(secretUnlockedCount int) bool {
	return secretUnlockedCount == SecretSpotTarget
}
