package engine

// Forging phases, lowest to highest.
const (
	TierEmber   = 1
	TierKindled = 2
	TierRoaring = 3
	TierMolten  = 4
)

// tierThresholds are checked top to bottom and the first satisfied pair wins.
// A pair is satisfied when either leg is met, so pairs are not mutually
// exclusive and the descending order is part of the contract.
var tierThresholds = []struct {
	tier         int
	minScore     float64
	minFollowers uint64
}{
	{TierMolten, 0.9, 5000},
	{TierRoaring, 0.6, 1000},
	{TierKindled, 0.2, 100},
}

// ClassifyTier resolves the forging phase of a profile from its influence
// score (0..1, defaults to 0), follower count and badge flag. A badge holder
// never classifies below TierKindled.
func ClassifyTier(score float64, followers uint64, badge bool) int {
	for _, t := range tierThresholds {
		if score >= t.minScore || followers >= t.minFollowers {
			return t.tier
		}
	}

	if badge {
		return TierKindled
	}

	return TierEmber
}
