package recommend

import (
	"math/rand"
	"sort"
)

// selectWinner sorts the scored set descending (stable, so ties keep
// discovery order), keeps the top K, and draws exactly one winner with
// probability proportional to score. Weights floor at 1 so a zero-weight
// entry can never slip in via rounding. The draw is the only source of
// randomness in the pipeline: identical input may produce different winners
// across requests, strongly biased toward the highest scores.
func selectWinner(scored []ScoredCandidate, topK int, rng *rand.Rand) (ScoredCandidate, bool) {
	if len(scored) == 0 {
		return ScoredCandidate{}, false
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if topK > len(scored) {
		topK = len(scored)
	}
	top := scored[:topK]

	total := 0
	for _, sc := range top {
		total += weightOf(sc)
	}

	draw := rng.Intn(total)
	for _, sc := range top {
		draw -= weightOf(sc)
		if draw < 0 {
			return sc, true
		}
	}

	// Unreachable while weights stay positive.
	return top[len(top)-1], true
}

func weightOf(sc ScoredCandidate) int {
	if sc.Score < 1 {
		return 1
	}
	return sc.Score
}
