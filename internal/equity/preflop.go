// Package equity estimates how often a hand wins: preflop through a static
// table of the 169 starting-hand classes, postflop through Monte Carlo
// simulation against sampled opponent hands.
package equity

import (
	"sort"

	"github.com/crsthn-slv/poker-game-sub000/poker"
)

//go:generate go run ../../cmd/gen-preflop -trials 200000 -output table_gen.go

// HandKey returns the canonical starting-hand class for two hole cards:
// higher rank first, pairs bare ("QQ"), otherwise suffixed with "s" for
// suited or "o" for offsuit ("AKs", "72o"). Invalid cards yield "".
func HandKey(c1, c2 poker.Card) string {
	if !c1.Valid() || !c2.Valid() || c1 == c2 {
		return ""
	}

	high, low := c1.Rank, c2.Rank
	if low > high {
		high, low = low, high
	}

	key := high.String() + low.String()
	if high == low {
		return key
	}
	if c1.Suit == c2.Suit {
		return key + "s"
	}
	return key + "o"
}

// Preflop returns the probability of the hole cards beating one random hand,
// from the generated table. Unknown or malformed hands return 0.
func Preflop(c1, c2 poker.Card) float64 {
	return preflopEquity[HandKey(c1, c2)]
}

// PreflopByKey looks up a starting-hand class directly.
func PreflopByKey(key string) (float64, bool) {
	eq, ok := preflopEquity[key]
	return eq, ok
}

// PreflopKeys returns all 169 starting-hand classes ordered from best to
// worst, ties broken alphabetically so the order is stable.
func PreflopKeys() []string {
	keys := make([]string, 0, len(preflopEquity))
	for key := range preflopEquity {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		ei, ej := preflopEquity[keys[i]], preflopEquity[keys[j]]
		if ei != ej {
			return ei > ej
		}
		return keys[i] < keys[j]
	})
	return keys
}
