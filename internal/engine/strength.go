package engine

import (
	"github.com/crsthn-slv/poker-game-sub000/internal/game"
	"github.com/crsthn-slv/poker-game-sub000/internal/sizing"
	"github.com/crsthn-slv/poker-game-sub000/poker"
)

// StrengthPercent maps a postflop score onto a 0..100 scale where higher is
// stronger. This is the one sanctioned bridge between the score regime and
// percent-style comparisons; it backs sizing-category selection and the
// decent-raise bar. Monotone non-increasing in score; the worst score maps
// to 0, a royal flush to 100.
func StrengthPercent(s poker.Score) float64 {
	if s >= poker.ScoreWorst {
		return 0
	}
	return (1 - float64(s)/float64(poker.ScoreWorst)) * 100
}

// Bars and margins for the selection step. Comparisons against the strong
// bar are exact, with no buffer either way.
const (
	panicRaiseCount       = 3
	strongEquityMargin    = 0.05
	decentStrengthPercent = 40.0
	decentPreflopEquity   = 0.50
	bluffEquityFloor      = 0.15
)

// boardOnlyCategory is the pairing category the community cards hand to
// every player at the table. A made hand only counts as strong when it beats
// this baseline; trips sitting fully on the board are everyone's trips.
func boardOnlyCategory(community []poker.Card) poker.HandCategory {
	counts := map[poker.Rank]int{}
	for _, c := range community {
		if c.Valid() {
			counts[c.Rank]++
		}
	}
	pairs, trips, quads := 0, 0, 0
	for _, n := range counts {
		switch {
		case n >= 4:
			quads++
		case n == 3:
			trips++
		case n == 2:
			pairs++
		}
	}
	switch {
	case quads > 0:
		return poker.FourOfAKind
	case trips > 0 && pairs > 0:
		return poker.FullHouse
	case trips > 0:
		return poker.ThreeOfAKind
	case pairs > 1:
		return poker.TwoPair
	case pairs == 1:
		return poker.OnePair
	default:
		return poker.HighCard
	}
}

// clearsStrongBar is the value-raise (and panic-call) bar. Preflop it is the
// personality's strong-raise equity, exactly. Postflop the hand must make
// two pair or better and beat what the board alone gives everyone.
func (e *Engine) clearsStrongBar(m Metrics) bool {
	if m.Street == game.Preflop {
		return m.Equity >= e.pers.StrongRaiseEquity
	}
	cat := m.Score.Category()
	return cat >= poker.TwoPair && cat > m.BoardCategory
}

// clearsDecentBar is the lower bar for aggression-driven raises.
func clearsDecentBar(m Metrics) bool {
	if m.Street == game.Preflop {
		return m.Equity >= decentPreflopEquity
	}
	return m.StrengthPercent >= decentStrengthPercent
}

// sizeCategory grades the raise size from hand strength, per regime.
func sizeCategory(m Metrics) sizing.Category {
	if m.Street == game.Preflop {
		switch {
		case m.Equity >= 0.75:
			return sizing.Large
		case m.Equity >= 0.60:
			return sizing.Medium
		default:
			return sizing.Small
		}
	}
	switch {
	case m.StrengthPercent >= 80:
		return sizing.Large
	case m.StrengthPercent >= 55:
		return sizing.Medium
	default:
		return sizing.Small
	}
}
