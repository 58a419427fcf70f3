package engine

import (
	"github.com/crsthn-slv/poker-game-sub000/internal/game"
	"github.com/crsthn-slv/poker-game-sub000/internal/memory"
	"github.com/crsthn-slv/poker-game-sub000/poker"
)

// The two threshold tracks never mix regimes: the preflop track compares
// equity (higher is better), the postflop track compares score (lower is
// better). Position, call cost, table size, texture, and pot odds each move
// the relevant bar; the equity override then gets the last word.

// positionEquityAdjust shifts the preflop equity bar: late position plays
// more hands, early position fewer.
var positionEquityAdjust = [...]float64{
	UTG: 0.04,
	MP:  0.02,
	CO:  -0.03,
	BTN: -0.05,
	SB:  0.02,
	BB:  -0.02,
}

// positionScoreAdjust shifts the postflop score bar, in score points. Lower
// bar means a stronger hand is required.
var positionScoreAdjust = [...]int{
	UTG: -250,
	MP:  -100,
	CO:  200,
	BTN: 300,
	SB:  -150,
	BB:  0,
}

const (
	costPenaltyPerBB  = 0.01
	costPenaltyCap    = 0.10
	playerPenaltyStep = 0.02
	playerPenaltyCap  = 0.08

	pairedBoardTighten  = 400
	trippedBoardTighten = 800
	goodOddsLoosen      = 400
	poorOddsTighten     = 300
	goodPotOdds         = 0.20
	poorPotOdds         = 0.40
)

// verdict is the outcome of the threshold step for one action.
type verdict struct {
	passes   bool        // the street's own bar is met
	rescued  bool        // equity override turns a failed bar into a call
	promoted bool        // equity override promotes straight to a value raise
	equity   float64     // preflop bar, for the analysis log
	scoreBar poker.Score // postflop bar, for the analysis log
}

// evaluateThresholds runs the threshold-computation step with the current
// (possibly opponent-specific) tunables.
func (e *Engine) evaluateThresholds(m Metrics, params memory.Params, bigBlind int) verdict {
	var v verdict
	if m.Street == game.Preflop {
		v.equity = e.preflopEquityBar(m, params, bigBlind)
		v.passes = m.Equity >= v.equity
	} else {
		// A hand that only repeats what the board already shows belongs to
		// the whole table; it cannot pass on rank alone.
		v.scoreBar = e.postflopScoreBar(m, params)
		v.passes = m.Score < v.scoreBar && m.Score.Category() > m.BoardCategory
	}

	// Equity override: draws and live hands are not folded on raw rank.
	// Rescue requires the price to be right too; equity below the pot odds
	// is a losing call no matter what the floor says.
	if !v.passes && m.Equity >= e.pers.MinCallEquity && m.Equity >= m.PotOdds {
		v.rescued = true
	}
	if m.Postflop() && m.Equity >= e.pers.StrongRaiseEquity+strongEquityMargin {
		v.promoted = true
	}
	return v
}

// preflopEquityBar: base from tightness, then position, call cost in big
// blinds (capped), and a penalty per extra live player.
func (e *Engine) preflopEquityBar(m Metrics, params memory.Params, bigBlind int) float64 {
	bar := 0.30 + 0.30*params.TightnessThreshold
	bar += positionEquityAdjust[m.Position]

	if bigBlind > 0 && m.CostToCall > 0 {
		penalty := costPenaltyPerBB * float64(m.CostToCall) / float64(bigBlind)
		if penalty > costPenaltyCap {
			penalty = costPenaltyCap
		}
		bar += penalty
	}

	if extra := m.ActivePlayers - 2; extra > 0 {
		penalty := playerPenaltyStep * float64(extra)
		if penalty > playerPenaltyCap {
			penalty = playerPenaltyCap
		}
		bar += penalty
	}
	return bar
}

// postflopScoreBar: base from tightness through the strength proxy, then
// position, board texture, and pot odds. Paired boards tighten because the
// pair belongs to everyone.
func (e *Engine) postflopScoreBar(m Metrics, params memory.Params) poker.Score {
	required := 30 + 40*params.TightnessThreshold // percent of the strength scale
	bar := int((1 - required/100) * float64(poker.ScoreWorst))

	bar += positionScoreAdjust[m.Position]

	switch {
	case m.Texture.Tripped:
		bar -= trippedBoardTighten
	case m.Texture.Paired:
		bar -= pairedBoardTighten
	}

	if m.PotOdds > 0 {
		switch {
		case m.PotOdds < goodPotOdds:
			bar += goodOddsLoosen
		case m.PotOdds > poorPotOdds:
			bar -= poorOddsTighten
		}
	}

	if bar < 0 {
		bar = 0
	}
	if bar > int(poker.ScoreWorst) {
		bar = int(poker.ScoreWorst)
	}
	return poker.Score(bar)
}
