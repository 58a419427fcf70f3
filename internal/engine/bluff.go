package engine

import (
	"github.com/crsthn-slv/poker-game-sub000/internal/game"
	"github.com/crsthn-slv/poker-game-sub000/internal/memory"
)

// Bluff scaling. The roll probability is the current bluff tunable shaped by
// street, texture, position, field size, and the agent's own recent image.
var streetBluffMult = [...]float64{
	game.Preflop: 0.5,
	game.Flop:    1.0,
	game.Turn:    1.2,
	game.River:   1.5,
}

var positionBluffFactor = [...]float64{
	UTG: 0.80,
	MP:  0.85,
	CO:  1.15,
	BTN: 1.30,
	SB:  0.90,
	BB:  1.00,
}

const (
	trippedBluffFactor   = 0.5
	pairedBluffFactor    = 0.7
	highBoardBluffFactor = 0.85
	multiwayBluffFactor  = 0.6
	multiwayBluffPlayers = 4
	recentBluffFactor    = 0.4
)

// shouldBluff runs the independent bluff roll. Two vetoes are absolute: a
// street with three or more raises is no place to bluff, and equity below
// the floor would make the bluff a pure punt. The postflop floor comparison
// runs on the equity scale, same as preflop.
func (e *Engine) shouldBluff(m Metrics, params memory.Params) bool {
	if m.RaiseCount >= panicRaiseCount {
		return false
	}
	if m.Equity < bluffEquityFloor {
		return false
	}

	p := params.BluffProbability
	p *= streetBluffMult[m.Street]
	p *= positionBluffFactor[m.Position]

	switch {
	case m.Texture.Tripped:
		p *= trippedBluffFactor
	case m.Texture.Paired:
		p *= pairedBluffFactor
	}
	if m.Texture.HighCardHeavy {
		p *= highBoardBluffFactor
	}
	if m.ActivePlayers >= multiwayBluffPlayers {
		p *= multiwayBluffFactor
	}
	if m.RecentBluffs > 0 {
		p *= recentBluffFactor
	}

	return e.rng.Float64() < p
}
