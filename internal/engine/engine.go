// Package engine turns one decision request into fold, call or raise. The
// pipeline is fixed: assemble metrics, compute thresholds, roll the bluff
// sub-decision, pick the action by priority, then apply the tournament-stage
// cap. Personalities and learned memory parameterize the pipeline; they
// never change its shape.
package engine

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/crsthn-slv/poker-game-sub000/internal/game"
	"github.com/crsthn-slv/poker-game-sub000/internal/memory"
	"github.com/crsthn-slv/poker-game-sub000/internal/personality"
	"github.com/crsthn-slv/poker-game-sub000/internal/randutil"
	"github.com/crsthn-slv/poker-game-sub000/internal/sizing"
	"github.com/crsthn-slv/poker-game-sub000/poker"
)

// Config carries the engine-wide settings. Seed nil means a random stream;
// setting it makes every decision reproducible.
type Config struct {
	Debug bool
	Seed  *int64
}

// ownActionWindow bounds how many of the agent's own recent actions feed the
// bluff-image penalty.
const ownActionWindow = 3

// Engine decides one action at a time for one agent. It is not safe for
// concurrent use: the agent is invoked synchronously by the game engine and
// owns its RNG and memory store exclusively.
type Engine struct {
	cfg    Config
	pers   personality.Config
	mem    *memory.Store
	logger *log.Logger
	rng    *rand.Rand
	recent []bool // own actions, newest last; true marks a bluff raise
}

// New builds an engine around a personality and an optional memory store.
// With mem nil the engine plays the personality's static tunables and learns
// nothing.
func New(cfg Config, pers personality.Config, mem *memory.Store, logger *log.Logger) *Engine {
	return &Engine{
		cfg:    cfg,
		pers:   pers,
		mem:    mem,
		logger: logger,
		rng:    randutil.NewOptional(cfg.Seed),
	}
}

// Decide runs the full pipeline for one action. The only errors are caller
// contract violations in the request; every in-hand problem (bad cards,
// simulation trouble) degrades into a playable decision instead.
func (e *Engine) Decide(req game.DecisionRequest) (game.Decision, error) {
	if err := req.Validate(); err != nil {
		return game.Decision{}, err
	}

	m := e.assembleMetrics(req)
	params := e.currentParams(lastAggressor(req))
	decision, bluffed := e.selectAction(req, m, params)
	decision = e.applyStageCap(req, m, decision)
	e.noteOwnAction(decision, bluffed)

	if e.cfg.Debug {
		e.logger.Debug("Decision analysis",
			"street", m.Street,
			"position", m.Position,
			"score", int(m.Score),
			"equity", m.Equity,
			"strength", m.StrengthPercent,
			"pot", m.Pot,
			"cost", m.CostToCall,
			"potOdds", m.PotOdds,
			"spr", m.SPR,
			"stage", m.Stage,
			"players", m.ActivePlayers,
			"raises", m.RaiseCount,
			"paired", m.Texture.Paired,
			"tripped", m.Texture.Tripped,
			"bluffed", bluffed,
			"action", decision.Action,
			"amount", decision.Amount,
		)
	}
	return decision, nil
}

// NoteRoundResult feeds a resolved round back into the memory store,
// closing the learning loop.
func (e *Engine) NoteRoundResult(heroID string, res game.RoundResult) {
	if e.mem == nil {
		return
	}
	e.mem.RecordRound(memory.Summarize(heroID, res))
}

// currentParams picks the tunables for this action: the per-opponent
// override when a known opponent is driving the action, the drifted globals
// otherwise, the static personality when no store is attached.
func (e *Engine) currentParams(aggressorID string) memory.Params {
	if e.mem == nil {
		return memory.Params{
			BluffProbability:   e.pers.BluffProbability,
			AggressionLevel:    e.pers.AggressionLevel,
			TightnessThreshold: e.pers.TightnessThreshold,
		}
	}
	if aggressorID != "" {
		return e.mem.OpponentParams(aggressorID)
	}
	return e.mem.Params()
}

// lastAggressor is the seat behind the most recent raise this street,
// excluding the hero. Empty when the street is unraised.
func lastAggressor(req game.DecisionRequest) string {
	recs := req.State.History[req.State.Street]
	for i := len(recs) - 1; i >= 0; i-- {
		if recs[i].Action == game.Raise && recs[i].SeatID != req.HeroID {
			return recs[i].SeatID
		}
	}
	return ""
}

// selectAction applies the priority order: bluff, fold, panic, value raise,
// aggression raise, call. The returned bool marks a bluff raise for the
// agent's own image tracking.
func (e *Engine) selectAction(req game.DecisionRequest, m Metrics, params memory.Params) (game.Decision, bool) {
	va := req.Valid
	call := game.Decision{Action: game.Call, Amount: va.Call.Amount}
	fold := game.Decision{Action: game.Fold}

	if e.shouldBluff(m, params) {
		if va.Raise.Available() {
			return game.Decision{Action: game.Raise, Amount: e.sizeRaise(req, m, sizing.Small)}, true
		}
		return call, false
	}

	v := e.evaluateThresholds(m, params, req.State.BigBlind())
	if !v.passes && !v.rescued {
		// Checking is free; folding instead would burn equity for nothing.
		if va.Call.Amount == 0 {
			return call, false
		}
		return fold, false
	}

	if m.RaiseCount >= panicRaiseCount {
		// Panic mode: the street has been raised to death. Strong hands
		// call, everything else folds, nobody raises.
		if e.clearsStrongBar(m) {
			return call, false
		}
		return fold, false
	}

	if e.clearsStrongBar(m) || v.promoted {
		if va.Raise.Available() {
			return game.Decision{Action: game.Raise, Amount: e.sizeRaise(req, m, sizeCategory(m))}, false
		}
		return call, false
	}

	if params.AggressionLevel > e.pers.AggressionLevel && clearsDecentBar(m) && va.Raise.Available() {
		return game.Decision{Action: game.Raise, Amount: e.sizeRaise(req, m, sizeCategory(m))}, false
	}

	return call, false
}

// sizeRaise runs the bet-size selector inside the offered raise window.
func (e *Engine) sizeRaise(req game.DecisionRequest, m Metrics, cat sizing.Category) int {
	hero, _ := req.State.SeatByID(req.HeroID)
	rounds := 0
	if e.mem != nil {
		rounds = e.mem.TotalRounds()
	}
	return sizing.Amount(e.rng, sizing.Input{
		Min:        req.Valid.Raise.Min,
		Max:        req.Valid.Raise.Max,
		Pot:        req.State.Pot,
		BigBlind:   req.State.BigBlind(),
		Stack:      hero.Stack,
		Street:     m.Street,
		Category:   cat,
		SPR:        m.SPR,
		Bias:       sizing.BiasFromName(e.pers.SizingBias),
		RoundCount: rounds,
	})
}

// applyStageCap enforces deep-stack discipline: with more than 50 big
// blinds behind, a raise that commits the whole stack is pulled back to
// 1.5x pot unless the hole cards are premium or the stack is already
// committed (SPR <= 1). If even the capped raise is all-in, call instead.
func (e *Engine) applyStageCap(req game.DecisionRequest, m Metrics, d game.Decision) game.Decision {
	if d.Action != game.Raise || m.Stage != StageDeep {
		return d
	}
	hero, ok := req.State.SeatByID(req.HeroID)
	if !ok || d.Amount < hero.Stack {
		return d
	}
	if len(req.Hole) == 2 && poker.CategorizeHoleCards(req.Hole[0], req.Hole[1]) == poker.CategoryPremium {
		return d
	}
	if m.SPR <= 1 {
		return d
	}

	capped := req.State.Pot * 3 / 2
	if capped < req.Valid.Raise.Min {
		capped = req.Valid.Raise.Min
	}
	if capped > req.Valid.Raise.Max {
		capped = req.Valid.Raise.Max
	}
	if capped >= hero.Stack {
		return game.Decision{Action: game.Call, Amount: req.Valid.Call.Amount}
	}
	return game.Decision{Action: game.Raise, Amount: capped}
}

// noteOwnAction records the agent's own action for the bluff-image penalty.
func (e *Engine) noteOwnAction(d game.Decision, bluffed bool) {
	e.recent = append(e.recent, bluffed && d.Action == game.Raise)
	if len(e.recent) > ownActionWindow {
		e.recent = e.recent[len(e.recent)-ownActionWindow:]
	}
}

// recentBluffCount counts bluff raises among the last two own actions.
func (e *Engine) recentBluffCount() int {
	start := len(e.recent) - 2
	if start < 0 {
		start = 0
	}
	n := 0
	for _, b := range e.recent[start:] {
		if b {
			n++
		}
	}
	return n
}
