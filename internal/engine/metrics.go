package engine

import (
	"github.com/crsthn-slv/poker-game-sub000/internal/equity"
	"github.com/crsthn-slv/poker-game-sub000/internal/game"
	"github.com/crsthn-slv/poker-game-sub000/poker"
)

// Texture flags the community-card properties that shift thresholds: board
// pairs devalue made hands for everyone, and high-card-heavy boards hit
// typical calling ranges.
type Texture struct {
	Paired        bool
	Tripped       bool
	HighCardHeavy bool
}

func textureOf(community []poker.Card) Texture {
	var t Texture
	counts := map[poker.Rank]int{}
	high := 0
	for _, c := range community {
		if !c.Valid() {
			continue
		}
		counts[c.Rank]++
		if c.Rank >= poker.Jack {
			high++
		}
	}
	for _, n := range counts {
		if n >= 2 {
			t.Paired = true
		}
		if n >= 3 {
			t.Tripped = true
		}
	}
	t.HighCardHeavy = high >= 2
	return t
}

// StackStage classifies the effective stack in big blinds, tournament style.
type StackStage int

const (
	StageCritical StackStage = iota
	StageShort
	StageNormal
	StageDeep
)

func (s StackStage) String() string {
	if s < StageCritical || s > StageDeep {
		return "unknown"
	}
	return [...]string{"critical", "short", "normal", "deep"}[s]
}

func stageFor(effectiveStack, bigBlind int) StackStage {
	if bigBlind <= 0 {
		return StageNormal
	}
	bb := float64(effectiveStack) / float64(bigBlind)
	switch {
	case bb > 50:
		return StageDeep
	case bb > 20:
		return StageNormal
	case bb > 10:
		return StageShort
	default:
		return StageCritical
	}
}

// Metrics is the per-action snapshot the pipeline decides from. Built fresh
// on every call, never persisted. Score is only meaningful postflop; Equity
// is meaningful on every street but comes from different sources (table
// preflop, simulation postflop) and is never compared against Score
// directly.
type Metrics struct {
	Street          game.Street
	Score           poker.Score
	Equity          float64
	StrengthPercent float64
	Position        Position
	Pot             int
	CostToCall      int
	PotOdds         float64
	SPR             float64
	EffectiveStack  int
	Stage           StackStage
	ActivePlayers   int
	RaiseCount      int
	Texture         Texture
	BoardCategory   poker.HandCategory
	RecentBluffs    int
}

// Postflop reports whether the score regime applies.
func (m Metrics) Postflop() bool {
	return m.Street != game.Preflop
}

// effectiveStack is the hero stack capped by the largest stack still
// contesting the pot; chips the opposition cannot match are not at risk.
func effectiveStack(state game.RoundState, heroID string) int {
	hero, ok := state.SeatByID(heroID)
	if !ok {
		return 0
	}
	largest := 0
	for _, seat := range state.Participating() {
		if seat.ID != heroID && seat.Stack > largest {
			largest = seat.Stack
		}
	}
	if hero.Stack < largest {
		return hero.Stack
	}
	return largest
}

// assembleMetrics runs the context-assembly step: position, odds, texture,
// and the street's strength reading. Malformed cards degrade to worst score
// and zero equity here rather than failing.
func (e *Engine) assembleMetrics(req game.DecisionRequest) Metrics {
	state := req.State
	active := len(state.Participating())
	opponents := active - 1
	if opponents < 1 {
		opponents = 1
	}

	m := Metrics{
		Street:         state.Street,
		Score:          poker.ScoreWorst,
		Position:       positionFor(state, req.HeroID),
		Pot:            state.Pot,
		CostToCall:     req.Valid.Call.Amount,
		EffectiveStack: effectiveStack(state, req.HeroID),
		ActivePlayers:  active,
		RaiseCount:     state.RaiseCount(),
		Texture:        textureOf(state.Community),
		BoardCategory:  boardOnlyCategory(state.Community),
		RecentBluffs:   e.recentBluffCount(),
	}

	pot := state.Pot
	if pot < 1 {
		pot = 1
	}
	m.SPR = float64(m.EffectiveStack) / float64(pot)
	m.Stage = stageFor(m.EffectiveStack, state.BigBlind())
	if m.CostToCall > 0 {
		m.PotOdds = float64(m.CostToCall) / float64(state.Pot+m.CostToCall)
	}

	if m.Street == game.Preflop {
		if len(req.Hole) == 2 {
			m.Equity = equity.Preflop(req.Hole[0], req.Hole[1])
		}
		m.StrengthPercent = m.Equity * 100
		return m
	}

	m.Score = poker.Evaluate(req.Hole, state.Community)
	m.StrengthPercent = StrengthPercent(m.Score)
	m.Equity = equity.Simulate(e.rng, req.Hole, state.Community, equity.SimOptions{
		Trials:    equity.FastTrials,
		Opponents: opponents,
	})
	return m
}
