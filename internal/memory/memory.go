// Package memory persists what an agent has learned: three global behavioral
// tunables drifted by recent win rate, plus a bounded per-opponent model.
// One JSON file per agent key, written with atomic replace. If several
// processes ever share a file the last writer wins; there is no locking.
package memory

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/crsthn-slv/poker-game-sub000/internal/fileutil"
	"github.com/crsthn-slv/poker-game-sub000/internal/game"
	"github.com/crsthn-slv/poker-game-sub000/poker"
)

// Params are the three tunables the learning rule drifts. Globals apply to
// every decision; per-opponent overrides shadow them head-to-head.
type Params struct {
	BluffProbability   float64 `json:"bluff_probability"`
	AggressionLevel    float64 `json:"aggression_level"`
	TightnessThreshold float64 `json:"tightness_threshold"`
}

// DefaultParams returns the hard-coded fallback tunables, used when no
// baseline is supplied and no file exists.
func DefaultParams() Params {
	return Params{
		BluffProbability:   0.15,
		AggressionLevel:    0.50,
		TightnessThreshold: 0.35,
	}
}

// Learning rule: window sizes, drift triggers, and step sizes. Globals drift
// on the agent's own recent win rate; overrides drift on how often the
// opponent has been winning.
const (
	globalWindow   = 20
	globalMinObs   = 10
	opponentWindow = 10
	opponentMinObs = 5

	lowWinRate  = 0.25
	highWinRate = 0.45

	opponentHotRate  = 0.60
	opponentColdRate = 0.30

	tightnessStep  = 0.02
	bluffStep      = 0.01
	aggressionStep = 0.02

	checkpointEvery = 5
)

// Drift clamps. Learning never pushes a tunable outside these.
const (
	minBluff      = 0.05
	maxBluff      = 0.50
	minAggression = 0.10
	maxAggression = 1.00
	minTightness  = 0.10
	maxTightness  = 0.80
)

func (p *Params) clamp() {
	p.BluffProbability = clampFloat(p.BluffProbability, minBluff, maxBluff)
	p.AggressionLevel = clampFloat(p.AggressionLevel, minAggression, maxAggression)
	p.TightnessThreshold = clampFloat(p.TightnessThreshold, minTightness, maxTightness)
}

// tighten shifts toward conservative play: higher tightness, less bluffing,
// less aggression.
func (p *Params) tighten() {
	p.TightnessThreshold += tightnessStep
	p.BluffProbability -= bluffStep
	p.AggressionLevel -= aggressionStep
	p.clamp()
}

// loosen is the exact reverse of tighten.
func (p *Params) loosen() {
	p.TightnessThreshold -= tightnessStep
	p.BluffProbability += bluffStep
	p.AggressionLevel += aggressionStep
	p.clamp()
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// HandRecord is one resolved hand as observed from a single opponent's side:
// the actions they took, their hole cards if they reached showdown, and
// whether they won the pot.
type HandRecord struct {
	Actions []string     `json:"actions,omitempty"`
	Shown   []poker.Card `json:"shown,omitempty"`
	Won     bool         `json:"won"`
}

// OpponentRecord models one opponent: override copies of the tunables,
// seeded from the globals at first sighting, plus a ring of their last
// hands (newest last, capped at opponentWindow).
type OpponentRecord struct {
	Params
	Hands []HandRecord `json:"hands,omitempty"`
}

// winRate is the fraction of ring entries the opponent won.
func (r *OpponentRecord) winRate() float64 {
	if len(r.Hands) == 0 {
		return 0
	}
	won := 0
	for _, h := range r.Hands {
		if h.Won {
			won++
		}
	}
	return float64(won) / float64(len(r.Hands))
}

// Snapshot is the full persisted memory image. Params fields flatten into
// the top level of the JSON document.
type Snapshot struct {
	Params
	TotalRounds int                        `json:"total_rounds"`
	Wins        int                        `json:"wins"`
	UpdatedAt   time.Time                  `json:"updated_at"`
	Opponents   map[string]*OpponentRecord `json:"opponents,omitempty"`
}

// OpponentSummary is what one round resolution tells us about one opponent.
type OpponentSummary struct {
	ID      string
	Actions []string
	Shown   []poker.Card
	Won     bool
}

// RoundSummary is the round-result feedback fed into the store after the
// external engine resolves a hand.
type RoundSummary struct {
	HeroWon   bool
	Opponents []OpponentSummary
}

// Summarize flattens a resolved round into the store's feedback shape:
// the hero's result plus, per opponent seat that took part, the actions
// observed, any revealed hole cards, and whether that seat won.
func Summarize(heroID string, res game.RoundResult) RoundSummary {
	sum := RoundSummary{HeroWon: res.Won(heroID)}
	for _, seat := range res.State.Seats {
		if seat.ID == heroID || seat.State == game.SeatOut {
			continue
		}
		opp := OpponentSummary{
			ID:    seat.ID,
			Shown: res.Revealed[seat.ID],
			Won:   res.Won(seat.ID),
		}
		for _, street := range []game.Street{game.Preflop, game.Flop, game.Turn, game.River} {
			for _, rec := range res.State.History[street] {
				if rec.SeatID == seat.ID {
					opp.Actions = append(opp.Actions, rec.Action.String())
				}
			}
		}
		sum.Opponents = append(sum.Opponents, opp)
	}
	return sum
}

// Store owns one agent's memory file. It is not safe for concurrent use;
// each agent instance owns exactly one Store and decides one action at a
// time.
type Store struct {
	path     string
	baseline Params
	clock    quartz.Clock
	logger   *log.Logger

	state  Snapshot
	recent []bool // hero results this process, newest last, capped at globalWindow
	rounds int    // rounds recorded this process, drives the checkpoint log
}

// Open loads the agent's memory file from dir, or starts from the baseline
// when the file is missing or unreadable. A zero baseline means
// DefaultParams. Open never fails: a corrupt or unreadable file is logged
// and replaced by defaults on the next save.
func Open(dir, agentKey string, baseline Params, clock quartz.Clock, logger *log.Logger) *Store {
	if baseline == (Params{}) {
		baseline = DefaultParams()
	}
	baseline.clamp()
	if clock == nil {
		clock = quartz.NewReal()
	}

	s := &Store{
		path:     filepath.Join(dir, agentKey+".json"),
		baseline: baseline,
		clock:    clock,
		logger:   logger,
	}
	s.state = Snapshot{Params: baseline, Opponents: map[string]*OpponentRecord{}}

	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("No memory file yet, starting fresh", "path", s.path)
	case err != nil:
		logger.Warn("Failed to read memory file, starting from defaults", "path", s.path, "error", err)
	default:
		var loaded Snapshot
		if err := json.Unmarshal(data, &loaded); err != nil {
			logger.Warn("Memory file is corrupt, starting from defaults", "path", s.path, "error", err)
			break
		}
		loaded.Params.clamp()
		if loaded.Opponents == nil {
			loaded.Opponents = map[string]*OpponentRecord{}
		}
		for _, rec := range loaded.Opponents {
			rec.Params.clamp()
			if len(rec.Hands) > opponentWindow {
				rec.Hands = rec.Hands[len(rec.Hands)-opponentWindow:]
			}
		}
		s.state = loaded
		logger.Debug("Loaded memory", "path", s.path, "rounds", loaded.TotalRounds, "opponents", len(loaded.Opponents))
	}
	return s
}

// Path returns the backing file location.
func (s *Store) Path() string { return s.path }

// Snapshot returns a deep copy of the current memory image.
func (s *Store) Snapshot() Snapshot {
	out := s.state
	out.Opponents = make(map[string]*OpponentRecord, len(s.state.Opponents))
	for id, rec := range s.state.Opponents {
		cp := *rec
		cp.Hands = append([]HandRecord(nil), rec.Hands...)
		out.Opponents[id] = &cp
	}
	return out
}

// Params returns the current global tunables.
func (s *Store) Params() Params { return s.state.Params }

// TotalRounds returns how many rounds this memory has absorbed over its
// lifetime.
func (s *Store) TotalRounds() int { return s.state.TotalRounds }

// OpponentParams returns the override tunables for an opponent, or the
// globals when the opponent has never been recorded. Records are created by
// RecordRound, not here; reads never mutate the store.
func (s *Store) OpponentParams(id string) Params {
	if rec, ok := s.state.Opponents[id]; ok {
		return rec.Params
	}
	return s.state.Params
}

// RecordRound feeds one resolved hand back into memory: counters and rings
// are updated, the learning rule drifts the tunables, and the file is saved.
// Every checkpointEvery rounds the save is additionally noted as a
// checkpoint.
func (s *Store) RecordRound(sum RoundSummary) {
	s.state.TotalRounds++
	if sum.HeroWon {
		s.state.Wins++
	}

	s.recent = append(s.recent, sum.HeroWon)
	if len(s.recent) > globalWindow {
		s.recent = s.recent[len(s.recent)-globalWindow:]
	}
	s.driftGlobal()

	for _, opp := range sum.Opponents {
		rec, ok := s.state.Opponents[opp.ID]
		if !ok {
			// First sighting: overrides start from the current globals.
			rec = &OpponentRecord{Params: s.state.Params}
			s.state.Opponents[opp.ID] = rec
		}
		rec.Hands = append(rec.Hands, HandRecord{
			Actions: opp.Actions,
			Shown:   opp.Shown,
			Won:     opp.Won,
		})
		if len(rec.Hands) > opponentWindow {
			rec.Hands = rec.Hands[len(rec.Hands)-opponentWindow:]
		}
		s.driftOpponent(rec)
	}

	s.rounds++
	s.save(s.rounds%checkpointEvery == 0)
}

// driftGlobal nudges the global tunables once the in-process window has
// enough observations. Losing sessions tighten, winning sessions loosen.
func (s *Store) driftGlobal() {
	if len(s.recent) < globalMinObs {
		return
	}
	won := 0
	for _, w := range s.recent {
		if w {
			won++
		}
	}
	rate := float64(won) / float64(len(s.recent))
	switch {
	case rate < lowWinRate:
		s.state.Params.tighten()
	case rate > highWinRate:
		s.state.Params.loosen()
	}
}

// driftOpponent nudges one opponent's overrides by how often that opponent
// has been winning: hot opponents get respect, cold ones get pressure.
func (s *Store) driftOpponent(rec *OpponentRecord) {
	if len(rec.Hands) < opponentMinObs {
		return
	}
	switch rate := rec.winRate(); {
	case rate > opponentHotRate:
		rec.Params.tighten()
	case rate < opponentColdRate:
		rec.Params.loosen()
	}
}

// Reset deletes the backing file and restores the baseline tunables.
func (s *Store) Reset() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	s.state = Snapshot{Params: s.baseline, Opponents: map[string]*OpponentRecord{}}
	s.recent = nil
	s.rounds = 0
	return nil
}

// Flush writes the current state to disk and reports any failure. Normal
// operation never needs it; RecordRound already saves.
func (s *Store) Flush() error {
	s.state.UpdatedAt = s.clock.Now().UTC()
	return fileutil.WriteJSONAtomic(s.path, s.state, 0644)
}

// save persists after a round. Failures are logged and swallowed; losing a
// few hands of learning on a bad disk must never block the decision loop.
func (s *Store) save(checkpoint bool) {
	s.state.UpdatedAt = s.clock.Now().UTC()
	if err := fileutil.WriteJSONAtomic(s.path, s.state, 0644); err != nil {
		s.logger.Error("Failed to save memory", "path", s.path, "error", err)
		return
	}
	if checkpoint {
		s.logger.Debug("Memory checkpoint", "path", s.path, "rounds", s.state.TotalRounds)
	}
}
