package memory

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/require"

	"github.com/crsthn-slv/poker-game-sub000/internal/game"
	"github.com/crsthn-slv/poker-game-sub000/poker"
)

func testStore(t *testing.T) (*Store, string, *quartz.Mock) {
	t.Helper()
	dir := t.TempDir()
	clock := quartz.NewMock(t)
	s := Open(dir, "testbot", Params{}, clock, log.New(io.Discard))
	return s, dir, clock
}

func lossSummary() RoundSummary { return RoundSummary{HeroWon: false} }
func winSummary() RoundSummary  { return RoundSummary{HeroWon: true} }

func TestOpenStartsFromDefaults(t *testing.T) {
	s, dir, _ := testStore(t)
	require.Equal(t, DefaultParams(), s.Params())
	require.Equal(t, filepath.Join(dir, "testbot.json"), s.Path())

	snap := s.Snapshot()
	require.Zero(t, snap.TotalRounds)
	require.Zero(t, snap.Wins)
	require.Empty(t, snap.Opponents)
}

func TestOpenUsesBaseline(t *testing.T) {
	base := Params{BluffProbability: 0.30, AggressionLevel: 0.80, TightnessThreshold: 0.25}
	s := Open(t.TempDir(), "maniac", base, quartz.NewMock(t), log.New(io.Discard))
	require.Equal(t, base, s.Params())
}

func TestOpenClampsOutOfRangeBaseline(t *testing.T) {
	base := Params{BluffProbability: 0.90, AggressionLevel: 2.0, TightnessThreshold: 0.01}
	s := Open(t.TempDir(), "broken", base, quartz.NewMock(t), log.New(io.Discard))
	got := s.Params()
	require.Equal(t, 0.50, got.BluffProbability)
	require.Equal(t, 1.00, got.AggressionLevel)
	require.Equal(t, 0.10, got.TightnessThreshold)
}

func TestCorruptFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "testbot.json"), []byte("{not json"), 0644))

	s := Open(dir, "testbot", Params{}, quartz.NewMock(t), log.New(io.Discard))
	require.Equal(t, DefaultParams(), s.Params())
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	clock := quartz.NewMock(t)
	logger := log.New(io.Discard)
	s := Open(dir, "testbot", Params{}, clock, logger)

	shown := poker.MustParseCards("AhKh")
	for i := 0; i < 7; i++ {
		clock.Advance(time.Minute)
		s.RecordRound(RoundSummary{
			HeroWon: i%2 == 0,
			Opponents: []OpponentSummary{
				{ID: "opp-1", Actions: []string{"raise", "call"}, Won: i%2 != 0},
				{ID: "opp-2", Shown: shown, Won: false},
			},
		})
	}

	want := s.Snapshot()
	reloaded := Open(dir, "testbot", Params{}, quartz.NewMock(t), logger)
	got := reloaded.Snapshot()

	require.Equal(t, want.Params, got.Params)
	require.Equal(t, want.TotalRounds, got.TotalRounds)
	require.Equal(t, want.Wins, got.Wins)
	require.True(t, want.UpdatedAt.Equal(got.UpdatedAt), "updated_at should survive the round trip")
	require.Equal(t, want.Opponents, got.Opponents)
}

func TestLosingStreakTightens(t *testing.T) {
	s, _, _ := testStore(t)
	before := s.Params()

	for i := 0; i < globalMinObs; i++ {
		s.RecordRound(lossSummary())
	}

	after := s.Params()
	require.Greater(t, after.TightnessThreshold, before.TightnessThreshold)
	require.Less(t, after.BluffProbability, before.BluffProbability)
	require.Less(t, after.AggressionLevel, before.AggressionLevel)
}

func TestWinningStreakLoosens(t *testing.T) {
	s, _, _ := testStore(t)
	before := s.Params()

	for i := 0; i < globalMinObs; i++ {
		s.RecordRound(winSummary())
	}

	after := s.Params()
	require.Less(t, after.TightnessThreshold, before.TightnessThreshold)
	require.Greater(t, after.BluffProbability, before.BluffProbability)
	require.Greater(t, after.AggressionLevel, before.AggressionLevel)
}

func TestMixedResultsHoldSteady(t *testing.T) {
	s, _, _ := testStore(t)
	before := s.Params()

	// Winning every third hand keeps the window rate between the drift
	// triggers, so nothing moves.
	for i := 0; i < 40; i++ {
		if i%3 == 0 {
			s.RecordRound(winSummary())
		} else {
			s.RecordRound(lossSummary())
		}
	}

	require.Equal(t, before, s.Params())
}

func TestDriftNeverLeavesClampRange(t *testing.T) {
	s, _, _ := testStore(t)

	for i := 0; i < 200; i++ {
		s.RecordRound(lossSummary())
	}
	got := s.Params()
	require.Equal(t, maxTightness, got.TightnessThreshold)
	require.Equal(t, minBluff, got.BluffProbability)
	require.Equal(t, minAggression, got.AggressionLevel)

	for i := 0; i < 400; i++ {
		s.RecordRound(winSummary())
	}
	got = s.Params()
	require.Equal(t, minTightness, got.TightnessThreshold)
	require.Equal(t, maxBluff, got.BluffProbability)
	require.Equal(t, maxAggression, got.AggressionLevel)
}

func TestOpponentParamsSeededAtFirstSighting(t *testing.T) {
	s, _, _ := testStore(t)

	// Unknown opponents read the globals without creating a record.
	require.Equal(t, s.Params(), s.OpponentParams("stranger"))
	require.Empty(t, s.Snapshot().Opponents)

	globalsAtSighting := s.Params()
	s.RecordRound(RoundSummary{Opponents: []OpponentSummary{{ID: "opp-1", Won: true}}})
	require.Equal(t, globalsAtSighting, s.OpponentParams("opp-1"))
}

func TestHotOpponentTightensOverride(t *testing.T) {
	s, _, _ := testStore(t)

	// Opponent wins every recorded hand: the override tightens while the
	// globals only move by the hero's own results.
	for i := 0; i < opponentMinObs; i++ {
		s.RecordRound(RoundSummary{
			HeroWon:   i%2 == 0, // keep the global window off the triggers
			Opponents: []OpponentSummary{{ID: "shark", Won: true}},
		})
	}

	override := s.OpponentParams("shark")
	global := s.Params()
	require.Greater(t, override.TightnessThreshold, global.TightnessThreshold)
	require.Less(t, override.BluffProbability, global.BluffProbability)
}

func TestColdOpponentLoosensOverride(t *testing.T) {
	s, _, _ := testStore(t)

	for i := 0; i < opponentMinObs; i++ {
		s.RecordRound(RoundSummary{
			HeroWon:   i%2 == 0,
			Opponents: []OpponentSummary{{ID: "fish", Won: false}},
		})
	}

	override := s.OpponentParams("fish")
	global := s.Params()
	require.Less(t, override.TightnessThreshold, global.TightnessThreshold)
	require.Greater(t, override.AggressionLevel, global.AggressionLevel)
}

func TestOpponentRingBounded(t *testing.T) {
	s, _, _ := testStore(t)

	for i := 0; i < opponentWindow+5; i++ {
		s.RecordRound(RoundSummary{Opponents: []OpponentSummary{{ID: "opp-1", Won: i >= opponentWindow}}})
	}

	rec := s.Snapshot().Opponents["opp-1"]
	require.NotNil(t, rec)
	require.Len(t, rec.Hands, opponentWindow)
	// Newest entries survive the trim.
	require.True(t, rec.Hands[len(rec.Hands)-1].Won)
}

func TestReset(t *testing.T) {
	s, _, _ := testStore(t)
	s.RecordRound(winSummary())
	require.FileExists(t, s.Path())

	require.NoError(t, s.Reset())
	require.NoFileExists(t, s.Path())
	require.Equal(t, DefaultParams(), s.Params())
	require.Zero(t, s.Snapshot().TotalRounds)

	// Resetting twice is fine; the file is already gone.
	require.NoError(t, s.Reset())
}

func TestUpdatedAtTracksClock(t *testing.T) {
	s, _, clock := testStore(t)
	clock.Advance(42 * time.Minute)

	s.RecordRound(winSummary())
	require.True(t, s.Snapshot().UpdatedAt.Equal(clock.Now().UTC()))
}

func TestSaveFailureDoesNotBlockLearning(t *testing.T) {
	dir := t.TempDir()
	blocked := filepath.Join(dir, "occupied")
	require.NoError(t, os.WriteFile(blocked, []byte("a file, not a directory"), 0644))

	// The store's parent "directory" is a regular file, so every save fails.
	s := Open(filepath.Join(blocked, "nested"), "testbot", Params{}, quartz.NewMock(t), log.New(io.Discard))
	for i := 0; i < globalMinObs; i++ {
		s.RecordRound(lossSummary())
	}

	require.Equal(t, globalMinObs, s.Snapshot().TotalRounds)
	require.Greater(t, s.Params().TightnessThreshold, DefaultParams().TightnessThreshold)
	require.Error(t, s.Flush())
}

func TestSummarize(t *testing.T) {
	hole := poker.MustParseCards("QsQd")
	state := game.RoundState{
		Street:    game.Flop,
		Community: poker.MustParseCards("2c 7d 9h"),
		Seats: []game.Seat{
			{ID: "hero", Stack: 400, State: game.SeatParticipating},
			{ID: "opp-1", Stack: 350, State: game.SeatParticipating},
			{ID: "opp-2", Stack: 0, State: game.SeatOut},
			{ID: "opp-3", Stack: 500, State: game.SeatFolded},
		},
		Pot:        120,
		Button:     0,
		SmallBlind: 5,
		History: map[game.Street][]game.ActionRecord{
			game.Preflop: {
				{SeatID: "opp-1", Action: game.Raise, Amount: 20},
				{SeatID: "hero", Action: game.Call, Amount: 20},
				{SeatID: "opp-3", Action: game.Fold},
			},
			game.Flop: {
				{SeatID: "opp-1", Action: game.Raise, Amount: 60},
			},
		},
	}
	res := game.RoundResult{
		Winners:  []string{"opp-1"},
		Revealed: map[string][]poker.Card{"hero": hole, "opp-1": poker.MustParseCards("AcAd")},
		State:    state,
	}

	sum := Summarize("hero", res)
	require.False(t, sum.HeroWon)
	require.Len(t, sum.Opponents, 2, "hero and sat-out seats are excluded")

	byID := map[string]OpponentSummary{}
	for _, opp := range sum.Opponents {
		byID[opp.ID] = opp
	}
	require.Equal(t, []string{"raise", "raise"}, byID["opp-1"].Actions)
	require.True(t, byID["opp-1"].Won)
	require.Equal(t, poker.MustParseCards("AcAd"), byID["opp-1"].Shown)
	require.Equal(t, []string{"fold"}, byID["opp-3"].Actions)
	require.False(t, byID["opp-3"].Won)
	require.Empty(t, byID["opp-3"].Shown)
}
