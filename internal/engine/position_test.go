package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crsthn-slv/poker-game-sub000/internal/game"
)

func tableOf(n int, button int) game.RoundState {
	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	seats := make([]game.Seat, n)
	for i := 0; i < n; i++ {
		seats[i] = game.Seat{ID: ids[i], Stack: 200, State: game.SeatParticipating}
	}
	return game.RoundState{
		Street:     game.Preflop,
		Seats:      seats,
		Pot:        3,
		Button:     button,
		SmallBlind: 1,
	}
}

func TestPositionSixHanded(t *testing.T) {
	state := tableOf(6, 0)
	want := map[string]Position{
		"a": BTN, "b": SB, "c": BB, "d": UTG, "e": MP, "f": CO,
	}
	for id, pos := range want {
		require.Equal(t, pos, positionFor(state, id), "seat %s", id)
	}
}

func TestPositionRotatesWithButton(t *testing.T) {
	state := tableOf(6, 3)
	require.Equal(t, BTN, positionFor(state, "d"))
	require.Equal(t, SB, positionFor(state, "e"))
	require.Equal(t, BB, positionFor(state, "f"))
	require.Equal(t, UTG, positionFor(state, "a"))
	require.Equal(t, MP, positionFor(state, "b"))
	require.Equal(t, CO, positionFor(state, "c"))
}

func TestPositionThreeHanded(t *testing.T) {
	state := tableOf(3, 1)
	require.Equal(t, BTN, positionFor(state, "b"))
	require.Equal(t, SB, positionFor(state, "c"))
	require.Equal(t, BB, positionFor(state, "a"))
}

func TestPositionHeadsUp(t *testing.T) {
	// Heads-up the button posts the small blind.
	state := tableOf(2, 0)
	require.Equal(t, SB, positionFor(state, "a"))
	require.Equal(t, BB, positionFor(state, "b"))

	state.Button = 1
	require.Equal(t, BB, positionFor(state, "a"))
	require.Equal(t, SB, positionFor(state, "b"))
}

func TestPositionSkipsFoldedButton(t *testing.T) {
	state := tableOf(4, 0)
	state.Seats[0].State = game.SeatFolded

	// The ring anchors on the next live seat after the button.
	require.Equal(t, BTN, positionFor(state, "b"))
	require.Equal(t, SB, positionFor(state, "c"))
	require.Equal(t, BB, positionFor(state, "d"))
}

func TestPositionLate(t *testing.T) {
	require.True(t, BTN.Late())
	require.True(t, CO.Late())
	require.False(t, UTG.Late())
	require.False(t, SB.Late())
}

func TestPositionString(t *testing.T) {
	require.Equal(t, "UTG", UTG.String())
	require.Equal(t, "BTN", BTN.String())
	require.Equal(t, "unknown", Position(42).String())
}
