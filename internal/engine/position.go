package engine

import "github.com/crsthn-slv/poker-game-sub000/internal/game"

// Position is the hero's seat relative to the dealer button, over the seats
// still contesting the round.
type Position int

const (
	UTG Position = iota
	MP
	CO
	BTN
	SB
	BB
)

func (p Position) String() string {
	if p < UTG || p > BB {
		return "unknown"
	}
	return [...]string{"UTG", "MP", "CO", "BTN", "SB", "BB"}[p]
}

// Late reports whether the position acts after most of the table.
func (p Position) Late() bool {
	return p == CO || p == BTN
}

// positionFor derives the hero's position from the button offset over the
// participating seats. Heads-up the button posts the small blind, so the
// button seat reads SB and the other seat BB.
func positionFor(state game.RoundState, heroID string) Position {
	seats := state.Participating()
	n := len(seats)
	if n < 2 {
		return BB
	}

	// Index of the button within the participating ring. The button seat
	// itself may already be folded or out; the ring then anchors on the
	// first participant at or after it in table order.
	buttonIdx := 0
	if state.Button >= 0 && state.Button < len(state.Seats) {
	anchor:
		for i := 0; i < len(state.Seats); i++ {
			id := state.Seats[(state.Button+i)%len(state.Seats)].ID
			for j, seat := range seats {
				if seat.ID == id {
					buttonIdx = j
					break anchor
				}
			}
		}
	}

	heroIdx := -1
	for i, seat := range seats {
		if seat.ID == heroID {
			heroIdx = i
			break
		}
	}
	if heroIdx < 0 {
		return BB
	}

	offset := ((heroIdx - buttonIdx) + n) % n
	if n == 2 {
		if offset == 0 {
			return SB
		}
		return BB
	}

	switch offset {
	case 0:
		return BTN
	case 1:
		return SB
	case 2:
		return BB
	case 3:
		return UTG
	}
	if offset == n-1 {
		return CO
	}
	return MP
}
