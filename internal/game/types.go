// Package game defines the typed contract between the decision engine and
// the game engine that hosts it. Payloads are validated once at this
// boundary; inner components trust the structs they receive.
package game

import (
	"fmt"

	"github.com/crsthn-slv/poker-game-sub000/poker"
)

// Street represents the betting round
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

func (s Street) String() string {
	if s < Preflop || s > River {
		return "unknown"
	}
	return [...]string{"preflop", "flop", "turn", "river"}[s]
}

// Valid reports whether the street is one of the four betting rounds.
func (s Street) Valid() bool {
	return s >= Preflop && s <= River
}

// ParseStreet parses a street name as carried on the wire.
func ParseStreet(name string) (Street, error) {
	switch name {
	case "preflop":
		return Preflop, nil
	case "flop":
		return Flop, nil
	case "turn":
		return Turn, nil
	case "river":
		return River, nil
	default:
		return 0, fmt.Errorf("unknown street %q", name)
	}
}

// MarshalText encodes the street by name.
func (s Street) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("cannot encode street %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a street from its name.
func (s *Street) UnmarshalText(text []byte) error {
	street, err := ParseStreet(string(text))
	if err != nil {
		return err
	}
	*s = street
	return nil
}

// Action represents a player action
type Action int

const (
	Fold Action = iota
	Call
	Raise
)

func (a Action) String() string {
	if a < Fold || a > Raise {
		return "unknown"
	}
	return [...]string{"fold", "call", "raise"}[a]
}

// ParseAction parses an action name as carried on the wire.
func ParseAction(name string) (Action, error) {
	switch name {
	case "fold":
		return Fold, nil
	case "call", "check":
		return Call, nil
	case "raise", "bet":
		return Raise, nil
	default:
		return 0, fmt.Errorf("unknown action %q", name)
	}
}

// MarshalText encodes the action by name.
func (a Action) MarshalText() ([]byte, error) {
	if a < Fold || a > Raise {
		return nil, fmt.Errorf("cannot encode action %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText decodes an action from its name.
func (a *Action) UnmarshalText(text []byte) error {
	action, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = action
	return nil
}

// SeatState describes whether a seat is still contesting the round.
type SeatState int

const (
	SeatParticipating SeatState = iota
	SeatFolded
	SeatOut
)

func (st SeatState) String() string {
	if st < SeatParticipating || st > SeatOut {
		return "unknown"
	}
	return [...]string{"participating", "folded", "out"}[st]
}

// MarshalText encodes the seat state by name.
func (st SeatState) MarshalText() ([]byte, error) {
	if st < SeatParticipating || st > SeatOut {
		return nil, fmt.Errorf("cannot encode seat state %d", int(st))
	}
	return []byte(st.String()), nil
}

// UnmarshalText decodes a seat state from its name.
func (st *SeatState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "participating":
		*st = SeatParticipating
	case "folded":
		*st = SeatFolded
	case "out":
		*st = SeatOut
	default:
		return fmt.Errorf("unknown seat state %q", text)
	}
	return nil
}

// Seat is one player position at the table.
type Seat struct {
	ID    string    `json:"id"`
	Name  string    `json:"name,omitempty"`
	Stack int       `json:"stack"`
	State SeatState `json:"state"`
}

// ActionRecord is one entry of a street's betting history.
type ActionRecord struct {
	SeatID string `json:"seat_id"`
	Action Action `json:"action"`
	Amount int    `json:"amount"`
}

// RoundState is the table snapshot the game engine supplies with every
// decision request and result.
type RoundState struct {
	Street     Street                    `json:"street"`
	Community  []poker.Card              `json:"community"`
	Seats      []Seat                    `json:"seats"`
	Pot        int                       `json:"pot"`
	History    map[Street][]ActionRecord `json:"history,omitempty"`
	Button     int                       `json:"button"`
	SmallBlind int                       `json:"small_blind"`
}

// BigBlind returns the big blind derived from the small blind.
func (rs RoundState) BigBlind() int {
	return rs.SmallBlind * 2
}

// Participating returns the seats still contesting the round, in table order.
func (rs RoundState) Participating() []Seat {
	var seats []Seat
	for _, seat := range rs.Seats {
		if seat.State == SeatParticipating {
			seats = append(seats, seat)
		}
	}
	return seats
}

// SeatByID returns the seat with the given ID.
func (rs RoundState) SeatByID(id string) (Seat, bool) {
	for _, seat := range rs.Seats {
		if seat.ID == id {
			return seat, true
		}
	}
	return Seat{}, false
}

// RaiseCount returns how many raises the current street has seen.
func (rs RoundState) RaiseCount() int {
	count := 0
	for _, rec := range rs.History[rs.Street] {
		if rec.Action == Raise {
			count++
		}
	}
	return count
}

// communityCardsFor returns the expected board size per street.
func communityCardsFor(street Street) int {
	switch street {
	case Flop:
		return 3
	case Turn:
		return 4
	case River:
		return 5
	default:
		return 0
	}
}

// Validate checks the structural integrity of the snapshot. Card-level
// problems are left to the scorer, which degrades instead of failing.
func (rs RoundState) Validate() error {
	if !rs.Street.Valid() {
		return fmt.Errorf("invalid street %d", int(rs.Street))
	}
	if len(rs.Seats) < 2 {
		return fmt.Errorf("round needs at least 2 seats, got %d", len(rs.Seats))
	}
	if rs.Button < 0 || rs.Button >= len(rs.Seats) {
		return fmt.Errorf("button %d out of range for %d seats", rs.Button, len(rs.Seats))
	}
	if rs.Pot < 0 {
		return fmt.Errorf("negative pot %d", rs.Pot)
	}
	if rs.SmallBlind <= 0 {
		return fmt.Errorf("small blind must be positive, got %d", rs.SmallBlind)
	}
	if want := communityCardsFor(rs.Street); len(rs.Community) != want {
		return fmt.Errorf("street %s expects %d community cards, got %d", rs.Street, want, len(rs.Community))
	}

	seen := make(map[string]bool, len(rs.Seats))
	for i, seat := range rs.Seats {
		if seat.ID == "" {
			return fmt.Errorf("seat %d has no ID", i)
		}
		if seen[seat.ID] {
			return fmt.Errorf("duplicate seat ID %q", seat.ID)
		}
		seen[seat.ID] = true
		if seat.Stack < 0 {
			return fmt.Errorf("seat %q has negative stack %d", seat.ID, seat.Stack)
		}
	}

	return nil
}

// RoundResult is the feedback the game engine sends once a round resolves.
// Revealed only carries hole cards for seats that reached showdown.
type RoundResult struct {
	Winners  []string                `json:"winners"`
	Revealed map[string][]poker.Card `json:"revealed,omitempty"`
	State    RoundState              `json:"state"`
}

// Won reports whether the given seat took any share of the pot.
func (rr RoundResult) Won(seatID string) bool {
	for _, id := range rr.Winners {
		if id == seatID {
			return true
		}
	}
	return false
}
