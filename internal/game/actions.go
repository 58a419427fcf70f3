package game

import (
	"errors"
	"fmt"

	"github.com/crsthn-slv/poker-game-sub000/poker"
)

// RaiseDisabled is the sentinel minimum carried when the game engine has
// ruled raising out for this action.
const RaiseDisabled = -1

// CallAction describes the cost of staying in the hand. Amount zero is a
// check.
type CallAction struct {
	Amount int `json:"amount"`
}

// RaiseAction describes the raise window. Min is RaiseDisabled when raising
// is not on offer; amounts are raise-to totals.
type RaiseAction struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Available reports whether the engine may raise at all.
func (r RaiseAction) Available() bool {
	return r.Min >= 0
}

// ValidActions is the action envelope for one decision. Folding is always
// permitted and carries no parameters.
type ValidActions struct {
	Call  CallAction  `json:"call"`
	Raise RaiseAction `json:"raise"`
}

// ErrNoActions marks a decision request whose action envelope is unusable.
// It is the one condition the decision engine reports as an error instead of
// degrading, since acting on it would violate the game engine's contract.
var ErrNoActions = errors.New("no valid actions")

// Validate checks the envelope's internal consistency.
func (va ValidActions) Validate() error {
	if va.Call.Amount < 0 {
		return fmt.Errorf("%w: negative call amount %d", ErrNoActions, va.Call.Amount)
	}
	if va.Raise.Available() {
		if va.Raise.Max < va.Raise.Min {
			return fmt.Errorf("%w: raise window %d..%d is inverted", ErrNoActions, va.Raise.Min, va.Raise.Max)
		}
	} else if va.Raise.Min != RaiseDisabled {
		return fmt.Errorf("%w: raise minimum %d is neither a total nor the disabled sentinel", ErrNoActions, va.Raise.Min)
	}
	return nil
}

// DecisionRequest is everything the decision engine receives for one action.
type DecisionRequest struct {
	HeroID string       `json:"hero_id"`
	Hole   []poker.Card `json:"hole"`
	State  RoundState   `json:"state"`
	Valid  ValidActions `json:"valid_actions"`
}

// Validate checks the caller-contract parts of the request: the envelope,
// the hero seat and the table snapshot. Hole cards are deliberately not
// checked here; malformed cards degrade inside the engine.
func (req DecisionRequest) Validate() error {
	if err := req.Valid.Validate(); err != nil {
		return err
	}
	if req.HeroID == "" {
		return fmt.Errorf("%w: request names no hero seat", ErrNoActions)
	}
	if _, ok := req.State.SeatByID(req.HeroID); !ok {
		return fmt.Errorf("%w: hero seat %q not at table", ErrNoActions, req.HeroID)
	}
	return req.State.Validate()
}

// Decision is the engine's answer: fold, call or raise, with the chips the
// action commits. Amount is the call cost for calls, the raise-to total for
// raises, and zero for folds.
type Decision struct {
	Action Action `json:"action"`
	Amount int    `json:"amount"`
}

func (d Decision) String() string {
	switch d.Action {
	case Raise:
		return fmt.Sprintf("raise to %d", d.Amount)
	case Call:
		if d.Amount == 0 {
			return "check"
		}
		return fmt.Sprintf("call %d", d.Amount)
	default:
		return "fold"
	}
}
