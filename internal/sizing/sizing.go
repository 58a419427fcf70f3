// Package sizing turns a raise decision into chips. The selector samples a
// fraction from a per-street window, applies personality bias and stack
// discipline, and always lands inside the legal raise window.
package sizing

import (
	rand "math/rand/v2"

	"github.com/crsthn-slv/poker-game-sub000/internal/game"
)

// Category grades how big a bet wants to be before stack and legality
// constraints have their say.
type Category int

const (
	Small Category = iota
	Medium
	Large
)

func (c Category) String() string {
	if c < Small || c > Large {
		return "unknown"
	}
	return [...]string{"small", "medium", "large"}[c]
}

// Bias skews where in the sampled window the final fraction lands.
type Bias int

const (
	Neutral Bias = iota
	Aggressive
	Cautious
)

// BiasFromName maps a personality's sizing_bias attribute onto a Bias.
// Unknown names fall back to neutral.
func BiasFromName(name string) Bias {
	switch name {
	case "aggressive":
		return Aggressive
	case "cautious":
		return Cautious
	default:
		return Neutral
	}
}

// preflopBigBlindCap is the hard ceiling for preflop raises, in big blinds.
const preflopBigBlindCap = 6

// roundCountDrift is the per-round shrink applied as a session ages, capped
// at maxRoundDrift. Long sessions bet a shade smaller.
const (
	roundCountDrift = 0.002
	maxRoundDrift   = 0.30
)

// Input carries everything one sizing decision needs.
type Input struct {
	Min        int // legal raise-to minimum
	Max        int // legal raise-to maximum
	Pot        int
	BigBlind   int
	Stack      int
	Street     game.Street
	Category   Category
	SPR        float64
	Bias       Bias
	RoundCount int
}

// window is an inclusive fraction range. Preflop fractions are big blinds,
// postflop fractions are of the pot.
type window struct {
	min, max float64
}

func sizeWindow(street game.Street, category Category) window {
	switch street {
	case game.Preflop:
		switch category {
		case Small:
			return window{2.0, 2.5}
		case Large:
			return window{3.5, 4.5}
		default:
			return window{2.5, 3.5}
		}
	case game.Turn:
		switch category {
		case Small:
			return window{0.30, 0.45}
		case Large:
			return window{0.70, 1.10}
		default:
			return window{0.45, 0.70}
		}
	case game.River:
		switch category {
		case Small:
			return window{0.30, 0.50}
		case Large:
			return window{0.80, 1.25}
		default:
			return window{0.50, 0.80}
		}
	default: // flop, and any street we do not recognise
		switch category {
		case Small:
			return window{0.25, 0.40}
		case Large:
			return window{0.65, 1.00}
		default:
			return window{0.40, 0.65}
		}
	}
}

// sample draws a fraction from the window, biased into its top or bottom
// third for aggressive or cautious profiles.
func sample(rng *rand.Rand, w window, bias Bias) float64 {
	lo, hi := w.min, w.max
	span := hi - lo
	switch bias {
	case Aggressive:
		lo = hi - span/3
	case Cautious:
		hi = lo + span/3
	}
	return lo + rng.Float64()*(hi-lo)
}

// Amount selects the raise-to total for one decision. Whatever the caps do,
// the result is clamped into [Min, Max]; legality always wins.
func Amount(rng *rand.Rand, in Input) int {
	frac := sample(rng, sizeWindow(in.Street, in.Category), in.Bias)

	bb := in.BigBlind
	if bb <= 0 {
		bb = 2
	}

	var amount float64
	if in.Street == game.Preflop {
		// Preflop sizing is denominated in big blinds, not pot fractions;
		// tiny early pots would otherwise produce degenerate raises.
		amount = frac * float64(bb)
	} else {
		pot := in.Pot
		if pot <= 0 {
			pot = 2 * bb
		}
		amount = frac * float64(pot)
	}

	// Stack discipline: shallow stack-to-pot ratios cap how much of the
	// stack a single sizing may reach for.
	if in.Stack > 0 && in.SPR > 0 {
		switch {
		case in.SPR < 3:
			if ceiling := 0.30 * float64(in.Stack); amount > ceiling {
				amount = ceiling
			}
		case in.SPR < 10:
			if ceiling := 0.40 * float64(in.Stack); amount > ceiling {
				amount = ceiling
			}
		}
	}

	// Long sessions shade smaller.
	if in.RoundCount > 0 {
		drift := roundCountDrift * float64(in.RoundCount)
		if drift > maxRoundDrift {
			drift = maxRoundDrift
		}
		amount *= 1 - drift
	}

	if in.Street == game.Preflop {
		if ceiling := float64(preflopBigBlindCap * bb); amount > ceiling {
			amount = ceiling
		}
	}

	total := int(amount + 0.5)
	if total < in.Min {
		total = in.Min
	}
	if total > in.Max {
		total = in.Max
	}
	return total
}
