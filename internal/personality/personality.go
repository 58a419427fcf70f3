// Package personality defines the tunable profile a decision engine runs
// with. Profiles are data: one engine, many personalities, either from the
// built-in presets or from HCL files.
package personality

import (
	"fmt"
	"sort"
)

// Bias names for bet sizing. They skew where in a legal sizing window the
// selector lands.
const (
	BiasAggressive = "aggressive"
	BiasNeutral    = "neutral"
	BiasCautious   = "cautious"
)

// Config is one personality profile. All probabilities and equities are
// fractions in [0, 1].
type Config struct {
	Name string `hcl:"name,label"`

	// BluffProbability is the base chance of opening a bluff window on a
	// given action, before street and context scaling.
	BluffProbability float64 `hcl:"bluff_probability,optional"`

	// AggressionLevel is the baseline appetite for raising without a
	// clearly strong hand. Adaptive memory drifts around this value.
	AggressionLevel float64 `hcl:"aggression_level,optional"`

	// TightnessThreshold is the base preflop equity needed to continue.
	// Higher means fewer hands played.
	TightnessThreshold float64 `hcl:"tightness_threshold,optional"`

	// MinCallEquity rescues a marginal fold into a call when simulated
	// equity clears it.
	MinCallEquity float64 `hcl:"min_call_equity,optional"`

	// StrongRaiseEquity promotes a hand to a value raise regardless of
	// its raw score.
	StrongRaiseEquity float64 `hcl:"strong_raise_equity,optional"`

	// SizingBias is one of aggressive, neutral or cautious.
	SizingBias string `hcl:"sizing_bias,optional"`
}

var presets = map[string]Config{
	"balanced": {
		Name:               "balanced",
		BluffProbability:   0.15,
		AggressionLevel:    0.50,
		TightnessThreshold: 0.35,
		MinCallEquity:      0.25,
		StrongRaiseEquity:  0.62,
		SizingBias:         BiasNeutral,
	},
	"aggressive": {
		Name:               "aggressive",
		BluffProbability:   0.25,
		AggressionLevel:    0.75,
		TightnessThreshold: 0.30,
		MinCallEquity:      0.22,
		StrongRaiseEquity:  0.58,
		SizingBias:         BiasAggressive,
	},
	"cautious": {
		Name:               "cautious",
		BluffProbability:   0.08,
		AggressionLevel:    0.30,
		TightnessThreshold: 0.42,
		MinCallEquity:      0.28,
		StrongRaiseEquity:  0.66,
		SizingBias:         BiasCautious,
	},
	"maniac": {
		Name:               "maniac",
		BluffProbability:   0.38,
		AggressionLevel:    0.92,
		TightnessThreshold: 0.22,
		MinCallEquity:      0.18,
		StrongRaiseEquity:  0.52,
		SizingBias:         BiasAggressive,
	},
	"rock": {
		Name:               "rock",
		BluffProbability:   0.04,
		AggressionLevel:    0.18,
		TightnessThreshold: 0.50,
		MinCallEquity:      0.32,
		StrongRaiseEquity:  0.70,
		SizingBias:         BiasCautious,
	},
}

// Default returns the balanced preset.
func Default() Config {
	return presets["balanced"]
}

// Preset returns a built-in profile by name.
func Preset(name string) (Config, bool) {
	cfg, ok := presets[name]
	return cfg, ok
}

// PresetNames returns the built-in profile names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// applyDefaults fills unset fields from the balanced preset. Zero values
// count as unset, matching how the rest of the configuration surface treats
// missing HCL attributes.
func (c *Config) applyDefaults() {
	def := Default()
	if c.BluffProbability == 0 {
		c.BluffProbability = def.BluffProbability
	}
	if c.AggressionLevel == 0 {
		c.AggressionLevel = def.AggressionLevel
	}
	if c.TightnessThreshold == 0 {
		c.TightnessThreshold = def.TightnessThreshold
	}
	if c.MinCallEquity == 0 {
		c.MinCallEquity = def.MinCallEquity
	}
	if c.StrongRaiseEquity == 0 {
		c.StrongRaiseEquity = def.StrongRaiseEquity
	}
	if c.SizingBias == "" {
		c.SizingBias = def.SizingBias
	}
}

// Validate checks that every knob is inside its working range.
func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("personality has no name")
	}
	if c.BluffProbability < 0 || c.BluffProbability > 0.5 {
		return fmt.Errorf("personality %s: bluff_probability %.2f outside [0, 0.5]", c.Name, c.BluffProbability)
	}
	if c.AggressionLevel < 0 || c.AggressionLevel > 1 {
		return fmt.Errorf("personality %s: aggression_level %.2f outside [0, 1]", c.Name, c.AggressionLevel)
	}
	if c.TightnessThreshold < 0.05 || c.TightnessThreshold > 0.95 {
		return fmt.Errorf("personality %s: tightness_threshold %.2f outside [0.05, 0.95]", c.Name, c.TightnessThreshold)
	}
	if c.MinCallEquity < 0 || c.MinCallEquity > 1 {
		return fmt.Errorf("personality %s: min_call_equity %.2f outside [0, 1]", c.Name, c.MinCallEquity)
	}
	if c.StrongRaiseEquity < 0 || c.StrongRaiseEquity > 1 {
		return fmt.Errorf("personality %s: strong_raise_equity %.2f outside [0, 1]", c.Name, c.StrongRaiseEquity)
	}
	if c.MinCallEquity >= c.StrongRaiseEquity {
		return fmt.Errorf("personality %s: min_call_equity %.2f must be below strong_raise_equity %.2f",
			c.Name, c.MinCallEquity, c.StrongRaiseEquity)
	}
	switch c.SizingBias {
	case BiasAggressive, BiasNeutral, BiasCautious:
	default:
		return fmt.Errorf("personality %s: unknown sizing_bias %q", c.Name, c.SizingBias)
	}
	return nil
}
