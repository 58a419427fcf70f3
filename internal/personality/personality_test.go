package personality

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPresetsAreValid(t *testing.T) {
	names := PresetNames()
	require.Equal(t, []string{"aggressive", "balanced", "cautious", "maniac", "rock"}, names)

	for _, name := range names {
		cfg, ok := Preset(name)
		require.True(t, ok)
		require.NoError(t, cfg.Validate())
		require.Equal(t, name, cfg.Name)
	}
}

func TestDefaultIsBalanced(t *testing.T) {
	require.Equal(t, "balanced", Default().Name)
}

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "personalities.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeProfile(t, `
personality "loose-cannon" {
  bluff_probability   = 0.28
  aggression_level    = 0.75
  tightness_threshold = 0.30
  min_call_equity     = 0.22
  strong_raise_equity = 0.60
  sizing_bias         = "aggressive"
}

personality "nit" {
  tightness_threshold = 0.55
  sizing_bias         = "cautious"
}
`)

	profiles, err := Load(path)
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	loose := profiles["loose-cannon"]
	require.Equal(t, 0.28, loose.BluffProbability)
	require.Equal(t, 0.75, loose.AggressionLevel)
	require.Equal(t, BiasAggressive, loose.SizingBias)

	// Unset attributes inherit the balanced preset.
	nit := profiles["nit"]
	require.Equal(t, 0.55, nit.TightnessThreshold)
	require.Equal(t, Default().BluffProbability, nit.BluffProbability)
	require.Equal(t, Default().MinCallEquity, nit.MinCallEquity)
}

func TestLoadRejectsBadProfiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad bias", `
personality "weird" {
  sizing_bias = "yolo"
}
`},
		{"inverted equities", `
personality "upside-down" {
  min_call_equity     = 0.70
  strong_raise_equity = 0.60
}
`},
		{"duplicate name", `
personality "twin" {}
personality "twin" {}
`},
		{"empty file", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeProfile(t, tt.content))
			require.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	require.Error(t, err)
}

func TestResolve(t *testing.T) {
	cfg, err := Resolve("", "")
	require.NoError(t, err)
	require.Equal(t, "balanced", cfg.Name)

	cfg, err = Resolve("maniac", "")
	require.NoError(t, err)
	require.Equal(t, "maniac", cfg.Name)

	_, err = Resolve("hero", "")
	require.Error(t, err)

	path := writeProfile(t, `personality "custom" {}`)
	cfg, err = Resolve("", path)
	require.NoError(t, err)
	require.Equal(t, "custom", cfg.Name)

	_, err = Resolve("other", path)
	require.Error(t, err)
}
