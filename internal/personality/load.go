package personality

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// personalityFile is the top-level HCL schema: any number of labelled
// personality blocks.
//
//	personality "loose-cannon" {
//	  bluff_probability   = 0.28
//	  aggression_level    = 0.75
//	  tightness_threshold = 0.30
//	  min_call_equity     = 0.22
//	  strong_raise_equity = 0.60
//	  sizing_bias         = "aggressive"
//	}
type personalityFile struct {
	Personalities []Config `hcl:"personality,block"`
}

// Load reads every personality block from an HCL file, applies defaults for
// unset attributes and validates the result. Profiles are keyed by their
// block label.
func Load(filename string) (map[string]Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var parsed personalityFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if len(parsed.Personalities) == 0 {
		return nil, fmt.Errorf("%s defines no personalities", filename)
	}

	profiles := make(map[string]Config, len(parsed.Personalities))
	for i := range parsed.Personalities {
		cfg := parsed.Personalities[i]
		cfg.applyDefaults()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		if _, dup := profiles[cfg.Name]; dup {
			return nil, fmt.Errorf("duplicate personality %q", cfg.Name)
		}
		profiles[cfg.Name] = cfg
	}

	return profiles, nil
}

// Resolve returns the named built-in preset, or when a file is given, the
// named profile from it. An empty name resolves to the balanced preset.
func Resolve(name, filename string) (Config, error) {
	if filename != "" {
		profiles, err := Load(filename)
		if err != nil {
			return Config{}, err
		}
		if name == "" {
			if len(profiles) == 1 {
				for _, cfg := range profiles {
					return cfg, nil
				}
			}
			return Config{}, fmt.Errorf("%s defines %d personalities, name one", filename, len(profiles))
		}
		cfg, ok := profiles[name]
		if !ok {
			return Config{}, fmt.Errorf("personality %q not found in %s", name, filename)
		}
		return cfg, nil
	}

	if name == "" {
		return Default(), nil
	}
	cfg, ok := Preset(name)
	if !ok {
		return Config{}, fmt.Errorf("unknown personality preset %q (have %v)", name, PresetNames())
	}
	return cfg, nil
}
