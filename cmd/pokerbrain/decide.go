package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/crsthn-slv/poker-game-sub000/internal/engine"
	"github.com/crsthn-slv/poker-game-sub000/internal/game"
	"github.com/crsthn-slv/poker-game-sub000/internal/memory"
	"github.com/crsthn-slv/poker-game-sub000/internal/personality"
)

// DecideCmd runs one decision: request JSON in, action out.
type DecideCmd struct {
	Input           string `arg:"" optional:"" help:"Decision request JSON file (defaults to stdin)"`
	JSON            bool   `help:"Emit the decision as JSON"`
	Personality     string `help:"Personality preset or profile name (default balanced)" env:"POKERBRAIN_PERSONALITY"`
	PersonalityFile string `help:"HCL personality file overriding the presets" type:"existingfile"`
	MemoryDir       string `help:"Directory of agent memory files (empty plays without learning)" env:"POKERBRAIN_MEMORY_DIR"`
	Agent           string `help:"Agent key for the memory file" default:"default"`
}

func (c *DecideCmd) Run(g *Globals) error {
	logger := g.Logger()

	pers, err := personality.Resolve(c.Personality, c.PersonalityFile)
	if err != nil {
		return err
	}

	var mem *memory.Store
	if c.MemoryDir != "" {
		mem, err = openStore(c.MemoryDir, c.Agent, pers, logger)
		if err != nil {
			return err
		}
	}

	req, err := readRequest(c.Input)
	if err != nil {
		return err
	}

	e := engine.New(engine.Config{Debug: g.Debug, Seed: g.Seed}, pers, mem, logger)
	decision, err := e.Decide(req)
	if err != nil {
		return fmt.Errorf("decide: %w", err)
	}

	if c.JSON {
		return json.NewEncoder(os.Stdout).Encode(decision)
	}
	fmt.Println(decision)
	return nil
}

func readRequest(path string) (game.DecisionRequest, error) {
	var req game.DecisionRequest

	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return req, fmt.Errorf("read request: %w", err)
	}

	if err := json.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("parse request: %w", err)
	}
	return req, nil
}

// openStore opens the agent's memory file with the personality as the
// learning baseline.
func openStore(dir, agent string, pers personality.Config, logger *log.Logger) (*memory.Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create memory dir: %w", err)
	}
	baseline := memory.Params{
		BluffProbability:   pers.BluffProbability,
		AggressionLevel:    pers.AggressionLevel,
		TightnessThreshold: pers.TightnessThreshold,
	}
	return memory.Open(dir, agent, baseline, quartz.NewReal(), logger), nil
}
