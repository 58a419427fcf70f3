package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/crsthn-slv/poker-game-sub000/internal/personality"
)

// MemoryCmd inspects and manages agent memory files.
type MemoryCmd struct {
	Show  MemoryShowCmd  `cmd:"" help:"Print an agent's learned state"`
	Reset MemoryResetCmd `cmd:"" help:"Delete an agent's memory file and start over"`
}

type memoryArgs struct {
	MemoryDir   string `help:"Directory of agent memory files" env:"POKERBRAIN_MEMORY_DIR" default:"."`
	Agent       string `help:"Agent key for the memory file" default:"default"`
	Personality string `help:"Preset whose tunables act as the learning baseline (default balanced)" env:"POKERBRAIN_PERSONALITY"`
}

type MemoryShowCmd struct {
	memoryArgs
}

func (c *MemoryShowCmd) Run(g *Globals) error {
	pers, err := personality.Resolve(c.Personality, "")
	if err != nil {
		return err
	}
	store, err := openStore(c.MemoryDir, c.Agent, pers, g.Logger())
	if err != nil {
		return err
	}
	snap := store.Snapshot()

	fmt.Println(headerStyle.Render("Agent memory"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("File"), store.Path())
	fmt.Fprintf(w, "%s\t%d (%d won)\n", labelStyle.Render("Rounds"), snap.TotalRounds, snap.Wins)
	if !snap.UpdatedAt.IsZero() {
		fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Updated"), snap.UpdatedAt.Format("2006-01-02 15:04:05 MST"))
	}
	fmt.Fprintf(w, "%s\t%.2f\n", labelStyle.Render("Bluff probability"), snap.BluffProbability)
	fmt.Fprintf(w, "%s\t%.2f\n", labelStyle.Render("Aggression level"), snap.AggressionLevel)
	fmt.Fprintf(w, "%s\t%.2f\n", labelStyle.Render("Tightness threshold"), snap.TightnessThreshold)
	if err := w.Flush(); err != nil {
		return err
	}

	if len(snap.Opponents) == 0 {
		return nil
	}

	ids := make([]string, 0, len(snap.Opponents))
	for id := range snap.Opponents {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println()
	fmt.Println(headerStyle.Render("Opponent overrides"))
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		labelStyle.Render("Opponent"),
		labelStyle.Render("Hands"),
		labelStyle.Render("Bluff"),
		labelStyle.Render("Aggression"),
		labelStyle.Render("Tightness"),
	)
	for _, id := range ids {
		rec := snap.Opponents[id]
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%.2f\t%.2f\n",
			handStyle.Render(id), len(rec.Hands),
			rec.BluffProbability, rec.AggressionLevel, rec.TightnessThreshold)
	}
	return w.Flush()
}

type MemoryResetCmd struct {
	memoryArgs
}

func (c *MemoryResetCmd) Run(g *Globals) error {
	logger := g.Logger()
	pers, err := personality.Resolve(c.Personality, "")
	if err != nil {
		return err
	}
	store, err := openStore(c.MemoryDir, c.Agent, pers, logger)
	if err != nil {
		return err
	}
	if err := store.Reset(); err != nil {
		return fmt.Errorf("reset memory: %w", err)
	}
	logger.Info("Memory reset", "path", store.Path())
	return nil
}
