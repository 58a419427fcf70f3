package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/crsthn-slv/poker-game-sub000/internal/equity"
	"github.com/crsthn-slv/poker-game-sub000/internal/randutil"
	"github.com/crsthn-slv/poker-game-sub000/poker"
)

// OddsCmd estimates win probability for a hand by Monte Carlo simulation.
type OddsCmd struct {
	Hand      string   `arg:"" help:"Hero hole cards, e.g. 'AhKd'"`
	Board     string   `short:"b" help:"Community cards (e.g. 'Td7s8h')"`
	Opponents int      `short:"o" default:"1" help:"Number of opponents"`
	Known     []string `short:"k" help:"Known opponent hole cards, repeatable (e.g. -k QcQd)"`
	Trials    int      `short:"t" default:"2000" help:"Number of simulation trials"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func (c *OddsCmd) Run(g *Globals) error {
	hole, err := poker.ParseCards(c.Hand)
	if err != nil {
		return fmt.Errorf("parse hand: %w", err)
	}
	if len(hole) != 2 {
		return fmt.Errorf("hand must contain exactly 2 cards, got %d", len(hole))
	}

	var board []poker.Card
	if c.Board != "" {
		board, err = poker.ParseCards(c.Board)
		if err != nil {
			return fmt.Errorf("parse board: %w", err)
		}
		if len(board) > 5 {
			return fmt.Errorf("board cannot have more than 5 cards, got %d", len(board))
		}
	}

	known := make([][]poker.Card, 0, len(c.Known))
	for i, s := range c.Known {
		cards, err := poker.ParseCards(s)
		if err != nil {
			return fmt.Errorf("parse known hand %d: %w", i+1, err)
		}
		if len(cards) != 2 {
			return fmt.Errorf("known hand %d must contain exactly 2 cards, got %d", i+1, len(cards))
		}
		known = append(known, cards)
	}
	if len(known) > c.Opponents {
		return fmt.Errorf("%d known hands exceed %d opponents", len(known), c.Opponents)
	}

	if err := checkNoDuplicates(hole, board, known); err != nil {
		return err
	}

	rng := randutil.NewOptional(g.Seed)
	opts := equity.SimOptions{
		Trials:    c.Trials,
		Opponents: c.Opponents,
		Known:     known,
	}

	start := time.Now()
	var est equity.Estimate
	if len(board) == 0 {
		est = equity.SimulateInterval(rng, hole, nil, opts, 4)
	} else {
		eq := equity.Simulate(rng, hole, board, opts)
		est = equity.Estimate{Mean: eq, Low: eq, High: eq}
	}
	elapsed := time.Since(start)

	fmt.Println(headerStyle.Render("Equity simulation"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Hand"), handStyle.Render(renderCards(hole)))
	if len(board) > 0 {
		fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Board"), handStyle.Render(renderCards(board)))
		score := poker.Evaluate(hole, board)
		if score.Valid() {
			fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Made hand"), categoryStyle.Render(score.Category().String()))
		}
	}
	fmt.Fprintf(w, "%s\t%d\n", labelStyle.Render("Opponents"), c.Opponents)
	fmt.Fprintf(w, "%s\t%d in %s\n", labelStyle.Render("Trials"), c.Trials, elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("Equity"), winStyle.Render(fmt.Sprintf("%.1f%%", est.Mean*100)))
	if len(board) == 0 {
		fmt.Fprintf(w, "%s\t%.1f%% to %.1f%%\n", labelStyle.Render("Spread"), est.Low*100, est.High*100)
		if c.Opponents == 1 && len(known) == 0 {
			key := equity.HandKey(hole[0], hole[1])
			fmt.Fprintf(w, "%s\t%s %.1f%%\n", labelStyle.Render("Table"), key, equity.Preflop(hole[0], hole[1])*100)
		}
	}
	return w.Flush()
}

func renderCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// checkNoDuplicates rejects any card appearing twice across the hero hand,
// the board and the known opponent hands.
func checkNoDuplicates(hole, board []poker.Card, known [][]poker.Card) error {
	var seen poker.CardSet
	note := func(cards []poker.Card) error {
		for _, card := range cards {
			if seen.Contains(card) {
				return fmt.Errorf("duplicate card %s", card.Compact())
			}
			seen.Add(card)
		}
		return nil
	}
	if err := note(hole); err != nil {
		return err
	}
	if err := note(board); err != nil {
		return err
	}
	for _, hand := range known {
		if err := note(hand); err != nil {
			return err
		}
	}
	return nil
}
