package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/crsthn-slv/poker-game-sub000/internal/equity"
	"github.com/crsthn-slv/poker-game-sub000/poker"
)

// PreflopCmd prints entries of the embedded preflop equity table.
type PreflopCmd struct {
	Hands []string `arg:"" optional:"" help:"Hands to look up as classes (AKs, QQ, 72o) or cards (AhKh); empty prints all 169"`
}

func (c *PreflopCmd) Run(g *Globals) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	if len(c.Hands) == 0 {
		fmt.Println(headerStyle.Render("Preflop equity vs one random hand"))
		for _, key := range equity.PreflopKeys() {
			eq, _ := equity.PreflopByKey(key)
			fmt.Fprintf(w, "%s\t%s\n", handStyle.Render(key), winStyle.Render(fmt.Sprintf("%.1f%%", eq*100)))
		}
		return nil
	}

	for _, hand := range c.Hands {
		key := hand
		eq, ok := equity.PreflopByKey(key)
		if !ok {
			cards, err := poker.ParseCards(hand)
			if err != nil || len(cards) != 2 {
				return fmt.Errorf("unknown hand %q: want a class like AKs or two cards like AhKs", hand)
			}
			key = equity.HandKey(cards[0], cards[1])
			eq, ok = equity.PreflopByKey(key)
			if !ok {
				return fmt.Errorf("no table entry for %q", key)
			}
		}
		fmt.Fprintf(w, "%s\t%s\n", handStyle.Render(key), winStyle.Render(fmt.Sprintf("%.1f%%", eq*100)))
	}
	return nil
}
