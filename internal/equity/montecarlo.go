package equity

import (
	rand "math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/crsthn-slv/poker-game-sub000/internal/randutil"
	"github.com/crsthn-slv/poker-game-sub000/poker"
)

const (
	// FastTrials is the per-decision trial budget. Decision latency matters
	// more than the last point of precision while the bot is acting.
	FastTrials = 500

	// DisplayTrials is the player-facing budget used for odds display.
	DisplayTrials = 2000

	// parallelThreshold is the trial count from which worker fan-out pays
	// for itself.
	parallelThreshold = 500

	maxWorkers = 8
)

// SimOptions configures one simulation run.
type SimOptions struct {
	Trials    int            // defaults to FastTrials
	Opponents int            // total opponents, defaults to 1
	Known     [][]poker.Card // hole cards revealed for some opponents
	Workers   int            // 0 = one per CPU, capped at maxWorkers
}

// Estimate is a simulated equity with the spread observed across
// independent sub-samples.
type Estimate struct {
	Mean float64
	Low  float64
	High float64
}

type trialResult struct {
	wins  int
	valid int
}

// Simulate estimates the probability that the hole cards win against the
// configured opponents once the board runs out. A trial counts as a win only
// when the hero hand scores strictly better than every opponent hand; ties
// are not wins. Malformed input (wrong hole count, oversized board,
// duplicated or invalid cards, not enough deck left) yields 0.0.
func Simulate(rng *rand.Rand, hole []poker.Card, board []poker.Card, opts SimOptions) float64 {
	plan, ok := newSimPlan(hole, board, opts)
	if !ok {
		return 0.0
	}

	trials := opts.Trials
	if trials <= 0 {
		trials = FastTrials
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > maxWorkers {
		workers = maxWorkers
	}

	var total trialResult
	if trials >= parallelThreshold && workers > 1 {
		total = plan.runParallel(rng, trials, workers)
	} else {
		total = plan.run(rng, trials)
	}

	if total.valid == 0 {
		return 0.0
	}
	return float64(total.wins) / float64(total.valid)
}

// SimulateInterval estimates equity as Simulate does but splits the budget
// into independent sub-samples and reports the band of their means. The band
// is presentation data for preflop odds, not a statistical guarantee.
func SimulateInterval(rng *rand.Rand, hole []poker.Card, board []poker.Card, opts SimOptions, subsamples int) Estimate {
	if subsamples <= 1 {
		eq := Simulate(rng, hole, board, opts)
		return Estimate{Mean: eq, Low: eq, High: eq}
	}

	trials := opts.Trials
	if trials <= 0 {
		trials = DisplayTrials
	}
	perSample := trials / subsamples
	if perSample < 1 {
		perSample = 1
	}

	sampleOpts := opts
	sampleOpts.Trials = perSample

	var sum, low, high float64
	for i := 0; i < subsamples; i++ {
		eq := Simulate(rng, hole, board, sampleOpts)
		sum += eq
		if i == 0 || eq < low {
			low = eq
		}
		if i == 0 || eq > high {
			high = eq
		}
	}

	return Estimate{Mean: sum / float64(subsamples), Low: low, High: high}
}

// simPlan is the validated, immutable part of a simulation shared by all
// workers.
type simPlan struct {
	hole      []poker.Card
	board     []poker.Card
	known     [][]poker.Card
	unknown   int
	available []poker.Card
	draw      int
}

func newSimPlan(hole []poker.Card, board []poker.Card, opts SimOptions) (*simPlan, bool) {
	if len(hole) != 2 || len(board) > 5 {
		return nil, false
	}

	var used poker.CardSet
	for _, card := range hole {
		if !card.Valid() || used.Contains(card) {
			return nil, false
		}
		used.Add(card)
	}
	for _, card := range board {
		if !card.Valid() || used.Contains(card) {
			return nil, false
		}
		used.Add(card)
	}
	for _, oppHole := range opts.Known {
		if len(oppHole) != 2 {
			return nil, false
		}
		for _, card := range oppHole {
			if !card.Valid() || used.Contains(card) {
				return nil, false
			}
			used.Add(card)
		}
	}

	opponents := opts.Opponents
	if opponents < 1 {
		opponents = 1
	}
	if opponents < len(opts.Known) {
		opponents = len(opts.Known)
	}
	unknown := opponents - len(opts.Known)

	var available []poker.Card
	for _, card := range poker.AllCards() {
		if !used.Contains(card) {
			available = append(available, card)
		}
	}

	draw := (5 - len(board)) + 2*unknown
	if len(available) < draw {
		return nil, false
	}

	return &simPlan{
		hole:      hole,
		board:     board,
		known:     opts.Known,
		unknown:   unknown,
		available: available,
		draw:      draw,
	}, true
}

func (p *simPlan) run(rng *rand.Rand, trials int) trialResult {
	var res trialResult

	scratch := make([]poker.Card, len(p.available))
	finalBoard := make([]poker.Card, 5)
	copy(finalBoard, p.board)

	for t := 0; t < trials; t++ {
		copy(scratch, p.available)

		// Partial Fisher-Yates: only the cards this trial consumes are
		// shuffled into place.
		for i := 0; i < p.draw; i++ {
			j := i + rng.IntN(len(scratch)-i)
			scratch[i], scratch[j] = scratch[j], scratch[i]
		}

		idx := 0
		for i := len(p.board); i < 5; i++ {
			finalBoard[i] = scratch[idx]
			idx++
		}

		heroScore := poker.Evaluate(p.hole, finalBoard)
		if !heroScore.Valid() {
			continue
		}

		win := true
		for _, oppHole := range p.known {
			if poker.Evaluate(oppHole, finalBoard) <= heroScore {
				win = false
				break
			}
		}
		for o := 0; win && o < p.unknown; o++ {
			oppHole := scratch[idx+2*o : idx+2*o+2]
			if poker.Evaluate(oppHole, finalBoard) <= heroScore {
				win = false
			}
		}

		if win {
			res.wins++
		}
		res.valid++
	}

	return res
}

// runParallel fans trials out across workers with independent RNGs derived
// from the parent source, so a seeded simulation stays reproducible.
func (p *simPlan) runParallel(rng *rand.Rand, trials, workers int) trialResult {
	perWorker := trials / workers
	remainder := trials % workers

	seeds := make([]int64, workers)
	for i := range seeds {
		seeds[i] = rng.Int64()
	}

	results := make([]trialResult, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		share := perWorker
		if w < remainder {
			share++
		}
		g.Go(func() error {
			results[w] = p.run(randutil.New(seeds[w]), share)
			return nil
		})
	}
	_ = g.Wait()

	var total trialResult
	for _, res := range results {
		total.wins += res.wins
		total.valid += res.valid
	}
	return total
}
