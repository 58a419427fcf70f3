package poker

import (
	rand "math/rand/v2"
	"testing"

	phpoker "github.com/paulhankin/poker"
	"github.com/stretchr/testify/require"
)

func evalHand(t *testing.T, hole, board string) Score {
	t.Helper()
	return Evaluate(MustParseCards(hole), MustParseCards(board))
}

func TestEvaluateKnownScores(t *testing.T) {
	// Royal flush is the zero of the scale.
	require.Equal(t, Score(0), evalHand(t, "AsKs", "QsJsTs"))

	// The steel wheel is the weakest straight flush.
	require.Equal(t, Score(9), evalHand(t, "As2s", "3s4s5s"))

	// Quad aces with a king kicker heads the four-of-a-kind block.
	require.Equal(t, Score(10), evalHand(t, "AhAd", "AsAcKd"))

	// 7-5-4-3-2 offsuit is the weakest hand of all.
	require.Equal(t, ScoreWorst-1, evalHand(t, "7s5h", "4d3c2s"))
}

func TestEvaluateCategories(t *testing.T) {
	tests := []struct {
		name     string
		hole     string
		board    string
		category HandCategory
	}{
		{"high card", "AsKh", "2c7d9s", HighCard},
		{"one pair", "AsAh", "KdQc2s", OnePair},
		{"two pair", "AsKh", "AdKc2s", TwoPair},
		{"three of a kind", "AsAh", "Ad7c2s", ThreeOfAKind},
		{"straight", "8s9h", "TdJcQs", Straight},
		{"flush", "AsTs", "3s7s9s", Flush},
		{"full house", "AsAh", "AdKcKs", FullHouse},
		{"four of a kind", "AsAh", "AdAc2s", FourOfAKind},
		{"straight flush", "5s6s", "7s8s9s", StraightFlush},
		{"royal flush", "AhKh", "QhJhTh", RoyalFlush},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := evalHand(t, tt.hole, tt.board)
			require.True(t, score.Valid())
			require.Equal(t, tt.category, score.Category())
		})
	}
}

func TestEvaluatePicksBestFive(t *testing.T) {
	// The board alone plays when it beats anything the hole cards make.
	require.Equal(t, Score(0), evalHand(t, "2h2d", "AsKsQsJsTs"))

	// Four board cards plus one hole card.
	score := evalHand(t, "Ah2c", "KhQhJhTh")
	require.Equal(t, RoyalFlush, score.Category())
}

func TestEvaluateMalformedInput(t *testing.T) {
	board := MustParseCards("2c7d9s")

	tests := []struct {
		name  string
		hole  []Card
		board []Card
	}{
		{"no hole cards", nil, board},
		{"one hole card", MustParseCards("As"), board},
		{"three hole cards", MustParseCards("AsKhQd"), board},
		{"no board", MustParseCards("AsKh"), nil},
		{"two board cards", MustParseCards("AsKh"), MustParseCards("2c7d")},
		{"six board cards", MustParseCards("AsKh"), MustParseCards("2c7d9s4h5d6c")},
		{"duplicate across hole and board", MustParseCards("As2c"), board},
		{"duplicate within board", MustParseCards("AsKh"), MustParseCards("2c2c9s")},
		{"invalid card", []Card{{Rank: 1, Suit: Spades}, {Rank: Ace, Suit: Hearts}}, board},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Evaluate(tt.hole, tt.board)
			require.Equal(t, ScoreWorst, score)
			require.False(t, score.Valid())
		})
	}
}

func TestEvaluateMonotonicOnFixedBoard(t *testing.T) {
	board := "2c7d9hJsQd"

	// Descending hand quality must give ascending scores.
	scores := map[string]Score{}
	for _, hole := range []string{"QsQh", "JdJh", "AsAh", "KsKh", "AsKh"} {
		scores[hole] = evalHand(t, hole, board)
	}

	require.Less(t, scores["QsQh"], scores["JdJh"], "set of queens beats set of jacks")
	require.Less(t, scores["JdJh"], scores["AsAh"], "any set beats an overpair")
	require.Less(t, scores["AsAh"], scores["KsKh"], "aces beat kings")
	require.Less(t, scores["KsKh"], scores["AsKh"], "a pair beats ace high")
}

func TestEvaluateSuitSymmetry(t *testing.T) {
	require.Equal(t,
		evalHand(t, "AsKs", "QsJsTs"),
		evalHand(t, "AhKh", "QhJhTh"))
	require.Equal(t,
		evalHand(t, "AsTs", "3s7s9s"),
		evalHand(t, "AcTc", "3c7c9c"))
}

func TestEvaluateFive(t *testing.T) {
	require.Equal(t, Score(0), EvaluateFive(MustParseCards("AsKsQsJsTs")))
	require.Equal(t, ScoreWorst, EvaluateFive(MustParseCards("AsKs")))
}

func TestCompare(t *testing.T) {
	royal := evalHand(t, "AsKs", "QsJsTs")
	pair := evalHand(t, "AsAh", "KdQc2s")

	require.Equal(t, 1, royal.Compare(pair))
	require.Equal(t, -1, pair.Compare(royal))
	require.Equal(t, 0, pair.Compare(pair))
}

func toOracleCard(t *testing.T, c Card) phpoker.Card {
	t.Helper()

	var s phpoker.Suit
	switch c.Suit {
	case Clubs:
		s = phpoker.Club
	case Diamonds:
		s = phpoker.Diamond
	case Hearts:
		s = phpoker.Heart
	default:
		s = phpoker.Spade
	}

	r := phpoker.Rank(c.Rank)
	if c.Rank == Ace {
		r = phpoker.Rank(1)
	}

	pc, err := phpoker.MakeCard(s, r)
	require.NoError(t, err)
	return pc
}

// TestEvaluateAgainstOracle cross-checks hand ordering against an
// independent evaluator on random deals. The oracle scores ascending
// (higher wins) while ours scores descending, so comparisons invert.
func TestEvaluateAgainstOracle(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 13))
	cards := AllCards()

	for trial := 0; trial < 2000; trial++ {
		rng.Shuffle(len(cards), func(i, j int) {
			cards[i], cards[j] = cards[j], cards[i]
		})

		holeA := cards[0:2]
		holeB := cards[2:4]
		board := cards[4:9]

		scoreA := Evaluate(holeA, board)
		scoreB := Evaluate(holeB, board)

		var sevenA, sevenB [7]phpoker.Card
		for i, c := range append(append([]Card{}, holeA...), board...) {
			sevenA[i] = toOracleCard(t, c)
		}
		for i, c := range append(append([]Card{}, holeB...), board...) {
			sevenB[i] = toOracleCard(t, c)
		}

		oracleA := phpoker.Eval7(&sevenA)
		oracleB := phpoker.Eval7(&sevenB)

		switch {
		case oracleA > oracleB:
			require.Less(t, scoreA, scoreB, "hole %v vs %v on %v", holeA, holeB, board)
		case oracleA < oracleB:
			require.Greater(t, scoreA, scoreB, "hole %v vs %v on %v", holeA, holeB, board)
		default:
			require.Equal(t, scoreA, scoreB, "hole %v vs %v on %v", holeA, holeB, board)
		}
	}
}
