package poker

import (
	"math/bits"
	"slices"
)

// Score grades a hand on a single descending scale: 0 is a royal flush and
// larger values are weaker. The 7462 distinct five-card hand classes map to
// 0 through 7461; ScoreWorst sits one past the weakest real hand and is
// returned for malformed input. A Score is only meaningful once at least
// three board cards are known.
type Score uint16

// HandCategory enumerates the categories of poker hands ordered from weakest
// to strongest.
type HandCategory uint8

const (
	HighCard HandCategory = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

const (
	straightFlushCount = 10
	fourOfAKindCount   = 13 * 12
	fullHouseCount     = 13 * 12
	flushCount         = 1277
	straightCount      = 10
	threeOfAKindCount  = 13 * 66
	twoPairCount       = 78 * 11
	onePairCount       = 13 * 220
	highCardCount      = 1277
)

const (
	baseStraightFlush = 0
	baseFourOfAKind   = baseStraightFlush + straightFlushCount
	baseFullHouse     = baseFourOfAKind + fourOfAKindCount
	baseFlush         = baseFullHouse + fullHouseCount
	baseStraight      = baseFlush + flushCount
	baseThreeOfAKind  = baseStraight + straightCount
	baseTwoPair       = baseThreeOfAKind + threeOfAKindCount
	baseOnePair       = baseTwoPair + twoPairCount
	baseHighCard      = baseOnePair + onePairCount
)

// ScoreWorst is the ceiling of the scale, strictly weaker than every real
// hand. Malformed input evaluates to it.
const ScoreWorst Score = baseHighCard + highCardCount

// boundaries mark the exclusive upper bound for each category in descending strength order.
var categoryBoundaries = [...]Score{
	Score(baseFourOfAKind),
	Score(baseFullHouse),
	Score(baseFlush),
	Score(baseStraight),
	Score(baseThreeOfAKind),
	Score(baseTwoPair),
	Score(baseOnePair),
	Score(baseHighCard),
	ScoreWorst,
}

// Category returns the hand category the score falls in. A royal flush is
// the zero score of the straight-flush run.
func (s Score) Category() HandCategory {
	switch {
	case s == 0:
		return RoyalFlush
	case s < categoryBoundaries[0]:
		return StraightFlush
	case s < categoryBoundaries[1]:
		return FourOfAKind
	case s < categoryBoundaries[2]:
		return FullHouse
	case s < categoryBoundaries[3]:
		return Flush
	case s < categoryBoundaries[4]:
		return Straight
	case s < categoryBoundaries[5]:
		return ThreeOfAKind
	case s < categoryBoundaries[6]:
		return TwoPair
	case s < categoryBoundaries[7]:
		return OnePair
	default:
		return HighCard
	}
}

// Valid reports whether the score describes a real hand rather than the
// malformed-input ceiling.
func (s Score) Valid() bool {
	return s < ScoreWorst
}

// Compare returns 1 if s is the stronger score, -1 if o is, and 0 for a tie.
func (s Score) Compare(o Score) int {
	if s < o {
		return 1
	} else if s > o {
		return -1
	}
	return 0
}

// String returns a human-readable hand description.
func (s Score) String() string {
	return s.Category().String()
}

// String returns the display name of a hand category.
func (c HandCategory) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Evaluate scores the best five-card hand that two hole cards make with the
// board. It requires exactly two hole cards and three to five board cards;
// anything else, including invalid or duplicated cards, evaluates to
// ScoreWorst rather than an error.
func Evaluate(hole []Card, board []Card) Score {
	if len(hole) != 2 || len(board) < 3 || len(board) > 5 {
		return ScoreWorst
	}

	var suitMasks [4]uint16
	var seen CardSet
	for _, card := range hole {
		if !card.Valid() || seen.Contains(card) {
			return ScoreWorst
		}
		seen.Add(card)
		suitMasks[card.Suit] |= 1 << uint(card.Rank-Two)
	}
	for _, card := range board {
		if !card.Valid() || seen.Contains(card) {
			return ScoreWorst
		}
		seen.Add(card)
		suitMasks[card.Suit] |= 1 << uint(card.Rank-Two)
	}

	rankMask := suitMasks[0] | suitMasks[1] | suitMasks[2] | suitMasks[3]
	return scoreFromMasks(suitMasks, rankMask)
}

// EvaluateFive scores exactly five cards, used when the caller already holds
// a complete hand rather than hole cards plus a board.
func EvaluateFive(cards []Card) Score {
	if len(cards) != 5 {
		return ScoreWorst
	}
	return Evaluate(cards[:2], cards[2:])
}

// scoreFromMasks grades the best five-card hand found in the masks. The
// masks may hold five to seven cards. Each category block computes an
// ascending index (stronger hands larger) and detailDesc flips it onto
// the descending score scale.
func scoreFromMasks(suitMasks [4]uint16, rankMask uint16) Score {
	// Flushes first. Every suit is examined so a straight flush is never
	// shadowed by a plain flush in another suit.
	bestFlush := ScoreWorst
	flushFound := false
	for _, suitMask := range suitMasks {
		if bits.OnesCount16(suitMask) < 5 {
			continue
		}
		if high := straightHighMask(suitMask); high > 0 {
			return Score(baseStraightFlush + detailDesc(straightFlushCount, straightOrdinal(high)))
		}
		top := topKickers(suitMask, 5)
		flushIdx := squeezeStraights(comboIndex13of5[rankBits(top)])
		if strength := Score(baseFlush + detailDesc(flushCount, flushIdx)); strength < bestFlush {
			bestFlush = strength
			flushFound = true
		}
	}
	if flushFound {
		return bestFlush
	}

	s0, s1, s2, s3 := suitMasks[0], suitMasks[1], suitMasks[2], suitMasks[3]

	anyTwo := (s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)
	anyThree := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	quadBits := s0 & s1 & s2 & s3
	tripBits := anyThree &^ quadBits
	pairBits := anyTwo &^ anyThree

	if quad := highestRank(quadBits); quad >= 0 {
		quadRank := uint8(quad)
		kickerOrd := ordinalAmongRest(bestKicker(rankMask, quadRank), quadRank)
		asc := uint16(quadRank)*12 + uint16(kickerOrd)
		return Score(baseFourOfAKind + detailDesc(fourOfAKindCount, asc))
	}

	if tr := highestRank(tripBits); tr >= 0 {
		trip := uint8(tr)
		// A second set of trips can supply the pair of a full house.
		pairCandidates := pairBits | (tripBits &^ (1 << tr))
		if pr := highestRank(pairCandidates); pr >= 0 {
			pairOrd := ordinalAmongRest(uint8(pr), trip)
			asc := uint16(trip)*12 + uint16(pairOrd)
			return Score(baseFullHouse + detailDesc(fullHouseCount, asc))
		}
	}

	if high := straightHighMask(rankMask); high > 0 {
		return Score(baseStraight + detailDesc(straightCount, straightOrdinal(high)))
	}

	if tr := highestRank(tripBits); tr >= 0 {
		trip := uint8(tr)
		kickers := topKickers(rankMask, 2, trip)
		asc := uint16(trip)*66 + comboIndex12of2[squeezedBits(kickers, trip)]
		return Score(baseThreeOfAKind + detailDesc(threeOfAKindCount, asc))
	}

	if first := highestRank(pairBits); first >= 0 {
		highPair := uint8(first)
		if second := highestRank(pairBits &^ (1 << first)); second >= 0 {
			// highestRank on the reduced mask always yields the lower pair.
			lowPair := uint8(second)
			bothPairs := (1 << lowPair) | (1 << highPair)
			kicker := bestKicker(rankMask, highPair, lowPair)
			kickerOrd := ordinalAmongRest(kicker, highPair, lowPair)
			asc := comboIndex13of2[bothPairs]*11 + uint16(kickerOrd)
			return Score(baseTwoPair + detailDesc(twoPairCount, asc))
		}
		kickers := topKickers(rankMask, 3, highPair)
		asc := uint16(highPair)*220 + comboIndex12of3[squeezedBits(kickers, highPair)]
		return Score(baseOnePair + detailDesc(onePairCount, asc))
	}

	kickers := topKickers(rankMask, 5)
	asc := squeezeStraights(comboIndex13of5[rankBits(kickers)])
	return Score(baseHighCard + detailDesc(highCardCount, asc))
}

// detailDesc converts an ascending within-category index into the
// descending detail the score scale wants.
func detailDesc(count int, asc uint16) uint16 {
	return uint16(count-1) - asc
}

// highestRank returns the highest rank bit set in the mask, or -1 when empty.
func highestRank(mask uint16) int {
	return bits.Len16(mask) - 1
}

// bestKicker returns the highest rank in mask outside the excluded ranks,
// or zero when nothing remains.
func bestKicker(mask uint16, excluded ...uint8) uint8 {
	avail := mask &^ rankBits(excluded)
	if avail == 0 {
		return 0
	}
	return uint8(bits.Len16(avail) - 1)
}

// topKickers returns the n highest ranks in mask outside the excluded
// ranks, in descending order. Slots past the available ranks stay zero.
func topKickers(mask uint16, n int, excluded ...uint8) []uint8 {
	avail := mask &^ rankBits(excluded)
	out := make([]uint8, n)
	for i := range out {
		if avail == 0 {
			break
		}
		top := uint8(bits.Len16(avail) - 1)
		out[i] = top
		avail &^= 1 << top
	}
	return out
}

// rankBits folds ranks into a bitmask.
func rankBits(ranks []uint8) uint16 {
	var mask uint16
	for _, r := range ranks {
		mask |= 1 << r
	}
	return mask
}

// ordinalAmongRest maps a rank to its position among the ranks left once
// the excluded ones are removed, keeping per-category indices dense.
func ordinalAmongRest(rank uint8, excluded ...uint8) uint8 {
	ord := rank
	for _, ex := range excluded {
		if ex < rank {
			ord--
		}
	}
	return ord
}

// squeezedBits folds ranks into a bitmask over their ordinals among the
// non-excluded ranks.
func squeezedBits(ranks []uint8, excluded ...uint8) uint16 {
	var mask uint16
	for _, r := range ranks {
		mask |= 1 << ordinalAmongRest(r, excluded...)
	}
	return mask
}

// Perfect-hash tables mapping a rank bitmask to the lexicographic index
// of that rank combination. The 13-choose-5 table backs flushes and high
// cards, the smaller ones back kicker sets.
var (
	comboIndex13of5 = comboIndexTable(13, 5)
	comboIndex13of2 = comboIndexTable(13, 2)
	comboIndex12of2 = comboIndexTable(12, 2)
	comboIndex12of3 = comboIndexTable(12, 3)
)

// comboIndexTable enumerates the k-subsets of ranks below limit in
// lexicographic order and records each subset's index under its bitmask.
func comboIndexTable(limit, k int) []uint16 {
	table := make([]uint16, 1<<limit)
	var next uint16
	var walk func(from, left int, mask uint16)
	walk = func(from, left int, mask uint16) {
		if left == 0 {
			table[mask] = next
			next++
			return
		}
		for r := from; r <= limit-left; r++ {
			walk(r+1, left-1, mask|1<<r)
		}
	}
	walk(0, k, 0)
	return table
}

// wheelRanks is the A-2-3-4-5 rank pattern, the one straight whose ace
// plays low.
const wheelRanks = 0x100F

// straightComboIndices holds the sorted 13-choose-5 indices of the ten
// straight rank patterns, for squeezing them out of flush and high-card
// details.
var straightComboIndices = func() [10]uint16 {
	var arr [10]uint16
	arr[0] = comboIndex13of5[wheelRanks]
	for high := 4; high <= 12; high++ {
		var mask uint16
		for r := high - 4; r <= high; r++ {
			mask |= 1 << r
		}
		arr[high-3] = comboIndex13of5[mask]
	}
	slices.Sort(arr[:])
	return arr
}()

// straightOrdinal gives the ascending index of a straight by its high
// rank bit. The wheel sorts below the six-high straight.
func straightOrdinal(high uint8) uint16 {
	if high == 3 { // wheel reports the five as its high bit
		return 0
	}
	return uint16(high - 3)
}

// squeezeStraights drops the ten straight patterns out of an ascending
// 13-choose-5 index so flush and high-card details stay dense at 1277.
func squeezeStraights(idx uint16) uint16 {
	var shift uint16
	for _, s := range straightComboIndices {
		if idx <= s {
			break
		}
		shift++
	}
	return idx - shift
}

// straightHighMask returns the high-card rank bit of the best straight in
// the mask, or 0 when there is none. Rank bits run 0-12 for deuce through
// ace; the wheel reports bit 3, the five.
func straightHighMask(mask uint16) uint8 {
	mask &= 0x1FFF

	// Five consecutive bits survive four successive shift-ands. This runs
	// before the wheel check so an ace-to-six run grades as six high.
	run := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if run != 0 {
		return uint8(bits.Len16(run)-1) + 4
	}
	if mask&wheelRanks == wheelRanks {
		return 3
	}
	return 0
}
