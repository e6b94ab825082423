package apriori

import "github.com/kwertop/pcy/count"

// Outcome tells how a mining run ended
type Outcome int

const (
	// OutcomeFrequent means the run reached a level whose candidates were
	// counted exactly. The final level may still hold no sets when no
	// pair survived exact counting.
	OutcomeFrequent Outcome = iota
	// OutcomeNoFrequentItems means no single item met the threshold.
	OutcomeNoFrequentItems
	// OutcomeNoCandidatePairs means the bitmap rejected every pair of
	// frequent items, so no pair was counted.
	OutcomeNoCandidatePairs
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFrequent:
		return "frequent"
	case OutcomeNoFrequentItems:
		return "no frequent items"
	case OutcomeNoCandidatePairs:
		return "no candidate pairs"
	default:
		return "unknown"
	}
}

// Level holds the frequent sets of size K found by a run, sorted.
type Level struct {
	K    int
	Sets []count.Candidate
}

// LevelStats records the work done at one level
type LevelStats struct {
	K          int
	Candidates int
	Frequent   int
}

// Stats records the work done by a run
type Stats struct {
	Baskets         int
	FrequentBuckets uint
	PairsGenerated  int
	PairsPruned     int
	Levels          []LevelStats
}

// Result is the outcome of a mining run
type Result struct {
	Threshold uint64
	Outcome   Outcome
	// Levels holds every level computed, level 1 first.
	Levels []Level
	Stats  Stats
}

// Found reports whether the run got past the level 1 and pair pruning
// gates. A false value is the "no frequent itemsets" result.
func (r *Result) Found() bool {
	return r.Outcome == OutcomeFrequent
}

// Final returns the highest level reached. It is the zero Level when
// Found is false.
func (r *Result) Final() Level {
	if !r.Found() || len(r.Levels) == 0 {
		return Level{}
	}
	return r.Levels[len(r.Levels)-1]
}
