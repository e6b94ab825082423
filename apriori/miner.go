/*
Package apriori drives the PCY variant of the Apriori algorithm: frequent
items, bitmap pruned pairs, then level by level candidate generation and
exact support counting until a level comes out empty.
*/
package apriori

import (
	"github.com/kwertop/pcy/bitmap"
	"github.com/kwertop/pcy/buckets"
	"github.com/kwertop/pcy/count"
	"github.com/kwertop/pcy/dataset"
	"github.com/kwertop/pcy/filters"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Config holds the settings of a Miner. The zero value of every field
// but Threshold selects the default behaviour.
type Config struct {
	// Threshold is the minimum support, inclusive.
	Threshold uint64
	// Join selects candidate generation for levels above 2.
	Join JoinPolicy
	// Containment selects which baskets count toward a support.
	Containment count.Containment
	// Indexed counts support from a roaring bitmap index instead of
	// scanning every basket for every candidate.
	Indexed bool
	// NewBitmap creates the bucket bitmap. Defaults to an in-memory one.
	NewBitmap func(size uint) (bitmap.Bitmap, error)
}

// Miner runs the PCY pipeline. A Miner holds no state between runs.
type Miner struct {
	cfg Config
}

// NewMiner creates a Miner with _cfg_
func NewMiner(cfg Config) *Miner {
	if cfg.NewBitmap == nil {
		cfg.NewBitmap = func(size uint) (bitmap.Bitmap, error) {
			return bitmap.NewBitmapMem(size), nil
		}
	}
	return &Miner{cfg}
}

// MineFile loads the dataset at _path_, hashing pairs into _counter_, and
// mines it. A nil _counter_ selects an in-memory bucket table.
func (m *Miner) MineFile(path string, counter buckets.Counter) (*Result, error) {
	if counter == nil {
		counter = buckets.NewBucketMem()
	}
	ds, err := dataset.LoadFile(path, counter)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"path": path, "baskets": ds.Len(), "items": len(ds.ItemCounts)}).Debug("dataset loaded")
	return m.Mine(ds)
}

// Mine runs every level on _ds_ and returns the result. The "no frequent
// itemsets" outcomes are reported through Result.Outcome, not as errors.
func (m *Miner) Mine(ds *dataset.Dataset) (*Result, error) {
	threshold := m.cfg.Threshold
	result := &Result{Threshold: threshold}
	result.Stats.Baskets = ds.Len()

	filter, err := m.buildFilter(ds.Buckets, &result.Stats)
	if err != nil {
		return nil, err
	}

	f1 := count.FrequentItems(ds.ItemCounts, threshold)
	result.addLevel(1, len(ds.ItemCounts), f1)
	if len(f1) == 0 {
		result.Outcome = OutcomeNoFrequentItems
		log.WithField("threshold", threshold).Debug("no frequent items")
		return result, nil
	}

	pairs := m.cfg.Join.Generate(count.Itemsets(f1), 2)
	kept, err := filter.Prune(pairs)
	if err != nil {
		return nil, errors.Wrap(err, "pcy: pair pruning failed")
	}
	result.Stats.PairsGenerated = len(pairs)
	result.Stats.PairsPruned = len(pairs) - len(kept)
	log.WithFields(log.Fields{"pairs": len(pairs), "kept": len(kept)}).Debug("pairs pruned")
	if len(kept) == 0 {
		result.Outcome = OutcomeNoCandidatePairs
		return result, nil
	}

	counter := m.newCounter(ds)
	prev := count.Sorted(count.Frequent(counter.Count(kept), threshold))
	result.addLevel(2, len(kept), prev)
	result.Outcome = OutcomeFrequent

	for k := 3; len(prev) > 0; k++ {
		candidates := m.cfg.Join.Generate(count.Itemsets(prev), k)
		fk := count.Sorted(count.Frequent(counter.Count(candidates), threshold))
		if len(fk) == 0 {
			log.WithFields(log.Fields{"level": k, "candidates": len(candidates)}).Debug("level empty, stopping")
			result.Stats.Levels = append(result.Stats.Levels, LevelStats{k, len(candidates), 0})
			break
		}
		result.addLevel(k, len(candidates), fk)
		prev = fk
	}
	return result, nil
}

func (m *Miner) buildFilter(counter buckets.Counter, stats *Stats) (*filters.PairFilter, error) {
	counts, err := counter.Counts()
	if err != nil {
		return nil, errors.Wrap(err, "pcy: reading bucket counts failed")
	}
	bm, err := m.cfg.NewBitmap(uint(len(counts)))
	if err != nil {
		return nil, errors.Wrap(err, "pcy: creating bitmap failed")
	}
	if err := bitmap.Build(bm, counts, m.cfg.Threshold); err != nil {
		return nil, errors.Wrap(err, "pcy: building bitmap failed")
	}
	if stats.FrequentBuckets, err = bm.BitCount(); err != nil {
		return nil, errors.Wrap(err, "pcy: counting bitmap bits failed")
	}
	log.WithFields(log.Fields{"buckets": len(counts), "frequent": stats.FrequentBuckets}).Debug("bitmap built")
	if log.IsLevelEnabled(log.TraceLevel) {
		size, data, err := bm.Export()
		if err != nil {
			return nil, errors.Wrap(err, "pcy: exporting bitmap failed")
		}
		log.WithFields(log.Fields{"size": size, "bitmap": string(data)}).Trace("bitmap exported")
	}
	return filters.NewPairFilter(bm)
}

func (m *Miner) newCounter(ds *dataset.Dataset) count.Counter {
	if m.cfg.Indexed {
		return count.NewIndexCounter(ds.Baskets, m.cfg.Containment)
	}
	return count.NewScanCounter(ds.Baskets, m.cfg.Containment)
}

func (r *Result) addLevel(k, candidates int, sets []count.Candidate) {
	r.Levels = append(r.Levels, Level{k, sets})
	r.Stats.Levels = append(r.Stats.Levels, LevelStats{k, candidates, len(sets)})
	log.WithFields(log.Fields{"level": k, "candidates": candidates, "frequent": len(sets)}).Debug("level counted")
}
