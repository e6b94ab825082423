// pcy mines frequent itemsets from a basket file with the PCY variant of
// the Apriori algorithm.
//
// Usage:
//
//	pcy [flags] <datafile> <threshold>
//
// Every line of datafile is one basket of whitespace separated integer
// items. threshold is the minimum support count, inclusive.
//
// Exit codes:
//
//	0: mining completed, whether or not frequent itemsets were found
//	1: bad arguments or flags
//	2: the dataset could not be read or parsed
//	3: redis or another internal failure
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kwertop/pcy"
	"github.com/kwertop/pcy/apriori"
	"github.com/kwertop/pcy/bitmap"
	"github.com/kwertop/pcy/buckets"
	"github.com/kwertop/pcy/count"
	"github.com/kwertop/pcy/dataset"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

const (
	exitOK = iota
	exitUsage
	exitDataset
	exitInternal
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pcy", flag.ContinueOnError)
	fs.SetOutput(stderr)
	join := fs.String("join", "flattened", "candidate generation above level 2 (flattened or apriori); apriori can drop sets whose sub-pairs the bucket bitmap pruned")
	containment := fs.String("containment", "proper", "baskets counted toward a support (proper or subset)")
	indexed := fs.Bool("indexed", false, "count support with a roaring bitmap index instead of scanning baskets")
	redisURI := fs.String("redis", "", "keep bucket counts and the bitmap in redis at this uri")
	allLevels := fs.Bool("levels", false, "print every level, not only the final one")
	verbose := fs.CountP("verbose", "v", "log mining progress; repeat to also dump the bucket bitmap")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: pcy [flags] <datafile> <threshold>")
		fs.PrintDefaults()
	}

	log.SetOutput(stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}
	switch {
	case *verbose > 1:
		log.SetLevel(log.TraceLevel)
	case *verbose == 1:
		log.SetLevel(log.DebugLevel)
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return exitUsage
	}
	path := fs.Arg(0)
	threshold, err := strconv.ParseUint(fs.Arg(1), 10, 64)
	if err != nil {
		log.Errorf("pcy: invalid threshold %q: must be a non-negative integer", fs.Arg(1))
		return exitUsage
	}

	cfg := apriori.Config{Threshold: threshold, Indexed: *indexed}
	if cfg.Join, err = apriori.ParseJoinPolicy(*join); err != nil {
		log.Error(err)
		return exitUsage
	}
	if cfg.Containment, err = count.ParseContainment(*containment); err != nil {
		log.Error(err)
		return exitUsage
	}

	var counter buckets.Counter
	if *redisURI != "" {
		connOptions, err := pcy.ParseRedisURI(*redisURI)
		if err != nil {
			log.Error(err)
			return exitUsage
		}
		store, err := newRedisStore(*connOptions)
		if err != nil {
			log.Error(err)
			return exitInternal
		}
		defer store.Close()
		counter = store.buckets
		cfg.NewBitmap = store.newBitmap
	}

	result, err := apriori.NewMiner(cfg).MineFile(path, counter)
	if err != nil {
		log.Error(err)
		if isDatasetError(err) {
			return exitDataset
		}
		return exitInternal
	}
	if err := printResult(stdout, result, *allLevels); err != nil {
		log.Error(err)
		return exitInternal
	}
	return exitOK
}

func isDatasetError(err error) bool {
	var parseErr *dataset.ParseError
	var readErr *dataset.ReadError
	var pathErr *os.PathError
	return errors.As(err, &parseErr) || errors.As(err, &readErr) || errors.As(err, &pathErr)
}

// redisStore owns the redis client and keys of one run and removes the
// keys when closed.
type redisStore struct {
	client  *redis.Client
	buckets *buckets.BucketRedis
	bitmaps []*bitmap.BitmapRedis
}

func newRedisStore(options pcy.RedisConnOptions) (*redisStore, error) {
	client := pcy.NewRedisClient(options)
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, errors.Wrapf(err, "pcy: cannot reach redis at %s", options.Address)
	}
	return &redisStore{client: client, buckets: buckets.NewBucketRedis(client)}, nil
}

func (s *redisStore) newBitmap(size uint) (bitmap.Bitmap, error) {
	b, err := bitmap.NewBitmapRedis(s.client, size)
	if err != nil {
		return nil, err
	}
	s.bitmaps = append(s.bitmaps, b)
	return b, nil
}

func (s *redisStore) Close() {
	if err := s.buckets.Delete(); err != nil {
		log.Warnf("pcy: removing %s: %v", s.buckets.Key(), err)
	}
	for _, b := range s.bitmaps {
		if err := b.Delete(); err != nil {
			log.Warnf("pcy: removing %s: %v", b.Key(), err)
		}
	}
	s.client.Close()
}
