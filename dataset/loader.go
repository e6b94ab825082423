// Package dataset reads a basket file into memory in one pass, counting
// every item and hashing every item pair into a bucket counter on the way.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kwertop/pcy"
	"github.com/kwertop/pcy/buckets"
	"github.com/pkg/errors"
)

// Lines up to 10 MB are accepted.
const maxLineCapacity = 10 * 1024 * 1024

// Dataset is the in-memory result of the loading pass. It is not
// modified after Load returns.
type Dataset struct {
	// Baskets in input line order.
	Baskets []pcy.Basket
	// ItemCounts maps every item to the number of baskets holding it.
	ItemCounts map[pcy.Item]uint64
	// Buckets holds, per bucket, the number of in-basket item pairs
	// hashed to it.
	Buckets buckets.Counter
}

// ParseError reports a token on a dataset line that is not an integer.
type ParseError struct {
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("pcy: line %d: invalid item %q: %v", e.Line, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ReadError reports a failure reading the dataset itself, such as a line
// longer than the scanner accepts.
type ReadError struct {
	Line int
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("pcy: read failed after line %d: %v", e.Line, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// LoadFile opens the file at _path_ and loads it with Load.
func LoadFile(path string, counter buckets.Counter) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "pcy: cannot open dataset %s", path)
	}
	defer file.Close()
	ds, err := Load(file, counter)
	if err != nil {
		return nil, errors.WithMessagef(err, "pcy: dataset %s", path)
	}
	return ds, nil
}

// Load reads one basket per line from _r_. Items on a line are separated
// by whitespace; repeated items on a line count once. Blank lines give
// empty baskets. Every unordered pair of a basket increments its bucket
// in _counter_.
func Load(r io.Reader, counter buckets.Counter) (*Dataset, error) {
	ds := &Dataset{
		ItemCounts: make(map[pcy.Item]uint64),
		Buckets:    counter,
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineCapacity)
	line := 0
	for scanner.Scan() {
		line++
		basket, err := parseBasket(line, scanner.Text())
		if err != nil {
			return nil, err
		}
		ds.Baskets = append(ds.Baskets, basket)
		for _, item := range basket {
			ds.ItemCounts[item]++
		}
		if err := counter.Increment(buckets.PairIndexes(basket)); err != nil {
			return nil, errors.Wrapf(err, "pcy: line %d", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ReadError{Line: line, Err: err}
	}
	return ds, nil
}

func parseBasket(line int, text string) (pcy.Basket, error) {
	fields := strings.Fields(text)
	items := make([]pcy.Item, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, &ParseError{Line: line, Token: field, Err: err}
		}
		items = append(items, pcy.Item(value))
	}
	return pcy.NewItemset(items...), nil
}

// Len returns the number of baskets
func (ds *Dataset) Len() int {
	return len(ds.Baskets)
}
