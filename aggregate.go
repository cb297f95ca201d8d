package patterns

import (
	"fmt"
	"sync"
)

// Strategy selects how Aggregate builds a FrequencyTable. Every strategy
// yields identical counts for the same input, whatever the worker count.
type Strategy uint8

const (
	// Sequential feeds every pattern to one exclusively owned table.
	Sequential Strategy = iota
	// Partitioned splits the patterns into contiguous partitions, builds one
	// local table per worker and merges the local tables serially.
	Partitioned
)

var strategyNames = [...]string{
	Sequential:  "sequential",
	Partitioned: "partitioned",
}

// ParseStrategy converts "sequential" or "partitioned" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return Strategy(s), nil
		}
	}
	return 0, fmt.Errorf("patterns: unknown strategy %q", name)
}

func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// Aggregate counts occurrences of each distinct pattern.
func Aggregate(patterns []Pattern, strategy Strategy, workers int) *FrequencyTable {
	if strategy == Sequential || workers <= 1 || len(patterns) < 2 {
		return aggregateSpan(patterns)
	}

	var (
		spans  = partition(len(patterns), workers)
		locals = make([]*FrequencyTable, len(spans))
		wg     sync.WaitGroup
	)
	wg.Add(len(spans))
	for i, sp := range spans {
		go func() {
			defer wg.Done()
			locals[i] = aggregateSpan(patterns[sp.lo:sp.hi])
		}()
	}
	wg.Wait()

	table := locals[0]
	for _, local := range locals[1:] {
		table.Merge(local)
	}
	return table
}

func aggregateSpan(patterns []Pattern) *FrequencyTable {
	table := NewFrequencyTable(len(patterns))
	for _, p := range patterns {
		table.Add(p)
	}
	return table
}

// span is a half-open index range [lo, hi).
type span struct{ lo, hi int }

// partition splits [0, n) into at most k contiguous spans of near-equal size.
// It always returns at least one span.
func partition(n, k int) []span {
	k = max(min(k, n), 1)
	spans := make([]span, k)
	size, rem := n/k, n%k
	lo := 0
	for i := range spans {
		hi := lo + size
		if i < rem {
			hi++
		}
		spans[i] = span{lo, hi}
		lo = hi
	}
	return spans
}
