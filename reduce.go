package patterns

import (
	"bytes"
	"container/heap"
	"sync"
)

// Friendly returns the number of strings whose pattern occurs more than once,
// i.e. the sum of all counts greater than 1.
func (t *FrequencyTable) Friendly() int {
	return friendlySpan(t.slots)
}

// Unique returns the number of strings whose pattern occurs exactly once.
// Total() - Friendly() == Unique() for every table.
func (t *FrequencyTable) Unique() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].count == 1 {
			n++
		}
	}
	return n
}

// Reduce computes t.Friendly() with up to workers goroutines. The slot array
// is split into contiguous ranges; each worker sums its own range and the
// partial sums are added once all workers finish.
func Reduce(t *FrequencyTable, workers int) int {
	if workers <= 1 || len(t.slots) < 2*workers {
		return t.Friendly()
	}

	var (
		spans    = partition(len(t.slots), workers)
		partials = make([]int, len(spans))
		wg       sync.WaitGroup
	)
	wg.Add(len(spans))
	for i, sp := range spans {
		go func() {
			defer wg.Done()
			partials[i] = friendlySpan(t.slots[sp.lo:sp.hi])
		}()
	}
	wg.Wait()

	var sum int
	for _, n := range partials {
		sum += n
	}
	return sum
}

func friendlySpan(slots []freqSlot) int {
	sum := 0
	for i := range slots {
		if slots[i].count > 1 {
			sum += slots[i].count
		}
	}
	return sum
}

// PatternCount is a pattern together with its occurrence count.
type PatternCount struct {
	Pattern Pattern
	Count   int
}

// ranksAbove orders by descending count, then shorter pattern, then
// lexicographically smaller pattern, so Top is deterministic.
func (a PatternCount) ranksAbove(b PatternCount) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	if len(a.Pattern) != len(b.Pattern) {
		return len(a.Pattern) < len(b.Pattern)
	}
	return bytes.Compare(a.Pattern, b.Pattern) < 0
}

// countHeap is a min-heap of PatternCount with the lowest-ranked entry at the
// root, so the top k entries can be kept in O(n log k).
type countHeap []PatternCount

// Len implements heap.Interface and returns the number of elements.
func (h countHeap) Len() int { return len(h) }

// Less implements heap.Interface; the lower-ranked entry sorts first.
func (h countHeap) Less(i, j int) bool { return h[j].ranksAbove(h[i]) }

// Swap implements heap.Interface swap.
func (h countHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push implements heap.Interface push.
func (h *countHeap) Push(x any) { *h = append(*h, x.(PatternCount)) }

// Pop implements heap.Interface pop.
func (h *countHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// Top returns the k most frequent patterns in descending rank. It returns
// fewer than k entries if the table holds fewer distinct patterns.
func (t *FrequencyTable) Top(k int) []PatternCount {
	if k <= 0 {
		return nil
	}
	h := make(countHeap, 0, min(k, t.used)+1)
	for p, n := range t.All() {
		candidate := PatternCount{Pattern: p, Count: n}
		if len(h) < k {
			heap.Push(&h, candidate)
		} else if candidate.ranksAbove(h[0]) {
			h[0] = candidate
			heap.Fix(&h, 0)
		}
	}

	// Popping yields ascending rank; fill from the back.
	list := make([]PatternCount, len(h))
	for i := len(h) - 1; i >= 0; i-- {
		list[i] = heap.Pop(&h).(PatternCount)
	}
	return list
}
