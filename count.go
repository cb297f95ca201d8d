package patterns

import (
	"runtime"
	"sync"
	"unsafe"
)

// Options configures Count.
type Options struct {
	// Workers bounds the goroutines used for encoding, partitioned
	// aggregation and reduction. Zero means runtime.GOMAXPROCS(0).
	Workers int
	// Strategy selects the aggregation strategy.
	Strategy Strategy
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Count encodes every input, aggregates the patterns and returns the number
// of friendly strings together with the frequency table.
func Count(inputs [][]byte, opts Options) (int, *FrequencyTable) {
	workers := opts.workers()
	table := Aggregate(EncodeParallel(inputs, workers), opts.Strategy, workers)
	return Reduce(table, workers), table
}

// CountStrings converts []string to [][]byte without copying and calls Count.
func CountStrings(inputs []string, opts Options) (int, *FrequencyTable) {
	b := make([][]byte, len(inputs))
	for i := range inputs {
		b[i] = unsafe.Slice(unsafe.StringData(inputs[i]), len(inputs[i]))
	}
	return Count(b, opts)
}

// EncodeParallel encodes inputs with up to workers goroutines. Each worker
// owns an Encoder and a contiguous range of inputs, and writes its patterns
// into a disjoint region of one shared buffer, so workers never contend.
// The result is index-aligned with inputs.
func EncodeParallel(inputs [][]byte, workers int) []Pattern {
	if workers <= 1 || len(inputs) < 2 {
		return EncodeAll(inputs)
	}

	var (
		spans   = partition(len(inputs), workers)
		offsets = make([]int, len(spans)+1)
	)
	for i, sp := range spans {
		n := 0
		for _, in := range inputs[sp.lo:sp.hi] {
			n += len(in)
		}
		offsets[i+1] = offsets[i] + n
	}

	var (
		arena = make([]byte, offsets[len(spans)])
		out   = make([]Pattern, len(inputs))
		wg    sync.WaitGroup
	)
	wg.Add(len(spans))
	for i, sp := range spans {
		go func() {
			defer wg.Done()
			var enc Encoder
			region := arena[offsets[i]:offsets[i]:offsets[i+1]]
			for j := sp.lo; j < sp.hi; j++ {
				start := len(region)
				region = enc.AppendEncode(region, inputs[j])
				out[j] = Pattern(region[start:len(region):len(region)])
			}
		}()
	}
	wg.Wait()
	return out
}
