// Package patterns classifies strings by their isomorphism class and counts
// "friendly" strings.
//
// # Overview
//
// Two strings are isomorphic when a one-to-one mapping between their symbols
// turns one into the other: "FOOFOOFOO" and "BAABAABAA" are isomorphic, "ABC"
// and "AAA" are not. Every string has a canonical Pattern that identifies its
// class: each byte is replaced by the order in which its value first appeared.
//
//	FOOFOOFOO -> [0,1,1,0,1,1,0,1,1]
//	BAABAABAA -> [0,1,1,0,1,1,0,1,1]
//	ABC       -> [0,1,2]
//	AAA       -> [0,0,0]
//
// A string is friendly when its Pattern is shared with at least one other
// string of the corpus. The friendly count is the number of such strings, not
// the number of shared patterns.
//
// # Pipeline
//
// Counting runs in three stages:
//   - Encode: map every string to its Pattern (parallel, one Encoder per worker)
//   - Aggregate: build a FrequencyTable of Pattern -> occurrences, either with
//     one owner (Sequential) or with per-worker tables merged at the end
//     (Partitioned); both give identical counts
//   - Reduce: sum the counts greater than one (parallel over table slots)
//
// # Basic Usage
//
//	inputs := [][]byte{
//	    []byte("FOOFOOFOO"),
//	    []byte("BAABAABAA"),
//	}
//	friendly, table := patterns.Count(inputs, patterns.Options{})
//	// friendly == 2, table.Len() == 1
//
//	// Or drive the stages directly
//	ps := patterns.EncodeParallel(inputs, 8)
//	table = patterns.Aggregate(ps, patterns.Partitioned, 8)
//	friendly = patterns.Reduce(table, 8)
//
// # Hashing
//
// FrequencyTable hashes patterns with xxh3, a fast non-cryptographic hash.
// This favors throughput over collision resistance and assumes the corpus is
// trusted. Collisions never produce wrong counts (keys are always compared
// structurally) but crafted input can degrade probing to linear time.
//
// # Performance Characteristics
//
// Encoding: O(n) per string of length n, 256-slot seen-table per Encoder, no
// allocation beyond the output buffer.
// Aggregation: expected O(1) per pattern.
// Reduction: O(table slots) split across workers.
package patterns
