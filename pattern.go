package patterns

import (
	"bytes"
	"strconv"

	"github.com/zeebo/xxh3"
)

// Core constants for pattern encoding and frequency tables
const (
	alphabetSize = 256 // every possible input byte has a seen-table slot

	// Frequency table sizing. Slots are a power of two so probing can mask.
	freqMinSlots   = 16
	freqLoadFactor = 2 // grow when used*freqLoadFactor exceeds the slot count
)

// Pattern is the canonical first-occurrence encoding of a string: element i is
// the 0-based label of the byte at position i, where labels are handed out in
// order of first appearance. Two strings are isomorphic iff their Patterns are
// equal, length included.
//
// A Pattern never holds a label above 255 because the byte domain has at most
// 256 distinct symbols.
type Pattern []byte

// Equal reports structural equality: same length and same labels.
func (p Pattern) Equal(q Pattern) bool { return bytes.Equal(p, q) }

// Hash returns the xxh3 hash of the pattern. xxh3 is not collision resistant
// against crafted input; corpora are assumed to be trusted.
func (p Pattern) Hash() uint64 { return xxh3.Hash(p) }

// Distinct returns the number of distinct symbols in the source string.
func (p Pattern) Distinct() int {
	n := 0
	for _, label := range p {
		if int(label) >= n {
			n = int(label) + 1
		}
	}
	return n
}

// Canonical reports whether p is a well-formed pattern: the first label is 0
// and every label is at most one above the largest label seen before it.
func (p Pattern) Canonical() bool {
	next := 0
	for _, label := range p {
		switch {
		case int(label) == next:
			next++
		case int(label) > next:
			return false
		}
	}
	return true
}

// String renders the pattern as "[0,1,1,0]".
func (p Pattern) String() string {
	buf := make([]byte, 0, 2+4*len(p))
	buf = append(buf, '[')
	for i, label := range p {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendUint(buf, uint64(label), 10)
	}
	return string(append(buf, ']'))
}
