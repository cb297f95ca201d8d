package patterns

import "iter"

// FrequencyTable maps each distinct Pattern to the number of strings that
// encode to it. Counts are always at least 1 for present keys.
//
// The table is open-addressed with linear probing over a power-of-two slot
// array. Each slot stores its key's xxh3 hash, so probing compares hashes
// before comparing keys and growth never rehashes key bytes. The table keeps a
// reference to every inserted Pattern; Patterns are immutable by contract.
//
// A FrequencyTable is not safe for concurrent mutation. Build one per owner
// and combine them with Merge.
type FrequencyTable struct {
	slots []freqSlot
	mask  uint64
	used  int // distinct patterns
	total int // sum of counts
}

// freqSlot is one table entry; count == 0 marks a free slot, so an empty
// pattern (from an empty line) is a valid key.
type freqSlot struct {
	key   Pattern
	hash  uint64
	count int
}

// NewFrequencyTable returns a table presized for sizeHint distinct patterns.
func NewFrequencyTable(sizeHint int) *FrequencyTable {
	t := &FrequencyTable{}
	t.init(sizeHint)
	return t
}

func (t *FrequencyTable) init(sizeHint int) {
	n := freqMinSlots
	for n < sizeHint*freqLoadFactor {
		n <<= 1
	}
	t.slots = make([]freqSlot, n)
	t.mask = uint64(n - 1)
}

// find returns the slot holding p or the free slot where p belongs.
func (t *FrequencyTable) find(p Pattern, h uint64) *freqSlot {
	for i := h & t.mask; ; i = (i + 1) & t.mask {
		s := &t.slots[i]
		if s.count == 0 || (s.hash == h && s.key.Equal(p)) {
			return s
		}
	}
}

// Add records one occurrence of p: an absent key is inserted with count 1,
// a present key has its count incremented.
func (t *FrequencyTable) Add(p Pattern) {
	t.upsert(p, p.Hash(), 1)
}

// AddN records n occurrences of p. Non-positive n is ignored.
func (t *FrequencyTable) AddN(p Pattern, n int) {
	if n <= 0 {
		return
	}
	t.upsert(p, p.Hash(), n)
}

func (t *FrequencyTable) upsert(p Pattern, h uint64, n int) {
	if t.slots == nil {
		t.init(0)
	}
	t.total += n
	s := t.find(p, h)
	if s.count != 0 {
		s.count += n
		return
	}
	s.key, s.hash, s.count = p, h, n
	t.used++
	t.grow()
}

// grow doubles the slot array once the load factor is exceeded.
func (t *FrequencyTable) grow() {
	if t.used*freqLoadFactor <= len(t.slots) {
		return
	}
	old := t.slots
	t.slots = make([]freqSlot, 2*len(old))
	t.mask = uint64(len(t.slots) - 1)
	for i := range old {
		if old[i].count != 0 {
			*t.find(old[i].key, old[i].hash) = old[i]
		}
	}
}

// Count returns the number of occurrences of p, 0 if absent.
func (t *FrequencyTable) Count(p Pattern) int {
	if len(t.slots) == 0 {
		return 0
	}
	return t.find(p, p.Hash()).count
}

// Len returns the number of distinct patterns.
func (t *FrequencyTable) Len() int { return t.used }

// Total returns the sum of all counts, i.e. the number of strings recorded.
func (t *FrequencyTable) Total() int { return t.total }

// Merge adds every count of o into t. o is left unchanged unless it is t.
func (t *FrequencyTable) Merge(o *FrequencyTable) {
	if o == t {
		for i := range t.slots {
			t.slots[i].count *= 2
		}
		t.total *= 2
		return
	}
	for i := range o.slots {
		if s := &o.slots[i]; s.count != 0 {
			t.upsert(s.key, s.hash, s.count)
		}
	}
}

// All iterates over every (pattern, count) entry in unspecified order.
func (t *FrequencyTable) All() iter.Seq2[Pattern, int] {
	return func(yield func(Pattern, int) bool) {
		for i := range t.slots {
			if s := &t.slots[i]; s.count != 0 {
				if !yield(s.key, s.count) {
					return
				}
			}
		}
	}
}
