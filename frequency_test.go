package patterns

import (
	"fmt"
	"testing"
)

func checkCount(t *testing.T, ft *FrequencyTable, p Pattern, want int) {
	t.Helper()
	if got := ft.Count(p); got != want {
		t.Fatalf("Count(%v) = %d, want %d", p, got, want)
	}
}

func checkSize(t *testing.T, ft *FrequencyTable, distinct, total int) {
	t.Helper()
	if ft.Len() != distinct || ft.Total() != total {
		t.Fatalf("Len, Total = %d, %d, want %d, %d", ft.Len(), ft.Total(), distinct, total)
	}
}

func TestFrequencyTableUpsert(t *testing.T) {
	ft := NewFrequencyTable(4)
	abc := EncodeString("ABC")
	aaa := EncodeString("AAA")

	ft.Add(abc)
	checkCount(t, ft, abc, 1)
	ft.Add(EncodeString("XYZ"))
	checkCount(t, ft, abc, 2)
	ft.Add(aaa)
	checkCount(t, ft, aaa, 1)
	checkCount(t, ft, EncodeString("ABCD"), 0)
	checkSize(t, ft, 2, 3)

	ft.AddN(aaa, 5)
	ft.AddN(aaa, 0)
	ft.AddN(aaa, -2)
	checkCount(t, ft, aaa, 6)
	checkSize(t, ft, 2, 8)
}

func TestFrequencyTableZeroValue(t *testing.T) {
	var ft FrequencyTable
	checkCount(t, &ft, Pattern{0}, 0)
	if ft.Friendly() != 0 {
		t.Fatalf("Friendly() = %d on empty table", ft.Friendly())
	}
	ft.Add(Pattern{0})
	checkCount(t, &ft, Pattern{0}, 1)
}

func TestFrequencyTableEmptyPatternKey(t *testing.T) {
	ft := NewFrequencyTable(0)
	ft.Add(Encode(nil))
	ft.Add(Encode([]byte{}))
	checkCount(t, ft, Pattern{}, 2)
	checkSize(t, ft, 1, 2)
	if ft.Friendly() != 2 {
		t.Fatalf("Friendly() = %d, want 2", ft.Friendly())
	}
}

func TestFrequencyTableGrow(t *testing.T) {
	ft := NewFrequencyTable(0)
	var keys []Pattern
	// Patterns of length 1..12 with a varying label tail are all distinct.
	for n := 1; n <= 12; n++ {
		for tail := 0; tail < n; tail++ {
			p := make(Pattern, n)
			for i := range p {
				p[i] = byte(min(i, tail))
			}
			keys = append(keys, p)
		}
	}
	for round := 1; round <= 3; round++ {
		for _, k := range keys {
			ft.Add(k)
		}
		checkSize(t, ft, len(keys), round*len(keys))
		for _, k := range keys {
			checkCount(t, ft, k, round)
		}
	}
	if ft.Len()*freqLoadFactor > len(ft.slots) {
		t.Fatalf("load factor exceeded: %d keys in %d slots", ft.Len(), len(ft.slots))
	}
}

func TestFrequencyTableMerge(t *testing.T) {
	a := NewFrequencyTable(0)
	b := NewFrequencyTable(0)
	for _, s := range []string{"ABC", "AAA", "ABA"} {
		a.Add(EncodeString(s))
	}
	for _, s := range []string{"XYZ", "QQQQ", "ABA"} {
		b.Add(EncodeString(s))
	}

	a.Merge(b)
	checkCount(t, a, EncodeString("ABC"), 2)
	checkCount(t, a, EncodeString("ABA"), 2)
	checkCount(t, a, EncodeString("AAA"), 1)
	checkCount(t, a, EncodeString("QQQQ"), 1)
	checkSize(t, a, 4, 6)
	// b untouched
	checkSize(t, b, 3, 3)

	a.Merge(a)
	checkSize(t, a, 4, 12)
	checkCount(t, a, EncodeString("ABC"), 4)
}

func TestFrequencyTableAll(t *testing.T) {
	ft := NewFrequencyTable(0)
	for i := range 20 {
		ft.AddN(EncodeString(fmt.Sprintf("%0*d", i+1, 0)), i+1)
	}
	seen := 0
	sum := 0
	for p, n := range ft.All() {
		if len(p) != n {
			t.Fatalf("pattern %v has count %d", p, n)
		}
		seen++
		sum += n
	}
	if seen != 20 || sum != ft.Total() {
		t.Fatalf("All yielded %d entries summing to %d, want 20 and %d", seen, sum, ft.Total())
	}

	stopped := 0
	for range ft.All() {
		stopped++
		if stopped == 3 {
			break
		}
	}
	if stopped != 3 {
		t.Fatalf("iteration continued after break: %d", stopped)
	}
}

func BenchmarkFrequencyTableAdd(b *testing.B) {
	words := []string{"LALALA", "XOXOXO", "GCGCGC", "HHHCCC", "BBBMMM", "EGONUH", "HHRGOE"}
	keys := make([]Pattern, len(words))
	for i, w := range words {
		keys[i] = EncodeString(w)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ft := NewFrequencyTable(len(keys))
		for _, k := range keys {
			ft.Add(k)
		}
	}
}
