package patterns

import (
	"math/rand/v2"
	"testing"
)

func tableOf(words ...string) *FrequencyTable {
	ft := NewFrequencyTable(len(words))
	for _, w := range words {
		ft.Add(EncodeString(w))
	}
	return ft
}

func TestFriendlyCountsStringsNotPatterns(t *testing.T) {
	ft := tableOf("LALALA", "XOXOXO", "GCGCGC", "HHHCCC", "BBBMMM", "EGONUH", "HHRGOE")
	// Two shared patterns, five strings.
	if ft.Friendly() != 5 || ft.Unique() != 2 || ft.Len() != 4 {
		t.Fatalf("Friendly, Unique, Len = %d, %d, %d, want 5, 2, 4", ft.Friendly(), ft.Unique(), ft.Len())
	}
}

func TestReduceMatchesFriendly(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	ft := Aggregate(EncodeAll(randomCorpus(rng, 3000)), Sequential, 1)
	want := ft.Friendly()
	for _, workers := range []int{-1, 0, 1, 2, 5, 13, 64, 1 << 20} {
		if got := Reduce(ft, workers); got != want {
			t.Errorf("Reduce(workers=%d) = %d, want %d", workers, got, want)
		}
	}
}

func TestComplementIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	for range 20 {
		ft := Aggregate(EncodeAll(randomCorpus(rng, rng.IntN(400))), Partitioned, 4)
		if ft.Total()-Reduce(ft, 4) != ft.Unique() {
			t.Fatalf("Total %d - Friendly %d != Unique %d", ft.Total(), Reduce(ft, 4), ft.Unique())
		}
	}
}

func checkEntry(t *testing.T, got PatternCount, p Pattern, n int) {
	t.Helper()
	if !got.Pattern.Equal(p) || got.Count != n {
		t.Fatalf("entry = %v/%d, want %v/%d", got.Pattern, got.Count, p, n)
	}
}

func TestTop(t *testing.T) {
	ft := tableOf("ABAB", "CDCD", "EFEF", "AAA", "BBB", "ABC", "A", "B")
	top := ft.Top(3)
	if len(top) != 3 {
		t.Fatalf("Top(3) returned %d entries", len(top))
	}
	checkEntry(t, top[0], Pattern{0, 1, 0, 1}, 3)
	// Ties on count rank the shorter pattern first.
	checkEntry(t, top[1], Pattern{0}, 2)
	checkEntry(t, top[2], Pattern{0, 0, 0}, 2)

	all := ft.Top(100)
	if len(all) != ft.Len() {
		t.Fatalf("Top(100) returned %d entries, want %d", len(all), ft.Len())
	}
	checkEntry(t, all[3], Pattern{0, 1, 2}, 1)
	for i := 1; i < len(all); i++ {
		if !all[i-1].ranksAbove(all[i]) {
			t.Fatalf("entries %d and %d out of order", i-1, i)
		}
	}

	if ft.Top(0) != nil {
		t.Fatalf("Top(0) must be nil")
	}
	if got := NewFrequencyTable(0).Top(5); len(got) != 0 {
		t.Fatalf("Top on empty table = %v", got)
	}
}

func TestTopTieBreakLexicographic(t *testing.T) {
	ft := tableOf("ABB", "ABA", "AAB")
	top := ft.Top(2)
	if len(top) != 2 {
		t.Fatalf("Top(2) returned %d entries", len(top))
	}
	checkEntry(t, top[0], Pattern{0, 0, 1}, 1)
	checkEntry(t, top[1], Pattern{0, 1, 0}, 1)
}
