// internal/utils/prng_test.go
package utils

import (
	"go-dungeon-crawler/internal/defs"
	"testing"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatalf("sequences diverged at step %d", i)
		}
		if a.Float64() != b.Float64() {
			t.Fatalf("float sequences diverged at step %d", i)
		}
	}
}

func TestRangeBounds(t *testing.T) {
	rng := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		v := rng.Range(2.5, 8.5)
		if v < 2.5 || v >= 8.5 {
			t.Fatalf("Range(2.5, 8.5) = %v out of bounds", v)
		}
		n := rng.IntRange(3, 9)
		if n < 3 || n >= 9 {
			t.Fatalf("IntRange(3, 9) = %d out of bounds", n)
		}
	}
}

func TestIntRangeDegenerate(t *testing.T) {
	rng := NewPRNGService(1)
	if got := rng.IntRange(5, 5); got != 5 {
		t.Fatalf("IntRange(5, 5) = %d, want 5", got)
	}
}

func TestBoolExtremes(t *testing.T) {
	rng := NewPRNGService(3)
	for i := 0; i < 100; i++ {
		if rng.Bool(0) {
			t.Fatal("Bool(0) returned true")
		}
		if !rng.Bool(1) {
			t.Fatal("Bool(1) returned false")
		}
	}
}

func TestChooseWeightedMembership(t *testing.T) {
	rng := NewPRNGService(11)
	table := []defs.DropEntry{
		{ItemID: defs.ItemPotion, Weight: 1},
		{ItemID: defs.ItemAmmo, Weight: 5},
		{ItemID: defs.ItemArmor, Weight: 2},
	}
	seen := make(map[string]int)
	for i := 0; i < 2000; i++ {
		got := rng.ChooseWeighted(table)
		switch got {
		case defs.ItemPotion, defs.ItemAmmo, defs.ItemArmor:
			seen[got]++
		default:
			t.Fatalf("ChooseWeighted returned unknown item %q", got)
		}
	}
	// Больший вес должен выпадать чаще меньшего
	if seen[defs.ItemAmmo] <= seen[defs.ItemPotion] {
		t.Fatalf("weight 5 drew %d times, weight 1 drew %d times", seen[defs.ItemAmmo], seen[defs.ItemPotion])
	}
}

func TestChooseWeightedEmpty(t *testing.T) {
	rng := NewPRNGService(2)
	if got := rng.ChooseWeighted(nil); got != "" {
		t.Fatalf("empty table returned %q", got)
	}
}
