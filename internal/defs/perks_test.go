// internal/defs/perks_test.go
package defs

import "testing"

func TestStackedValueFirstStackIsMagnitude(t *testing.T) {
	for id, def := range PerkDefs {
		if got := def.StackedValue(1); got != def.Magnitude {
			t.Fatalf("%v: StackedValue(1) = %v, want %v", id, got, def.Magnitude)
		}
	}
}

func TestStackedValueZeroAndNegative(t *testing.T) {
	def := PerkDefs[PerkDmg]
	if def.StackedValue(0) != 0 || def.StackedValue(-3) != 0 {
		t.Fatal("non-positive stack counts must contribute nothing")
	}
}

func TestStackedValueDiminishes(t *testing.T) {
	for id, def := range PerkDefs {
		prev := 0.0
		prevGain := 0.0
		for n := 1; n <= 10; n++ {
			total := def.StackedValue(n)
			gain := total - prev
			if gain <= 0 {
				t.Fatalf("%v: stack %d adds nothing", id, n)
			}
			if n > 1 && gain >= prevGain {
				t.Fatalf("%v: stack %d gain %v not below previous %v", id, n, gain, prevGain)
			}
			prev, prevGain = total, gain
		}
	}
}

// The geometric sum converges, so endless stacking cannot run away.
func TestStackedValueBounded(t *testing.T) {
	def := PerkDefs[PerkCrit]
	limit := def.Magnitude / (1 - def.DiminishBase)
	if got := def.StackedValue(1000); got > limit {
		t.Fatalf("StackedValue(1000) = %v exceeds theoretical limit %v", got, limit)
	}
}
