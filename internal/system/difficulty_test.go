// internal/system/difficulty_test.go
package system

import (
	"go-dungeon-crawler/internal/config"
	"go-dungeon-crawler/internal/defs"
	"go-dungeon-crawler/internal/utils"
	"testing"
)

func TestScalingMonotonicWithLevel(t *testing.T) {
	d := NewDifficultyManager(utils.NewPRNGService(1))
	for level := 1; level < 30; level++ {
		if d.ScaleHP(100, level+1) <= d.ScaleHP(100, level) {
			t.Fatalf("hp scaling is not increasing at level %d", level)
		}
		if d.ScaleDamage(10, level+1) <= d.ScaleDamage(10, level) {
			t.Fatalf("damage scaling is not increasing at level %d", level)
		}
	}
}

func TestSpeedScalingCapped(t *testing.T) {
	d := NewDifficultyManager(utils.NewPRNGService(1))
	base := 100.0
	if got := d.ScaleSpeed(base, 500); got > base*config.SpeedScaleCap {
		t.Fatalf("speed at deep level = %v, exceeds cap %v", got, base*config.SpeedScaleCap)
	}
}

func TestNoElitesBeforeGate(t *testing.T) {
	d := NewDifficultyManager(utils.NewPRNGService(99))
	for i := 0; i < 1000; i++ {
		if d.RollElite(config.EliteLevelGate - 1) {
			t.Fatal("elite rolled below the level gate")
		}
	}
}

func TestEliteModsUniqueAndBounded(t *testing.T) {
	d := NewDifficultyManager(utils.NewPRNGService(5))
	for i := 0; i < 500; i++ {
		mods := d.RollEliteMods()
		if len(mods) < 1 || len(mods) > 2 {
			t.Fatalf("rolled %d mods, want 1..2", len(mods))
		}
		if len(mods) == 2 && mods[0] == mods[1] {
			t.Fatalf("duplicate elite mod %v", mods[0])
		}
	}
}

func TestBandProgressionByLevel(t *testing.T) {
	d := NewDifficultyManager(utils.NewPRNGService(8))

	// Ранние уровни вообще без полос
	for i := 0; i < 200; i++ {
		if band := d.BandFor(2); band != defs.BandNone {
			t.Fatalf("level 2 rolled band %v", band)
		}
	}

	// На глубине полосы выпадают и соответствуют диапазону уровня
	seen := false
	for i := 0; i < 500; i++ {
		band := d.BandFor(8)
		if band == defs.BandExploding || band == defs.BandFast {
			t.Fatalf("level 8 rolled out-of-range band %v", band)
		}
		if band == defs.BandShielded {
			seen = true
		}
	}
	if !seen {
		t.Fatal("level 8 never rolled its band in 500 tries")
	}
}

func TestBossTierEveryTenLevels(t *testing.T) {
	d := NewDifficultyManager(utils.NewPRNGService(1))
	cases := map[int]int{1: 0, 9: 0, 10: 1, 19: 1, 20: 2, 30: 3}
	for level, want := range cases {
		if got := d.BossTier(level); got != want {
			t.Fatalf("BossTier(%d) = %d, want %d", level, got, want)
		}
	}
}

func TestDropChanceRampsWithDesperation(t *testing.T) {
	base := NewDifficultyManager(utils.NewPRNGService(77))
	lowHP := NewDifficultyManager(utils.NewPRNGService(77))

	baseDrops, lowDrops := 0, 0
	for i := 0; i < 3000; i++ {
		if _, ok := base.RollDrop(false, 1.0); ok {
			baseDrops++
		}
		if _, ok := lowHP.RollDrop(false, 0.1); ok {
			lowDrops++
		}
	}
	if lowDrops <= baseDrops {
		t.Fatalf("low hp drops (%d) not above baseline (%d)", lowDrops, baseDrops)
	}
}

func TestDropItemsComeFromTable(t *testing.T) {
	d := NewDifficultyManager(utils.NewPRNGService(13))
	for i := 0; i < 2000; i++ {
		item, ok := d.RollDrop(true, 0.2)
		if !ok {
			continue
		}
		switch item {
		case defs.ItemPotion, defs.ItemAmmo, defs.ItemArmor:
		default:
			t.Fatalf("dropped unknown item %q", item)
		}
	}
}
