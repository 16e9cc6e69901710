// internal/defs/defs_test.go
package defs

import (
	"testing"

	"cat-burrow-defense/internal/component"
	"cat-burrow-defense/internal/utils"
)

func TestMapAnchorsAxisAligned(t *testing.T) {
	for mi, m := range Catalog() {
		if len(m.Anchors) < 2 {
			t.Fatalf("map %d has too few anchors", mi)
		}
		if m.PathWidth < 1 {
			t.Fatalf("map %d has invalid path width %d", mi, m.PathWidth)
		}
		for i := 1; i < len(m.Anchors); i++ {
			a, b := m.Anchors[i-1], m.Anchors[i]
			if a.X != b.X && a.Y != b.Y {
				t.Fatalf("map %d anchors %d-%d not axis aligned: %v %v", mi, i-1, i, a, b)
			}
		}
	}
}

func TestMapAtWraps(t *testing.T) {
	n := MapCount()
	if n != 10 {
		t.Fatalf("want 10 maps, got %d", n)
	}
	if MapAt(n).Anchors[0] != MapAt(0).Anchors[0] {
		t.Fatalf("index %d must wrap to map 0", n)
	}
}

func TestCategoryGates(t *testing.T) {
	rng := utils.NewPRNGService(99)
	for i := 0; i < 2000; i++ {
		c := RollCategory(rng, 3, 0)
		if c == component.CategoryPlague || c == component.CategoryKing {
			t.Fatalf("difficulty 3 must not roll %v", c)
		}
	}
	for i := 0; i < 2000; i++ {
		if c := RollCategory(rng, 9, 0); c == component.CategoryKing {
			t.Fatalf("map 0 must not roll a rat king")
		}
	}
}

func TestCategoryRollsEventuallyVary(t *testing.T) {
	rng := utils.NewPRNGService(1)
	seen := map[component.Category]bool{}
	for i := 0; i < 5000; i++ {
		seen[RollCategory(rng, 9, 2)] = true
	}
	for _, c := range []component.Category{
		component.CategoryPup, component.CategoryRat,
		component.CategoryPlague, component.CategoryKing,
	} {
		if !seen[c] {
			t.Fatalf("category %v never rolled at difficulty 9 on map 2", c)
		}
	}
}

func TestEnemyStatsScaling(t *testing.T) {
	hpRat, spdRat := EnemyStats(component.CategoryRat, 1)
	if hpRat != 9 {
		t.Fatalf("standard rat at difficulty 1: want 9 hp, got %d", hpRat)
	}
	hpPup, spdPup := EnemyStats(component.CategoryPup, 1)
	if hpPup >= hpRat {
		t.Fatalf("pup must have less hp than a rat: %d vs %d", hpPup, hpRat)
	}
	if spdPup <= spdRat {
		t.Fatalf("pup must be faster than a rat: %v vs %v", spdPup, spdRat)
	}
	hpKing, spdKing := EnemyStats(component.CategoryKing, 1)
	if hpKing <= hpRat || spdKing >= spdRat {
		t.Fatalf("king must be tougher and slower: hp %d spd %v", hpKing, spdKing)
	}
	if hp, _ := EnemyStats(component.CategoryPup, 0); hp < 1 {
		t.Fatalf("hp must never drop below 1, got %d", hp)
	}
}

func TestUpgradeAndUnlockCosts(t *testing.T) {
	for _, kind := range AllKinds() {
		def := GetTowerDef(kind)
		if UpgradeCost(kind) != def.Cost*5 {
			t.Fatalf("%v upgrade cost: want %d got %d", kind, def.Cost*5, UpgradeCost(kind))
		}
		if UnlockCost(kind) != def.Cost*10 {
			t.Fatalf("%v unlock cost: want %d got %d", kind, def.Cost*10, UnlockCost(kind))
		}
	}
}

func TestOnlyScoutStartsUnlocked(t *testing.T) {
	for _, kind := range AllKinds() {
		def := GetTowerDef(kind)
		if def.StartsUnlocked != (kind == component.KindScout) {
			t.Fatalf("%v StartsUnlocked=%v", kind, def.StartsUnlocked)
		}
	}
}

func TestApplyUpgradeIdempotent(t *testing.T) {
	tw := NewTower(component.KindThunder, 0, 0)
	ApplyUpgrade(&tw)
	if !tw.Upgraded || tw.Damage != 9 || tw.FireRate != 2.0 {
		t.Fatalf("thunder upgrade: got damage=%d rate=%v upgraded=%v", tw.Damage, tw.FireRate, tw.Upgraded)
	}
	ApplyUpgrade(&tw)
	if tw.Damage != 9 {
		t.Fatalf("second upgrade must not stack, got damage=%d", tw.Damage)
	}
}

func TestFatUpgradeExtendsRange(t *testing.T) {
	tw := NewTower(component.KindFat, 0, 0)
	ApplyUpgrade(&tw)
	if tw.Range != 3.4 {
		t.Fatalf("fat upgrade range: want 3.4 got %v", tw.Range)
	}
}
