// internal/defs/towers.go
package defs

import (
	"cat-burrow-defense/internal/component"
	"cat-burrow-defense/internal/config"
)

// TowerDef holds the static data for one cat kind.
type TowerDef struct {
	Kind           component.Kind
	Name           string
	Cost           int
	Damage         int
	Range          float64
	FireRate       float64 // seconds between shots
	ShowRange      bool
	Size           int
	StartsUnlocked bool
	Blurb          string // one-line shop description
}

// UpgradeDef describes the permanent stat changes an upgrade applies.
// Zero-valued fields leave the stat untouched; behavioral effects (triple
// shot, jump, knockback, wider nap field) key off Tower.Upgraded directly.
type UpgradeDef struct {
	DamageBonus int
	NewRange    float64
	NewFireRate float64
}

// GetTowerDef returns the definition for a kind. The switch is exhaustive
// over the closed kind set.
func GetTowerDef(kind component.Kind) TowerDef {
	switch kind {
	case component.KindScout:
		return TowerDef{kind, "Scout Cat", 35, 3, 3.5, 0.85, true, 1, true, "steady single shots"}
	case component.KindThunder:
		return TowerDef{kind, "Thundercat", 75, 6, 999.0, 2.6, false, 1, false, "piercing beam, slow fire"}
	case component.KindFat:
		return TowerDef{kind, "Fat Cat", 55, 4, 2.4, 1.4, true, 2, false, "2x2 area pulse"}
	case component.KindKitty:
		return TowerDef{kind, "Kitty Cat", 65, 3, 5.5, 1.0, true, 1, false, "wide melee swipe"}
	case component.KindTiger:
		return TowerDef{kind, "Tiger Cat", 70, 4, 4.5, 1.3, true, 1, false, "cone blast"}
	case component.KindCatatonic:
		return TowerDef{kind, "Catatonic Cat", 60, 0, 3.0, 2.2, true, 1, false, "naps rats to sleep"}
	}
	return GetTowerDef(component.KindScout)
}

// GetUpgradeDef returns the stat changes for upgrading a kind.
func GetUpgradeDef(kind component.Kind) UpgradeDef {
	switch kind {
	case component.KindScout:
		return UpgradeDef{} // triple shot, stats unchanged
	case component.KindThunder:
		return UpgradeDef{DamageBonus: 3, NewFireRate: 2.0}
	case component.KindFat:
		return UpgradeDef{NewRange: 3.4}
	case component.KindKitty:
		return UpgradeDef{DamageBonus: 1} // plus jump relocation
	case component.KindTiger:
		return UpgradeDef{} // knockback proc
	case component.KindCatatonic:
		return UpgradeDef{} // wider nap field
	}
	return UpgradeDef{}
}

// UpgradeCost is a fixed multiple of the kind's base cost.
func UpgradeCost(kind component.Kind) int {
	return GetTowerDef(kind).Cost * config.UpgradeCostFactor
}

// UnlockCost is a fixed multiple of the kind's base cost.
func UnlockCost(kind component.Kind) int {
	return GetTowerDef(kind).Cost * config.UnlockCostFactor
}

// AllKinds lists the kinds in shop order.
func AllKinds() []component.Kind {
	return []component.Kind{
		component.KindScout,
		component.KindThunder,
		component.KindFat,
		component.KindKitty,
		component.KindTiger,
		component.KindCatatonic,
	}
}

// NewTower builds a tower of the given kind at a position, cooldown unset.
func NewTower(kind component.Kind, x, y int) component.Tower {
	def := GetTowerDef(kind)
	t := component.Tower{
		Kind:     kind,
		Damage:   def.Damage,
		Range:    def.Range,
		FireRate: def.FireRate,
		Size:     def.Size,
	}
	t.Pos.X = x
	t.Pos.Y = y
	return t
}

// ApplyUpgrade mutates a tower with its kind's upgrade. One-shot and
// non-reversible; a second call is a no-op.
func ApplyUpgrade(t *component.Tower) {
	if t.Upgraded {
		return
	}
	up := GetUpgradeDef(t.Kind)
	t.Damage += up.DamageBonus
	if up.NewRange > 0 {
		t.Range = up.NewRange
	}
	if up.NewFireRate > 0 {
		t.FireRate = up.NewFireRate
	}
	t.Upgraded = true
}
