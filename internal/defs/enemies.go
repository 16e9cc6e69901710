// internal/defs/enemies.go
package defs

import (
	"math"

	"cat-burrow-defense/internal/component"
	"cat-burrow-defense/internal/config"
	"cat-burrow-defense/internal/utils"
)

// CategoryDef scales the standard rat stat curves for one category and gates
// when the category may appear.
type CategoryDef struct {
	Category      component.Category
	Name          string
	HPFactor      float64
	SpeedFactor   float64
	Bounty        int
	MinDifficulty int
	MinMapIndex   int
}

// Category roll tuning. The pup share shrinks with difficulty between a
// fixed floor and ceiling; plague and king rats have small flat chances once
// their gates open; everything else is a standard rat.
const (
	pupChanceCeiling  = 0.55
	pupChancePerLevel = 0.04
	pupChanceFloor    = 0.10
	plagueChance      = 0.12
	kingChance        = 0.05
)

// GetCategoryDef returns the definition for a rat category.
func GetCategoryDef(c component.Category) CategoryDef {
	switch c {
	case component.CategoryPup:
		return CategoryDef{c, "Pup", 0.6, 1.3, 7, 0, 0}
	case component.CategoryRat:
		return CategoryDef{c, "Rat", 1.0, 1.0, 12, 0, 0}
	case component.CategoryPlague:
		return CategoryDef{c, "Plague Rat", 2.5, 0.75, 30, 6, 0}
	case component.CategoryKing:
		return CategoryDef{c, "Rat King", 6.0, 0.55, 80, 8, 1}
	}
	return GetCategoryDef(component.CategoryRat)
}

// Bounty returns the kibbles awarded when a rat of this category dies.
func Bounty(c component.Category) int {
	return GetCategoryDef(c).Bounty
}

// RollCategory draws a weighted-random category for the given difficulty and
// map index. All draws come from the shared stream in a fixed order.
func RollCategory(rng *utils.PRNGService, difficulty, mapIndex int) component.Category {
	pup := pupChanceCeiling - pupChancePerLevel*float64(difficulty)
	if pup < pupChanceFloor {
		pup = pupChanceFloor
	}

	r := rng.Float64()
	if r < pup {
		return component.CategoryPup
	}
	r -= pup

	if plague := GetCategoryDef(component.CategoryPlague); difficulty >= plague.MinDifficulty {
		if r < plagueChance {
			return component.CategoryPlague
		}
		r -= plagueChance
	}
	if king := GetCategoryDef(component.CategoryKing); difficulty >= king.MinDifficulty && mapIndex >= king.MinMapIndex {
		if r < kingChance {
			return component.CategoryKing
		}
	}
	return component.CategoryRat
}

// EnemyStats computes hp and speed for a category at a difficulty level.
// The rat curve is the baseline; other categories scale it.
func EnemyStats(c component.Category, difficulty int) (hp int, speed float64) {
	def := GetCategoryDef(c)
	baseHP := float64(config.EnemyBaseHP + config.EnemyHPPerLevel*difficulty)
	baseSpeed := (config.EnemyBaseSpeed + config.EnemySpeedPerLevel*float64(difficulty)) * config.SpeedFactor
	hp = int(math.Round(baseHP * def.HPFactor))
	if hp < 1 {
		hp = 1
	}
	speed = baseSpeed * def.SpeedFactor
	return hp, speed
}
