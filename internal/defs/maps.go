// internal/defs/maps.go
package defs

import (
	"github.com/gdamore/tcell/v2"

	"cat-burrow-defense/pkg/grid"
)

// MapDef is one playable layout: waypoint anchors for the rat path, the
// corridor thickness, and theming for the renderer. Consecutive anchors
// always differ in exactly one axis.
type MapDef struct {
	Anchors    []grid.Position
	PathWidth  int
	Background tcell.Color
	PathColor  tcell.Color
}

var catalog = []MapDef{
	{
		Anchors: []grid.Position{
			{X: 0, Y: 14}, {X: 12, Y: 14}, {X: 12, Y: 4}, {X: 30, Y: 4}, {X: 30, Y: 23}, {X: 47, Y: 23},
		},
		PathWidth:  1,
		Background: tcell.ColorDarkGreen,
		PathColor:  tcell.ColorDarkGoldenrod,
	},
	{
		Anchors: []grid.Position{
			{X: 0, Y: 3}, {X: 10, Y: 3}, {X: 10, Y: 12}, {X: 25, Y: 12}, {X: 25, Y: 22}, {X: 47, Y: 22},
		},
		PathWidth:  2,
		Background: tcell.ColorDarkSlateGray,
		PathColor:  tcell.ColorDarkTurquoise,
	},
	{
		Anchors: []grid.Position{
			{X: 0, Y: 24}, {X: 15, Y: 24}, {X: 15, Y: 6}, {X: 32, Y: 6}, {X: 32, Y: 14}, {X: 47, Y: 14},
		},
		PathWidth:  1,
		Background: tcell.ColorDarkOliveGreen,
		PathColor:  tcell.ColorGold,
	},
	{
		Anchors: []grid.Position{
			{X: 0, Y: 14}, {X: 8, Y: 14}, {X: 8, Y: 6}, {X: 20, Y: 6}, {X: 20, Y: 20}, {X: 35, Y: 20}, {X: 35, Y: 5}, {X: 47, Y: 5},
		},
		PathWidth:  3,
		Background: tcell.ColorDarkBlue,
		PathColor:  tcell.ColorCornflowerBlue,
	},
	{
		Anchors: []grid.Position{
			{X: 0, Y: 8}, {X: 14, Y: 8}, {X: 14, Y: 22}, {X: 28, Y: 22}, {X: 28, Y: 6}, {X: 47, Y: 6},
		},
		PathWidth:  2,
		Background: tcell.ColorDarkKhaki,
		PathColor:  tcell.ColorDarkOrange,
	},
	{
		Anchors: []grid.Position{
			{X: 0, Y: 14}, {X: 10, Y: 14}, {X: 10, Y: 3}, {X: 20, Y: 3}, {X: 20, Y: 24}, {X: 40, Y: 24}, {X: 40, Y: 8}, {X: 47, Y: 8},
		},
		PathWidth:  2,
		Background: tcell.ColorPaleTurquoise,
		PathColor:  tcell.ColorLightSkyBlue,
	},
	{
		Anchors: []grid.Position{
			{X: 0, Y: 23}, {X: 18, Y: 23}, {X: 18, Y: 5}, {X: 46, Y: 5}, {X: 46, Y: 14},
		},
		PathWidth:  1,
		Background: tcell.ColorDarkOliveGreen,
		PathColor:  tcell.ColorGreenYellow,
	},
	{
		Anchors: []grid.Position{
			{X: 0, Y: 4}, {X: 8, Y: 4}, {X: 8, Y: 24}, {X: 24, Y: 24}, {X: 24, Y: 4}, {X: 47, Y: 4},
		},
		PathWidth:  2,
		Background: tcell.ColorDarkMagenta,
		PathColor:  tcell.ColorDeepPink,
	},
	{
		Anchors: []grid.Position{
			{X: 0, Y: 14}, {X: 12, Y: 14}, {X: 12, Y: 6}, {X: 22, Y: 6}, {X: 22, Y: 21}, {X: 34, Y: 21}, {X: 34, Y: 5}, {X: 47, Y: 5},
		},
		PathWidth:  2,
		Background: tcell.ColorDarkSeaGreen,
		PathColor:  tcell.ColorChartreuse,
	},
	{
		Anchors: []grid.Position{
			{X: 0, Y: 2}, {X: 16, Y: 2}, {X: 16, Y: 25}, {X: 30, Y: 25}, {X: 30, Y: 7}, {X: 47, Y: 7},
		},
		PathWidth:  3,
		Background: tcell.ColorDarkRed,
		PathColor:  tcell.ColorOrangeRed,
	},
}

// Catalog returns the ordered map list. Index wraps after the last map.
func Catalog() []MapDef {
	return catalog
}

// MapAt returns the map for an index, wrapping cyclically.
func MapAt(index int) MapDef {
	return catalog[index%len(catalog)]
}

// MapCount returns the catalog size.
func MapCount() int {
	return len(catalog)
}
