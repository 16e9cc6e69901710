// internal/render/renderer.go
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"cat-burrow-defense/internal/component"
	"cat-burrow-defense/pkg/grid"
)

// Board cells are drawn two terminal columns wide so the playfield is
// roughly square on common fonts.
const cellWidth = 2

// Range hint tints, blended into the cell background.
var (
	rangeHintColor   = tcell.ColorDarkSeaGreen
	previewHintColor = tcell.ColorLightSkyBlue
)

const (
	rangeHintStrength   = 0.25
	previewHintStrength = 0.45
)

// Renderer draws frames onto a tcell screen. It owns no game state.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw paints one frame and flushes it to the terminal.
func (r *Renderer) Draw(f *Frame) {
	r.screen.Clear()

	bg := r.backgroundLayer(f)
	r.drawBoard(f, bg)
	r.drawEffects(f, bg)
	r.drawEnemies(f, bg)
	r.drawTowers(f, bg)
	r.drawPreview(f, bg)
	r.drawSidebar(f)

	if f.Controls {
		r.drawControls(f)
	} else if f.ViewShop {
		r.drawShop(f)
	}
	if f.Stats.GameOver {
		r.drawGameOver(f)
	}

	r.screen.Show()
}

// backgroundLayer computes the per-cell background: map theme plus blended
// range hints for placed cats and the placement preview.
func (r *Renderer) backgroundLayer(f *Frame) [][]tcell.Color {
	bg := make([][]tcell.Color, f.Height)
	for y := range bg {
		bg[y] = make([]tcell.Color, f.Width)
		for x := range bg[y] {
			if f.PathMask[y][x] {
				bg[y][x] = f.PathColor
			} else {
				bg[y][x] = f.Background
			}
		}
	}
	if !f.Overlay {
		return bg
	}

	for _, t := range f.Towers {
		if !t.ShowRange {
			continue
		}
		tintCircle(bg, towerCenter(t.Pos, t.Size), t.Range, rangeHintColor, rangeHintStrength)
	}
	if f.Preview.Active && f.Preview.ShowRange {
		tintCircle(bg, towerCenter(f.Preview.Pos, f.Preview.Size), f.Preview.Range, previewHintColor, previewHintStrength)
	}
	return bg
}

func towerCenter(pos grid.Position, size int) grid.Vec2 {
	half := (float64(size) - 1.0) / 2.0
	return grid.Vec2{X: float64(pos.X) + half, Y: float64(pos.Y) + half}
}

func tintCircle(bg [][]tcell.Color, center grid.Vec2, radius float64, tint tcell.Color, strength float64) {
	for y := range bg {
		for x := range bg[y] {
			if grid.InRange(center, grid.Position{X: x, Y: y}, radius) {
				bg[y][x] = blend(bg[y][x], tint, strength)
			}
		}
	}
}

// blend mixes a tint into a base color in a perceptual space.
func blend(base, tint tcell.Color, t float64) tcell.Color {
	b := toColorful(base)
	o := toColorful(tint)
	m := b.BlendLab(o, t).Clamped()
	return tcell.NewRGBColor(int32(m.R*255), int32(m.G*255), int32(m.B*255))
}

func toColorful(c tcell.Color) colorful.Color {
	cr, cg, cb := c.TrueColor().RGB()
	return colorful.Color{R: float64(cr) / 255, G: float64(cg) / 255, B: float64(cb) / 255}
}

func (r *Renderer) putCell(x, y int, ch rune, style tcell.Style) {
	r.screen.SetContent(x*cellWidth, y, ch, nil, style)
	r.screen.SetContent(x*cellWidth+1, y, ' ', nil, style)
}

func (r *Renderer) drawBoard(f *Frame, bg [][]tcell.Color) {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			ch := ' '
			style := tcell.StyleDefault.Background(bg[y][x])
			if f.PathMask[y][x] {
				ch = '.'
				style = style.Foreground(tcell.ColorBlack)
			}
			r.putCell(x, y, ch, style)
		}
	}
}

func (r *Renderer) drawEffects(f *Frame, bg [][]tcell.Color) {
	styleAt := func(p grid.Position) tcell.Style {
		return tcell.StyleDefault.Background(bg[p.Y][p.X])
	}

	for _, cells := range f.Beams {
		for _, c := range cells {
			r.putCell(c.X, c.Y, '-', styleAt(c).Foreground(tcell.ColorYellow).Bold(true))
		}
	}
	for _, a := range f.Areas {
		ch := '#'
		fg := tcell.ColorOrangeRed
		if a.Knockback {
			ch = '%'
			fg = tcell.ColorFuchsia
		}
		for _, c := range a.Cells {
			r.putCell(c.X, c.Y, ch, styleAt(c).Foreground(fg))
		}
	}
	for _, ring := range f.Rings {
		fg := tcell.ColorWhite
		if ring.Sleep {
			fg = tcell.ColorMediumPurple
		}
		r.drawRing(f, bg, ring, fg)
	}
	for _, p := range f.Projectiles {
		cell := grid.Position{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
		if grid.Contains(f.Width, f.Height, cell) {
			r.putCell(cell.X, cell.Y, '*', styleAt(cell).Foreground(tcell.ColorWhite).Bold(true))
		}
	}
	for _, sp := range f.Splats {
		if grid.Contains(f.Width, f.Height, sp) {
			r.putCell(sp.X, sp.Y, 'x', styleAt(sp).Foreground(tcell.ColorRed).Bold(true))
		}
	}
}

// drawRing marks cells whose distance from the ring center is within half a
// cell of the current radius.
func (r *Renderer) drawRing(f *Frame, bg [][]tcell.Color, ring RingView, fg tcell.Color) {
	if ring.Radius <= 0 {
		return
	}
	minX := int(math.Floor(ring.X - ring.Radius - 1))
	maxX := int(math.Ceil(ring.X + ring.Radius + 1))
	minY := int(math.Floor(ring.Y - ring.Radius - 1))
	maxY := int(math.Ceil(ring.Y + ring.Radius + 1))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if !grid.Contains(f.Width, f.Height, grid.Position{X: x, Y: y}) {
				continue
			}
			d := math.Hypot(float64(x)-ring.X, float64(y)-ring.Y)
			if math.Abs(d-ring.Radius) <= 0.5 {
				style := tcell.StyleDefault.Background(bg[y][x]).Foreground(fg)
				r.putCell(x, y, 'o', style)
			}
		}
	}
}

func (r *Renderer) drawEnemies(f *Frame, bg [][]tcell.Color) {
	for _, e := range f.Enemies {
		if !grid.Contains(f.Width, f.Height, e.Pos) {
			continue
		}
		fg := healthColor(e.HealthRatio)
		ch := enemyGlyph(e.Category)
		style := tcell.StyleDefault.Background(bg[e.Pos.Y][e.Pos.X]).Foreground(fg)
		if e.Napping {
			ch = 'z'
			style = style.Foreground(tcell.ColorLightSlateGray)
		}
		r.putCell(e.Pos.X, e.Pos.Y, ch, style)
	}
}

func enemyGlyph(c component.Category) rune {
	switch c {
	case component.CategoryPup:
		return 'p'
	case component.CategoryPlague:
		return 'R'
	case component.CategoryKing:
		return 'Q'
	}
	return 'r'
}

// healthColor fades from green at full health to red near death.
func healthColor(ratio float64) tcell.Color {
	green := colorful.Color{R: 0.2, G: 0.9, B: 0.2}
	red := colorful.Color{R: 0.9, G: 0.15, B: 0.1}
	m := red.BlendLab(green, ratio).Clamped()
	return tcell.NewRGBColor(int32(m.R*255), int32(m.G*255), int32(m.B*255))
}

func towerGlyph(k component.Kind) rune {
	switch k {
	case component.KindScout:
		return 'C'
	case component.KindThunder:
		return 'T'
	case component.KindFat:
		return 'F'
	case component.KindKitty:
		return 'K'
	case component.KindTiger:
		return 'G'
	case component.KindCatatonic:
		return 'Z'
	}
	return '?'
}

func (r *Renderer) drawTowers(f *Frame, bg [][]tcell.Color) {
	for _, t := range f.Towers {
		fg := tcell.ColorWhite
		if t.Upgraded {
			fg = tcell.ColorGold
		}
		for dy := 0; dy < t.Size; dy++ {
			for dx := 0; dx < t.Size; dx++ {
				x, y := t.Pos.X+dx, t.Pos.Y+dy
				if !grid.Contains(f.Width, f.Height, grid.Position{X: x, Y: y}) {
					continue
				}
				style := tcell.StyleDefault.Background(bg[y][x]).Foreground(fg).Bold(t.Upgraded)
				r.putCell(x, y, towerGlyph(t.Kind), style)
			}
		}
	}
}

// drawPreview paints the footprint cue: '+' where placement would succeed,
// 'X' where it would not, and always a reverse-video cursor cell.
func (r *Renderer) drawPreview(f *Frame, bg [][]tcell.Color) {
	if f.Preview.Active && f.Overlay {
		ch := '+'
		fg := tcell.ColorWhite
		if !f.Preview.Valid {
			ch = 'X'
			fg = tcell.ColorRed
		}
		for dy := 0; dy < f.Preview.Size; dy++ {
			for dx := 0; dx < f.Preview.Size; dx++ {
				x, y := f.Preview.Pos.X+dx, f.Preview.Pos.Y+dy
				if !grid.Contains(f.Width, f.Height, grid.Position{X: x, Y: y}) {
					continue
				}
				style := tcell.StyleDefault.Background(bg[y][x]).Foreground(fg).Bold(true)
				r.putCell(x, y, ch, style)
			}
		}
	}

	c := f.Cursor
	if grid.Contains(f.Width, f.Height, c) {
		mainc, _, style, _ := r.screen.GetContent(c.X*cellWidth, c.Y)
		r.putCell(c.X, c.Y, mainc, style.Reverse(true))
	}
}

func (r *Renderer) print(x, y int, style tcell.Style, text string) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *Renderer) drawSidebar(f *Frame) {
	x := f.Width*cellWidth + 2
	st := f.Stats
	plain := tcell.StyleDefault
	title := plain.Bold(true)

	row := 0
	line := func(style tcell.Style, format string, args ...any) {
		r.print(x, row, style, fmt.Sprintf(format, args...))
		row++
	}

	line(title, "Cat Burrow Defense")
	line(plain, "map %d/%d  wave %d", st.MapIndex+1, st.MapCount, st.Wave)
	line(plain, "kibbles %d", st.Kibbles)
	line(plain, "lives %d", st.Lives)
	row++

	if st.Holding {
		line(plain.Foreground(tcell.ColorYellow), "holding a cat (m place, esc cancel)")
	} else {
		line(plain, "selected: %s", st.SelectedName)
	}
	if st.WaveActive {
		line(plain.Foreground(tcell.ColorOrange), "wave in progress")
	} else {
		line(plain, "n next wave  N auto")
	}

	flags := ""
	if st.FastForward {
		flags += "[x5] "
	}
	if st.AutoWaves {
		flags += "[auto] "
	}
	if !st.SfxOn {
		flags += "[sfx off] "
	}
	if !st.MusicOn {
		flags += "[music off] "
	}
	if flags != "" {
		line(plain.Foreground(tcell.ColorAqua), "%s", flags)
	}
	row++
	line(plain.Dim(true), "p shop  h help  q quit")
}

func (r *Renderer) drawShop(f *Frame) {
	x := f.Width*cellWidth + 2
	y := 12
	plain := tcell.StyleDefault

	r.print(x, y, plain.Bold(true), "Shop")
	y++
	for _, e := range f.Shop {
		style := plain
		if e.Selected {
			style = style.Reverse(true)
		}
		mark := " "
		if !e.Unlocked {
			mark = "*"
		}
		r.print(x, y, style, fmt.Sprintf("%d %s%-14s %3d", e.Index+1, mark, e.Name, e.Cost))
		y++
		r.print(x, y, plain.Dim(true), "   "+e.Blurb)
		y++
		if e.Unlocked {
			r.print(x, y, plain.Dim(true), fmt.Sprintf("   upgrade %d", e.UpgradeCost))
		} else {
			r.print(x, y, plain.Dim(true), fmt.Sprintf("   unlock %d", e.UnlockCost))
		}
		y++
	}
}

func (r *Renderer) drawControls(f *Frame) {
	x := f.Width*cellWidth + 2
	y := 12
	plain := tcell.StyleDefault

	lines := []string{
		"Controls",
		"arrows/wasd  move cursor",
		"space or c   place cat",
		"1-6          select cat",
		"m            pick up / put down",
		"x            sell",
		"u            upgrade",
		"n / N        wave / auto waves",
		"f            fast forward",
		"o            toggle range hints",
		"p            shop",
		"t / y        sfx / music",
		"esc          cancel",
		"q            quit",
	}
	for i, s := range lines {
		style := plain
		if i == 0 {
			style = style.Bold(true)
		}
		r.print(x, y+i, style, s)
	}
}

func (r *Renderer) drawGameOver(f *Frame) {
	msg := " GAME OVER  (q to quit) "
	x := (f.Width*cellWidth - len(msg)) / 2
	y := f.Height / 2
	style := tcell.StyleDefault.
		Background(tcell.ColorDarkRed).
		Foreground(tcell.ColorWhite).
		Bold(true)
	r.print(x, y, style, msg)
}
