package asteroids

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Minimum terminal size for a playable field.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// Kind classifies a drawable object.
type Kind int

const (
	KindShip Kind = iota
	KindFlare
	KindDebris
	KindBullet
	KindEnemyBullet
	KindAsteroid
	KindSaucer
)

var kindColors = map[Kind]core.Color{
	KindShip:        core.ColorBrightWhite,
	KindFlare:       core.ColorOrange,
	KindDebris:      core.ColorWhite,
	KindBullet:      core.ColorBrightYellow,
	KindEnemyBullet: core.ColorBrightRed,
	KindAsteroid:    core.ColorGray,
	KindSaucer:      core.ColorBrightMagenta,
}

// Polyline is an object's outline in world coordinates.
type Polyline struct {
	Kind   Kind
	Points []core.Vec2
}

// HUD is the heads-up information shown over the playfield.
type HUD struct {
	Score      int
	Lives      int
	Hyperspace int
	Level      int
	State      State
	Paused     bool
	GameOver   bool
}

// HUD returns the current heads-up values.
func (g *Game) HUD() HUD {
	return HUD{
		Score:      g.score,
		Lives:      g.lives,
		Hyperspace: g.hyperspace,
		Level:      g.level,
		State:      g.state,
		Paused:     g.paused,
		GameOver:   g.ended,
	}
}

// WorldSize returns the playfield dimensions in world units.
func (g *Game) WorldSize() (float64, float64) {
	return g.width, g.height
}

// Objects returns the outline of every visible object. Points are copied.
func (g *Game) Objects() []Polyline {
	var out []Polyline
	add := func(k Kind, h Handle) {
		obj := g.pool.Get(h)
		if !obj.Active {
			return
		}
		out = append(out, Polyline{Kind: k, Points: append([]core.Vec2(nil), obj.World()...)})
	}

	add(KindShip, g.ship.body)
	for _, h := range g.ship.flares {
		add(KindFlare, h)
	}
	for _, h := range g.ship.debris {
		add(KindDebris, h)
	}
	for i := range g.bullets {
		k := KindBullet
		if i >= enemyBullets.lo {
			k = KindEnemyBullet
		}
		add(k, g.bullets[i].body)
	}
	for i := range g.asteroids {
		if g.asteroids[i].body.Valid() {
			add(KindAsteroid, g.asteroids[i].body)
		}
	}
	add(KindSaucer, g.saucer.body)
	return out
}

// Render draws the playfield and HUD onto dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorDefault)
		return
	}

	v := newViewport(g.width, g.height, dst.Width(), dst.Height())

	for i := 0; i < g.particles.Len(); i++ {
		x, y := v.cell(g.particles.At(i).Position)
		dst.SetColor(x, y, '·', core.ColorYellow)
	}

	for _, p := range g.Objects() {
		g.renderPolyline(dst, v, p)
	}

	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderPolyline draws consecutive vertices as line segments. Bullets are
// drawn as a single dot. Segments spanning more than half the field belong
// to an object straddling the wrap seam and are skipped.
func (g *Game) renderPolyline(dst *core.Screen, v viewport, p Polyline) {
	color := kindColors[p.Kind]
	if p.Kind == KindBullet || p.Kind == KindEnemyBullet {
		x, y := v.cell(centroid(p.Points))
		dst.SetColor(x, y, '•', color)
		return
	}
	if len(p.Points) == 1 {
		x, y := v.cell(p.Points[0])
		dst.SetColor(x, y, '·', color)
		return
	}
	for i := 1; i < len(p.Points); i++ {
		x0, y0 := v.cell(p.Points[i-1])
		x1, y1 := v.cell(p.Points[i])
		if core.Abs(x1-x0) > v.cols/2 || core.Abs(y1-y0) > v.rows/2 {
			continue
		}
		dst.DrawLine(x0, y0, x1, y1, color)
	}
}

// renderHUD draws score, lives, hyperspace charges and level on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("%06d", g.score), core.ColorBrightWhite)

	lives := strings.Repeat("▲", core.Clamp(g.lives, 0, 10))
	dst.DrawText(9, 0, lives, core.ColorBrightCyan)

	hyper := fmt.Sprintf("HYPER %d", g.hyperspace)
	dst.DrawTextCentered(0, hyper, core.ColorCyan)

	level := fmt.Sprintf("LEVEL %d", g.level+1)
	dst.DrawText(dst.Width()-len(level)-1, 0, level, core.ColorBrightWhite)
}

// renderOverlay draws state banners in the middle of the field.
func (g *Game) renderOverlay(dst *core.Screen) {
	mid := dst.Height() / 2
	switch {
	case g.ended:
		score := fmt.Sprintf("Score: %d", g.score)
		w := len(score) + 6
		dst.DrawBox(core.NewRect((dst.Width()-w)/2, mid-2, w, 5), core.ColorRed)
		dst.DrawTextCentered(mid-1, "GAME OVER", core.ColorBrightRed)
		dst.DrawTextCentered(mid+1, score, core.ColorBrightWhite)
	case g.paused:
		dst.DrawTextCentered(mid, "PAUSED", core.ColorBrightYellow)
	case g.state == StateLevelStart:
		dst.DrawTextCentered(mid, fmt.Sprintf("START LEVEL %d", g.level+1), core.ColorBrightYellow)
	case g.state == StateHyperspace:
		dst.DrawTextCentered(mid, "HYPERSPACE", core.ColorBrightCyan)
	}
}

// viewport maps world coordinates onto the cells below the HUD row.
type viewport struct {
	sx, sy     float64
	cols, rows int
}

func newViewport(width, height float64, cols, rows int) viewport {
	rows-- // HUD
	return viewport{
		sx:   float64(cols) / width,
		sy:   float64(rows) / height,
		cols: cols,
		rows: rows,
	}
}

func (v viewport) cell(p core.Vec2) (int, int) {
	x := core.Clamp(int(p.X*v.sx), 0, v.cols-1)
	y := core.Clamp(int(p.Y*v.sy), 0, v.rows-1)
	return x, y + 1
}

func centroid(pts []core.Vec2) core.Vec2 {
	var c core.Vec2
	for _, p := range pts {
		c = c.Add(p)
	}
	return c.Scale(1 / float64(len(pts)))
}
