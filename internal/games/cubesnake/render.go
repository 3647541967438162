package cubesnake

import (
	"fmt"

	"github.com/vovakirdan/cubesnake/internal/config"
	"github.com/vovakirdan/cubesnake/internal/core"
	"github.com/vovakirdan/cubesnake/internal/cube"
)

const (
	hudHeight  = 2
	footHeight = 1
	cellWidth  = 2 // Terminal cells are roughly twice as tall as wide
)

// netSlots places each face on the cross-shaped net, in face-sized units.
var netSlots = map[cube.Direction3D][2]int{
	cube.Up:    {1, 0},
	cube.West:  {0, 1},
	cube.South: {1, 1},
	cube.East:  {2, 1},
	cube.North: {3, 1},
	cube.Down:  {1, 2},
}

// netLayout maps cube positions onto the screen.
type netLayout struct {
	size     int
	faces    map[cube.Direction3D]core.Rect
	bounds   core.Rect
	tooSmall bool
}

func newNetLayout(size, screenW, screenH int) netLayout {
	faceW, faceH := size*cellWidth, size
	totalW, totalH := 4*faceW+3, 3*faceH+2

	l := netLayout{
		size:  size,
		faces: make(map[cube.Direction3D]core.Rect, len(netSlots)),
	}
	if screenW < totalW || screenH < totalH+hudHeight+footHeight {
		l.tooSmall = true
	}

	ox := max((screenW-totalW)/2, 0)
	oy := hudHeight
	for face, slot := range netSlots {
		r := core.NewRect(ox+slot[0]*(faceW+1), oy+slot[1]*(faceH+1), faceW, faceH)
		l.faces[face] = r
		if l.bounds.W == 0 {
			l.bounds = r
		} else {
			l.bounds = l.bounds.Union(r)
		}
	}
	return l
}

// cell returns the screen coordinates of a tile. Each face is drawn with e1
// to the right and e2 upward.
func (l netLayout) cell(p cube.Position) (x, y int) {
	r := l.faces[p.Side]
	return r.X + cellWidth*int(p.E1), r.Y + l.size - 1 - int(p.E2)
}

var headGlyphs = [4]rune{
	cube.DirUp:    '^',
	cube.DirRight: '>',
	cube.DirDown:  'v',
	cube.DirLeft:  '<',
}

func tileGlyph(t SnakeTile) (rune, core.Color) {
	color := core.ColorGreen
	if t.Type.IsDigesting() {
		color = core.ColorYellow
	}
	switch t.Type.Settled() {
	case Head:
		if t.Type.IsDigesting() {
			return headGlyphs[t.To], core.ColorBrightYellow
		}
		return headGlyphs[t.To], core.ColorBrightGreen
	case PreHead, Body:
		if t.Type.IsDigesting() {
			return 'O', color
		}
		return 'o', color
	case Tail:
		return '+', color
	case Object:
		return '*', core.ColorBrightRed
	case BonusObject:
		return '$', core.ColorBrightMagenta
	}
	return '·', core.ColorDarkGray
}

// Render draws the unfolded cube, HUD and status line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.layout.tooSmall {
		need := g.layout.bounds
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2+1,
			fmt.Sprintf("need %dx%d", need.W, need.H+hudHeight+footHeight), core.ColorGray)
		return
	}

	m := g.model
	for i, p := range m.Grid().All() {
		x, y := g.layout.cell(p)
		r, c := tileGlyph(m.TileAt(i))
		dst.SetColored(x, y, r, c)
	}

	switch {
	case m.GameOver():
		overlay(dst, core.ColorBrightRed, "GAME OVER", fmt.Sprintf("Score %d  Length %d", m.Score(), m.Length()))
	case g.paused:
		overlay(dst, core.ColorBrightYellow, "PAUSED")
	}

	g.renderHUD(dst)
	g.renderFooter(dst)
}

// overlay draws a boxed message in the middle of the screen.
func overlay(dst *core.Screen, color core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	r := core.NewRect((dst.Width()-w-4)/2, (dst.Height()-len(lines)-2)/2, w+4, len(lines)+2)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(r, color)
	for i, l := range lines {
		dst.DrawTextCentered(r.Y+1+i, l, color)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	m := g.model
	dst.DrawTextColored(1, 0, g.Title(), core.ColorBrightCyan)
	score := fmt.Sprintf("Score: %d", m.Score())
	dst.DrawTextColored(dst.Width()-len(score)-1, 0, score, core.ColorBrightWhite)

	info := fmt.Sprintf("Length %d  Speed %.1f  Face %s", m.Length(), m.Speed(), m.HeadPosition().Side)
	dst.DrawTextColored(1, 1, info, core.ColorGray)
	if _, ok := m.Bonus(); ok {
		bonus := fmt.Sprintf("Bonus %.1fs", m.BonusTimeLeft())
		dst.DrawTextColored(dst.Width()-len(bonus)-1, 1, bonus, core.ColorBrightMagenta)
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	y := dst.Height() - 1
	switch {
	case g.model.GameOver():
		dst.DrawTextCentered(y, fmt.Sprintf("GAME OVER  score %d  R restart  Q quit", g.model.Score()), core.ColorBrightRed)
	case g.paused:
		dst.DrawTextCentered(y, "PAUSED  P resume  Q quit", core.ColorBrightYellow)
	case g.active.Controls == config.ControlsRelative:
		dst.DrawTextCentered(y, "Left/Right turn  P pause  Q quit", core.ColorGray)
	default:
		dst.DrawTextCentered(y, "Arrows steer on the net  P pause  Q quit", core.ColorGray)
	}
}
