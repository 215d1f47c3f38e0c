package main

import (
	"errors"
	"image/color"
	"strconv"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/sweeper/model"
	"github.com/zucenko/sweeper/session"
	"github.com/zucenko/sweeper/terminal"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	size         = 32
	statusHeight = 20
	frameDt      = 1.0 / 60
)

var errQuit = errors.New("quit")

func HexToF32(u uint32) GameColor {
	b := float64(0xff&u) / 255
	g := float64(0xff&(u>>8)) / 255
	r := float64(0xff&(u>>16)) / 255
	return GameColor{r, g, b}
}

type GameColor struct {
	r float64
	g float64
	b float64
}

func (c GameColor) Color() color.Color {
	return color.RGBA{uint8(c.r * 255), uint8(c.g * 255), uint8(c.b * 255), 0xff}
}

var COLOR_CLOSED = HexToF32(0x777777)
var COLOR_OPEN = HexToF32(0xd8d8d8)
var COLOR_FLAG = HexToF32(0xedbc1e)
var COLOR_BOMB = HexToF32(0xfa3636)

// digit colours, index = neighbour count
var COLORS = []GameColor{
	HexToF32(0x000000),
	HexToF32(0x321ecc),
	HexToF32(0x0abd38),
	HexToF32(0xfa3636),
	HexToF32(0x1a1066),
	HexToF32(0x8a1a1a),
	HexToF32(0x118888),
	HexToF32(0x000000),
	HexToF32(0x444444),
}

// StrokeSource represents a input device to provide strokes.
type StrokeSource interface {
	Position() (int, int)
	IsJustReleased() bool
}

type MouseStrokeSource struct{}

func (m *MouseStrokeSource) Position() (int, int) {
	return ebiten.CursorPosition()
}

func (m *MouseStrokeSource) IsJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

type TouchStrokeSource struct {
	ID int
}

func (t *TouchStrokeSource) Position() (int, int) {
	return ebiten.TouchPosition(t.ID)
}

func (t *TouchStrokeSource) IsJustReleased() bool {
	return inpututil.IsTouchJustReleased(t.ID)
}

// Stroke follows one press until release. A stroke that wandered further than
// half a tile is a drag and opens nothing.
type Stroke struct {
	source       StrokeSource
	initX, initY int
	currentX     int
	currentY     int
	released     bool
	dragged      bool
}

func NewStroke(source StrokeSource) *Stroke {
	cx, cy := source.Position()
	return &Stroke{
		source:   source,
		initX:    cx,
		initY:    cy,
		currentX: cx,
		currentY: cy,
	}
}

func (s *Stroke) Update() {
	if s.released {
		return
	}
	if s.source.IsJustReleased() {
		s.released = true
		return
	}
	s.currentX, s.currentY = s.source.Position()
	dx, dy := s.currentX-s.initX, s.currentY-s.initY
	if dx*dx+dy*dy > size*size/4 {
		s.dragged = true
	}
}

type Game struct {
	Session *session.Session
	Cursor  *Nine
	Tweens  map[*gween.Tween]Action
	strokes map[*Stroke]struct{}
	fades   map[model.Position]float32
	flash   float32
	tile    *ebiten.Image
	face    font.Face
}

func NewGame(s *session.Session) (*Game, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(tt, &truetype.Options{
		Size:    20,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	tile, err := ebiten.NewImage(size, size, ebiten.FilterDefault)
	if err != nil {
		return nil, err
	}
	if err := tile.Fill(color.White); err != nil {
		return nil, err
	}

	cursor, err := newFrame(3)
	if err != nil {
		return nil, err
	}
	cursor.SetSize(size, size)

	return &Game{
		Session: s,
		Cursor:  cursor,
		Tweens:  make(map[*gween.Tween]Action),
		strokes: map[*Stroke]struct{}{},
		fades:   make(map[model.Position]float32),
		tile:    tile,
		face:    face,
	}, nil
}

func (g *Game) ScreenSize() (int, int) {
	sz := g.Session.Field.Size()
	return sz.Cols * size, sz.Rows*size + statusHeight
}

func (g *Game) cellAt(x, y int) (model.Position, bool) {
	p := model.Position{Row: y / size, Col: x / size}
	if x < 0 || y < 0 {
		return p, false
	}
	return p, g.Session.Field.Size().Contains(p)
}

// apply runs one command and animates whatever it opened.
func (g *Game) apply(p *model.Position, cmd session.Command) {
	before := g.Session.Snapshot()
	var state session.State
	if p != nil {
		state = g.Session.ApplyAt(*p, cmd)
	} else {
		state = g.Session.Apply(cmd)
	}
	if cmd == session.CMD_RESET {
		g.fades = make(map[model.Position]float32)
		return
	}

	after := g.Session.Snapshot()
	for r, row := range after.Cells {
		for c, cell := range row {
			if cell.Visibility == model.Open && before.Cells[r][c].Visibility != model.Open {
				g.fadeIn(model.Position{Row: r, Col: c})
			}
		}
	}
	if state == session.LOST {
		g.flashBoard()
	}
}

func (g *Game) fadeIn(p model.Position) {
	g.fades[p] = 0
	t := gween.New(0, 1, .25, ease.OutQuad)
	a := Action{onChange: func(v float32) { g.fades[p] = v }}
	a.addOnFinish(func() { delete(g.fades, p) })
	g.Tweens[t] = a
}

// flashBoard pulses a red overlay up and back down.
func (g *Game) flashBoard() {
	up := Action{onChange: func(v float32) { g.flash = v }}
	down := up.next(gween.New(.6, 0, .4, ease.InQuad))
	down.onChange = func(v float32) { g.flash = v }
	g.Tweens[gween.New(0, .6, .15, ease.OutQuad)] = up
}

var keyCommands = map[ebiten.Key]session.Command{
	ebiten.KeyK:     session.CMD_UP,
	ebiten.KeyUp:    session.CMD_UP,
	ebiten.KeyJ:     session.CMD_DOWN,
	ebiten.KeyDown:  session.CMD_DOWN,
	ebiten.KeyH:     session.CMD_LEFT,
	ebiten.KeyLeft:  session.CMD_LEFT,
	ebiten.KeyL:     session.CMD_RIGHT,
	ebiten.KeyRight: session.CMD_RIGHT,
	ebiten.KeySpace: session.CMD_REVEAL,
	ebiten.KeyEnter: session.CMD_REVEAL,
	ebiten.KeyF:     session.CMD_FLAG,
	ebiten.KeyR:     session.CMD_RESET,
}

func (g *Game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.Session.Apply(session.CMD_QUIT)
		return errQuit
	}
	for key, cmd := range keyCommands {
		if inpututil.IsKeyJustPressed(key) {
			g.apply(nil, cmd)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.strokes[NewStroke(&MouseStrokeSource{})] = struct{}{}
	}
	for _, id := range inpututil.JustPressedTouchIDs() {
		g.strokes[NewStroke(&TouchStrokeSource{id})] = struct{}{}
	}
	for s := range g.strokes {
		s.Update()
		if !s.released {
			continue
		}
		delete(g.strokes, s)
		if p, ok := g.cellAt(s.initX, s.initY); ok && !s.dragged {
			g.apply(&p, session.CMD_REVEAL)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if p, ok := g.cellAt(ebiten.CursorPosition()); ok {
			g.apply(&p, session.CMD_FLAG)
		}
	}
	return nil
}

func (g *Game) drawTile(screen *ebiten.Image, p model.Position, c GameColor, alpha float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(.92, .92)
	op.GeoM.Translate(float64(p.Col*size)+1, float64(p.Row*size)+1)
	op.ColorM.Scale(c.r, c.g, c.b, alpha)
	screen.DrawImage(g.tile, op)
}

func (g *Game) drawGlyph(screen *ebiten.Image, p model.Position, s string, c GameColor) {
	text.Draw(screen, s, g.face, p.Col*size+10, p.Row*size+23, c.Color())
}

func (g *Game) update(screen *ebiten.Image) error {
	g.updateTweens(frameDt)
	if err := g.handleInput(); err != nil {
		return err
	}
	if ebiten.IsDrawingSkipped() {
		return nil
	}

	if e := screen.Fill(color.RGBA{40, 40, 40, 255}); e != nil {
		log.Printf("%v", e)
	}

	snap := g.Session.Snapshot()
	for r, row := range snap.Cells {
		for c, cell := range row {
			p := model.Position{Row: r, Col: c}
			switch cell.Visibility {
			case model.Closed:
				g.drawTile(screen, p, COLOR_CLOSED, 1)
			case model.Flagged:
				g.drawTile(screen, p, COLOR_CLOSED, 1)
				g.drawGlyph(screen, p, "*", COLOR_FLAG)
			case model.Open:
				alpha := 1.0
				if v, fading := g.fades[p]; fading {
					g.drawTile(screen, p, COLOR_CLOSED, 1)
					alpha = float64(v)
				}
				if cell.Bomb {
					g.drawTile(screen, p, COLOR_BOMB, alpha)
					g.drawGlyph(screen, p, "@", HexToF32(0x000000))
				} else {
					g.drawTile(screen, p, COLOR_OPEN, alpha)
					if cell.Neighbors > 0 {
						g.drawGlyph(screen, p, strconv.Itoa(cell.Neighbors), COLORS[cell.Neighbors])
					}
				}
			}
		}
	}

	if g.flash > 0 {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(snap.Size.Cols), float64(snap.Size.Rows))
		op.ColorM.Scale(1, 0, 0, float64(g.flash))
		screen.DrawImage(g.tile, op)
	}

	g.Cursor.SetPosition(snap.Cursor.Col*size, snap.Cursor.Row*size)
	g.Cursor.Draw(screen)

	ebitenutil.DebugPrintAt(screen, terminal.Status(snap, g.Session.State), 4, snap.Size.Rows*size+2)
	return nil
}
