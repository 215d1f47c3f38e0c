package main

import (
	"image"

	"github.com/hajimehoshi/ebiten"
)

// Nine draws a nine-slice image stretched over a rectangle: corners keep
// their size, edges and centre stretch.
type Nine struct {
	images              *ebiten.Image
	alpha               float64
	R, G, B, Scale      float64
	positions           [4][2]int
	x, y, width, height int
	scaleCenterWidth    float64
	scaleCenterHeight   float64
	targetPositions     [3][2]float64
}

// newFrame builds a square outline of the given border, used as the cursor.
func newFrame(border int) (*Nine, error) {
	side := border*2 + 2
	img, err := ebiten.NewImage(side, side, ebiten.FilterNearest)
	if err != nil {
		return nil, err
	}
	pixels := make([]byte, side*side*4)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if x >= border && x < side-border && y >= border && y < side-border {
				continue
			}
			i := (y*side + x) * 4
			pixels[i], pixels[i+1], pixels[i+2], pixels[i+3] = 0xff, 0xff, 0xff, 0xff
		}
	}
	if err := img.ReplacePixels(pixels); err != nil {
		return nil, err
	}
	return &Nine{
		images: img,
		alpha:  1,
		R:      1, G: .85, B: .2, Scale: 1,
		positions: [4][2]int{{0, 0}, {border, border}, {side - border, side - border}, {side, side}},
	}, nil
}

func (n *Nine) SetPosition(x, y int) {
	n.x = x
	n.y = y
	n.SetSize(n.width, n.height)
}

func (n *Nine) SetSize(width, height int) {
	n.width = width
	n.height = height
	n.targetPositions[0][0] = float64(n.x)
	n.targetPositions[0][1] = float64(n.y)

	n.targetPositions[1][0] = float64(n.x) + n.Scale*float64(n.positions[1][0])
	n.targetPositions[1][1] = float64(n.y) + n.Scale*float64(n.positions[1][1])

	n.targetPositions[2][0] = float64(n.x+n.width) - n.Scale*float64(n.positions[3][0]-n.positions[2][0])
	n.targetPositions[2][1] = float64(n.y+n.height) - n.Scale*float64(n.positions[3][1]-n.positions[2][1])

	innerWidth := n.targetPositions[2][0] - n.targetPositions[1][0]
	innerHeight := n.targetPositions[2][1] - n.targetPositions[1][1]
	n.scaleCenterWidth = innerWidth / float64(n.positions[2][0]-n.positions[1][0])
	n.scaleCenterHeight = innerHeight / float64(n.positions[2][1]-n.positions[1][1])
}

func (n *Nine) Draw(screen *ebiten.Image) {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			scaleX, scaleY := n.Scale, n.Scale
			if col == 1 {
				scaleX = n.scaleCenterWidth
			}
			if row == 1 {
				scaleY = n.scaleCenterHeight
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(scaleX, scaleY)
			op.GeoM.Translate(n.targetPositions[col][0], n.targetPositions[row][1])
			op.ColorM.Scale(n.R, n.G, n.B, n.alpha)
			src := image.Rect(n.positions[col][0], n.positions[row][1], n.positions[col+1][0], n.positions[row+1][1])
			screen.DrawImage(n.images.SubImage(src).(*ebiten.Image), op)
		}
	}
}
