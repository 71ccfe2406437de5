package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/meghashyamc/sat2d/geometry"
)

const strokeWidth = 2

var colorBounds = color.RGBA{70, 70, 90, 255}

// drawShape outlines a polygon through its vertex loop, or a circle through
// its centre and radius, over its bounding box.
func drawShape(screen *ebiten.Image, shape geometry.Shape, clr color.Color) {
	drawRectangleOutline(screen, shape.Bounds(), colorBounds)

	switch s := shape.(type) {
	case *geometry.Polygon:
		vertices := s.Vertices()
		for i, v := range vertices {
			next := vertices[(i+1)%len(vertices)]
			vector.StrokeLine(screen, float32(v.X), float32(v.Y), float32(next.X), float32(next.Y), strokeWidth, clr, true)
		}
	case *geometry.Circle:
		vector.StrokeCircle(screen, float32(s.X()), float32(s.Y()), float32(s.R()), strokeWidth, clr, true)
	}
}

// drawMTV draws the translation vector from the centre of shape.
func drawMTV(screen *ebiten.Image, shape geometry.Shape, mtv geometry.Vector, clr color.Color) {
	b := shape.Bounds()
	x, y := b.X+b.Width/2, b.Y+b.Height/2
	vector.StrokeLine(screen, float32(x), float32(y), float32(x+mtv.X), float32(y+mtv.Y), strokeWidth, clr, true)
	vector.DrawFilledCircle(screen, float32(x+mtv.X), float32(y+mtv.Y), 3, clr, true)
}

func drawRectangleOutline(screen *ebiten.Image, rect geometry.Rect, col color.Color) {
	if rect.Width < 1 || rect.Height < 1 {
		return
	}

	// Create a 1-pixel image to draw lines with
	lineImg := ebiten.NewImage(1, 1)
	lineImg.Fill(col)

	// Draw top line
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(rect.Width, 1)
	op.GeoM.Translate(rect.X, rect.Y)
	screen.DrawImage(lineImg, op)

	// Draw bottom line
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(rect.Width, 1)
	op.GeoM.Translate(rect.X, rect.Y+rect.Height-1)
	screen.DrawImage(lineImg, op)

	// Draw left line
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1, rect.Height)
	op.GeoM.Translate(rect.X, rect.Y)
	screen.DrawImage(lineImg, op)

	// Draw right line
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1, rect.Height)
	op.GeoM.Translate(rect.X+rect.Width-1, rect.Y)
	screen.DrawImage(lineImg, op)
}
