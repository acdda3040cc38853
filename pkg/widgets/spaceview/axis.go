package spaceview

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/roffe/polyview/pkg/ndim"
)

// drawAxisIndicator draws the 3-D frame in the lower-left corner so the
// camera orientation stays readable while the shape tumbles. Higher
// axes have no screen direction of their own; they show up through the
// edge color ramp instead.
func drawAxisIndicator(img *image.RGBA, camRot ndim.Matrix) {
	cornerOffset := 60.0
	indicatorScale := 50.0

	ox := int(cornerOffset)
	oy := img.Bounds().Dy() - int(cornerOffset)

	axes := []struct {
		dir   ndim.Vector
		label string
		col   color.RGBA
	}{
		{ndim.New(indicatorScale, 0, 0), "X", color.RGBA{R: 255, A: 255}},
		// Negative because screen Y is down.
		{ndim.New(0, -indicatorScale, 0), "Y", color.RGBA{G: 255, A: 255}},
		{ndim.New(0, 0, indicatorScale), "Z", color.RGBA{B: 255, A: 255}},
	}

	for _, axis := range axes {
		end, err := camRot.Transform(axis.dir)
		if err != nil {
			continue
		}
		ex := ox + int(end.At(0))
		ey := oy + int(end.At(1))
		drawBresenhamLine(img, ox, oy, ex, ey, axis.col, axis.col)
		drawText(img, axis.label, ex+5, ey, axis.col)
	}
}

func drawText(img *image.RGBA, text string, x, y int, col color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(text)
}
