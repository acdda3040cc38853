package spaceview

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/roffe/polyview/pkg/colors"
	"github.com/roffe/polyview/pkg/ndim"
	"github.com/roffe/polyview/pkg/projection"
)

// viewVertex is one vertex in camera space plus the color ramp value of
// the coordinate the last projection step dropped.
type viewVertex struct {
	x, y, z float64
	hue     float64
}

// lineSegment is one edge ready to draw, screen position and endpoint
// colors precomputed.
type lineSegment struct {
	x1, y1 int
	x2, y2 int
	c1, c2 color.RGBA
	depth  float64
}

// Perspective blows up near the view distance; instead of clamping in
// the projection the viewport drops what lands this far off screen.
const maxPixel = 1 << 14

// renderFrame runs the full pipeline for one frame: rotate in full
// dimension, project to 3-space, transform through the camera, then
// depth sort and rasterize.
func (sv *Spaceview) renderFrame(w, h int) *image.RGBA {
	if w < 1 || h < 1 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	sv.mu.Lock()
	verts := sv.geometry.Vertices
	if sv.jiggling && sv.jiggle != nil {
		verts = sv.jiggle.Positions()
	}
	dim := sv.geometry.Dimension
	edges := sv.geometry.Edges
	cfg := sv.projCfg
	rot, rotOK := sv.composeRotations()
	useRamp := dim > 3
	mode := sv.colorMode
	edgeColor := sv.edgeColor
	bg := sv.background
	showVerts := sv.showVertices
	camRot := sv.camera.rotation

	rotated := make([]ndim.Vector, len(verts))
	wmin, wmax := math.Inf(1), math.Inf(-1)
	for i, v := range verts {
		nv := v
		if rotOK {
			if out, err := rot.Transform(v); err == nil {
				nv = out
			}
		}
		rotated[i] = nv
		if useRamp {
			last := nv.At(dim - 1)
			if last < wmin {
				wmin = last
			}
			if last > wmax {
				wmax = last
			}
		}
	}

	screen := make([]viewVertex, len(verts))
	for i, nv := range rotated {
		var hue float64
		if useRamp {
			hue = projection.DepthValue(nv, wmin, wmax)
		}
		p3 := projection.ProjectTo3D(nv, cfg)
		view := sv.camera.view(p3.Scale(renderScale))
		screen[i] = viewVertex{x: view.At(0), y: view.At(1), z: view.At(2), hue: hue}
	}
	sv.mu.Unlock()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	// Camera-space Z range for depth shading. Larger Z is nearer.
	minZ, maxZ := math.Inf(1), math.Inf(-1)
	for _, v := range screen {
		if !finite(v) {
			continue
		}
		if v.z < minZ {
			minZ = v.z
		}
		if v.z > maxZ {
			maxZ = v.z
		}
	}
	zRange := maxZ - minZ
	if zRange == 0 || math.IsInf(zRange, 0) {
		zRange = 1
	}

	cx, cy := float64(w)*0.5, float64(h)*0.5

	segments := make([]lineSegment, 0, len(edges))
	for _, e := range edges {
		v1, v2 := screen[e[0]], screen[e[1]]
		if !finite(v1) || !finite(v2) {
			continue
		}
		x1, y1 := int(cx+v1.x), int(cy+v1.y)
		x2, y2 := int(cx+v2.x), int(cy+v2.y)
		if abs(x1) > maxPixel || abs(y1) > maxPixel || abs(x2) > maxPixel || abs(y2) > maxPixel {
			continue
		}

		// Skip if line is too small to be visible
		dx, dy := x2-x1, y2-y1
		if dx*dx+dy*dy < 4 {
			continue
		}

		segments = append(segments, lineSegment{
			x1: x1, y1: y1,
			x2: x2, y2: y2,
			c1:    vertexColor(v1, minZ, zRange, useRamp, mode, edgeColor),
			c2:    vertexColor(v2, minZ, zRange, useRamp, mode, edgeColor),
			depth: (v1.z + v2.z) / 2,
		})
	}

	// Draw back to front.
	quickSortSegments(segments, 0, len(segments)-1)
	for _, s := range segments {
		drawBresenhamLine(img, s.x1, s.y1, s.x2, s.y2, s.c1, s.c2)
	}

	if showVerts {
		dotBase := color.RGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff}
		for _, v := range screen {
			if !finite(v) {
				continue
			}
			x, y := int(cx+v.x), int(cy+v.y)
			if abs(x) > maxPixel || abs(y) > maxPixel {
				continue
			}
			drawDot(img, x, y, colors.DepthShade(dotBase, (v.z-minZ)/zRange))
		}
	}

	drawAxisIndicator(img, camRot)

	return img
}

// vertexColor picks the ramp color for the dropped coordinate, or the
// flat edge color when the shape is already 3-dimensional, and shades
// it by camera depth.
func vertexColor(v viewVertex, minZ, zRange float64, useRamp bool, mode colors.ColorBlindMode, base color.RGBA) color.RGBA {
	c := base
	if useRamp {
		c = colors.GetColorInterpolation(0, 1, v.hue, mode)
	}
	return colors.DepthShade(c, (v.z-minZ)/zRange)
}

func finite(v viewVertex) bool {
	for _, f := range [3]float64{v.x, v.y, v.z} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func quickSortSegments(segments []lineSegment, low, high int) {
	if low < high {
		pivotIndex := partitionSegments(segments, low, high)
		quickSortSegments(segments, low, pivotIndex-1)
		quickSortSegments(segments, pivotIndex+1, high)
	}
}

func partitionSegments(segments []lineSegment, low, high int) int {
	pivot := segments[high].depth
	i := low - 1

	for j := low; j < high; j++ {
		if segments[j].depth <= pivot {
			i++
			segments[i], segments[j] = segments[j], segments[i]
		}
	}

	segments[i+1], segments[high] = segments[high], segments[i+1]
	return i + 1
}

// Fast Bresenham line algorithm with a color gradient between the
// endpoints.
func drawBresenhamLine(img *image.RGBA, x0, y0, x1, y1 int, color1, color2 color.RGBA) {
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()

	// Check if line is completely out of bounds
	if (x0 < 0 && x1 < 0) || (x0 >= width && x1 >= width) ||
		(y0 < 0 && y1 < 0) || (y0 >= height && y1 >= height) {
		return
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	totalSteps := max(dx, -dy)
	step := 0

	for {
		if x0 >= 0 && x0 < width && y0 >= 0 && y0 < height {
			t := 0.0
			if totalSteps > 0 {
				t = float64(step) / float64(totalSteps)
			}
			img.SetRGBA(x0, y0, interpolateColor(color1, color2, t))
		}

		if x0 == x1 && y0 == y1 {
			break
		}

		e2 := 2 * err
		if e2 >= dy {
			if x0 == x1 {
				break
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				break
			}
			err += dx
			y0 += sy
		}

		step++
	}
}

func interpolateColor(c1, c2 color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c1.R)*(1-t) + float64(c2.R)*t),
		G: uint8(float64(c1.G)*(1-t) + float64(c2.G)*t),
		B: uint8(float64(c1.B)*(1-t) + float64(c2.B)*t),
		A: uint8(float64(c1.A)*(1-t) + float64(c2.A)*t),
	}
}

func drawDot(img *image.RGBA, x, y int, c color.RGBA) {
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			px, py := x+dx, y+dy
			if px >= 0 && px < width && py >= 0 && py < height {
				img.SetRGBA(px, py, c)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
