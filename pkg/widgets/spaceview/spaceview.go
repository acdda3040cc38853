// Package spaceview renders a polytope as a depth-shaded wireframe. The
// widget keeps one angle per rotation plane, composes the active
// rotations every frame, projects the result down to 3-space and draws
// it through a trackball camera onto a raster image.
//
// The higher-dimensional structure is shown two ways: the coordinate
// about to be projected away drives the edge color ramp, and the
// remaining 3-D depth after the camera shades it.
package spaceview

import (
	"image"
	"image/color"
	"math"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/polyview/pkg/colors"
	"github.com/roffe/polyview/pkg/ebus"
	"github.com/roffe/polyview/pkg/ndim"
	"github.com/roffe/polyview/pkg/physics"
	"github.com/roffe/polyview/pkg/polytope"
	"github.com/roffe/polyview/pkg/projection"
)

const (
	frameRate    = 30
	renderScale  = 140.0 // pixels per world unit at zoom 1
	snapshotSize = 512

	jiggleKick = 0.6

	degree = math.Pi / 180

	initialPitch = -25 * degree
	initialYaw   = 30 * degree
)

// DefaultSpinSpeed is the angular speed planes start out with, in
// radians per second.
const DefaultSpinSpeed = 0.5

var _ fyne.Widget = (*Spaceview)(nil)

type planeState struct {
	name         string
	axis1, axis2 int
	angle        float64
	speed        float64
	active       bool
}

type Spaceview struct {
	widget.BaseWidget

	mu sync.Mutex

	geometry polytope.Geometry
	planes   []planeState
	projCfg  projection.Config

	camera *camera

	jiggle   *physics.System
	jiggling bool

	paused       bool
	showVertices bool
	colorMode    colors.ColorBlindMode

	edgeColor  color.RGBA
	background color.RGBA

	lastMouseX, lastMouseY float32
	focused                bool

	image *canvas.Image
	size  fyne.Size

	frames int

	animateOnce sync.Once
	closeOnce   sync.Once
	quit        chan struct{}
}

// New creates a viewport showing the given geometry. The frame loop
// starts when the widget is first rendered; call Close to stop it.
func New(g polytope.Geometry) *Spaceview {
	sv := &Spaceview{
		projCfg:    projection.Config{Mode: projection.Perspective},
		camera:     newCamera(),
		edgeColor:  color.RGBA{R: 0x5e, G: 0xc8, B: 0xff, A: 0xff},
		background: color.RGBA{R: 0x10, G: 0x10, B: 0x16, A: 0xff},
		quit:       make(chan struct{}),
	}
	sv.camera.rotate(initialPitch, initialYaw, 0)
	sv.setGeometry(g)
	sv.ExtendBaseWidget(sv)

	sv.image = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	sv.image.FillMode = canvas.ImageFillOriginal
	sv.image.ScaleMode = canvas.ImageScaleFastest

	return sv
}

// Close stops the frame loop.
func (sv *Spaceview) Close() {
	sv.closeOnce.Do(func() {
		close(sv.quit)
	})
}

// SetGeometry swaps the displayed shape. Plane angles, speeds and
// checkbox state carry over wherever the plane exists in the new
// dimension too; any jiggle in progress is dropped.
func (sv *Spaceview) SetGeometry(g polytope.Geometry) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	sv.setGeometry(g)
}

func (sv *Spaceview) setGeometry(g polytope.Geometry) {
	prev := make(map[string]planeState, len(sv.planes))
	for _, p := range sv.planes {
		prev[p.name] = p
	}
	pairs := ndim.Planes(g.Dimension)
	planes := make([]planeState, len(pairs))
	for i, pair := range pairs {
		name := ndim.PlaneName(pair[0], pair[1])
		if old, ok := prev[name]; ok {
			old.axis1, old.axis2 = pair[0], pair[1]
			planes[i] = old
			continue
		}
		planes[i] = planeState{
			name:   name,
			axis1:  pair[0],
			axis2:  pair[1],
			speed:  DefaultSpinSpeed,
			active: pair[1] == g.Dimension-1,
		}
	}
	sv.geometry = g
	sv.planes = planes
	sv.jiggle = nil
	sv.jiggling = false

	ebus.Publish(ebus.TopicVertexCount, float64(len(g.Vertices)))
	ebus.Publish(ebus.TopicEdgeCount, float64(len(g.Edges)))
	ebus.Publish(ebus.TopicFaceCount, float64(len(g.Faces)))
	// Seed the angle topics so legend readouts exist before the first frame.
	for _, p := range planes {
		ebus.Publish(ebus.AngleTopic(p.name), p.angle)
	}
}

// Geometry returns the shape at rest, without rotation applied.
func (sv *Spaceview) Geometry() polytope.Geometry {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	return sv.geometry
}

// RotatedGeometry returns the shape with the current plane rotations
// applied, still in full dimension. Exports use this so the written
// file matches what is on screen.
func (sv *Spaceview) RotatedGeometry() polytope.Geometry {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	rot, ok := sv.composeRotations()
	if !ok {
		return sv.geometry
	}
	out, err := sv.geometry.Transform(rot)
	if err != nil {
		return sv.geometry
	}
	return out
}

func (sv *Spaceview) composeRotations() (ndim.Matrix, bool) {
	dim := sv.geometry.Dimension
	rots := make([]ndim.Rotation, 0, len(sv.planes))
	for _, p := range sv.planes {
		if p.angle == 0 {
			continue
		}
		r, err := ndim.NewRotation(dim, p.axis1, p.axis2, p.angle)
		if err != nil {
			continue
		}
		rots = append(rots, r)
	}
	if len(rots) == 0 {
		return nil, false
	}
	m, err := ndim.Compose(rots...)
	if err != nil {
		return nil, false
	}
	return m, true
}

// Projection returns the active projection parameters.
func (sv *Spaceview) Projection() projection.Config {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	return sv.projCfg
}

func (sv *Spaceview) SetProjectionMode(m projection.Mode) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	sv.projCfg.Mode = m
}

func (sv *Spaceview) SetViewDistance(d float64) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	sv.projCfg.ViewDistance = d
}

func (sv *Spaceview) SetPoleDistance(d float64) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	sv.projCfg.PoleDistance = d
}

// PlaneNames lists the rotation planes of the current dimension in
// enumeration order.
func (sv *Spaceview) PlaneNames() []string {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	names := make([]string, len(sv.planes))
	for i, p := range sv.planes {
		names[i] = p.name
	}
	return names
}

// ActivePlanes lists the planes currently spinning.
func (sv *Spaceview) ActivePlanes() []string {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	var names []string
	for _, p := range sv.planes {
		if p.active {
			names = append(names, p.name)
		}
	}
	return names
}

func (sv *Spaceview) PlaneActive(name string) bool {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	for _, p := range sv.planes {
		if p.name == name {
			return p.active
		}
	}
	return false
}

func (sv *Spaceview) SetPlaneActive(name string, active bool) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	for i := range sv.planes {
		if sv.planes[i].name == name {
			sv.planes[i].active = active
			return
		}
	}
}

// TogglePlane flips one plane's spin and reports the new state.
// Unknown planes report false.
func (sv *Spaceview) TogglePlane(name string) bool {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	for i := range sv.planes {
		if sv.planes[i].name == name {
			sv.planes[i].active = !sv.planes[i].active
			return sv.planes[i].active
		}
	}
	return false
}

// SetPlaneAngle sets one plane's angle directly, in radians.
func (sv *Spaceview) SetPlaneAngle(name string, angle float64) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	for i := range sv.planes {
		if sv.planes[i].name == name {
			sv.planes[i].angle = math.Mod(angle, 2*math.Pi)
			ebus.Publish(ebus.AngleTopic(name), sv.planes[i].angle)
			return
		}
	}
}

// SetPlaneSpeed sets one plane's angular speed in radians per second.
func (sv *Spaceview) SetPlaneSpeed(name string, speed float64) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	for i := range sv.planes {
		if sv.planes[i].name == name {
			sv.planes[i].speed = speed
			return
		}
	}
}

// PlaneSpeed reports one plane's angular speed in radians per second.
func (sv *Spaceview) PlaneSpeed(name string) float64 {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	for _, p := range sv.planes {
		if p.name == name {
			return p.speed
		}
	}
	return 0
}

// SetSpinSpeed sets every plane's angular speed at once.
func (sv *Spaceview) SetSpinSpeed(speed float64) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	for i := range sv.planes {
		sv.planes[i].speed = speed
	}
}

func (sv *Spaceview) Paused() bool {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	return sv.paused
}

func (sv *Spaceview) SetPaused(paused bool) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	sv.paused = paused
}

// TogglePaused flips the spin pause and reports the new state.
func (sv *Spaceview) TogglePaused() bool {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	sv.paused = !sv.paused
	return sv.paused
}

// ResetView zeroes every plane angle, recenters the camera and drops
// any jiggle in progress.
func (sv *Spaceview) ResetView() {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	for i := range sv.planes {
		sv.planes[i].angle = 0
		ebus.Publish(ebus.AngleTopic(sv.planes[i].name), 0)
	}
	sv.camera.reset()
	sv.camera.rotate(initialPitch, initialYaw, 0)
	if sv.jiggle != nil {
		sv.jiggle.Reset()
	}
	sv.jiggling = false
}

// ToggleJiggle kicks the spring system and reports whether it is now
// running. Toggling off snaps the vertices back to rest.
func (sv *Spaceview) ToggleJiggle() bool {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	if sv.jiggling {
		sv.jiggling = false
		if sv.jiggle != nil {
			sv.jiggle.Reset()
		}
		return false
	}
	if sv.jiggle == nil {
		sv.jiggle = physics.NewSystem(sv.geometry, physics.Config{})
	}
	sv.jiggle.Excite(jiggleKick)
	sv.jiggling = true
	return true
}

func (sv *Spaceview) SetShowVertices(show bool) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	sv.showVertices = show
}

func (sv *Spaceview) SetColorBlindMode(mode colors.ColorBlindMode) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	sv.colorMode = mode
}

func (sv *Spaceview) SetEdgeColor(c color.RGBA) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	sv.edgeColor = c
}

func (sv *Spaceview) SetBackgroundColor(c color.RGBA) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	sv.background = c
}

// Snapshot renders the current view off-screen and returns the raster.
// Before the first layout it renders at a fixed fallback size.
func (sv *Spaceview) Snapshot() *image.RGBA {
	sv.mu.Lock()
	w, h := int(sv.size.Width), int(sv.size.Height)
	sv.mu.Unlock()
	if w < 1 || h < 1 {
		w, h = snapshotSize, snapshotSize
	}
	return sv.renderFrame(w, h)
}

// animate is the frame loop. It advances plane angles and the spring
// system, renders off the UI thread and hands the finished raster over
// with fyne.Do.
func (sv *Spaceview) animate() {
	t := time.NewTicker(time.Second / frameRate)
	defer t.Stop()
	secondTicker := time.NewTicker(time.Second)
	defer secondTicker.Stop()

	last := time.Now()
	for {
		select {
		case <-sv.quit:
			return
		case <-secondTicker.C:
			sv.mu.Lock()
			frames := sv.frames
			sv.frames = 0
			sv.mu.Unlock()
			ebus.Publish(ebus.TopicFPS, float64(frames))
		case now := <-t.C:
			dt := now.Sub(last).Seconds()
			last = now
			sv.step(dt)

			sv.mu.Lock()
			w, h := int(sv.size.Width), int(sv.size.Height)
			sv.frames++
			sv.mu.Unlock()

			img := sv.renderFrame(w, h)
			fyne.Do(func() {
				sv.image.Image = img
				sv.image.Refresh()
			})
		}
	}
}

func (sv *Spaceview) step(dt float64) {
	if dt <= 0 || dt > 0.25 {
		dt = 1.0 / frameRate
	}
	sv.mu.Lock()
	defer sv.mu.Unlock()
	if !sv.paused {
		for i := range sv.planes {
			p := &sv.planes[i]
			if !p.active || p.speed == 0 {
				continue
			}
			p.angle = math.Mod(p.angle+p.speed*dt, 2*math.Pi)
			ebus.Publish(ebus.AngleTopic(p.name), p.angle)
		}
	}
	if sv.jiggling && sv.jiggle != nil {
		sv.jiggle.Step(dt)
	}
}

func (sv *Spaceview) CreateRenderer() fyne.WidgetRenderer {
	sv.animateOnce.Do(func() {
		go sv.animate()
	})
	return &spaceviewRenderer{sv}
}

type spaceviewRenderer struct {
	*Spaceview
}

func (r *spaceviewRenderer) Layout(size fyne.Size) {
	r.mu.Lock()
	if size == r.size {
		r.mu.Unlock()
		return
	}
	r.size = size
	r.mu.Unlock()
	r.image.Resize(size)
}

func (r *spaceviewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(320, 240)
}

func (r *spaceviewRenderer) Refresh() {
	r.image.Refresh()
}

func (r *spaceviewRenderer) Destroy() {
}

func (r *spaceviewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.image}
}
