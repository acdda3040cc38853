// Package projection collapses n-dimensional points to 3-space one
// dimension at a time, for the viewport to render.
package projection

import (
	"fmt"
	"strings"

	"github.com/roffe/polyview/pkg/ndim"
)

// Mode selects the projection rule applied at each dimension step.
type Mode int

const (
	Perspective Mode = iota
	Orthographic
	Stereographic
)

func (m Mode) String() string {
	switch m {
	case Perspective:
		return "Perspective"
	case Orthographic:
		return "Orthographic"
	case Stereographic:
		return "Stereographic"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Modes lists the selectable projection modes.
func Modes() []Mode {
	return []Mode{Perspective, Orthographic, Stereographic}
}

// ParseMode resolves a mode name, case-insensitively.
func ParseMode(name string) (Mode, error) {
	for _, m := range Modes() {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown projection mode %q", name)
}

const (
	DefaultViewDistance = 2.0
	DefaultPoleDistance = 1.0
)

// Config carries the projection parameters. Zero distances fall back to
// the defaults so an empty Config always behaves.
type Config struct {
	Mode         Mode
	ViewDistance float64
	PoleDistance float64
}

func (c Config) viewDistance() float64 {
	if c.ViewDistance == 0 {
		return DefaultViewDistance
	}
	return c.ViewDistance
}

func (c Config) poleDistance() float64 {
	if c.PoleDistance == 0 {
		return DefaultPoleDistance
	}
	return c.PoleDistance
}

// PerspectivePoint scales the leading coordinates by
// viewDistance/(viewDistance minus the last coordinate), then drops the
// last. A point at the eye (last coordinate equal to viewDistance)
// diverges; that is left as is for the caller to filter, never clamped.
func PerspectivePoint(p ndim.Vector, viewDistance float64) ndim.Vector {
	n := p.Dimension()
	if n < 1 {
		return p
	}
	scale := viewDistance / (viewDistance - p.At(n-1))
	return p.Truncate(n - 1).Scale(scale)
}

// OrthographicPoint drops the last coordinate unchanged.
func OrthographicPoint(p ndim.Vector) ndim.Vector {
	n := p.Dimension()
	if n < 1 {
		return p
	}
	return p.Truncate(n - 1)
}

// StereographicPoint projects from a pole at poleDistance on the last
// axis. Algebraically the same map as perspective with the pole in the
// eye's place.
func StereographicPoint(p ndim.Vector, poleDistance float64) ndim.Vector {
	return PerspectivePoint(p, poleDistance)
}

// Project reduces a point by exactly one dimension according to the
// config. Unknown modes project orthographically.
func Project(p ndim.Vector, c Config) ndim.Vector {
	switch c.Mode {
	case Perspective:
		return PerspectivePoint(p, c.viewDistance())
	case Stereographic:
		return StereographicPoint(p, c.poleDistance())
	default:
		return OrthographicPoint(p)
	}
}

// ProjectTo3D applies Project until the point reaches three dimensions,
// every step using the same mode and distances. Points already at three
// or fewer dimensions come back unchanged.
func ProjectTo3D(p ndim.Vector, c Config) ndim.Vector {
	for p.Dimension() > 3 {
		p = Project(p, c)
	}
	return p
}

// DepthValue remaps the last coordinate linearly so minVal becomes 0 and
// maxVal becomes 1. Values beyond the range map beyond [0,1]; the color
// ramp downstream wants the overshoot. A degenerate range yields 0.
func DepthValue(p ndim.Vector, minVal, maxVal float64) float64 {
	if maxVal == minVal {
		return 0
	}
	return (p.At(p.Dimension()-1) - minVal) / (maxVal - minVal)
}
