// Package export writes the current shape out: Wavefront OBJ of the
// projected wireframe, JSON of the raw n-dimensional geometry and PNG
// snapshots of the viewport.
package export

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/roffe/polyview/pkg/polytope"
	"github.com/roffe/polyview/pkg/projection"
)

// WriteOBJ projects every vertex to 3-space and writes an o/v/l/f record
// wireframe. OBJ indices are 1-based.
func WriteOBJ(w io.Writer, g polytope.Geometry, cfg projection.Config) error {
	if _, err := fmt.Fprintf(w, "# polyview %dd %s\no %s\n", g.Dimension, g.Name, objName(g.Name)); err != nil {
		return err
	}
	for _, v := range g.Vertices {
		p := projection.ProjectTo3D(v, cfg)
		if _, err := fmt.Fprintf(w, "v %.6f %.6f %.6f\n", p.At(0), p.At(1), p.At(2)); err != nil {
			return err
		}
	}
	for _, e := range g.Edges {
		if _, err := fmt.Fprintf(w, "l %d %d\n", e[0]+1, e[1]+1); err != nil {
			return err
		}
	}
	for _, f := range g.Faces {
		if _, err := io.WriteString(w, "f"); err != nil {
			return err
		}
		for _, idx := range f {
			if _, err := fmt.Fprintf(w, " %d", idx+1); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func objName(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		if r == ' ' {
			r = '_'
		}
		out = append(out, r)
	}
	return string(out)
}

type geometryJSON struct {
	Name      string      `json:"name"`
	Dimension int         `json:"dimension"`
	Vertices  [][]float64 `json:"vertices"`
	Edges     [][2]int    `json:"edges"`
	Faces     [][]int     `json:"faces,omitempty"`
}

// WriteJSON dumps the geometry in its native dimension, nothing
// projected.
func WriteJSON(w io.Writer, g polytope.Geometry) error {
	out := geometryJSON{
		Name:      g.Name,
		Dimension: g.Dimension,
		Vertices:  make([][]float64, len(g.Vertices)),
		Edges:     g.Edges,
		Faces:     g.Faces,
	}
	for i, v := range g.Vertices {
		out.Vertices[i] = v
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return err
	}
	return nil
}

// WritePNG encodes a viewport raster.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
