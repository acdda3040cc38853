// polygen writes the shape catalog to disk without the GUI. One file
// per shape and dimension, OBJ of the projected wireframe or JSON of
// the raw geometry.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/roffe/polyview/pkg/export"
	"github.com/roffe/polyview/pkg/polytope"
	"github.com/roffe/polyview/pkg/projection"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

var (
	outDir   = flag.String("out", "shapes", "output directory")
	dims     = flag.String("dims", "3,4,5,6", "comma separated dimensions")
	size     = flag.Float64("size", 1, "shape size")
	format   = flag.String("format", "obj", "obj, json or both")
	mode     = flag.String("projection", "perspective", "projection mode for obj output")
	viewDist = flag.Float64("view-distance", projection.DefaultViewDistance, "perspective view distance")
	poleDist = flag.Float64("pole-distance", projection.DefaultPoleDistance, "stereographic pole distance")
	workers  = flag.Int("workers", 4, "concurrent writers")
)

type job struct {
	shape polytope.Shape
	dim   int
}

func main() {
	flag.Parse()

	m, err := projection.ParseMode(*mode)
	if err != nil {
		log.Fatal(err)
	}
	cfg := projection.Config{Mode: m, ViewDistance: *viewDist, PoleDistance: *poleDist}

	var wantOBJ, wantJSON bool
	switch *format {
	case "obj":
		wantOBJ = true
	case "json":
		wantJSON = true
	case "both":
		wantOBJ, wantJSON = true, true
	default:
		log.Fatalf("unknown format %q", *format)
	}

	var jobs []job
	for _, d := range strings.Split(*dims, ",") {
		dim, err := strconv.Atoi(strings.TrimSpace(d))
		if err != nil {
			log.Fatalf("bad dimension %q: %v", d, err)
		}
		if dim < 2 {
			log.Fatalf("dimension %d out of range", dim)
		}
		for _, s := range polytope.Available(dim) {
			jobs = append(jobs, job{shape: s, dim: dim})
		}
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatal(err)
	}

	errg := new(errgroup.Group)
	errg.SetLimit(*workers)
	for _, j := range jobs {
		j := j
		errg.Go(func() error {
			return writeShape(j, cfg, wantOBJ, wantJSON)
		})
	}
	if err := errg.Wait(); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d shapes to %s", len(jobs), *outDir)
}

func writeShape(j job, cfg projection.Config, wantOBJ, wantJSON bool) error {
	g, err := polytope.New(j.shape, j.dim, *size)
	if err != nil {
		return err
	}
	base := fmt.Sprintf("%s-%dd", j.shape.Slug(), j.dim)
	if wantOBJ {
		if err := writeFile(filepath.Join(*outDir, base+".obj"), func(f *os.File) error {
			return export.WriteOBJ(f, g, cfg)
		}); err != nil {
			return fmt.Errorf("%s: %w", base, err)
		}
	}
	if wantJSON {
		if err := writeFile(filepath.Join(*outDir, base+".json"), func(f *os.File) error {
			return export.WriteJSON(f, g)
		}); err != nil {
			return fmt.Errorf("%s: %w", base, err)
		}
	}
	log.Println("wrote", base)
	return nil
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
