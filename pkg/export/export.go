package export

import (
	"image"
	"log"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	sdialog "github.com/sqweek/dialog"

	"github.com/roffe/polyview/pkg/polytope"
	"github.com/roffe/polyview/pkg/projection"
	"github.com/roffe/polyview/pkg/snd"
)

// SaveOBJ asks for a filename and writes the projected wireframe. Runs
// the native dialog off the UI goroutine like every dialog here; the
// optional onDone runs on the UI goroutine after a successful write.
func SaveOBJ(g polytope.Geometry, cfg projection.Config, onDone func(filename string)) {
	go saveWith("Wavefront OBJ", ".obj", onDone, func(f *os.File) error {
		return WriteOBJ(f, g, cfg)
	})
}

// SaveJSON asks for a filename and dumps the raw geometry.
func SaveJSON(g polytope.Geometry, onDone func(filename string)) {
	go saveWith("JSON geometry", ".json", onDone, func(f *os.File) error {
		return WriteJSON(f, g)
	})
}

// SavePNG asks for a filename and writes a viewport snapshot.
func SavePNG(img image.Image, onDone func(filename string)) {
	go saveWith("PNG image", ".png", onDone, func(f *os.File) error {
		return WritePNG(f, img)
	})
}

func saveWith(desc, ext string, onDone func(filename string), write func(f *os.File) error) {
	filename, err := sdialog.File().Filter(desc, ext[1:]).Save()
	if err != nil {
		if err.Error() == "Cancelled" {
			return
		}
		log.Println(err)
		return
	}
	if !strings.HasSuffix(filename, ext) {
		filename += ext
	}
	f, err := os.Create(filename)
	if err != nil {
		log.Println(err)
		return
	}
	defer f.Close()
	if err := write(f); err != nil {
		log.Println(err)
		return
	}
	snd.Ding()
	if onDone != nil {
		fyne.Do(func() {
			onDone(filename)
		})
	}
}
