package export

import (
	"bytes"
	"image"
	"image/png"
	"sync"

	"golang.design/x/clipboard"
)

var (
	clipOnce sync.Once
	clipErr  error
)

// CopyImage puts a PNG of the viewport on the system clipboard. Fyne's
// clipboard only carries text, so this goes through the native one.
func CopyImage(img image.Image) error {
	clipOnce.Do(func() {
		clipErr = clipboard.Init()
	})
	if clipErr != nil {
		return clipErr
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtImage, buf.Bytes())
	return nil
}
