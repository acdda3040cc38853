package windows

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/polyview/pkg/ebus"
)

type mainWindowStats struct {
	verticesLabel *widget.Label
	edgesLabel    *widget.Label
	facesLabel    *widget.Label
	fpsLabel      *widget.Label

	cancels []func()
}

// createStats wires the counter labels to the bus. The viewport
// publishes fresh counts whenever the geometry changes, so the labels
// follow shape and dimension switches without being told.
func (mw *MainWindow) createStats() {
	mw.stats.verticesLabel = &widget.Label{Alignment: fyne.TextAlignLeading}
	mw.stats.edgesLabel = &widget.Label{Alignment: fyne.TextAlignLeading}
	mw.stats.facesLabel = &widget.Label{Alignment: fyne.TextAlignLeading}
	mw.stats.fpsLabel = &widget.Label{Alignment: fyne.TextAlignLeading}

	sub := func(topic, format string, label *widget.Label) {
		mw.stats.cancels = append(mw.stats.cancels, ebus.SubscribeFunc(topic, func(value float64) {
			fyne.Do(func() {
				label.SetText(fmt.Sprintf(format, int(value)))
			})
		}))
	}

	sub(ebus.TopicVertexCount, "V: %d", mw.stats.verticesLabel)
	sub(ebus.TopicEdgeCount, "E: %d", mw.stats.edgesLabel)
	sub(ebus.TopicFaceCount, "F: %d", mw.stats.facesLabel)
	sub(ebus.TopicFPS, "Fps: %d", mw.stats.fpsLabel)
}
