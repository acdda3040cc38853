package windows

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	xwidget "fyne.io/x/fyne/widget"
	"github.com/roffe/polyview/pkg/polytope"
	"github.com/roffe/polyview/pkg/projection"
)

type mainWindowSelects struct {
	shapeLookup *xwidget.CompletionEntry
	shapeSelect *widget.Select
	dimSelect   *widget.Select
	projSelect  *widget.Select
}

type mainWindowSliders struct {
	size          *widget.Slider
	sizeValue     *widget.Label
	distance      *widget.Slider
	distanceLabel *widget.Label
	distanceValue *widget.Label
	spin          *widget.Slider
	spinValue     *widget.Label
}

func shapeNames(dim int) []string {
	var names []string
	for _, s := range polytope.Available(dim) {
		names = append(names, s.String())
	}
	return names
}

func modeNames() []string {
	var names []string
	for _, m := range projection.Modes() {
		names = append(names, m.String())
	}
	return names
}

func (mw *MainWindow) createSelects() {
	mw.selects.dimSelect = widget.NewSelect([]string{"3", "4", "5", "6"}, func(s string) {
		if s == "" {
			return
		}
		dim, err := strconv.Atoi(s)
		if err != nil {
			return
		}
		if !mw.startup {
			mw.app.Preferences().SetString(prefsSelectedDim, s)
		}
		names := shapeNames(dim)
		mw.selects.shapeSelect.Options = names
		mw.selects.shapeSelect.Refresh()
		if !slices.Contains(names, mw.selects.shapeSelect.Selected) {
			// The previous shape does not exist at this dimension.
			mw.selects.shapeSelect.SetSelected(polytope.Hypercube.String())
			return
		}
		mw.applyShape()
	})

	mw.selects.shapeSelect = widget.NewSelect(shapeNames(4), func(s string) {
		if s == "" {
			return
		}
		if !mw.startup {
			mw.app.Preferences().SetString(prefsSelectedShape, s)
		}
		mw.applyShape()
	})
	mw.selects.shapeSelect.Alignment = fyne.TextAlignLeading
	mw.selects.shapeSelect.PlaceHolder = "Select shape"

	mw.selects.projSelect = widget.NewSelect(modeNames(), func(s string) {
		if s == "" {
			return
		}
		m, err := projection.ParseMode(s)
		if err != nil {
			return
		}
		if !mw.startup {
			mw.app.Preferences().SetString(prefsProjectionMode, s)
		}
		mw.view.SetProjectionMode(m)
		prefs := mw.app.Preferences()
		if m == projection.Stereographic {
			mw.sliders.distanceLabel.SetText("Pole dist")
			mw.sliders.distance.SetValue(prefs.FloatWithFallback(prefsPoleDistance, projection.DefaultPoleDistance))
		} else {
			mw.sliders.distanceLabel.SetText("View dist")
			mw.sliders.distance.SetValue(prefs.FloatWithFallback(prefsViewDistance, projection.DefaultViewDistance))
		}
	})
}

func (mw *MainWindow) createSliders() {
	mw.sliders.sizeValue = widget.NewLabel("1.0")
	mw.sliders.size = widget.NewSlider(0.5, 3)
	mw.sliders.size.Step = 0.1
	mw.sliders.size.Value = 1
	mw.sliders.size.OnChanged = func(v float64) {
		mw.sliders.sizeValue.SetText(fmt.Sprintf("%.1f", v))
		mw.regenerate()
	}
	mw.sliders.size.OnChangeEnded = func(v float64) {
		if mw.startup {
			return
		}
		mw.app.Preferences().SetFloat(prefsShapeSize, v)
	}

	mw.sliders.distanceLabel = widget.NewLabel("View dist")
	mw.sliders.distanceValue = widget.NewLabel("2.0")
	mw.sliders.distance = widget.NewSlider(0.5, 6)
	mw.sliders.distance.Step = 0.1
	mw.sliders.distance.Value = projection.DefaultViewDistance
	mw.sliders.distance.OnChanged = mw.distanceChanged
	mw.sliders.distance.OnChangeEnded = func(v float64) {
		if mw.startup {
			return
		}
		key := prefsViewDistance
		if mw.selects.projSelect.Selected == projection.Stereographic.String() {
			key = prefsPoleDistance
		}
		mw.app.Preferences().SetFloat(key, v)
	}

	mw.sliders.spinValue = widget.NewLabel("")
	mw.sliders.spin = widget.NewSlider(0, 120)
	mw.sliders.spin.Step = 1
	mw.sliders.spin.Value = mw.settings.GetSpinSpeed() * 180 / math.Pi
	mw.sliders.spinValue.SetText(fmt.Sprintf("%.0f°/s", mw.sliders.spin.Value))
	mw.sliders.spin.OnChanged = func(v float64) {
		mw.sliders.spinValue.SetText(fmt.Sprintf("%.0f°/s", v))
		mw.view.SetSpinSpeed(v * math.Pi / 180)
	}
	mw.sliders.spin.OnChangeEnded = func(v float64) {
		mw.settings.SetSpinSpeed(v * math.Pi / 180)
		// The legend shows per plane speeds, they all just changed.
		mw.legend.Reload()
	}
}

func (mw *MainWindow) distanceChanged(v float64) {
	mw.sliders.distanceValue.SetText(fmt.Sprintf("%.1f", v))
	if mw.selects.projSelect.Selected == projection.Stereographic.String() {
		mw.view.SetPoleDistance(v)
		return
	}
	mw.view.SetViewDistance(v)
}

func (mw *MainWindow) sliderRows() fyne.CanvasObject {
	return container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel("Size"), mw.sliders.sizeValue, mw.sliders.size),
		container.NewBorder(nil, nil, mw.sliders.distanceLabel, mw.sliders.distanceValue, mw.sliders.distance),
		container.NewBorder(nil, nil, widget.NewLabel("Spin"), mw.sliders.spinValue, mw.sliders.spin),
	)
}

func (mw *MainWindow) newShapeTypeahead() {
	mw.selects.shapeLookup = xwidget.NewCompletionEntry([]string{})
	mw.selects.shapeLookup.PlaceHolder = "Search shapes"
	mw.selects.shapeLookup.OnChanged = func(s string) {
		// completion start for text length >= 2
		if len(s) < 2 {
			mw.selects.shapeLookup.HideCompletion()
			return
		}
		var results []string
		for _, shape := range polytope.Shapes() {
			if strings.Contains(strings.ToLower(shape.String()), strings.ToLower(s)) {
				results = append(results, shape.String())
			}
		}
		if len(results) == 0 {
			mw.selects.shapeLookup.HideCompletion()
			return
		}
		sort.Slice(results, func(i, j int) bool { return strings.ToLower(results[i]) < strings.ToLower(results[j]) })
		mw.selects.shapeLookup.SetOptions(results)
		mw.selects.shapeLookup.ShowCompletion()
	}
	mw.selects.shapeLookup.OnSubmitted = func(s string) {
		shape, err := polytope.ParseShape(s)
		if err != nil {
			return
		}
		if shape.FixedDimension() && mw.selects.dimSelect.Selected != "4" {
			mw.selects.dimSelect.SetSelected("4")
		}
		mw.selects.shapeSelect.SetSelected(shape.String())
		mw.selects.shapeLookup.SetText("")
	}
}
