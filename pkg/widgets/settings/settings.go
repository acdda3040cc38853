// Package settings is the view settings panel. Every control writes
// straight to the fyne Preferences and applies live through the Config
// callbacks, so there is no separate apply step; constructing the
// widget replays the stored values through the same paths.
package settings

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/lusingander/colorpicker"
	"github.com/roffe/polyview/pkg/colors"
	"github.com/roffe/polyview/pkg/ebus"
	"github.com/roffe/polyview/pkg/widgets/spaceview"
)

const (
	prefsColorBlindMode  = "colorBlindMode"
	prefsBackgroundColor = "backgroundColor"
	prefsEdgeColor       = "edgeColor"
	prefsShowVertices    = "showVertices"
	prefsSpinSpeed       = "spinSpeed"
	prefsAutoUpdateCheck = "autoUpdateCheck"
)

const (
	defaultBackground = "#101016"
	defaultEdge       = "#5ec8ff"
)

type Config struct {
	OnBackgroundColor func(c color.Color)
	OnEdgeColor       func(c color.Color)
	OnShowVertices    func(show bool)
}

type Widget struct {
	widget.BaseWidget

	cfg *Config

	colorBlindMode  *widget.Select
	showVertices    *widget.Check
	autoUpdateCheck *widget.Check

	backgroundSwatch *canvas.Rectangle
	edgeSwatch       *canvas.Rectangle

	container *fyne.Container
}

func New(cfg *Config) *Widget {
	if cfg == nil {
		cfg = &Config{}
	}
	sw := &Widget{
		cfg: cfg,
	}
	sw.ExtendBaseWidget(sw)

	sw.colorBlindMode = sw.newColorBlindMode()
	sw.showVertices = sw.newShowVertices()
	sw.autoUpdateCheck = sw.newAutoUpdateCheck()

	backgroundRow := sw.newColorRow("Background color", prefsBackgroundColor, &sw.backgroundSwatch, cfg.OnBackgroundColor)
	edgeRow := sw.newColorRow("Edge color (3D shapes)", prefsEdgeColor, &sw.edgeSwatch, cfg.OnEdgeColor)

	sw.container = container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel("Color blind mode"), nil, sw.colorBlindMode),
		backgroundRow,
		edgeRow,
		widget.NewSeparator(),
		sw.showVertices,
		widget.NewSeparator(),
		sw.autoUpdateCheck,
	)

	sw.loadPreferences()
	return sw
}

func (sw *Widget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sw.container)
}

// Public API

func (sw *Widget) GetColorBlindMode() colors.ColorBlindMode {
	s := fyne.CurrentApp().Preferences().StringWithFallback(prefsColorBlindMode, "Normal")
	return colors.StringToColorBlindMode(s)
}

func (sw *Widget) GetShowVertices() bool {
	return sw.showVertices.Checked
}

func (sw *Widget) GetAutoUpdateCheck() bool {
	return sw.autoUpdateCheck.Checked
}

// GetSpinSpeed returns the stored speed in radians per second. The
// slider lives in the main window sidebar, this widget just owns the
// preference.
func (sw *Widget) GetSpinSpeed() float64 {
	deg := fyne.CurrentApp().Preferences().FloatWithFallback(prefsSpinSpeed, spaceview.DefaultSpinSpeed*180/math.Pi)
	return deg * math.Pi / 180
}

// SetSpinSpeed stores the speed, given in radians per second.
func (sw *Widget) SetSpinSpeed(radPerSec float64) {
	fyne.CurrentApp().Preferences().SetFloat(prefsSpinSpeed, radPerSec*180/math.Pi)
}

func (sw *Widget) GetBackgroundColor() color.RGBA {
	return prefsColor(prefsBackgroundColor, defaultBackground)
}

func (sw *Widget) GetEdgeColor() color.RGBA {
	return prefsColor(prefsEdgeColor, defaultEdge)
}

func (sw *Widget) newColorBlindMode() *widget.Select {
	return widget.NewSelect(colors.SupportedColorBlindModes[:], func(s string) {
		fyne.CurrentApp().Preferences().SetString(prefsColorBlindMode, s)
		ebus.Publish(ebus.TopicColorBlindMode, float64(sw.colorBlindMode.SelectedIndex()))
	})
}

func (sw *Widget) newShowVertices() *widget.Check {
	return widget.NewCheck("Show vertices", func(b bool) {
		fyne.CurrentApp().Preferences().SetBool(prefsShowVertices, b)
		if sw.cfg.OnShowVertices != nil {
			sw.cfg.OnShowVertices(b)
		}
	})
}

func (sw *Widget) newAutoUpdateCheck() *widget.Check {
	return widget.NewCheck("Check for updates on startup", func(b bool) {
		fyne.CurrentApp().Preferences().SetBool(prefsAutoUpdateCheck, b)
	})
}

// newColorRow builds a label + swatch + button row backed by one color
// preference. The picker applies on every change so the viewport
// follows along while dragging the hue.
func (sw *Widget) newColorRow(label, prefKey string, swatch **canvas.Rectangle, onChange func(color.Color)) fyne.CanvasObject {
	fallback := defaultBackground
	if prefKey == prefsEdgeColor {
		fallback = defaultEdge
	}
	rect := canvas.NewRectangle(prefsColor(prefKey, fallback))
	rect.SetMinSize(fyne.NewSize(32, 18))
	*swatch = rect

	btn := widget.NewButton("Change…", func() {
		picker := colorpicker.New(200, colorpicker.StyleHue)
		picker.SetOnChanged(func(c color.Color) {
			rect.FillColor = c
			rect.Refresh()
			fyne.CurrentApp().Preferences().SetString(prefKey, hexColor(c))
			if onChange != nil {
				onChange(c)
			}
		})
		cnv := fyne.CurrentApp().Driver().CanvasForObject(rect)
		var modal *widget.PopUp
		modal = widget.NewModalPopUp(container.NewVBox(
			picker,
			widget.NewButton("Close", func() {
				modal.Hide()
			}),
		), cnv)
		modal.Show()
	})

	return container.NewBorder(nil, nil, widget.NewLabel(label), container.NewHBox(rect, btn))
}

func (sw *Widget) loadPreferences() {
	loadPrefsSelect(sw.colorBlindMode, prefsColorBlindMode, "Normal")
	loadPrefsCheck(sw.showVertices, prefsShowVertices, false)
	loadPrefsCheck(sw.autoUpdateCheck, prefsAutoUpdateCheck, true)
}

func loadPrefsSelect(s *widget.Select, prefKey string, fallback string) {
	s.SetSelected(fyne.CurrentApp().Preferences().StringWithFallback(prefKey, fallback))
}

func loadPrefsCheck(box *widget.Check, prefKey string, fallback bool) {
	box.SetChecked(fyne.CurrentApp().Preferences().BoolWithFallback(prefKey, fallback))
}

func prefsColor(prefKey, fallback string) color.RGBA {
	s := fyne.CurrentApp().Preferences().StringWithFallback(prefKey, fallback)
	c, err := parseHexColor(s)
	if err != nil {
		c, _ = parseHexColor(fallback)
	}
	return c
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

func parseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("malformed color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, err
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
