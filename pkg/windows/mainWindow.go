package windows

import (
	"fmt"
	"image/color"
	"log"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/polyview/pkg/assets"
	"github.com/roffe/polyview/pkg/colors"
	"github.com/roffe/polyview/pkg/ebus"
	"github.com/roffe/polyview/pkg/layout"
	"github.com/roffe/polyview/pkg/polytope"
	"github.com/roffe/polyview/pkg/projection"
	"github.com/roffe/polyview/pkg/snd"
	"github.com/roffe/polyview/pkg/widgets/planelegend"
	"github.com/roffe/polyview/pkg/widgets/settings"
	"github.com/roffe/polyview/pkg/widgets/spaceview"
)

const (
	prefsSelectedShape  = "selectedShape"
	prefsSelectedDim    = "selectedDimension"
	prefsProjectionMode = "projectionMode"
	prefsShapeSize      = "shapeSize"
	prefsViewDistance   = "viewDistance"
	prefsPoleDistance   = "poleDistance"
)

var _ fyne.Tappable = (*secretText)(nil)

type secretText struct {
	*widget.Label
	tappedTimes int
	SecretFunc  func()
}

func (s *secretText) Tapped(*fyne.PointEvent) {
	s.tappedTimes++
	if s.tappedTimes >= 10 {
		t := fyne.NewStaticResource("icon.svg", assets.Icon)
		cv := canvas.NewImageFromResource(t)
		cv.SetMinSize(fyne.NewSize(0, 0))
		cont := container.NewStack(cv)
		s.tappedTimes = 0
		if f := s.SecretFunc; f != nil {
			f()
		}
		dialog.ShowCustom("You found hyperspin", "Whee", cont, fyne.CurrentApp().Driver().AllWindows()[0])
		an := canvas.NewSizeAnimation(fyne.NewSize(0, 0), fyne.NewSize(370, 370), time.Second, func(size fyne.Size) {
			cv.Resize(size)
		})
		an.Start()
	}
}

type MainWindow struct {
	fyne.Window
	app fyne.App

	view     *spaceview.Spaceview
	legend   *planelegend.Legend
	settings *settings.Widget

	selects *mainWindowSelects
	sliders *mainWindowSliders
	stats   *mainWindowStats

	planeBox *fyne.Container
	checks   map[string]*widget.Check

	statusText *secretText

	ambient *snd.Ambient

	settingsWin fyne.Window
	monitorWin  fyne.Window
	helpWin     fyne.Window

	content *fyne.Container

	cancels []func()

	startup bool
}

func NewMainWindow(app fyne.App, shapeName string) *MainWindow {
	mw := &MainWindow{
		Window: app.NewWindow("polyview"),
		app:    app,

		selects: &mainWindowSelects{},
		sliders: &mainWindowSliders{},
		stats:   &mainWindowStats{},

		checks: make(map[string]*widget.Check),

		statusText: &secretText{Label: widget.NewLabel("Flatland was a warning, not a manual")},
	}

	if err := snd.Init(); err != nil {
		log.Println("audio init:", err)
	}

	g, err := polytope.New(polytope.Hypercube, 4, 1)
	if err != nil {
		// The tesseract generator cannot fail, but keep the window usable.
		mw.Error(err)
	}
	mw.view = spaceview.New(g)
	mw.legend = planelegend.New(mw.view)
	mw.legend.OnToggle = func(plane string, active bool) {
		mw.syncPlaneChecks()
	}

	mw.statusText.SecretFunc = mw.hyperspin

	mw.settings = settings.New(&settings.Config{
		OnBackgroundColor: func(c color.Color) {
			mw.view.SetBackgroundColor(toRGBA(c))
		},
		OnEdgeColor: func(c color.Color) {
			mw.view.SetEdgeColor(toRGBA(c))
		},
		OnShowVertices: mw.view.SetShowVertices,
	})

	mw.cancels = append(mw.cancels, ebus.SubscribeFunc(ebus.TopicColorBlindMode, func(v float64) {
		mw.view.SetColorBlindMode(colors.ColorBlindMode(int(v)))
	}))

	mw.createSelects()
	mw.createSliders()
	mw.createStats()
	mw.newShapeTypeahead()
	mw.setupMenu()

	mw.applySettings()

	mw.startup = true
	mw.loadPrefs(shapeName)
	mw.startup = false

	mw.rebuildPlaneChecks()

	mw.SetCloseIntercept(mw.closeIntercept)

	mw.render()

	mw.SetPadded(true)
	mw.SetContent(mw.content)
	mw.Resize(fyne.NewSize(1000, 700))
	mw.CenterOnScreen()
	mw.SetMaster()

	mw.whatsNew()

	ctrl1 := &desktop.CustomShortcut{KeyName: fyne.Key1, Modifier: fyne.KeyModifierControl}
	ctrl2 := &desktop.CustomShortcut{KeyName: fyne.Key2, Modifier: fyne.KeyModifierControl}
	altEnter := &desktop.CustomShortcut{KeyName: fyne.KeyReturn, Modifier: fyne.KeyModifierAlt}

	mw.Window.Canvas().AddShortcut(ctrl1, func(shortcut fyne.Shortcut) {
		mw.openSettings()
	})

	mw.Window.Canvas().AddShortcut(ctrl2, func(shortcut fyne.Shortcut) {
		mw.openMonitor()
	})

	mw.Window.Canvas().AddShortcut(altEnter, func(shortcut fyne.Shortcut) {
		mw.Window.SetFullScreen(!mw.Window.FullScreen())
	})

	return mw
}

// applySettings pushes the persisted view settings into a fresh viewport.
func (mw *MainWindow) applySettings() {
	mw.view.SetColorBlindMode(mw.settings.GetColorBlindMode())
	mw.view.SetBackgroundColor(mw.settings.GetBackgroundColor())
	mw.view.SetEdgeColor(mw.settings.GetEdgeColor())
	mw.view.SetShowVertices(mw.settings.GetShowVertices())
	mw.view.SetSpinSpeed(mw.settings.GetSpinSpeed())
}

func (mw *MainWindow) render() {
	sidebar := container.NewBorder(
		container.NewVBox(
			widget.NewLabelWithStyle("Rotation planes", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			mw.planeBox,
			widget.NewSeparator(),
			mw.sliderRows(),
			widget.NewSeparator(),
			widget.NewLabelWithStyle("Angles", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		),
		nil,
		nil,
		nil,
		mw.legend,
	)

	mw.content = container.NewBorder(
		container.NewHBox(
			container.NewBorder(nil, nil, widget.NewLabel("Dim"), nil, mw.selects.dimSelect),
			container.NewBorder(nil, nil, widget.NewLabel("Shape"), nil, mw.selects.shapeSelect),
			container.NewBorder(nil, nil, widget.NewLabel("Projection"), nil, mw.selects.projSelect),
			widget.NewSeparator(),
			layout.NewFixedWidth(170, mw.selects.shapeLookup),
			widget.NewButtonWithIcon("", theme.MediaPauseIcon(), func() {
				mw.view.TogglePaused()
			}),
			widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() {
				mw.view.ResetView()
			}),
		),
		container.NewBorder(
			nil,
			nil,
			nil,
			container.NewHBox(
				container.NewGridWithColumns(4,
					mw.stats.verticesLabel,
					mw.stats.edgesLabel,
					mw.stats.facesLabel,
					mw.stats.fpsLabel,
				),
				widget.NewButtonWithIcon("", theme.ComputerIcon(), mw.openMonitor),
			),
			mw.statusText,
		),
		nil,
		layout.NewFixedWidth(230, sidebar),
		mw.view,
	)
}

// hyperspin is the reward for mashing the status bar: every plane on and
// a solid kick to the springs.
func (mw *MainWindow) hyperspin() {
	for _, name := range mw.view.PlaneNames() {
		mw.view.SetPlaneActive(name, true)
	}
	mw.view.SetPaused(false)
	mw.view.ToggleJiggle()
	mw.syncPlaneChecks()
	mw.legend.Reload()
}

func (mw *MainWindow) applyShape() {
	shapeName := mw.selects.shapeSelect.Selected
	dimStr := mw.selects.dimSelect.Selected
	if shapeName == "" || dimStr == "" {
		return
	}
	s, err := polytope.ParseShape(shapeName)
	if err != nil {
		mw.Error(err)
		return
	}
	dim, err := strconv.Atoi(dimStr)
	if err != nil {
		mw.Error(err)
		return
	}
	g, err := polytope.New(s, dim, mw.sliders.size.Value)
	if err != nil {
		mw.Error(err)
		return
	}
	mw.view.SetGeometry(g)
	mw.rebuildPlaneChecks()
	mw.legend.Reload()
	mw.setTitle(s.String())
}

// regenerate rebuilds the current shape without touching the plane
// controls, for size changes where the plane set cannot differ.
func (mw *MainWindow) regenerate() {
	shapeName := mw.selects.shapeSelect.Selected
	dimStr := mw.selects.dimSelect.Selected
	if shapeName == "" || dimStr == "" {
		return
	}
	s, err := polytope.ParseShape(shapeName)
	if err != nil {
		return
	}
	dim, err := strconv.Atoi(dimStr)
	if err != nil {
		return
	}
	g, err := polytope.New(s, dim, mw.sliders.size.Value)
	if err != nil {
		return
	}
	mw.view.SetGeometry(g)
}

func (mw *MainWindow) rebuildPlaneChecks() {
	if mw.planeBox == nil {
		mw.planeBox = container.NewGridWithColumns(3)
	}
	mw.planeBox.RemoveAll()
	mw.checks = make(map[string]*widget.Check)
	for _, name := range mw.view.PlaneNames() {
		name := name
		check := widget.NewCheck(name, func(b bool) {
			mw.view.SetPlaneActive(name, b)
			mw.legend.Reload()
		})
		check.Checked = mw.view.PlaneActive(name)
		mw.checks[name] = check
		mw.planeBox.Add(check)
	}
	mw.planeBox.Refresh()
}

// syncPlaneChecks refreshes the checkboxes without firing their
// callbacks after the legend changed a plane.
func (mw *MainWindow) syncPlaneChecks() {
	for name, check := range mw.checks {
		check.Checked = mw.view.PlaneActive(name)
		check.Refresh()
	}
}

func (mw *MainWindow) setTitle(str string) {
	meta := mw.app.Metadata()
	mw.SetTitle(fmt.Sprintf("polyview v%s - %s", meta.Version, str))
}

func (mw *MainWindow) loadPrefs(shapeName string) {
	prefs := mw.app.Preferences()

	mw.selects.dimSelect.SetSelected(prefs.StringWithFallback(prefsSelectedDim, "4"))
	if shapeName == "" {
		shapeName = prefs.StringWithFallback(prefsSelectedShape, polytope.Hypercube.String())
	} else if s, err := polytope.ParseShape(shapeName); err == nil && s.FixedDimension() {
		// A 4D only shape on the command line wins over the remembered dimension.
		mw.selects.dimSelect.SetSelected("4")
	}
	mw.selects.shapeSelect.SetSelected(shapeName)
	// The projection callback loads the matching distance into the slider.
	mw.selects.projSelect.SetSelected(prefs.StringWithFallback(prefsProjectionMode, projection.Perspective.String()))

	mw.sliders.size.SetValue(prefs.FloatWithFallback(prefsShapeSize, 1))
}

func (mw *MainWindow) closeIntercept() {
	if mw.ambient != nil {
		mw.ambient.Stop()
	}
	if mw.monitorWin != nil {
		mw.monitorWin.Close()
	}
	if mw.settingsWin != nil {
		mw.settingsWin.Close()
	}
	if mw.helpWin != nil {
		mw.helpWin.Close()
	}
	for _, cancel := range mw.cancels {
		cancel()
	}
	for _, cancel := range mw.stats.cancels {
		cancel()
	}
	mw.legend.Close()
	mw.view.Close()
	mw.Window.Close()
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func (mw *MainWindow) Log(s string) {
	log.Println(s)
	fyne.Do(func() {
		mw.statusText.SetText(s)
	})
}

func (mw *MainWindow) Error(err error) {
	log.Println("error:", err)
	fyne.Do(func() {
		dialog.ShowError(err, mw.Window)
	})
}
