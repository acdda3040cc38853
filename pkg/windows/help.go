package windows

import (
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

func Help() *container.AppTabs {
	pv, _ := url.Parse("https://github.com/roffe/polyview")
	wiki, _ := url.Parse("https://github.com/roffe/polyview/wiki")

	pvLink := widget.NewHyperlink("github.com/roffe/polyview", pv)
	wikiLink := widget.NewHyperlink("Online manual", wiki)

	tabs := container.NewAppTabs(
		container.NewTabItemWithIcon("About", theme.InfoIcon(),
			container.NewVBox(
				pvLink,
				widget.NewLabel("Version: "+fyne.CurrentApp().Metadata().Version),
				widget.NewLabel("A wireframe viewer for shapes with more sides than sense."),
				widget.NewLabel("Rotation happens in planes, not around axes. Four dimensions"),
				widget.NewLabel("have six of them, six dimensions have fifteen."),
				wikiLink,
			),
		),
		container.NewTabItemWithIcon("Keyboard Shortcuts", theme.VisibilityIcon(), container.NewGridWithColumns(2,
			container.NewVBox(
				widget.NewLabel("The viewport must have focus, click it first"),
				widget.NewSeparator(),
				widget.NewLabel("Space: Pause/resume spin"),
				widget.NewLabel("R: Reset angles and camera"),
				widget.NewLabel("V: Toggle vertex dots"),
				widget.NewLabel("D: Cycle color vision mode"),
				widget.NewLabel("J: Kick the jiggle springs"),
			),
			container.NewVBox(
				widget.NewLabel("Left drag: Orbit"),
				widget.NewLabel("Right drag: Roll"),
				widget.NewLabel("Middle drag: Pan"),
				widget.NewLabel("Scroll: Zoom"),
				widget.NewSeparator(),
				widget.NewLabel("Ctrl+1: Settings"),
				widget.NewLabel("Ctrl+2: Event monitor"),
				widget.NewLabel("Alt+Enter: Fullscreen"),
			)),
		),
	)
	return tabs
}
