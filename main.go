package main

import (
	"image/color"
	"log"
	"net/url"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/roffe/polyview/pkg/polytope"
	"github.com/roffe/polyview/pkg/update"
	"github.com/roffe/polyview/pkg/windows"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

func main() {
	a := app.NewWithID("com.roffe.polyview")
	a.Settings().SetTheme(&myTheme{})

	// An optional shape on the command line overrides the remembered one,
	// slugs and display names both work.
	var shapeName string
	if len(os.Args) > 1 {
		shape, err := polytope.ParseShape(os.Args[1])
		if err != nil {
			log.Println(err)
		} else {
			shapeName = shape.String()
		}
	}

	mw := windows.NewMainWindow(a, shapeName)

	if a.Preferences().BoolWithFallback("autoUpdateCheck", true) {
		go updateCheck(a, mw)
	}
	mw.ShowAndRun()
}

func updateCheck(a fyne.App, mw fyne.Window) {
	doUpdateCheck := true
	nextUpdateCheck := a.Preferences().String("nextUpdateCheck")
	ignoreVersion := a.Preferences().String("ignoreVersion")
	if nextUpdateCheck != "" {
		if nextCheckTime, err := time.Parse(time.RFC3339, nextUpdateCheck); err == nil {
			if time.Now().Before(nextCheckTime) {
				doUpdateCheck = false
			}
		}
	}
	if doUpdateCheck {
		if isLatest, latestVersion := update.IsLatest("v" + a.Metadata().Version); !isLatest {
			if ignoreVersion == latestVersion {
				return
			}
			u, err := url.Parse("https://github.com/roffe/polyview/releases/latest")
			if err != nil {
				panic(err)
			}
			fyne.Do(func() {
				link := widget.NewHyperlink("Releases page", u)
				link.Alignment = fyne.TextAlignCenter
				link.TextStyle = fyne.TextStyle{Bold: true}
				dialog.ShowCustomConfirm(
					"Update available!",
					"Remind me", "Don't remind me",
					container.NewVBox(
						widget.NewLabel("There is a new version available"),
						link,
					),
					func(choice bool) {
						if !choice {
							a.Preferences().SetString("ignoreVersion", latestVersion)
						}
					},
					mw,
				)
			})
		}
		if tt, err := time.Now().Add(96 * time.Hour).MarshalText(); err == nil {
			a.Preferences().SetString("nextUpdateCheck", string(tt))
		}
	}
}

type myTheme struct{}

func (m myTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameBackground {
		return color.RGBA{R: 20, G: 20, B: 26, A: 0xff}
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

func (m myTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (m myTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (m myTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameSeparatorThickness {
		return 0
	}
	if name == theme.SizeNameScrollBarSmall {
		return 5
	}
	if name == theme.SizeNameScrollBar {
		return 8
	}
	return theme.DefaultTheme().Size(name)
}
