package windows

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"github.com/roffe/polyview/pkg/export"
	"github.com/roffe/polyview/pkg/snd"
	"github.com/roffe/polyview/pkg/update"
	"github.com/roffe/polyview/pkg/widgets/ebusmonitor"
	"github.com/skratchdot/open-golang/open"
	sdialog "github.com/sqweek/dialog"
)

func (mw *MainWindow) setupMenu() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export OBJ...", mw.exportOBJ),
		fyne.NewMenuItem("Export JSON...", mw.exportJSON),
		fyne.NewMenuItem("Export snapshot...", mw.exportPNG),
		fyne.NewMenuItem("Copy view", mw.copyView),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Ambient audio...", mw.toggleAmbient),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings", mw.openSettings),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Shortcuts", func() {
			mw.openHelp(1)
		}),
		fyne.NewMenuItem("Online manual", func() {
			if err := open.Run("https://github.com/roffe/polyview/wiki"); err != nil {
				mw.Error(fmt.Errorf("failed to open manual: %w", err))
			}
		}),
		fyne.NewMenuItem("Check for updates", func() {
			go update.UpdateCheck(mw.app, mw.Window)
		}),
		fyne.NewMenuItem("What's new", mw.showWhatsNew),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("About", func() {
			mw.openHelp(0)
		}),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}

// The export dialogs are native and block, so they run off the UI
// thread like the other file pickers in this menu.

func (mw *MainWindow) exportOBJ() {
	g := mw.view.RotatedGeometry()
	cfg := mw.view.Projection()
	go export.SaveOBJ(g, cfg, func(filename string) {
		snd.Ding()
		mw.Log("wrote " + filename)
	})
}

func (mw *MainWindow) exportJSON() {
	g := mw.view.Geometry()
	go export.SaveJSON(g, func(filename string) {
		snd.Ding()
		mw.Log("wrote " + filename)
	})
}

func (mw *MainWindow) exportPNG() {
	img := mw.view.Snapshot()
	go export.SavePNG(img, func(filename string) {
		snd.Ding()
		mw.Log("wrote " + filename)
	})
}

func (mw *MainWindow) copyView() {
	if err := export.CopyImage(mw.view.Snapshot()); err != nil {
		mw.Error(fmt.Errorf("copy view: %w", err))
		return
	}
	snd.Ding()
	mw.Log("view copied to clipboard")
}

func (mw *MainWindow) toggleAmbient() {
	if mw.ambient != nil {
		mw.ambient.Stop()
		mw.ambient = nil
		mw.Log("ambient audio stopped")
		return
	}
	go func() {
		filename, err := sdialog.File().Filter("MP3 file", "mp3").Load()
		if err != nil {
			if err.Error() == "Cancelled" {
				return
			}
			mw.Error(err)
			return
		}
		amb, err := snd.PlayAmbient(filename)
		if err != nil {
			mw.Error(err)
			return
		}
		mw.ambient = amb
		mw.Log("ambient: " + filepath.Base(filename))
	}()
}

func (mw *MainWindow) openSettings() {
	if mw.settingsWin != nil {
		mw.settingsWin.RequestFocus()
		return
	}
	w := mw.app.NewWindow("Settings")
	w.SetContent(mw.settings)
	w.Resize(fyne.NewSize(420, 400))
	w.SetOnClosed(func() {
		mw.settingsWin = nil
	})
	mw.settingsWin = w
	w.Show()
}

func (mw *MainWindow) openMonitor() {
	if mw.monitorWin != nil {
		mw.monitorWin.RequestFocus()
		return
	}
	mon := ebusmonitor.New()
	w := mw.app.NewWindow("Event monitor")
	w.SetContent(mon)
	w.Resize(fyne.NewSize(500, 220))
	w.SetOnClosed(func() {
		mon.Close()
		mw.monitorWin = nil
	})
	mw.monitorWin = w
	w.Show()
}

func (mw *MainWindow) openHelp(tab int) {
	if mw.helpWin != nil {
		mw.helpWin.RequestFocus()
		return
	}
	tabs := Help()
	tabs.SelectIndex(tab)
	w := mw.app.NewWindow("Help")
	w.SetContent(tabs)
	w.Resize(fyne.NewSize(560, 420))
	w.SetOnClosed(func() {
		mw.helpWin = nil
	})
	mw.helpWin = w
	w.Show()
}
