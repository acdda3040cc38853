package windows

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/polyview/pkg/assets"
)

const (
	lastVersionKey = "lastVersion"
)

func (mw *MainWindow) whatsNew() {
	lastVersion := mw.app.Preferences().String(lastVersionKey)
	if lastVersion != mw.app.Metadata().Version {
		mw.showWhatsNew()
	}
	mw.app.Preferences().SetString(lastVersionKey, mw.app.Metadata().Version)
}

func (mw *MainWindow) showWhatsNew() {
	md := widget.NewRichTextFromMarkdown(assets.WhatsNew)
	md.Wrapping = fyne.TextWrapWord
	w := mw.app.NewWindow("What's new")
	w.SetContent(container.NewVScroll(md))
	w.Resize(fyne.NewSize(600, 400))
	w.Show()
}
