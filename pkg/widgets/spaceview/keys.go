package spaceview

import (
	"fyne.io/fyne/v2"
	"github.com/roffe/polyview/pkg/colors"
)

var _ fyne.Focusable = (*Spaceview)(nil)
var _ fyne.Tappable = (*Spaceview)(nil)

func (sv *Spaceview) Tapped(_ *fyne.PointEvent) {
	fyne.CurrentApp().Driver().CanvasForObject(sv).Focus(sv)
}

func (sv *Spaceview) TappedSecondary(_ *fyne.PointEvent) {
}

func (sv *Spaceview) FocusGained() {
	sv.focused = true
}

func (sv *Spaceview) FocusLost() {
	sv.focused = false
}

func (sv *Spaceview) Focused() bool {
	return sv.focused
}

func (sv *Spaceview) TypedRune(_ rune) {
}

// TypedKey handles the viewport shortcuts: space pauses the spin, R
// resets the view, V toggles vertex dots, D cycles the color-blind
// mode and J kicks the jiggle.
func (sv *Spaceview) TypedKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeySpace:
		sv.TogglePaused()
	case "R":
		sv.ResetView()
	case "V":
		sv.mu.Lock()
		sv.showVertices = !sv.showVertices
		sv.mu.Unlock()
	case "D":
		sv.mu.Lock()
		sv.colorMode = (sv.colorMode + 1) % colors.ColorBlindMode(len(colors.SupportedColorBlindModes))
		sv.mu.Unlock()
	case "J":
		sv.ToggleJiggle()
	}
}
