package spaceview

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

var _ desktop.Hoverable = (*Spaceview)(nil)
var _ desktop.Mouseable = (*Spaceview)(nil)
var _ fyne.Scrollable = (*Spaceview)(nil)

const (
	rotationScale = 0.5
	rollScale     = 0.3
	panScale      = 0.5
)

func (sv *Spaceview) MouseIn(_ *desktop.MouseEvent) {
}

func (sv *Spaceview) MouseOut() {
}

func (sv *Spaceview) MouseMoved(event *desktop.MouseEvent) {
	dx := float64(event.Position.X - sv.lastMouseX)
	dy := float64(event.Position.Y - sv.lastMouseY)

	if event.Button&desktop.MouseButtonPrimary == desktop.MouseButtonPrimary {
		// Primary button: vertical drag tilts toward/away (pitch),
		// horizontal drag turns around the vertical axis (yaw).
		sv.mu.Lock()
		sv.camera.rotate(-dy*rotationScale*degree, dx*rotationScale*degree, 0)
		sv.mu.Unlock()
	} else if event.Button&desktop.MouseButtonSecondary == desktop.MouseButtonSecondary {
		// Secondary button: roll.
		sv.mu.Lock()
		sv.camera.rotate(0, 0, (dx+dy)*rollScale*degree)
		sv.mu.Unlock()
	} else if event.Button&desktop.MouseButtonTertiary == desktop.MouseButtonTertiary {
		// Tertiary button (middle): pan.
		// Swap left-right direction by negating dx
		sv.mu.Lock()
		sv.camera.pan(-dx*panScale, dy*panScale)
		sv.mu.Unlock()
	}

	sv.lastMouseX = event.Position.X
	sv.lastMouseY = event.Position.Y
}

func (sv *Spaceview) MouseDown(event *desktop.MouseEvent) {
	sv.lastMouseX = event.Position.X
	sv.lastMouseY = event.Position.Y
}

func (sv *Spaceview) MouseUp(_ *desktop.MouseEvent) {
}

func (sv *Spaceview) Scrolled(event *fyne.ScrollEvent) {
	sv.mu.Lock()
	if event.Scrolled.DY > 0 {
		sv.camera.scale(1.1)
	} else {
		sv.camera.scale(0.9)
	}
	sv.mu.Unlock()
}
