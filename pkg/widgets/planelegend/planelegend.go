// Package planelegend lists the rotation planes beside the viewport:
// a live angle readout per plane, tap to toggle that plane's spin, and
// an entry for its speed in degrees per second.
package planelegend

import (
	"fmt"
	"math"
	"strconv"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/polyview/pkg/colors"
	"github.com/roffe/polyview/pkg/ebus"
	"github.com/roffe/polyview/pkg/widgets/numericentry"
	"github.com/roffe/polyview/pkg/widgets/spaceview"
)

type Legend struct {
	widget.BaseWidget

	view *spaceview.Spaceview

	// OnToggle is called after a tap changed a plane's spin state.
	OnToggle func(plane string, active bool)

	rows    *fyne.Container
	cancels []func()
	mu      sync.Mutex
}

func New(view *spaceview.Spaceview) *Legend {
	l := &Legend{
		view: view,
		rows: container.NewVBox(),
	}
	l.ExtendBaseWidget(l)
	l.Reload()
	return l
}

// Reload rebuilds the rows after the viewport changed dimension.
func (l *Legend) Reload() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, cancel := range l.cancels {
		cancel()
	}
	l.cancels = l.cancels[:0]
	l.rows.RemoveAll()
	for _, name := range l.view.PlaneNames() {
		l.rows.Add(l.newRow(name))
	}
	l.rows.Refresh()
}

// Close drops the angle subscriptions.
func (l *Legend) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, cancel := range l.cancels {
		cancel()
	}
	l.cancels = nil
}

func (l *Legend) newRow(plane string) fyne.CanvasObject {
	tt := NewTappableText(plane, colors.GetColor(plane), l.view.PlaneActive(plane), func(enabled bool) {
		l.view.SetPlaneActive(plane, enabled)
		if f := l.OnToggle; f != nil {
			f(plane, enabled)
		}
	}, nil)
	tt.SetTextSize(11)

	cancel := ebus.SubscribeFunc(ebus.AngleTopic(plane)+".deg", func(deg float64) {
		fyne.Do(func() {
			tt.SetText(fmt.Sprintf("%s %6.1f°", plane, deg))
		})
	})
	l.cancels = append(l.cancels, cancel)

	speed := numericentry.New()
	speed.SetText(strconv.FormatFloat(l.view.PlaneSpeed(plane)*180/math.Pi, 'f', 1, 64))
	speed.OnSubmitted = func(_ string) {
		degPerSec, err := speed.Value()
		if err != nil {
			return
		}
		l.view.SetPlaneSpeed(plane, degPerSec*math.Pi/180)
	}

	return container.NewBorder(nil, nil, nil, speed, tt)
}

func (l *Legend) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewVScroll(l.rows))
}
