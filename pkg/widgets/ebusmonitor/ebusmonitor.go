// Package ebusmonitor shows every bus topic with its latest value in a
// grid. Handy for checking what the rest of the app is publishing.
package ebusmonitor

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/polyview/pkg/colors"
	"github.com/roffe/polyview/pkg/ebus"
)

const flushInterval = 100 * time.Millisecond

type Monitor struct {
	widget.BaseWidget

	grid *fyne.Container

	items map[string]*canvas.Text
	order []string

	latest map[string]float64
	dirty  bool

	cancel    func()
	quit      chan struct{}
	startOnce sync.Once
	closeOnce sync.Once

	mu sync.Mutex
}

// New creates a monitor subscribed to all topics. Updates are
// buffered and flushed to the widget a few times per second so a
// chatty publisher cannot flood the UI thread.
func New() *Monitor {
	m := &Monitor{
		grid:   container.NewAdaptiveGrid(4),
		items:  make(map[string]*canvas.Text),
		latest: make(map[string]float64),
		quit:   make(chan struct{}),
	}
	m.ExtendBaseWidget(m)
	m.cancel = ebus.SubscribeAllFunc(m.record)
	return m
}

func (m *Monitor) Close() {
	m.closeOnce.Do(func() {
		m.cancel()
		close(m.quit)
	})
}

func (m *Monitor) record(topic string, value float64) {
	m.mu.Lock()
	m.latest[topic] = value
	m.dirty = true
	m.mu.Unlock()
}

func (m *Monitor) flush() {
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()
	for {
		select {
		case <-m.quit:
			return
		case <-ticker.C:
			m.mu.Lock()
			if !m.dirty {
				m.mu.Unlock()
				continue
			}
			snapshot := make(map[string]float64, len(m.latest))
			for topic, value := range m.latest {
				snapshot[topic] = value
			}
			m.dirty = false
			m.mu.Unlock()
			fyne.Do(func() {
				m.apply(snapshot)
			})
		}
	}
}

func (m *Monitor) apply(snapshot map[string]float64) {
	added := false
	for topic, value := range snapshot {
		if itm, ok := m.items[topic]; ok {
			itm.Text = fmt.Sprintf("%s: %.3g", topic, value)
			itm.Refresh()
			continue
		}
		m.items[topic] = canvas.NewText(fmt.Sprintf("%s: %.3g", topic, value), colors.GetColor(topic))
		m.order = append(m.order, topic)
		added = true
	}
	if added {
		sort.Strings(m.order)
		objs := make([]fyne.CanvasObject, 0, len(m.items))
		for _, topic := range m.order {
			objs = append(objs, m.items[topic])
		}
		m.grid.Objects = objs
		m.grid.Refresh()
	}
}

func (m *Monitor) CreateRenderer() fyne.WidgetRenderer {
	m.startOnce.Do(func() {
		go m.flush()
	})
	return &monitorRenderer{m: m}
}

type monitorRenderer struct {
	m    *Monitor
	size fyne.Size
}

func (mr *monitorRenderer) Layout(space fyne.Size) {
	if mr.size == space {
		return
	}
	mr.size = space
	mr.m.grid.Resize(space)
}

func (mr *monitorRenderer) MinSize() fyne.Size {
	return fyne.NewSize(350, 175)
}

func (mr *monitorRenderer) Refresh() {
}

func (mr *monitorRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{mr.m.grid}
}

func (mr *monitorRenderer) Destroy() {
}
