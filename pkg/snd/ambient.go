package snd

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/go-mp3"
)

// Ambient is a looping mp3 played behind the viewport until stopped.
type Ambient struct {
	player   *oto.Player
	file     *os.File
	stopOnce sync.Once
	quit     chan struct{}
}

// PlayAmbient starts looping the mp3 at path. The caller keeps the
// returned handle and stops it when the mode is toggled off.
func PlayAmbient(path string) (*Ambient, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ambient open: %w", err)
	}
	decodedMp3, err := mp3.NewDecoder(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mp3.NewDecoder failed: %w", err)
	}
	a := &Ambient{
		player: NewPlayer(decodedMp3),
		file:   f,
		quit:   make(chan struct{}),
	}
	a.player.Play()
	go a.loop()
	return a, nil
}

// loop restarts the track whenever it drains. The player fronts a
// seekable decoder, so rewinding through it is enough.
func (a *Ambient) loop() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-a.quit:
			if err := a.player.Close(); err != nil {
				log.Printf("ambient close: %v", err)
			}
			a.file.Close()
			return
		case <-ticker.C:
			if a.player.IsPlaying() {
				continue
			}
			if _, err := a.player.Seek(0, io.SeekStart); err != nil {
				log.Printf("ambient rewind: %v", err)
				continue
			}
			a.player.Play()
		}
	}
}

func (a *Ambient) Stop() {
	a.stopOnce.Do(func() {
		close(a.quit)
	})
}
