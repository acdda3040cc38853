package snd

import (
	"bytes"
	"log"
	"math"
	"time"
)

// Ding plays a short decaying sine, the export-finished cue. Asynchronous;
// the player cleans itself up when the tone ends.
func Ding() {
	player := NewPlayer(bytes.NewReader(tone(880, 150*time.Millisecond)))
	player.Play()
	go func() {
		for player.IsPlaying() {
			time.Sleep(5 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			log.Printf("player.Close failed: %v", err)
		}
	}()
}

// tone renders a sine at freq Hz with an exponential decay envelope as
// interleaved stereo signed 16bit little endian PCM.
func tone(freq float64, d time.Duration) []byte {
	samples := int(float64(sampleRate) * d.Seconds())
	buf := make([]byte, 0, samples*channelCount*2)
	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		envelope := math.Exp(-6 * t / d.Seconds())
		v := int16(math.Sin(2*math.Pi*freq*t) * envelope * 0.4 * math.MaxInt16)
		lo, hi := byte(v), byte(v>>8)
		buf = append(buf, lo, hi, lo, hi)
	}
	return buf
}
