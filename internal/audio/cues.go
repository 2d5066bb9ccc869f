// internal/audio/cues.go
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Wave — форма тона
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveSaw
)

// Note — один тон ноты. Freq == 0 — пауза.
type Note struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
}

// Cue — короткий звуковой сигнал из нескольких нот
type Cue struct {
	Notes []Note
	Gain  float64 // относительная громкость, -1 — тишина
}

// Duration возвращает длину сигнала
func (c Cue) Duration() time.Duration {
	var d time.Duration
	for _, n := range c.Notes {
		d += n.Duration
	}
	return d
}

var (
	CueShot = Cue{Gain: -0.7, Notes: []Note{
		{Freq: 660, Duration: 40 * time.Millisecond, Wave: WaveSquare},
	}}
	CueTileHit = Cue{Gain: -0.8, Notes: []Note{
		{Freq: 180, Duration: 30 * time.Millisecond, Wave: WaveSquare},
	}}
	CueEnemyDestroyed = Cue{Gain: -0.5, Notes: []Note{
		{Freq: 440, Duration: 60 * time.Millisecond, Wave: WaveTriangle},
		{Freq: 330, Duration: 60 * time.Millisecond, Wave: WaveTriangle},
		{Freq: 220, Duration: 90 * time.Millisecond, Wave: WaveTriangle},
	}}
	CuePlayerDestroyed = Cue{Gain: -0.4, Notes: []Note{
		{Freq: 110, Duration: 300 * time.Millisecond, Wave: WaveSaw},
	}}
	CueBaseHit = Cue{Gain: -0.4, Notes: []Note{
		{Freq: 90, Duration: 120 * time.Millisecond, Wave: WaveSquare},
		{Duration: 40 * time.Millisecond},
		{Freq: 90, Duration: 120 * time.Millisecond, Wave: WaveSquare},
	}}
	CueWin = Cue{Gain: -0.5, Notes: []Note{
		{Freq: 523.25, Duration: 120 * time.Millisecond, Wave: WaveSine},
		{Freq: 659.25, Duration: 120 * time.Millisecond, Wave: WaveSine},
		{Freq: 783.99, Duration: 240 * time.Millisecond, Wave: WaveSine},
	}}
	CueLose = Cue{Gain: -0.5, Notes: []Note{
		{Freq: 392, Duration: 160 * time.Millisecond, Wave: WaveSaw},
		{Freq: 311.13, Duration: 160 * time.Millisecond, Wave: WaveSaw},
		{Freq: 196, Duration: 320 * time.Millisecond, Wave: WaveSaw},
	}}
)

func tone(rate beep.SampleRate, n Note) (beep.Streamer, error) {
	if n.Freq == 0 {
		return beep.Silence(rate.N(n.Duration)), nil
	}

	var (
		s   beep.Streamer
		err error
	)
	switch n.Wave {
	case WaveSquare:
		s, err = generators.SquareTone(rate, n.Freq)
	case WaveTriangle:
		s, err = generators.TriangleTone(rate, n.Freq)
	case WaveSaw:
		s, err = generators.SawtoothTone(rate, n.Freq)
	default:
		s, err = generators.SineTone(rate, n.Freq)
	}
	if err != nil {
		return nil, fmt.Errorf("tone %.1fHz: %w", n.Freq, err)
	}
	return beep.Take(rate.N(n.Duration), s), nil
}

// Build собирает поток сигнала с заданной частотой дискретизации
func (c Cue) Build(rate beep.SampleRate) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(c.Notes))
	for _, n := range c.Notes {
		s, err := tone(rate, n)
		if err != nil {
			return nil, err
		}
		parts = append(parts, s)
	}
	return &effects.Gain{Streamer: beep.Seq(parts...), Gain: c.Gain}, nil
}
