// Package audio synthesizes the short sound cues played during a game.
// Cues are generated from oscillators so no sound assets are shipped.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Cue identifies a sound effect.
type Cue int

const (
	CueEat Cue = iota
	CueBump
	CueLevelUp
	CueGameOver
	CueClick
)

func (c Cue) String() string {
	switch c {
	case CueEat:
		return "eat"
	case CueBump:
		return "bump"
	case CueLevelUp:
		return "level-up"
	case CueGameOver:
		return "game-over"
	case CueClick:
		return "click"
	}
	return "unknown"
}

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// oscillator generates a fixed-length tone.
type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator returns a streamer producing a tone of the given length.
func NewOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		length: rate.N(d),
		wave:   wave,
		rate:   rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s, which is expected to last d.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.position >= start && e.release > 0 {
			vol = max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales s linearly. Zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

type note struct {
	freq float64
	dur  time.Duration
	wave Wave
}

var cueNotes = map[Cue][]note{
	CueEat:      {{660, 60 * time.Millisecond, WaveSquare}, {990, 70 * time.Millisecond, WaveSquare}},
	CueBump:     {{110, 150 * time.Millisecond, WaveSaw}},
	CueLevelUp:  {{523.25, 90 * time.Millisecond, WaveTriangle}, {659.25, 90 * time.Millisecond, WaveTriangle}, {783.99, 160 * time.Millisecond, WaveTriangle}},
	CueGameOver: {{392, 180 * time.Millisecond, WaveSine}, {311.13, 180 * time.Millisecond, WaveSine}, {196, 360 * time.Millisecond, WaveSine}},
	CueClick:    {{1200, 25 * time.Millisecond, WaveSquare}},
}

// CueStreamer builds the streamer for c at the given volume, or nil for
// an unknown cue.
func CueStreamer(c Cue, vol float64, rate beep.SampleRate) beep.Streamer {
	notes, ok := cueNotes[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		osc := NewOscillator(n.freq, n.dur, n.wave, rate)
		parts = append(parts, NewEnvelope(osc, n.dur, 5*time.Millisecond, n.dur/3, rate))
	}
	return withVolume(beep.Seq(parts...), vol*0.5)
}

// CueDuration returns how long c plays.
func CueDuration(c Cue) time.Duration {
	var d time.Duration
	for _, n := range cueNotes[c] {
		d += n.dur
	}
	return d
}
