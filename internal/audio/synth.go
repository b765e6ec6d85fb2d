// Package audio synthesizes the game's sound cues and plays them through
// the system speaker.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// SampleRate is the playback rate for every cue.
const SampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator sweeps linearly from freq to endFreq over its duration.
type oscillator struct {
	freq, endFreq float64
	phase         float64
	position      int
	duration      int
	wave          Wave
	rate          beep.SampleRate
	rng           *rand.Rand
}

// NewOscillator returns a fixed-pitch tone.
func NewOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, d, wave, rate)
}

// NewSweep returns a tone gliding from start to end Hz.
func NewSweep(start, end float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     start,
		endFreq:  end,
		duration: rate.N(d),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(start*1000 + end))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream with a linear attack and release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with attack and release ramps.
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
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.position >= start && e.release > 0 {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is a shaped oscillator with a 5 ms attack.
func tone(start, end float64, d, release time.Duration, wave Wave, vol float64) beep.Streamer {
	osc := NewSweep(start, end, d, wave, SampleRate)
	return newVolume(NewEnvelope(osc, d, 5*time.Millisecond, release, SampleRate), vol)
}

// Synth builds the streamer for a cue. Unknown cues yield nil.
func Synth(c core.Cue) beep.Streamer {
	ms := time.Millisecond
	switch c {
	case core.CueBangLarge:
		return beep.Mix(
			tone(0, 0, 600*ms, 550*ms, WaveNoise, 0.7),
			tone(70, 40, 600*ms, 550*ms, WaveSine, 0.4),
		)
	case core.CueBangMedium:
		return tone(0, 0, 400*ms, 350*ms, WaveNoise, 0.55)
	case core.CueBangSmall:
		return tone(0, 0, 250*ms, 200*ms, WaveNoise, 0.4)
	case core.CueBeat1:
		return tone(55, 55, 100*ms, 60*ms, WaveSquare, 0.35)
	case core.CueBeat2:
		return tone(49, 49, 100*ms, 60*ms, WaveSquare, 0.35)
	case core.CueExtraShip:
		return beep.Seq(
			tone(660, 660, 70*ms, 20*ms, WaveSine, 0.5),
			tone(880, 880, 70*ms, 20*ms, WaveSine, 0.5),
			tone(1320, 1320, 120*ms, 60*ms, WaveSine, 0.5),
		)
	case core.CueFire:
		return tone(1400, 350, 90*ms, 60*ms, WaveSquare, 0.25)
	case core.CueSaucerLarge:
		return tone(320, 480, 200*ms, 40*ms, WaveSaw, 0.2)
	case core.CueSaucerSmall:
		return tone(700, 1000, 150*ms, 30*ms, WaveSaw, 0.2)
	case core.CueThrust:
		return tone(0, 0, 150*ms, 80*ms, WaveNoise, 0.2)
	default:
		return nil
	}
}

// Render synthesizes a cue into a reusable buffer.
func Render(c core.Cue) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
	if s := Synth(c); s != nil {
		buf.Append(s)
	}
	return buf
}
