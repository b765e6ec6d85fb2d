package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Player consumes the cues emitted by one simulation step.
type Player interface {
	Play(cues []core.Cue)
	Close()
}

// Nop discards every cue.
type Nop struct{}

func (Nop) Play([]core.Cue) {}
func (Nop) Close()          {}

// Speaker plays cues through the default output device. Cue buffers are
// rendered once at startup.
type Speaker struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	buffers [core.CueCount]*beep.Buffer
	volume  float64
	logger  *log.Logger
	closed  bool
}

var speakerOnce struct {
	sync.Once
	err error
}

// NewSpeaker opens the audio device. volume is in [0, 1].
func NewSpeaker(volume float64, logger *log.Logger) (*Speaker, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	speakerOnce.Do(func() {
		speakerOnce.err = speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond))
	})
	if speakerOnce.err != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", speakerOnce.err)
	}

	s := &Speaker{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
	for c := core.Cue(0); c < core.CueCount; c++ {
		s.buffers[c] = Render(c)
	}
	speaker.Play(s.mixer)
	logger.Info("audio ready", "rate", int(SampleRate))
	return s, nil
}

// Play mixes in each distinct cue once.
func (s *Speaker) Play(cues []core.Cue) {
	if len(cues) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	var seen [core.CueCount]bool
	speaker.Lock()
	defer speaker.Unlock()
	for _, c := range cues {
		if c >= core.CueCount || seen[c] {
			continue
		}
		seen[c] = true
		buf := s.buffers[c]
		if buf.Len() == 0 {
			continue
		}
		s.mixer.Add(newVolume(buf.Streamer(0, buf.Len()), s.volume))
	}
}

// Close silences every playing cue.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}

// New returns a Speaker when enabled, falling back to Nop when the device
// cannot be opened.
func New(enabled bool, volume float64, logger *log.Logger) Player {
	if !enabled {
		return Nop{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s, err := NewSpeaker(volume, logger)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		return Nop{}
	}
	return s
}
