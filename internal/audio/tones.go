// internal/audio/tones.go
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const sampleRate = beep.SampleRate(48000)

// toneGenerator plays a single decaying tone with a couple of harmonics for
// warmth. Finite; Stream reports done when the duration elapses.
type toneGenerator struct {
	freq     float64
	gain     float64
	pos      int
	duration int
	decay    float64
}

func newTone(freq float64, dur time.Duration, gain, decay float64) *toneGenerator {
	return &toneGenerator{
		freq:     freq,
		gain:     gain,
		duration: sampleRate.N(dur),
		decay:    decay,
	}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.duration {
			return i, false
		}
		t := float64(g.pos) / float64(sampleRate)

		env := math.Exp(-t * g.decay)
		// Short linear attack avoids a click on onset.
		attack := math.Min(t/0.005, 1.0)

		sample := 0.0
		sample += 0.6 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.25 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.1 * math.Sin(2*math.Pi*g.freq*3*t)
		sample *= g.gain * env * attack

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error { return nil }

// thudGenerator is a filtered-noise burst for hits and losses.
type thudGenerator struct {
	pos      int
	duration int
	seed     int64
	rumble   float64
	gain     float64
}

func newThud(dur time.Duration, rumbleHz, gain float64) *thudGenerator {
	return &thudGenerator{
		duration: sampleRate.N(dur),
		seed:     0x1234567,
		rumble:   rumbleHz,
		gain:     gain,
	}
}

func (g *thudGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.duration {
			return i, false
		}
		t := float64(g.pos) / float64(sampleRate)
		env := math.Exp(-t * 14)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		sample := g.gain * env * (0.3*noise + 0.5*math.Sin(2*math.Pi*g.rumble*t))
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *thudGenerator) Err() error { return nil }

// melodyNote is one step of a looping background melody. Freq 0 is a rest.
type melodyNote struct {
	freq    float64
	samples int
}

// melodyGenerator loops a note table forever, shaping each note with a
// per-note decay envelope. Infinite; the owning Ctrl pauses it.
type melodyGenerator struct {
	notes []melodyNote
	total int
	pos   int
	gain  float64
}

func newMelody(notes []melodyNote, gain float64) *melodyGenerator {
	total := 0
	for _, nt := range notes {
		total += nt.samples
	}
	return &melodyGenerator{notes: notes, total: total, gain: gain}
}

func (g *melodyGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		p := g.pos % g.total

		note := g.notes[0]
		for _, nt := range g.notes {
			if p < nt.samples {
				note = nt
				break
			}
			p -= nt.samples
		}

		sample := 0.0
		if note.freq > 0 {
			t := float64(p) / float64(sampleRate)
			noteLen := float64(note.samples) / float64(sampleRate)
			env := math.Exp(-t*3) * math.Min(t/0.01, 1.0) * math.Min((noteLen-t)/0.02, 1.0)
			if env < 0 {
				env = 0
			}
			sample = g.gain * env * (0.7*math.Sin(2*math.Pi*note.freq*t) + 0.2*math.Sin(2*math.Pi*note.freq*2*t))
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *melodyGenerator) Err() error { return nil }

// Pentatonic scale degrees used to assemble map melodies.
var pentatonic = []float64{220.0, 246.94, 277.18, 329.63, 369.99, 440.0}

// mapMelody builds the looping track for a map. The note pattern and pitch
// shift both derive from the index, so each map sounds distinct without any
// bundled assets.
func mapMelody(mapIndex int) *melodyGenerator {
	beat := sampleRate.N(time.Millisecond * 320)
	shift := math.Pow(2, float64(mapIndex%4)/12.0)

	pattern := []int{0, 2, 4, 2, 3, 1, 5, -1, 4, 2, 0, -1}
	if mapIndex%2 == 1 {
		pattern = []int{5, 3, 1, 3, 0, 2, 4, -1, 2, 0, 1, -1}
	}

	var notes []melodyNote
	for _, deg := range pattern {
		n := melodyNote{samples: beat}
		if deg >= 0 {
			n.freq = pentatonic[deg] * shift
		}
		notes = append(notes, n)
	}
	return newMelody(notes, 0.22)
}

// gameOverMelody is a slow descending dirge.
func gameOverMelody() *melodyGenerator {
	beat := sampleRate.N(time.Millisecond * 650)
	notes := []melodyNote{
		{freq: 329.63, samples: beat},
		{freq: 277.18, samples: beat},
		{freq: 246.94, samples: beat},
		{freq: 220.0, samples: beat * 2},
		{freq: 0, samples: beat * 2},
	}
	return newMelody(notes, 0.2)
}
