package assets

import (
	"encoding/binary"
	"math"
	"math/rand"
)

const SampleRate = 44100

// Note is one square-wave tone. Freq 0 is a rest; a negative Freq is noise.
type Note struct {
	Freq     float64
	Duration float64
}

var cues = map[string][]Note{
	"coin":          {{988, 0.07}, {1319, 0.35}},
	"bump":          {{98, 0.05}, {82, 0.07}},
	"breakblock":    {{-1, 0.18}},
	"powerup_spawn": {{523, 0.05}, {659, 0.05}, {784, 0.05}, {1047, 0.05}, {784, 0.05}, {1047, 0.1}},
	"powerup":       {{523, 0.06}, {659, 0.06}, {784, 0.06}, {1047, 0.06}, {1319, 0.06}, {1568, 0.12}},
	"powerdown":     {{1047, 0.06}, {784, 0.06}, {523, 0.06}, {392, 0.06}, {262, 0.12}},
	"stomp":         {{330, 0.04}, {660, 0.06}},
	"kick":          {{880, 0.04}, {440, 0.04}},
	"mario_die":     {{494, 0.12}, {698, 0.12}, {0, 0.08}, {698, 0.12}, {698, 0.16}, {659, 0.16}, {587, 0.16}, {523, 0.3}},
}

var tracks = map[string][]Note{
	"mario_music": {
		{659, 0.12}, {659, 0.12}, {0, 0.12}, {659, 0.12}, {0, 0.12}, {523, 0.12}, {659, 0.24},
		{784, 0.24}, {0, 0.24}, {392, 0.24}, {0, 0.24},
		{523, 0.24}, {0, 0.12}, {392, 0.24}, {0, 0.12}, {330, 0.24},
		{0, 0.12}, {440, 0.24}, {494, 0.24}, {466, 0.12}, {440, 0.24},
		{392, 0.16}, {659, 0.16}, {784, 0.16}, {880, 0.24}, {698, 0.12}, {784, 0.12},
		{0, 0.12}, {659, 0.24}, {523, 0.12}, {587, 0.12}, {494, 0.36},
	},
}

// CueNotes returns the notes of a named sound or track.
func CueNotes(name string) ([]Note, bool) {
	if n, ok := cues[name]; ok {
		return n, true
	}
	n, ok := tracks[name]
	return n, ok
}

// Synthesize renders notes to 16-bit little-endian stereo PCM at SampleRate.
func Synthesize(notes []Note) []byte {
	total := 0
	for _, n := range notes {
		total += int(n.Duration * SampleRate)
	}
	buf := make([]byte, 0, total*4)
	rng := rand.New(rand.NewSource(1))
	var frame [4]byte
	for _, n := range notes {
		count := int(n.Duration * SampleRate)
		for i := 0; i < count; i++ {
			var v float64
			switch {
			case n.Freq > 0:
				phase := math.Mod(float64(i)*n.Freq/SampleRate, 1)
				v = 1
				if phase >= 0.5 {
					v = -1
				}
			case n.Freq < 0:
				v = rng.Float64()*2 - 1
			}
			// short linear release to avoid clicks between notes
			if rel := count - i; rel < 200 {
				v *= float64(rel) / 200
			}
			s := int16(v * 0.25 * math.MaxInt16)
			binary.LittleEndian.PutUint16(frame[0:], uint16(s))
			binary.LittleEndian.PutUint16(frame[2:], uint16(s))
			buf = append(buf, frame[:]...)
		}
	}
	return buf
}
