package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	cfg "github.com/automoto/domain-expansion/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// ToneLoader synthesizes the sound cues and caches their PCM
type ToneLoader struct {
	cache   map[cfg.SoundID][]byte
	context *audio.Context
}

// NewToneLoader creates a new loader with the given context
func NewToneLoader(ctx *audio.Context) *ToneLoader {
	return &ToneLoader{
		cache:   make(map[cfg.SoundID][]byte),
		context: ctx,
	}
}

// Preload synthesizes a cue without creating a player, so the first play
// does not stall the tick.
func (l *ToneLoader) Preload(id cfg.SoundID) error {
	_, err := l.pcm(id)
	return err
}

// Load returns a new player for the cue each time.
func (l *ToneLoader) Load(id cfg.SoundID) (*audio.Player, error) {
	data, err := l.pcm(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(data))
}

func (l *ToneLoader) pcm(id cfg.SoundID) ([]byte, error) {
	if data, ok := l.cache[id]; ok {
		return data, nil
	}
	def, ok := cfg.Audio.Tones[id]
	if !ok {
		return nil, fmt.Errorf("no tone for sound %d", id)
	}
	data := Synthesize(def, l.context.SampleRate())
	l.cache[id] = data
	return data, nil
}

// Synthesize renders a tone as 16-bit little endian stereo PCM. The pitch
// sweeps exponentially from Start to End and the amplitude fades out over
// the last tenth to avoid a click.
func Synthesize(def cfg.ToneDef, sampleRate int) []byte {
	n := int(def.Seconds * float64(sampleRate))
	if n <= 0 || sampleRate <= 0 {
		return nil
	}
	out := make([]byte, n*4)
	ratio := 1.0
	if def.Start > 0 && def.End > 0 {
		ratio = def.End / def.Start
	}

	phase := 0.0
	for i := range n {
		t := float64(i) / float64(sampleRate)
		progress := float64(i) / float64(n)
		freq := def.Start * math.Pow(ratio, progress)
		phase += 2 * math.Pi * freq / float64(sampleRate)

		v := math.Sin(phase) + def.Harmonic*math.Sin(2*phase)
		v /= 1 + def.Harmonic
		if def.Tremolo > 0 {
			v *= 0.75 + 0.25*math.Sin(2*math.Pi*def.Tremolo*t)
		}
		if progress > 0.9 {
			v *= (1 - progress) / 0.1
		}
		v *= mgl64.Clamp(def.Volume, 0, 1)

		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], s)
		binary.LittleEndian.PutUint16(out[i*4+2:], s)
	}
	return out
}
