package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundHollow
	SoundBlue
	SoundRed
	SoundDomain
)

// ToneDef describes a synthesized cue: a base frequency swept toward End over
// the duration, with a tremolo rate.
type ToneDef struct {
	Start    float64 // Hz
	End      float64 // Hz
	Seconds  float64
	Tremolo  float64 // Hz, 0 disables
	Volume   float64 // 0.0 - 1.0
	Harmonic float64 // weight of the octave above
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	Tones         map[SoundID]ToneDef
}

// Audio is the global audio configuration
var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
		Tones: map[SoundID]ToneDef{
			SoundHollow: {Start: 180, End: 720, Seconds: 1.4, Tremolo: 8, Volume: 0.8, Harmonic: 0.4},
			SoundBlue:   {Start: 440, End: 330, Seconds: 1.0, Tremolo: 4, Volume: 0.6, Harmonic: 0.2},
			SoundRed:    {Start: 220, End: 110, Seconds: 2.0, Tremolo: 12, Volume: 0.7, Harmonic: 0.5},
			SoundDomain: {Start: 55, End: 82.5, Seconds: 25, Tremolo: 0.5, Volume: 0.5, Harmonic: 0.3},
		},
	}
}
