package models

// AudioEnv identifies an ambient soundscape.
type AudioEnv string

// Available soundscapes.
const (
	AudioEnvForest AudioEnv = "forest"
	AudioEnvRain   AudioEnv = "rain"
	AudioEnvRiver  AudioEnv = "river"
	AudioEnvNight  AudioEnv = "night"
)

// Volume bounds and default for the ambient soundscape.
const (
	MinAudioVolume     = 0.05
	MaxAudioVolume     = 1.0
	DefaultAudioVolume = 0.40
)

// AudioEnvs lists every supported soundscape in display order.
var AudioEnvs = []AudioEnv{AudioEnvForest, AudioEnvRain, AudioEnvRiver, AudioEnvNight}

// IsValid reports whether e is a known soundscape.
func (e AudioEnv) IsValid() bool {
	for _, env := range AudioEnvs {
		if env == e {
			return true
		}
	}
	return false
}

// Next returns the soundscape following e, wrapping around.
func (e AudioEnv) Next() AudioEnv {
	for i, env := range AudioEnvs {
		if env == e {
			return AudioEnvs[(i+1)%len(AudioEnvs)]
		}
	}
	return AudioEnvForest
}

// AudioPreferences is the audio sub-record of [ApplicationState].
type AudioPreferences struct {
	Env    AudioEnv `json:"env"`
	Volume float64  `json:"vol"`
	On     bool     `json:"on"`
}

// DefaultAudioPreferences returns the soundscape settings of a new document.
func DefaultAudioPreferences() AudioPreferences {
	return AudioPreferences{
		Env:    AudioEnvForest,
		Volume: DefaultAudioVolume,
		On:     false,
	}
}

// ClampVolume bounds v to [MinAudioVolume, MaxAudioVolume].
func ClampVolume(v float64) float64 {
	if v < MinAudioVolume {
		return MinAudioVolume
	}
	if v > MaxAudioVolume {
		return MaxAudioVolume
	}
	return v
}
