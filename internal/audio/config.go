// internal/audio/config.go
package audio

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config is the user-tunable audio settings file. Every field is optional;
// absent entries fall back to the built-in defaults.
type Config struct {
	Volume struct {
		Sfx   *float64 `json:"sfx"`
		Music *float64 `json:"music"`
	} `json:"volume"`
	Events map[string]EventConfig `json:"events"`
	Music  map[string]TrackConfig `json:"music"`
}

// EventConfig tunes one game-event sound.
type EventConfig struct {
	Volume *float64 `json:"volume"`
}

// TrackConfig tunes one music track. Keys are "map_0".."map_9" and
// "game_over".
type TrackConfig struct {
	Volume *float64 `json:"volume"`
}

const (
	defaultSfxVolume   = 0.8
	defaultMusicVolume = 0.5
)

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	var c Config
	c.Events = map[string]EventConfig{}
	c.Music = map[string]TrackConfig{}
	return c
}

// LoadConfig reads the settings file. A missing file is not an error and
// yields the defaults; a malformed file is reported.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("read audio config: %w", err)
	}
	c := DefaultConfig()
	if err := json.Unmarshal(data, &c); err != nil {
		return DefaultConfig(), fmt.Errorf("parse audio config %s: %w", path, err)
	}
	if c.Events == nil {
		c.Events = map[string]EventConfig{}
	}
	if c.Music == nil {
		c.Music = map[string]TrackConfig{}
	}
	return c, nil
}

// SfxVolume returns the master sound-effect volume in [0, 1].
func (c Config) SfxVolume() float64 {
	return clampVolume(c.Volume.Sfx, defaultSfxVolume)
}

// MusicVolume returns the master music volume in [0, 1].
func (c Config) MusicVolume() float64 {
	return clampVolume(c.Volume.Music, defaultMusicVolume)
}

// EventVolume returns the per-event volume scale for a sound name.
func (c Config) EventVolume(name string) float64 {
	if ec, ok := c.Events[name]; ok {
		return clampVolume(ec.Volume, 1.0)
	}
	return 1.0
}

// TrackVolume returns the per-track volume scale for a music key.
func (c Config) TrackVolume(key string) float64 {
	if tc, ok := c.Music[key]; ok {
		return clampVolume(tc.Volume, 1.0)
	}
	return 1.0
}

func clampVolume(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	if *v < 0 {
		return 0
	}
	if *v > 1 {
		return 1
	}
	return *v
}
