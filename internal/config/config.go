package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultCells     = 200
	DefaultSpeed     = 1.0
	DefaultCourant   = 0.5
	DefaultDuration  = 1.0
	DefaultCenter    = 0.5
	DefaultWidth     = 0.1
	DefaultAmplitude = 1.0
)

type Config struct {
	Scheme        string        `yaml:"scheme"`
	Profile       string        `yaml:"profile"`
	Cells         int           `yaml:"cells"`
	Domain        DomainConfig  `yaml:"domain"`
	Speed         float64       `yaml:"speed"`
	Courant       float64       `yaml:"courant"`
	Dt            float64       `yaml:"dt"`
	Duration      float64       `yaml:"duration"`
	SnapshotEvery int           `yaml:"snapshot_every"`
	ProfileParams ProfileConfig `yaml:"profile_params"`
}

type DomainConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type ProfileConfig struct {
	Center    float64 `yaml:"center"`
	Width     float64 `yaml:"width"`
	Amplitude float64 `yaml:"amplitude"`
	Waves     int     `yaml:"waves"`
}

func DefaultConfig() *Config {
	return &Config{
		Scheme:        "upwind",
		Profile:       "gauss",
		Cells:         DefaultCells,
		Domain:        DomainConfig{Min: 0, Max: 1},
		Speed:         DefaultSpeed,
		Courant:       DefaultCourant,
		Duration:      DefaultDuration,
		SnapshotEvery: 10,
		ProfileParams: ProfileConfig{
			Center:    DefaultCenter,
			Width:     DefaultWidth,
			Amplitude: DefaultAmplitude,
			Waves:     1,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GetProfileParams flattens the profile section into the parameter map the
// registry's profile constructors consume.
func (c *Config) GetProfileParams() map[string]float64 {
	return map[string]float64{
		"center":    c.ProfileParams.Center,
		"width":     c.ProfileParams.Width,
		"amplitude": c.ProfileParams.Amplitude,
		"waves":     float64(c.ProfileParams.Waves),
	}
}
