package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultView     = "pulse"
	DefaultWidth    = 800
	DefaultHeight   = 300
	DefaultFPS      = 60
	DefaultTheme    = "cyberpunk"
	DefaultSpread   = 0.05
	DefaultSpeed    = 0.2
	DefaultDuration = 0.7
)

type Config struct {
	View          string              `yaml:"view"`
	Width         int                 `yaml:"width"`
	Height        int                 `yaml:"height"`
	FPS           int                 `yaml:"fps"`
	Theme         string              `yaml:"theme"`
	Pulse         PulseConfig         `yaml:"pulse"`
	Superposition SuperpositionConfig `yaml:"superposition"`
	Reflection    ReflectionConfig    `yaml:"reflection"`
	Oscillation   OscillationConfig   `yaml:"oscillation"`
	Sine          SineConfig          `yaml:"sine"`
}

// DotConfig controls the sample markers drawn along a waveform.
type DotConfig struct {
	Color   string  `yaml:"color"`
	Radius  float64 `yaml:"radius"`
	Density int     `yaml:"density"`
}

type PulseConfig struct {
	Spread          float64   `yaml:"spread"`
	Amplitude       float64   `yaml:"amplitude"`
	Speed           float64   `yaml:"speed"`
	Duration        float64   `yaml:"duration"`
	SampleRate      float64   `yaml:"sample_rate"`
	Height          int       `yaml:"height"`
	LineColor       string    `yaml:"line_color"`
	BackgroundColor string    `yaml:"background_color"`
	Dots            DotConfig `yaml:"dots"`
}

type SuperpositionConfig struct {
	Spread          float64   `yaml:"spread"`
	AmplitudeLeft   float64   `yaml:"amplitude_left"`
	AmplitudeRight  float64   `yaml:"amplitude_right"`
	Speed           float64   `yaml:"speed"`
	Duration        float64   `yaml:"duration"`
	Height          int       `yaml:"height"`
	LineColor       string    `yaml:"line_color"`
	LeftColor       string    `yaml:"left_color"`
	RightColor      string    `yaml:"right_color"`
	BackgroundColor string    `yaml:"background_color"`
	Dots            DotConfig `yaml:"dots"`
	ShowIndividual  bool      `yaml:"show_individual"`
}

type ReflectionConfig struct {
	Spread             float64 `yaml:"spread"`
	Amplitude          float64 `yaml:"amplitude"`
	Speed              float64 `yaml:"speed"`
	Duration           float64 `yaml:"duration"`
	Height             int     `yaml:"height"`
	Boundary           float64 `yaml:"boundary"`
	LineColor          string  `yaml:"line_color"`
	ReflectedLineColor string  `yaml:"reflected_line_color"`
	CombinedLineColor  string  `yaml:"combined_line_color"`
	BackgroundColor    string  `yaml:"background_color"`
}

type OscillationConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
}

type SineConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	WaveSpeed float64 `yaml:"wave_speed"`
}

func DefaultConfig() *Config {
	return &Config{
		View:   DefaultView,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		FPS:    DefaultFPS,
		Theme:  DefaultTheme,
		Pulse: PulseConfig{
			Spread:          DefaultSpread,
			Amplitude:       50,
			Speed:           DefaultSpeed,
			Duration:        DefaultDuration,
			SampleRate:      1000,
			Height:          DefaultHeight,
			LineColor:       "orange",
			BackgroundColor: "transparent",
			Dots:            DotConfig{Color: "red", Radius: 4, Density: 20},
		},
		Superposition: SuperpositionConfig{
			Spread:          DefaultSpread,
			AmplitudeLeft:   110,
			AmplitudeRight:  40,
			Speed:           DefaultSpeed,
			Duration:        DefaultDuration,
			Height:          DefaultHeight,
			LineColor:       "orange",
			LeftColor:       "#ffa50080",
			RightColor:      "#00bfff80",
			BackgroundColor: "transparent",
			Dots:            DotConfig{Color: "red", Radius: 4, Density: 20},
			ShowIndividual:  true,
		},
		Reflection: ReflectionConfig{
			Spread:             0.1,
			Amplitude:          50,
			Speed:              DefaultSpeed,
			Duration:           DefaultDuration,
			Height:             DefaultHeight,
			Boundary:           0.8,
			LineColor:          "#ea00ffff",
			ReflectedLineColor: "#00cc00",
			CombinedLineColor:  "#ffa238",
			BackgroundColor:    "transparent",
		},
		Oscillation: OscillationConfig{
			Amplitude: 100,
			Frequency: 1,
		},
		Sine: SineConfig{
			Amplitude: 100,
			Frequency: 2.3,
			WaveSpeed: 150,
		},
	}
}

// Load reads a YAML file on top of DefaultConfig, so a partial file only
// overrides the keys it names.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
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

// Clone returns a deep copy; every field is a value type.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
