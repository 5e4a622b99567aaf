// Package profile loads named generation profiles from YAML files and the
// environment, and materializes them into runnable samplers and builders.
// A profile describes one noise map end to end: the field to sample, the
// window to walk and how to color it.
package profile

import (
	"fmt"

	"github.com/spf13/viper"
)

// Profile is a single named map recipe. Unset fields fall back to
// DefaultProfile via Normalized.
type Profile struct {
	Kind        string  `mapstructure:"kind"`
	Seed        uint32  `mapstructure:"seed"`
	SeedName    string  `mapstructure:"seed_name"`
	Octaves     int     `mapstructure:"octaves"`
	Frequency   float64 `mapstructure:"frequency"`
	Lacunarity  float64 `mapstructure:"lacunarity"`
	Persistence float64 `mapstructure:"persistence"`
	Palette     string  `mapstructure:"palette"`
	Width       int     `mapstructure:"width"`
	Height      int     `mapstructure:"height"`
	XLo         float64 `mapstructure:"x_lo"`
	XHi         float64 `mapstructure:"x_hi"`
	YLo         float64 `mapstructure:"y_lo"`
	YHi         float64 `mapstructure:"y_hi"`
	Z           float64 `mapstructure:"z"`
	Workers     int     `mapstructure:"workers"`
}

// Config is the process-level configuration: server knobs plus the named
// profiles.
type Config struct {
	ListenAddr string             `mapstructure:"listen_address"`
	LogLevel   string             `mapstructure:"log_level"`
	StorePath  string             `mapstructure:"store_path"`
	Profiles   map[string]Profile `mapstructure:"profiles"`
}

// DefaultProfile is a single-octave perlin map over x,y in [-2, 2) with the
// terrain palette.
func DefaultProfile() Profile {
	return Profile{
		Kind:        "perlin",
		Octaves:     1,
		Frequency:   1,
		Lacunarity:  2,
		Persistence: 0.5,
		Palette:     "terrain",
		Width:       256,
		Height:      256,
		XLo:         -2,
		XHi:         2,
		YLo:         -2,
		YHi:         2,
	}
}

func DefaultConfig() *Config {
	return &Config{
		ListenAddr: ":7780",
		LogLevel:   "info",
		Profiles:   map[string]Profile{"default": DefaultProfile()},
	}
}

// Normalized fills unset fields from DefaultProfile. A YAML profile that
// only names its kind and seed still builds.
func (p Profile) Normalized() Profile {
	d := DefaultProfile()
	if p.Kind == "" {
		p.Kind = d.Kind
	}
	if p.Octaves == 0 {
		p.Octaves = d.Octaves
	}
	if p.Frequency == 0 {
		p.Frequency = d.Frequency
	}
	if p.Lacunarity == 0 {
		p.Lacunarity = d.Lacunarity
	}
	if p.Persistence == 0 {
		p.Persistence = d.Persistence
	}
	if p.Palette == "" {
		p.Palette = d.Palette
	}
	if p.Width == 0 {
		p.Width = d.Width
	}
	if p.Height == 0 {
		p.Height = d.Height
	}
	if p.XLo == 0 && p.XHi == 0 {
		p.XLo, p.XHi = d.XLo, d.XHi
	}
	if p.YLo == 0 && p.YHi == 0 {
		p.YLo, p.YHi = d.YLo, d.YHi
	}
	return p
}

// Profile returns the named profile, normalized.
func (c *Config) Profile(name string) (Profile, error) {
	p, ok := c.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("profile: unknown profile %q", name)
	}
	return p.Normalized(), nil
}

// Load reads configuration from file, or from the usual search paths when
// file is empty, then from NOISE_* environment variables, on top of
// DefaultConfig. A missing file in the search paths is fine; an explicit
// file must exist.
func Load(file string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("noise")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/noise-go/")
		v.AddConfigPath("$HOME/.noise-go")
	}
	v.SetEnvPrefix("NOISE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	for name, p := range cfg.Profiles {
		cfg.Profiles[name] = p.Normalized()
	}
	return cfg, nil
}
