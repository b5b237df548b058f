// Package config loads engine settings from an optional config file and
// environment overrides, with sensible defaults baked in.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Settings holds every tunable the engine reads at startup.
type Settings struct {
	ScreenWidth  int  `mapstructure:"screen_width"`
	ScreenHeight int  `mapstructure:"screen_height"`
	Fullscreen   bool `mapstructure:"fullscreen"`
	Vsync        bool `mapstructure:"vsync"`

	FOVDegrees float64 `mapstructure:"fov_degrees"`
	FarPlane   float64 `mapstructure:"far_plane"`

	MoveSpeed   float64 `mapstructure:"move_speed"`
	RotSpeed    float64 `mapstructure:"rot_speed"`
	StrafeSpeed float64 `mapstructure:"strafe_speed"`

	BulletSpeed float64 `mapstructure:"bullet_speed"`
	RateOfFire  float64 `mapstructure:"rate_of_fire"`
	MaxAmmo     int     `mapstructure:"max_ammo"`

	WaveCountdown float64 `mapstructure:"wave_countdown"`

	AudioEnabled bool    `mapstructure:"audio_enabled"`
	AudioVolume  float64 `mapstructure:"audio_volume"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("screen_width", 1024)
	v.SetDefault("screen_height", 640)
	v.SetDefault("fullscreen", false)
	v.SetDefault("vsync", true)

	v.SetDefault("fov_degrees", 66.0)
	v.SetDefault("far_plane", 100.0)

	v.SetDefault("move_speed", 3.0)
	v.SetDefault("rot_speed", 2.0)
	v.SetDefault("strafe_speed", 2.5)

	v.SetDefault("bullet_speed", 10.0)
	v.SetDefault("rate_of_fire", 4.0)
	v.SetDefault("max_ammo", 20)

	v.SetDefault("wave_countdown", 5.0)

	v.SetDefault("audio_enabled", true)
	v.SetDefault("audio_volume", 0.7)
}

// Load reads wolfie3d.{yaml,json,toml} from the working directory or
// $HOME/.wolfie3d if present, applies WOLFIE3D_* environment overrides,
// and validates the result. A missing config file is fine; a malformed
// one is not.
func Load() (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("wolfie3d")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.wolfie3d")
	v.SetEnvPrefix("wolfie3d")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate rejects values the engine cannot run with.
func (s *Settings) Validate() error {
	if s.ScreenWidth <= 0 || s.ScreenHeight <= 0 {
		return fmt.Errorf("config: screen size %dx%d must be positive", s.ScreenWidth, s.ScreenHeight)
	}
	if s.FOVDegrees <= 0 || s.FOVDegrees >= 180 {
		return fmt.Errorf("config: fov %.1f must be in (0, 180)", s.FOVDegrees)
	}
	if s.FarPlane <= 0 {
		return fmt.Errorf("config: far plane %.1f must be positive", s.FarPlane)
	}
	if s.MaxAmmo <= 0 {
		return fmt.Errorf("config: max ammo %d must be positive", s.MaxAmmo)
	}
	if s.RateOfFire <= 0 {
		return fmt.Errorf("config: rate of fire %.1f must be positive", s.RateOfFire)
	}
	if s.AudioVolume < 0 || s.AudioVolume > 1 {
		return fmt.Errorf("config: audio volume %.2f must be in [0, 1]", s.AudioVolume)
	}
	return nil
}
