package profile

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/dragsnap/pkg/snap"
)

// Config is the file/env configuration of the CLI.
type Config interface {
	// BasePath is the directory holding stored profiles.
	BasePath() string
	// DefaultProfile names the profile used when none is given.
	DefaultProfile() string
	// Overrides are the snap.* settings from the config file or environment.
	Overrides() *snap.Overrides
}

// LoadConfig reads .dragsnap.yaml from $DRAGSNAP_CONFIG_PATH, the working
// directory or the home directory. A missing file is not an error.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.dragsnap/profiles")
	v.SetDefault("profile", BuiltinSharedTimeline)
	v.SetConfigName(".dragsnap") // .yaml is implicit
	v.SetEnvPrefix("DRAGSNAP")
	v.AutomaticEnv()

	if override := os.Getenv("DRAGSNAP_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (Config, error) {
	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("expanding profile path: %w", err)
	}
	o, err := overridesFromViper(v.Sub("snap"))
	if err != nil {
		return nil, err
	}
	return &fileConfig{
		Path:    path,
		Profile: v.GetString("profile"),
		Snap:    o,
	}, nil
}

func overridesFromViper(v *viper.Viper) (*snap.Overrides, error) {
	o := &snap.Overrides{}
	if v == nil {
		return o, nil
	}
	ints := map[string]**int{
		"coarse_step_minutes": &o.CoarseStepMinutes,
		"fine_step_minutes":   &o.FineStepMinutes,
		"min_minute":          &o.MinMinute,
		"max_minute":          &o.MaxMinute,
		"zoom_tick_count":     &o.ZoomTickCount,
	}
	for key, dst := range ints {
		if v.IsSet(key) {
			*dst = snap.Int(v.GetInt(key))
		}
	}
	floats := map[string]**float64{
		"coarse_hours_per_viewport":      &o.CoarseHoursPerViewport,
		"fine_hours_per_viewport":        &o.FineHoursPerViewport,
		"precision_hold_movement_px":     &o.PrecisionHoldMovementPx,
		"precision_activation_window_px": &o.PrecisionActivationWindowPx,
		"precision_exit_movement_px":     &o.PrecisionExitMovementPx,
	}
	for key, dst := range floats {
		if v.IsSet(key) {
			*dst = snap.Float(v.GetFloat64(key))
		}
	}
	if v.IsSet("precision_hold") {
		o.PrecisionHold = snap.Duration(v.GetDuration("precision_hold"))
	}
	if v.IsSet("precision_activation") {
		a, err := snap.ParseActivation(v.GetString("precision_activation"))
		if err != nil {
			return nil, fmt.Errorf("config snap.precision_activation: %w", err)
		}
		o.PrecisionActivation = &a
	}
	return o, nil
}

type fileConfig struct {
	Path    string          `json:"path"`
	Profile string          `json:"profile"`
	Snap    *snap.Overrides `json:"snap,omitempty"`
}

func (f *fileConfig) BasePath() string           { return f.Path }
func (f *fileConfig) DefaultProfile() string     { return f.Profile }
func (f *fileConfig) Overrides() *snap.Overrides { return f.Snap }

// StaticConfig is a Config with fixed values, for tests and embedding.
type StaticConfig struct {
	Path    string
	Profile string
	Snap    *snap.Overrides
}

func (s StaticConfig) BasePath() string           { return s.Path }
func (s StaticConfig) DefaultProfile() string     { return s.Profile }
func (s StaticConfig) Overrides() *snap.Overrides { return s.Snap }
