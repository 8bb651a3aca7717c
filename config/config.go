// Package config loads runtime settings from flags, environment and an optional config file
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/verb-runner/parameter"
)

// EnvPrefix namespaces environment variables, e.g. VR_LOG_LEVEL
const EnvPrefix = "VR"

// Keys shared by viper and the cobra flags
const (
	KeyDebug         = "debug"
	KeyLogDir        = "log-dir"
	KeyLogLevel      = "log-level"
	KeyLogFormat     = "log-format"
	KeyAudio         = "audio"
	KeyVolume        = "volume"
	KeyCellUnits     = "cell-units"
	KeyFPS           = "fps"
	KeyMaxFrameDelta = "max-frame-delta"
)

var ErrInvalid = errors.New("invalid configuration")

// Config is the resolved runtime configuration
type Config struct {
	Debug     bool
	LogDir    string
	LogLevel  string
	LogFormat string

	Audio  bool
	Volume float64

	CellUnits     float64
	FPS           int
	MaxFrameDelta time.Duration
}

// NewViper returns a viper instance with defaults and VR_ environment binding
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyLogDir, "logs")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyAudio, true)
	v.SetDefault(KeyVolume, parameter.DefaultVolume)
	v.SetDefault(KeyCellUnits, parameter.DefaultCellUnits)
	v.SetDefault(KeyFPS, parameter.DefaultFPS)
	v.SetDefault(KeyMaxFrameDelta, parameter.DefaultMaxFrameDelta.Seconds())
}

// Load reads every key from v and validates the result
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Debug:         v.GetBool(KeyDebug),
		LogDir:        v.GetString(KeyLogDir),
		LogLevel:      strings.ToLower(v.GetString(KeyLogLevel)),
		LogFormat:     strings.ToLower(v.GetString(KeyLogFormat)),
		Audio:         v.GetBool(KeyAudio),
		Volume:        v.GetFloat64(KeyVolume),
		CellUnits:     v.GetFloat64(KeyCellUnits),
		FPS:           v.GetInt(KeyFPS),
		MaxFrameDelta: time.Duration(v.GetFloat64(KeyMaxFrameDelta) * float64(time.Second)),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every out-of-range key
func (c Config) Validate() error {
	var errs []error
	if c.Volume < 0 || c.Volume > 1 {
		errs = append(errs, fmt.Errorf("%w: %s %v not in [0,1]", ErrInvalid, KeyVolume, c.Volume))
	}
	if c.CellUnits <= 0 {
		errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, KeyCellUnits, c.CellUnits))
	}
	if c.FPS < 1 || c.FPS > 240 {
		errs = append(errs, fmt.Errorf("%w: %s %d not in [1,240]", ErrInvalid, KeyFPS, c.FPS))
	}
	if c.MaxFrameDelta < 0 {
		errs = append(errs, fmt.Errorf("%w: %s must not be negative", ErrInvalid, KeyMaxFrameDelta))
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("%w: %s %q, want console or json", ErrInvalid, KeyLogFormat, c.LogFormat))
	}
	if c.Debug && c.LogDir == "" {
		errs = append(errs, fmt.Errorf("%w: %s required with %s", ErrInvalid, KeyLogDir, KeyDebug))
	}
	return errors.Join(errs...)
}

// FrameInterval is the ticker period for the configured FPS
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
