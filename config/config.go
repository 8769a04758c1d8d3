// Package config contains base64todicom configuration definitions.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix of environment variables overriding config keys.
	EnvPrefix = "DICOMCRAFT"

	defaultFileMode    os.FileMode = 0o644
	defaultPushTimeout             = 10 * time.Second
	defaultMetricsJob              = "base64todicom"
)

// Config defines the top level configuration for a conversion run.
type Config struct {
	ConfigFile string        `mapstructure:"config"`
	Preset     string        `mapstructure:"preset"`
	Output     OutputConfig  `mapstructure:"output"`
	LOGGING    LoggerConfig  `mapstructure:"logging"`
	Metrics    MetricsConfig `mapstructure:"metrics"`
}

// OutputConfig controls how decoded bytes are persisted.
type OutputConfig struct {
	// Atomic writes to a temporary file and renames it over the destination.
	Atomic bool `mapstructure:"atomic"`
	// Lock holds an exclusive lock on <output>.lock while writing.
	Lock bool `mapstructure:"lock"`
	// CheckDICOM rejects payloads without the DICOM Part 10 preamble.
	CheckDICOM bool        `mapstructure:"check-dicom"`
	FileMode   os.FileMode `mapstructure:"file-mode"`
	// GCSCredentials is a credential file used for gs:// destinations.
	GCSCredentials string `mapstructure:"gcs-creds"`
}

// MetricsConfig configures the pushgateway the run reports to.
type MetricsConfig struct {
	PushURL     string        `mapstructure:"metrics-push"`
	Job         string        `mapstructure:"metrics-job"`
	PushTimeout time.Duration `mapstructure:"metrics-push-timeout"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{
			FileMode: defaultFileMode,
		},
		LOGGING: defaultLoggingConfig(),
		Metrics: MetricsConfig{
			Job:         defaultMetricsJob,
			PushTimeout: defaultPushTimeout,
		},
	}
}

// LoadConfig reads the config file at fileLocation into vip. An empty location
// is not an error: nothing is read.
func LoadConfig(fileLocation string, vip *viper.Viper) error {
	if fileLocation == "" {
		return nil
	}
	vip.SetConfigFile(fileLocation)
	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file %v: %w", fileLocation, err)
	}
	return nil
}

// DecodeHook is the hook used to unmarshal viper settings into Config.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		FileModeDecodeFunc(),
	)
}

// FileModeDecodeFunc parses octal strings such as "0600" into os.FileMode.
func FileModeDecodeFunc() mapstructure.DecodeHookFuncType {
	return func(f, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(os.FileMode(0)) {
			return data, nil
		}
		mode, err := strconv.ParseUint(reflect.ValueOf(data).String(), 8, 32)
		if err != nil {
			return nil, fmt.Errorf("parse file mode %q: %w", data, err)
		}
		if mode > uint64(os.ModePerm) {
			return nil, fmt.Errorf("file mode %q has bits outside of permissions", data)
		}
		return os.FileMode(mode), nil
	}
}

// WithIgnoreUntagged skips struct fields without a mapstructure tag.
func WithIgnoreUntagged() viper.DecoderConfigOption {
	return func(cfg *mapstructure.DecoderConfig) {
		cfg.IgnoreUntaggedFields = true
	}
}

// WithErrorUnused fails decoding on keys that do not map to a field.
func WithErrorUnused() viper.DecoderConfigOption {
	return func(cfg *mapstructure.DecoderConfig) {
		cfg.ErrorUnused = true
	}
}
