package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/morningowl/dicomcraft/config"
	"github.com/morningowl/dicomcraft/config/presets"
)

// flagKeys maps command line flags to their config keys.
var flagKeys = map[string]string{
	"atomic":               "output.atomic",
	"lock":                 "output.lock",
	"check-dicom":          "output.check-dicom",
	"file-mode":            "output.file-mode",
	"gcs-creds":            "output.gcs-creds",
	"log-level":            "logging.log-level",
	"log-encoder":          "logging.log-encoder",
	"metrics-push":         "metrics.metrics-push",
	"metrics-job":          "metrics.metrics-job",
	"metrics-push-timeout": "metrics.metrics-push-timeout",
}

// loadConfig layers, from lowest to highest priority: cfg, the preset, the
// config file, DICOMCRAFT_* environment variables and changed flags.
func loadConfig(cfg *config.Config, flags *pflag.FlagSet) error {
	path, _ := flags.GetString("config")
	preset, _ := flags.GetString("preset")

	v := viper.New()
	// read in config from file
	if err := config.LoadConfig(path, v); err != nil {
		return err
	}

	// override default config with preset if provided
	if len(preset) == 0 && v.IsSet("preset") {
		preset = v.GetString("preset")
	}
	if len(preset) > 0 {
		p, err := presets.Get(preset)
		if err != nil {
			return err
		}
		*cfg = p
	}

	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	for _, key := range flagKeys {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("bind env for %s: %w", key, err)
		}
	}
	flags.Visit(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			v.Set(key, f.Value.String())
		}
	})

	opts := []viper.DecoderConfigOption{
		viper.DecodeHook(config.DecodeHook()),
		config.WithIgnoreUntagged(),
		config.WithErrorUnused(),
	}
	if err := v.Unmarshal(cfg, opts...); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ConfigFile = path
	cfg.Preset = preset
	return nil
}
