package presets

import (
	"go.uber.org/zap/zapcore"

	"github.com/morningowl/dicomcraft/config"
	"github.com/morningowl/dicomcraft/log"
)

func init() {
	register("pipeline", pipeline())
}

// pipeline is meant for batch jobs: machine readable logs and atomic output.
func pipeline() config.Config {
	conf := config.DefaultConfig()
	conf.LOGGING.Encoder = log.JSONEncoder
	conf.LOGGING.Level = zapcore.InfoLevel.String()
	conf.Output.Atomic = true
	return conf
}
