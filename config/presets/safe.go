package presets

import "github.com/morningowl/dicomcraft/config"

func init() {
	register("safe", safe())
}

// safe never leaves a truncated file behind, serializes writers of the same
// destination and only accepts DICOM Part 10 payloads.
func safe() config.Config {
	conf := config.DefaultConfig()
	conf.Output.Atomic = true
	conf.Output.Lock = true
	conf.Output.CheckDICOM = true
	return conf
}
