package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/morningowl/dicomcraft/config"
	"github.com/morningowl/dicomcraft/config/presets"
	"github.com/morningowl/dicomcraft/converter"
	"github.com/morningowl/dicomcraft/filesystem"
	"github.com/morningowl/dicomcraft/log"
	"github.com/morningowl/dicomcraft/metrics"
)

const fromFileFlag = "from-file"

func newCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var fromFile string
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "base64todicom [flags] <base64_data> <output_file>",
		Short: "decode a base64 payload into a binary file",
		Long: `Decode a base64 payload and write the raw bytes to <output_file>.

The payload is given inline or read from a file with --from-file, in which
case <base64_data> is an ignored placeholder and may be omitted. Use
--from-file - to read the payload from stdin. <output_file> may be a
gs://bucket/object URI to upload to Google Cloud Storage.`,
		Example: `  base64todicom "AAAAAA..." output.dcm
  base64todicom --from-file base64_data.txt output.dcm
  base64todicom -f base64_data.txt ignored output.dcm`,
		Version:       version,
		Args:          validateArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// usage is only useful for errors found before this point
			cmd.SilenceUsage = true

			conf := config.DefaultConfig()
			if err := loadConfig(&conf, cmd.Flags()); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger, err := newLogger(stderr, conf.LOGGING)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			sink, remote := newSink(conf.Output)
			defer remote.Close()

			conv := converter.New(sink,
				converter.WithLogger(logger.WithName("converter")),
				converter.WithReporter(converter.NewReporter(stdout)),
				converter.WithStdin(stdin),
				converter.WithFs(afero.NewOsFs()),
				converter.WithDICOMCheck(conf.Output.CheckDICOM),
			)
			src, output := sourceFromArgs(fromFile, args)
			_, runErr := conv.Run(ctx, src, output)

			if conf.Metrics.PushURL != "" {
				err := metrics.Push(context.Background(), conf.Metrics.PushURL, conf.Metrics.Job, conf.Metrics.PushTimeout)
				if err != nil {
					logger.With().Warning("failed to push metrics", log.Err(err))
				}
			}
			return runErr
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&fromFile, fromFileFlag, "f", "",
		"read the base64 payload from this file instead of <base64_data> (- for stdin)")
	flags.StringP("config", "c", "", "load configuration from file")
	flags.StringP("preset", "p", "",
		fmt.Sprintf("preset overwrites default values of the config. options %+s", presets.Options()))

	/** ======================== Output Flags ========================== **/
	flags.Bool("atomic", defaults.Output.Atomic,
		"write to a temporary file and rename it over the destination")
	flags.Bool("lock", defaults.Output.Lock,
		"hold an exclusive lock on <output_file>.lock while writing")
	flags.Bool("check-dicom", defaults.Output.CheckDICOM,
		"reject payloads without the DICOM Part 10 preamble")
	flags.String("file-mode", fmt.Sprintf("%04o", uint32(defaults.Output.FileMode)),
		"permissions of created files, in octal")
	flags.String("gcs-creds", defaults.Output.GCSCredentials,
		"path to gcloud credential file used for gs:// outputs")

	/** ======================== Logging Flags ========================== **/
	flags.String("log-level", defaults.LOGGING.Level, "logging level")
	flags.String("log-encoder", defaults.LOGGING.Encoder, "log as console or json")

	/** ======================== Metrics Flags ========================== **/
	flags.String("metrics-push", defaults.Metrics.PushURL, "push conversion metrics to this pushgateway url")
	flags.String("metrics-job", defaults.Metrics.Job, "job name used when pushing metrics")
	flags.Duration("metrics-push-timeout", defaults.Metrics.PushTimeout, "timeout for pushing metrics")
	return cmd
}

func validateArgs(cmd *cobra.Command, args []string) error {
	f := cmd.Flags().Lookup(fromFileFlag)
	if f == nil || !f.Changed {
		return cobra.ExactArgs(2)(cmd, args)
	}
	if f.Value.String() == "" {
		return errors.New("--from-file requires a path")
	}
	return cobra.RangeArgs(1, 2)(cmd, args)
}

// sourceFromArgs maps the positional arguments to the payload source and the
// output. The output is always the last argument.
func sourceFromArgs(fromFile string, args []string) (converter.Source, string) {
	src := converter.Source{File: fromFile}
	if len(args) == 2 {
		src.Inline = args[0]
	}
	return src, args[len(args)-1]
}

func newLogger(w io.Writer, conf config.LoggerConfig) (log.Log, error) {
	lvl, err := log.ParseLevel(strings.ToLower(conf.Level))
	if err != nil {
		return log.Log{}, fmt.Errorf("parse log level: %w", err)
	}
	switch conf.Encoder {
	case log.ConsoleEncoder, log.JSONEncoder:
	default:
		return log.Log{}, fmt.Errorf("unknown log encoder %q", conf.Encoder)
	}
	return log.NewWithWriter(w, "", lvl, log.NewEncoder(conf.Encoder)), nil
}

// newSink builds the writer chain for local outputs and the remote writer for
// gs:// outputs. The remote writer must be closed by the caller.
func newSink(conf config.OutputConfig) (*filesystem.Dispatcher, *filesystem.GCSWriter) {
	var local filesystem.Writer = filesystem.NewFsWriter(afero.NewOsFs(), conf.FileMode)
	if conf.Atomic {
		local = filesystem.NewAtomicWriter(conf.FileMode)
	}
	if conf.Lock {
		local = filesystem.NewLockedWriter(local)
	}
	remote := filesystem.NewGCSWriter(conf.GCSCredentials)
	return filesystem.NewDispatcher(local, remote), remote
}
