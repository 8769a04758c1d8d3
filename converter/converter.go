// Package converter turns base64 text back into the binary file it encodes.
//
// A conversion resolves the payload (inline text, a file or stdin), decodes
// it and hands the bytes to a Sink. The Sink is only called after decoding
// and the optional DICOM check succeeded, so a malformed payload never
// creates or truncates the output.
package converter

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"

	"github.com/morningowl/dicomcraft/dicom"
	"github.com/morningowl/dicomcraft/log"
)

// Result describes a successful conversion.
type Result struct {
	// Location is the absolute path or URI the bytes were written to.
	Location string
	// InputLength is the length of the base64 text in bytes.
	InputLength int
	// Size is the number of decoded bytes written.
	Size int
	// Elapsed is how long the conversion took, as measured by the clock.
	Elapsed time.Duration
}

// Opt for configuring Converter.
type Opt func(*Converter)

// WithLogger configures logger for converter.
func WithLogger(logger log.Log) Opt {
	return func(c *Converter) {
		c.logger = logger
	}
}

// WithClock configures the clock used to time conversions.
func WithClock(clock clockwork.Clock) Opt {
	return func(c *Converter) {
		c.clock = clock
	}
}

// WithReporter configures where progress lines are printed.
func WithReporter(r *Reporter) Opt {
	return func(c *Converter) {
		c.reporter = r
	}
}

// WithFs configures the filesystem source files are read from.
func WithFs(fsys afero.Fs) Opt {
	return func(c *Converter) {
		c.fs = fsys
	}
}

// WithStdin configures the reader used for StdinPath sources.
func WithStdin(r io.Reader) Opt {
	return func(c *Converter) {
		c.stdin = r
	}
}

// WithDICOMCheck rejects payloads without the DICOM Part 10 preamble.
func WithDICOMCheck(enabled bool) Opt {
	return func(c *Converter) {
		c.checkDICOM = enabled
	}
}

// Converter decodes base64 payloads into a Sink.
type Converter struct {
	sink       Sink
	logger     log.Log
	clock      clockwork.Clock
	reporter   *Reporter
	fs         afero.Fs
	stdin      io.Reader
	checkDICOM bool
}

// New creates a Converter writing to sink.
func New(sink Sink, opts ...Opt) *Converter {
	c := &Converter{
		sink:     sink,
		logger:   log.NewNop(),
		clock:    clockwork.NewRealClock(),
		reporter: NewReporter(io.Discard),
		fs:       afero.NewOsFs(),
		stdin:    os.Stdin,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run resolves src and converts it to output. Every outcome, including a
// missing source file, is counted in metrics.
func (c *Converter) Run(ctx context.Context, src Source, output string) (*Result, error) {
	start := c.clock.Now()
	if src.FromFile() {
		c.reporter.Reading(src.File)
	}
	input, err := ResolveInput(c.fs, c.stdin, src)
	if err != nil {
		return nil, c.failed(start, err)
	}
	return c.convert(ctx, start, input, output)
}

// Convert decodes input and writes the bytes to output.
func (c *Converter) Convert(ctx context.Context, input, output string) (*Result, error) {
	return c.convert(ctx, c.clock.Now(), input, output)
}

func (c *Converter) convert(ctx context.Context, start time.Time, input, output string) (*Result, error) {
	c.reporter.Decoding(len(input))
	data, err := Decode(input)
	if err != nil {
		return nil, c.failed(start, &Error{Kind: KindDecode, Err: err})
	}
	c.reporter.Decoded(len(data))

	if c.checkDICOM {
		if err := dicom.Check(data); err != nil {
			return nil, c.failed(start, &Error{Kind: KindFormat, Err: err})
		}
	} else if !dicom.HasPreamble(data) {
		c.logger.With().Info("payload has no dicom preamble, writing it anyway",
			log.Int("size", len(data)),
		)
	}

	if err := ctx.Err(); err != nil {
		return nil, c.failed(start, &Error{Kind: KindWrite, Path: output, Err: err})
	}
	location, err := c.sink.WriteFile(ctx, output, data)
	if err != nil {
		return nil, c.failed(start, &Error{Kind: KindWrite, Path: output, Err: err})
	}

	res := &Result{
		Location:    location,
		InputLength: len(input),
		Size:        len(data),
		Elapsed:     c.clock.Since(start),
	}
	c.reporter.Written(res.Location, res.Size)
	conversions.WithLabelValues(resultOK).Inc()
	lastConversion.WithLabelValues(resultOK).Set(float64(c.clock.Now().Unix()))
	conversionDuration.WithLabelValues(resultOK).Observe(res.Elapsed.Seconds())
	decodedBytes.Observe(float64(res.Size))
	c.logger.With().Debug("payload converted",
		log.String("location", res.Location),
		log.Int("input_length", res.InputLength),
		log.Int("size", res.Size),
		log.Duration("elapsed", res.Elapsed),
	)
	return res, nil
}

func (c *Converter) failed(start time.Time, err error) error {
	kind := KindOf(err)
	conversions.WithLabelValues(kind.String()).Inc()
	lastConversion.WithLabelValues(kind.String()).Set(float64(c.clock.Now().Unix()))
	conversionDuration.WithLabelValues(kind.String()).Observe(c.clock.Since(start).Seconds())
	c.logger.With().Debug("conversion failed",
		log.Stringer("kind", kind),
		log.Err(err),
	)
	return err
}
