package converter

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/morningowl/dicomcraft/metrics"
)

const (
	subsystem   = "converter"
	resultLabel = "result"
	resultOK    = "ok"
)

var (
	conversions = metrics.NewCounter(
		"conversions_total",
		subsystem,
		"Number of conversions by result",
		[]string{resultLabel},
	)
	decodedBytes = metrics.NewHistogramWithBuckets(
		"decoded_bytes",
		subsystem,
		"Size of successfully decoded payloads",
		[]string{},
		prometheus.ExponentialBuckets(1024, 4, 10),
	).WithLabelValues()
	lastConversion = metrics.NewGauge(
		"last_conversion_timestamp_seconds",
		subsystem,
		"Unix time of the last conversion by result",
		[]string{resultLabel},
	)
	conversionDuration = metrics.NewHistogramWithBuckets(
		"duration_seconds",
		subsystem,
		"Time spent resolving, decoding and writing a payload",
		[]string{resultLabel},
		prometheus.ExponentialBuckets(0.001, 2, 14),
	)
)
