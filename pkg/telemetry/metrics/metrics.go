// Package metrics exports frame pipeline counters to Prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/robotalks/crsf.go/pkg/crsf"
	"github.com/robotalks/crsf.go/pkg/crsf/processor"
)

// Error kind labels.
const (
	KindCorrupted      = "corrupted"
	KindUnknownType    = "unknown_type"
	KindUnknownAddress = "unknown_address"
	KindInvalidLength  = "invalid_length"
	KindOther          = "other"
)

// StatsSource provides processor counters, usually a *processor.Processor.
type StatsSource interface {
	Stats() processor.Stats
}

// NewRegistry creates a registry with the Go and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Collector counts decoded frames and decode failures. It is both a
// processor.FrameHandler and a processor.Observer.
type Collector struct {
	Frames       *prometheus.CounterVec // labels: type
	DecodeErrors *prometheus.CounterVec // labels: kind
	Telemetry    prometheus.Counter

	reg *prometheus.Registry
}

// NewCollector registers the frame counters in reg.
func NewCollector(reg *prometheus.Registry) *Collector {
	c := &Collector{
		Frames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "crsf_frames_total",
			Help: "Decoded frames by type.",
		}, []string{"type"}),
		DecodeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "crsf_decode_errors_total",
			Help: "Dropped frames by error kind.",
		}, []string{"kind"}),
		Telemetry: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "crsf_telemetry_frames_total",
			Help: "Decoded frames carrying telemetry.",
		}),
		reg: reg,
	}
	reg.MustRegister(c.Frames, c.DecodeErrors, c.Telemetry)
	return c
}

// WatchStats exports the counters of src as gauges.
func (c *Collector) WatchStats(src StatsSource) {
	c.reg.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "crsf_processor_processed",
			Help: "Frames decoded since the last reset.",
		}, func() float64 { return float64(src.Stats().Processed) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "crsf_processor_errors",
			Help: "Frames dropped since the last reset.",
		}, func() float64 { return float64(src.Stats().Errors) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "crsf_processor_error_rate_percent",
			Help: "Dropped frames relative to decoded frames.",
		}, func() float64 { return float64(src.Stats().ErrorRate()) }),
	)
}

// HandleFrame implements processor.FrameHandler.
func (c *Collector) HandleFrame(_ context.Context, frame crsf.Frame) {
	c.FrameDecoded(frame)
}

// FrameDecoded implements processor.Observer.
func (c *Collector) FrameDecoded(frame crsf.Frame) {
	label := "unknown"
	if t, err := frame.Type(); err == nil {
		label = t.String()
	}
	c.Frames.WithLabelValues(label).Inc()
	if frame.IsTelemetry() {
		c.Telemetry.Inc()
	}
}

// DecodeFailed implements processor.Observer.
func (c *Collector) DecodeFailed(_ []byte, err error) {
	c.DecodeErrors.WithLabelValues(ErrorKind(err)).Inc()
}

// Handler serves the registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{Registry: c.reg})
}

// ErrorKind maps a decode error to its label.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, crsf.ErrCorruptedFrame):
		return KindCorrupted
	case errors.Is(err, crsf.ErrUnknownFrameType):
		return KindUnknownType
	case errors.Is(err, crsf.ErrUnknownAddress):
		return KindUnknownAddress
	case errors.Is(err, crsf.ErrInvalidLength):
		return KindInvalidLength
	}
	return KindOther
}
