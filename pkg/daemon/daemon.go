// Package daemon wires a configured link with recording, metrics and the
// MQTT bridge for the commands.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/golang/glog"

	"github.com/robotalks/crsf.go/pkg/config"
	"github.com/robotalks/crsf.go/pkg/crsf"
	"github.com/robotalks/crsf.go/pkg/crsf/capture"
	"github.com/robotalks/crsf.go/pkg/crsf/link"
	"github.com/robotalks/crsf.go/pkg/crsf/processor"
	fx "github.com/robotalks/crsf.go/pkg/framework"
	"github.com/robotalks/crsf.go/pkg/telemetry/metrics"
	"github.com/robotalks/crsf.go/pkg/telemetry/mqtt"
)

// Daemon owns the resources opened from a Config.
type Daemon struct {
	Config    *config.Config
	Conn      link.Conn
	Link      *link.Link
	Handlers  processor.Handlers
	Collector *metrics.Collector
	Queue     *mqtt.Queue

	closers []func() error
}

// New opens the source and sets up the optional parts. Close releases
// everything even if New fails halfway.
func New(conf *config.Config) (d *Daemon, err error) {
	d = &Daemon{Config: conf}
	defer func() {
		if err != nil {
			d.Close()
			d = nil
		}
	}()

	if d.Conn, err = link.OpenWith(conf.Source, conf.LinkOptions()); err != nil {
		return d, fmt.Errorf("open %s: %w", conf.Source, err)
	}
	d.closers = append(d.closers, d.Conn.Close)
	d.Link = link.New(d.Conn)
	glog.Infof("source %s opened", conf.Source)

	if conf.Record != "" {
		f, err := os.Create(conf.Record)
		if err != nil {
			return d, err
		}
		d.closers = append(d.closers, f.Close)
		d.Link.WithRecorder(capture.NewWriter(f))
		glog.Infof("recording into %s", conf.Record)
	}

	d.Collector = metrics.NewCollector(metrics.NewRegistry())
	d.Collector.WatchStats(d.Link.Processor)
	d.Link.Processor.Observer = d.Collector

	if conf.MQTT.URL != "" {
		if d.Queue, err = mqtt.NewQueueFromURL(conf.MQTT.URL, conf.MQTT.ClientID); err != nil {
			return d, err
		}
		if err = d.Queue.Connect(); err != nil {
			return d, fmt.Errorf("connect %s: %w", conf.MQTT.URL, err)
		}
		d.closers = append(d.closers, d.Queue.Close)
		pub := mqtt.NewPublisher(d.Queue)
		pub.Retain = conf.MQTT.Retain
		d.Handlers = append(d.Handlers, pub)
		if conf.MQTT.Control {
			mqtt.SubscribeChannels(d.Queue, d.Link)
		}
		glog.Infof("MQTT %s connected as %s", conf.MQTT.URL, conf.MQTT.ClientID)
	}
	d.Link.WithHandler(d.Handlers)
	return d, nil
}

// AddHandler appends a frame handler.
func (d *Daemon) AddHandler(h processor.FrameHandler) {
	d.Handlers = append(d.Handlers, h)
	d.Link.WithHandler(d.Handlers)
}

// Send implements joystick.Sender.
func (d *Daemon) Send(e crsf.Encoder) error {
	return d.Link.Send(e)
}

// Runnables are the link and, if configured, the metrics server.
func (d *Daemon) Runnables() []fx.Runnable {
	runnables := []fx.Runnable{fx.NamedRun("link", d.Link)}
	if addr := d.Config.MetricsAddr; addr != "" {
		runnables = append(runnables, fx.NamedRun("metrics", fx.RunFunc(func(ctx context.Context) error {
			return d.serveMetrics(ctx, addr)
		})))
	}
	return runnables
}

func (d *Daemon) serveMetrics(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", d.Collector.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	glog.Infof("serving metrics on %s", addr)
	err := fx.RunWithContextCancel(ctx, func() { srv.Close() }, srv.ListenAndServe)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Close releases resources in reverse order.
func (d *Daemon) Close() error {
	var errs fx.AggregatedError
	for n := len(d.closers) - 1; n >= 0; n-- {
		errs.Add(d.closers[n]())
	}
	d.closers = nil
	return errs.Aggregate()
}
