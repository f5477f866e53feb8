package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/robotalks/crsf.go/pkg/config"
	"github.com/robotalks/crsf.go/pkg/crsf"
	"github.com/robotalks/crsf.go/pkg/crsf/processor"
	"github.com/robotalks/crsf.go/pkg/daemon"
	fx "github.com/robotalks/crsf.go/pkg/framework"
)

func logFrame(_ context.Context, frame crsf.Frame) {
	if glog.V(1) {
		glog.Info(frame)
	}
}

func main() {
	conf, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		glog.Exit(err)
	}
	d, err := daemon.New(conf)
	if err != nil {
		glog.Exit(err)
	}
	defer d.Close()
	d.AddHandler(processor.HandleFrameFunc(logFrame))

	err = fx.NewRunner().HandleSignals().Go(d.Runnables()...).Wait()
	stats := d.Link.Processor.Stats()
	glog.Infof("%d frames, %d errors (%d%%)", stats.Processed, stats.Errors, stats.ErrorRate())
	if err != nil {
		glog.Error(err)
		d.Close()
		glog.Flush()
		os.Exit(1)
	}
}
