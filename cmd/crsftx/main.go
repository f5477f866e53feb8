package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/robotalks/crsf.go/pkg/config"
	"github.com/robotalks/crsf.go/pkg/daemon"
	fx "github.com/robotalks/crsf.go/pkg/framework"
	"github.com/robotalks/crsf.go/pkg/joystick"
	"github.com/robotalks/crsf.go/pkg/joystick/msgs"
)

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

	ctl, err := conf.Joystick.NewController(d)
	if err != nil {
		glog.Exit(err)
	}
	if q := d.Queue; q != nil {
		ctl.Reporter = joystick.ReportStatusFunc(func(status *msgs.JoystickStatus) {
			if err := q.PubMessage(msgs.TopicStatus, status, true); err != nil {
				glog.Errorf("publish status error: %v", err)
			}
		})
	}

	loop := fx.NewLoop(conf.Joystick.Interval()).Add(ctl)
	loop.AddRunnable(d.Runnables()...)
	runner := fx.NewRunner().HandleSignals().Go(loop)
	if err := runner.Wait(); err != nil {
		glog.Error(err)
		d.Close()
		glog.Flush()
		os.Exit(1)
	}
}
