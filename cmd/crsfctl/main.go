package main

//go-build: CGO_ENABLED=0

import (
	"flag"

	"github.com/golang/glog"

	"github.com/robotalks/crsf.go/pkg/cli/sh"

	_ "github.com/robotalks/crsf.go/pkg/cli/cmds/all"
)

var source string

func init() {
	sh.SetupFlags(flag.CommandLine)
	flag.StringVar(&source, "source", source, "Connect to a frame source on start.")
}

func main() {
	flag.Parse()
	s := sh.New()
	if source != "" {
		if err := s.Connect(source); err != nil {
			glog.Exitf("connect %s: %v", source, err)
		}
	}
	s.Run(flag.Args()...)
}
