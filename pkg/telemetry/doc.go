// Package telemetry converts decoded frames into messages published to
// the outside world.
package telemetry
