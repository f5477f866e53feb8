package mqtt

import (
	"context"

	"github.com/golang/glog"
	"github.com/golang/protobuf/proto"

	"github.com/robotalks/crsf.go/pkg/crsf"
	"github.com/robotalks/crsf.go/pkg/telemetry"
	"github.com/robotalks/crsf.go/pkg/telemetry/msgs"
)

// Publisher publishes telemetry frames as protobuf messages.
type Publisher struct {
	Queue  *Queue
	Retain bool
}

// NewPublisher creates a Publisher.
func NewPublisher(q *Queue) *Publisher {
	return &Publisher{Queue: q}
}

// HandleFrame implements processor.FrameHandler.
func (p *Publisher) HandleFrame(_ context.Context, frame crsf.Frame) {
	topic := telemetry.Topic(frame)
	if topic == "" {
		return
	}
	msg := telemetry.FromFrame(frame)
	if msg == nil {
		return
	}
	if err := p.Queue.PubMessage(topic, msg, p.Retain); err != nil {
		glog.Errorf("publish %s error: %v", topic, err)
	}
}

// PubMessage publishes a protobuf message without waiting for delivery.
func (q *Queue) PubMessage(topic string, msg proto.Message, retain bool) error {
	payload, err := proto.Marshal(msg)
	if err != nil {
		return err
	}
	q.PubWith(topic, payload, 0, retain)
	return nil
}

// Sender sends outbound frames.
type Sender interface {
	Send(crsf.Encoder) error
}

// SubscribeChannels forwards Channels messages received on
// telemetry.TopicRCChannels to sender as channels frames.
func SubscribeChannels(q *Queue, sender Sender) *Subscription {
	return q.Sub(telemetry.TopicRCChannels, func(topic string, payload []byte) {
		var msg msgs.Channels
		if err := proto.Unmarshal(payload, &msg); err != nil {
			glog.Warningf("%s: invalid message: %v", topic, err)
			return
		}
		if err := sender.Send(telemetry.ChannelsConfig(&msg)); err != nil {
			glog.Warningf("%s: send channels error: %v", topic, err)
		}
	})
}
