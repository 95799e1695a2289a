package messagebus

import (
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// MQTTSink forwards Warning- and Error-severity messages to an MQTT topic
// as they are pushed, so a long-running simulation can be watched
// remotely without the core itself knowing anything about the transport.
// It taps a Bus via Subscribe rather than draining it, so it never steals
// messages from a caller polling PopMessage.
type MQTTSink struct {
	client mqtt.Client
	topic  string
	qos    byte
}

// NewMQTTSink connects to an MQTT broker at brokerURL (e.g.
// "tcp://localhost:1883") and returns a sink that publishes to topic.
func NewMQTTSink(brokerURL, clientID, topic string) (*MQTTSink, error) {
	opts := mqtt.NewClientOptions().AddBroker(brokerURL).SetClientID(clientID)
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("messagebus: connect mqtt sink: %w", token.Error())
	}
	return &MQTTSink{client: client, topic: topic, qos: 1}, nil
}

// Attach subscribes the sink to bus. Call once per Bus.
func (s *MQTTSink) Attach(bus *Bus) {
	bus.Subscribe(s.onMessage)
}

func (s *MQTTSink) onMessage(msg Message) {
	if msg.Severity != Warning && msg.Severity != Error {
		return
	}
	payload := fmt.Sprintf("[%s] %s: %s", msg.Severity, msg.Tag, msg.Text)
	s.client.Publish(s.topic, s.qos, false, payload)
}

// Close disconnects from the broker, waiting up to 250ms for in-flight
// publishes to drain.
func (s *MQTTSink) Close() {
	s.client.Disconnect(250)
}
