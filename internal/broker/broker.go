// Package broker exposes a minimal interface for the external
// publish/subscribe transport that carries chat traffic.
//
// The concrete client owns the connection for the process lifetime and is
// responsible for reconnecting; this package only defines the contract the
// gateway depends on.
package broker

// Handler receives one inbound delivery from a subscribed topic.
type Handler func(topic string, payload []byte)

// Client is the contract for a publish/subscribe broker client.
type Client interface {
	// Publish sends a payload to a topic. Delivery to subscribers is
	// at-most-once from the caller's point of view.
	Publish(topic string, payload []byte) error

	// Subscribe registers a handler for a topic. The handler may be
	// invoked concurrently with other deliveries.
	Subscribe(topic string, handler Handler) error

	// Disconnect tears down the connection. Called once at shutdown.
	Disconnect()
}
