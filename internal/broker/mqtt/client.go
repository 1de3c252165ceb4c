package mqtt

import (
	"crypto/tls"
	"fmt"
	"log"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/broker"
)

const (
	connectTimeout    = 10 * time.Second
	operationTimeout  = 5 * time.Second
	disconnectQuiesce = 250 // milliseconds given to in-flight work on disconnect
)

// Client is an MQTT-backed implementation of the broker interface.
// One encrypted connection is held for the process lifetime; reconnects and
// re-subscription are delegated to the underlying library.
type Client struct {
	cli paho.Client
}

// Options configures the MQTT connection.
type Options struct {
	URL      string
	ClientID string
	Username string
	Password string
}

// Connect establishes the broker connection and blocks until it is up or
// the connect timeout expires.
func Connect(opts Options) (*Client, error) {
	cfg := paho.NewClientOptions().
		AddBroker(opts.URL).
		SetClientID(opts.ClientID).
		SetUsername(opts.Username).
		SetPassword(opts.Password).
		SetTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12}).
		SetAutoReconnect(true).
		SetResumeSubs(true).
		SetOrderMatters(false).
		SetConnectionLostHandler(func(_ paho.Client, err error) {
			log.Printf("[Broker] Connection lost: %v", err)
		}).
		SetOnConnectHandler(func(paho.Client) {
			log.Println("[Broker] Connected.")
		})

	cli := paho.NewClient(cfg)

	token := cli.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("broker connect timed out after %s", connectTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("broker connect: %w", err)
	}

	return &Client{cli: cli}, nil
}

// Publish sends a payload to a topic with QoS 1.
func (c *Client) Publish(topic string, payload []byte) error {
	token := c.cli.Publish(topic, 1, false, payload)
	if !token.WaitTimeout(operationTimeout) {
		return fmt.Errorf("publish to %s timed out", topic)
	}
	return token.Error()
}

// Subscribe registers a handler for a topic with QoS 1.
func (c *Client) Subscribe(topic string, handler broker.Handler) error {
	token := c.cli.Subscribe(topic, 1, func(_ paho.Client, msg paho.Message) {
		handler(msg.Topic(), msg.Payload())
	})
	if !token.WaitTimeout(operationTimeout) {
		return fmt.Errorf("subscribe to %s timed out", topic)
	}
	return token.Error()
}

// Disconnect tears down the connection, giving in-flight work a short
// quiesce window.
func (c *Client) Disconnect() {
	c.cli.Disconnect(disconnectQuiesce)
}

var _ broker.Client = (*Client)(nil)
