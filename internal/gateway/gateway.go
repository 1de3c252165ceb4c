// Package gateway runs the real-time chat pipeline: deliveries from the
// broker are parsed, authenticated, persisted and fanned back out.
//
// The pipeline is fire-and-forget towards the sender. Any failure (malformed
// payload, bad token, missing author, store fault) drops the delivery with a
// log line and nothing is sent back. A single bad message must never take
// down the connection or other in-flight deliveries.
package gateway

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/auth"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/broker"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/domain/chat"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/result"
)

const (
	// TopicInbound is the broker topic external clients publish chat
	// messages to.
	TopicInbound = "chat/message/api"

	// TopicOutbound is the broker topic validated messages are fanned
	// back out on.
	TopicOutbound = "chat/message/validated"

	// deliveryTimeout bounds the store transaction and the republish for
	// one delivery.
	deliveryTimeout = 10 * time.Second
)

// MessageStore is the slice of the message repository the gateway needs.
type MessageStore interface {
	Create(ctx context.Context, authorID, content string) (result.Result[chat.Message], error)
}

// inboundMessage is the only payload shape accepted on TopicInbound.
type inboundMessage struct {
	Token   string `json:"token"`
	Content string `json:"content"`
}

// validatedMessage is the DTO published on TopicOutbound.
type validatedMessage struct {
	ID                string    `json:"id"`
	AuthorDisplayName string    `json:"authorDisplayName"`
	Content           string    `json:"content"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Gateway wires the broker to the message repository.
type Gateway struct {
	client   broker.Client
	verifier auth.Verifier
	messages MessageStore
}

// New constructs a gateway over an already-connected broker client.
func New(client broker.Client, verifier auth.Verifier, messages MessageStore) *Gateway {
	return &Gateway{
		client:   client,
		verifier: verifier,
		messages: messages,
	}
}

// Start subscribes to the inbound topic. Deliveries are processed
// concurrently and independently; cross-message state does not exist.
func (g *Gateway) Start() error {
	return g.client.Subscribe(TopicInbound, func(_ string, payload []byte) {
		go g.handle(payload)
	})
}

// handle runs the full pipeline for one delivery.
func (g *Gateway) handle(payload []byte) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[Gateway] Panic while handling delivery: %v", rec)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	msg, ok := g.process(ctx, payload)
	if !ok {
		return
	}

	out, err := json.Marshal(validatedMessage{
		ID:                msg.ID.String(),
		AuthorDisplayName: msg.AuthorName,
		Content:           msg.Content,
		CreatedAt:         msg.CreatedAt,
	})
	if err != nil {
		log.Printf("[Gateway] Failed to serialize validated message %s: %v", msg.ID, err)
		return
	}

	// At-most-once towards subscribers: a failed publish is logged, not retried.
	if err := g.client.Publish(TopicOutbound, out); err != nil {
		log.Printf("[Gateway] Failed to republish message %s: %v", msg.ID, err)
	}
}

// process walks parse → authenticate → persist and reports whether the
// delivery survived. Every exit on the false path is a silent drop.
func (g *Gateway) process(ctx context.Context, payload []byte) (chat.Message, bool) {
	var in inboundMessage
	if err := json.Unmarshal(payload, &in); err != nil {
		log.Printf("[Gateway] Dropping delivery: malformed payload: %v", err)
		return chat.Message{}, false
	}
	if in.Token == "" || in.Content == "" {
		log.Println("[Gateway] Dropping delivery: missing token or content.")
		return chat.Message{}, false
	}

	authorID, err := g.verifier.Verify(in.Token)
	if err != nil {
		log.Printf("[Gateway] Dropping delivery: token rejected: %v", err)
		return chat.Message{}, false
	}

	res, err := g.messages.Create(ctx, authorID, in.Content)
	if err != nil {
		log.Printf("[Gateway] Dropping delivery from %s: store fault: %v", authorID, err)
		return chat.Message{}, false
	}
	if !res.IsCompleted() {
		log.Printf("[Gateway] Dropping delivery from %s: %s", authorID, res.Status)
		return chat.Message{}, false
	}

	return res.Value, true
}
