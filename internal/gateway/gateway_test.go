package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/auth"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/broker"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/domain/chat"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/result"
)

const testIssuer = "movie-catalog-api"

var signingKey = []byte("gateway-test-signing-key")

// fakeBroker records publishes and captures the subscribed handler.
type fakeBroker struct {
	mu        sync.Mutex
	published []publishCall
	handlers  map[string]func(topic string, payload []byte)
}

type publishCall struct {
	topic   string
	payload []byte
}

func newFakeBroker() *fakeBroker {
	return &fakeBroker{handlers: map[string]func(string, []byte){}}
}

func (f *fakeBroker) Publish(topic string, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, publishCall{topic: topic, payload: payload})
	return nil
}

func (f *fakeBroker) Subscribe(topic string, handler broker.Handler) error {
	f.handlers[topic] = handler
	return nil
}

func (f *fakeBroker) Disconnect() {}

func (f *fakeBroker) publishes() []publishCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]publishCall(nil), f.published...)
}

// fakeMessageStore counts Create calls and returns a canned outcome.
type fakeMessageStore struct {
	mu      sync.Mutex
	calls   []createCall
	status  result.Status
	infraEr error
}

type createCall struct {
	authorID string
	content  string
}

func (f *fakeMessageStore) Create(ctx context.Context, authorID, content string) (result.Result[chat.Message], error) {
	f.mu.Lock()
	f.calls = append(f.calls, createCall{authorID: authorID, content: content})
	f.mu.Unlock()

	if f.infraEr != nil {
		return result.Fail[chat.Message](result.UnexpectedError), f.infraEr
	}
	if f.status != result.Completed {
		return result.Fail[chat.Message](f.status), nil
	}

	msg, _ := chat.NewMessage(authorID, content)
	msg.AuthorName = "tester"
	return result.Ok(*msg), nil
}

func (f *fakeMessageStore) createCalls() []createCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]createCall(nil), f.calls...)
}

func signFor(t *testing.T, key []byte, subject string) string {
	t.Helper()
	token, err := auth.NewTokenVerifier(key, testIssuer).Sign(subject, time.Minute)
	require.NoError(t, err)
	return token
}

func payload(t *testing.T, token, content string) []byte {
	t.Helper()
	raw, err := json.Marshal(map[string]string{"token": token, "content": content})
	require.NoError(t, err)
	return raw
}

func newTestGateway(store *fakeMessageStore) (*Gateway, *fakeBroker) {
	client := newFakeBroker()
	verifier := auth.NewTokenVerifier(signingKey, testIssuer)
	return New(client, verifier, store), client
}

func TestGateway_ValidMessagePersistsAndRepublishes(t *testing.T) {
	req := require.New(t)
	store := &fakeMessageStore{}
	gw, client := newTestGateway(store)

	gw.handle(payload(t, signFor(t, signingKey, "user-u"), "hello"))

	calls := store.createCalls()
	req.Len(calls, 1)
	req.Equal("user-u", calls[0].authorID)
	req.Equal("hello", calls[0].content)

	published := client.publishes()
	req.Len(published, 1)
	req.Equal(TopicOutbound, published[0].topic)

	var out validatedMessage
	req.NoError(json.Unmarshal(published[0].payload, &out))
	req.Equal("hello", out.Content)
	req.Equal("tester", out.AuthorDisplayName)
	req.NotEmpty(out.ID)
}

// A token signed with a different key is never persisted and never republished.
func TestGateway_DropsBadlySignedToken(t *testing.T) {
	req := require.New(t)
	store := &fakeMessageStore{}
	gw, client := newTestGateway(store)

	gw.handle(payload(t, signFor(t, []byte("not-the-signing-key"), "user-u"), "hello"))

	req.Empty(store.createCalls())
	req.Empty(client.publishes())
}

func TestGateway_DropsExpiredToken(t *testing.T) {
	req := require.New(t)
	store := &fakeMessageStore{}
	gw, client := newTestGateway(store)

	expired, err := auth.NewTokenVerifier(signingKey, testIssuer).Sign("user-u", -time.Minute)
	req.NoError(err)

	gw.handle(payload(t, expired, "hello"))

	req.Empty(store.createCalls())
	req.Empty(client.publishes())
}

// A valid signature without a subject-identity claim is still a drop.
func TestGateway_DropsTokenWithoutSubject(t *testing.T) {
	req := require.New(t)
	store := &fakeMessageStore{}
	gw, client := newTestGateway(store)

	claims := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	req.NoError(err)

	gw.handle(payload(t, token, "hello"))

	req.Empty(store.createCalls())
	req.Empty(client.publishes())
}

func TestGateway_DropsMalformedPayload(t *testing.T) {
	req := require.New(t)
	store := &fakeMessageStore{}
	gw, client := newTestGateway(store)

	gw.handle([]byte("not json at all"))
	gw.handle([]byte(`{"token": "", "content": "hello"}`))
	gw.handle([]byte(`{"content": "orphan"}`))

	req.Empty(store.createCalls())
	req.Empty(client.publishes())
}

func TestGateway_DropsWhenAuthorUnknown(t *testing.T) {
	req := require.New(t)
	store := &fakeMessageStore{status: result.NotFound}
	gw, client := newTestGateway(store)

	gw.handle(payload(t, signFor(t, signingKey, "ghost"), "hello"))

	req.Len(store.createCalls(), 1)
	req.Empty(client.publishes())
}

func TestGateway_DropsOnStoreFault(t *testing.T) {
	req := require.New(t)
	store := &fakeMessageStore{infraEr: errors.New("store unreachable")}
	gw, client := newTestGateway(store)

	gw.handle(payload(t, signFor(t, signingKey, "user-u"), "hello"))

	req.Empty(client.publishes())
}

func TestGateway_StartSubscribesInboundTopic(t *testing.T) {
	req := require.New(t)
	store := &fakeMessageStore{}
	gw, client := newTestGateway(store)

	req.NoError(gw.Start())
	req.Contains(client.handlers, TopicInbound)
}
