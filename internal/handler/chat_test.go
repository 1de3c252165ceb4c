package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/domain/chat"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/result"
)

// fakeChatService returns canned outcomes per call.
type fakeChatService struct {
	recent    []chat.Message
	updateRes result.Result[chat.Message]
	updateErr error
	deleteRes result.Status
}

func (f *fakeChatService) GetRecent(ctx context.Context) ([]chat.Message, error) {
	return f.recent, nil
}

func (f *fakeChatService) Update(ctx context.Context, userID string, id uuid.UUID, content string) (result.Result[chat.Message], error) {
	return f.updateRes, f.updateErr
}

func (f *fakeChatService) Delete(ctx context.Context, userID string, id uuid.UUID) (result.Status, error) {
	return f.deleteRes, nil
}

func doRequest(h http.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(method+" /messages/{id}", h)

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(method, path, reader))
	return w
}

func TestUpdateMessage(t *testing.T) {
	msg, err := chat.NewMessage("user-1", "edited")
	require.NoError(t, err)
	msg.AuthorName = "tester"
	msg.IsEdited = true

	id := msg.ID.String()

	tests := []struct {
		name       string
		path       string
		body       string
		svc        *fakeChatService
		wantStatus int
	}{
		{
			name:       "completed",
			path:       "/messages/" + id,
			body:       `{"content": "edited"}`,
			svc:        &fakeChatService{updateRes: result.Ok(*msg)},
			wantStatus: http.StatusOK,
		},
		{
			name:       "not owned or missing",
			path:       "/messages/" + id,
			body:       `{"content": "edited"}`,
			svc:        &fakeChatService{updateRes: result.Fail[chat.Message](result.NotFound)},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "empty content",
			path:       "/messages/" + id,
			body:       `{"content": ""}`,
			svc:        &fakeChatService{updateErr: chat.ErrEmptyContent},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid id",
			path:       "/messages/not-a-uuid",
			body:       `{"content": "edited"}`,
			svc:        &fakeChatService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			path:       "/messages/" + id,
			body:       "not json",
			svc:        &fakeChatService{},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(NewChatHandler(tt.svc).UpdateMessage, http.MethodPut, tt.path, tt.body)
			require.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestDeleteMessage(t *testing.T) {
	id := uuid.NewString()

	tests := []struct {
		name       string
		path       string
		svc        *fakeChatService
		wantStatus int
	}{
		{name: "completed", path: "/messages/" + id, svc: &fakeChatService{deleteRes: result.Completed}, wantStatus: http.StatusOK},
		{name: "not owned or missing", path: "/messages/" + id, svc: &fakeChatService{deleteRes: result.NotFound}, wantStatus: http.StatusNotFound},
		{name: "invalid id", path: "/messages/not-a-uuid", svc: &fakeChatService{}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(NewChatHandler(tt.svc).DeleteMessage, http.MethodDelete, tt.path, "")
			require.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
