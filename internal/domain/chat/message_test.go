package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr error
	}{
		{name: "plain content", content: "hello there", want: "hello there"},
		{name: "surrounding whitespace is trimmed", content: "  hi  ", want: "hi"},
		{name: "max length is accepted", content: strings.Repeat("a", MaxContentLength), want: strings.Repeat("a", MaxContentLength)},
		{name: "empty", content: "", wantErr: ErrEmptyContent},
		{name: "whitespace only", content: "   \t\n", wantErr: ErrEmptyContent},
		{name: "over max length", content: strings.Repeat("a", MaxContentLength+1), wantErr: ErrContentTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)

			msg, err := NewMessage("author-1", tt.content)
			if tt.wantErr != nil {
				req.ErrorIs(err, tt.wantErr)
				return
			}

			req.NoError(err)
			req.Equal("author-1", msg.AuthorID)
			req.Equal(tt.want, msg.Content)
			req.NotZero(msg.ID)
			req.False(msg.CreatedAt.IsZero())
			req.False(msg.IsEdited)
		})
	}
}
