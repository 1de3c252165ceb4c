package request

// CommentNotificationRequest represents the JSON body the review feature
// posts when a comment should be fanned out to movie watchers.
type CommentNotificationRequest struct {
	RecipientIDs    []string `json:"recipientIds"`
	CommentUsername string   `json:"commentUsername"`
	CommentText     string   `json:"commentText"`
	MovieID         string   `json:"movieId"`
	MovieTitle      string   `json:"movieTitle"`
}

// UpdateMessageRequest represents the JSON body for editing a chat message.
type UpdateMessageRequest struct {
	Content string `json:"content"`
}
