package routes

import (
	"net/http"

	swaggerHandler "github.com/swaggo/http-swagger"

	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/auth"
	_ "github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/docs" // swagger docs
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/middleware"
	"github.com/UniversityOfGdanskProjects/projektprogramistyczny-Wikator-sub001/internal/response"
)

type AppDeps struct {
	Home         HomeHandler
	Chat         ChatHandler
	Notification NotificationHandler
	Verifier     auth.Verifier
}

type HomeHandler interface {
	Index(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type ChatHandler interface {
	GetRecentMessages(w http.ResponseWriter, r *http.Request)
	UpdateMessage(w http.ResponseWriter, r *http.Request)
	DeleteMessage(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	UnreadCount(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	MarkAllRead(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	DeleteAll(w http.ResponseWriter, r *http.Request)
	NotifyComment(w http.ResponseWriter, r *http.Request)
}

func Register(mux *http.ServeMux, d AppDeps) {
	mux.HandleFunc("GET /{$}", d.Home.Index)
	mux.HandleFunc("GET /health", d.Home.Health)

	mux.HandleFunc("GET /messages/recent", d.Chat.GetRecentMessages)

	// Message edits and everything under /notifications are scoped to the
	// authenticated user.
	authed := middleware.RequireAuth(d.Verifier)
	handle := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, authed(h))
	}

	handle("PUT /messages/{id}", d.Chat.UpdateMessage)
	handle("DELETE /messages/{id}", d.Chat.DeleteMessage)

	handle("GET /notifications", d.Notification.List)
	handle("GET /notifications/unread-count", d.Notification.UnreadCount)
	handle("PATCH /notifications/{id}/read", d.Notification.MarkRead)
	handle("PATCH /notifications/read-all", d.Notification.MarkAllRead)
	handle("DELETE /notifications/{id}", d.Notification.Delete)
	handle("DELETE /notifications", d.Notification.DeleteAll)
	handle("POST /notifications/comment", d.Notification.NotifyComment)

	//Swagger
	mux.HandleFunc("GET /swagger/", swaggerHandler.WrapHandler)

	// Fallback handler for undefined routes (404)
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.RespondError(w, http.StatusNotFound, "route not found")
	}))
}
