package server

import (
	"companion-lab/auth"
	"companion-lab/errors"
	"companion-lab/services"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// Server exposes the services as JSON over HTTP.
type Server struct {
	authService         services.IAuthService
	eventService        services.IEventService
	consultationService services.IConsultationService
	galleryService      services.IGalleryService
	inboxService        services.IInboxService
	maxImageBytes       int64
	log                 *slog.Logger
}

func NewServer(
	log *slog.Logger,
	authService services.IAuthService,
	eventService services.IEventService,
	consultationService services.IConsultationService,
	galleryService services.IGalleryService,
	inboxService services.IInboxService,
	maxImageBytes int64,
) *Server {
	return &Server{
		authService:         authService,
		eventService:        eventService,
		consultationService: consultationService,
		galleryService:      galleryService,
		inboxService:        inboxService,
		maxImageBytes:       maxImageBytes,
		log:                 log,
	}
}

// Routes builds the mux. Every route but login and image download requires a bearer token.
func (s *Server) Routes() http.Handler {
	public := http.NewServeMux()
	private := http.NewServeMux()

	public.HandleFunc("POST /login", s.login)
	public.HandleFunc("GET /images/{id}", s.image)
	public.Handle("/", auth.Middleware(s.authService.Authenticate, private))

	private.HandleFunc("POST /logout", s.logout)
	private.HandleFunc("GET /me", s.me)
	private.HandleFunc("POST /phone", s.bindPhone)

	private.HandleFunc("GET /events", s.listEvents)
	private.HandleFunc("GET /events/search", s.searchEvents)
	private.HandleFunc("POST /events", s.createEvent)
	private.HandleFunc("GET /events/{id}", s.getEvent)
	private.HandleFunc("GET /events/{id}/threads", s.threads)
	private.HandleFunc("POST /events/{id}/questions", s.ask)
	private.HandleFunc("POST /events/{id}/threads/{counterpart}/replies", s.reply)
	private.HandleFunc("POST /events/{id}/applications", s.apply)
	private.HandleFunc("POST /events/{id}/applications/{user}/approve", s.approve)
	private.HandleFunc("POST /events/{id}/applications/{user}/reject", s.reject)

	private.HandleFunc("GET /posts", s.posts)
	private.HandleFunc("GET /posts/{id}", s.post)
	private.HandleFunc("GET /leaderboard", s.leaderboard)
	private.HandleFunc("POST /posts", s.createPost)
	private.HandleFunc("POST /posts/{id}/like", s.like)
	private.HandleFunc("POST /posts/{id}/comments", s.comment)
	private.HandleFunc("POST /images", s.uploadImage)

	private.HandleFunc("GET /notifications", s.notifications)
	private.HandleFunc("GET /notifications/unread", s.unread)
	private.HandleFunc("POST /notifications/{id}/read", s.markRead)
	private.HandleFunc("GET /chats", s.chats)
	private.HandleFunc("GET /chats/{id}/messages", s.chatMessages)
	private.HandleFunc("POST /chats/{id}/messages", s.sendMessage)

	return public
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("Response encoding failed", "error", err)
	}
}

// writeError maps sentinel errors to status codes. Internal errors are logged
// and hidden from the client.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.log.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		message = http.StatusText(status)
	}
	s.writeJSON(w, status, map[string]string{"error": message})
}

func decode[T any](r *http.Request) (T, error) {
	var body T
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return body, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	return body, nil
}
