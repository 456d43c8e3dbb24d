package server

import (
	"companion-lab/auth"
	"companion-lab/domain"
	"companion-lab/projection"
	"companion-lab/services"
	"context"
	"io"
	"net/http"

	"github.com/samber/lo"
)

type contentBody struct {
	Content string `json:"content"`
}

type commentBody struct {
	Content   string `json:"content"`
	ReplyToID string `json:"replyToId,omitempty"`
}

type loginResponse struct {
	Token services.Token     `json:"token"`
	User  domain.UserProfile `json:"user"`
}

// eventResponse adds what the viewer may do on the event.
type eventResponse struct {
	domain.TripEvent
	Role          domain.Role       `json:"role"`
	CanApply      bool              `json:"canApply"`
	CanManage     bool              `json:"canManage"`
	EnrolledCount int               `json:"enrolledCount"`
	PendingCount  int               `json:"pendingCount"`
	Full          bool              `json:"isFull"`
	Unattachable  int               `json:"unattachable"`
	MyApplication *domain.Applicant `json:"myApplication,omitempty"`
}

type leaderboardResponse struct {
	Ranking   []projection.RankedPost `json:"ranking"`
	Champions []domain.Champion       `json:"champions"`
}

type notificationsResponse struct {
	Notifications []domain.Notification `json:"notifications"`
	Unread        int                   `json:"unread"`
}

func currentUser(r *http.Request) domain.UserProfile {
	user, _ := auth.UserFromContext(r.Context())
	return user
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	token, user, err := s.authService.Login()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if err := s.authService.Logout(); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, currentUser(r))
}

func (s *Server) bindPhone(w http.ResponseWriter, r *http.Request) {
	body, err := decode[auth.PhoneRequest](r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	user, err := s.authService.BindPhone(body.Phone)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, user)
}

func (s *Server) listEvents(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.eventService.List(r.URL.Query().Get("tag")))
}

func (s *Server) searchEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.eventService.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, events)
}

func (s *Server) createEvent(w http.ResponseWriter, r *http.Request) {
	body, err := decode[auth.CreateEventRequest](r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	e, err := s.eventService.Create(r.Context(), currentUser(r), body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, e)
}

func (s *Server) getEvent(w http.ResponseWriter, r *http.Request) {
	e, err := s.eventService.Get(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toEventResponse(e, currentUser(r)))
}

func toEventResponse(e domain.TripEvent, user domain.UserProfile) eventResponse {
	session := domain.NewSession(user, e)
	response := eventResponse{
		TripEvent:     e,
		Role:          session.Role,
		CanManage:     session.CanManageApplicants(),
		EnrolledCount: e.EnrolledCount(),
		PendingCount:  e.PendingCount(),
		Full:          e.IsFull(),
		Unattachable:  projection.CountUnattachable(e.Comments, e.Organizer.ID),
	}
	applicant, applied := e.ApplicantOf(user.ID)
	if applied {
		response.MyApplication = &applicant
	}
	response.CanApply = session.CanApply() && !applied && !response.Full
	return response
}

func (s *Server) threads(w http.ResponseWriter, r *http.Request) {
	consultation, err := s.consultationService.Threads(currentUser(r), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, consultation)
}

func (s *Server) ask(w http.ResponseWriter, r *http.Request) {
	body, err := decode[contentBody](r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	message, err := s.consultationService.Ask(r.Context(), currentUser(r), r.PathValue("id"), body.Content)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, message)
}

func (s *Server) reply(w http.ResponseWriter, r *http.Request) {
	body, err := decode[contentBody](r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	message, err := s.consultationService.Reply(r.Context(), currentUser(r), r.PathValue("id"), r.PathValue("counterpart"), body.Content)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, message)
}

func (s *Server) apply(w http.ResponseWriter, r *http.Request) {
	body, err := decode[auth.ApplyRequest](r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	e, err := s.eventService.Apply(r.Context(), currentUser(r), r.PathValue("id"), body.Intro)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toEventResponse(e, currentUser(r)))
}

func (s *Server) approve(w http.ResponseWriter, r *http.Request) {
	s.decide(w, r, s.eventService.Approve)
}

func (s *Server) reject(w http.ResponseWriter, r *http.Request) {
	s.decide(w, r, s.eventService.Reject)
}

type decision func(ctx context.Context, organizer domain.UserProfile, eventID, applicantID string) (domain.TripEvent, error)

func (s *Server) decide(w http.ResponseWriter, r *http.Request, fn decision) {
	e, err := fn(r.Context(), currentUser(r), r.PathValue("id"), r.PathValue("user"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toEventResponse(e, currentUser(r)))
}

func (s *Server) posts(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.galleryService.Posts())
}

func (s *Server) post(w http.ResponseWriter, r *http.Request) {
	post, err := s.galleryService.Post(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, post)
}

func (s *Server) leaderboard(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, leaderboardResponse{
		Ranking:   s.galleryService.Leaderboard(),
		Champions: s.galleryService.Champions(),
	})
}

func (s *Server) createPost(w http.ResponseWriter, r *http.Request) {
	body, err := decode[auth.CreatePostRequest](r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	post, err := s.galleryService.CreatePost(r.Context(), currentUser(r), body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, post)
}

func (s *Server) like(w http.ResponseWriter, r *http.Request) {
	post, err := s.galleryService.ToggleLike(r.Context(), currentUser(r), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, post)
}

func (s *Server) comment(w http.ResponseWriter, r *http.Request) {
	body, err := decode[commentBody](r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	post, err := s.galleryService.Comment(r.Context(), currentUser(r), r.PathValue("id"), body.Content, body.ReplyToID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, post)
}

func (s *Server) uploadImage(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxImageBytes))
	if err != nil {
		http.Error(w, "image too large", http.StatusRequestEntityTooLarge)
		return
	}
	path, err := s.galleryService.UploadImage(currentUser(r), data)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]string{"path": path})
}

func (s *Server) image(w http.ResponseWriter, r *http.Request) {
	image, err := s.galleryService.Image(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", image.ContentType)
	_, _ = w.Write(image.Data)
}

func (s *Server) notifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := s.inboxService.Notifications(currentUser(r).ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	unread := lo.CountBy(notifications, func(n domain.Notification) bool { return !n.Read })
	s.writeJSON(w, http.StatusOK, notificationsResponse{Notifications: notifications, Unread: unread})
}

func (s *Server) unread(w http.ResponseWriter, r *http.Request) {
	count, err := s.inboxService.UnreadCount(currentUser(r).ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]int{"unread": count})
}

func (s *Server) markRead(w http.ResponseWriter, r *http.Request) {
	notification, err := s.inboxService.MarkRead(currentUser(r).ID, r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, notification)
}

func (s *Server) chats(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.inboxService.Chats(currentUser(r).ID))
}

func (s *Server) chatMessages(w http.ResponseWriter, r *http.Request) {
	timeline, err := s.inboxService.ChatMessages(currentUser(r).ID, r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, timeline)
}

func (s *Server) sendMessage(w http.ResponseWriter, r *http.Request) {
	body, err := decode[contentBody](r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	message, err := s.inboxService.Send(r.Context(), currentUser(r), r.PathValue("id"), body.Content)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, message)
}
