package event

import (
	"companion-lab/domain"
)

// DomainEvent is produced by a store transition and fanned out to sinks.
type DomainEvent interface {
	Name() string
}

type EventCreated struct {
	Event domain.TripEvent
}

// EventUpdated carries the event after applicants or status changed.
type EventUpdated struct {
	Event domain.TripEvent
}

// QuestionAsked is emitted when a participant opens a consultation thread.
type QuestionAsked struct {
	EventID     string
	EventTitle  string
	OrganizerID string
	Message     domain.Message
}

// ReplyPosted is emitted for every follow-up message inside a thread,
// whoever wrote it.
type ReplyPosted struct {
	EventID       string
	EventTitle    string
	OrganizerID   string
	CounterpartID string
	Message       domain.Message
}

type ApplicationReceived struct {
	EventID     string
	EventTitle  string
	OrganizerID string
	Applicant   domain.Applicant
}

type ApplicationDecided struct {
	EventID    string
	EventTitle string
	Applicant  domain.Applicant
}

type GroupChatCreated struct {
	Chat domain.ChatSession
}

type PostCreated struct {
	Post domain.Post
}

type PostLiked struct {
	PostID   string
	AuthorID string
	Liker    domain.UserProfile
	Liked    bool
	Likes    int
}

type PostCommented struct {
	PostID   string
	AuthorID string
	Comment  domain.Message
}

type ChatMessageSent struct {
	Message domain.ChatMessage
}

func (EventCreated) Name() string        { return "EventCreated" }
func (EventUpdated) Name() string        { return "EventUpdated" }
func (QuestionAsked) Name() string       { return "QuestionAsked" }
func (ReplyPosted) Name() string         { return "ReplyPosted" }
func (ApplicationReceived) Name() string { return "ApplicationReceived" }
func (ApplicationDecided) Name() string  { return "ApplicationDecided" }
func (GroupChatCreated) Name() string    { return "GroupChatCreated" }
func (PostCreated) Name() string         { return "PostCreated" }
func (PostLiked) Name() string           { return "PostLiked" }
func (PostCommented) Name() string       { return "PostCommented" }
func (ChatMessageSent) Name() string     { return "ChatMessageSent" }
