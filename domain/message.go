// Package domain contains core concepts of the companion system.
// This file defines consultation messages.
// Messages are immutable once appended to an event.
package domain

// JustNow is the display-only timestamp stamped on freshly sent messages.
// Timestamps are never compared, insertion order is the chronology.
const JustNow = "刚刚"

// Message is one entry of an event consultation or a post comment section.
// ReplyToID is only set when the organizer answers a specific participant.
type Message struct {
	ID           string `json:"id"`
	AuthorID     string `json:"authorId"`
	AuthorName   string `json:"authorName"`
	AuthorAvatar string `json:"authorAvatar"`
	Content      string `json:"content"`
	Timestamp    string `json:"timestamp"`
	ReplyToID    string `json:"replyToId,omitempty"`
	ReplyToName  string `json:"replyToName,omitempty"`
}

// IsReply reports whether the message is addressed to someone.
func (m Message) IsReply() bool {
	return m.ReplyToID != ""
}
