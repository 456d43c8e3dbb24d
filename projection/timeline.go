package projection

import (
	"companion-lab/domain"

	"github.com/samber/lo"
)

// TimelineEntry is a chat message as seen by one viewer.
type TimelineEntry struct {
	domain.ChatMessage
	IsMe bool `json:"isMe"`
}

// Timeline holds a group chat as rendered for its viewer
type Timeline struct {
	Owner    string          `json:"owner"`
	Messages []TimelineEntry `json:"messages"`
}

func NewTimeline(owner string, messages []domain.ChatMessage) *Timeline {
	return &Timeline{
		Owner: owner,
		Messages: lo.Map(messages, func(m domain.ChatMessage, _ int) TimelineEntry {
			return TimelineEntry{ChatMessage: m, IsMe: m.SenderID == owner}
		}),
	}
}
