package store

import (
	"companion-lab/domain"
	"slices"

	"github.com/samber/lo"
)

// State is an immutable snapshot of the application data.
// Reducers never mutate a State in place, they return a new one sharing
// the slices they did not touch.
type State struct {
	Events       []domain.TripEvent
	Posts        []domain.Post
	Chats        []domain.ChatSession
	ChatMessages map[string][]domain.ChatMessage
	Champions    []domain.Champion
}

func (s State) Event(id string) (domain.TripEvent, bool) {
	return lo.Find(s.Events, func(e domain.TripEvent) bool { return e.ID == id })
}

func (s State) Post(id string) (domain.Post, bool) {
	return lo.Find(s.Posts, func(p domain.Post) bool { return p.ID == id })
}

func (s State) Chat(id string) (domain.ChatSession, bool) {
	return lo.Find(s.Chats, func(c domain.ChatSession) bool { return c.ID == id })
}

// Messages returns the messages of a chat in sending order.
func (s State) Messages(chatID string) []domain.ChatMessage {
	return slices.Clone(s.ChatMessages[chatID])
}

func (s State) withEvent(updated domain.TripEvent) State {
	s.Events = replace(s.Events, updated, func(e domain.TripEvent) bool { return e.ID == updated.ID })
	return s
}

func (s State) withPost(updated domain.Post) State {
	s.Posts = replace(s.Posts, updated, func(p domain.Post) bool { return p.ID == updated.ID })
	return s
}

func (s State) withChat(updated domain.ChatSession) State {
	s.Chats = replace(s.Chats, updated, func(c domain.ChatSession) bool { return c.ID == updated.ID })
	return s
}

func (s State) withChatMessage(message domain.ChatMessage) State {
	messages := make(map[string][]domain.ChatMessage, len(s.ChatMessages)+1)
	for id, m := range s.ChatMessages {
		messages[id] = m
	}
	messages[message.ChatID] = append(slices.Clone(s.ChatMessages[message.ChatID]), message)
	s.ChatMessages = messages
	return s
}

// replace copies items with the first match swapped for updated.
func replace[T any](items []T, updated T, match func(T) bool) []T {
	out := slices.Clone(items)
	if i := slices.IndexFunc(out, match); i >= 0 {
		out[i] = updated
	}
	return out
}

// prepend puts the newest item first, as every list of the application is displayed.
func prepend[T any](items []T, item T) []T {
	return append([]T{item}, items...)
}
