// Package projection builds read models from the current state.
// Handles grouping, ordering, and display resolution.
// Does not mutate state or interact with storage directly.
package projection

import (
	"companion-lab/domain"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	UnknownInquirer   = "咨询者"
	PlaceholderAvatar = "https://api.dicebear.com/7.x/avataaars/svg?seed=placeholder"
)

// Thread is the conversation between the organizer and one counterpart.
type Thread struct {
	CounterpartID string           `json:"counterpartId"`
	Counterpart   domain.Display   `json:"counterpart"`
	Messages      []domain.Message `json:"messages"`
}

// BuildThreads groups a flat consultation into one thread per counterpart.
// Threads come out in the order their counterpart first appears.
// Organizer messages without an addressee are dropped.
func BuildThreads(messages []domain.Message, organizerID string) []Thread {
	var threads []Thread
	index := make(map[string]int)
	authored := authoredDisplays(messages, organizerID)

	for _, m := range messages {
		ownerID := threadOwner(m, organizerID)
		if ownerID == "" {
			continue
		}
		i, ok := index[ownerID]
		if !ok {
			i = len(threads)
			index[ownerID] = i
			threads = append(threads, Thread{
				CounterpartID: ownerID,
				Counterpart:   resolveDisplay(ownerID, m, authored),
			})
		}
		threads[i].Messages = append(threads[i].Messages, m)
	}
	return threads
}

// CountUnattachable returns how many messages BuildThreads drops.
func CountUnattachable(messages []domain.Message, organizerID string) int {
	return lo.CountBy(messages, func(m domain.Message) bool {
		return threadOwner(m, organizerID) == ""
	})
}

// AppendReply creates the message sent by sender inside the thread of counterpartID.
// Only organizer messages are addressed, a counterpart writes into its own thread.
// The caller appends it to the event and rebuilds the threads.
func AppendReply(threads []Thread, counterpartID, text string, sender domain.UserProfile, organizerID string) domain.Message {
	message := domain.Message{
		ID:           uuid.NewString(),
		AuthorID:     sender.ID,
		AuthorName:   sender.Name,
		AuthorAvatar: sender.Avatar,
		Content:      text,
		Timestamp:    domain.JustNow,
	}
	if sender.ID != organizerID {
		return message
	}
	message.ReplyToID = counterpartID
	if thread, ok := FindThread(threads, counterpartID); ok {
		message.ReplyToName = thread.Counterpart.Name
	}
	return message
}

func FindThread(threads []Thread, counterpartID string) (Thread, bool) {
	return lo.Find(threads, func(t Thread) bool { return t.CounterpartID == counterpartID })
}

func threadOwner(m domain.Message, organizerID string) string {
	if m.AuthorID == organizerID {
		return m.ReplyToID
	}
	return m.AuthorID
}

// authoredDisplays maps each counterpart to its earliest authored message.
func authoredDisplays(messages []domain.Message, organizerID string) map[string]domain.Display {
	displays := make(map[string]domain.Display)
	for _, m := range messages {
		if m.AuthorID == "" || m.AuthorID == organizerID {
			continue
		}
		if _, ok := displays[m.AuthorID]; !ok {
			displays[m.AuthorID] = domain.Display{Name: m.AuthorName, Avatar: m.AuthorAvatar}
		}
	}
	return displays
}

// resolveDisplay prefers what the counterpart wrote over a cached reply name.
func resolveDisplay(ownerID string, first domain.Message, authored map[string]domain.Display) domain.Display {
	if d, ok := authored[ownerID]; ok {
		return d
	}
	if first.ReplyToName != "" {
		return domain.Display{Name: first.ReplyToName, Avatar: PlaceholderAvatar}
	}
	return domain.Display{Name: UnknownInquirer, Avatar: PlaceholderAvatar}
}
