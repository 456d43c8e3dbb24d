package domain

// ChatSession is the group chat created once an event is full.
type ChatSession struct {
	ID          string `json:"id"`
	EventID     string `json:"eventId"`
	Title       string `json:"title"`
	Avatar      string `json:"avatar"`
	LastMessage string `json:"lastMessage"`
	LastTime    string `json:"lastTime"`
	Unread      int    `json:"unread"`
}

type ChatMessage struct {
	ID           string `json:"id"`
	ChatID       string `json:"chatId"`
	SenderID     string `json:"senderId"`
	SenderName   string `json:"senderName"`
	SenderAvatar string `json:"senderAvatar"`
	Content      string `json:"content"`
	Time         string `json:"time"`
}

// GroupChatID derives the chat id of an event.
func GroupChatID(eventID string) string {
	return "chat_" + eventID
}
