package domain

type NotificationType string

const (
	CommentNotification             NotificationType = "comment"
	ReplyNotification               NotificationType = "reply"
	ApplicationReceivedNotification NotificationType = "application_received"
	ApplicationResultNotification   NotificationType = "application_result"
	TeamInteractionNotification     NotificationType = "team_interaction"
)

type Notification struct {
	ID             string           `json:"id"`
	RecipientID    string           `json:"recipientId"`
	Type           NotificationType `json:"type"`
	Title          string           `json:"title"`
	Content        string           `json:"content"`
	Time           string           `json:"time"`
	Read           bool             `json:"isRead"`
	RelatedEventID string           `json:"relatedEventId,omitempty"`
	RelatedPostID  string           `json:"relatedPostId,omitempty"`
	FromUser       *Display         `json:"fromUser,omitempty"`
}
