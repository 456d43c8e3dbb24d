package domain

// Command is a state transition request handled by the store.
type Command interface {
	CommandName() string
}

type CreateEventCommand struct {
	Event TripEvent
}

type AskQuestionCommand struct {
	EventID string
	Asker   UserProfile
	Content string
}

type ReplyInThreadCommand struct {
	EventID       string
	Sender        UserProfile
	CounterpartID string
	Content       string
}

type HydrateCommentsCommand struct {
	EventID  string
	Comments []Message
}

type ApplyCommand struct {
	EventID   string
	Applicant UserProfile
	Intro     string
}

type DecideApplicationCommand struct {
	EventID     string
	Organizer   UserProfile
	ApplicantID string
	Approve     bool
}

type CreatePostCommand struct {
	Author  UserProfile
	EventID string
	Content string
	Image   string
}

type ToggleLikeCommand struct {
	PostID string
	User   UserProfile
}

type CommentPostCommand struct {
	PostID    string
	Author    UserProfile
	Content   string
	ReplyToID string
}

type SendChatMessageCommand struct {
	ChatID  string
	Sender  UserProfile
	Content string
}

func (CreateEventCommand) CommandName() string       { return "create_event" }
func (AskQuestionCommand) CommandName() string       { return "ask_question" }
func (ReplyInThreadCommand) CommandName() string     { return "reply_in_thread" }
func (HydrateCommentsCommand) CommandName() string   { return "hydrate_comments" }
func (ApplyCommand) CommandName() string             { return "apply" }
func (DecideApplicationCommand) CommandName() string { return "decide_application" }
func (CreatePostCommand) CommandName() string        { return "create_post" }
func (ToggleLikeCommand) CommandName() string        { return "toggle_like" }
func (CommentPostCommand) CommandName() string       { return "comment_post" }
func (SendChatMessageCommand) CommandName() string   { return "send_chat_message" }
