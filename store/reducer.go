package store

import (
	"companion-lab/domain"
	"companion-lab/domain/event"
	"companion-lab/errors"
	"companion-lab/projection"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const groupChatGreeting = "群聊已创建，快来打招呼吧！"

type events = []event.DomainEvent

func reduce(state State, cmd domain.Command) (State, events, error) {
	switch c := cmd.(type) {
	case domain.CreateEventCommand:
		return createEvent(state, c)
	case domain.AskQuestionCommand:
		return askQuestion(state, c)
	case domain.ReplyInThreadCommand:
		return replyInThread(state, c)
	case domain.HydrateCommentsCommand:
		return hydrateComments(state, c)
	case domain.ApplyCommand:
		return apply(state, c)
	case domain.DecideApplicationCommand:
		return decideApplication(state, c)
	case domain.CreatePostCommand:
		return createPost(state, c)
	case domain.ToggleLikeCommand:
		return toggleLike(state, c)
	case domain.CommentPostCommand:
		return commentPost(state, c)
	case domain.SendChatMessageCommand:
		return sendChatMessage(state, c)
	default:
		return state, nil, fmt.Errorf("%w: %T", errors.ErrUnknownCommand, cmd)
	}
}

func createEvent(state State, c domain.CreateEventCommand) (State, events, error) {
	e := c.Event
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Status == "" {
		e.Status = domain.Recruiting
	}
	e.Comments = slices.Clone(e.Comments)
	e.Applicants = slices.Clone(e.Applicants)
	e.Enrolled = e.EnrolledCount()
	state.Events = prepend(state.Events, e)
	return state, events{event.EventCreated{Event: e}}, nil
}

func askQuestion(state State, c domain.AskQuestionCommand) (State, events, error) {
	e, ok := state.Event(c.EventID)
	if !ok {
		return state, nil, errors.ErrEventNotFound
	}
	if err := checkContent(c.Content); err != nil {
		return state, nil, err
	}
	session := domain.NewSession(c.Asker, e)
	_, hasThread := projection.FindThread(projection.BuildThreads(e.Comments, e.Organizer.ID), c.Asker.ID)
	if !session.CanAsk(hasThread) {
		if hasThread {
			return state, nil, errors.ErrThreadExists
		}
		return state, nil, errors.ErrForbidden
	}
	if !c.Asker.PhoneVerified {
		return state, nil, errors.ErrPhoneNotVerified
	}

	message := domain.Message{
		ID:           uuid.NewString(),
		AuthorID:     c.Asker.ID,
		AuthorName:   c.Asker.Name,
		AuthorAvatar: c.Asker.Avatar,
		Content:      c.Content,
		Timestamp:    domain.JustNow,
	}
	e.Comments = append(slices.Clone(e.Comments), message)
	return state.withEvent(e), events{event.QuestionAsked{
		EventID:     e.ID,
		EventTitle:  e.Title,
		OrganizerID: e.Organizer.ID,
		Message:     message,
	}}, nil
}

func replyInThread(state State, c domain.ReplyInThreadCommand) (State, events, error) {
	e, ok := state.Event(c.EventID)
	if !ok {
		return state, nil, errors.ErrEventNotFound
	}
	if err := checkContent(c.Content); err != nil {
		return state, nil, err
	}
	if !domain.NewSession(c.Sender, e).CanReplyTo(c.CounterpartID) {
		return state, nil, errors.ErrForbidden
	}
	threads := projection.BuildThreads(e.Comments, e.Organizer.ID)
	if _, found := projection.FindThread(threads, c.CounterpartID); !found {
		return state, nil, errors.ErrThreadNotFound
	}
	if !c.Sender.PhoneVerified {
		return state, nil, errors.ErrPhoneNotVerified
	}

	message := projection.AppendReply(threads, c.CounterpartID, c.Content, c.Sender, e.Organizer.ID)
	e.Comments = append(slices.Clone(e.Comments), message)
	return state.withEvent(e), events{event.ReplyPosted{
		EventID:       e.ID,
		EventTitle:    e.Title,
		OrganizerID:   e.Organizer.ID,
		CounterpartID: c.CounterpartID,
		Message:       message,
	}}, nil
}

// hydrateComments restores persisted history. It publishes nothing so that
// the history is not written back.
func hydrateComments(state State, c domain.HydrateCommentsCommand) (State, events, error) {
	e, ok := state.Event(c.EventID)
	if !ok {
		return state, nil, errors.ErrEventNotFound
	}
	if len(c.Comments) == 0 {
		return state, nil, nil
	}
	e.Comments = slices.Clone(c.Comments)
	return state.withEvent(e), nil, nil
}

func apply(state State, c domain.ApplyCommand) (State, events, error) {
	e, ok := state.Event(c.EventID)
	if !ok {
		return state, nil, errors.ErrEventNotFound
	}
	if !domain.NewSession(c.Applicant, e).CanApply() {
		return state, nil, errors.ErrForbidden
	}
	if !c.Applicant.PhoneVerified {
		return state, nil, errors.ErrPhoneNotVerified
	}
	if _, applied := e.ApplicantOf(c.Applicant.ID); applied {
		return state, nil, errors.ErrAlreadyApplied
	}
	if e.IsFull() {
		return state, nil, errors.ErrEventFull
	}

	applicant := domain.Applicant{
		UserID:     c.Applicant.ID,
		UserName:   c.Applicant.Name,
		UserAvatar: c.Applicant.Avatar,
		UserGender: c.Applicant.Gender,
		Status:     domain.Pending,
		ApplyTime:  domain.JustNow,
		Intro:      strings.TrimSpace(c.Intro),
	}
	e.Applicants = append(slices.Clone(e.Applicants), applicant)
	return state.withEvent(e), events{
		event.ApplicationReceived{EventID: e.ID, EventTitle: e.Title, OrganizerID: e.Organizer.ID, Applicant: applicant},
		event.EventUpdated{Event: e},
	}, nil
}

// decideApplication settles a pending applicant. The approval that reaches
// capacity marks the event full and opens its group chat.
func decideApplication(state State, c domain.DecideApplicationCommand) (State, events, error) {
	e, ok := state.Event(c.EventID)
	if !ok {
		return state, nil, errors.ErrEventNotFound
	}
	if !domain.NewSession(c.Organizer, e).CanManageApplicants() {
		return state, nil, errors.ErrForbidden
	}
	applicant, found := e.ApplicantOf(c.ApplicantID)
	if !found {
		return state, nil, errors.ErrApplicantNotFound
	}
	if applicant.Status != domain.Pending {
		return state, nil, errors.ErrApplicantSettled
	}
	if c.Approve && e.IsFull() {
		return state, nil, errors.ErrEventFull
	}

	applicant.Status = domain.Rejected
	if c.Approve {
		applicant.Status = domain.Approved
	}
	e.Applicants = lo.Map(e.Applicants, func(a domain.Applicant, _ int) domain.Applicant {
		if a.UserID == applicant.UserID {
			return applicant
		}
		return a
	})
	e.Enrolled = e.EnrolledCount()

	produced := events{event.ApplicationDecided{EventID: e.ID, EventTitle: e.Title, Applicant: applicant}}
	if c.Approve && e.Enrolled >= e.Capacity {
		e.Status = domain.Full
		if _, exists := state.Chat(domain.GroupChatID(e.ID)); !exists {
			chat := domain.ChatSession{
				ID:          domain.GroupChatID(e.ID),
				EventID:     e.ID,
				Title:       e.Title,
				Avatar:      e.Organizer.Avatar,
				LastMessage: groupChatGreeting,
				LastTime:    domain.JustNow,
			}
			e.GroupChatID = chat.ID
			state.Chats = prepend(state.Chats, chat)
			produced = append(produced, event.GroupChatCreated{Chat: chat})
		}
	}
	return state.withEvent(e), append(produced, event.EventUpdated{Event: e}), nil
}

func createPost(state State, c domain.CreatePostCommand) (State, events, error) {
	e, ok := state.Event(c.EventID)
	if !ok {
		return state, nil, errors.ErrEventNotFound
	}
	if err := checkContent(c.Content); err != nil {
		return state, nil, err
	}
	post := domain.Post{
		ID:                uuid.NewString(),
		Author:            c.Author,
		Images:            []string{c.Image},
		Content:           c.Content,
		RelatedEventTitle: e.Title,
		RelatedEventID:    e.ID,
		ChallengeActive:   true,
	}
	state.Posts = prepend(state.Posts, post)
	return state, events{event.PostCreated{Post: post}}, nil
}

func toggleLike(state State, c domain.ToggleLikeCommand) (State, events, error) {
	post, ok := state.Post(c.PostID)
	if !ok {
		return state, nil, errors.ErrPostNotFound
	}
	liked := !lo.Contains(post.LikedBy, c.User.ID)
	if liked {
		post.LikedBy = append(slices.Clone(post.LikedBy), c.User.ID)
		post.Likes++
	} else {
		post.LikedBy = lo.Without(post.LikedBy, c.User.ID)
		post.Likes = max(post.Likes-1, 0)
	}
	return state.withPost(post), events{event.PostLiked{
		PostID:   post.ID,
		AuthorID: post.Author.ID,
		Liker:    c.User,
		Liked:    liked,
		Likes:    post.Likes,
	}}, nil
}

func commentPost(state State, c domain.CommentPostCommand) (State, events, error) {
	post, ok := state.Post(c.PostID)
	if !ok {
		return state, nil, errors.ErrPostNotFound
	}
	if err := checkContent(c.Content); err != nil {
		return state, nil, err
	}
	comment := domain.Message{
		ID:           uuid.NewString(),
		AuthorID:     c.Author.ID,
		AuthorName:   c.Author.Name,
		AuthorAvatar: c.Author.Avatar,
		Content:      c.Content,
		Timestamp:    domain.JustNow,
	}
	if c.ReplyToID != "" {
		comment.ReplyToID = c.ReplyToID
		comment.ReplyToName = projection.ResolveUserName(c.ReplyToID, post.PostComments, post.Author)
	}
	post.PostComments = append(slices.Clone(post.PostComments), comment)
	post.Comments++
	return state.withPost(post), events{event.PostCommented{PostID: post.ID, AuthorID: post.Author.ID, Comment: comment}}, nil
}

// sendChatMessage is open to the organizer and approved members of the event.
func sendChatMessage(state State, c domain.SendChatMessageCommand) (State, events, error) {
	chat, ok := state.Chat(c.ChatID)
	if !ok {
		return state, nil, errors.ErrChatNotFound
	}
	if err := checkContent(c.Content); err != nil {
		return state, nil, err
	}
	if e, found := state.Event(chat.EventID); found && !e.IsMember(c.Sender.ID) {
		return state, nil, errors.ErrForbidden
	}

	message := domain.ChatMessage{
		ID:           uuid.NewString(),
		ChatID:       chat.ID,
		SenderID:     c.Sender.ID,
		SenderName:   c.Sender.Name,
		SenderAvatar: c.Sender.Avatar,
		Content:      c.Content,
		Time:         domain.JustNow,
	}
	chat.LastMessage = fmt.Sprintf("%s: %s", c.Sender.Name, c.Content)
	chat.LastTime = domain.JustNow
	return state.withChat(chat).withChatMessage(message), events{event.ChatMessageSent{Message: message}}, nil
}

func checkContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errors.ErrEmptyContent
	}
	return nil
}
