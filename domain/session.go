package domain

type Role string

const (
	Guest     Role = "guest"
	Member    Role = "member"
	Organizer Role = "organizer"
)

// Session binds a user to the role they hold on one event.
// Capability checks go through it instead of comparing ids in every caller.
type Session struct {
	User    UserProfile
	EventID string
	Role    Role
}

func NewSession(user UserProfile, event TripEvent) Session {
	role := Member
	switch {
	case user.ID == "":
		role = Guest
	case user.ID == event.Organizer.ID:
		role = Organizer
	}
	return Session{User: user, EventID: event.ID, Role: role}
}

func (s Session) IsOrganizer() bool {
	return s.Role == Organizer
}

// CanReplyTo is granted to the organizer and to the owner of the thread.
func (s Session) CanReplyTo(counterpartID string) bool {
	return s.Role == Organizer || (s.Role == Member && s.User.ID == counterpartID)
}

// CanAsk allows a member without an open thread to start a consultation.
func (s Session) CanAsk(hasThread bool) bool {
	return s.Role == Member && !hasThread
}

func (s Session) CanApply() bool {
	return s.Role == Member
}

func (s Session) CanManageApplicants() bool {
	return s.Role == Organizer
}
