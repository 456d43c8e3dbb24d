package projection

import (
	"companion-lab/domain"

	"github.com/samber/lo"
)

const UnknownUser = "未知用户"

// ResolveUserName finds a display name for a reply target of a post comment.
// Comment authors are searched first, then the extra known profiles.
func ResolveUserName(userID string, comments []domain.Message, known ...domain.UserProfile) string {
	if c, ok := lo.Find(comments, func(c domain.Message) bool { return c.AuthorID == userID }); ok {
		return c.AuthorName
	}
	if u, ok := lo.Find(known, func(u domain.UserProfile) bool { return u.ID == userID }); ok {
		return u.Name
	}
	return UnknownUser
}
