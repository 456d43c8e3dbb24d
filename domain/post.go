package domain

type Post struct {
	ID                string      `json:"id"`
	Author            UserProfile `json:"author"`
	Images            []string    `json:"images"`
	Content           string      `json:"content"`
	Likes             int         `json:"likes"`
	Comments          int         `json:"comments"`
	PostComments      []Message   `json:"postComments,omitempty"`
	RelatedEventTitle string      `json:"relatedEventTitle,omitempty"`
	RelatedEventID    string      `json:"relatedEventId,omitempty"`
	ChallengeActive   bool        `json:"isChallengeActive,omitempty"`
	LikedBy           []string    `json:"likedBy,omitempty"`
}

// Cover is the first image of the post, used as leaderboard thumbnail.
func (p Post) Cover() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Champion is the winner of a past monthly likes challenge.
type Champion struct {
	ID          string      `json:"id"`
	Month       string      `json:"month"`
	Winner      UserProfile `json:"winner"`
	Likes       int         `json:"likes"`
	PostImages  []string    `json:"postImages"`
	PostContent string      `json:"postContent"`
}
