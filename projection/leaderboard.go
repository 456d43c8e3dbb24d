package projection

import (
	"companion-lab/domain"
	"slices"
)

type Badge string

const (
	Gold    Badge = "gold"
	Silver  Badge = "silver"
	Bronze  Badge = "bronze"
	NoMedal Badge = ""
)

type RankedPost struct {
	Rank  int         `json:"rank"`
	Badge Badge       `json:"badge,omitempty"`
	Post  domain.Post `json:"post"`
}

// SortByLikes returns a copy of posts, most liked first.
// Posts with the same number of likes keep their relative order.
func SortByLikes(posts []domain.Post) []domain.Post {
	sorted := slices.Clone(posts)
	slices.SortStableFunc(sorted, func(a, b domain.Post) int {
		return b.Likes - a.Likes
	})
	return sorted
}

// Leaderboard ranks the posts of the running challenge.
func Leaderboard(posts []domain.Post) []RankedPost {
	sorted := SortByLikes(posts)
	ranked := make([]RankedPost, 0, len(sorted))
	for i, p := range sorted {
		ranked = append(ranked, RankedPost{Rank: i + 1, Badge: badgeFor(i), Post: p})
	}
	return ranked
}

func badgeFor(index int) Badge {
	switch index {
	case 0:
		return Gold
	case 1:
		return Silver
	case 2:
		return Bronze
	default:
		return NoMedal
	}
}
