package services

import (
	"companion-lab/domain"
	"companion-lab/fixtures"
	"companion-lab/moderation"
	"companion-lab/store"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func newStore() *store.Store {
	return store.NewStore(store.State{
		Events:       fixtures.Events(),
		Posts:        fixtures.Posts(),
		Chats:        fixtures.Chats(),
		ChatMessages: fixtures.ChatMessages(),
		Champions:    fixtures.Champions(),
	}, logs.GetLoggerFromLevel(slog.LevelDebug))
}

func newModerator(t *testing.T) *moderation.Moderator {
	data, err := moderation.DefaultLoader().LoadAll("censored")
	require.NoError(t, err)
	moderator, err := moderation.NewModerator(data.Words, '*', logs.GetLoggerFromLevel(slog.LevelDebug))
	require.NoError(t, err)
	return moderator
}

func verified(u domain.UserProfile) domain.UserProfile {
	u.PhoneVerified = true
	return u
}

func ids(posts []domain.Post) []string {
	return lo.Map(posts, func(p domain.Post, _ int) string { return p.ID })
}
