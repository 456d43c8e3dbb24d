package services

import (
	"companion-lab/auth"
	"companion-lab/errors"
	"companion-lab/fixtures"
	"companion-lab/mocks"
	"companion-lab/projection"
	"companion-lab/repositories"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGalleryService_Ranking(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	svc := NewGalleryService(newStore(), mocks.NewMockIImageRepository(ctrl), newModerator(t), logs.GetLoggerFromLevel(slog.LevelDebug))
	ctx := context.Background()

	// p5 has 12 likes, p4 35: three likes from different users are not enough to pass it
	for _, u := range fixtures.Users()[:3] {
		_, err := svc.ToggleLike(ctx, u, "p5")
		req.NoError(err)
	}

	posts := svc.Posts()
	req.Equal([]string{"p1", "p2", "p3", "p4", "p5"}, ids(posts))
	req.Equal(15, posts[4].Likes)

	board := svc.Leaderboard()
	req.Equal(projection.Gold, board[0].Badge)
	req.Equal(projection.NoMedal, board[3].Badge)
	req.Len(svc.Champions(), 2)
}

func TestGalleryService_CreatePost_And_Comment(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	images := mocks.NewMockIImageRepository(ctrl)
	svc := NewGalleryService(newStore(), images, newModerator(t), logs.GetLoggerFromLevel(slog.LevelDebug))

	t.Run("should publish a moderated post", func(t *testing.T) {
		req := require.New(t)
		images.EXPECT().GetImage("x").Return(repositories.Image{ID: "x"}, nil)
		post, err := svc.CreatePost(ctx, fixtures.Zhang, auth.CreatePostRequest{EventID: "e2", Content: "这个白痴天气", Image: "/images/x"})

		req.NoError(err)
		req.Equal("这个**天气", post.Content)
		req.Equal(svc.Posts()[5].ID, post.ID)
	})

	t.Run("should reply to a commenter", func(t *testing.T) {
		req := require.New(t)
		_, err := svc.Comment(ctx, fixtures.Zhao, "p1", "真好看", "")
		req.NoError(err)
		post, err := svc.Comment(ctx, fixtures.Zhang, "p1", "是啊", fixtures.Zhao.ID)

		req.NoError(err)
		req.Equal(14, post.Comments)
		req.Equal(fixtures.Zhao.Name, post.PostComments[1].ReplyToName)
	})

	t.Run("should fall back to unknown user for an unknown target", func(t *testing.T) {
		post, err := svc.Comment(ctx, fixtures.Zhang, "p2", "hi", "ghost")
		require.NoError(t, err)
		require.Equal(t, projection.UnknownUser, post.PostComments[0].ReplyToName)
	})

	t.Run("should refuse an unknown event", func(t *testing.T) {
		images.EXPECT().GetImage("y").Return(repositories.Image{ID: "y"}, nil)
		_, err := svc.CreatePost(ctx, fixtures.Zhang, auth.CreatePostRequest{EventID: "nope", Content: "x", Image: "/images/y"})
		require.ErrorIs(t, err, errors.ErrEventNotFound)
	})

	t.Run("should refuse an image that was never uploaded", func(t *testing.T) {
		req := require.New(t)
		before := len(svc.Posts())
		images.EXPECT().GetImage("ghost").Return(repositories.Image{}, errors.ErrImageNotFound)
		_, err := svc.CreatePost(ctx, fixtures.Zhang, auth.CreatePostRequest{EventID: "e2", Content: "x", Image: "/images/ghost"})

		req.ErrorIs(err, errors.ErrInvalidPayload)
		req.Len(svc.Posts(), before)
	})

	t.Run("should refuse an image outside the gallery", func(t *testing.T) {
		images.EXPECT().GetImage(gomock.Any()).Times(0)
		_, err := svc.CreatePost(ctx, fixtures.Zhang, auth.CreatePostRequest{EventID: "e2", Content: "x", Image: "https://elsewhere/cat.png"})
		require.ErrorIs(t, err, errors.ErrInvalidPayload)
	})
}

func TestGalleryService_UploadImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIImageRepository(ctrl)
	svc := NewGalleryService(newStore(), repository, newModerator(t), logs.GetLoggerFromLevel(slog.LevelDebug))

	t.Run("should store a png", func(t *testing.T) {
		req := require.New(t)
		png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
		repository.EXPECT().StoreImage(gomock.Any()).
			DoAndReturn(func(image repositories.Image) error {
				req.Equal("image/png", image.ContentType)
				req.Equal(fixtures.Zhang.ID, image.UploadedBy)
				return nil
			})

		path, err := svc.UploadImage(fixtures.Zhang, png)

		req.NoError(err)
		req.True(strings.HasPrefix(path, "/images/"))
	})

	t.Run("should refuse anything but an image", func(t *testing.T) {
		repository.EXPECT().StoreImage(gomock.Any()).Times(0)
		_, err := svc.UploadImage(fixtures.Zhang, []byte("%PDF-1.7\n"))
		require.ErrorIs(t, err, errors.ErrUnsupportedImage)
	})
}
