package services

import (
	"companion-lab/auth"
	"companion-lab/domain"
	"companion-lab/domain/mimetypes"
	"companion-lab/errors"
	"companion-lab/moderation"
	"companion-lab/projection"
	"companion-lab/repositories"
	"companion-lab/store"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

const imagePath = "/images/"

type IGalleryService interface {
	Posts() []domain.Post
	Post(postID string) (domain.Post, error)
	Leaderboard() []projection.RankedPost
	Champions() []domain.Champion
	CreatePost(ctx context.Context, author domain.UserProfile, request auth.CreatePostRequest) (domain.Post, error)
	ToggleLike(ctx context.Context, user domain.UserProfile, postID string) (domain.Post, error)
	Comment(ctx context.Context, user domain.UserProfile, postID, content, replyToID string) (domain.Post, error)
	UploadImage(user domain.UserProfile, data []byte) (string, error)
	Image(id string) (repositories.Image, error)
}

type GalleryService struct {
	store      *store.Store
	repository repositories.IImageRepository
	moderator  *moderation.Moderator
	log        *slog.Logger
}

func NewGalleryService(store *store.Store, repository repositories.IImageRepository, moderator *moderation.Moderator, log *slog.Logger) *GalleryService {
	return &GalleryService{store: store, repository: repository, moderator: moderator, log: log}
}

// Posts are the gallery wall, most liked first.
func (s *GalleryService) Posts() []domain.Post {
	return projection.SortByLikes(s.store.Snapshot().Posts)
}

func (s *GalleryService) Post(postID string) (domain.Post, error) {
	post, ok := s.store.Snapshot().Post(postID)
	if !ok {
		return domain.Post{}, errors.ErrPostNotFound
	}
	return post, nil
}

func (s *GalleryService) Leaderboard() []projection.RankedPost {
	return projection.Leaderboard(s.store.Snapshot().Posts)
}

func (s *GalleryService) Champions() []domain.Champion {
	return s.store.Snapshot().Champions
}

func (s *GalleryService) CreatePost(ctx context.Context, author domain.UserProfile, request auth.CreatePostRequest) (domain.Post, error) {
	if err := auth.Validate(request); err != nil {
		return domain.Post{}, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	if _, err := s.repository.GetImage(strings.TrimPrefix(request.Image, imagePath)); err != nil {
		if stderrors.Is(err, errors.ErrImageNotFound) {
			return domain.Post{}, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
		}
		return domain.Post{}, err
	}
	state, err := s.store.Dispatch(ctx, domain.CreatePostCommand{
		Author:  author,
		EventID: request.EventID,
		Content: s.moderator.Review(request.Content).Content,
		Image:   request.Image,
	})
	if err != nil {
		return domain.Post{}, err
	}
	return state.Posts[0], nil
}

func (s *GalleryService) ToggleLike(ctx context.Context, user domain.UserProfile, postID string) (domain.Post, error) {
	state, err := s.store.Dispatch(ctx, domain.ToggleLikeCommand{PostID: postID, User: user})
	if err != nil {
		return domain.Post{}, err
	}
	post, _ := state.Post(postID)
	return post, nil
}

func (s *GalleryService) Comment(ctx context.Context, user domain.UserProfile, postID, content, replyToID string) (domain.Post, error) {
	if err := auth.Validate(auth.MessageRequest{Content: content}); err != nil {
		return domain.Post{}, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	state, err := s.store.Dispatch(ctx, domain.CommentPostCommand{
		PostID:    postID,
		Author:    user,
		Content:   s.moderator.Review(content).Content,
		ReplyToID: replyToID,
	})
	if err != nil {
		return domain.Post{}, err
	}
	post, _ := state.Post(postID)
	return post, nil
}

// UploadImage stores a picture and returns the path it is served from.
// Only the formats listed in mimetypes.Images are accepted.
func (s *GalleryService) UploadImage(user domain.UserProfile, data []byte) (string, error) {
	contentType, ok := mimetypes.DetectImage(data)
	if !ok {
		return "", errors.ErrUnsupportedImage
	}
	image := repositories.Image{
		ID:          uuid.NewString(),
		ContentType: string(contentType),
		Data:        data,
		UploadedBy:  user.ID,
		At:          time.Now().UTC(),
	}
	if err := s.repository.StoreImage(image); err != nil {
		return "", err
	}
	s.log.Debug("Image uploaded", "id", image.ID, "type", image.ContentType, "size", len(data))
	return imagePath + image.ID, nil
}

func (s *GalleryService) Image(id string) (repositories.Image, error) {
	return s.repository.GetImage(id)
}
