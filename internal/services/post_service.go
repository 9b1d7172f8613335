package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/yossyi0323/App/internal/dtos"
	"github.com/yossyi0323/App/internal/models"
	"github.com/yossyi0323/App/internal/repositories"
	"github.com/yossyi0323/App/internal/utils"
)

type PostService struct {
	postRepo repositories.PostRepository
}

func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// normalizeContent returns the stored form of a post body or a 400. Only
// surrounding whitespace is removed; the body is kept as written.
func normalizeContent(raw string) (string, error) {
	content := strings.TrimSpace(raw)
	if content == "" {
		return "", validationError("Content must not be empty")
	}
	if n := utf8.RuneCountInString(content); n > models.PostContentMaxRunes {
		return "", validationError(fmt.Sprintf("Content must be at most %d characters (got %d)", models.PostContentMaxRunes, n))
	}
	return content, nil
}

// List returns posts newest first.
func (s *PostService) List(ctx context.Context) ([]*models.Post, error) {
	posts, err := s.postRepo.ListNewestFirst(ctx)
	if err != nil {
		return nil, internalError("Failed to list posts", err)
	}
	return nonNil(posts), nil
}

func (s *PostService) Get(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	p, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, internalError("Failed to fetch post", err)
	}
	if p == nil {
		return nil, notFound("Post")
	}
	return p, nil
}

func (s *PostService) Create(ctx context.Context, req dtos.CreatePostRequest) (*models.Post, error) {
	content, err := normalizeContent(req.Content)
	if err != nil {
		return nil, err
	}
	created, err := s.postRepo.Create(ctx, &models.Post{Content: content})
	if err != nil {
		return nil, writeError("Post", err)
	}
	return created, nil
}

func (s *PostService) Update(ctx context.Context, id uuid.UUID, req dtos.UpdatePostRequest) (*models.Post, error) {
	content, err := normalizeContent(req.Content)
	if err != nil {
		return nil, err
	}
	updated, err := s.postRepo.Update(ctx, &models.Post{ID: id, Content: content}, utils.Val(req.Version))
	if errors.Is(err, utils.ErrRowVersionConflict) {
		current, rerr := s.postRepo.GetByID(ctx, id)
		if rerr != nil {
			utils.Logger.WithError(rerr).WithField("post_id", id).Warn("Failed to re-read post after version conflict")
		}
		return nil, versionConflict(current)
	}
	if err != nil {
		return nil, writeError("Post", err)
	}
	if updated == nil {
		return nil, notFound("Post")
	}
	return updated, nil
}

// Delete is idempotent.
func (s *PostService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return internalError("Failed to delete post", err)
	}
	return nil
}
