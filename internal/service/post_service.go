package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/maheshrc27/sheetcal/internal/models"
	"github.com/maheshrc27/sheetcal/internal/repository"
	"github.com/maheshrc27/sheetcal/internal/transfer"
	"github.com/maheshrc27/sheetcal/pkg/dateutil"
)

var (
	ErrBrandNotFound = errors.New("brand not found")
	ErrInvalidInput  = errors.New("invalid post data")
)

type PostService interface {
	List(ctx context.Context, brandSlug string) ([]*models.Post, error)
	Create(ctx context.Context, brandSlug string, form *transfer.PostForm) (*models.Post, error)
	Update(ctx context.Context, brandSlug, postID string, upd *transfer.PostUpdate) (*models.Post, error)
	Delete(ctx context.Context, brandSlug, postID string) (bool, error)
}

type postService struct {
	br BrandService
	pr repository.PostRepository
}

func NewPostService(br BrandService, pr repository.PostRepository) PostService {
	return &postService{br: br, pr: pr}
}

// resolveSheet maps a brand slug to its spreadsheet id on every call; the
// registry is cheap and resolving per request keeps the service stateless.
func (s *postService) resolveSheet(brandSlug string) (string, error) {
	brand, ok := s.br.GetBySlug(brandSlug)
	if !ok {
		slog.Info("unknown brand: " + brandSlug)
		return "", ErrBrandNotFound
	}
	return brand.SheetID, nil
}

func (s *postService) List(ctx context.Context, brandSlug string) ([]*models.Post, error) {
	sheetID, err := s.resolveSheet(brandSlug)
	if err != nil {
		return nil, err
	}

	posts, err := s.pr.List(ctx, sheetID)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	return posts, nil
}

func (s *postService) Create(ctx context.Context, brandSlug string, form *transfer.PostForm) (*models.Post, error) {
	sheetID, err := s.resolveSheet(brandSlug)
	if err != nil {
		return nil, err
	}

	if form == nil {
		return nil, fmt.Errorf("%w: missing body", ErrInvalidInput)
	}
	if form.Date == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := dateutil.ParseDate(form.Date); err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if err := validateTime(form.Time); err != nil {
		return nil, err
	}

	post, err := s.pr.Create(ctx, sheetID, form)
	if err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}
	return post, nil
}

func (s *postService) Update(ctx context.Context, brandSlug, postID string, upd *transfer.PostUpdate) (*models.Post, error) {
	sheetID, err := s.resolveSheet(brandSlug)
	if err != nil {
		return nil, err
	}

	if postID == "" {
		return nil, fmt.Errorf("%w: post id is required", ErrInvalidInput)
	}
	if upd != nil {
		if upd.Date != nil {
			if _, err := dateutil.ParseDate(*upd.Date); err != nil {
				slog.Info(err.Error())
				return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
			}
		}
		if upd.Time != nil {
			if err := validateTime(*upd.Time); err != nil {
				return nil, err
			}
		}
	}

	post, err := s.pr.Update(ctx, sheetID, postID, upd)
	if err != nil {
		return nil, fmt.Errorf("error updating post: %w", err)
	}
	return post, nil
}

func (s *postService) Delete(ctx context.Context, brandSlug, postID string) (bool, error) {
	sheetID, err := s.resolveSheet(brandSlug)
	if err != nil {
		return false, err
	}

	if postID == "" {
		return false, fmt.Errorf("%w: post id is required", ErrInvalidInput)
	}

	deleted, err := s.pr.Delete(ctx, sheetID, postID)
	if err != nil {
		return false, fmt.Errorf("error deleting post: %w", err)
	}
	return deleted, nil
}

// validateTime accepts an empty time; posts without a wall-clock time are
// date-only.
func validateTime(t string) error {
	if t == "" {
		return nil
	}
	if _, err := dateutil.ParseTime(t); err != nil {
		slog.Info(err.Error())
		return fmt.Errorf("%w: time must be HH:MM", ErrInvalidInput)
	}
	return nil
}
