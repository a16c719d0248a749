package service

import (
	"KMate/models"
	"KMate/pkg/response"
	"context"
	"errors"

	"gorm.io/gorm"
)

var _ IScrapService = (*ScrapService)(nil)

type IScrapService interface {
	Scrap(ctx context.Context, userID uint64, postType string, postID uint64) (*models.Scrap, error)
	Unscrap(ctx context.Context, userID uint64, postType string, postID uint64) error
	Toggle(ctx context.Context, userID uint64, postType string, postID uint64) (bool, error)
	ListMine(ctx context.Context, userID uint64) ([]*models.Scrap, error)
	ListByPost(ctx context.Context, postType string, postID uint64) ([]*models.Scrap, error)
	IsScrapped(ctx context.Context, userID uint64, postType string, postID uint64) (bool, error)
}

var errAlreadyScrapped = response.Conflict("You have already scrapped this post")

// ScrapService 收藏记录与帖子 scrap_count 同步维护
type ScrapService struct {
	Scraps ScrapStore
	Posts  *PostResolver
}

func (s *ScrapService) Scrap(ctx context.Context, userID uint64, postType string, postID uint64) (*models.Scrap, error) {
	existing, err := s.Scraps.Find(ctx, userID, postType, postID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errAlreadyScrapped
	}
	if err := s.Posts.Ensure(ctx, postType, postID); err != nil {
		return nil, err
	}

	scrap := &models.Scrap{UserID: userID, PostType: postType, PostID: postID}
	if err := s.Scraps.Add(ctx, scrap); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errAlreadyScrapped
		}
		return nil, err
	}
	return scrap, nil
}

func (s *ScrapService) Unscrap(ctx context.Context, userID uint64, postType string, postID uint64) error {
	existing, err := s.Scraps.Find(ctx, userID, postType, postID)
	if err != nil {
		return err
	}
	if existing == nil {
		return response.NotFound("Scrap not found")
	}
	return s.remove(ctx, existing)
}

func (s *ScrapService) remove(ctx context.Context, scrap *models.Scrap) error {
	_, err := s.Scraps.Remove(ctx, scrap)
	return err
}

func (s *ScrapService) Toggle(ctx context.Context, userID uint64, postType string, postID uint64) (bool, error) {
	existing, err := s.Scraps.Find(ctx, userID, postType, postID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, s.remove(ctx, existing)
	}
	if _, err := s.Scrap(ctx, userID, postType, postID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *ScrapService) ListMine(ctx context.Context, userID uint64) ([]*models.Scrap, error) {
	scraps, err := s.Scraps.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := attachPosts(ctx, s.Posts, scraps, scrapRef); err != nil {
		return nil, err
	}
	return scraps, nil
}

func (s *ScrapService) ListByPost(ctx context.Context, postType string, postID uint64) ([]*models.Scrap, error) {
	return s.Scraps.ListByPost(ctx, postType, postID)
}

func (s *ScrapService) IsScrapped(ctx context.Context, userID uint64, postType string, postID uint64) (bool, error) {
	existing, err := s.Scraps.Find(ctx, userID, postType, postID)
	if err != nil {
		return false, err
	}
	return existing != nil, nil
}
