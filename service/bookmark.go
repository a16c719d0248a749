package service

import (
	"KMate/models"
	"KMate/pkg/response"
	"context"
)

var _ IBookmarkService = (*BookmarkService)(nil)

type IBookmarkService interface {
	Toggle(ctx context.Context, userID, placeID uint64) (*BookmarkStatus, error)
	ListMine(ctx context.Context, userID uint64, page, limit int) ([]*models.Bookmark, int64, error)
	Status(ctx context.Context, userID, placeID uint64) (*BookmarkStatus, error)
	// Remove 幂等，不存在也返回成功
	Remove(ctx context.Context, userID, placeID uint64) error
}

type BookmarkStatus struct {
	Bookmarked bool             `json:"bookmarked"`
	Bookmark   *models.Bookmark `json:"bookmark,omitempty"`
}

type BookmarkService struct {
	Bookmarks BookmarkStore
	Places    PlaceStore
}

func (s *BookmarkService) Toggle(ctx context.Context, userID, placeID uint64) (*BookmarkStatus, error) {
	existing, err := s.Bookmarks.Find(ctx, userID, placeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if _, err := s.Bookmarks.DeleteById(ctx, existing.ID); err != nil {
			return nil, err
		}
		return &BookmarkStatus{Bookmarked: false}, nil
	}

	exist, err := s.Places.Exists(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NotFound("Place not found")
	}

	bookmark := &models.Bookmark{UserID: userID, PlaceID: placeID}
	if err := s.Bookmarks.Create(ctx, bookmark); err != nil {
		return nil, err
	}
	return &BookmarkStatus{Bookmarked: true, Bookmark: bookmark}, nil
}

func (s *BookmarkService) ListMine(ctx context.Context, userID uint64, page, limit int) ([]*models.Bookmark, int64, error) {
	return s.Bookmarks.ListByUser(ctx, userID, (page-1)*limit, limit)
}

func (s *BookmarkService) Status(ctx context.Context, userID, placeID uint64) (*BookmarkStatus, error) {
	existing, err := s.Bookmarks.Find(ctx, userID, placeID)
	if err != nil {
		return nil, err
	}
	return &BookmarkStatus{Bookmarked: existing != nil, Bookmark: existing}, nil
}

func (s *BookmarkService) Remove(ctx context.Context, userID, placeID uint64) error {
	existing, err := s.Bookmarks.Find(ctx, userID, placeID)
	if err != nil || existing == nil {
		return err
	}
	_, err = s.Bookmarks.DeleteById(ctx, existing.ID)
	return err
}
