package dao

import (
	"KMate/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type BookmarkDAO struct {
	Repo[models.Bookmark]
}

func NewBookmarkDAO(db *gorm.DB) *BookmarkDAO {
	return &BookmarkDAO{Repo: NewRepo[models.Bookmark](db)}
}

// Find 不存在返回 nil
func (d *BookmarkDAO) Find(ctx context.Context, userID, placeID uint64) (*models.Bookmark, error) {
	var b models.Bookmark
	err := d.Db.WithContext(ctx).
		Preload("Place").
		Where("user_id = ? AND place_id = ?", userID, placeID).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (d *BookmarkDAO) ListByUser(ctx context.Context, userID uint64, offset, limit int) ([]*models.Bookmark, int64, error) {
	var (
		items = make([]*models.Bookmark, 0)
		total int64
	)
	q := d.Db.WithContext(ctx).Model(&models.Bookmark{}).Where("user_id = ?", userID).Session(&gorm.Session{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Place").Order("created_at DESC").Offset(offset).Limit(limit).Find(&items).Error
	return items, total, err
}
