package dao

import (
	"KMate/models"
	"context"

	"gorm.io/gorm"
)

type KBuzzQuery struct {
	PostType string
	Category string
}

type KBuzzDAO struct {
	Repo[models.KBuzz]
}

func NewKBuzzDAO(db *gorm.DB) *KBuzzDAO {
	return &KBuzzDAO{Repo: NewRepo[models.KBuzz](db)}
}

func (d *KBuzzDAO) Exists(ctx context.Context, id uint64) (bool, error) {
	return d.IsExist(ctx, "id = ?", id)
}

// FindWithAuthor 按 id 查询并带出作者
func (d *KBuzzDAO) FindWithAuthor(ctx context.Context, id uint64) (*models.KBuzz, error) {
	var post models.KBuzz
	if err := d.Db.WithContext(ctx).Preload("Author").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List trend 帖子按排名升序，其余按发布时间倒序
func (d *KBuzzDAO) List(ctx context.Context, q KBuzzQuery) ([]*models.KBuzz, error) {
	posts := make([]*models.KBuzz, 0)
	db := d.Db.WithContext(ctx).Preload("Author")
	if q.PostType != "" {
		db = db.Where("post_type = ?", q.PostType)
	}
	if q.Category != "" {
		db = db.Where("category = ?", q.Category)
	}
	if q.PostType == models.KBuzzTrend {
		db = db.Order("trend_rank ASC")
	}
	err := db.Order("created_at DESC").Find(&posts).Error
	return posts, err
}
