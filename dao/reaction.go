package dao

import (
	"KMate/models"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// postReaction likes / scraps 两张表结构一致，共用查询
type postReaction[T models.Like | models.Scrap] struct {
	Repo[T]
}

// Find 查询用户对帖子的记录，不存在返回 nil
func (d *postReaction[T]) Find(ctx context.Context, userID uint64, postType string, postID uint64) (*T, error) {
	item, err := d.FindByWhere(ctx, "user_id = ? AND post_type = ? AND post_id = ?", userID, postType, postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return item, err
}

// ListByUser 用户的全部记录，按时间倒序
func (d *postReaction[T]) ListByUser(ctx context.Context, userID uint64) ([]*T, error) {
	items := make([]*T, 0)
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// ListByPost 帖子的全部记录，带出用户
func (d *postReaction[T]) ListByPost(ctx context.Context, postType string, postID uint64) ([]*T, error) {
	items := make([]*T, 0)
	err := d.Db.WithContext(ctx).
		Preload("User").
		Where("post_type = ? AND post_id = ?", postType, postID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

type LikeDAO struct {
	postReaction[models.Like]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{postReaction[models.Like]{Repo: NewRepo[models.Like](db)}}
}

// ColumnScrapCount 帖子表上的收藏计数列
const ColumnScrapCount = "scrap_count"

type ScrapDAO struct {
	postReaction[models.Scrap]
}

func NewScrapDAO(db *gorm.DB) *ScrapDAO {
	return &ScrapDAO{postReaction[models.Scrap]{Repo: NewRepo[models.Scrap](db)}}
}

// postModel 帖子类型对应的表
func postModel(postType string) any {
	if postType == models.PostTypeKBuzz {
		return &models.KBuzz{}
	}
	return &models.Tip{}
}

// Add 写入收藏并给帖子 scrap_count 加一，同一事务
func (d *ScrapDAO) Add(ctx context.Context, scrap *models.Scrap) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(scrap).Error; err != nil {
			return err
		}
		return incrColumn(tx.Model(postModel(scrap.PostType)), scrap.PostID, ColumnScrapCount, 1)
	})
}

// Remove 删除收藏，确实删除了记录才减计数
func (d *ScrapDAO) Remove(ctx context.Context, scrap *models.Scrap) (int64, error) {
	var n int64
	err := d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Scrap{}, scrap.ID)
		if res.Error != nil {
			return res.Error
		}
		n = res.RowsAffected
		if n == 0 {
			return nil
		}
		return incrColumn(tx.Model(postModel(scrap.PostType)), scrap.PostID, ColumnScrapCount, -1)
	})
	return n, err
}
