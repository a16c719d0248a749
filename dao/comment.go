package dao

import (
	"KMate/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{Repo: NewRepo[models.Comment](db)}
}

func (d *CommentDAO) FindWithAuthor(ctx context.Context, id uint64) (*models.Comment, error) {
	var c models.Comment
	if err := d.Db.WithContext(ctx).Preload("Author").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByIdAndAuthor 只返回作者本人的评论，不存在返回 nil
func (d *CommentDAO) FindByIdAndAuthor(ctx context.Context, id, authorID uint64) (*models.Comment, error) {
	c, err := d.FindByWhere(ctx, "id = ? AND author_id = ?", id, authorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return c, err
}

// ListByPost 帖子下评论，按时间正序
func (d *CommentDAO) ListByPost(ctx context.Context, postType string, postID uint64) ([]*models.Comment, error) {
	comments := make([]*models.Comment, 0)
	err := d.Db.WithContext(ctx).
		Preload("Author").
		Where("post_type = ? AND post_id = ?", postType, postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// ListByAuthor 我的评论，按时间倒序分页
func (d *CommentDAO) ListByAuthor(ctx context.Context, authorID uint64, offset, limit int) ([]*models.Comment, int64, error) {
	var (
		comments = make([]*models.Comment, 0)
		total    int64
	)
	q := d.Db.WithContext(ctx).Model(&models.Comment{}).Where("author_id = ?", authorID).Session(&gorm.Session{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Author").Order("created_at DESC").Offset(offset).Limit(limit).Find(&comments).Error
	return comments, total, err
}
