package dao

import (
	"KMate/models"
	"context"

	"gorm.io/gorm"
)

type TipDAO struct {
	Repo[models.Tip]
}

func NewTipDAO(db *gorm.DB) *TipDAO {
	return &TipDAO{Repo: NewRepo[models.Tip](db)}
}

func (d *TipDAO) Exists(ctx context.Context, id uint64) (bool, error) {
	return d.IsExist(ctx, "id = ?", id)
}

func (d *TipDAO) FindWithAuthor(ctx context.Context, id uint64) (*models.Tip, error) {
	var tip models.Tip
	if err := d.Db.WithContext(ctx).Preload("Author").First(&tip, id).Error; err != nil {
		return nil, err
	}
	return &tip, nil
}

// List 置顶优先，其次按发布时间倒序；tipType 为空时不过滤
func (d *TipDAO) List(ctx context.Context, tipType string) ([]*models.Tip, error) {
	tips := make([]*models.Tip, 0)
	db := d.Db.WithContext(ctx).Preload("Author")
	if tipType != "" {
		db = db.Where("tip_type = ?", tipType)
	}
	err := db.Order("is_pinned DESC").Order("created_at DESC").Find(&tips).Error
	return tips, err
}

// TogglePin 在库内翻转 is_pinned，返回影响行数
func (d *TipDAO) TogglePin(ctx context.Context, id uint64) (int64, error) {
	res := d.Model(ctx).Where("id = ?", id).Update("is_pinned", gorm.Expr("NOT is_pinned"))
	return res.RowsAffected, res.Error
}
