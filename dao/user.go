package dao

import (
	"KMate/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByGoogleSub 按 Google 账号查询，不存在返回 nil
func (u *Users) FindByGoogleSub(ctx context.Context, sub string) (*models.User, error) {
	user, err := u.Repo.FindByWhere(ctx, "google_sub = ?", sub)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return user, err
}

// List 分页查询，按注册时间倒序
func (u *Users) List(ctx context.Context, offset, limit int) ([]*models.User, int64, error) {
	var (
		users []*models.User
		total int64
	)
	q := u.Db.WithContext(ctx).Model(&models.User{}).Session(&gorm.Session{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error
	return users, total, err
}
