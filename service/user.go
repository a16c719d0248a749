package service

import (
	"KMate/models"
	"KMate/pkg/response"
	"context"
	"errors"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	GetByID(ctx context.Context, id uint64) (*models.User, error)
	List(ctx context.Context, page, limit int) ([]*models.User, int64, error)
	UpdateProfile(ctx context.Context, id uint64, req *UpdateProfileReq) (*models.User, error)
	Delete(ctx context.Context, id uint64) error
}

// UpdateProfileReq 只允许修改昵称和头像
type UpdateProfileReq struct {
	Name      *string `json:"name" binding:"omitempty,max=255"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,max=512"`
}

type UserService struct {
	Users UserStore
}

func (s *UserService) GetByID(ctx context.Context, id uint64) (*models.User, error) {
	user, err := s.Users.FindById(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NotFound("User not found")
	}
	return user, err
}

func (s *UserService) List(ctx context.Context, page, limit int) ([]*models.User, int64, error) {
	return s.Users.List(ctx, (page-1)*limit, limit)
}

func (s *UserService) UpdateProfile(ctx context.Context, id uint64, req *UpdateProfileReq) (*models.User, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	// 只允许改 name / avatar_url，role 等列不会被覆盖
	fields := make(map[string]any)
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.AvatarURL != nil {
		fields["avatar_url"] = *req.AvatarURL
	}
	if _, err := s.Users.UpdateById(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete 用户仍有帖子等关联数据时由外键约束拒绝，返回 409
func (s *UserService) Delete(ctx context.Context, id uint64) error {
	n, err := s.Users.DeleteById(ctx, id)
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return response.Conflict("User still owns content and cannot be deleted")
	}
	if err != nil {
		return err
	}
	if n == 0 {
		return response.NotFound("User not found")
	}
	return nil
}
