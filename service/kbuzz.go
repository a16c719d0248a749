package service

import (
	"KMate/dao"
	"KMate/models"
	"KMate/pkg/log"
	"KMate/pkg/response"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const columnViewCount = "view_count"

var _ IKBuzzService = (*KBuzzService)(nil)

type IKBuzzService interface {
	Create(ctx context.Context, req *CreateKBuzzReq, authorID uint64, role string) (*models.KBuzz, error)
	List(ctx context.Context) ([]*models.KBuzz, error)
	ListTrend(ctx context.Context) ([]*models.KBuzz, error)
	ListCommunity(ctx context.Context) ([]*models.KBuzz, error)
	ListByCategory(ctx context.Context, category string) ([]*models.KBuzz, error)
	// Get 查询详情并增加浏览数
	Get(ctx context.Context, id uint64) (*models.KBuzz, error)
	Update(ctx context.Context, id uint64, req *UpdateKBuzzReq, userID uint64, role string) (*models.KBuzz, error)
	Delete(ctx context.Context, id uint64, userID uint64, role string) error
}

type CreateKBuzzReq struct {
	Title     string  `json:"title" binding:"required,max=200"`
	Content   string  `json:"content" binding:"required"`
	PostType  string  `json:"post_type" binding:"required,oneof=trend community"`
	Category  *string `json:"category" binding:"omitempty,oneof=travel_tip food_review cafe_review"`
	TrendWeek *int    `json:"trend_week" binding:"omitempty,min=1"`
	TrendRank *int    `json:"trend_rank" binding:"omitempty,min=1"`
}

type UpdateKBuzzReq struct {
	Title     *string `json:"title" binding:"omitempty,min=1,max=200"`
	Content   *string `json:"content" binding:"omitempty,min=1"`
	PostType  *string `json:"post_type" binding:"omitempty,oneof=trend community"`
	Category  *string `json:"category" binding:"omitempty,oneof=travel_tip food_review cafe_review"`
	TrendWeek *int    `json:"trend_week" binding:"omitempty,min=1"`
	TrendRank *int    `json:"trend_rank" binding:"omitempty,min=1"`
}

func isKBuzzCategory(c string) bool {
	return c == "travel_tip" || c == "food_review" || c == "cafe_review"
}

type KBuzzService struct {
	Posts KBuzzStore
}

func (s *KBuzzService) Create(ctx context.Context, req *CreateKBuzzReq, authorID uint64, role string) (*models.KBuzz, error) {
	if req.PostType == models.KBuzzTrend && role != models.RoleAdmin {
		return nil, response.Forbidden("Only admins can create trend posts")
	}
	post := &models.KBuzz{
		Title:     req.Title,
		Content:   req.Content,
		PostType:  req.PostType,
		Category:  req.Category,
		TrendWeek: req.TrendWeek,
		TrendRank: req.TrendRank,
		AuthorID:  authorID,
	}
	if err := s.Posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *KBuzzService) List(ctx context.Context) ([]*models.KBuzz, error) {
	return s.Posts.List(ctx, dao.KBuzzQuery{})
}

func (s *KBuzzService) ListTrend(ctx context.Context) ([]*models.KBuzz, error) {
	return s.Posts.List(ctx, dao.KBuzzQuery{PostType: models.KBuzzTrend})
}

func (s *KBuzzService) ListCommunity(ctx context.Context) ([]*models.KBuzz, error) {
	return s.Posts.List(ctx, dao.KBuzzQuery{PostType: models.KBuzzCommunity})
}

func (s *KBuzzService) ListByCategory(ctx context.Context, category string) ([]*models.KBuzz, error) {
	if !isKBuzzCategory(category) {
		return nil, response.BadRequest("category must be one of: travel_tip, food_review, cafe_review")
	}
	return s.Posts.List(ctx, dao.KBuzzQuery{Category: category})
}

func (s *KBuzzService) find(ctx context.Context, id uint64) (*models.KBuzz, error) {
	post, err := s.Posts.FindWithAuthor(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NotFound(fmt.Sprintf("K-Buzz post with ID %d not found", id))
	}
	return post, err
}

func (s *KBuzzService) Get(ctx context.Context, id uint64) (*models.KBuzz, error) {
	post, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	// 浏览数失败不影响详情返回
	if err := s.Posts.IncrColumn(ctx, id, columnViewCount, 1); err != nil {
		log.L.Warn("incr k_buzz view_count failed", zap.Uint64("post_id", id), zap.Error(err))
	}
	return post, nil
}

// canModify trend 仅管理员；community 管理员或作者
func (s *KBuzzService) canModify(post *models.KBuzz, userID uint64, role string, action string) error {
	if role == models.RoleAdmin {
		return nil
	}
	if post.PostType == models.KBuzzTrend {
		return response.Forbidden(fmt.Sprintf("Only admins can %s trend posts", action))
	}
	if post.AuthorID != userID {
		return response.Forbidden(fmt.Sprintf("You can only %s your own community posts", action))
	}
	return nil
}

func (s *KBuzzService) Update(ctx context.Context, id uint64, req *UpdateKBuzzReq, userID uint64, role string) (*models.KBuzz, error) {
	post, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.canModify(post, userID, role, "update"); err != nil {
		return nil, err
	}
	// 普通用户不能把帖子改成 trend
	if req.PostType != nil && *req.PostType == models.KBuzzTrend && role != models.RoleAdmin {
		return nil, response.Forbidden("Only admins can update trend posts")
	}

	fields := make(map[string]any)
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.PostType != nil {
		fields["post_type"] = *req.PostType
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.TrendWeek != nil {
		fields["trend_week"] = *req.TrendWeek
	}
	if req.TrendRank != nil {
		fields["trend_rank"] = *req.TrendRank
	}

	if _, err := s.Posts.UpdateById(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.find(ctx, id)
}

func (s *KBuzzService) Delete(ctx context.Context, id uint64, userID uint64, role string) error {
	post, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.canModify(post, userID, role, "delete"); err != nil {
		return err
	}
	_, err = s.Posts.DeleteById(ctx, id)
	return err
}
