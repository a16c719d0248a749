package service

import (
	"KMate/models"
	"KMate/pkg/log"
	"KMate/pkg/response"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ ITipService = (*TipService)(nil)

type ITipService interface {
	Create(ctx context.Context, req *CreateTipReq, authorID uint64) (*models.Tip, error)
	List(ctx context.Context) ([]*models.Tip, error)
	ListByType(ctx context.Context, tipType string) ([]*models.Tip, error)
	Get(ctx context.Context, id uint64) (*models.Tip, error)
	Update(ctx context.Context, id uint64, req *UpdateTipReq, userID uint64, role string) (*models.Tip, error)
	Delete(ctx context.Context, id uint64, userID uint64, role string) error
	TogglePin(ctx context.Context, id uint64, role string) (*models.Tip, error)
}

type CreateTipReq struct {
	Title    string `json:"title" binding:"required,max=200"`
	Content  string `json:"content" binding:"required"`
	TipType  string `json:"tip_type" binding:"required,oneof=bus_guide subway_guide restaurant_book"`
	IsPinned bool   `json:"is_pinned"`
}

type UpdateTipReq struct {
	Title    *string `json:"title" binding:"omitempty,min=1,max=200"`
	Content  *string `json:"content" binding:"omitempty,min=1"`
	TipType  *string `json:"tip_type" binding:"omitempty,oneof=bus_guide subway_guide restaurant_book"`
	IsPinned *bool   `json:"is_pinned"`
}

type TipService struct {
	Tips TipStore
}

func (s *TipService) Create(ctx context.Context, req *CreateTipReq, authorID uint64) (*models.Tip, error) {
	tip := &models.Tip{
		Title:    req.Title,
		Content:  req.Content,
		TipType:  req.TipType,
		IsPinned: req.IsPinned,
		AuthorID: authorID,
	}
	if err := s.Tips.Create(ctx, tip); err != nil {
		return nil, err
	}
	return tip, nil
}

func (s *TipService) List(ctx context.Context) ([]*models.Tip, error) {
	return s.Tips.List(ctx, "")
}

func (s *TipService) ListByType(ctx context.Context, tipType string) ([]*models.Tip, error) {
	if !models.IsTipType(tipType) {
		return nil, response.BadRequest("tipType must be one of: bus_guide, subway_guide, restaurant_book")
	}
	return s.Tips.List(ctx, tipType)
}

func (s *TipService) find(ctx context.Context, id uint64) (*models.Tip, error) {
	tip, err := s.Tips.FindWithAuthor(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NotFound(fmt.Sprintf("Tip with ID %d not found", id))
	}
	return tip, err
}

func (s *TipService) Get(ctx context.Context, id uint64) (*models.Tip, error) {
	tip, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Tips.IncrColumn(ctx, id, columnViewCount, 1); err != nil {
		log.L.Warn("incr tip view_count failed", zap.Uint64("tip_id", id), zap.Error(err))
	}
	return tip, nil
}

func (s *TipService) Update(ctx context.Context, id uint64, req *UpdateTipReq, userID uint64, role string) (*models.Tip, error) {
	tip, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if role != models.RoleAdmin && tip.AuthorID != userID {
		return nil, response.Forbidden("You can only update your own tips")
	}

	fields := make(map[string]any)
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.TipType != nil {
		fields["tip_type"] = *req.TipType
	}
	if req.IsPinned != nil {
		fields["is_pinned"] = *req.IsPinned
	}

	if _, err := s.Tips.UpdateById(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.find(ctx, id)
}

func (s *TipService) Delete(ctx context.Context, id uint64, userID uint64, role string) error {
	tip, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if role != models.RoleAdmin && tip.AuthorID != userID {
		return response.Forbidden("You can only delete your own tips")
	}
	_, err = s.Tips.DeleteById(ctx, id)
	return err
}

func (s *TipService) TogglePin(ctx context.Context, id uint64, role string) (*models.Tip, error) {
	if role != models.RoleAdmin {
		return nil, response.Forbidden("Only admins can pin/unpin tips")
	}
	n, err := s.Tips.TogglePin(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, response.NotFound(fmt.Sprintf("Tip with ID %d not found", id))
	}
	return s.find(ctx, id)
}
