package service

import (
	"KMate/dao"
	"KMate/models"
	"KMate/pkg/geo"
	"KMate/pkg/response"
	"context"
	"errors"

	"gorm.io/gorm"
)

var _ IPlaceService = (*PlaceService)(nil)

type IPlaceService interface {
	Create(ctx context.Context, req *CreatePlaceReq, role string) (*models.Place, error)
	List(ctx context.Context, req *ListPlaceReq) ([]*models.Place, int64, error)
	GetByID(ctx context.Context, id uint64) (*models.Place, error)
	ListByType(ctx context.Context, placeType string, limit int) ([]*models.Place, error)
	Nearby(ctx context.Context, req *NearbyReq) ([]*models.Place, error)
	Update(ctx context.Context, id uint64, req *UpdatePlaceReq, role string) (*models.Place, error)
	Delete(ctx context.Context, id uint64, role string) error
}

type CreatePlaceReq struct {
	Type          string   `json:"type" binding:"required,oneof=travel food cafe"`
	Name          string   `json:"name" binding:"required,max=255"`
	Description   *string  `json:"description" binding:"omitempty,max=1024"`
	GooglePlaceID *string  `json:"google_place_id" binding:"omitempty,max=255"`
	Lat           *float64 `json:"lat" binding:"required,latitude"`
	Lng           *float64 `json:"lng" binding:"required,longitude"`
	Address       *string  `json:"address" binding:"omitempty,max=512"`
	Phone         *string  `json:"phone" binding:"omitempty,max=64"`
	Website       *string  `json:"website" binding:"omitempty,max=512"`
}

type UpdatePlaceReq struct {
	Type          *string  `json:"type" binding:"omitempty,oneof=travel food cafe"`
	Name          *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Description   *string  `json:"description" binding:"omitempty,max=1024"`
	GooglePlaceID *string  `json:"google_place_id" binding:"omitempty,max=255"`
	Lat           *float64 `json:"lat" binding:"omitempty,latitude"`
	Lng           *float64 `json:"lng" binding:"omitempty,longitude"`
	Address       *string  `json:"address" binding:"omitempty,max=512"`
	Phone         *string  `json:"phone" binding:"omitempty,max=64"`
	Website       *string  `json:"website" binding:"omitempty,max=512"`
}

type ListPlaceReq struct {
	Page   int
	Limit  int
	Type   string
	Search string
}

type NearbyReq struct {
	Latitude  *float64 `form:"latitude" json:"latitude" binding:"required,latitude"`
	Longitude *float64 `form:"longitude" json:"longitude" binding:"required,longitude"`
	Radius    float64  `form:"radius" json:"radius" binding:"omitempty,gt=0"`
	Limit     int      `form:"limit" json:"limit" binding:"omitempty,min=1,max=100"`
}

type PlaceService struct {
	Places PlaceStore
}

func (s *PlaceService) Create(ctx context.Context, req *CreatePlaceReq, role string) (*models.Place, error) {
	if role != models.RoleAdmin {
		return nil, response.Forbidden("Only admins can create places")
	}
	place := &models.Place{
		Type:          req.Type,
		Name:          req.Name,
		Description:   req.Description,
		GooglePlaceID: req.GooglePlaceID,
		Lat:           *req.Lat,
		Lng:           *req.Lng,
		Address:       req.Address,
		Phone:         req.Phone,
		Website:       req.Website,
	}
	if err := s.Places.Create(ctx, place); err != nil {
		return nil, err
	}
	return place, nil
}

func (s *PlaceService) List(ctx context.Context, req *ListPlaceReq) ([]*models.Place, int64, error) {
	return s.Places.List(ctx, dao.PlaceQuery{
		Type:   req.Type,
		Search: req.Search,
		Offset: (req.Page - 1) * req.Limit,
		Limit:  req.Limit,
	})
}

func (s *PlaceService) GetByID(ctx context.Context, id uint64) (*models.Place, error) {
	place, err := s.Places.FindById(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NotFound("Place not found")
	}
	return place, err
}

func (s *PlaceService) ListByType(ctx context.Context, placeType string, limit int) ([]*models.Place, error) {
	if !models.IsPlaceType(placeType) {
		return nil, response.BadRequest("type must be one of: travel, food, cafe")
	}
	return s.Places.ListByType(ctx, placeType, limit)
}

// Nearby 默认半径 10km，最多 20 条
func (s *PlaceService) Nearby(ctx context.Context, req *NearbyReq) ([]*models.Place, error) {
	radius, limit := req.Radius, req.Limit
	if radius <= 0 {
		radius = 10
	}
	if limit <= 0 {
		limit = 20
	}
	places, err := s.Places.Nearby(ctx, *req.Latitude, *req.Longitude, radius, limit)
	if err != nil {
		return nil, err
	}
	for _, p := range places {
		d := geo.RoundKm(geo.Distance(*req.Latitude, *req.Longitude, p.Lat, p.Lng))
		p.Distance = &d
	}
	return places, nil
}

func (s *PlaceService) Update(ctx context.Context, id uint64, req *UpdatePlaceReq, role string) (*models.Place, error) {
	if role != models.RoleAdmin {
		return nil, response.Forbidden("Only admins can update places")
	}
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	fields := make(map[string]any)
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.GooglePlaceID != nil {
		fields["google_place_id"] = *req.GooglePlaceID
	}
	if req.Lat != nil {
		fields["lat"] = *req.Lat
	}
	if req.Lng != nil {
		fields["lng"] = *req.Lng
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Website != nil {
		fields["website"] = *req.Website
	}

	if _, err := s.Places.UpdateById(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *PlaceService) Delete(ctx context.Context, id uint64, role string) error {
	if role != models.RoleAdmin {
		return response.Forbidden("Only admins can delete places")
	}
	n, err := s.Places.DeleteById(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return response.NotFound("Place not found")
	}
	return nil
}
