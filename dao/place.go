package dao

import (
	"KMate/models"
	"KMate/pkg/geo"
	"context"

	"gorm.io/gorm"
)

// haversine 距离表达式，LEAST 防止浮点误差导致 acos 越界
const haversineExpr = "(? * acos(LEAST(1, cos(radians(?)) * cos(radians(lat)) * cos(radians(lng) - radians(?)) + sin(radians(?)) * sin(radians(lat)))))"

type PlaceQuery struct {
	Type   string
	Search string
	Offset int
	Limit  int
}

type PlaceDAO struct {
	Repo[models.Place]
}

func NewPlaceDAO(db *gorm.DB) *PlaceDAO {
	return &PlaceDAO{Repo: NewRepo[models.Place](db)}
}

func (d *PlaceDAO) Exists(ctx context.Context, id uint64) (bool, error) {
	return d.IsExist(ctx, "id = ?", id)
}

// List 类型过滤 + 名称/描述/地址模糊搜索
func (d *PlaceDAO) List(ctx context.Context, q PlaceQuery) ([]*models.Place, int64, error) {
	var (
		places []*models.Place
		total  int64
	)
	db := d.Db.WithContext(ctx).Model(&models.Place{})
	if q.Type != "" {
		db = db.Where("type = ?", q.Type)
	}
	if q.Search != "" {
		like := "%" + q.Search + "%"
		db = db.Where("(name LIKE ? OR description LIKE ? OR address LIKE ?)", like, like, like)
	}
	db = db.Session(&gorm.Session{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Order("id DESC").Offset(q.Offset).Limit(q.Limit).Find(&places).Error
	return places, total, err
}

func (d *PlaceDAO) ListByType(ctx context.Context, placeType string, limit int) ([]*models.Place, error) {
	var places []*models.Place
	err := d.Db.WithContext(ctx).
		Where("type = ?", placeType).
		Order("id DESC").
		Limit(limit).
		Find(&places).Error
	return places, err
}

// Nearby 半径 radiusKm 内的地点，按距离升序
func (d *PlaceDAO) Nearby(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]*models.Place, error) {
	var places []*models.Place
	dist := gorm.Expr(haversineExpr, geo.EarthRadiusKm, lat, lng, lat)
	err := d.Db.WithContext(ctx).
		Where("lat IS NOT NULL AND lng IS NOT NULL").
		Where("? <= ?", dist, radiusKm).
		Clauses(orderByExpr(dist)).
		Limit(limit).
		Find(&places).Error
	return places, err
}
