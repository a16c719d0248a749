package service

import (
	"KMate/dao"
	"KMate/dao/cache"
	"KMate/models"
	"context"

	"github.com/google/wire"
)

// 以下接口由 dao 包实现，service 只依赖接口，便于替换测试

type UserStore interface {
	FindById(ctx context.Context, id uint64) (*models.User, error)
	FindByGoogleSub(ctx context.Context, sub string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateById(ctx context.Context, id uint64, data map[string]any) (int64, error)
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	DeleteById(ctx context.Context, id uint64) (int64, error)
}

type PlaceStore interface {
	FindById(ctx context.Context, id uint64) (*models.Place, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	Create(ctx context.Context, place *models.Place) error
	UpdateById(ctx context.Context, id uint64, data map[string]any) (int64, error)
	DeleteById(ctx context.Context, id uint64) (int64, error)
	List(ctx context.Context, q dao.PlaceQuery) ([]*models.Place, int64, error)
	ListByType(ctx context.Context, placeType string, limit int) ([]*models.Place, error)
	Nearby(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]*models.Place, error)
}

type KBuzzStore interface {
	FindWithAuthor(ctx context.Context, id uint64) (*models.KBuzz, error)
	FindByIds(ctx context.Context, ids []uint64) ([]*models.KBuzz, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	Create(ctx context.Context, post *models.KBuzz) error
	UpdateById(ctx context.Context, id uint64, data map[string]any) (int64, error)
	DeleteById(ctx context.Context, id uint64) (int64, error)
	IncrColumn(ctx context.Context, id uint64, column string, delta int64) error
	List(ctx context.Context, q dao.KBuzzQuery) ([]*models.KBuzz, error)
}

type TipStore interface {
	FindWithAuthor(ctx context.Context, id uint64) (*models.Tip, error)
	FindByIds(ctx context.Context, ids []uint64) ([]*models.Tip, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	Create(ctx context.Context, tip *models.Tip) error
	UpdateById(ctx context.Context, id uint64, data map[string]any) (int64, error)
	TogglePin(ctx context.Context, id uint64) (int64, error)
	DeleteById(ctx context.Context, id uint64) (int64, error)
	IncrColumn(ctx context.Context, id uint64, column string, delta int64) error
	List(ctx context.Context, tipType string) ([]*models.Tip, error)
}

type CommentStore interface {
	Create(ctx context.Context, comment *models.Comment) error
	UpdateById(ctx context.Context, id uint64, data map[string]any) (int64, error)
	DeleteById(ctx context.Context, id uint64) (int64, error)
	FindWithAuthor(ctx context.Context, id uint64) (*models.Comment, error)
	FindByIdAndAuthor(ctx context.Context, id, authorID uint64) (*models.Comment, error)
	ListByPost(ctx context.Context, postType string, postID uint64) ([]*models.Comment, error)
	ListByAuthor(ctx context.Context, authorID uint64, offset, limit int) ([]*models.Comment, int64, error)
}

type LikeStore interface {
	Find(ctx context.Context, userID uint64, postType string, postID uint64) (*models.Like, error)
	Create(ctx context.Context, like *models.Like) error
	DeleteById(ctx context.Context, id uint64) (int64, error)
	ListByUser(ctx context.Context, userID uint64) ([]*models.Like, error)
	ListByPost(ctx context.Context, postType string, postID uint64) ([]*models.Like, error)
}

type ScrapStore interface {
	Find(ctx context.Context, userID uint64, postType string, postID uint64) (*models.Scrap, error)
	// Add / Remove 同时维护帖子 scrap_count
	Add(ctx context.Context, scrap *models.Scrap) error
	Remove(ctx context.Context, scrap *models.Scrap) (int64, error)
	ListByUser(ctx context.Context, userID uint64) ([]*models.Scrap, error)
	ListByPost(ctx context.Context, postType string, postID uint64) ([]*models.Scrap, error)
}

type BookmarkStore interface {
	Find(ctx context.Context, userID, placeID uint64) (*models.Bookmark, error)
	Create(ctx context.Context, bookmark *models.Bookmark) error
	DeleteById(ctx context.Context, id uint64) (int64, error)
	ListByUser(ctx context.Context, userID uint64, offset, limit int) ([]*models.Bookmark, int64, error)
}

type OAuthStateStore interface {
	Save(ctx context.Context, state string) error
	Consume(ctx context.Context, state string) (bool, error)
}

var storeSet = wire.NewSet(
	wire.Bind(new(UserStore), new(*dao.Users)),
	wire.Bind(new(PlaceStore), new(*dao.PlaceDAO)),
	wire.Bind(new(KBuzzStore), new(*dao.KBuzzDAO)),
	wire.Bind(new(TipStore), new(*dao.TipDAO)),
	wire.Bind(new(CommentStore), new(*dao.CommentDAO)),
	wire.Bind(new(LikeStore), new(*dao.LikeDAO)),
	wire.Bind(new(ScrapStore), new(*dao.ScrapDAO)),
	wire.Bind(new(BookmarkStore), new(*dao.BookmarkDAO)),
	wire.Bind(new(OAuthStateStore), new(*cache.OAuthStateStorage)),
)
