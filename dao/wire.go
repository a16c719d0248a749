package dao

import (
	"KMate/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewPlaceDAO,
	NewKBuzzDAO,
	NewTipDAO,
	NewCommentDAO,
	NewLikeDAO,
	NewScrapDAO,
	NewBookmarkDAO,
	cache.NewOAuthStateStorage,
)
