package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	storeSet,

	NewGoogleProvider,
	wire.Bind(new(IGoogleProvider), new(*GoogleProvider)),

	wire.Struct(new(PostResolver), "*"),

	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(PlaceService), "*"),
	wire.Bind(new(IPlaceService), new(*PlaceService)),

	wire.Struct(new(KBuzzService), "*"),
	wire.Bind(new(IKBuzzService), new(*KBuzzService)),

	wire.Struct(new(TipService), "*"),
	wire.Bind(new(ITipService), new(*TipService)),

	wire.Struct(new(CommentService), "*"),
	wire.Bind(new(ICommentService), new(*CommentService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(ScrapService), "*"),
	wire.Bind(new(IScrapService), new(*ScrapService)),

	wire.Struct(new(BookmarkService), "*"),
	wire.Bind(new(IBookmarkService), new(*BookmarkService)),
)
