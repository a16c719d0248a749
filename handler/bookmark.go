package handler

import (
	"KMate/middleware"
	"KMate/pkg/context"
	"KMate/pkg/jwt"
	"KMate/pkg/response"
	"KMate/service"

	"github.com/gin-gonic/gin"
)

type Bookmark struct {
	Issuer          *jwt.Issuer
	BookmarkService service.IBookmarkService
}

func (b *Bookmark) RegisterRouter(r gin.IRouter) {
	g := r.Group("/bookmarks", middleware.Auth(b.Issuer))
	g.POST("/toggle/:placeId", context.Wrap(b.Toggle))
	g.GET("/my-bookmarks", context.Wrap(b.ListMine))
	g.GET("/status/:placeId", context.Wrap(b.Status))
	g.DELETE("/:placeId", context.Wrap(b.Remove))
}

func (b *Bookmark) Toggle(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	placeID, err := context.ParamID(c, "placeId")
	if err != nil {
		return err
	}
	res, err := b.BookmarkService.Toggle(c.Request.Context(), uid, placeID)
	if err != nil {
		return err
	}

	msg := "Bookmark removed successfully"
	if res.Bookmarked {
		msg = "Place bookmarked successfully"
	}
	body := gin.H{"message": msg, "bookmarked": res.Bookmarked}
	if res.Bookmark != nil {
		body["bookmark"] = res.Bookmark
	}
	response.Success(c, body)
	return nil
}

func (b *Bookmark) ListMine(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	page, limit := context.Paging(c)
	items, total, err := b.BookmarkService.ListMine(c.Request.Context(), uid, page, limit)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"bookmarks": items, "total": total})
	return nil
}

func (b *Bookmark) Status(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	placeID, err := context.ParamID(c, "placeId")
	if err != nil {
		return err
	}
	status, err := b.BookmarkService.Status(c.Request.Context(), uid, placeID)
	if err != nil {
		return err
	}
	response.Success(c, status)
	return nil
}

func (b *Bookmark) Remove(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	placeID, err := context.ParamID(c, "placeId")
	if err != nil {
		return err
	}
	if err := b.BookmarkService.Remove(c.Request.Context(), uid, placeID); err != nil {
		return err
	}
	response.Message(c, "Bookmark removed successfully")
	return nil
}
