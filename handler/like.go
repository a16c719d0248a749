package handler

import (
	"KMate/middleware"
	"KMate/pkg/context"
	"KMate/pkg/jwt"
	"KMate/pkg/response"
	"KMate/service"

	"github.com/gin-gonic/gin"
)

type Like struct {
	Issuer      *jwt.Issuer
	LikeService service.ILikeService
}

func (l *Like) RegisterRouter(r gin.IRouter) {
	g := r.Group("/likes", middleware.Auth(l.Issuer))
	g.POST("/:postType/:postId", context.Wrap(l.Like))
	g.DELETE("/:postType/:postId", context.Wrap(l.Unlike))
	g.POST("/toggle/:postType/:postId", context.Wrap(l.Toggle))
	g.GET("/my", context.Wrap(l.ListMine))
	g.GET("/:postType/:postId", context.Wrap(l.ListByPost))
	g.GET("/check/:postType/:postId", context.Wrap(l.Check))
}

func (l *Like) Like(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	postType, postID, err := postParams(c, "postType")
	if err != nil {
		return err
	}
	like, err := l.LikeService.Like(c.Request.Context(), uid, postType, postID)
	if err != nil {
		return err
	}
	response.Created(c, like)
	return nil
}

func (l *Like) Unlike(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	postType, postID, err := postParams(c, "postType")
	if err != nil {
		return err
	}
	if err := l.LikeService.Unlike(c.Request.Context(), uid, postType, postID); err != nil {
		return err
	}
	response.Message(c, "Like removed successfully")
	return nil
}

func (l *Like) Toggle(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	postType, postID, err := postParams(c, "postType")
	if err != nil {
		return err
	}
	liked, err := l.LikeService.Toggle(c.Request.Context(), uid, postType, postID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"liked": liked})
	return nil
}

func (l *Like) ListMine(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	likes, err := l.LikeService.ListMine(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, likes)
	return nil
}

func (l *Like) ListByPost(c *gin.Context) error {
	postType, postID, err := postParams(c, "postType")
	if err != nil {
		return err
	}
	likes, err := l.LikeService.ListByPost(c.Request.Context(), postType, postID)
	if err != nil {
		return err
	}
	response.Success(c, likes)
	return nil
}

func (l *Like) Check(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	postType, postID, err := postParams(c, "postType")
	if err != nil {
		return err
	}
	liked, err := l.LikeService.IsLiked(c.Request.Context(), uid, postType, postID)
	if err != nil {
		return err
	}
	response.Success(c, liked)
	return nil
}
