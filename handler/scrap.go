package handler

import (
	"KMate/middleware"
	"KMate/pkg/context"
	"KMate/pkg/jwt"
	"KMate/pkg/response"
	"KMate/service"

	"github.com/gin-gonic/gin"
)

type Scrap struct {
	Issuer       *jwt.Issuer
	ScrapService service.IScrapService
}

func (s *Scrap) RegisterRouter(r gin.IRouter) {
	g := r.Group("/scraps", middleware.Auth(s.Issuer))
	g.POST("/:postType/:postId", context.Wrap(s.Scrap))
	g.DELETE("/:postType/:postId", context.Wrap(s.Unscrap))
	g.POST("/toggle/:postType/:postId", context.Wrap(s.Toggle))
	g.GET("/my", context.Wrap(s.ListMine))
	g.GET("/:postType/:postId", context.Wrap(s.ListByPost))
	g.GET("/check/:postType/:postId", context.Wrap(s.Check))
}

func (s *Scrap) Scrap(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	postType, postID, err := postParams(c, "postType")
	if err != nil {
		return err
	}
	scrap, err := s.ScrapService.Scrap(c.Request.Context(), uid, postType, postID)
	if err != nil {
		return err
	}
	response.Created(c, scrap)
	return nil
}

func (s *Scrap) Unscrap(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	postType, postID, err := postParams(c, "postType")
	if err != nil {
		return err
	}
	if err := s.ScrapService.Unscrap(c.Request.Context(), uid, postType, postID); err != nil {
		return err
	}
	response.Message(c, "Scrap removed successfully")
	return nil
}

func (s *Scrap) Toggle(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	postType, postID, err := postParams(c, "postType")
	if err != nil {
		return err
	}
	scrapped, err := s.ScrapService.Toggle(c.Request.Context(), uid, postType, postID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"scrapped": scrapped})
	return nil
}

func (s *Scrap) ListMine(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	scraps, err := s.ScrapService.ListMine(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, scraps)
	return nil
}

func (s *Scrap) ListByPost(c *gin.Context) error {
	postType, postID, err := postParams(c, "postType")
	if err != nil {
		return err
	}
	scraps, err := s.ScrapService.ListByPost(c.Request.Context(), postType, postID)
	if err != nil {
		return err
	}
	response.Success(c, scraps)
	return nil
}

func (s *Scrap) Check(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	postType, postID, err := postParams(c, "postType")
	if err != nil {
		return err
	}
	scrapped, err := s.ScrapService.IsScrapped(c.Request.Context(), uid, postType, postID)
	if err != nil {
		return err
	}
	response.Success(c, scrapped)
	return nil
}
