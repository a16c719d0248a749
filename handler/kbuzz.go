package handler

import (
	"KMate/middleware"
	"KMate/pkg/context"
	"KMate/pkg/jwt"
	"KMate/pkg/response"
	"KMate/service"

	"github.com/gin-gonic/gin"
)

type KBuzz struct {
	Issuer       *jwt.Issuer
	KBuzzService service.IKBuzzService
}

// RegisterRouter /posts 与 /k-buzz 是同一组接口
func (k *KBuzz) RegisterRouter(r gin.IRouter) {
	for _, prefix := range []string{"/posts", "/k-buzz"} {
		k.register(r.Group(prefix))
	}
}

func (k *KBuzz) register(g *gin.RouterGroup) {
	authorize := middleware.Auth(k.Issuer)

	g.POST("", authorize, context.Wrap(k.Create))
	g.GET("", context.Wrap(k.List))
	g.GET("/trend", context.Wrap(k.ListTrend))
	g.GET("/community", context.Wrap(k.ListCommunity))
	g.GET("/category/:category", context.Wrap(k.ListByCategory))
	g.GET("/:id", context.Wrap(k.Get))
	g.PATCH("/:id", authorize, context.Wrap(k.Update))
	g.DELETE("/:id", authorize, context.Wrap(k.Delete))
}

func (k *KBuzz) Create(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req service.CreateKBuzzReq
	if err := context.BindJSON(c, &req); err != nil {
		return err
	}
	post, err := k.KBuzzService.Create(c.Request.Context(), &req, uid, context.GetRole(c))
	if err != nil {
		return err
	}
	response.Created(c, post)
	return nil
}

func (k *KBuzz) List(c *gin.Context) error {
	posts, err := k.KBuzzService.List(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, posts)
	return nil
}

func (k *KBuzz) ListTrend(c *gin.Context) error {
	posts, err := k.KBuzzService.ListTrend(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, posts)
	return nil
}

func (k *KBuzz) ListCommunity(c *gin.Context) error {
	posts, err := k.KBuzzService.ListCommunity(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, posts)
	return nil
}

func (k *KBuzz) ListByCategory(c *gin.Context) error {
	posts, err := k.KBuzzService.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		return err
	}
	response.Success(c, posts)
	return nil
}

func (k *KBuzz) Get(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	post, err := k.KBuzzService.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, post)
	return nil
}

func (k *KBuzz) Update(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req service.UpdateKBuzzReq
	if err := context.BindJSON(c, &req); err != nil {
		return err
	}
	post, err := k.KBuzzService.Update(c.Request.Context(), id, &req, uid, context.GetRole(c))
	if err != nil {
		return err
	}
	response.Success(c, post)
	return nil
}

func (k *KBuzz) Delete(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	if err := k.KBuzzService.Delete(c.Request.Context(), id, uid, context.GetRole(c)); err != nil {
		return err
	}
	response.Message(c, "Post deleted successfully")
	return nil
}
