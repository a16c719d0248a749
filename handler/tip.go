package handler

import (
	"KMate/middleware"
	"KMate/models"
	"KMate/pkg/context"
	"KMate/pkg/jwt"
	"KMate/pkg/response"
	"KMate/service"

	"github.com/gin-gonic/gin"
)

type Tip struct {
	Issuer     *jwt.Issuer
	TipService service.ITipService
}

func (t *Tip) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(t.Issuer)
	admin := middleware.RequireRole(models.RoleAdmin)

	g := r.Group("/tips")
	g.POST("", authorize, admin, context.Wrap(t.Create))
	g.GET("", context.Wrap(t.List))
	g.GET("/type/:tipType", context.Wrap(t.ListByType))
	g.GET("/:id", context.Wrap(t.Get))
	g.PATCH("/:id", authorize, admin, context.Wrap(t.Update))
	g.PATCH("/:id/pin", authorize, admin, context.Wrap(t.TogglePin))
	g.DELETE("/:id", authorize, admin, context.Wrap(t.Delete))
}

func (t *Tip) Create(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req service.CreateTipReq
	if err := context.BindJSON(c, &req); err != nil {
		return err
	}
	tip, err := t.TipService.Create(c.Request.Context(), &req, uid)
	if err != nil {
		return err
	}
	response.Created(c, tip)
	return nil
}

func (t *Tip) List(c *gin.Context) error {
	tips, err := t.TipService.List(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, tips)
	return nil
}

func (t *Tip) ListByType(c *gin.Context) error {
	tips, err := t.TipService.ListByType(c.Request.Context(), c.Param("tipType"))
	if err != nil {
		return err
	}
	response.Success(c, tips)
	return nil
}

func (t *Tip) Get(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	tip, err := t.TipService.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, tip)
	return nil
}

func (t *Tip) Update(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req service.UpdateTipReq
	if err := context.BindJSON(c, &req); err != nil {
		return err
	}
	tip, err := t.TipService.Update(c.Request.Context(), id, &req, uid, context.GetRole(c))
	if err != nil {
		return err
	}
	response.Success(c, tip)
	return nil
}

func (t *Tip) TogglePin(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	tip, err := t.TipService.TogglePin(c.Request.Context(), id, context.GetRole(c))
	if err != nil {
		return err
	}
	response.Success(c, tip)
	return nil
}

func (t *Tip) Delete(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	if err := t.TipService.Delete(c.Request.Context(), id, uid, context.GetRole(c)); err != nil {
		return err
	}
	response.Message(c, "Tip deleted successfully")
	return nil
}
