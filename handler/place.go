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

type Place struct {
	Issuer       *jwt.Issuer
	PlaceService service.IPlaceService
}

func (p *Place) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(p.Issuer)
	admin := middleware.RequireRole(models.RoleAdmin)

	g := r.Group("/places")
	g.GET("", context.Wrap(p.List))
	g.GET("/type/:type", context.Wrap(p.ListByType))
	g.GET("/nearby", context.Wrap(p.Nearby))
	g.GET("/:id", context.Wrap(p.Get))
	g.POST("", authorize, admin, context.Wrap(p.Create))
	g.PATCH("/:id", authorize, admin, context.Wrap(p.Update))
	g.DELETE("/:id", authorize, admin, context.Wrap(p.Delete))
}

func (p *Place) List(c *gin.Context) error {
	page, limit := context.Paging(c)
	places, total, err := p.PlaceService.List(c.Request.Context(), &service.ListPlaceReq{
		Page:   page,
		Limit:  limit,
		Type:   c.Query("type"),
		Search: c.Query("search"),
	})
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"places": places, "total": total})
	return nil
}

func (p *Place) ListByType(c *gin.Context) error {
	limit := context.Limit(c, 10)
	places, err := p.PlaceService.ListByType(c.Request.Context(), c.Param("type"), limit)
	if err != nil {
		return err
	}
	response.Success(c, places)
	return nil
}

func (p *Place) Nearby(c *gin.Context) error {
	var req service.NearbyReq
	if err := context.BindQuery(c, &req); err != nil {
		return err
	}
	places, err := p.PlaceService.Nearby(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, places)
	return nil
}

func (p *Place) Get(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	place, err := p.PlaceService.GetByID(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, place)
	return nil
}

func (p *Place) Create(c *gin.Context) error {
	var req service.CreatePlaceReq
	if err := context.BindJSON(c, &req); err != nil {
		return err
	}
	place, err := p.PlaceService.Create(c.Request.Context(), &req, context.GetRole(c))
	if err != nil {
		return err
	}
	response.Created(c, place)
	return nil
}

func (p *Place) Update(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	var req service.UpdatePlaceReq
	if err := context.BindJSON(c, &req); err != nil {
		return err
	}
	place, err := p.PlaceService.Update(c.Request.Context(), id, &req, context.GetRole(c))
	if err != nil {
		return err
	}
	response.Success(c, place)
	return nil
}

func (p *Place) Delete(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	if err := p.PlaceService.Delete(c.Request.Context(), id, context.GetRole(c)); err != nil {
		return err
	}
	response.Message(c, "Place deleted successfully")
	return nil
}
