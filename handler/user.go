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

type User struct {
	Issuer      *jwt.Issuer
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	g := r.Group("/users", middleware.Auth(u.Issuer))
	admin := middleware.RequireRole(models.RoleAdmin)

	g.GET("", admin, context.Wrap(u.List))
	g.GET("/profile", context.Wrap(u.Profile))
	g.PUT("/profile", context.Wrap(u.UpdateProfile))
	g.GET("/:id", context.Wrap(u.Get))
	g.DELETE("/:id", admin, context.Wrap(u.Delete))
}

func (u *User) List(c *gin.Context) error {
	page, limit := context.Paging(c)
	users, total, err := u.UserService.List(c.Request.Context(), page, limit)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"users": users, "total": total})
	return nil
}

func (u *User) Profile(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	user, err := u.UserService.GetByID(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}

func (u *User) UpdateProfile(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req service.UpdateProfileReq
	if err := context.BindJSON(c, &req); err != nil {
		return err
	}
	user, err := u.UserService.UpdateProfile(c.Request.Context(), uid, &req)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}

func (u *User) Get(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	user, err := u.UserService.GetByID(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}

func (u *User) Delete(c *gin.Context) error {
	id, err := context.ParamID(c, "id")
	if err != nil {
		return err
	}
	if err := u.UserService.Delete(c.Request.Context(), id); err != nil {
		return err
	}
	response.Message(c, "User deleted successfully")
	return nil
}
