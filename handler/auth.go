package handler

import (
	"KMate/config"
	"KMate/middleware"
	"KMate/pkg/context"
	"KMate/pkg/log"
	"KMate/service"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Auth struct {
	Config      *config.Config
	AuthService service.IAuthService
}

type refreshReq struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type validateReq struct {
	Token string `json:"token" binding:"required"`
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/auth", middleware.RateLimit(a.Config.Server.AuthRateLimit))
	g.GET("/google", context.Wrap(a.GoogleLogin))
	g.GET("/google/callback", a.GoogleCallback)
	g.POST("/refresh", context.Wrap(a.Refresh))
	g.POST("/validate", context.Wrap(a.Validate))
}

// GoogleLogin 跳转到 Google 授权页
func (a *Auth) GoogleLogin(c *gin.Context) error {
	authURL, err := a.AuthService.GoogleAuthURL(c.Request.Context())
	if err != nil {
		return err
	}
	c.Redirect(http.StatusFound, authURL)
	return nil
}

// GoogleCallback 成功后把令牌放在查询参数里跳回前端
func (a *Auth) GoogleCallback(c *gin.Context) {
	frontend := a.Config.App.FrontendURL

	pair, err := a.AuthService.GoogleCallback(c.Request.Context(), c.Query("state"), c.Query("code"))
	if err != nil {
		log.L.Warn("google oauth callback failed", zap.Error(err))
		c.Redirect(http.StatusFound, frontend+"/login?error=oauth_failed")
		return
	}

	q := url.Values{}
	q.Set("access_token", pair.AccessToken)
	q.Set("refresh_token", pair.RefreshToken)
	c.Redirect(http.StatusFound, frontend+"/auth/callback?"+q.Encode())
}

func (a *Auth) Refresh(c *gin.Context) error {
	var req refreshReq
	if err := context.BindJSON(c, &req); err != nil {
		return err
	}
	pair, err := a.AuthService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Tokens refreshed successfully",
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
	return nil
}

func (a *Auth) Validate(c *gin.Context) error {
	var req validateReq
	if err := context.BindJSON(c, &req); err != nil {
		return err
	}
	claims, err := a.AuthService.ValidateToken(req.Token)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "payload": claims})
	return nil
}
