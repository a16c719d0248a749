package handler

import (
	"KMate/middleware"
	"KMate/pkg/context"
	"KMate/pkg/jwt"
	"KMate/pkg/response"
	"KMate/service"

	"github.com/gin-gonic/gin"
)

type Comment struct {
	Issuer         *jwt.Issuer
	CommentService service.ICommentService
}

// RegisterRouter GET 下 /:ref 既是评论 id 也是 postType，gin 要求同层参数同名
func (h *Comment) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Issuer)

	g := r.Group("/comments")
	g.POST("/:ref/:postId", authorize, context.Wrap(h.Create))
	g.GET("/my-comments", authorize, context.Wrap(h.ListMine))
	g.GET("/:ref/:postId", context.Wrap(h.ListByPost))
	g.GET("/:ref", context.Wrap(h.Get))
	g.PATCH("/:ref", authorize, context.Wrap(h.Update))
	g.DELETE("/:ref", authorize, context.Wrap(h.Delete))
}

func (h *Comment) Create(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	postType, postID, err := postParams(c, "ref")
	if err != nil {
		return err
	}
	var req service.CommentReq
	if err := context.BindJSON(c, &req); err != nil {
		return err
	}
	comment, err := h.CommentService.Create(c.Request.Context(), &req, uid, postType, postID)
	if err != nil {
		return err
	}
	response.Created(c, comment)
	return nil
}

func (h *Comment) ListByPost(c *gin.Context) error {
	postType, postID, err := postParams(c, "ref")
	if err != nil {
		return err
	}
	comments, err := h.CommentService.ListByPost(c.Request.Context(), postType, postID)
	if err != nil {
		return err
	}
	response.Success(c, comments)
	return nil
}

func (h *Comment) ListMine(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	page, limit := context.Paging(c)
	comments, total, err := h.CommentService.ListMine(c.Request.Context(), uid, page, limit)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"comments": comments, "total": total})
	return nil
}

func (h *Comment) Get(c *gin.Context) error {
	id, err := context.ParamID(c, "ref")
	if err != nil {
		return err
	}
	comment, err := h.CommentService.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, comment)
	return nil
}

func (h *Comment) Update(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := context.ParamID(c, "ref")
	if err != nil {
		return err
	}
	var req service.CommentReq
	if err := context.BindJSON(c, &req); err != nil {
		return err
	}
	comment, err := h.CommentService.Update(c.Request.Context(), id, &req, uid)
	if err != nil {
		return err
	}
	response.Success(c, comment)
	return nil
}

func (h *Comment) Delete(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := context.ParamID(c, "ref")
	if err != nil {
		return err
	}
	if err := h.CommentService.Delete(c.Request.Context(), id, uid); err != nil {
		return err
	}
	response.Message(c, "Comment deleted successfully")
	return nil
}
