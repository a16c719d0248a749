package handler

import (
	"KMate/models"
	"KMate/pkg/context"
	"KMate/pkg/response"

	"github.com/gin-gonic/gin"
)

// postParams 解析 :postType / :postId，postType 参数名由调用方指定
func postParams(c *gin.Context, typeParam string) (string, uint64, error) {
	postType := c.Param(typeParam)
	if !models.IsPostType(postType) {
		return "", 0, response.BadRequest("postType must be one of: k_buzz, tips")
	}
	postID, err := context.ParamID(c, "postId")
	if err != nil {
		return "", 0, err
	}
	return postType, postID, nil
}
