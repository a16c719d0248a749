package service

import (
	"KMate/models"
	"KMate/pkg/response"
	"context"
	"errors"

	"gorm.io/gorm"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	Create(ctx context.Context, req *CommentReq, authorID uint64, postType string, postID uint64) (*models.Comment, error)
	ListByPost(ctx context.Context, postType string, postID uint64) ([]*models.Comment, error)
	Get(ctx context.Context, id uint64) (*models.Comment, error)
	Update(ctx context.Context, id uint64, req *CommentReq, userID uint64) (*models.Comment, error)
	Delete(ctx context.Context, id uint64, userID uint64) error
	ListMine(ctx context.Context, userID uint64, page, limit int) ([]*models.Comment, int64, error)
}

// CommentReq 创建与修改共用
type CommentReq struct {
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

var errNotCommentAuthor = response.Forbidden("Comment not found or you are not the author")

type CommentService struct {
	Comments CommentStore
	Posts    *PostResolver
}

func (s *CommentService) Create(ctx context.Context, req *CommentReq, authorID uint64, postType string, postID uint64) (*models.Comment, error) {
	if err := s.Posts.Ensure(ctx, postType, postID); err != nil {
		return nil, err
	}
	comment := &models.Comment{
		PostType: postType,
		PostID:   postID,
		AuthorID: authorID,
		Content:  req.Content,
	}
	if err := s.Comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ListByPost(ctx context.Context, postType string, postID uint64) ([]*models.Comment, error) {
	return s.Comments.ListByPost(ctx, postType, postID)
}

func (s *CommentService) Get(ctx context.Context, id uint64) (*models.Comment, error) {
	comment, err := s.Comments.FindWithAuthor(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NotFound("Comment not found")
	}
	if err != nil {
		return nil, err
	}
	if err := attachPosts(ctx, s.Posts, []*models.Comment{comment}, commentRef); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Update(ctx context.Context, id uint64, req *CommentReq, userID uint64) (*models.Comment, error) {
	comment, err := s.Comments.FindByIdAndAuthor(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, errNotCommentAuthor
	}
	if _, err := s.Comments.UpdateById(ctx, id, map[string]any{"content": req.Content}); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *CommentService) Delete(ctx context.Context, id uint64, userID uint64) error {
	comment, err := s.Comments.FindByIdAndAuthor(ctx, id, userID)
	if err != nil {
		return err
	}
	if comment == nil {
		return errNotCommentAuthor
	}
	_, err = s.Comments.DeleteById(ctx, comment.ID)
	return err
}

func (s *CommentService) ListMine(ctx context.Context, userID uint64, page, limit int) ([]*models.Comment, int64, error) {
	comments, total, err := s.Comments.ListByAuthor(ctx, userID, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}
	if err := attachPosts(ctx, s.Posts, comments, commentRef); err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}
