package service

import (
	"KMate/models"
	"KMate/pkg/response"
	"context"
	"errors"

	"gorm.io/gorm"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Like(ctx context.Context, userID uint64, postType string, postID uint64) (*models.Like, error)
	Unlike(ctx context.Context, userID uint64, postType string, postID uint64) error
	// Toggle 返回操作后的点赞状态
	Toggle(ctx context.Context, userID uint64, postType string, postID uint64) (bool, error)
	ListMine(ctx context.Context, userID uint64) ([]*models.Like, error)
	ListByPost(ctx context.Context, postType string, postID uint64) ([]*models.Like, error)
	IsLiked(ctx context.Context, userID uint64, postType string, postID uint64) (bool, error)
}

var errAlreadyLiked = response.Conflict("You have already liked this post")

type LikeService struct {
	Likes LikeStore
	Posts *PostResolver
}

func (s *LikeService) Like(ctx context.Context, userID uint64, postType string, postID uint64) (*models.Like, error) {
	existing, err := s.Likes.Find(ctx, userID, postType, postID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errAlreadyLiked
	}
	if err := s.Posts.Ensure(ctx, postType, postID); err != nil {
		return nil, err
	}

	like := &models.Like{UserID: userID, PostType: postType, PostID: postID}
	if err := s.Likes.Create(ctx, like); err != nil {
		// 并发重复点赞由唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errAlreadyLiked
		}
		return nil, err
	}
	return like, nil
}

func (s *LikeService) Unlike(ctx context.Context, userID uint64, postType string, postID uint64) error {
	existing, err := s.Likes.Find(ctx, userID, postType, postID)
	if err != nil {
		return err
	}
	if existing == nil {
		return response.NotFound("Like not found")
	}
	_, err = s.Likes.DeleteById(ctx, existing.ID)
	return err
}

func (s *LikeService) Toggle(ctx context.Context, userID uint64, postType string, postID uint64) (bool, error) {
	existing, err := s.Likes.Find(ctx, userID, postType, postID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		if _, err := s.Likes.DeleteById(ctx, existing.ID); err != nil {
			return false, err
		}
		return false, nil
	}
	if _, err := s.Like(ctx, userID, postType, postID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *LikeService) ListMine(ctx context.Context, userID uint64) ([]*models.Like, error) {
	likes, err := s.Likes.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := attachPosts(ctx, s.Posts, likes, likeRef); err != nil {
		return nil, err
	}
	return likes, nil
}

func (s *LikeService) ListByPost(ctx context.Context, postType string, postID uint64) ([]*models.Like, error) {
	return s.Likes.ListByPost(ctx, postType, postID)
}

func (s *LikeService) IsLiked(ctx context.Context, userID uint64, postType string, postID uint64) (bool, error) {
	existing, err := s.Likes.Find(ctx, userID, postType, postID)
	if err != nil {
		return false, err
	}
	return existing != nil, nil
}
