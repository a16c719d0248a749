package service

import (
	"KMate/models"
	"KMate/pkg/response"
	"context"

	"github.com/sourcegraph/conc/pool"
)

// PostResolver 处理 post_type + post_id 形式的多态帖子引用
type PostResolver struct {
	KBuzz KBuzzStore
	Tips  TipStore
}

// Ensure 帖子不存在时返回 404
func (r *PostResolver) Ensure(ctx context.Context, postType string, postID uint64) error {
	var (
		exist bool
		err   error
		msg   string
	)
	switch postType {
	case models.PostTypeKBuzz:
		exist, err = r.KBuzz.Exists(ctx, postID)
		msg = "K-Buzz post not found"
	case models.PostTypeTips:
		exist, err = r.Tips.Exists(ctx, postID)
		msg = "Tip post not found"
	default:
		return response.BadRequest("postType must be one of: k_buzz, tips")
	}
	if err != nil {
		return err
	}
	if !exist {
		return response.NotFound(msg)
	}
	return nil
}

// attachPosts 批量加载帖子并回填到 PostRef，已删除的帖子保持为空
func attachPosts[T any](ctx context.Context, r *PostResolver, items []*T, ref func(*T) (string, uint64, *models.PostRef)) error {
	var kbuzzIds, tipIds []uint64
	for _, item := range items {
		postType, postID, _ := ref(item)
		if postType == models.PostTypeKBuzz {
			kbuzzIds = append(kbuzzIds, postID)
		} else {
			tipIds = append(tipIds, postID)
		}
	}

	var (
		kbuzzMap = make(map[uint64]*models.KBuzz, len(kbuzzIds))
		tipMap   = make(map[uint64]*models.Tip, len(tipIds))
	)

	// 两张表互不依赖，并发查询
	p := pool.New().WithErrors().WithContext(ctx)
	if len(kbuzzIds) > 0 {
		p.Go(func(ctx context.Context) error {
			posts, err := r.KBuzz.FindByIds(ctx, kbuzzIds)
			if err != nil {
				return err
			}
			for _, post := range posts {
				kbuzzMap[post.ID] = post
			}
			return nil
		})
	}
	if len(tipIds) > 0 {
		p.Go(func(ctx context.Context) error {
			tips, err := r.Tips.FindByIds(ctx, tipIds)
			if err != nil {
				return err
			}
			for _, tip := range tips {
				tipMap[tip.ID] = tip
			}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return err
	}

	for _, item := range items {
		postType, postID, pr := ref(item)
		if postType == models.PostTypeKBuzz {
			pr.KBuzzPost = kbuzzMap[postID]
		} else {
			pr.TipPost = tipMap[postID]
		}
	}
	return nil
}

func commentRef(c *models.Comment) (string, uint64, *models.PostRef) {
	return c.PostType, c.PostID, &c.PostRef
}

func likeRef(l *models.Like) (string, uint64, *models.PostRef) {
	return l.PostType, l.PostID, &l.PostRef
}

func scrapRef(s *models.Scrap) (string, uint64, *models.PostRef) {
	return s.PostType, s.PostID, &s.PostRef
}
