package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// OAuth state 有效期
const oauthStateExpire = 10 * time.Minute

type OAuthStateStorage struct {
	redis *redis.Client
}

func NewOAuthStateStorage(rds *redis.Client) *OAuthStateStorage {
	return &OAuthStateStorage{rds}
}

// Save 记录一次授权请求的 state
func (s *OAuthStateStorage) Save(ctx context.Context, state string) error {
	ok, err := s.redis.SetNX(ctx, s.name(state), 1, oauthStateExpire).Result()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("oauth state %s already exists", state)
	}
	return nil
}

// Consume 校验并删除 state，只有第一次调用返回 true
func (s *OAuthStateStorage) Consume(ctx context.Context, state string) (bool, error) {
	if state == "" {
		return false, nil
	}
	n, err := s.redis.Del(ctx, s.name(state)).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (s *OAuthStateStorage) name(state string) string {
	return fmt.Sprintf("oauth:state:%s", state)
}
