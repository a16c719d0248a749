package middleware

import (
	"net/http"
	"sync/atomic"
	"time"

	"KMate/pkg/response"

	"github.com/gin-gonic/gin"
	cmap "github.com/orcaman/concurrent-map/v2"
	"golang.org/x/time/rate"
)

// 超过该时长未访问的 IP 会被清理
const limiterIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// IPRateLimiter 按客户端 IP 的令牌桶
type IPRateLimiter struct {
	visitors cmap.ConcurrentMap[string, *visitor]
	rps      rate.Limit
	burst    int
	lastGC   atomic.Int64
}

func NewIPRateLimiter(rps int, burst int) *IPRateLimiter {
	l := &IPRateLimiter{
		visitors: cmap.New[*visitor](),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
	l.lastGC.Store(time.Now().UnixNano())
	return l
}

func (l *IPRateLimiter) Allow(ip string) bool {
	now := time.Now().UnixNano()
	l.gc(now)

	v := l.visitors.Upsert(ip, nil, func(exist bool, inMap *visitor, _ *visitor) *visitor {
		if exist {
			return inMap
		}
		return &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
	})
	v.lastSeen.Store(now)
	return v.limiter.Allow()
}

// gc 每个周期最多执行一次，清理空闲的 IP
func (l *IPRateLimiter) gc(now int64) {
	last := l.lastGC.Load()
	if now-last < int64(limiterIdleTTL) || !l.lastGC.CompareAndSwap(last, now) {
		return
	}
	for _, ip := range l.visitors.Keys() {
		l.visitors.RemoveCb(ip, func(_ string, v *visitor, exists bool) bool {
			return exists && now-v.lastSeen.Load() > int64(limiterIdleTTL)
		})
	}
}

// RateLimit 每个 IP 每秒 rps 个请求，突发为 2 倍
func RateLimit(rps int) gin.HandlerFunc {
	limiter := NewIPRateLimiter(rps, rps*2)
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			response.Abort(c, response.NewError(http.StatusTooManyRequests, "Too many requests"))
			return
		}
		c.Next()
	}
}
