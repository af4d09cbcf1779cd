package testioc

import (
	"sync"

	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/redis/go-redis/v9"
)

var (
	cache         ecache.Cache
	cacheInitOnce sync.Once
)

// InitCache 和线上使用相同的命名空间，测试结束后按 key 清理
func InitCache() ecache.Cache {
	cacheInitOnce.Do(func() {
		cmd := redis.NewClient(&redis.Options{
			Addr: "localhost:6379",
		})
		cache = &ecache.NamespaceCache{
			C:         eredis.NewCache(cmd),
			Namespace: "recruit:",
		}
	})
	return cache
}
