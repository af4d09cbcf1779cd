package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/recruit/internal/pipeline/internal/domain"
	"github.com/pkg/errors"
)

const (
	jobExpiration = 30 * time.Minute
)

var (
	ErrJobNotFound = errors.New("缓存中没有职位")
)

// JobCache 职位定义读多写少，每次流转都需要读取一次
type JobCache interface {
	Set(ctx context.Context, job domain.Job) error
	Get(ctx context.Context, id int64) (domain.Job, error)
	Delete(ctx context.Context, id int64) error
}

type jobCache struct {
	ec ecache.Cache
}

func NewJobCache(ec ecache.Cache) JobCache {
	return &jobCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "pipeline:",
		},
	}
}

func (c *jobCache) Set(ctx context.Context, job domain.Job) error {
	val, err := json.Marshal(job)
	if err != nil {
		return errors.Wrap(err, "序列化职位失败")
	}
	return c.ec.Set(ctx, c.key(job.ID), string(val), jobExpiration)
}

func (c *jobCache) Get(ctx context.Context, id int64) (domain.Job, error) {
	val := c.ec.Get(ctx, c.key(id))
	if val.KeyNotFound() {
		return domain.Job{}, ErrJobNotFound
	}
	if val.Err != nil {
		return domain.Job{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	str, err := val.String()
	if err != nil {
		return domain.Job{}, errors.Wrap(err, "缓存数据格式错误")
	}
	var job domain.Job
	err = json.Unmarshal([]byte(str), &job)
	if err != nil {
		return domain.Job{}, errors.Wrap(err, "反序列化职位失败")
	}
	return job, nil
}

func (c *jobCache) Delete(ctx context.Context, id int64) error {
	_, err := c.ec.Delete(ctx, c.key(id))
	return err
}

func (c *jobCache) key(id int64) string {
	return fmt.Sprintf("job:%d", id)
}
