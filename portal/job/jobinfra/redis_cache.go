package jobinfra

import (
	"context"
	"encoding/json"
	"time"

	"github.com/TechnologicalJerry/job-portal-website/pkg/kernel"
	"github.com/TechnologicalJerry/job-portal-website/pkg/logx"
	"github.com/TechnologicalJerry/job-portal-website/portal/job"
	"github.com/go-redis/redis/v8"
)

// CachedJobRepository decorates a job.Repository with a Redis read-through
// cache on GetByID. Field updates and deletes invalidate the cached copy;
// counter increments do not, so a cached document's counters may lag the
// store by at most the TTL. Cache failures degrade to the inner store.
type CachedJobRepository struct {
	inner  job.Repository
	client *redis.Client
	ttl    time.Duration
}

// NewCachedJobRepository wraps a repository with Redis caching.
func NewCachedJobRepository(inner job.Repository, client *redis.Client, ttl time.Duration) *CachedJobRepository {
	return &CachedJobRepository{
		inner:  inner,
		client: client,
		ttl:    ttl,
	}
}

func cacheKey(id kernel.JobID) string {
	return "job:" + id.String()
}

func (r *CachedJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.JobPosting, error) {
	data, err := r.client.Get(ctx, cacheKey(id)).Bytes()
	if err == nil {
		var posting job.JobPosting
		if err := json.Unmarshal(data, &posting); err == nil {
			return &posting, nil
		}
		logx.Warnf("discarding corrupt cache entry for job %s", id)
	} else if err != redis.Nil {
		logx.Warnf("job cache read failed for %s: %v", id, err)
	}

	posting, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(posting); err == nil {
		if err := r.client.Set(ctx, cacheKey(id), data, r.ttl).Err(); err != nil {
			logx.Warnf("job cache write failed for %s: %v", id, err)
		}
	}

	return posting, nil
}

func (r *CachedJobRepository) Create(ctx context.Context, posting *job.JobPosting) error {
	return r.inner.Create(ctx, posting)
}

func (r *CachedJobRepository) Update(ctx context.Context, id kernel.JobID, posting *job.JobPosting) error {
	if err := r.inner.Update(ctx, id, posting); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *CachedJobRepository) Delete(ctx context.Context, id kernel.JobID) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *CachedJobRepository) Search(ctx context.Context, req job.SearchJobsRequest) (*kernel.Paginated[job.JobPosting], error) {
	return r.inner.Search(ctx, req)
}

func (r *CachedJobRepository) ListByUserID(ctx context.Context, userID kernel.UserID) ([]*job.JobPosting, error) {
	return r.inner.ListByUserID(ctx, userID)
}

func (r *CachedJobRepository) IncrementViews(ctx context.Context, id kernel.JobID) error {
	return r.inner.IncrementViews(ctx, id)
}

func (r *CachedJobRepository) IncrementApplications(ctx context.Context, id kernel.JobID) error {
	return r.inner.IncrementApplications(ctx, id)
}

func (r *CachedJobRepository) Exists(ctx context.Context, id kernel.JobID) (bool, error) {
	return r.inner.Exists(ctx, id)
}

func (r *CachedJobRepository) invalidate(ctx context.Context, id kernel.JobID) {
	if err := r.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		logx.Warnf("job cache invalidation failed for %s: %v", id, err)
	}
}
