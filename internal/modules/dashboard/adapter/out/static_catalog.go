package out

import (
	"context"
	"time"

	"worksphere/internal/modules/dashboard/domain"
)

// StaticJobCatalog serves the sample jobs. Applications only simulate the
// round trip by waiting applyDelay.
type StaticJobCatalog struct {
	jobs       []domain.JobPosting
	applyDelay time.Duration
}

func NewStaticJobCatalog(applyDelay time.Duration) *StaticJobCatalog {
	return &StaticJobCatalog{jobs: domain.SampleJobs(), applyDelay: applyDelay}
}

func (c *StaticJobCatalog) Recommended(ctx context.Context) ([]domain.JobPosting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.JobPosting, len(c.jobs))
	copy(out, c.jobs)
	return out, nil
}

func (c *StaticJobCatalog) Apply(ctx context.Context, _ int) error {
	if c.applyDelay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(c.applyDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
