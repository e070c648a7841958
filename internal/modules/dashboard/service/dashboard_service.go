package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"worksphere/internal/modules/dashboard/domain"
	dashboardout "worksphere/internal/modules/dashboard/port/out"
	"worksphere/internal/platform/clock"
	apperrors "worksphere/internal/platform/errors"
	"worksphere/internal/platform/id"
)

type DashboardService struct {
	catalog  dashboardout.JobCatalog
	passport dashboardout.PassportReader
	exporter dashboardout.PassportExporter
	clock    clock.Clock
	ids      id.Generator
	log      *slog.Logger

	mu   sync.Mutex
	feed *domain.ActivityFeed
}

func NewDashboardService(catalog dashboardout.JobCatalog, passport dashboardout.PassportReader, exporter dashboardout.PassportExporter, clk clock.Clock, ids id.Generator, log *slog.Logger) *DashboardService {
	return &DashboardService{
		catalog:  catalog,
		passport: passport,
		exporter: exporter,
		clock:    clk,
		ids:      ids,
		log:      log,
		feed:     domain.NewActivityFeed(domain.SeedActivity(clk.Now())...),
	}
}

// Passport returns the user's passport, or the defaults when it cannot be
// fetched. The bool reports whether the backend answered.
func (s *DashboardService) Passport(ctx context.Context) (domain.Passport, bool) {
	if s.passport == nil {
		return domain.DefaultPassport(), false
	}
	p, err := s.passport.Passport(ctx)
	if err != nil {
		s.log.Warn("could not load user profile, using default values", "error", err)
		return domain.DefaultPassport(), false
	}
	return domain.PassportOf(p.TrustScore, p.Level, p.XPPoints), true
}

func (s *DashboardService) Stats() domain.Stats {
	return domain.SampleStats()
}

func (s *DashboardService) RecommendedJobs(ctx context.Context) ([]domain.JobPosting, error) {
	jobs, err := s.catalog.Recommended(ctx)
	if err != nil {
		return nil, fmt.Errorf("load recommended jobs: %w", err)
	}
	return jobs, nil
}

func (s *DashboardService) Activity() []domain.ActivityEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feed.Events()
}

// Apply submits an application and records it in the activity feed.
func (s *DashboardService) Apply(ctx context.Context, jobID int) (domain.JobPosting, error) {
	jobs, err := s.catalog.Recommended(ctx)
	if err != nil {
		return domain.JobPosting{}, fmt.Errorf("load jobs: %w", err)
	}
	job, ok := domain.FindJob(jobs, jobID)
	if !ok {
		return domain.JobPosting{}, fmt.Errorf("%w: job %d", apperrors.ErrNotFound, jobID)
	}
	if err := s.catalog.Apply(ctx, jobID); err != nil {
		return job, fmt.Errorf("apply for job %d: %w", jobID, err)
	}
	s.mu.Lock()
	s.feed.Push(domain.AppliedEvent(s.ids.New(), job.Title, s.clock.Now()))
	s.mu.Unlock()
	s.log.Info("applied for job", "job_id", jobID, "title", job.Title)
	return job, nil
}

// ExportPassport snapshots the member's passport and sample stats to path.
func (s *DashboardService) ExportPassport(ctx context.Context, path string, card domain.PassportCard) (string, error) {
	if s.exporter == nil {
		return "", fmt.Errorf("%w: no passport exporter configured", apperrors.ErrInvalidInput)
	}
	card.Passport, _ = s.Passport(ctx)
	card.Stats = s.Stats()
	card.ExportedAt = s.clock.Now()
	written, err := s.exporter.Export(ctx, path, card)
	if err != nil {
		return "", fmt.Errorf("export passport: %w", err)
	}
	s.log.Info("exported passport", "path", written)
	return written, nil
}
