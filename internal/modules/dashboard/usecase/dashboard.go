package usecase

import (
	"context"
	"log/slog"

	"worksphere/internal/modules/dashboard/domain"
	dashboarddto "worksphere/internal/modules/dashboard/dto"
	dashboardin "worksphere/internal/modules/dashboard/port/in"
	"worksphere/internal/modules/dashboard/service"
	"worksphere/internal/platform/clock"
	"worksphere/internal/platform/notice"
)

const msgJobsUnavailable = "Failed to load recommended jobs"

type Interactor struct {
	svc   *service.DashboardService
	clock clock.Clock
	log   *slog.Logger
}

func NewInteractor(svc *service.DashboardService, clk clock.Clock, log *slog.Logger) dashboardin.Usecase {
	return &Interactor{svc: svc, clock: clk, log: log}
}

func (i *Interactor) Overview(ctx context.Context) dashboarddto.Overview {
	passport, loaded := i.svc.Passport(ctx)
	out := dashboarddto.Overview{
		Passport:       toPassport(passport),
		PassportLoaded: loaded,
		Stats:          toStats(i.svc.Stats()),
		Activity:       i.Activity(ctx),
	}
	jobs, err := i.RecommendedJobs(ctx)
	if err != nil {
		i.log.Error("overview jobs", "error", err)
		out.JobsError = msgJobsUnavailable
		return out
	}
	out.Jobs = jobs
	return out
}

func (i *Interactor) Passport(ctx context.Context) (dashboarddto.Passport, bool) {
	p, loaded := i.svc.Passport(ctx)
	return toPassport(p), loaded
}

func (i *Interactor) RecommendedJobs(ctx context.Context) ([]dashboarddto.Job, error) {
	jobs, err := i.svc.RecommendedJobs(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dashboarddto.Job, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, toJob(job))
	}
	return out, nil
}

func (i *Interactor) Activity(_ context.Context) []dashboarddto.Activity {
	now := i.clock.Now()
	events := i.svc.Activity()
	out := make([]dashboarddto.Activity, 0, len(events))
	for _, e := range events {
		out = append(out, dashboarddto.Activity{
			ID:       e.ID,
			Icon:     e.Icon,
			Message:  e.Message,
			Ago:      e.Ago(now),
			Severity: string(e.Severity),
		})
	}
	return out
}

func (i *Interactor) Apply(ctx context.Context, jobID int) dashboarddto.ApplyResult {
	job, err := i.svc.Apply(ctx, jobID)
	if err != nil {
		i.log.Error("error applying for job", "job_id", jobID, "error", err)
		return dashboarddto.ApplyResult{Job: toJob(job), Notice: notice.Error(domain.MsgApplyFailed)}
	}
	return dashboarddto.ApplyResult{
		Success: true,
		Job:     toJob(job),
		Notice:  notice.Success(domain.AppliedMessage(job.Title)),
	}
}

func (i *Interactor) ExportPassport(ctx context.Context, input dashboarddto.ExportInput) (string, error) {
	return i.svc.ExportPassport(ctx, input.Path, domain.PassportCard{
		Name:     input.Name,
		Username: input.Username,
		Email:    input.Email,
		UserType: input.UserType,
	})
}

func toJob(j domain.JobPosting) dashboarddto.Job {
	return dashboarddto.Job{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		Budget:      j.Budget,
		Skills:      append([]string(nil), j.Skills...),
		Type:        j.Type,
		Duration:    j.Duration,
		Proposals:   j.Proposals,
	}
}

func toPassport(p domain.Passport) dashboarddto.Passport {
	return dashboarddto.Passport{TrustScore: p.TrustScore, Level: p.Level, XPPoints: p.XPPoints}
}

func toStats(s domain.Stats) dashboarddto.Stats {
	return dashboarddto.Stats{
		ActiveJobs:    s.ActiveJobs,
		CompletedJobs: s.CompletedJobs,
		TotalEarnings: s.EarningsLabel(),
	}
}
