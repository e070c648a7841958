package in

import (
	"context"

	dashboarddto "worksphere/internal/modules/dashboard/dto"
)

type Usecase interface {
	Overview(ctx context.Context) dashboarddto.Overview
	Passport(ctx context.Context) (dashboarddto.Passport, bool)
	RecommendedJobs(ctx context.Context) ([]dashboarddto.Job, error)
	Activity(ctx context.Context) []dashboarddto.Activity
	Apply(ctx context.Context, jobID int) dashboarddto.ApplyResult
	ExportPassport(ctx context.Context, input dashboarddto.ExportInput) (string, error)
}
