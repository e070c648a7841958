package in

import (
	"context"

	dashboarddto "worksphere/internal/modules/dashboard/dto"
	dashboardin "worksphere/internal/modules/dashboard/port/in"
)

type CLIHandler struct {
	usecase dashboardin.Usecase
}

func NewCLIHandler(usecase dashboardin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Overview(ctx context.Context) dashboarddto.Overview {
	return h.usecase.Overview(ctx)
}

func (h CLIHandler) Passport(ctx context.Context) (dashboarddto.Passport, bool) {
	return h.usecase.Passport(ctx)
}

func (h CLIHandler) ListJobs(ctx context.Context) ([]dashboarddto.Job, error) {
	return h.usecase.RecommendedJobs(ctx)
}

func (h CLIHandler) Apply(ctx context.Context, jobID int) dashboarddto.ApplyResult {
	return h.usecase.Apply(ctx, jobID)
}

func (h CLIHandler) Activity(ctx context.Context) []dashboarddto.Activity {
	return h.usecase.Activity(ctx)
}

func (h CLIHandler) ExportPassport(ctx context.Context, input dashboarddto.ExportInput) (string, error) {
	return h.usecase.ExportPassport(ctx, input)
}
