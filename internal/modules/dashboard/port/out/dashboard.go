package out

import (
	"context"

	"worksphere/internal/modules/dashboard/domain"
)

// JobCatalog lists open jobs and submits applications.
type JobCatalog interface {
	Recommended(ctx context.Context) ([]domain.JobPosting, error)
	Apply(ctx context.Context, jobID int) error
}

// PassportReader fetches the signed-in user's passport figures. Zero values
// mean the backend did not report them.
type PassportReader interface {
	Passport(ctx context.Context) (domain.Passport, error)
}

// PassportExporter writes a passport card to path and returns the file it
// wrote. A directory path receives the card's default file name.
type PassportExporter interface {
	Export(ctx context.Context, path string, card domain.PassportCard) (string, error)
}
