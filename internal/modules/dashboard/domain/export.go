package domain

import (
	"fmt"
	"strings"
	"time"

	"worksphere/internal/platform/slug"
)

const ExportSchemaVersion = 1

// PassportCard is the exported snapshot of a member's passport.
type PassportCard struct {
	Name       string
	Username   string
	Email      string
	UserType   string
	Passport   Passport
	Stats      Stats
	ExportedAt time.Time
}

// FileName is the default export name when no explicit file is given.
func (c PassportCard) FileName() string {
	return slug.Make(c.Username, "member") + "-passport.md"
}

// Summary renders the generated markdown region of an export.
func (c PassportCard) Summary() string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "# AI Career Passport: %s\n\n", c.Name)
	fmt.Fprintf(&b, "- Trust Score: %g\n", c.Passport.TrustScore)
	fmt.Fprintf(&b, "- Level: %d\n", c.Passport.Level)
	fmt.Fprintf(&b, "- XP Points: %d\n", c.Passport.XPPoints)
	fmt.Fprintf(&b, "- Active Jobs: %d\n", c.Stats.ActiveJobs)
	fmt.Fprintf(&b, "- Completed Jobs: %d\n", c.Stats.CompletedJobs)
	fmt.Fprintf(&b, "- Total Earnings: %s", c.Stats.EarningsLabel())
	return b.String()
}
