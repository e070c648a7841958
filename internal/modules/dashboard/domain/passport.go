package domain

import "github.com/dustin/go-humanize"

const (
	DefaultTrustScore = 75
	DefaultLevel      = 1
	DefaultXPPoints   = 0
)

// Passport is the AI Career Passport summary.
type Passport struct {
	TrustScore float64
	Level      int
	XPPoints   int
}

// PassportOf applies the display defaults; zero counts as unset.
func PassportOf(trust float64, level, xp int) Passport {
	p := Passport{TrustScore: trust, Level: level, XPPoints: xp}
	if p.TrustScore == 0 {
		p.TrustScore = DefaultTrustScore
	}
	if p.Level == 0 {
		p.Level = DefaultLevel
	}
	return p
}

func DefaultPassport() Passport {
	return PassportOf(0, 0, 0)
}

type Stats struct {
	ActiveJobs    int
	CompletedJobs int
	TotalEarnings int64
}

// SampleStats are shown until the backend reports real figures.
func SampleStats() Stats {
	return Stats{ActiveJobs: 3, CompletedJobs: 12, TotalEarnings: 2450}
}

func (s Stats) EarningsLabel() string {
	return "$" + humanize.Comma(s.TotalEarnings)
}
