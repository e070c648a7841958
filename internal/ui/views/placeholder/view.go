package placeholder

import (
	"worksphere/internal/ui/navigation"
	"worksphere/internal/ui/theme"
)

var blurbs = map[navigation.Page]string{
	navigation.PageMyJobs:   "Track the jobs you are working on and the proposals you sent.",
	navigation.PageMessages: "Conversations with clients and freelancers will appear here.",
	navigation.PageEarnings: "Payouts and invoices will appear here.",
}

// Render draws a page that has no content yet.
func Render(page navigation.Page) string {
	blurb := blurbs[page]
	if blurb == "" {
		blurb = "Nothing here yet."
	}
	return theme.Title.Render(page.Label()) + "\n" +
		theme.Muted.Render(blurb) + "\n\n" +
		theme.Muted.Render("Coming soon.")
}
