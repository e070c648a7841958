// Package navigation switches the dashboard between its pages. Exactly one
// page is visible and marked active at a time.
package navigation

import (
	"fmt"

	apperrors "worksphere/internal/platform/errors"
)

type Page string

const (
	PageDashboard Page = "dashboard"
	PageJobs      Page = "jobs"
	PageProfile   Page = "profile"
	PageMyJobs    Page = "my-jobs"
	PageMessages  Page = "messages"
	PageEarnings  Page = "earnings"
)

// Pages is the navigation order.
var Pages = []Page{PageDashboard, PageJobs, PageProfile, PageMyJobs, PageMessages, PageEarnings}

var labels = map[Page]string{
	PageDashboard: "Dashboard",
	PageJobs:      "Find Jobs",
	PageProfile:   "Profile",
	PageMyJobs:    "My Jobs",
	PageMessages:  "Messages",
	PageEarnings:  "Earnings",
}

func (p Page) Label() string {
	if l, ok := labels[p]; ok {
		return l
	}
	return string(p)
}

func ParsePage(raw string) (Page, error) {
	p := Page(raw)
	if _, ok := labels[p]; !ok {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownPage, raw)
	}
	return p, nil
}

// Loader regenerates a page's content every time the page is selected.
type Loader[T any] func() T

type Controller[T any] struct {
	loaders   map[Page]Loader[T]
	active    Page
	visible   map[Page]bool
	navActive map[Page]bool
}

// New starts on the dashboard. Pages without a loader select to the zero T.
func New[T any](loaders map[Page]Loader[T]) *Controller[T] {
	c := &Controller[T]{
		loaders:   loaders,
		visible:   make(map[Page]bool, len(Pages)),
		navActive: make(map[Page]bool, len(Pages)),
	}
	c.show(PageDashboard)
	return c
}

// Select hides every section, marks page active, shows its section and runs
// its loader. An unknown page leaves the state untouched.
func (c *Controller[T]) Select(raw string) (T, error) {
	var zero T
	page, err := ParsePage(raw)
	if err != nil {
		return zero, err
	}
	c.show(page)
	if load := c.loaders[page]; load != nil {
		return load(), nil
	}
	return zero, nil
}

func (c *Controller[T]) show(page Page) {
	for _, p := range Pages {
		c.visible[p] = false
		c.navActive[p] = false
	}
	c.active = page
	c.visible[page] = true
	c.navActive[page] = true
}

func (c *Controller[T]) Active() Page { return c.active }

func (c *Controller[T]) Visible(p Page) bool { return c.visible[p] }

func (c *Controller[T]) NavActive(p Page) bool { return c.navActive[p] }

// Offset returns the page delta positions away from the active one, wrapping.
func (c *Controller[T]) Offset(delta int) Page {
	idx := 0
	for i, p := range Pages {
		if p == c.active {
			idx = i
			break
		}
	}
	n := len(Pages)
	return Pages[((idx+delta)%n+n)%n]
}
