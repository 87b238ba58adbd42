// Package calendar holds the picker's state: the displayed month, the
// selected day and the three-month window backing the paging carousel.
package calendar

import (
	"log/slog"

	"github.com/hy4ri/calpicker/internal/datemath"
)

// Grid dimensions.
const (
	Rows  = 6
	Cols  = 7
	Cells = Rows * Cols
)

// Relation tells which month a grid cell belongs to, relative to the page.
type Relation int

const (
	Previous Relation = -1
	Current  Relation = 0
	Next     Relation = 1
)

// String returns a readable name for the relation.
func (r Relation) String() string {
	switch r {
	case Previous:
		return "previous"
	case Next:
		return "next"
	default:
		return "current"
	}
}

// Cell is a grid position mapped to a day. It is always derived, never stored.
type Cell struct {
	Relation Relation
	Day      int
}

// Window is the (previous, current, next) month buffer behind the pager.
type Window [3]datemath.Date

// Previous returns the month before Current.
func (w Window) Previous() datemath.Date { return w[0] }

// Current returns the displayed month.
func (w Window) Current() datemath.Date { return w[1] }

// Next returns the month after Current.
func (w Window) Next() datemath.Date { return w[2] }

// NewWindow builds the window around month.
func NewWindow(month datemath.Date) Window {
	return Window{
		datemath.AddMonths(month, -1),
		month,
		datemath.AddMonths(month, 1),
	}
}

// Controller owns the picker state. It is not safe for concurrent use; all
// calls are expected from the UI update loop.
type Controller struct {
	displayed datemath.Date
	selected  datemath.Date
	window    Window
	weekStart WeekStart

	// Deferred page requests. pending is the accumulated month delta that the
	// next settle will apply; generation identifies the latest request.
	pending    int
	generation uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithWeekStart sets the first column of the grid.
func WithWeekStart(w WeekStart) Option {
	return func(c *Controller) {
		c.weekStart = w
	}
}

// New creates a controller anchored on date with the given selection.
func New(date, selected datemath.Date, opts ...Option) *Controller {
	c := &Controller{
		displayed: date,
		selected:  selected,
		weekStart: Monday,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.ResetWindow()
	return c
}

// Displayed returns the month anchor currently shown.
func (c *Controller) Displayed() datemath.Date { return c.displayed }

// Selected returns the selected day.
func (c *Controller) Selected() datemath.Date { return c.selected }

// Window returns a copy of the month window.
func (c *Controller) Window() Window { return c.window }

// WeekStart returns the configured first grid column.
func (c *Controller) WeekStart() WeekStart { return c.weekStart }

// Pending returns the month delta waiting for the next settle.
func (c *Controller) Pending() int { return c.pending }

// Target returns the month the pager is heading to. Without a pending
// request it is the displayed month.
func (c *Controller) Target() datemath.Date {
	if c.pending == 0 {
		return c.displayed
	}
	return datemath.AddMonths(c.displayed, c.pending)
}

// MonthYear returns the page title, e.g. "Jan, 2024".
func (c *Controller) MonthYear() string {
	return c.displayed.Format("Jan, 2006")
}

// SetDate moves the displayed month. Pending page requests are dropped.
func (c *Controller) SetDate(d datemath.Date) {
	c.cancelPending()
	c.displayed = d
	c.ResetWindow()
}

// SetSelected replaces the selection without paging.
func (c *Controller) SetSelected(d datemath.Date) {
	c.selected = d
}

// ResetWindow rebuilds the window from the displayed month.
func (c *Controller) ResetWindow() {
	c.window = NewWindow(c.displayed)
}

// CellFor maps a week-start adjusted grid index to a day of month, the
// previous month or the next month. An offset of zero is pushed to seven so
// the page always opens with a full leading week instead of an empty one.
func (c *Controller) CellFor(index int, month datemath.Date) Cell {
	offset := datemath.WeekdayIndex(datemath.FirstOfMonth(month))
	if offset == 0 {
		offset = 7
	}
	days := datemath.DaysInMonth(month)

	switch {
	case index <= offset:
		prevDays := datemath.DaysInMonth(datemath.AddMonths(month, -1))
		return Cell{Relation: Previous, Day: prevDays + index - offset}
	case index-offset > days:
		return Cell{Relation: Next, Day: index - offset - days}
	default:
		return Cell{Relation: Current, Day: index - offset}
	}
}

// CellAt maps a (row, col) grid position of month's page to a cell.
func (c *Controller) CellAt(row, col int, month datemath.Date) Cell {
	return c.CellFor(row*Cols+col+c.weekStart.Offset(), month)
}

// Page returns all cells of month's page in row-major order.
func (c *Controller) Page(month datemath.Date) [Cells]Cell {
	var page [Cells]Cell
	for i := range page {
		page[i] = c.CellFor(i+c.weekStart.Offset(), month)
	}
	return page
}

// Resolve returns the absolute day a cell of month's page stands for.
func (c *Controller) Resolve(cell Cell, month datemath.Date) datemath.Date {
	return datemath.WithDay(datemath.AddMonths(month, int(cell.Relation)), cell.Day)
}

// IndexOf returns the raw grid position of d on the displayed page.
func (c *Controller) IndexOf(d datemath.Date) (int, bool) {
	for i, cell := range c.Page(c.displayed) {
		if datemath.SameDay(c.Resolve(cell, c.displayed), d) {
			return i, true
		}
	}
	return 0, false
}

// SelectCell selects the day a cell of the displayed page stands for. Cells
// of an adjacent month also page to that month. The returned shift is the
// number of months the page moved (-1, 0 or 1).
func (c *Controller) SelectCell(cell Cell) int {
	c.cancelPending()
	c.selected = c.Resolve(cell, c.displayed)

	shift := int(cell.Relation)
	if shift != 0 {
		c.displayed = datemath.AddMonths(c.displayed, shift)
		c.ResetWindow()
	}

	slog.Debug("cell selected",
		"component", "calendar",
		"relation", cell.Relation.String(),
		"selected", c.selected.String(),
		"month", c.displayed.Format("2006-01"),
	)
	return shift
}

// PageShift pages one month in direction (negative is backwards) right away.
func (c *Controller) PageShift(direction int) {
	c.cancelPending()
	c.shift(sign(direction))
}

// RequestPage records a page request that is applied by a later Settle
// with the returned token. Requests made before that settle accumulate and
// invalidate earlier tokens, so rapid paging lands on the latest target with
// a single window reset.
func (c *Controller) RequestPage(direction int) uint64 {
	c.pending += sign(direction)
	c.generation++

	slog.Debug("page requested",
		"component", "calendar",
		"pending", c.pending,
		"token", c.generation,
	)
	return c.generation
}

// Settle applies the pending page request if token is the latest one.
// It reports whether the displayed month changed.
func (c *Controller) Settle(token uint64) bool {
	if token != c.generation {
		slog.Debug("stale settle ignored",
			"component", "calendar",
			"token", token,
			"latest", c.generation,
		)
		return false
	}
	if c.pending == 0 {
		return false
	}

	delta := c.pending
	c.pending = 0
	c.shift(delta)
	return true
}

// Flush applies a pending page request right away, as if its settle had
// fired. It reports whether the displayed month changed.
func (c *Controller) Flush() bool {
	return c.Settle(c.generation)
}

func (c *Controller) shift(months int) {
	if months == 0 {
		return
	}
	c.displayed = datemath.AddMonths(c.displayed, months)
	c.ResetWindow()

	slog.Debug("page shifted",
		"component", "calendar",
		"months", months,
		"month", c.displayed.Format("2006-01"),
	)
}

// cancelPending drops any page request still waiting for its settle.
func (c *Controller) cancelPending() {
	c.pending = 0
	c.generation++
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
