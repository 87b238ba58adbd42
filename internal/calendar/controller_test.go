package calendar

import (
	"testing"
	"time"

	"github.com/hy4ri/calpicker/internal/datemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) datemath.Date {
	return datemath.Of(y, m, d, time.UTC)
}

func assertWindow(t *testing.T, c *Controller) {
	t.Helper()
	w := c.Window()
	require.Len(t, w, 3)
	assert.True(t, datemath.SameDay(w.Current(), c.Displayed()), "current is the displayed month")
	assert.True(t, datemath.SameDay(w.Previous(), datemath.AddMonths(c.Displayed(), -1)), "previous is one month back")
	assert.True(t, datemath.SameDay(w.Next(), datemath.AddMonths(c.Displayed(), 1)), "next is one month ahead")
}

func TestNewBuildsWindow(t *testing.T) {
	c := New(day(2024, time.March, 31), day(2024, time.March, 31))

	assertWindow(t, c)
	assert.Equal(t, "2024-02-29", c.Window().Previous().String())
	assert.Equal(t, "2024-04-30", c.Window().Next().String())
	assert.Equal(t, Monday, c.WeekStart())
}

func TestResetWindowIsIdempotent(t *testing.T) {
	c := New(day(2024, time.August, 12), day(2024, time.August, 12))

	c.ResetWindow()
	first := c.Window()
	c.ResetWindow()

	assert.Equal(t, first, c.Window())
}

func TestCellForJanuaryStartingSunday(t *testing.T) {
	// January 2023: 31 days, the 1st is a Sunday, December has 31 days.
	c := New(day(2023, time.January, 1), day(2023, time.January, 1))
	month := day(2023, time.January, 1)

	tests := []struct {
		index int
		want  Cell
	}{
		{7, Cell{Relation: Previous, Day: 31}},
		{6, Cell{Relation: Previous, Day: 30}},
		{8, Cell{Relation: Current, Day: 1}},
		{38, Cell{Relation: Current, Day: 31}},
		{39, Cell{Relation: Next, Day: 1}},
		{2, Cell{Relation: Previous, Day: 26}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, c.CellFor(tt.index, month), "index %d", tt.index)
	}
}

func TestCellForOffsetRemap(t *testing.T) {
	// With the 1st on a Sunday the offset is seven, not zero: index 7 is the
	// last leading day and day 1 follows it. The last current day sits at
	// offset+days and never yields a next-month day 0.
	c := New(day(2023, time.January, 1), day(2023, time.January, 1))
	month := day(2023, time.January, 1)

	assert.Equal(t, Previous, c.CellFor(7, month).Relation)
	assert.Equal(t, Cell{Relation: Current, Day: 1}, c.CellFor(8, month))
	assert.Equal(t, Cell{Relation: Current, Day: 31}, c.CellFor(7+31, month))

	// Monday start puts January 1st 2023 (a Sunday) in the last column of row 0.
	assert.Equal(t, Cell{Relation: Current, Day: 1}, c.CellAt(0, 6, month))
	assert.Equal(t, Cell{Relation: Previous, Day: 31}, c.CellAt(0, 5, month))
}

func TestCellAtAlignsColumnsWithWeekdays(t *testing.T) {
	for _, ws := range []WeekStart{Monday, Sunday, Saturday} {
		c := New(day(2024, time.January, 1), day(2024, time.January, 1), WithWeekStart(ws))
		for m := time.January; m <= time.December; m++ {
			month := day(2024, m, 1)
			cols := ws.Weekdays()
			for row := 0; row < Rows; row++ {
				for col := 0; col < Cols; col++ {
					cell := c.CellAt(row, col, month)
					got := datemath.WeekdayIndex(c.Resolve(cell, month))
					require.Equal(t, cols[col], got, "%s %s row %d col %d", ws, m, row, col)
				}
			}
		}
	}
}

func TestPagePartitionsGrid(t *testing.T) {
	for _, ws := range []WeekStart{Monday, Sunday, Saturday} {
		c := New(day(2020, time.January, 1), day(2020, time.January, 1), WithWeekStart(ws))
		for i := 0; i < 60; i++ {
			month := datemath.AddMonths(day(2020, time.January, 1), i)
			page := c.Page(month)

			// Leading previous run, then the whole month, then the trailing next run.
			idx := 0
			for idx < Cells && page[idx].Relation == Previous {
				idx++
			}
			for d := 1; d <= datemath.DaysInMonth(month); d++ {
				require.Less(t, idx, Cells, "%s %s: month does not fit", ws, month.Format("2006-01"))
				require.Equal(t, Cell{Relation: Current, Day: d}, page[idx], "%s %s", ws, month.Format("2006-01"))
				idx++
			}
			next := 1
			for ; idx < Cells; idx++ {
				require.Equal(t, Cell{Relation: Next, Day: next}, page[idx], "%s %s", ws, month.Format("2006-01"))
				next++
			}

			// Leading days are consecutive and end on the last day of the previous month.
			prevDays := datemath.DaysInMonth(datemath.AddMonths(month, -1))
			lead := 0
			for lead < Cells && page[lead].Relation == Previous {
				lead++
			}
			for j := 0; j < lead; j++ {
				require.Equal(t, prevDays-lead+1+j, page[j].Day)
			}
		}
	}
}

func TestSelectCellCurrentMonth(t *testing.T) {
	c := New(day(2024, time.May, 20), day(2024, time.May, 20))

	shift := c.SelectCell(Cell{Relation: Current, Day: 3})

	assert.Equal(t, 0, shift)
	assert.Equal(t, "2024-05-03", c.Selected().String())
	assert.Equal(t, time.May, c.Displayed().Month())
	assertWindow(t, c)
}

func TestSelectCellNextMonth(t *testing.T) {
	c := New(day(2024, time.January, 31), day(2024, time.January, 31))

	shift := c.SelectCell(Cell{Relation: Next, Day: 2})

	assert.Equal(t, 1, shift)
	assert.Equal(t, "2024-02-02", c.Selected().String())
	assert.Equal(t, time.February, c.Displayed().Month())
	assert.Equal(t, 29, c.Displayed().Day(), "anchor day is clamped, not overflowed")
	assertWindow(t, c)
}

func TestSelectCellPreviousMonth(t *testing.T) {
	c := New(day(2024, time.March, 15), day(2024, time.March, 15))

	shift := c.SelectCell(Cell{Relation: Previous, Day: 28})

	assert.Equal(t, -1, shift)
	assert.Equal(t, "2024-02-28", c.Selected().String())
	assert.Equal(t, time.February, c.Displayed().Month())
	assertWindow(t, c)
}

func TestPageShift(t *testing.T) {
	c := New(day(2024, time.December, 10), day(2024, time.December, 10))

	c.PageShift(1)
	assert.Equal(t, "2025-01-10", c.Displayed().String())
	assertWindow(t, c)

	c.PageShift(-1)
	c.PageShift(-1)
	assert.Equal(t, "2024-11-10", c.Displayed().String())
	assertWindow(t, c)

	assert.Equal(t, "2024-12-10", c.Selected().String(), "paging does not change the selection")
}

func TestRequestPageDebouncesToLatestTarget(t *testing.T) {
	c := New(day(2024, time.January, 15), day(2024, time.January, 15))

	t1 := c.RequestPage(1)
	t2 := c.RequestPage(1)
	t3 := c.RequestPage(1)

	assert.Equal(t, 3, c.Pending())
	assert.Equal(t, "2024-04-15", c.Target().String())
	assert.Equal(t, time.January, c.Displayed().Month(), "nothing moves before the settle")

	assert.False(t, c.Settle(t1))
	assert.False(t, c.Settle(t2))
	assert.Equal(t, time.January, c.Displayed().Month(), "stale settles are ignored")

	assert.True(t, c.Settle(t3))
	assert.Equal(t, "2024-04-15", c.Displayed().String())
	assert.Equal(t, 0, c.Pending())
	assertWindow(t, c)

	assert.False(t, c.Settle(t3), "a token applies once")
}

func TestRequestPageOppositeDirectionsCancelOut(t *testing.T) {
	c := New(day(2024, time.June, 1), day(2024, time.June, 1))
	before := c.Window()

	c.RequestPage(1)
	tok := c.RequestPage(-1)

	assert.False(t, c.Settle(tok))
	assert.Equal(t, before, c.Window())
}

func TestSelectCellCancelsPendingPage(t *testing.T) {
	c := New(day(2024, time.June, 10), day(2024, time.June, 10))

	tok := c.RequestPage(1)
	c.SelectCell(Cell{Relation: Current, Day: 20})

	assert.Equal(t, 0, c.Pending())
	assert.False(t, c.Settle(tok))
	assert.Equal(t, time.June, c.Displayed().Month())
	assert.Equal(t, "2024-06-20", c.Selected().String())
}

func TestIndexOf(t *testing.T) {
	// Monday start; June 1st 2024 is a Saturday, so it sits at column 5.
	c := New(day(2024, time.June, 1), day(2024, time.June, 1))

	idx, ok := c.IndexOf(day(2024, time.June, 1))
	require.True(t, ok)
	assert.Equal(t, 5, idx)

	idx, ok = c.IndexOf(day(2024, time.May, 27))
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	_, ok = c.IndexOf(day(2024, time.September, 1))
	assert.False(t, ok)
}

func TestMonthYear(t *testing.T) {
	c := New(day(2024, time.September, 3), day(2024, time.September, 3))
	assert.Equal(t, "Sep, 2024", c.MonthYear())
}

func TestSetDateDropsPendingRequest(t *testing.T) {
	c := New(day(2024, time.June, 10), day(2024, time.June, 10))
	tok := c.RequestPage(-1)

	c.SetDate(day(2030, time.October, 1))

	assert.False(t, c.Settle(tok))
	assert.Equal(t, "2030-10-01", c.Displayed().String())
	assertWindow(t, c)
}

func TestFlushAppliesPendingRequest(t *testing.T) {
	c := New(day(2024, time.June, 10), day(2024, time.June, 10))

	tok := c.RequestPage(-1)
	c.RequestPage(-1)

	assert.True(t, c.Flush())
	assert.Equal(t, "2024-04-10", c.Displayed().String())
	assertWindow(t, c)
	assert.False(t, c.Settle(tok))
	assert.False(t, c.Flush(), "nothing left to apply")
}
