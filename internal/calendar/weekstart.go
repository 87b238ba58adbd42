package calendar

import (
	"fmt"
	"strings"
)

// WeekStart is the weekday shown in the first grid column.
type WeekStart int

const (
	Monday WeekStart = iota // default
	Sunday
	Saturday
)

// Offset is added to a raw grid position before CellFor is applied.
// Combined with the weekday index of the 1st (0 = Sunday) it lines the
// first of the month up under the right column.
func (w WeekStart) Offset() int {
	switch w {
	case Sunday:
		return 1
	case Saturday:
		return 0
	default:
		return 2
	}
}

// String returns the config name of the week start.
func (w WeekStart) String() string {
	switch w {
	case Sunday:
		return "sunday"
	case Saturday:
		return "saturday"
	default:
		return "monday"
	}
}

// ParseWeekStart parses "sunday", "monday" or "saturday". An empty string is Monday.
func ParseWeekStart(s string) (WeekStart, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "monday", "mon":
		return Monday, nil
	case "sunday", "sun":
		return Sunday, nil
	case "saturday", "sat":
		return Saturday, nil
	}
	return Monday, fmt.Errorf("unknown week start %q", s)
}

// Weekdays returns the weekday indexes (0 = Sunday) in display column order.
func (w WeekStart) Weekdays() [7]int {
	var out [7]int
	first := (w.Offset() + 6) % 7
	for i := range out {
		out[i] = (first + i) % 7
	}
	return out
}

// Labels orders a label set by the week start.
func (w WeekStart) Labels(set DayOfWeek) [7]string {
	var out [7]string
	for i, wd := range w.Weekdays() {
		out[i] = set[wd]
	}
	return out
}

// DayOfWeek holds weekday labels indexed Sunday first.
type DayOfWeek [7]string

// LabelSet selects between the short and long weekday names.
type LabelSet int

const (
	Collapsed LabelSet = iota // default
	Expanded
)

// String returns the config name of the label set.
func (l LabelSet) String() string {
	if l == Expanded {
		return "expanded"
	}
	return "collapsed"
}

// ParseLabelSet parses "collapsed" or "expanded". An empty string is Collapsed.
func ParseLabelSet(s string) (LabelSet, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "collapsed", "collapse", "short":
		return Collapsed, nil
	case "expanded", "expand", "long":
		return Expanded, nil
	}
	return Collapsed, fmt.Errorf("unknown day-of-week label set %q", s)
}

var (
	// CollapsedLabels are the English three-letter names.
	CollapsedLabels = DayOfWeek{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

	// ExpandedLabels are the English full names.
	ExpandedLabels = DayOfWeek{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
)

// DefaultLabels returns the English labels for a set.
func DefaultLabels(set LabelSet) DayOfWeek {
	if set == Expanded {
		return ExpandedLabels
	}
	return CollapsedLabels
}
