// Package export writes a picked date in formats other programs read.
package export

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/emersion/go-ical"
)

const (
	icalVersion = "2.0"
	icalProdID  = "-//calpicker//calpicker//EN"
	uidDomain   = "calpicker"
)

// Event is the all-day event written for a picked date.
type Event struct {
	Date    time.Time
	Summary string
}

// ICS encodes ev as an iCalendar with a single all-day VEVENT.
// now stamps DTSTAMP and seeds the UID.
func ICS(w io.Writer, ev Event, now time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, icalVersion)
	cal.Props.SetText(ical.PropProductID, icalProdID)

	// All-day events use the local calendar date, not the UTC instant.
	y, m, d := ev.Date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, fmt.Sprintf("%s-%d@%s", day.Format("20060102"), now.UnixNano(), uidDomain))
	event.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())

	start := ical.NewProp(ical.PropDateTimeStart)
	start.SetDate(day)
	event.Props.Set(start)

	// DTEND is exclusive for VALUE=DATE.
	end := ical.NewProp(ical.PropDateTimeEnd)
	end.SetDate(day.AddDate(0, 0, 1))
	event.Props.Set(end)

	if ev.Summary != "" {
		event.Props.SetText(ical.PropSummary, ev.Summary)
	}
	cal.Children = append(cal.Children, event.Component)

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode iCalendar data: %w", err)
	}
	return nil
}

// WriteICSFile writes ev to path, replacing any existing file.
func WriteICSFile(path string, ev Event, now time.Time) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := ICS(f, ev, now); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	slog.Debug("event exported", "component", "export", "path", path, "date", ev.Date.Format("2006-01-02"))
	return nil
}
