package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stamp = time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)

func TestICSAllDayEvent(t *testing.T) {
	var buf bytes.Buffer
	err := ICS(&buf, Event{Date: time.Date(2024, time.February, 29, 7, 0, 0, 0, time.UTC), Summary: "Leap day"}, stamp)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "PRODID:"+icalProdID)
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20240229")
	assert.Contains(t, out, "DTEND;VALUE=DATE:20240301")
	assert.Contains(t, out, "SUMMARY:Leap day")
	assert.Contains(t, out, "DTSTAMP:20240301T080000Z")
}

func TestICSKeepsLocalCalendarDay(t *testing.T) {
	// Late evening west of UTC is already the next day in UTC.
	loc := time.FixedZone("UTC-8", -8*60*60)

	var buf bytes.Buffer
	require.NoError(t, ICS(&buf, Event{Date: time.Date(2024, time.December, 31, 23, 0, 0, 0, loc)}, stamp))

	assert.Contains(t, buf.String(), "DTSTART;VALUE=DATE:20241231")
	assert.Contains(t, buf.String(), "DTEND;VALUE=DATE:20250101")
	assert.NotContains(t, buf.String(), "SUMMARY")
}

func TestICSDecodes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ICS(&buf, Event{Date: time.Date(2025, time.July, 4, 0, 0, 0, 0, time.UTC), Summary: "x"}, stamp))

	cal, err := ical.NewDecoder(strings.NewReader(buf.String())).Decode()
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 1)

	start, err := events[0].DateTimeStart(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "2025-07-04", start.Format("2006-01-02"))
}

func TestWriteICSFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picked.ics")

	require.NoError(t, WriteICSFile(path, Event{Date: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)}, stamp))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "DTSTART;VALUE=DATE:20240601")
}

func TestWriteICSFileBadPath(t *testing.T) {
	err := WriteICSFile(filepath.Join(t.TempDir(), "missing", "picked.ics"), Event{Date: stamp}, stamp)
	assert.Error(t, err)
}
